// Package cli provides the interactive ArtSpace command-line client.
//
// It wires configuration, the local session database, the marketplace API
// client and the application services, then runs a REPL. The REPL plays the
// role of the web gallery: commands open views (gallery, studio,
// collection, ranking), previews and the purchase, edit and delete flows.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
