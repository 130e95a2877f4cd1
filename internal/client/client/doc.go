// Package client contains client-side building blocks for ArtSpace.
//
// # Overview
//
// The package provides:
//  1. The remote API contract (see the Client interface): catalog, auth,
//     upload, purchase, edit/delete and the admin endpoints.
//  2. A concrete HTTP implementation (see HTTPClient) speaking the JSON and
//     multipart formats of the marketplace service. Every request carries
//     an X-Request-ID for correlation with server logs.
//  3. Local persistence bootstrap (InitDatabase) for the session database,
//     applying embedded goose migrations over modernc.org/sqlite.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors matched with errors.Is:
// ErrUnavailable (transport failure or 5xx), ErrUnauthorized (401/403),
// ErrRejected (4xx or {"success": false}; see RejectedError for the
// server message) and ErrMalformedResponse.
//
// Nothing in this package retries. A retry is always a new user action.
package client
