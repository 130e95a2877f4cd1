package models

// Capabilities is the set of actions a viewer may take on one artwork.
type Capabilities struct {
	Edit     bool
	Delete   bool
	Buy      bool
	Download bool
}

// ViewModel is the per-render projection of an artwork for a viewer.
// It is derived on every render and never stored.
type ViewModel struct {
	Artwork       Artwork
	IsOwned       bool
	IsArtist      bool
	IsAdminViewer bool
	IsSold        bool
	Capabilities  Capabilities
}
