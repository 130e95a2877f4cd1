// Package permissions decides what a viewer may do with an artwork.
//
// Identity is matched by display name: an artwork's artist and owner are
// names, not account keys.
package permissions

import (
	"github.com/dmitrijs2005/artspace/internal/client/models"
)

// Resolve returns the capabilities of viewer (nil for a guest) on art.
func Resolve(viewer *models.User, art models.Artwork) models.Capabilities {
	f := flagsFor(viewer, art)

	var c models.Capabilities
	c.Edit = (f.artist || f.admin) && !art.IsSold
	if art.IsSold {
		c.Delete = f.admin
	} else {
		c.Delete = f.artist || f.admin
	}
	c.Buy = viewer != nil && !art.IsSold && !f.artist
	c.Download = f.owned || f.artist
	return c
}

// View builds the render tuple for one artwork.
func View(viewer *models.User, art models.Artwork) models.ViewModel {
	f := flagsFor(viewer, art)
	return models.ViewModel{
		Artwork:       art,
		IsOwned:       f.owned,
		IsArtist:      f.artist,
		IsAdminViewer: f.admin,
		IsSold:        art.IsSold,
		Capabilities:  Resolve(viewer, art),
	}
}

// ViewAll maps View over items, keeping their order.
func ViewAll(viewer *models.User, items []models.Artwork) []models.ViewModel {
	out := make([]models.ViewModel, len(items))
	for i, a := range items {
		out[i] = View(viewer, a)
	}
	return out
}

type flags struct {
	owned  bool
	artist bool
	admin  bool
}

func flagsFor(viewer *models.User, art models.Artwork) flags {
	if viewer == nil {
		return flags{}
	}
	return flags{
		owned:  art.Owner == viewer.Name,
		artist: art.Artist == viewer.Name,
		admin:  viewer.IsAdmin(),
	}
}
