package catalog

import (
	"strings"

	"github.com/dmitrijs2005/artspace/internal/client/models"
)

// Predicate selects artworks.
type Predicate func(models.Artwork) bool

// CategoryAll is the category value that disables category filtering.
const CategoryAll = "all"

func All(models.Artwork) bool { return true }

// ByCategory matches an exact category. "" and "all" match everything.
func ByCategory(category string) Predicate {
	if category == "" || category == CategoryAll {
		return All
	}
	return func(a models.Artwork) bool {
		return a.Category == category
	}
}

func BySold(sold bool) Predicate {
	return func(a models.Artwork) bool {
		return a.IsSold == sold
	}
}

// Search matches a case-insensitive substring of the title or artist name.
func Search(query string) Predicate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All
	}
	return func(a models.Artwork) bool {
		return strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Artist), q)
	}
}

// ByArtist matches the viewer's own works. Never matches for a guest.
func ByArtist(viewer *models.User) Predicate {
	if viewer == nil {
		return none
	}
	name := viewer.Name
	return func(a models.Artwork) bool {
		return a.Artist == name
	}
}

// OwnedSold matches works the viewer bought. Never matches for a guest.
func OwnedSold(viewer *models.User) Predicate {
	if viewer == nil {
		return none
	}
	name := viewer.Name
	return func(a models.Artwork) bool {
		return a.IsSold && a.Owner == name
	}
}

// And matches when every predicate matches.
func And(preds ...Predicate) Predicate {
	return func(a models.Artwork) bool {
		for _, p := range preds {
			if !p(a) {
				return false
			}
		}
		return true
	}
}

func none(models.Artwork) bool { return false }
