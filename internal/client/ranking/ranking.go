// Package ranking computes the top sellers board from the catalog.
package ranking

import (
	"slices"

	"github.com/dmitrijs2005/artspace/internal/client/models"
)

// DefaultTop is the board size when the caller does not ask for one.
const DefaultTop = 3

// TopSellers groups sold items by artist name and returns at most n
// sellers by sold count, descending. Ties keep the order in which the
// artists were first seen in items. Each seller's image is that of their
// last sold item in items. n <= 0 means DefaultTop.
func TopSellers(items []models.Artwork, n int) []models.Seller {
	if n <= 0 {
		n = DefaultTop
	}

	index := make(map[string]int)
	sellers := make([]models.Seller, 0)

	for _, a := range items {
		if !a.IsSold {
			continue
		}
		i, ok := index[a.Artist]
		if !ok {
			i = len(sellers)
			index[a.Artist] = i
			sellers = append(sellers, models.Seller{ArtistName: a.Artist})
		}
		sellers[i].SalesCount++
		sellers[i].RepresentativeImage = a.Img
	}

	slices.SortStableFunc(sellers, func(x, y models.Seller) int {
		return y.SalesCount - x.SalesCount
	})

	if len(sellers) > n {
		sellers = sellers[:n]
	}
	return sellers
}
