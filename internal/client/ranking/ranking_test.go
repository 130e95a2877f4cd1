package ranking

import (
	"testing"

	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sold(id int64, artist, img string) models.Artwork {
	return models.Artwork{ID: id, Artist: artist, Owner: "buyer", Img: img, IsSold: true}
}

func unsold(id int64, artist string) models.Artwork {
	return models.Artwork{ID: id, Artist: artist, Owner: artist, Img: "unsold.png"}
}

func TestTopSellers_TieKeepsScanOrder(t *testing.T) {
	items := []models.Artwork{
		sold(9, "A", "a1.png"),
		sold(8, "B", "b1.png"),
		sold(7, "C", "c1.png"),
		unsold(6, "B"),
		sold(5, "A", "a2.png"),
		sold(4, "C", "c2.png"),
		sold(3, "C", "c3.png"),
		sold(2, "A", "a3.png"),
		unsold(1, "A"),
	}

	want := []models.Seller{
		{ArtistName: "A", SalesCount: 3, RepresentativeImage: "a3.png"},
		{ArtistName: "C", SalesCount: 3, RepresentativeImage: "c3.png"},
		{ArtistName: "B", SalesCount: 1, RepresentativeImage: "b1.png"},
	}

	if diff := cmp.Diff(want, TopSellers(items, DefaultTop)); diff != "" {
		t.Fatalf("TopSellers mismatch (-want +got):\n%s", diff)
	}
}

func TestTopSellers_Truncates(t *testing.T) {
	items := []models.Artwork{
		sold(1, "A", "a.png"),
		sold(2, "B", "b.png"),
		sold(3, "B", "b2.png"),
		sold(4, "C", "c.png"),
		sold(5, "D", "d.png"),
	}

	got := TopSellers(items, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "B", got[0].ArtistName)
	assert.Equal(t, "A", got[1].ArtistName)
}

func TestTopSellers_DefaultSize(t *testing.T) {
	items := []models.Artwork{
		sold(1, "A", "a.png"),
		sold(2, "B", "b.png"),
		sold(3, "C", "c.png"),
		sold(4, "D", "d.png"),
	}

	assert.Len(t, TopSellers(items, 0), DefaultTop)
	assert.Len(t, TopSellers(items, -1), DefaultTop)
	assert.Len(t, TopSellers(items, 10), 4)
}

func TestTopSellers_NoSales(t *testing.T) {
	got := TopSellers([]models.Artwork{unsold(1, "A"), unsold(2, "B")}, DefaultTop)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, TopSellers(nil, DefaultTop))
}

func TestTopSellers_SameNameMerged(t *testing.T) {
	items := []models.Artwork{
		sold(1, "Mali", "one.png"),
		sold(2, "Mali", "two.png"),
	}

	got := TopSellers(items, DefaultTop)
	assert.Equal(t, []models.Seller{{ArtistName: "Mali", SalesCount: 2, RepresentativeImage: "two.png"}}, got)
}
