package permissions

import (
	"testing"

	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	artistNoi = &models.User{Name: "Noi", Email: "noi@example.com", Role: models.RoleMember}
	buyerBen  = &models.User{Name: "Ben", Email: "ben@example.com", Role: models.RoleMember}
	otherDao  = &models.User{Name: "Dao", Email: "dao@example.com", Role: models.RoleMember}
	admin     = &models.User{Name: "Admin", Email: "admin@artspace.com", Role: models.RoleAdmin}
	adminNoi  = &models.User{Name: "Noi", Email: "noi.admin@artspace.com", Role: models.RoleAdmin}
)

func unsold() models.Artwork {
	return models.Artwork{ID: 1, Title: "Lotus", Price: 1200, Category: "painting", Artist: "Noi", Owner: "Noi"}
}

func soldToBen() models.Artwork {
	a := unsold()
	a.IsSold = true
	a.Owner = "Ben"
	return a
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		viewer *models.User
		art    models.Artwork
		want   models.Capabilities
	}{
		{"guest unsold", nil, unsold(), models.Capabilities{}},
		{"guest sold", nil, soldToBen(), models.Capabilities{}},
		{"artist unsold", artistNoi, unsold(), models.Capabilities{Edit: true, Delete: true, Download: true}},
		{"artist sold", artistNoi, soldToBen(), models.Capabilities{Download: true}},
		{"other member unsold", buyerBen, unsold(), models.Capabilities{Buy: true}},
		{"buyer owns sold", buyerBen, soldToBen(), models.Capabilities{Download: true}},
		{"other member sold", otherDao, soldToBen(), models.Capabilities{}},
		{"admin unsold", admin, unsold(), models.Capabilities{Edit: true, Delete: true, Buy: true}},
		{"admin sold", admin, soldToBen(), models.Capabilities{Delete: true}},
		{"admin artist sold", adminNoi, soldToBen(), models.Capabilities{Delete: true, Download: true}},
		{"admin artist unsold", adminNoi, unsold(), models.Capabilities{Edit: true, Delete: true, Download: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.viewer, tt.art))
		})
	}
}

func TestResolve_SoldButArtistStillOwner(t *testing.T) {
	art := unsold()
	art.IsSold = true

	c := Resolve(artistNoi, art)
	assert.Equal(t, models.Capabilities{Download: true}, c)

	v := View(artistNoi, art)
	assert.True(t, v.IsOwned)
	assert.True(t, v.IsArtist)
}

func TestResolve_Properties(t *testing.T) {
	viewers := []*models.User{nil, artistNoi, buyerBen, otherDao, admin, adminNoi}
	arts := []models.Artwork{unsold(), soldToBen()}

	for _, v := range viewers {
		for _, a := range arts {
			c := Resolve(v, a)
			f := flagsFor(v, a)

			if a.IsSold {
				require.False(t, c.Edit, "sold items are never editable")
				require.False(t, c.Buy, "sold items are never buyable")
				require.Equal(t, f.admin, c.Delete, "only admins delete sold items")
			}
			if f.artist {
				require.False(t, c.Buy, "artists never buy their own work")
			}
			require.Equal(t, f.owned || f.artist, c.Download)
			require.False(t, c.Buy && c.Edit && !f.admin, "non-admin cannot both buy and edit")
			if v == nil {
				require.Equal(t, models.Capabilities{}, c)
			}
		}
	}
}

func TestView(t *testing.T) {
	v := View(buyerBen, soldToBen())

	assert.Equal(t, models.ViewModel{
		Artwork:      soldToBen(),
		IsOwned:      true,
		IsSold:       true,
		Capabilities: models.Capabilities{Download: true},
	}, v)

	v = View(admin, unsold())
	assert.True(t, v.IsAdminViewer)
	assert.False(t, v.IsOwned)
}

func TestViewAll_KeepsOrder(t *testing.T) {
	items := []models.Artwork{soldToBen(), unsold()}
	items[1].ID = 2

	got := ViewAll(nil, items)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Artwork.ID)
	assert.Equal(t, int64(2), got[1].Artwork.ID)

	assert.Empty(t, ViewAll(artistNoi, nil))
}

func TestBuyButton(t *testing.T) {
	tests := []struct {
		name    string
		viewer  *models.User
		art     models.Artwork
		kind    ButtonKind
		label   string
		enabled bool
	}{
		{"guest", nil, unsold(), ButtonSignIn, "Sign in to buy", false},
		{"guest on sold item", nil, soldToBen(), ButtonSignIn, "Sign in to buy", false},
		{"buyer", buyerBen, unsold(), ButtonBuy, "Buy for ฿1,200", true},
		{"owner after purchase", buyerBen, soldToBen(), ButtonOwned, "In your collection", false},
		{"someone else after sale", otherDao, soldToBen(), ButtonSold, "Sold", false},
		{"artist", artistNoi, unsold(), ButtonOwnWork, "Your artwork", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BuyButton(tt.viewer, tt.art)
			assert.Equal(t, tt.kind, b.Kind)
			assert.Equal(t, tt.label, b.Label)
			assert.Equal(t, tt.enabled, b.Enabled)
			if tt.viewer != nil {
				assert.Equal(t, Resolve(tt.viewer, tt.art).Buy, b.Enabled)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "฿0", FormatPrice(0))
	assert.Equal(t, "฿950", FormatPrice(950))
	assert.Equal(t, "฿1,250,000", FormatPrice(1250000))
}
