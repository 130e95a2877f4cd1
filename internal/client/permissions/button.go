package permissions

import (
	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dustin/go-humanize"
)

// ButtonKind is the purchase affordance shown on an artwork preview.
type ButtonKind string

const (
	ButtonSignIn  ButtonKind = "sign-in"
	ButtonSold    ButtonKind = "sold"
	ButtonOwned   ButtonKind = "owned"
	ButtonOwnWork ButtonKind = "own-work"
	ButtonBuy     ButtonKind = "buy"
)

// Button is what the preview offers instead of, or as, a buy action.
type Button struct {
	Kind    ButtonKind
	Label   string
	Enabled bool
}

// FormatPrice renders an amount with thousands separators, e.g. "฿1,200".
func FormatPrice(price int64) string {
	return "฿" + humanize.Comma(price)
}

// BuyButton picks the preview affordance. Only ButtonBuy is enabled and it
// is enabled exactly when Resolve grants Buy.
func BuyButton(viewer *models.User, art models.Artwork) Button {
	f := flagsFor(viewer, art)

	switch {
	case viewer == nil:
		return Button{Kind: ButtonSignIn, Label: "Sign in to buy"}
	case art.IsSold && f.owned:
		return Button{Kind: ButtonOwned, Label: "In your collection"}
	case art.IsSold:
		return Button{Kind: ButtonSold, Label: "Sold"}
	case f.artist:
		return Button{Kind: ButtonOwnWork, Label: "Your artwork"}
	default:
		return Button{Kind: ButtonBuy, Label: "Buy for " + FormatPrice(art.Price), Enabled: true}
	}
}
