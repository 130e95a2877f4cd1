package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/client/permissions"
	"github.com/dmitrijs2005/artspace/internal/client/workflow"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func status(vm models.ViewModel) string {
	switch {
	case vm.IsOwned && vm.IsSold:
		return "owned"
	case vm.IsSold:
		return "sold"
	default:
		return "for sale"
	}
}

func capabilityNames(c models.Capabilities) string {
	var names []string
	if c.Buy {
		names = append(names, "buy")
	}
	if c.Edit {
		names = append(names, "edit")
	}
	if c.Delete {
		names = append(names, "delete")
	}
	if c.Download {
		names = append(names, "download")
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

// renderGallery prints one row per view model, or empty if there are none.
func renderGallery(w io.Writer, title string, vms []models.ViewModel, empty string) {
	fmt.Fprintf(w, "%s (%d)\n", title, len(vms))
	if len(vms) == 0 {
		fmt.Fprintln(w, empty)
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tARTIST\tCATEGORY\tPRICE\tSTATUS\tYOU CAN")
	for _, vm := range vms {
		art := vm.Artwork
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			art.ID, art.Title, art.Artist, art.Category,
			permissions.FormatPrice(art.Price), status(vm), capabilityNames(vm.Capabilities))
	}
	_ = tw.Flush()
}

func renderPreview(w io.Writer, p workflow.Preview, imageURL func(string) string) {
	art := p.Artwork

	fmt.Fprintf(w, "#%d %q by %s\n", art.ID, art.Title, art.Artist)
	fmt.Fprintf(w, "Category: %s\n", art.Category)
	fmt.Fprintf(w, "Price:    %s\n", permissions.FormatPrice(art.Price))
	if art.IsSold {
		fmt.Fprintf(w, "Owner:    %s\n", art.Owner)
	}
	if art.Caption != "" {
		fmt.Fprintln(w, art.Caption)
	} else {
		fmt.Fprintln(w, "No description.")
	}
	if p.Capabilities.Download {
		fmt.Fprintf(w, "Download: %s\n", imageURL(art.Img))
	}

	fmt.Fprintf(w, "[%s]\n", p.Button.Label)

	var hints []string
	switch {
	case p.Button.Enabled:
		hints = append(hints, "'buy' to purchase")
	case p.Button.Kind == permissions.ButtonSignIn:
		hints = append(hints, "'login' to buy")
	}
	if p.Capabilities.Edit {
		hints = append(hints, fmt.Sprintf("'edit %d' to change price or caption", art.ID))
	}
	if p.Capabilities.Delete {
		hints = append(hints, fmt.Sprintf("'delete %d' to remove", art.ID))
	}
	hints = append(hints, "'cancel' to close")
	fmt.Fprintln(w, "Type "+strings.Join(hints, ", ")+".")
}

func renderRanking(w io.Writer, sellers []models.Seller, imageURL func(string) string) {
	fmt.Fprintln(w, "Top sellers")
	if len(sellers) == 0 {
		fmt.Fprintln(w, "No sales yet.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "#\tARTIST\tSOLD\tIMAGE")
	for i, s := range sellers {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", i+1, s.ArtistName, s.SalesCount, imageURL(s.RepresentativeImage))
	}
	_ = tw.Flush()
}

func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.Name, u.Email, u.Role)
	}
	_ = tw.Flush()
}
