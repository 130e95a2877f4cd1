package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/artspace/internal/client/catalog"
	"github.com/dmitrijs2005/artspace/internal/client/permissions"
	"github.com/dmitrijs2005/artspace/internal/client/ranking"
)

// Gallery lists the catalog. The first word of arg picks the view: "sold"
// shows sold items and any other word filters by category. The rest of arg,
// if any, is a search within that view.
func (a *App) Gallery(ctx context.Context, arg string) error {
	category, query, _ := strings.Cut(strings.TrimSpace(arg), " ")
	query = strings.TrimSpace(query)

	var (
		pred  catalog.Predicate
		title string
	)
	switch category {
	case "", catalog.CategoryAll:
		pred, title = catalog.All, "Gallery"
	case "sold":
		pred, title = catalog.BySold(true), "Gallery: sold"
	default:
		pred, title = catalog.ByCategory(category), "Gallery: "+category
	}

	if query != "" {
		pred = catalog.And(pred, catalog.Search(query))
		title = fmt.Sprintf("%s, matching %q", title, query)
	}

	a.show(title, pred, "No artworks to show.")
	return nil
}

// Search lists artworks whose title or artist contains query.
func (a *App) Search(ctx context.Context, query string) error {
	a.show(fmt.Sprintf("Search: %q", query), catalog.Search(query), "Nothing matches your search.")
	return nil
}

// Studio lists the viewer's own works.
func (a *App) Studio(ctx context.Context) error {
	viewer := a.session.CurrentViewer()
	if viewer == nil {
		fmt.Fprintln(a.out, "Please sign in first.")
		return nil
	}
	a.show("My studio", catalog.ByArtist(viewer), "You have not uploaded anything yet. Try 'upload'.")
	return nil
}

// Collection lists the works the viewer has bought.
func (a *App) Collection(ctx context.Context) error {
	viewer := a.session.CurrentViewer()
	if viewer == nil {
		fmt.Fprintln(a.out, "Please sign in first.")
		return nil
	}
	a.show("My collection", catalog.OwnedSold(viewer), "Your collection is empty.")
	return nil
}

func (a *App) Ranking(ctx context.Context) error {
	renderRanking(a.out, ranking.TopSellers(a.catalog.Items(), ranking.DefaultTop), a.imageURL)
	return nil
}

// Reload closes any open flow, refetches the catalog and shows the gallery.
func (a *App) Reload(ctx context.Context) error {
	a.workflow.Cancel()
	a.catalog.Reload(ctx)
	return a.Gallery(ctx, "")
}

func (a *App) show(title string, pred catalog.Predicate, empty string) {
	items := a.catalog.Filter(pred)
	renderGallery(a.out, title, permissions.ViewAll(a.session.CurrentViewer(), items), empty)
}
