package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/artspace/internal/client/services"
	"github.com/dmitrijs2005/artspace/internal/filex"
)

// Upload lists a new artwork for the signed-in artist.
func (a *App) Upload(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please sign in first.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	price, err := GetAmount(a.reader, "Price (฿)", 0, a.out)
	if err != nil {
		return a.fail(err)
	}
	category, err := getSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Image file path", a.out)
	if err != nil {
		return err
	}

	image, err := filex.LoadImage(path)
	if err != nil {
		return a.fail(err)
	}

	err = a.studioService.Upload(ctx, services.Listing{
		Title:    title,
		Price:    price,
		Category: category,
		Image:    image,
	})
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, "Artwork published!")
	return a.Studio(ctx)
}

// Edit changes the price and caption of an unsold artwork.
func (a *App) Edit(ctx context.Context, id string) error {
	art, err := a.lookup(id)
	if err != nil {
		return a.fail(err)
	}

	art, err = a.workflow.BeginEdit(art)
	if err != nil {
		return a.fail(err)
	}

	price, err := GetAmount(a.reader, "New price (฿)", art.Price, a.out)
	if err != nil {
		a.workflow.Cancel()
		return a.fail(err)
	}
	caption, err := GetTextWithDefault(a.reader, "Caption", art.Caption, a.out)
	if err != nil {
		a.workflow.Cancel()
		return err
	}

	if err := a.workflow.SubmitEdit(ctx, price, caption); err != nil {
		a.workflow.Cancel()
		return a.fail(err)
	}

	fmt.Fprintln(a.out, "Saved.")
	return nil
}

// Delete removes an artwork after an explicit confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	art, err := a.lookup(id)
	if err != nil {
		return a.fail(err)
	}

	token, err := a.workflow.BeginDelete(art)
	if err != nil {
		return a.fail(err)
	}

	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete %q?", art.Title), a.out)
	if err != nil || !ok {
		a.workflow.Cancel()
		fmt.Fprintln(a.out, "Cancelled.")
		return err
	}

	if err := a.workflow.ConfirmDelete(ctx, token); err != nil {
		a.workflow.Cancel()
		return a.fail(err)
	}

	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
