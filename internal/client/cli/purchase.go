package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/client/workflow"
	"github.com/dmitrijs2005/artspace/internal/filex"
)

var errBadID = errors.New("artwork id must be a number")

// lookup resolves an id argument against the current catalog.
func (a *App) lookup(id string) (models.Artwork, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return models.Artwork{}, errBadID
	}
	art, ok := a.catalog.ByID(n)
	if !ok {
		return models.Artwork{}, workflow.ErrNotFound
	}
	return art, nil
}

// Preview opens an artwork, discarding any flow in progress.
func (a *App) Preview(ctx context.Context, id string) error {
	art, err := a.lookup(id)
	if err != nil {
		return a.fail(err)
	}

	p := a.workflow.Preview(art)
	renderPreview(a.out, p, a.imageURL)
	return nil
}

// Buy starts checkout for the open preview.
func (a *App) Buy(ctx context.Context) error {
	co, err := a.workflow.Checkout()
	if err != nil {
		if errors.Is(err, workflow.ErrSignInRequired) {
			fmt.Fprintln(a.out, "Please sign in to buy. Use 'login' or 'register'.")
			return err
		}
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Checkout: %q\nAmount due: %s\n", co.Artwork.Title, co.Amount)
	fmt.Fprintln(a.out, "Transfer the amount, then attach the payment slip with 'pay <image path>' (or 'cancel').")
	return nil
}

// Pay sends the payment slip at path for the pending purchase.
func (a *App) Pay(ctx context.Context, path string) error {
	if a.workflow.State() != workflow.AwaitingPayment {
		return a.fail(workflow.ErrInvalidTransition)
	}

	slip, err := filex.LoadImage(path)
	if err != nil {
		return a.fail(err)
	}

	if err := a.workflow.SubmitPayment(ctx, slip); err != nil {
		a.fail(err)
		fmt.Fprintln(a.out, "You can try 'pay' again or 'cancel'.")
		return err
	}

	if art, ok := a.workflow.Subject(); ok {
		fmt.Fprintf(a.out, "Payment received. %q is now in your collection.\n", art.Title)
	}
	fmt.Fprintln(a.out, "Type 'ok' to continue.")
	return nil
}

// Acknowledge closes a confirmed purchase.
func (a *App) Acknowledge(ctx context.Context) error {
	if err := a.workflow.Acknowledge(); err != nil {
		return a.fail(err)
	}
	return a.Collection(ctx)
}

// Cancel closes whatever is open. It never fails.
func (a *App) Cancel(ctx context.Context) error {
	if a.workflow.State() != workflow.Idle {
		fmt.Fprintln(a.out, "Closed.")
	}
	a.workflow.Cancel()
	return nil
}
