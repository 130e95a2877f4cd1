// Package workflow is the purchase, edit and delete state machine.
//
// There is one Workflow per client. Every transition is checked against the
// current state and, where it acts on an artwork, against the capabilities
// of the current viewer on the latest catalog entry. A rejected transition
// never changes state.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/artspace/internal/client/catalog"
	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/client/permissions"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/google/uuid"
)

var (
	ErrInvalidTransition    = errors.New("action not available right now")
	ErrNotPermitted         = errors.New("not permitted")
	ErrSignInRequired       = fmt.Errorf("%w: sign in required", ErrNotPermitted)
	ErrBusy                 = errors.New("a request is already in progress")
	ErrConfirmationMismatch = errors.New("confirmation does not match")
	ErrNotFound             = errors.New("artwork not found")
	ErrInvalidPrice         = errors.New("price must not be negative")
	ErrNoAttachment         = errors.New("payment slip is required")
)

// Viewer gives the current session viewer, nil for a guest.
type Viewer interface {
	CurrentViewer() *models.User
}

// Catalog is the part of catalog.Store the workflow needs.
type Catalog interface {
	Reload(ctx context.Context) catalog.Catalog
	ByID(id int64) (models.Artwork, bool)
}

// Remote is the part of the API the workflow calls.
type Remote interface {
	Buy(ctx context.Context, id int64, buyer string, slip models.Attachment) error
	Edit(ctx context.Context, id int64, price int64, caption string) error
	DeleteArtwork(ctx context.Context, id int64) error
}

// Preview is what Preview hands back for rendering. Capabilities and Button
// are computed once, when the preview opens.
type Preview struct {
	Artwork      models.Artwork
	Capabilities models.Capabilities
	Button       permissions.Button
}

// Checkout describes a pending purchase.
type Checkout struct {
	Artwork models.Artwork
	Amount  string
}

type Workflow struct {
	viewer  Viewer
	catalog Catalog
	remote  Remote
	log     logging.Logger

	mu       sync.Mutex
	state    State
	subject  *models.Artwork
	preview  Preview
	token    string
	inFlight bool
	// epoch changes whenever the current flow is discarded; a response for
	// an older epoch must not move the state.
	epoch uint64

	newToken func() string
}

func New(viewer Viewer, cat Catalog, remote Remote, log logging.Logger) *Workflow {
	return &Workflow{
		viewer:   viewer,
		catalog:  cat,
		remote:   remote,
		log:      log,
		state:    Idle,
		newToken: uuid.NewString,
	}
}

// State returns the current state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Subject returns the pending artwork, if any.
func (w *Workflow) Subject() (models.Artwork, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.subject == nil {
		return models.Artwork{}, false
	}
	return *w.subject, true
}

// Preview opens art. It is legal from any state and discards any flow in
// progress.
func (w *Workflow) Preview(art models.Artwork) Preview {
	viewer := w.viewer.CurrentViewer()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.reset()
	w.state = Previewing
	w.subject = &art
	w.preview = Preview{
		Artwork:      art,
		Capabilities: permissions.Resolve(viewer, art),
		Button:       permissions.BuyButton(viewer, art),
	}
	return w.preview
}

// Checkout moves the previewed artwork to payment.
func (w *Workflow) Checkout() (Checkout, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Previewing {
		return Checkout{}, fmt.Errorf("checkout from %s: %w", w.state, ErrInvalidTransition)
	}

	_, latest, err := w.guard(*w.subject, func(c models.Capabilities) bool { return c.Buy })
	if err != nil {
		return Checkout{}, err
	}

	w.subject = &latest
	w.state = AwaitingPayment
	return Checkout{Artwork: latest, Amount: permissions.FormatPrice(latest.Price)}, nil
}

// SubmitPayment sends the payment slip for the pending artwork. On success
// the state becomes Confirmed and the catalog is reloaded. On failure the
// state stays AwaitingPayment so the slip can be sent again.
func (w *Workflow) SubmitPayment(ctx context.Context, slip models.Attachment) error {
	w.mu.Lock()
	if w.state != AwaitingPayment {
		defer w.mu.Unlock()
		return fmt.Errorf("pay from %s: %w", w.state, ErrInvalidTransition)
	}
	if w.inFlight {
		w.mu.Unlock()
		return ErrBusy
	}
	if len(slip.Data) == 0 {
		w.mu.Unlock()
		return ErrNoAttachment
	}
	buyer, art, err := w.guard(*w.subject, func(c models.Capabilities) bool { return c.Buy })
	if err != nil {
		w.mu.Unlock()
		return err
	}
	epoch := w.begin()
	w.mu.Unlock()

	err = w.remote.Buy(ctx, art.ID, buyer.Name, slip)

	current := w.finish(epoch, func() {
		if err == nil {
			w.state = Confirmed
		}
	})
	if err != nil {
		w.log.Warn(ctx, "payment failed", "artwork", art.ID, "error", err)
		return err
	}

	w.log.Info(ctx, "artwork purchased", "artwork", art.ID, "buyer", buyer.Name, "discarded", !current)
	w.catalog.Reload(ctx)
	return nil
}

// Acknowledge closes a confirmed purchase.
func (w *Workflow) Acknowledge() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Confirmed {
		return fmt.Errorf("acknowledge from %s: %w", w.state, ErrInvalidTransition)
	}
	w.reset()
	return nil
}

// Cancel returns to Idle from any state. A request already sent is not
// aborted; its response will not move the state.
func (w *Workflow) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

// BeginEdit opens the edit form for art.
func (w *Workflow) BeginEdit(art models.Artwork) (models.Artwork, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Idle && w.state != Previewing {
		return models.Artwork{}, fmt.Errorf("edit from %s: %w", w.state, ErrInvalidTransition)
	}
	_, latest, err := w.guard(art, func(c models.Capabilities) bool { return c.Edit })
	if err != nil {
		return models.Artwork{}, err
	}

	w.reset()
	w.state = Editing
	w.subject = &latest
	return latest, nil
}

// SubmitEdit sends the new price and caption. Success reloads the catalog
// and returns to Idle; failure stays in Editing.
func (w *Workflow) SubmitEdit(ctx context.Context, price int64, caption string) error {
	w.mu.Lock()
	if w.state != Editing {
		defer w.mu.Unlock()
		return fmt.Errorf("save edit from %s: %w", w.state, ErrInvalidTransition)
	}
	if w.inFlight {
		w.mu.Unlock()
		return ErrBusy
	}
	if price < 0 {
		w.mu.Unlock()
		return ErrInvalidPrice
	}
	_, art, err := w.guard(*w.subject, func(c models.Capabilities) bool { return c.Edit })
	if err != nil {
		w.mu.Unlock()
		return err
	}
	epoch := w.begin()
	w.mu.Unlock()

	err = w.remote.Edit(ctx, art.ID, price, caption)

	w.finish(epoch, func() {
		if err == nil {
			w.reset()
		}
	})
	if err != nil {
		w.log.Warn(ctx, "edit failed", "artwork", art.ID, "error", err)
		return err
	}

	w.log.Info(ctx, "artwork edited", "artwork", art.ID, "price", price)
	w.catalog.Reload(ctx)
	return nil
}

// BeginDelete asks for confirmation to delete art. The returned token must
// be passed to ConfirmDelete.
func (w *Workflow) BeginDelete(art models.Artwork) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Idle && w.state != Previewing {
		return "", fmt.Errorf("delete from %s: %w", w.state, ErrInvalidTransition)
	}
	_, latest, err := w.guard(art, func(c models.Capabilities) bool { return c.Delete })
	if err != nil {
		return "", err
	}

	w.reset()
	w.state = Deleting
	w.subject = &latest
	w.token = w.newToken()
	return w.token, nil
}

// ConfirmDelete deletes the pending artwork if token matches the one
// issued by BeginDelete.
func (w *Workflow) ConfirmDelete(ctx context.Context, token string) error {
	w.mu.Lock()
	if w.state != Deleting {
		defer w.mu.Unlock()
		return fmt.Errorf("confirm delete from %s: %w", w.state, ErrInvalidTransition)
	}
	if w.inFlight {
		w.mu.Unlock()
		return ErrBusy
	}
	if token == "" || token != w.token {
		w.mu.Unlock()
		return ErrConfirmationMismatch
	}
	_, art, err := w.guard(*w.subject, func(c models.Capabilities) bool { return c.Delete })
	if err != nil {
		w.mu.Unlock()
		return err
	}
	epoch := w.begin()
	w.mu.Unlock()

	err = w.remote.DeleteArtwork(ctx, art.ID)

	w.finish(epoch, func() {
		if err == nil {
			w.reset()
		}
	})
	if err != nil {
		w.log.Warn(ctx, "delete failed", "artwork", art.ID, "error", err)
		return err
	}

	w.log.Info(ctx, "artwork deleted", "artwork", art.ID)
	w.catalog.Reload(ctx)
	return nil
}

// guard checks that the current viewer may act on the latest catalog
// version of art. Must be called with mu held.
func (w *Workflow) guard(art models.Artwork, allowed func(models.Capabilities) bool) (models.User, models.Artwork, error) {
	viewer := w.viewer.CurrentViewer()
	if viewer == nil {
		return models.User{}, models.Artwork{}, ErrSignInRequired
	}

	latest, ok := w.catalog.ByID(art.ID)
	if !ok {
		return models.User{}, models.Artwork{}, ErrNotFound
	}
	if !allowed(permissions.Resolve(viewer, latest)) {
		return models.User{}, models.Artwork{}, ErrNotPermitted
	}
	return *viewer, latest, nil
}

// begin marks a request in flight. Must be called with mu held.
func (w *Workflow) begin() uint64 {
	w.inFlight = true
	return w.epoch
}

// finish applies fn if the flow that sent the request is still current and
// reports whether it was.
func (w *Workflow) finish(epoch uint64, fn func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if epoch != w.epoch {
		return false
	}
	w.inFlight = false
	fn()
	return true
}

// reset discards the current flow. Must be called with mu held.
func (w *Workflow) reset() {
	w.epoch++
	w.state = Idle
	w.subject = nil
	w.preview = Preview{}
	w.token = ""
	w.inFlight = false
}
