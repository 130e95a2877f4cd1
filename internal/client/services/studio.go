package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/artspace/internal/client/client"
	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/logging"
)

// Listing is a new artwork as entered by its artist.
type Listing struct {
	Title    string
	Price    int64
	Category string
	Image    models.Attachment
}

// StudioService lists new works for the signed-in artist.
type StudioService interface {
	Upload(ctx context.Context, l Listing) error
}

type studioService struct {
	client  client.Client
	session Session
	catalog Reloader
	log     logging.Logger
}

func NewStudioService(c client.Client, s Session, r Reloader, log logging.Logger) StudioService {
	return &studioService{client: c, session: s, catalog: r, log: log}
}

// Upload publishes l with the viewer as artist and reloads the catalog.
func (s *studioService) Upload(ctx context.Context, l Listing) error {
	viewer := s.session.CurrentViewer()
	if viewer == nil {
		return ErrNotSignedIn
	}

	l.Title, l.Category = strings.TrimSpace(l.Title), strings.TrimSpace(l.Category)
	if l.Title == "" || l.Category == "" || len(l.Image.Data) == 0 {
		return ErrMissingField
	}
	if l.Price < 0 {
		return ErrInvalidPrice
	}

	err := s.client.Upload(ctx, client.UploadRequest{
		Title:    l.Title,
		Price:    l.Price,
		Category: l.Category,
		Artist:   viewer.Name,
		Image:    l.Image,
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "artwork uploaded", "title", l.Title, "artist", viewer.Name)
	s.catalog.Reload(ctx)
	return nil
}
