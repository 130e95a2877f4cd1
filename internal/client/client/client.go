package client

import (
	"context"

	"github.com/dmitrijs2005/artspace/internal/client/models"
)

// Client is the remote marketplace API as seen by the CLI.
type Client interface {
	Artworks(ctx context.Context) ([]models.Artwork, error)
	Register(ctx context.Context, name, email string, password []byte) (models.User, error)
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Upload(ctx context.Context, req UploadRequest) error
	Buy(ctx context.Context, id int64, buyer string, slip models.Attachment) error
	Edit(ctx context.Context, id int64, price int64, caption string) error
	DeleteArtwork(ctx context.Context, id int64) error
	DeleteAccount(ctx context.Context, email string) error
	Reset(ctx context.Context) error
	Users(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, email string) error
	Close() error
}

// UploadRequest is the multipart payload of /api/upload.
type UploadRequest struct {
	Title    string
	Price    int64
	Category string
	Artist   string
	Image    models.Attachment
}
