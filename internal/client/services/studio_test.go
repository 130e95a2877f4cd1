package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/artspace/internal/client/client"
	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var png = models.Attachment{Name: "dusk.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}

func TestUpload_ArtistIsViewer(t *testing.T) {
	fc := &fakeClient{}
	s := newSession(t)
	signIn(t, s, mali)
	r := &fakeReloader{}
	svc := NewStudioService(fc, s, r, logging.Nop())

	err := svc.Upload(context.Background(), Listing{Title: " Dusk ", Price: 500, Category: "painting", Image: png})
	require.NoError(t, err)

	require.NotNil(t, fc.LastUpload)
	assert.Equal(t, client.UploadRequest{
		Title:    "Dusk",
		Price:    500,
		Category: "painting",
		Artist:   "Mali",
		Image:    png,
	}, *fc.LastUpload)
	assert.Equal(t, 1, r.calls)
}

func TestUpload_Validation(t *testing.T) {
	s := newSession(t)
	r := &fakeReloader{}
	fc := &fakeClient{}
	svc := NewStudioService(fc, s, r, logging.Nop())
	ctx := context.Background()

	require.ErrorIs(t, svc.Upload(ctx, Listing{Title: "Dusk", Category: "painting", Image: png}), ErrNotSignedIn)

	signIn(t, s, mali)
	require.ErrorIs(t, svc.Upload(ctx, Listing{Category: "painting", Image: png}), ErrMissingField)
	require.ErrorIs(t, svc.Upload(ctx, Listing{Title: "Dusk", Category: "painting"}), ErrMissingField)
	require.ErrorIs(t, svc.Upload(ctx, Listing{Title: "Dusk", Category: "painting", Price: -5, Image: png}), ErrInvalidPrice)

	assert.Nil(t, fc.LastUpload)
	assert.Equal(t, 0, r.calls)
}

func TestUpload_FailureDoesNotReload(t *testing.T) {
	fc := &fakeClient{UploadErr: errors.New("server unavailable")}
	s := newSession(t)
	signIn(t, s, mali)
	r := &fakeReloader{}
	svc := NewStudioService(fc, s, r, logging.Nop())

	require.Error(t, svc.Upload(context.Background(), Listing{Title: "Dusk", Category: "painting", Image: png}))
	assert.Equal(t, 0, r.calls)
}
