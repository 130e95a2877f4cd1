// Package metadata is a small key/value store in the local session database.
// It holds the signed-in viewer and a few client-side flags.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeyViewer     = "viewer"
	KeyLoginAt    = "login_at"
	KeyIntroShown = "intro_shown"
)

type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
