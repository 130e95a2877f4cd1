// Package catalog holds the artwork collection mirrored from the remote
// service and the queries the views run over it.
package catalog

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/logging"
)

// Source fetches the full collection. client.Client satisfies it.
type Source interface {
	Artworks(ctx context.Context) ([]models.Artwork, error)
}

// Catalog is an ordered snapshot of artworks, in server order.
type Catalog []models.Artwork

// Filter returns the items matching p without reordering them.
func (c Catalog) Filter(p Predicate) Catalog {
	out := make(Catalog, 0, len(c))
	for _, a := range c {
		if p(a) {
			out = append(out, a)
		}
	}
	return out
}

// ByID looks an artwork up by id.
func (c Catalog) ByID(id int64) (models.Artwork, bool) {
	for _, a := range c {
		if a.ID == id {
			return a, true
		}
	}
	return models.Artwork{}, false
}

// Store owns the current catalog. The collection is only ever replaced as a
// whole; callers get copies.
type Store struct {
	src Source
	log logging.Logger

	mu      sync.RWMutex
	items   Catalog
	started uint64
	applied uint64
}

func NewStore(src Source, log logging.Logger) *Store {
	return &Store{src: src, log: log, items: Catalog{}}
}

// Load fetches the collection and replaces the current one. A failed fetch
// yields an empty catalog. A response that arrives after a newer load has
// been applied is dropped and the newer catalog is returned.
func (s *Store) Load(ctx context.Context) Catalog {
	s.mu.Lock()
	s.started++
	seq := s.started
	s.mu.Unlock()

	items, err := s.src.Artworks(ctx)
	if err != nil {
		s.log.Warn(ctx, "catalog load failed, showing empty catalog", "error", err, "seq", seq)
		items = nil
	}

	next := make(Catalog, len(items))
	copy(next, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.applied {
		s.log.Debug(ctx, "discarding stale catalog response", "seq", seq, "applied", s.applied)
		return s.snapshot()
	}
	s.items = next
	s.applied = seq

	s.log.Debug(ctx, "catalog loaded", "items", len(next), "seq", seq)
	return s.snapshot()
}

// Reload is Load after a mutation.
func (s *Store) Reload(ctx context.Context) Catalog {
	return s.Load(ctx)
}

// Items returns a copy of the current catalog.
func (s *Store) Items() Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) ByID(id int64) (models.Artwork, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.ByID(id)
}

func (s *Store) Filter(p Predicate) Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Filter(p)
}

// snapshot must be called with mu held.
func (s *Store) snapshot() Catalog {
	out := make(Catalog, len(s.items))
	copy(out, s.items)
	return out
}
