package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/regista/internal/domain/model"
)

// MemStore is an in-memory Store guarded by a RWMutex. Datasets live for
// the process lifetime only; there is no persistence.
type MemStore struct {
	mu    sync.RWMutex
	order []string // dataset ids in insertion order
	byID  map[string]Dataset
}

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// NewMemStore creates an empty in-memory dataset registry.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		byID: make(map[string]Dataset),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put stores ds, assigning a fresh id when none is set. A dataset with
// the same Source label is replaced in place, keeping its slot in the
// insertion order.
func (s *MemStore) Put(_ context.Context, ds Dataset) error {
	if ds.ID == "" {
		ds.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ds.Source != "" {
		for _, id := range s.order {
			if s.byID[id].Source == ds.Source {
				delete(s.byID, id)
				s.byID[ds.ID] = ds
				s.replaceID(id, ds.ID)
				return nil
			}
		}
	}

	s.byID[ds.ID] = ds
	s.order = append(s.order, ds.ID)
	return nil
}

// replaceID swaps old for new in the insertion order. Caller holds the lock.
func (s *MemStore) replaceID(old, new string) {
	for i, id := range s.order {
		if id == old {
			s.order[i] = new
			return
		}
	}
}

// Get returns a dataset by id.
func (s *MemStore) Get(_ context.Context, id string) (Dataset, error) {
	if id == "" {
		return Dataset{}, ErrEmptyID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.byID[id]
	if !ok {
		return Dataset{}, ErrNotFound
	}
	return ds, nil
}

// Remove deletes a dataset by id.
func (s *MemStore) Remove(_ context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns descriptors in insertion order.
func (s *MemStore) List(_ context.Context) []Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Info, 0, len(s.order))
	for _, id := range s.order {
		ds := s.byID[id]
		out = append(out, Info{
			ID:       ds.ID,
			Source:   ds.Source,
			League:   ds.League,
			Rows:     len(ds.Rows),
			LoadedAt: ds.LoadedAt,
		})
	}
	return out
}

// Merged returns a copy of all rows in insertion order, optionally
// restricted to one league.
func (s *MemStore) Merged(_ context.Context, league string) []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Player
	for _, id := range s.order {
		for _, row := range s.byID[id].Rows {
			if league != "" && row.League != league {
				continue
			}
			out = append(out, row)
		}
	}
	return out
}

// Count returns the number of datasets held.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// RowCount returns the number of player rows across all datasets.
func (s *MemStore) RowCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, ds := range s.byID {
		n += len(ds.Rows)
	}
	return n
}
