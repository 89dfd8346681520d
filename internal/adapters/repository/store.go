// Package repository defines the dataset registry interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/okian/regista/internal/domain/model"
)

// Dataset is one loaded CSV export held in memory.
type Dataset struct {
	ID       string
	Source   string // caller-facing label, e.g. "preloaded" or an upload name
	League   string // explicit league label, empty for combined exports
	Rows     []model.Player
	LoadedAt time.Time
}

// Info is the descriptor returned to API callers.
type Info struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	League   string    `json:"league,omitempty"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Store provides access to the loaded datasets.
//
// Insertion order is preserved: Merged concatenates rows in the order the
// datasets arrived, so the pipeline's stable tie-break stays meaningful
// across requests.
type Store interface {
	// Put stores a dataset. A dataset with the same Source label is
	// replaced in place (the preloaded-file reload path).
	Put(ctx context.Context, ds Dataset) error

	// Get returns a dataset by id. Returns ErrNotFound if unknown.
	Get(ctx context.Context, id string) (Dataset, error)

	// Remove deletes a dataset by id. Returns ErrNotFound if unknown.
	Remove(ctx context.Context, id string) error

	// List returns descriptors for every dataset in insertion order.
	List(ctx context.Context) []Info

	// Merged returns a copy of all rows in insertion order. A non-empty
	// league restricts the view to rows of that league.
	Merged(ctx context.Context, league string) []model.Player

	// Count returns the number of datasets held.
	Count(ctx context.Context) int

	// RowCount returns the number of player rows across all datasets.
	RowCount(ctx context.Context) int
}
