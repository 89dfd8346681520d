package repository

import "errors"

// Sentinel kinds for dataset registry errors.
var (
	ErrNotFound  = errors.New("dataset not found")
	ErrEmptyID   = errors.New("dataset id must not be empty")
	ErrNilStore  = errors.New("store is nil")
	ErrNoDataset = errors.New("no dataset loaded")
)
