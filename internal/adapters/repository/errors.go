package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrNotFound      = errors.New("final not found")
	ErrDuplicateYear = errors.New("duplicate final year")
	ErrEmptyDataset  = errors.New("empty dataset")
)
