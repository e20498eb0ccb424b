// Package repository exposes read access to the World Cup finals table.
package repository

import (
	"context"
	"iter"

	"github.com/okian/wcfinals/internal/domain/model"
)

// Store provides read access to the finals dataset. Implementations are
// immutable after construction and safe for concurrent use.
type Store interface {
	// Records yields every final in dataset order without copying the table.
	Records(ctx context.Context) iter.Seq[model.MatchRecord]

	// ByYear returns the final played in year.
	// Returns ErrNotFound if no final was played that year.
	ByYear(ctx context.Context, year int) (model.MatchRecord, error)

	// Winners returns the distinct winners in order of first title.
	Winners(ctx context.Context) []string

	// Years returns every final year in ascending order.
	Years(ctx context.Context) []int

	// Count returns the number of finals in the dataset.
	Count(ctx context.Context) int
}
