package repository

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/okian/wcfinals/internal/domain/model"
)

// MemoryStore is an immutable, indexed, in-memory Store.
type MemoryStore struct {
	records []model.MatchRecord
	byYear  map[int]int // year -> index into records
	winners []string
	years   []int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore indexes records by year. Records are kept in the given order.
// Returns ErrEmptyDataset for no records and ErrDuplicateYear when two
// records share a year.
func NewMemoryStore(records []model.MatchRecord) (*MemoryStore, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	s := &MemoryStore{
		records: slices.Clone(records),
		byYear:  make(map[int]int, len(records)),
		years:   make([]int, 0, len(records)),
	}
	seen := make(map[string]struct{})
	for i, r := range s.records {
		if _, dup := s.byYear[r.Year]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateYear, r.Year)
		}
		s.byYear[r.Year] = i
		s.years = append(s.years, r.Year)
		if _, ok := seen[r.Winner]; !ok {
			seen[r.Winner] = struct{}{}
			s.winners = append(s.winners, r.Winner)
		}
	}
	slices.Sort(s.years)
	return s, nil
}

// Records yields every final in dataset order.
func (s *MemoryStore) Records(_ context.Context) iter.Seq[model.MatchRecord] {
	return func(yield func(model.MatchRecord) bool) {
		for _, r := range s.records {
			if !yield(r) {
				return
			}
		}
	}
}

// ByYear looks up a final by exact year.
func (s *MemoryStore) ByYear(_ context.Context, year int) (model.MatchRecord, error) {
	i, ok := s.byYear[year]
	if !ok {
		return model.MatchRecord{}, fmt.Errorf("%w: %d", ErrNotFound, year)
	}
	return s.records[i], nil
}

// Winners returns a copy of the distinct winner list.
func (s *MemoryStore) Winners(_ context.Context) []string {
	return slices.Clone(s.winners)
}

// Years returns a copy of the ascending year list.
func (s *MemoryStore) Years(_ context.Context) []int {
	return slices.Clone(s.years)
}

// Count returns the number of finals.
func (s *MemoryStore) Count(_ context.Context) int {
	return len(s.records)
}
