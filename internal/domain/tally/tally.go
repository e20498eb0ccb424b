// Package tally aggregates title counts over the finals table.
package tally

import (
	"iter"

	"github.com/okian/wcfinals/internal/domain/model"
)

// Option restricts which finals are counted.
type Option func(*filter)

type filter struct {
	upTo    int
	bounded bool
}

// UpTo counts only finals played in or before year.
func UpTo(year int) Option {
	return func(f *filter) {
		f.upTo = year
		f.bounded = true
	}
}

func (f filter) keep(m model.MatchRecord) bool {
	return !f.bounded || m.Year <= f.upTo
}

// WinCount returns how many finals country won. A country that never won
// yields 0.
func WinCount(records iter.Seq[model.MatchRecord], country string) int {
	n := 0
	for m := range records {
		if m.Winner == country {
			n++
		}
	}
	return n
}

// WinCounts groups finals by winner. Countries appear in order of their
// first title; countries without a title in range are omitted.
func WinCounts(records iter.Seq[model.MatchRecord], opts ...Option) []model.CountryWins {
	var f filter
	for _, opt := range opts {
		opt(&f)
	}

	idx := make(map[string]int)
	var out []model.CountryWins
	for m := range records {
		if !f.keep(m) {
			continue
		}
		i, ok := idx[m.Winner]
		if !ok {
			i = len(out)
			idx[m.Winner] = i
			out = append(out, model.CountryWins{Country: m.Winner})
		}
		out[i].Wins++
	}
	return out
}

// Total sums wins across counts.
func Total(counts []model.CountryWins) int {
	sum := 0
	for _, c := range counts {
		sum += c.Wins
	}
	return sum
}
