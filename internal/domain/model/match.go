// Package model contains domain models passed between layers.
package model

import "fmt"

// MatchRecord is the outcome of one World Cup final.
type MatchRecord struct {
	Year     int    `json:"year"`
	Winner   string `json:"winner"`
	RunnerUp string `json:"runner_up"`
	Score    string `json:"score"` // free-form, may carry extra-time or penalty notes
}

// String renders the record as a short "1930 Uruguay 4-2 Argentina" line.
func (m MatchRecord) String() string {
	return fmt.Sprintf("%d %s %s %s", m.Year, m.Winner, m.Score, m.RunnerUp)
}

// CountryWins pairs a country with the number of finals it won.
type CountryWins struct {
	Country string `json:"country"`
	Wins    int    `json:"wins"`
}
