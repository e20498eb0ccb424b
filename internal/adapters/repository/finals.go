package repository

import "github.com/okian/wcfinals/internal/domain/model"

// finals is the compiled-in table of every World Cup final from 1930 to 2022.
var finals = [...]model.MatchRecord{
	{Year: 1930, Winner: "Uruguay", RunnerUp: "Argentina", Score: "4-2"},
	{Year: 1934, Winner: "Italy", RunnerUp: "Czechoslovakia", Score: "2-1"},
	{Year: 1938, Winner: "Italy", RunnerUp: "Hungary", Score: "4-2"},
	{Year: 1950, Winner: "Uruguay", RunnerUp: "Brazil", Score: "2-1"},
	{Year: 1954, Winner: "West Germany", RunnerUp: "Hungary", Score: "3-2"},
	{Year: 1958, Winner: "Brazil", RunnerUp: "Sweden", Score: "5-2"},
	{Year: 1962, Winner: "Brazil", RunnerUp: "Czechoslovakia", Score: "3-1"},
	{Year: 1966, Winner: "England", RunnerUp: "West Germany", Score: "4-2"},
	{Year: 1970, Winner: "Brazil", RunnerUp: "Italy", Score: "4-1"},
	{Year: 1974, Winner: "West Germany", RunnerUp: "Netherlands", Score: "2-1"},
	{Year: 1978, Winner: "Argentina", RunnerUp: "Netherlands", Score: "3-1"},
	{Year: 1982, Winner: "Italy", RunnerUp: "West Germany", Score: "3-1"},
	{Year: 1986, Winner: "Argentina", RunnerUp: "West Germany", Score: "3-2"},
	{Year: 1990, Winner: "West Germany", RunnerUp: "Argentina", Score: "1-0"},
	{Year: 1994, Winner: "Brazil", RunnerUp: "Italy", Score: "0-0 (3-2 pen)"},
	{Year: 1998, Winner: "France", RunnerUp: "Brazil", Score: "3-0"},
	{Year: 2002, Winner: "Brazil", RunnerUp: "Germany", Score: "2-0"},
	{Year: 2006, Winner: "Italy", RunnerUp: "France", Score: "1-1 (5-3 pen)"},
	{Year: 2010, Winner: "Spain", RunnerUp: "Netherlands", Score: "1-0"},
	{Year: 2014, Winner: "Germany", RunnerUp: "Argentina", Score: "1-0"},
	{Year: 2018, Winner: "France", RunnerUp: "Croatia", Score: "4-2"},
	{Year: 2022, Winner: "Argentina", RunnerUp: "France", Score: "3-3 (4-2 pen)"},
}

// finalsStore is built once; the table never changes for the process lifetime.
var finalsStore = func() *MemoryStore {
	s, err := NewMemoryStore(finals[:])
	if err != nil {
		panic("repository: invalid finals table: " + err.Error())
	}
	return s
}()

// NewFinalsStore returns the shared store over the compiled-in finals table.
func NewFinalsStore() *MemoryStore {
	return finalsStore
}
