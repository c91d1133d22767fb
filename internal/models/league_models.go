package models

// MatchupRecord is one row of the matchups table: one roster in one week.
// Exactly two records share a (Week, MatchupID) pair. Ties leave Won false on
// both sides and set Tied instead.
type MatchupRecord struct {
	Week           int
	RosterID       int
	TeamName       string
	MatchupID      int
	Points         float64
	TopPlayerID    string
	TopPlayerScore float64
	PlayersJSON    string
	Won            bool
	Tied           bool
}

// Result is one stat's output: a small table with a title. Cells hold the
// database-native values (int64, float64, string, nil); formatting is the
// renderer's job.
type Result struct {
	Title   string
	Columns []string
	Rows    [][]any
}
