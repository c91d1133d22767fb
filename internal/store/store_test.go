package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anorum/hoyt-fantasy-stats/internal/models"
)

func TestLoadAndQueryRoundtrip(t *testing.T) {
	st, err := Open()
	require.NoError(t, err)
	defer st.Close()

	records := []models.MatchupRecord{
		{Week: 1, RosterID: 1, TeamName: "A", MatchupID: 1, Points: 101.5, TopPlayerID: "p1", TopPlayerScore: 30.2, PlayersJSON: `{"p1":30.2}`, Won: true},
		{Week: 1, RosterID: 2, TeamName: "B", MatchupID: 1, Points: 88.0, Won: false},
	}
	require.NoError(t, st.Load(records))

	res, err := st.Query(`SELECT team_name, points, won FROM matchups ORDER BY points DESC`)
	require.NoError(t, err)

	assert.Equal(t, []string{"team_name", "points", "won"}, res.Columns)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "A", res.Rows[0][0])
	assert.InDelta(t, 101.5, res.Rows[0][1], 1e-9)
	assert.Equal(t, int64(1), res.Rows[0][2])
}

func TestQueryEmptyTable(t *testing.T) {
	st, err := Open()
	require.NoError(t, err)
	defer st.Close()

	res, err := st.Query(`SELECT team_name FROM matchups`)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Equal(t, []string{"team_name"}, res.Columns)
}

func TestQueryBadSQL(t *testing.T) {
	st, err := Open()
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Query(`SELECT nope FROM missing`)
	assert.Error(t, err)
}

func TestRowidPreservesInsertionOrder(t *testing.T) {
	st, err := Open()
	require.NoError(t, err)
	defer st.Close()

	// Identical points; rowid is the stable tiebreak.
	records := []models.MatchupRecord{
		{Week: 1, RosterID: 1, TeamName: "First", MatchupID: 1, Points: 100},
		{Week: 1, RosterID: 2, TeamName: "Second", MatchupID: 1, Points: 100},
	}
	require.NoError(t, st.Load(records))

	res, err := st.Query(`SELECT team_name FROM matchups ORDER BY points DESC, rowid`)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "First", res.Rows[0][0])
	assert.Equal(t, "Second", res.Rows[1][0])
}
