package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anorum/hoyt-fantasy-stats/internal/api/sleeper"
	"github.com/anorum/hoyt-fantasy-stats/internal/config"
)

const (
	leagueBody  = `{"league_id":"123","name":"Hoyt League","season":"2024","total_rosters":2}`
	usersBody   = `[{"user_id":"u1","display_name":"alice","metadata":{"team_name":"Alpha"}},{"user_id":"u2","display_name":"bob","metadata":{}}]`
	rostersBody = `[{"roster_id":1,"owner_id":"u1"},{"roster_id":2,"owner_id":"u2"}]`

	week1Body    = `[{"roster_id":1,"matchup_id":1,"points":100},{"roster_id":2,"matchup_id":1,"points":80}]`
	week2Body    = `[{"roster_id":1,"matchup_id":1,"points":90},{"roster_id":2,"matchup_id":1,"points":95}]`
	unplayedBody = `[{"roster_id":1,"matchup_id":1,"points":0},{"roster_id":2,"matchup_id":1,"points":0}]`
)

func newTestService(t *testing.T, matchups map[string]http.HandlerFunc) *StatsService {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/league/123", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(leagueBody))
	})
	mux.HandleFunc("/league/123/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(usersBody))
	})
	mux.HandleFunc("/league/123/rosters", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rostersBody))
	})
	for path, handler := range matchups {
		mux.HandleFunc(path, handler)
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := sleeper.NewClient(srv.URL, nil)
	cfg := config.Sleeper{LeagueID: "123", FirstWeek: 1, LastWeek: 3}
	return NewStatsService(client, cfg, nil)
}

func serve(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func threeWeekSeason() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/league/123/matchups/1": serve(week1Body),
		"/league/123/matchups/2": serve(week2Body),
		"/league/123/matchups/3": serve(unplayedBody),
	}
}

func TestReportFullPipeline(t *testing.T) {
	svc := newTestService(t, threeWeekSeason())

	out, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out, "Hoyt League | Season 2024 | Weeks 1-3")
	assert.Contains(t, out, "=== Standings ===")
	assert.Contains(t, out, "=== Week-to-Week Volatility ===")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "bob")
	// Alpha averages (100+90)/2 over the two played weeks.
	assert.Contains(t, out, "95.00")

	// Section order follows the catalogue.
	assert.Less(t, strings.Index(out, "=== Standings ==="), strings.Index(out, "=== Top 10 Scores ==="))
}

func TestReportAllWeeksUnplayed(t *testing.T) {
	svc := newTestService(t, map[string]http.HandlerFunc{
		"/league/123/matchups/1": serve(unplayedBody),
		"/league/123/matchups/2": serve(unplayedBody),
		"/league/123/matchups/3": serve(`[]`),
	})

	out, err := svc.Report(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "(no data)")
	assert.Contains(t, out, "=== Standings ===")
}

func TestReportFetchFailureMidSeason(t *testing.T) {
	m := threeWeekSeason()
	m["/league/123/matchups/2"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	svc := newTestService(t, m)

	out, err := svc.Report(context.Background())
	require.Error(t, err)
	assert.Empty(t, out)

	var fe *sleeper.FetchError
	assert.True(t, errors.As(err, &fe))
}

func TestRunSQL(t *testing.T) {
	svc := newTestService(t, threeWeekSeason())

	out, err := svc.RunSQL(context.Background(), `SELECT COUNT(*) AS games FROM matchups`)
	require.NoError(t, err)
	assert.Contains(t, out, "games")
	assert.Contains(t, out, "4")
}

func TestTeamSummaryFuzzyMatch(t *testing.T) {
	svc := newTestService(t, threeWeekSeason())

	out, err := svc.TeamSummary(context.Background(), "alpa")
	require.NoError(t, err)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Season Record")
	assert.Contains(t, out, "Weekly Results")
	assert.Contains(t, out, "W")
	assert.Contains(t, out, "L")
}

func TestTeamSummaryUnknownTeam(t *testing.T) {
	svc := newTestService(t, threeWeekSeason())

	_, err := svc.TeamSummary(context.Background(), "zzzzzzzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "team not found")
}
