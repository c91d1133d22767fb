package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/sync/errgroup"

	"github.com/anorum/hoyt-fantasy-stats/internal/api/sleeper"
	"github.com/anorum/hoyt-fantasy-stats/internal/config"
	"github.com/anorum/hoyt-fantasy-stats/internal/models"
	"github.com/anorum/hoyt-fantasy-stats/internal/report"
	"github.com/anorum/hoyt-fantasy-stats/internal/stats"
	"github.com/anorum/hoyt-fantasy-stats/internal/store"
)

// StatsService runs the pipeline: fetch league data, normalize it into the
// matchups table, and answer report/query requests against it.
type StatsService struct {
	client *sleeper.Client
	cfg    config.Sleeper
	logger *slog.Logger
}

func NewStatsService(client *sleeper.Client, cfg config.Sleeper, logger *slog.Logger) *StatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsService{client: client, cfg: cfg, logger: logger}
}

// BuildStore fetches everything for the configured week range and loads the
// matchups table. Week fetches run concurrently; nothing is normalized until
// every response is in. The caller owns the returned store.
func (s *StatsService) BuildStore(ctx context.Context) (*store.Store, *models.LeagueInfo, error) {
	s.logger.Info("Fetching league info", "league", s.cfg.LeagueID)
	league, err := s.client.GetLeague(ctx, s.cfg.LeagueID)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("League found", "name", league.Name, "season", league.Season)

	var users []models.User
	var rosters []models.Roster
	weeks := make([][]models.MatchupEntry, s.cfg.LastWeek-s.cfg.FirstWeek+1)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.client.GetUsers(gctx, s.cfg.LeagueID)
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = s.client.GetRosters(gctx, s.cfg.LeagueID)
		return err
	})
	for i := range weeks {
		week := s.cfg.FirstWeek + i
		g.Go(func() error {
			entries, err := s.client.GetMatchups(gctx, s.cfg.LeagueID, week)
			if err != nil {
				return err
			}
			weeks[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	names := stats.TeamNames(users, rosters)

	var records []models.MatchupRecord
	for i, entries := range weeks {
		week := s.cfg.FirstWeek + i
		recs, err := stats.NormalizeWeek(week, entries, names)
		if err != nil {
			return nil, nil, err
		}
		if recs == nil {
			s.logger.Info("Skipping unplayed week", "week", week)
			continue
		}
		records = append(records, recs...)
	}

	st, err := store.Open()
	if err != nil {
		return nil, nil, err
	}
	if err := st.Load(records); err != nil {
		st.Close()
		return nil, nil, err
	}
	s.logger.Info("Matchups table built", "records", len(records))

	return st, league, nil
}

// Report builds the table and renders the full stat catalogue.
func (s *StatsService) Report(ctx context.Context) (string, error) {
	st, league, err := s.BuildStore(ctx)
	if err != nil {
		return "", err
	}
	defer st.Close()

	results, err := stats.Run(st)
	if err != nil {
		return "", err
	}

	header := fmt.Sprintf("%s | Season %s | Weeks %d-%d",
		league.Name, league.Season, s.cfg.FirstWeek, s.cfg.LastWeek)
	return report.Render(header, results), nil
}

// RunSQL builds the table and runs one ad-hoc SELECT against it.
func (s *StatsService) RunSQL(ctx context.Context, query string) (string, error) {
	st, _, err := s.BuildStore(ctx)
	if err != nil {
		return "", err
	}
	defer st.Close()

	res, err := st.Query(query)
	if err != nil {
		return "", err
	}
	return report.RenderTable(*res), nil
}

// TeamSummary fuzzy-matches a team name and renders that team's season line
// and week-by-week results.
func (s *StatsService) TeamSummary(ctx context.Context, name string) (string, error) {
	st, _, err := s.BuildStore(ctx)
	if err != nil {
		return "", err
	}
	defer st.Close()

	teams, err := st.Query(`SELECT DISTINCT team_name FROM matchups ORDER BY team_name`)
	if err != nil {
		return "", err
	}

	match, ok := bestTeamMatch(name, teams.Rows)
	if !ok {
		return "", fmt.Errorf("team not found: %s", name)
	}

	record, err := st.Query(`
		SELECT team_name,
		       SUM(won) AS wins,
		       COUNT(*) - SUM(won) - SUM(tied) AS losses,
		       SUM(tied) AS ties,
		       AVG(points) AS avg_points
		FROM matchups
		WHERE team_name = ?
		GROUP BY team_name`, match)
	if err != nil {
		return "", err
	}
	record.Title = "Season Record"

	games, err := st.Query(`
		SELECT m.week,
		       m.points,
		       o.team_name AS opponent,
		       o.points AS opp_points,
		       CASE WHEN m.won = 1 THEN 'W' WHEN m.tied = 1 THEN 'T' ELSE 'L' END AS result
		FROM matchups m
		JOIN matchups o
		  ON o.week = m.week AND o.matchup_id = m.matchup_id AND o.roster_id != m.roster_id
		WHERE m.team_name = ?
		ORDER BY m.week`, match)
	if err != nil {
		return "", err
	}
	games.Title = "Weekly Results"

	return report.Render(match, []models.Result{*record, *games}), nil
}

// bestTeamMatch picks the team whose name is most similar to the input,
// requiring at least 60% similarity.
func bestTeamMatch(name string, rows [][]any) (string, bool) {
	const threshold = 0.6

	best := ""
	bestScore := -1.0
	for _, row := range rows {
		candidate, _ := row[0].(string)
		if candidate == "" {
			continue
		}

		distance := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(candidate))
		maxLen := float64(max(len(name), len(candidate)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			best = candidate
		}
	}

	return best, best != ""
}
