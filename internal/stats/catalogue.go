package stats

import (
	"github.com/anorum/hoyt-fantasy-stats/internal/models"
	"github.com/anorum/hoyt-fantasy-stats/internal/store"
)

// Stat is one entry of the report: a title and a read-only query over the
// matchups table.
type Stat struct {
	Title string
	Query string
}

// Catalogue lists every stat in report order. All queries are independent
// projections of the same table; ORDER BY clauses use rowid as the final
// tiebreak so output is stable across runs.
var Catalogue = []Stat{
	{
		Title: "Standings",
		Query: `
			SELECT team_name,
			       SUM(won) AS wins,
			       COUNT(*) - SUM(won) - SUM(tied) AS losses,
			       SUM(tied) AS ties,
			       AVG(points) AS avg_points
			FROM matchups
			GROUP BY team_name
			ORDER BY wins DESC, avg_points DESC`,
	},
	{
		Title: "Top 10 Scores",
		Query: `
			SELECT team_name, week, points
			FROM matchups
			ORDER BY points DESC, rowid
			LIMIT 10`,
	},
	{
		Title: "Bottom 10 Scores",
		Query: `
			SELECT team_name, week, points
			FROM matchups
			ORDER BY points ASC, rowid
			LIMIT 10`,
	},
	{
		Title: "Most Weekly High Scores",
		Query: `
			SELECT team_name,
			       COUNT(*) AS high_scores,
			       GROUP_CONCAT(week, ', ') AS weeks
			FROM matchups m
			WHERE points = (SELECT MAX(points) FROM matchups w WHERE w.week = m.week)
			GROUP BY team_name
			ORDER BY high_scores DESC, team_name`,
	},
	{
		Title: "Most Weekly Low Scores",
		Query: `
			SELECT team_name,
			       COUNT(*) AS low_scores,
			       GROUP_CONCAT(week, ', ') AS weeks
			FROM matchups m
			WHERE points = (SELECT MIN(points) FROM matchups w WHERE w.week = m.week)
			GROUP BY team_name
			ORDER BY low_scores DESC, team_name`,
	},
	{
		Title: "Most Wins vs Lowest Opponent",
		Query: `
			SELECT m.team_name,
			       COUNT(*) AS wins,
			       GROUP_CONCAT(m.week, ', ') AS weeks
			FROM matchups m
			JOIN matchups o
			  ON o.week = m.week AND o.matchup_id = m.matchup_id AND o.roster_id != m.roster_id
			WHERE m.won = 1
			  AND o.points = (SELECT MIN(points) FROM matchups w WHERE w.week = m.week)
			GROUP BY m.team_name
			ORDER BY wins DESC, m.team_name`,
	},
	{
		Title: "Most Losses vs Highest Opponent",
		Query: `
			SELECT m.team_name,
			       COUNT(*) AS losses,
			       GROUP_CONCAT(m.week, ', ') AS weeks
			FROM matchups m
			JOIN matchups o
			  ON o.week = m.week AND o.matchup_id = m.matchup_id AND o.roster_id != m.roster_id
			WHERE m.won = 0 AND m.tied = 0
			  AND o.points = (SELECT MAX(points) FROM matchups w WHERE w.week = m.week)
			GROUP BY m.team_name
			ORDER BY losses DESC, m.team_name`,
	},
	{
		Title: "Head-to-Head Records",
		Query: `
			SELECT m.team_name,
			       o.team_name AS opponent,
			       SUM(m.won) AS wins,
			       SUM(o.won) AS losses,
			       SUM(m.tied) AS ties
			FROM matchups m
			JOIN matchups o
			  ON o.week = m.week AND o.matchup_id = m.matchup_id AND o.roster_id != m.roster_id
			GROUP BY m.team_name, o.team_name
			ORDER BY m.team_name, o.team_name`,
	},
	{
		// Population standard deviation; lower means steadier scoring.
		// MAX(..., 0) absorbs float rounding below zero for constant scorers.
		Title: "Consistency Score",
		Query: `
			SELECT team_name,
			       COUNT(*) AS games,
			       SQRT(MAX(AVG(points * points) - AVG(points) * AVG(points), 0)) AS std_dev
			FROM matchups
			GROUP BY team_name
			ORDER BY std_dev ASC, team_name`,
	},
	{
		Title: "Avg Points in Wins",
		Query: `
			SELECT team_name,
			       COUNT(*) AS wins,
			       AVG(points) AS avg_points,
			       MIN(points) AS min_points,
			       MAX(points) AS max_points
			FROM matchups
			WHERE won = 1
			GROUP BY team_name
			ORDER BY avg_points DESC`,
	},
	{
		Title: "Avg Points in Losses",
		Query: `
			SELECT team_name,
			       COUNT(*) AS losses,
			       AVG(points) AS avg_points,
			       MIN(points) AS min_points,
			       MAX(points) AS max_points
			FROM matchups
			WHERE won = 0 AND tied = 0
			GROUP BY team_name
			ORDER BY avg_points DESC`,
	},
	{
		Title: "Most Dominant Wins",
		Query: `
			SELECT m.team_name,
			       o.team_name AS opponent,
			       m.week,
			       m.points,
			       o.points AS opp_points,
			       m.points - o.points AS margin
			FROM matchups m
			JOIN matchups o
			  ON o.week = m.week AND o.matchup_id = m.matchup_id AND o.roster_id != m.roster_id
			WHERE m.points > o.points
			ORDER BY margin DESC, m.rowid
			LIMIT 10`,
	},
	{
		// roster_id < opponent keeps each physical game to a single row.
		Title: "Closest Matchups",
		Query: `
			SELECT m.team_name,
			       o.team_name AS opponent,
			       m.week,
			       m.points,
			       o.points AS opp_points,
			       ABS(m.points - o.points) AS margin
			FROM matchups m
			JOIN matchups o
			  ON o.week = m.week AND o.matchup_id = m.matchup_id AND m.roster_id < o.roster_id
			ORDER BY margin ASC, m.rowid
			LIMIT 10`,
	},
	{
		// All-play expectation: a week's expected wins is the share of other
		// teams outscored that week. Positive luck = more actual wins than the
		// scores deserved.
		Title: "Lucky/Unlucky Record",
		Query: `
			WITH all_play AS (
				SELECT m.team_name,
				       m.won,
				       CAST((SELECT COUNT(*) FROM matchups b
				             WHERE b.week = m.week AND b.points < m.points) AS REAL) /
				       (SELECT COUNT(*) - 1 FROM matchups w WHERE w.week = m.week) AS expected
				FROM matchups m
			)
			SELECT team_name,
			       SUM(won) AS actual_wins,
			       SUM(expected) AS expected_wins,
			       SUM(won) - SUM(expected) AS luck
			FROM all_play
			GROUP BY team_name
			ORDER BY luck DESC, team_name`,
	},
	{
		// Mean absolute week-over-week swing; needs at least two weeks.
		Title: "Week-to-Week Volatility",
		Query: `
			WITH deltas AS (
				SELECT team_name,
				       ABS(points - LAG(points) OVER (PARTITION BY roster_id ORDER BY week)) AS delta
				FROM matchups
			)
			SELECT team_name,
			       AVG(delta) AS volatility
			FROM deltas
			WHERE delta IS NOT NULL
			GROUP BY team_name
			ORDER BY volatility DESC, team_name`,
	},
}

// Run executes the full catalogue in order against the store.
func Run(st *store.Store) ([]models.Result, error) {
	results := make([]models.Result, 0, len(Catalogue))
	for _, stat := range Catalogue {
		res, err := st.Query(stat.Query)
		if err != nil {
			return nil, err
		}
		res.Title = stat.Title
		results = append(results, *res)
	}
	return results, nil
}
