package sleeper

import (
	"context"
	"fmt"

	"github.com/anorum/hoyt-fantasy-stats/internal/models"
)

// GetLeague fetches league metadata.
func (c *Client) GetLeague(ctx context.Context, leagueID string) (*models.LeagueInfo, error) {
	path := fmt.Sprintf("/league/%s", leagueID)

	var league models.LeagueInfo
	if err := c.get(ctx, path, &league); err != nil {
		return nil, err
	}

	// Sleeper returns a JSON null body for unknown league IDs.
	if league.LeagueID == "" {
		return nil, &DataFormatError{Op: path, Err: fmt.Errorf("league %s not found", leagueID)}
	}

	return &league, nil
}

// GetUsers fetches every user in the league.
func (c *Client) GetUsers(ctx context.Context, leagueID string) ([]models.User, error) {
	path := fmt.Sprintf("/league/%s/users", leagueID)

	var users []models.User
	if err := c.get(ctx, path, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// GetRosters fetches the league's rosters, which map owners to roster slots.
func (c *Client) GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error) {
	path := fmt.Sprintf("/league/%s/rosters", leagueID)

	var rosters []models.Roster
	if err := c.get(ctx, path, &rosters); err != nil {
		return nil, err
	}

	for _, r := range rosters {
		if r.RosterID <= 0 {
			return nil, &DataFormatError{Op: path, Err: fmt.Errorf("roster entry missing roster_id")}
		}
	}

	return rosters, nil
}

// GetMatchups fetches every roster's score line for one week. An unplayed week
// comes back as an empty list or all-zero points; the caller decides what to
// do with that.
func (c *Client) GetMatchups(ctx context.Context, leagueID string, week int) ([]models.MatchupEntry, error) {
	path := fmt.Sprintf("/league/%s/matchups/%d", leagueID, week)

	var entries []models.MatchupEntry
	if err := c.get(ctx, path, &entries); err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.RosterID <= 0 {
			return nil, &DataFormatError{Op: path, Err: fmt.Errorf("matchup entry missing roster_id")}
		}
	}

	return entries, nil
}
