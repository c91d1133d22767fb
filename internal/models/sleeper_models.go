package models

// LeagueInfo is the response from /league/{id}.
type LeagueInfo struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Status       string `json:"status"`
	TotalRosters int    `json:"total_rosters"`
}

// User is one entry of the /league/{id}/users response.
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Metadata    struct {
		TeamName string `json:"team_name"`
	} `json:"metadata"`
}

// Roster is one entry of the /league/{id}/rosters response.
type Roster struct {
	RosterID int    `json:"roster_id"`
	OwnerID  string `json:"owner_id"`
}

// MatchupEntry is one roster's line from /league/{id}/matchups/{week}.
type MatchupEntry struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     int                `json:"matchup_id"`
	Points        float64            `json:"points"`
	Players       []string           `json:"players"`
	PlayersPoints map[string]float64 `json:"players_points"`
}
