package stats

import (
	"encoding/json"
	"fmt"

	"github.com/anorum/hoyt-fantasy-stats/internal/api/sleeper"
	"github.com/anorum/hoyt-fantasy-stats/internal/models"
)

// TeamNames resolves a display name for every roster, preferring the owner's
// chosen team name, then the owner's account name, then a synthetic label.
func TeamNames(users []models.User, rosters []models.Roster) map[int]string {
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}

	names := make(map[int]string, len(rosters))
	for _, r := range rosters {
		names[r.RosterID] = resolveName(byID[r.OwnerID], r.RosterID)
	}
	return names
}

func resolveName(u models.User, rosterID int) string {
	if u.Metadata.TeamName != "" {
		return u.Metadata.TeamName
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return fmt.Sprintf("Team %d", rosterID)
}

// NormalizeWeek flattens one week's matchup entries into MatchupRecords,
// pairing each roster with its opponent to decide the outcome. A week with no
// entries, or where every roster scored zero, is treated as unplayed and
// yields no records. Equal scores leave Won false on both sides.
func NormalizeWeek(week int, entries []models.MatchupEntry, names map[int]string) ([]models.MatchupRecord, error) {
	if !played(entries) {
		return nil, nil
	}

	byMatchup := make(map[int][]models.MatchupEntry)
	for _, e := range entries {
		byMatchup[e.MatchupID] = append(byMatchup[e.MatchupID], e)
	}

	records := make([]models.MatchupRecord, 0, len(entries))
	for _, e := range entries {
		pair := byMatchup[e.MatchupID]
		if len(pair) != 2 {
			return nil, &sleeper.DataFormatError{
				Op:  fmt.Sprintf("week %d", week),
				Err: fmt.Errorf("matchup %d has %d rosters, want 2", e.MatchupID, len(pair)),
			}
		}

		opp := pair[0]
		if opp.RosterID == e.RosterID {
			opp = pair[1]
		}

		name, ok := names[e.RosterID]
		if !ok {
			name = fmt.Sprintf("Team %d", e.RosterID)
		}

		topID, topScore, playersJSON, err := topPlayer(e.PlayersPoints)
		if err != nil {
			return nil, &sleeper.DataFormatError{Op: fmt.Sprintf("week %d", week), Err: err}
		}

		records = append(records, models.MatchupRecord{
			Week:           week,
			RosterID:       e.RosterID,
			TeamName:       name,
			MatchupID:      e.MatchupID,
			Points:         e.Points,
			TopPlayerID:    topID,
			TopPlayerScore: topScore,
			PlayersJSON:    playersJSON,
			Won:            e.Points > opp.Points,
			Tied:           e.Points == opp.Points,
		})
	}

	return records, nil
}

func played(entries []models.MatchupEntry) bool {
	for _, e := range entries {
		if e.Points != 0 {
			return true
		}
	}
	return false
}

// topPlayer finds the highest-scoring player on the roster and serializes the
// positive player scores for passthrough. Score ties break to the smaller
// player ID so repeated runs agree.
func topPlayer(playersPoints map[string]float64) (string, float64, string, error) {
	scores := make(map[string]float64, len(playersPoints))
	var topID string
	var topScore float64

	for id, score := range playersPoints {
		if score <= 0 {
			continue
		}
		scores[id] = score
		if score > topScore || (score == topScore && (topID == "" || id < topID)) {
			topID = id
			topScore = score
		}
	}

	raw, err := json.Marshal(scores)
	if err != nil {
		return "", 0, "", fmt.Errorf("encoding player scores: %w", err)
	}

	return topID, topScore, string(raw), nil
}
