// Package store holds the season's matchup records in an in-memory SQLite
// table so the stat catalogue can stay declarative SQL.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/anorum/hoyt-fantasy-stats/internal/models"
)

const createMatchups = `
CREATE TABLE matchups (
	week             INTEGER NOT NULL,
	roster_id        INTEGER NOT NULL,
	team_name        TEXT    NOT NULL,
	matchup_id       INTEGER NOT NULL,
	points           REAL    NOT NULL,
	top_player_id    TEXT,
	top_player_score REAL    NOT NULL,
	players_json     TEXT,
	won              INTEGER NOT NULL,
	tied             INTEGER NOT NULL
)`

const insertMatchup = `
INSERT INTO matchups (
	week, roster_id, team_name, matchup_id, points,
	top_player_id, top_player_score, players_json, won, tied
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

type Store struct {
	db *sql.DB
}

// Open creates an empty in-memory matchups table.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection would get its own private :memory: database,
	// so pin the pool to one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(createMatchups); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create matchups table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load bulk-inserts the normalized records. Insertion order is preserved via
// rowid, which queries use as a stable tiebreak.
func (s *Store) Load(records []models.MatchupRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin load: %w", err)
	}

	stmt, err := tx.Prepare(insertMatchup)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.Week, r.RosterID, r.TeamName, r.MatchupID, r.Points,
			r.TopPlayerID, r.TopPlayerScore, r.PlayersJSON, r.Won, r.Tied,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}
	return nil
}

// Query runs an arbitrary SELECT and captures columns and rows generically.
func (s *Store) Query(query string, args ...any) (*models.Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	result := &models.Result{Columns: columns}
	for rows.Next() {
		cells := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		for i, c := range cells {
			if b, ok := c.([]byte); ok {
				cells[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	return result, nil
}
