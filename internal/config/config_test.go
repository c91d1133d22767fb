package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("LEAGUE_ID", "123456789")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "123456789", cfg.Sleeper.LeagueID)
	assert.Equal(t, 1, cfg.Sleeper.FirstWeek)
	assert.Equal(t, 17, cfg.Sleeper.LastWeek)
	assert.Empty(t, cfg.Telegram.Token)
}

func TestNewMissingLeagueID(t *testing.T) {
	t.Setenv("LEAGUE_ID", "")

	_, err := New()
	require.Error(t, err)
	var cerr *Error
	assert.True(t, errors.As(err, &cerr))
}

func TestNewInvertedWeekRange(t *testing.T) {
	t.Setenv("LEAGUE_ID", "123")
	t.Setenv("FIRST_WEEK", "10")
	t.Setenv("LAST_WEEK", "3")

	_, err := New()
	require.Error(t, err)
	var cerr *Error
	assert.True(t, errors.As(err, &cerr))
}

func TestNewFirstWeekBelowOne(t *testing.T) {
	t.Setenv("LEAGUE_ID", "123")
	t.Setenv("FIRST_WEEK", "0")

	_, err := New()
	require.Error(t, err)
}
