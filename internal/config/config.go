package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Error is a missing or invalid configuration value.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("config: %v", e.Err) }
func (e *Error) Unwrap() error { return e.Err }

type Config struct {
	Sleeper  Sleeper
	Telegram Telegram
}

type Sleeper struct {
	LeagueID  string `envconfig:"LEAGUE_ID" required:"true"`
	FirstWeek int    `envconfig:"FIRST_WEEK" default:"1"`
	LastWeek  int    `envconfig:"LAST_WEEK" default:"17"`
}

// Telegram is optional; reports go to stdout when it is unset.
type Telegram struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func New() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, &Error{Err: err}
	}
	if err := c.Sleeper.validate(); err != nil {
		return nil, &Error{Err: err}
	}
	return &c, nil
}

func (s Sleeper) validate() error {
	if s.LeagueID == "" {
		return fmt.Errorf("LEAGUE_ID must not be empty")
	}
	if s.FirstWeek < 1 {
		return fmt.Errorf("FIRST_WEEK must be at least 1, got %d", s.FirstWeek)
	}
	if s.LastWeek < s.FirstWeek {
		return fmt.Errorf("week range %d-%d is inverted", s.FirstWeek, s.LastWeek)
	}
	return nil
}
