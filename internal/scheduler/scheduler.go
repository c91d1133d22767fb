package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/anorum/hoyt-fantasy-stats/internal/service"
)

// Scheduler rebuilds and delivers the season report every Tuesday morning,
// after Monday night games settle.
type Scheduler struct {
	s            gocron.Scheduler
	statsService *service.StatsService
	sendMessage  func(string) error
}

func NewScheduler(statsService *service.StatsService, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago")
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:            s,
		statsService: statsService,
		sendMessage:  sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendReport),
	)
	if err != nil {
		return fmt.Errorf("failed to create report job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendReport() {
	report, err := s.statsService.Report(context.Background())
	if err != nil {
		slog.Error("Failed to build report", "error", err)
		return
	}
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to deliver report", "error", err)
	}
}
