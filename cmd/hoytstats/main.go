// Command hoytstats prints season stat reports for a Sleeper fantasy league.
//
// Usage:
//
//	hoytstats report [--telegram]
//	hoytstats sql "SELECT team_name, AVG(points) FROM matchups GROUP BY 1"
//	hoytstats team "UGF Pandas"
//	hoytstats serve
//
// Configuration comes from the environment (or a .env file): LEAGUE_ID,
// FIRST_WEEK, LAST_WEEK, and optionally TELEGRAM_TOKEN and CHAT_ID.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/anorum/hoyt-fantasy-stats/internal/api/sleeper"
	"github.com/anorum/hoyt-fantasy-stats/internal/bot"
	"github.com/anorum/hoyt-fantasy-stats/internal/config"
	"github.com/anorum/hoyt-fantasy-stats/internal/scheduler"
	"github.com/anorum/hoyt-fantasy-stats/internal/service"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded .env file")
	}

	root := &cobra.Command{
		Use:           "hoytstats",
		Short:         "Sleeper fantasy league stats reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(reportCmd())
	root.AddCommand(sqlCmd())
	root.AddCommand(teamCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		logger.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func newService() (*service.StatsService, *config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	client := sleeper.NewClient("", logger)
	return service.NewStatsService(client, cfg.Sleeper, logger), cfg, nil
}

func reportCmd() *cobra.Command {
	var toTelegram bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Fetch the season and print the full stat report",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}

			report, err := svc.Report(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Print(report)

			if toTelegram {
				notifier, err := bot.NewNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
				if err != nil {
					return err
				}
				return notifier.Send(report)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&toTelegram, "telegram", false, "Also push the report to the configured Telegram chat")
	return cmd
}

func sqlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sql <query>",
		Short: "Build the matchups table and run one ad-hoc SELECT against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}

			out, err := svc.RunSQL(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Print(out)
			return nil
		},
	}
}

func teamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team <name>",
		Short: "Print one team's season record and weekly results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}

			out, err := svc.TeamSummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Print(out)
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Deliver the report to Telegram on a weekly schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := newService()
			if err != nil {
				return err
			}

			notifier, err := bot.NewNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
			if err != nil {
				return err
			}

			sched, err := scheduler.NewScheduler(svc, notifier.Send)
			if err != nil {
				return err
			}

			if err := sched.Start(); err != nil {
				return err
			}
			defer func() {
				if err := sched.Stop(); err != nil {
					logger.Error("Error stopping scheduler", "error", err)
				}
			}()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			<-ctx.Done()
			logger.Info("Shutting down gracefully...")
			return nil
		},
	}
}
