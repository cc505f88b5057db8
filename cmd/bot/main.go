package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/memory"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

// errNotConfigured marks a missing credential: the bot stays deactivated.
var errNotConfigured = errors.New("bot is not configured")

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Could not load application configuration: %v", err)
	}
	logger.Init(cfg)
	log := logger.Component("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		if errors.Is(err, errNotConfigured) {
			// Missing credentials: report and leave with exit code 0.
			log.WithError(err).Log(logrus.FatalLevel, "Required configuration is missing, bot deactivated")
			return
		}
		stop()
		log.WithError(err).Fatal("Bot stopped with error")
	}
	log.Info("Application shut down gracefully.")
}

// run validates cfg, wires the collaborators and polls until ctx is done.
// Nothing touches the network before validation succeeds.
func run(ctx context.Context, cfg *config.AppConfig) error {
	log := logger.Component("main")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errNotConfigured, err)
	}
	log.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"endpoint":    cfg.PracticumEndpoint,
		"schedule":    cfg.PollSchedule,
		"chat_id":     cfg.TelegramChatID,
	}).Info("Configuration loaded")

	pollSchedule, err := scheduler.Parse(cfg.PollSchedule, logger.Component("scheduler"))
	if err != nil {
		return err
	}

	var tracker homework.Tracker = memory.NewTracker()
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		defer db.Close()
		tracker = idb.NewPostgresTracker(db)
		log.Info("Using Postgres tracker for notified statuses")
	} else {
		log.Info("Using in-memory tracker for notified statuses")
	}

	bot, err := telegram.NewSendOnlyBot(telegram.Settings{
		Token:   cfg.TelegramToken,
		URL:     cfg.TelegramAPIURL,
		Timeout: cfg.RequestTimeout,
	})
	if err != nil {
		return err
	}

	notifier := app.NewChatNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logger.Component("notifier"))
	fetcher := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.RequestTimeout)
	poller := app.NewHomeworkPoller(fetcher, tracker, notifier, pollSchedule, logger.Component("poller"))

	return poller.Run(ctx)
}
