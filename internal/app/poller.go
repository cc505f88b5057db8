// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/practicum"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const failurePrefix = "Сбой в работе программы"

// StatusFetcher returns the raw status API answer for updates since fromDate.
type StatusFetcher interface {
	Fetch(ctx context.Context, fromDate int64) (practicum.Response, error)
}

// Waiter blocks between polling cycles.
type Waiter interface {
	Wait(ctx context.Context) error
}

// HomeworkPoller owns the polling cursor and drives fetch, validate,
// format and notify once per cycle.
type HomeworkPoller struct {
	fetcher  StatusFetcher
	tracker  homework.Tracker
	notifier Notifier
	waiter   Waiter
	logger   *logrus.Entry
	now      func() time.Time

	currentTimestamp int64
}

func NewHomeworkPoller(
	fetcher StatusFetcher,
	tracker homework.Tracker,
	notifier Notifier,
	waiter Waiter,
	logger *logrus.Entry,
) *HomeworkPoller {
	p := &HomeworkPoller{
		fetcher:  fetcher,
		tracker:  tracker,
		notifier: notifier,
		waiter:   waiter,
		logger:   logger,
		now:      time.Now,
	}
	p.currentTimestamp = p.now().Unix()
	return p
}

// CurrentTimestamp returns the from_date used by the next cycle.
func (p *HomeworkPoller) CurrentTimestamp() int64 {
	return p.currentTimestamp
}

// Run polls until ctx is cancelled. Cycle errors are reported, never returned.
func (p *HomeworkPoller) Run(ctx context.Context) error {
	p.logger.Info("Homework poller started")
	for {
		if ctx.Err() != nil {
			break
		}

		cycleLogger := p.logger.WithField("cycle_id", uuid.NewString())
		if err := p.RunCycle(ctx, cycleLogger); err != nil {
			p.handleCycleError(ctx, cycleLogger, err)
		}

		if err := p.waiter.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			p.logger.WithError(err).Error("Poll schedule failed")
			return fmt.Errorf("poll schedule failed: %w", err)
		}
	}
	p.logger.Info("Homework poller stopped")
	return nil
}

// RunCycle performs one fetch and notifies about changed homeworks.
// The cursor advances to now whatever the outcome.
func (p *HomeworkPoller) RunCycle(ctx context.Context, logger *logrus.Entry) error {
	defer func() {
		p.currentTimestamp = p.now().Unix()
	}()

	logger = logger.WithField("from_date", p.currentTimestamp)
	logger.Debug("Requesting homework statuses")

	resp, err := p.fetcher.Fetch(ctx, p.currentTimestamp)
	if err != nil {
		return err
	}

	homeworks, err := practicum.CheckResponse(resp)
	if err != nil {
		return err
	}
	if len(homeworks) == 0 {
		logger.Debug("No homework status changes")
		return nil
	}

	for _, hw := range homeworks {
		if err := p.processHomework(ctx, logger, hw); err != nil {
			return err
		}
	}
	return nil
}

func (p *HomeworkPoller) processHomework(ctx context.Context, logger *logrus.Entry, hw homework.Homework) error {
	key := hw.Key()
	logger = logger.WithFields(logrus.Fields{
		"homework_key": key,
		"date_updated": string(hw.DateUpdated),
	})

	last, seen, err := p.tracker.LastNotified(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read notified state for %s: %w", key, err)
	}
	if seen && last == hw.DateUpdated {
		logger.Debug("Status already notified, skipping")
		return nil
	}

	message, err := homework.ParseStatus(hw)
	if err != nil {
		return err
	}

	if err := p.tracker.MarkNotified(ctx, key, hw.DateUpdated); err != nil {
		return fmt.Errorf("failed to record notified state for %s: %w", key, err)
	}
	logger.WithField("status", string(hw.Status)).Info("Homework status changed")
	p.notifier.Notify(ctx, message)
	return nil
}

func (p *HomeworkPoller) handleCycleError(ctx context.Context, logger *logrus.Entry, err error) {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		logger.WithError(err).Info("Cycle interrupted by shutdown")
		return
	}

	kind := homework.KindOf(err)
	if homework.IsRecognized(err) {
		message := fmt.Sprintf("%s: %v", failurePrefix, err)
		logger.WithField("kind", kind.String()).Error(message)
		p.notifier.Notify(ctx, message)
		return
	}

	logger.WithField("kind", kind.String()).WithError(err).Errorf("Unexpected error: %+v", err)
}
