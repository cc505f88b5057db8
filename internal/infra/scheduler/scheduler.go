package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollSchedule blocks the poller between cycles according to a cron schedule.
type PollSchedule struct {
	schedule cron.Schedule
	spec     string
	now      func() time.Time
	logger   *logrus.Entry
}

// Parse accepts standard five-field specs and descriptors such as "@every 10m".
func Parse(spec string, logger *logrus.Entry) (*PollSchedule, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return New(sched, spec, logger), nil
}

func New(schedule cron.Schedule, spec string, logger *logrus.Entry) *PollSchedule {
	return &PollSchedule{
		schedule: schedule,
		spec:     spec,
		now:      time.Now,
		logger:   logger,
	}
}

// Next returns the next activation after the current time.
func (s *PollSchedule) Next() time.Time {
	return s.schedule.Next(s.now())
}

// Wait sleeps until the next activation or until ctx is done.
func (s *PollSchedule) Wait(ctx context.Context) error {
	next := s.Next()
	delay := time.Until(next)
	if delay < 0 {
		delay = 0
	}
	s.logger.WithFields(logrus.Fields{
		"schedule": s.spec,
		"next_run": next.Format(time.RFC3339),
	}).Debug("Waiting for next poll")

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
