package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/memory"
	"homework_status_bot/internal/infra/practicum"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type fetchCall struct {
	fromDate int64
}

// stubFetcher returns queued answers in order, repeating the last one.
type stubFetcher struct {
	answers []stubAnswer
	calls   []fetchCall
}

type stubAnswer struct {
	body string
	err  error
}

func (f *stubFetcher) Fetch(_ context.Context, fromDate int64) (practicum.Response, error) {
	f.calls = append(f.calls, fetchCall{fromDate: fromDate})
	idx := len(f.calls) - 1
	if idx >= len(f.answers) {
		idx = len(f.answers) - 1
	}
	a := f.answers[idx]
	if a.err != nil {
		return nil, a.err
	}
	var resp practicum.Response
	if err := json.Unmarshal([]byte(a.body), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, text string) {
	n.messages = append(n.messages, text)
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegramClient struct {
	sent []sentMessage
	err  error
}

func (c *fakeTelegramClient) SendMessage(chatID int64, text string, _ *telebot.SendOptions) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

// countingWaiter cancels the run after limit waits.
type countingWaiter struct {
	limit  int
	waits  int
	cancel context.CancelFunc
}

func (w *countingWaiter) Wait(ctx context.Context) error {
	w.waits++
	if w.waits >= w.limit {
		w.cancel()
	}
	return ctx.Err()
}

type failingTracker struct {
	*memory.Tracker
}

func (failingTracker) LastNotified(context.Context, string) (homework.UpdateToken, bool, error) {
	return "", false, errors.New("tracker unavailable")
}
