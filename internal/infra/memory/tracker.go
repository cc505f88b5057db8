package memory

import (
	"context"

	"homework_status_bot/internal/domain/homework"
)

// Tracker keeps notified update tokens for the lifetime of the process.
// It is used from the poller goroutine only.
type Tracker struct {
	tokens map[string]homework.UpdateToken
}

func NewTracker() *Tracker {
	return &Tracker{tokens: make(map[string]homework.UpdateToken)}
}

func (t *Tracker) LastNotified(_ context.Context, key string) (homework.UpdateToken, bool, error) {
	tok, ok := t.tokens[key]
	return tok, ok, nil
}

func (t *Tracker) MarkNotified(_ context.Context, key string, token homework.UpdateToken) error {
	t.tokens[key] = token
	return nil
}
