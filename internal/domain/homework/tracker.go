package homework

import "context"

// Tracker remembers the last notified update token per homework.
type Tracker interface {
	// LastNotified returns the token recorded for key; ok is false if none.
	LastNotified(ctx context.Context, key string) (token UpdateToken, ok bool, err error)
	MarkNotified(ctx context.Context, key string, token UpdateToken) error
}
