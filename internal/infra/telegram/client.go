// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"net/http"
	"time"

	"gopkg.in/telebot.v3"
)

// Settings describes how to reach the Bot API.
type Settings struct {
	Token   string
	URL     string // empty means the public Bot API
	Timeout time.Duration
}

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewSendOnlyBot builds a bot that never polls for updates.
// Offline mode skips the getMe call, so construction does no network I/O.
func NewSendOnlyBot(s Settings) (*telebot.Bot, error) {
	pref := telebot.Settings{
		URL:     s.URL,
		Token:   s.Token,
		Offline: true,
		Client:  &http.Client{Timeout: s.Timeout},
	}
	b, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return b, nil
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(telebot.ChatID(chatID), text, options)
	return err
}
