// internal/app/notifier.go
package app

import (
	"context"
	"errors"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Notifier delivers text to the configured chat. Delivery never fails from
// the caller's point of view.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// ChatNotifier sends every message to a single Telegram chat.
type ChatNotifier struct {
	client domainTelegram.Client
	chatID int64
	logger *logrus.Entry
}

func NewChatNotifier(client domainTelegram.Client, chatID int64, logger *logrus.Entry) *ChatNotifier {
	return &ChatNotifier{
		client: client,
		chatID: chatID,
		logger: logger.WithField("chat_id", chatID),
	}
}

// Notify sends text and logs the outcome. Errors are swallowed.
func (n *ChatNotifier) Notify(ctx context.Context, text string) {
	if err := ctx.Err(); err != nil {
		n.logger.WithError(err).Warn("Skipping Telegram message, shutting down")
		return
	}

	if err := n.client.SendMessage(n.chatID, text, nil); err != nil {
		derr := homework.Wrap(err, homework.KindDelivery, "Ошибка работы с телеграм")
		n.logger.WithFields(deliveryFields(err)).WithError(derr.Err).Error(derr.Message)
		return
	}
	n.logger.WithField("text", text).Info("Сообщение отправлено в телеграм")
}

func deliveryFields(err error) logrus.Fields {
	fields := logrus.Fields{"kind": homework.KindDelivery.String()}

	var floodErr telebot.FloodError
	if errors.As(err, &floodErr) {
		fields["retry_after"] = floodErr.RetryAfter
		return fields
	}
	var apiErr *telebot.Error
	if errors.As(err, &apiErr) {
		fields["telegram_code"] = apiErr.Code
	}
	return fields
}
