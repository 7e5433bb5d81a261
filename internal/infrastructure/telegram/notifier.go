package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lane-assist/internal/domain/port"
)

const snapshotFileName = "frame.jpg"

// sender часть tgbotapi.BotAPI, которая нужна оповещателю
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier отправляет оповещения о сессии в Telegram-чат
type Notifier struct {
	api    sender
	chatID int64
}

// NewNotifier авторизуется в Telegram и создаёт оповещатель
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return newNotifier(api, chatID), nil
}

func newNotifier(api sender, chatID int64) *Notifier {
	return &Notifier{api: api, chatID: chatID}
}

// Notify отправляет текстовое сообщение
func (n *Notifier) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// NotifyPhoto отправляет снимок кадра с подписью
func (n *Notifier) NotifyPhoto(ctx context.Context, caption string, jpeg []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	photo := tgbotapi.NewPhoto(n.chatID, tgbotapi.FileBytes{Name: snapshotFileName, Bytes: jpeg})
	photo.Caption = caption
	if _, err := n.api.Send(photo); err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.Notifier = (*Notifier)(nil)
