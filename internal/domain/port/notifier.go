package port

import "context"

// Notifier интерфейс отправки оповещений о сессии
type Notifier interface {
	// Notify отправляет текстовое сообщение
	Notify(ctx context.Context, text string) error

	// NotifyPhoto отправляет JPEG с подписью
	NotifyPhoto(ctx context.Context, caption string, jpeg []byte) error
}
