package port

import (
	"context"
	"errors"

	"lane-assist/internal/domain/entity"
)

// ErrSessionNotFound сессия с таким ID не создавалась
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	// Get возвращает сессию по ID или ErrSessionNotFound
	Get(ctx context.Context, sessionID string) (*entity.Session, error)

	// Save сохраняет сессию
	Save(ctx context.Context, session *entity.Session) error

	// UpdateState обновляет состояние сессии
	UpdateState(ctx context.Context, sessionID string, state entity.SessionState) error
}
