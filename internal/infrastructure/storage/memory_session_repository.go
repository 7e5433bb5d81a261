package storage

import (
	"context"
	"sync"

	"lane-assist/internal/domain/entity"
	"lane-assist/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище сессий
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*entity.Session),
	}
}

// Get возвращает копию сессии по ID
func (r *MemorySessionRepository) Get(ctx context.Context, sessionID string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[sessionID]
	if !exists {
		return nil, port.ErrSessionNotFound
	}

	copied := *session
	return &copied, nil
}

// Save сохраняет копию сессии
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	copied := *session

	r.mu.Lock()
	r.sessions[session.ID] = &copied
	r.mu.Unlock()

	return nil
}

// UpdateState обновляет состояние сессии
func (r *MemorySessionRepository) UpdateState(ctx context.Context, sessionID string, state entity.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[sessionID]
	if !exists {
		return port.ErrSessionNotFound
	}
	session.SetState(state)

	return nil
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
