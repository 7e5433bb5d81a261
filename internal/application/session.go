package app

import (
	"context"

	"github.com/google/uuid"

	"lane-assist/internal/domain/entity"
	"lane-assist/internal/domain/port"
)

type SessionService struct {
	repo port.SessionRepository
}

func NewSessionService(repo port.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// Start создаёт новую сессию с уникальным ID
func (s *SessionService) Start(ctx context.Context, speedLimit float64) (*entity.Session, error) {
	session := entity.NewSession(uuid.NewString(), speedLimit)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, sessionID string) (*entity.Session, error) {
	return s.repo.Get(ctx, sessionID)
}

func (s *SessionService) Save(ctx context.Context, session *entity.Session) error {
	return s.repo.Save(ctx, session)
}

func (s *SessionService) SetState(ctx context.Context, sessionID string, state entity.SessionState) (*entity.Session, error) {
	if err := s.repo.UpdateState(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, sessionID)
}

func (s *SessionService) Finish(ctx context.Context, sessionID string) (*entity.Session, error) {
	return s.SetState(ctx, sessionID, entity.StateFinished)
}

func (s *SessionService) Fail(ctx context.Context, sessionID string) (*entity.Session, error) {
	return s.SetState(ctx, sessionID, entity.StateFailed)
}
