package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lane-assist/internal/domain/entity"
	"lane-assist/internal/domain/port"
)

func TestMemorySessionRepository_GetMissing(t *testing.T) {
	repo := NewMemorySessionRepository()
	_, err := repo.Get(context.Background(), "nope")
	require.ErrorIs(t, err, port.ErrSessionNotFound)
	require.ErrorIs(t, repo.UpdateState(context.Background(), "nope", entity.StateFailed), port.ErrSessionNotFound)
}

func TestMemorySessionRepository_SaveAndUpdate(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s := entity.NewSession("s1", 60)
	require.NoError(t, repo.Save(ctx, s))

	// изменения после Save не протекают в хранилище
	s.FramesProcessed = 99

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 0, got.FramesProcessed)

	require.NoError(t, repo.UpdateState(ctx, "s1", entity.StateProcessing))
	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, got.State)
}
