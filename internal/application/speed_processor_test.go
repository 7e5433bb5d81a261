package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lane-assist/internal/domain/entity"
)

func TestSpeedProcessor_EmptyWindow(t *testing.T) {
	p := NewSpeedProcessor(60)
	_, err := p.Analysis()
	require.ErrorIs(t, err, ErrEmptyWindow)
	require.Empty(t, p.Window())
}

func TestSpeedProcessor_WindowKeepsLastFive(t *testing.T) {
	p := NewSpeedProcessor(60)
	for i := 1; i <= 12; i++ {
		p.AddReading(entity.Speed(float64(i)))
		require.LessOrEqual(t, len(p.Window()), SpeedWindowSize)
	}
	require.Equal(t, []float64{8, 9, 10, 11, 12}, p.Window())

	a, err := p.Analysis()
	require.NoError(t, err)
	require.Equal(t, 12.0, a.Current)
	require.Equal(t, 10.0, a.Average)
}

func TestSpeedProcessor_SingleReadingAverage(t *testing.T) {
	p := NewSpeedProcessor(60)
	a := p.AddReading(entity.Speed(47))
	require.Equal(t, 47.0, a.Current)
	require.Equal(t, 47.0, a.Average)
}

func TestSpeedProcessor_StatusBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		speed  float64
		status entity.SpeedStatus
	}{
		{"at limit", 60, entity.SpeedNormal},
		{"just above limit", 60.01, entity.SpeedWarning},
		{"at danger threshold", 60 * DangerRatio, entity.SpeedWarning},
		{"just above danger threshold", 60*DangerRatio + 0.01, entity.SpeedDanger},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewSpeedProcessor(60).AddReading(entity.Speed(tc.speed))
			require.Equal(t, tc.status, a.Status)
		})
	}

	a := NewSpeedProcessor(60).AddReading(entity.Speed(60))
	require.Equal(t, 0.0, a.Factor)
}

func TestSpeedProcessor_InvalidReadingFallsBackToLimit(t *testing.T) {
	invalid := NewSpeedProcessor(60).AddReading(entity.ParseSpeedReading("fast"))
	exact := NewSpeedProcessor(60).AddReading(entity.Speed(60))
	require.Equal(t, exact, invalid)
}

func TestSpeedProcessor_CalibrationScenario(t *testing.T) {
	p := NewSpeedProcessor(60)
	speeds := []float64{40, 50, 60, 70, 80, 90, 100}
	statuses := []entity.SpeedStatus{
		entity.SpeedNormal, entity.SpeedNormal, entity.SpeedNormal,
		entity.SpeedWarning, entity.SpeedDanger, entity.SpeedDanger,
		entity.SpeedDanger,
	}
	factors := []float64{0, 0, 0, 0.5, 1, 1, 1}

	// 80 и 90 выше 60*1.3=78, поэтому уже DANGER
	for i, v := range speeds {
		a := p.AddReading(entity.Speed(v))
		require.Equal(t, statuses[i], a.Status, "speed %v", v)
		require.InDelta(t, factors[i], a.Factor, 1e-9, "speed %v", v)
	}
	require.Equal(t, []float64{60, 70, 80, 90, 100}, p.Window())
}

func TestSpeedProcessor_FactorMonotonicAndClamped(t *testing.T) {
	prev := -1.0
	for v := 0.0; v <= 150; v += 2.5 {
		a := NewSpeedProcessor(60).AddReading(entity.Speed(v))
		require.GreaterOrEqual(t, a.Factor, prev)
		require.GreaterOrEqual(t, a.Factor, 0.0)
		require.LessOrEqual(t, a.Factor, 1.0)
		prev = a.Factor
	}
}
