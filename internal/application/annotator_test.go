package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lane-assist/internal/domain/entity"
)

// segmentsWithRight строит total отрезков, у right из которых середина правее 0.6 ширины 1000
func segmentsWithRight(total, right int) []entity.LineSegment {
	out := make([]entity.LineSegment, 0, total)
	for i := 0; i < total; i++ {
		x := 100
		if i < right {
			x = 900
		}
		out = append(out, entity.LineSegment{X1: x - 10, Y1: 500, X2: x + 10, Y2: 300})
	}
	return out
}

func TestFrameAnnotator_NoSegments(t *testing.T) {
	a := NewFrameAnnotator(entity.DefaultColorScheme(), "km/h")
	got := a.Classify(nil, 1280, entity.SpeedAnalysis{Current: 40, Status: entity.SpeedNormal})

	colors := entity.DefaultColorScheme()
	require.False(t, got.InRightLane)
	require.Equal(t, colors.NotInLane, got.LaneColor)
	require.Equal(t, "NOT IN RIGHT LANE", got.LaneText)
	require.Equal(t, "SPEED: 40km/h", got.SpeedText)
}

func TestFrameAnnotator_Majority(t *testing.T) {
	a := NewFrameAnnotator(entity.DefaultColorScheme(), "km/h")
	analysis := entity.SpeedAnalysis{Current: 70, Status: entity.SpeedWarning}

	got := a.Classify(segmentsWithRight(10, 8), 1000, analysis)
	require.True(t, got.InRightLane)
	require.Equal(t, "IN RIGHT LANE", got.LaneText)
	require.Equal(t, entity.DefaultColorScheme().InLane, got.LaneColor)

	// ровно 0.7 не превышает порог
	got = a.Classify(segmentsWithRight(10, 7), 1000, analysis)
	require.False(t, got.InRightLane)
}

func TestFrameAnnotator_MidpointOnBoundaryIsNotRight(t *testing.T) {
	a := NewFrameAnnotator(entity.DefaultColorScheme(), "km/h")
	seg := []entity.LineSegment{{X1: 590, Y1: 0, X2: 610, Y2: 10}}
	got := a.Classify(seg, 1000, entity.SpeedAnalysis{})
	require.False(t, got.InRightLane)
}

func TestFrameAnnotator_SpeedColors(t *testing.T) {
	colors := entity.DefaultColorScheme()
	a := NewFrameAnnotator(colors, " mph")

	got := a.Classify(nil, 100, entity.SpeedAnalysis{Current: 60.5, Status: entity.SpeedWarning})
	require.Equal(t, colors.SpeedWarning, got.SpeedColor)
	require.Equal(t, "SPEED: 60.5 mph", got.SpeedText)

	got = a.Classify(nil, 100, entity.SpeedAnalysis{Current: 100, Status: entity.SpeedDanger})
	require.Equal(t, colors.SpeedDanger, got.SpeedColor)

	got = a.Classify(nil, 100, entity.SpeedAnalysis{Current: 10, Status: entity.SpeedNormal})
	require.Equal(t, colors.SpeedNormal, got.SpeedColor)
}
