package app

import (
	"fmt"
	"strconv"

	"lane-assist/internal/domain/entity"
)

const (
	// RightLaneBoundary доля ширины кадра, правее которой середина отрезка считается "справа"
	RightLaneBoundary = 0.6
	// RightLaneMajority доля отрезков справа, которую нужно строго превысить
	RightLaneMajority = 0.7

	textInRightLane    = "IN RIGHT LANE"
	textNotInRightLane = "NOT IN RIGHT LANE"
)

// FrameAnnotator решает, находится ли машина в правой полосе, и собирает надписи оверлея
type FrameAnnotator struct {
	colors entity.ColorScheme
	unit   string
}

// NewFrameAnnotator создаёт аннотатор с цветовой схемой и единицей скорости
func NewFrameAnnotator(colors entity.ColorScheme, unit string) *FrameAnnotator {
	return &FrameAnnotator{colors: colors, unit: unit}
}

// Classify классифицирует кадр по найденным отрезкам
func (a *FrameAnnotator) Classify(segments []entity.LineSegment, frameWidth int, analysis entity.SpeedAnalysis) entity.LaneClassification {
	inRightLane := false
	if len(segments) > 0 {
		boundary := float64(frameWidth) * RightLaneBoundary
		right := 0
		for _, s := range segments {
			if s.MidX() > boundary {
				right++
			}
		}
		inRightLane = float64(right)/float64(len(segments)) > RightLaneMajority
	}

	out := entity.LaneClassification{
		InRightLane:  inRightLane,
		LaneColor:    a.colors.NotInLane,
		LaneText:     textNotInRightLane,
		SpeedColor:   a.colors.SpeedColor(analysis.Status),
		SpeedText:    fmt.Sprintf("SPEED: %s%s", strconv.FormatFloat(analysis.Current, 'f', -1, 64), a.unit),
		SegmentColor: a.colors.InLane,
	}
	if inRightLane {
		out.LaneColor = a.colors.InLane
		out.LaneText = textInRightLane
	}
	return out
}
