package entity

import "image/color"

// DetectionParameters параметры выделения границ и поиска линий для текущей скорости
type DetectionParameters struct {
	EdgeLowThreshold  int     // нижний порог Canny
	EdgeHighThreshold int     // верхний порог Canny
	LineVoteThreshold int     // порог голосов HoughLinesP
	ROIStartFraction  float64 // доля высоты кадра, с которой начинается ROI
	MinLineLength     int     // минимальная длина отрезка в пикселях
	MaxLineGap        int     // максимальный разрыв внутри отрезка
	BlurKernelSize    int     // размер ядра гауссова размытия
}

// ROIStart возвращает первую строку ROI для кадра заданной высоты
func (p DetectionParameters) ROIStart(frameHeight int) int {
	return int(float64(frameHeight) * p.ROIStartFraction)
}

// LineSegment отрезок, найденный детектором, в координатах полного кадра
type LineSegment struct {
	X1, Y1 int
	X2, Y2 int
}

// MidX возвращает координату X середины отрезка
func (s LineSegment) MidX() float64 {
	return float64(s.X1+s.X2) / 2
}

// ColorScheme цвета оверлея
type ColorScheme struct {
	InLane       color.RGBA // надпись "в правой полосе" и найденные линии
	NotInLane    color.RGBA // надпись "не в правой полосе"
	SpeedNormal  color.RGBA
	SpeedWarning color.RGBA
	SpeedDanger  color.RGBA
}

// DefaultColorScheme зелёный/красный для полосы и светофор для скорости
func DefaultColorScheme() ColorScheme {
	green := color.RGBA{G: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	return ColorScheme{
		InLane:       green,
		NotInLane:    red,
		SpeedNormal:  green,
		SpeedWarning: color.RGBA{R: 255, G: 255, A: 255},
		SpeedDanger:  red,
	}
}

// SpeedColor возвращает цвет надписи скорости для статуса
func (c ColorScheme) SpeedColor(status SpeedStatus) color.RGBA {
	switch status {
	case SpeedWarning:
		return c.SpeedWarning
	case SpeedDanger:
		return c.SpeedDanger
	default:
		return c.SpeedNormal
	}
}

// LaneClassification результат классификации кадра и всё, что нужно для оверлея
type LaneClassification struct {
	InRightLane  bool
	LaneColor    color.RGBA
	SpeedColor   color.RGBA
	LaneText     string
	SpeedText    string
	SegmentColor color.RGBA
}
