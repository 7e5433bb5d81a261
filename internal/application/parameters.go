package app

import (
	"math"

	"lane-assist/internal/domain/entity"
)

// Параметры HoughLinesP и размытия, не зависящие от скорости
const (
	MinLineLength  = 30
	MaxLineGap     = 50
	BlurKernelSize = 5
)

// MapParameters переводит коэффициент адаптации в параметры детекции.
// Чем выше скорость, тем выше пороги Canny, ниже порог голосов и выше начало ROI.
// Кроме нижней границы порога голосов значения не ограничиваются: factor уже лежит в [0,1].
func MapParameters(factor float64) entity.DetectionParameters {
	return entity.DetectionParameters{
		EdgeLowThreshold:  50 + int(math.Floor(30*factor)),
		EdgeHighThreshold: 150 + int(math.Floor(50*factor)),
		LineVoteThreshold: max(20, 50-int(math.Floor(25*factor))),
		ROIStartFraction:  0.5 - 0.15*factor,
		MinLineLength:     MinLineLength,
		MaxLineGap:        MaxLineGap,
		BlurKernelSize:    BlurKernelSize,
	}
}
