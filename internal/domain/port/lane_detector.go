package port

import (
	"context"

	"lane-assist/internal/domain/entity"
)

// LaneDetector интерфейс детектора разметки (реализация на OpenCV)
type LaneDetector interface {
	// DetectSegments ищет отрезки разметки в ROI кадра.
	// Координаты возвращаются в системе полного кадра. Пустой результат не ошибка.
	DetectSegments(ctx context.Context, frame Frame, params entity.DetectionParameters) ([]entity.LineSegment, error)

	// Annotate рисует найденные отрезки и надписи оверлея прямо на кадре
	Annotate(frame Frame, segments []entity.LineSegment, lane entity.LaneClassification) error

	// Snapshot кодирует уменьшенную копию кадра в JPEG
	Snapshot(frame Frame) ([]byte, error)
}
