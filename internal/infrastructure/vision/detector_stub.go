//go:build !gocv
// +build !gocv

package vision

import (
	"context"

	"lane-assist/internal/domain/entity"
	"lane-assist/internal/domain/port"
)

type GoCVLaneDetector struct {
	SnapshotMaxSide int
	SegmentWidth    int
	TextScale       float64
	TextThickness   int
}

// NewGoCVLaneDetector создаёт детектор-заглушку (без OpenCV).
func NewGoCVLaneDetector() *GoCVLaneDetector {
	return &GoCVLaneDetector{
		SnapshotMaxSide: 640,
		SegmentWidth:    2,
		TextScale:       1,
		TextThickness:   2,
	}
}

// DetectSegments возвращает ошибку, если сборка без тега gocv.
func (d *GoCVLaneDetector) DetectSegments(ctx context.Context, frame port.Frame, params entity.DetectionParameters) ([]entity.LineSegment, error) {
	_ = ctx
	_ = frame
	_ = params
	return nil, ErrGoCVDisabled
}

// Annotate возвращает ошибку, если сборка без тега gocv.
func (d *GoCVLaneDetector) Annotate(frame port.Frame, segments []entity.LineSegment, lane entity.LaneClassification) error {
	_ = frame
	_ = segments
	_ = lane
	return ErrGoCVDisabled
}

// Snapshot возвращает ошибку, если сборка без тега gocv.
func (d *GoCVLaneDetector) Snapshot(frame port.Frame) ([]byte, error) {
	_ = frame
	return nil, ErrGoCVDisabled
}

// OpenVideoSource возвращает ошибку, если сборка без тега gocv.
func OpenVideoSource(path string) (port.VideoSource, error) {
	_ = path
	return nil, ErrGoCVDisabled
}

// OpenVideoSink возвращает ошибку, если сборка без тега gocv.
func OpenVideoSink(path string, info port.VideoInfo) (port.VideoSink, error) {
	_ = path
	_ = info
	return nil, ErrGoCVDisabled
}
