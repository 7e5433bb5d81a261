//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"lane-assist/internal/domain/entity"
	"lane-assist/internal/domain/port"
)

type GoCVLaneDetector struct {
	SnapshotMaxSide int
	SegmentWidth    int
	TextScale       float64
	TextThickness   int
}

// NewGoCVLaneDetector создаёт детектор разметки на OpenCV
func NewGoCVLaneDetector() *GoCVLaneDetector {
	return &GoCVLaneDetector{
		SnapshotMaxSide: 640,
		SegmentWidth:    2,
		TextScale:       1,
		TextThickness:   2,
	}
}

// DetectSegments: серый -> размытие -> Canny -> ROI -> HoughLinesP.
func (d *GoCVLaneDetector) DetectSegments(ctx context.Context, frame port.Frame, params entity.DetectionParameters) ([]entity.LineSegment, error) {
	_ = ctx
	mat, err := matOf(frame)
	if err != nil {
		return nil, err
	}
	if mat.Empty() {
		return nil, errors.New("empty frame")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(*mat, &gray, gocv.ColorBGRToGray)

	blur := gocv.NewMat()
	defer blur.Close()
	k := params.BlurKernelSize
	gocv.GaussianBlur(gray, &blur, image.Pt(k, k), 0, 0, gocv.BorderDefault)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(blur, &edges, float32(params.EdgeLowThreshold), float32(params.EdgeHighThreshold))

	// Линии ищем только в нижней части кадра, начиная с roiStart.
	width, height := edges.Cols(), edges.Rows()
	roiStart := params.ROIStart(height)
	if roiStart >= height {
		return nil, nil
	}
	roi := edges.Region(image.Rect(0, roiStart, width, height))
	defer roi.Close()

	lines := gocv.NewMat()
	defer lines.Close()
	gocv.HoughLinesPWithParams(roi, &lines, 1, float32(math.Pi/180), params.LineVoteThreshold,
		float32(params.MinLineLength), float32(params.MaxLineGap))

	segments := make([]entity.LineSegment, 0, lines.Rows())
	for i := 0; i < lines.Rows(); i++ {
		v := lines.GetVeciAt(i, 0)
		if len(v) < 4 {
			continue
		}
		segments = append(segments, entity.LineSegment{
			X1: int(v[0]),
			Y1: int(v[1]) + roiStart,
			X2: int(v[2]),
			Y2: int(v[3]) + roiStart,
		})
	}

	return segments, nil
}

// Annotate рисует отрезки и две строки статуса: полоса сверху, скорость под ней.
func (d *GoCVLaneDetector) Annotate(frame port.Frame, segments []entity.LineSegment, lane entity.LaneClassification) error {
	mat, err := matOf(frame)
	if err != nil {
		return err
	}

	for _, s := range segments {
		gocv.Line(mat, image.Pt(s.X1, s.Y1), image.Pt(s.X2, s.Y2), lane.SegmentColor, d.SegmentWidth)
	}

	gocv.PutText(mat, lane.LaneText, image.Pt(20, 50), gocv.FontHersheySimplex, d.TextScale, lane.LaneColor, d.TextThickness)
	gocv.PutText(mat, lane.SpeedText, image.Pt(20, 100), gocv.FontHersheySimplex, d.TextScale, lane.SpeedColor, d.TextThickness)

	return nil
}

// Snapshot возвращает уменьшенный JPEG кадра для оповещений
func (d *GoCVLaneDetector) Snapshot(frame port.Frame) ([]byte, error) {
	mat, err := matOf(frame)
	if err != nil {
		return nil, err
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("mat to image: %w", err)
	}

	return EncodeSnapshot(img, d.SnapshotMaxSide)
}

var _ port.LaneDetector = (*GoCVLaneDetector)(nil)
