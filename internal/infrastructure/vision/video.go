//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gocv.io/x/gocv"

	"lane-assist/internal/domain/port"
)

// matFrame кадр, которым владеет gocv.Mat
type matFrame struct {
	mat gocv.Mat
}

func (f *matFrame) Size() (int, int) {
	return f.mat.Cols(), f.mat.Rows()
}

func (f *matFrame) Close() error {
	return f.mat.Close()
}

func matOf(frame port.Frame) (*gocv.Mat, error) {
	f, ok := frame.(*matFrame)
	if !ok {
		return nil, fmt.Errorf("unsupported frame type %T", frame)
	}
	return &f.mat, nil
}

// VideoFileSource читает кадры из видеофайла
type VideoFileSource struct {
	capture *gocv.VideoCapture
	info    port.VideoInfo
}

// OpenVideoSource открывает видеофайл на чтение
func OpenVideoSource(path string) (*VideoFileSource, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, errors.Join(port.ErrResourceUnavailable, err))
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("open %s: %w", path, port.ErrResourceUnavailable)
	}

	return &VideoFileSource{
		capture: capture,
		info: port.VideoInfo{
			Width:      int(capture.Get(gocv.VideoCaptureFrameWidth)),
			Height:     int(capture.Get(gocv.VideoCaptureFrameHeight)),
			FPS:        capture.Get(gocv.VideoCaptureFPS),
			FrameCount: int(capture.Get(gocv.VideoCaptureFrameCount)),
		},
	}, nil
}

func (s *VideoFileSource) Info() port.VideoInfo {
	return s.info
}

// Read возвращает io.EOF, когда кадры закончились
func (s *VideoFileSource) Read(ctx context.Context) (port.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat := gocv.NewMat()
	if ok := s.capture.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil, io.EOF
	}
	return &matFrame{mat: mat}, nil
}

func (s *VideoFileSource) Close() error {
	return s.capture.Close()
}

// VideoFileSink пишет кадры в mp4
type VideoFileSink struct {
	writer *gocv.VideoWriter
}

// OpenVideoSink создаёт mp4 (mp4v) с частотой кадров и размером входного видео
func OpenVideoSink(path string, info port.VideoInfo) (*VideoFileSink, error) {
	writer, err := gocv.VideoWriterFile(path, "mp4v", info.FPS, info.Width, info.Height, true)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, errors.Join(port.ErrResourceUnavailable, err))
	}
	if !writer.IsOpened() {
		writer.Close()
		return nil, fmt.Errorf("create %s: %w", path, port.ErrResourceUnavailable)
	}
	return &VideoFileSink{writer: writer}, nil
}

func (s *VideoFileSink) Write(frame port.Frame) error {
	mat, err := matOf(frame)
	if err != nil {
		return err
	}
	if err := s.writer.Write(*mat); err != nil {
		return fmt.Errorf("write frame: %w", errors.Join(port.ErrResourceUnavailable, err))
	}
	return nil
}

func (s *VideoFileSink) Close() error {
	return s.writer.Close()
}

var (
	_ port.VideoSource = (*VideoFileSource)(nil)
	_ port.VideoSink   = (*VideoFileSink)(nil)
)
