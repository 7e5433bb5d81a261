package port

import (
	"context"
	"errors"
)

// ErrResourceUnavailable видеофайл не открылся или запись/чтение кадра не удались
var ErrResourceUnavailable = errors.New("video resource unavailable")

// Frame кадр видеопотока. Памятью кадра владеет инфраструктура.
type Frame interface {
	// Size возвращает ширину и высоту кадра
	Size() (width, height int)

	// Close освобождает кадр
	Close() error
}

// VideoInfo свойства входного видео
type VideoInfo struct {
	Width      int
	Height     int
	FPS        float64
	FrameCount int
}

// VideoSource источник кадров
type VideoSource interface {
	// Info возвращает свойства потока
	Info() VideoInfo

	// Read возвращает следующий кадр или io.EOF в конце потока
	Read(ctx context.Context) (Frame, error)

	Close() error
}

// VideoSink приёмник обработанных кадров
type VideoSink interface {
	Write(frame Frame) error
	Close() error
}
