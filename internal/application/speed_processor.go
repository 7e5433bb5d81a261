package app

import (
	"errors"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"lane-assist/internal/domain/entity"
)

const (
	// SpeedWindowSize сколько последних показаний держит окно
	SpeedWindowSize = 5
	// DangerRatio во сколько раз нужно превысить лимит для DANGER
	DangerRatio = 1.3
	// FactorMargin превышение лимита, при котором коэффициент адаптации достигает 1
	FactorMargin = 20.0
)

// ErrEmptyWindow анализ запрошен до первого показания
var ErrEmptyWindow = errors.New("speed window is empty")

// SpeedProcessor держит скользящее окно скоростей одной сессии
type SpeedProcessor struct {
	speedLimit float64
	window     []float64
	mu         sync.Mutex
}

// NewSpeedProcessor создаёт процессор с заданным лимитом скорости
func NewSpeedProcessor(speedLimit float64) *SpeedProcessor {
	return &SpeedProcessor{
		speedLimit: speedLimit,
		window:     make([]float64, 0, SpeedWindowSize+1),
	}
}

// SpeedLimit возвращает лимит скорости
func (p *SpeedProcessor) SpeedLimit() float64 {
	return p.speedLimit
}

// AddReading добавляет показание в окно и возвращает свежий анализ.
// Некорректное показание заменяется лимитом скорости.
func (p *SpeedProcessor) AddReading(reading entity.SpeedReading) entity.SpeedAnalysis {
	speed, ok := reading.Value()
	if !ok {
		speed = p.speedLimit
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.window = append(p.window, speed)
	if len(p.window) > SpeedWindowSize {
		p.window = append(p.window[:0], p.window[1:]...)
	}

	return p.analyze()
}

// Analysis возвращает анализ текущего окна без добавления показания
func (p *SpeedProcessor) Analysis() (entity.SpeedAnalysis, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.window) == 0 {
		return entity.SpeedAnalysis{}, ErrEmptyWindow
	}
	return p.analyze(), nil
}

// Window возвращает копию окна, от старых показаний к новым
func (p *SpeedProcessor) Window() []float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]float64, len(p.window))
	copy(out, p.window)
	return out
}

// analyze вызывается под p.mu и только при непустом окне
func (p *SpeedProcessor) analyze() entity.SpeedAnalysis {
	current := p.window[len(p.window)-1]

	status := entity.SpeedNormal
	if current > p.speedLimit*DangerRatio {
		status = entity.SpeedDanger
	} else if current > p.speedLimit {
		status = entity.SpeedWarning
	}

	factor := math.Min(1, math.Max(0, (current-p.speedLimit)/FactorMargin))

	return entity.SpeedAnalysis{
		Current: current,
		Average: stat.Mean(p.window, nil),
		Status:  status,
		Factor:  factor,
	}
}
