package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"lane-assist/internal/domain/entity"
	"lane-assist/internal/domain/port"
)

var (
	errNoDetector  = errors.New("detector is not configured")
	errEmptySpeeds = errors.New("speed list is empty")
)

type LaneDetectionService struct {
	sessions   *SessionService
	detector   port.LaneDetector
	notifier   port.Notifier
	annotator  *FrameAnnotator
	processors map[string]*SpeedProcessor
	mu         sync.RWMutex
}

// FrameOutput всё, что посчитано для одного кадра
type FrameOutput struct {
	Analysis   entity.SpeedAnalysis
	Parameters entity.DetectionParameters
	Segments   []entity.LineSegment
	Lane       entity.LaneClassification
}

// NewLaneDetectionService создаёт сервис, который ведёт покадровую обработку.
// notifier может быть nil, тогда оповещения не отправляются.
func NewLaneDetectionService(sessions *SessionService, detector port.LaneDetector, notifier port.Notifier, annotator *FrameAnnotator) *LaneDetectionService {
	return &LaneDetectionService{
		sessions:   sessions,
		detector:   detector,
		notifier:   notifier,
		annotator:  annotator,
		processors: make(map[string]*SpeedProcessor),
	}
}

// Open начинает сессию со своим окном скоростей
func (s *LaneDetectionService) Open(ctx context.Context, speedLimit float64) (*entity.Session, error) {
	session, err := s.sessions.Start(ctx, speedLimit)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.processors[session.ID] = NewSpeedProcessor(speedLimit)
	s.mu.Unlock()

	return session, nil
}

// ProcessFrame прогоняет один кадр через цепочку скорость -> параметры -> детектор -> классификация.
// Оверлей рисуется на самом кадре.
func (s *LaneDetectionService) ProcessFrame(ctx context.Context, sessionID string, frame port.Frame, reading entity.SpeedReading) (*FrameOutput, error) {
	if s.detector == nil {
		return nil, errNoDetector
	}

	s.mu.RLock()
	processor, ok := s.processors[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, port.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	analysis := processor.AddReading(reading)
	params := MapParameters(analysis.Factor)

	segments, err := s.detector.DetectSegments(ctx, frame, params)
	if err != nil {
		return nil, fmt.Errorf("detect segments: %w", err)
	}

	width, _ := frame.Size()
	lane := s.annotator.Classify(segments, width, analysis)

	if err := s.detector.Annotate(frame, segments, lane); err != nil {
		return nil, fmt.Errorf("annotate frame: %w", err)
	}

	prevStatus := session.LastStatus
	if _, valid := reading.Value(); !valid {
		session.InvalidReadings++
	}
	session.RecordFrame(analysis, lane)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if analysis.Status == entity.SpeedDanger && prevStatus != entity.SpeedDanger {
		s.alertDanger(ctx, frame, analysis)
	}

	return &FrameOutput{
		Analysis:   analysis,
		Parameters: params,
		Segments:   segments,
		Lane:       lane,
	}, nil
}

// RunVideo читает кадры из src до конца потока, подставляя скорости из speeds по кругу.
// При ошибке чтения или записи обработка останавливается, а сессия помечается как failed.
func (s *LaneDetectionService) RunVideo(ctx context.Context, sessionID string, src port.VideoSource, sink port.VideoSink, speeds []entity.SpeedReading) (*entity.Session, error) {
	if len(speeds) == 0 {
		return nil, errEmptySpeeds
	}
	if _, err := s.sessions.SetState(ctx, sessionID, entity.StateProcessing); err != nil {
		return nil, err
	}
	defer s.release(sessionID)

	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return s.fail(ctx, sessionID, err)
		}

		frame, err := src.Read(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return s.fail(ctx, sessionID, fmt.Errorf("read frame %d: %w", i, err))
		}

		err = s.processAndWrite(ctx, sessionID, frame, sink, speeds[i%len(speeds)])
		frame.Close()
		if err != nil {
			return s.fail(ctx, sessionID, fmt.Errorf("frame %d: %w", i, err))
		}
	}

	session, err := s.sessions.Finish(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.notifySummary(ctx, session)
	return session, nil
}

func (s *LaneDetectionService) processAndWrite(ctx context.Context, sessionID string, frame port.Frame, sink port.VideoSink, reading entity.SpeedReading) error {
	if _, err := s.ProcessFrame(ctx, sessionID, frame, reading); err != nil {
		return err
	}
	return sink.Write(frame)
}

func (s *LaneDetectionService) fail(ctx context.Context, sessionID string, cause error) (*entity.Session, error) {
	session, err := s.sessions.Fail(ctx, sessionID)
	if err != nil {
		return nil, errors.Join(cause, err)
	}
	return session, cause
}

func (s *LaneDetectionService) release(sessionID string) {
	s.mu.Lock()
	delete(s.processors, sessionID)
	s.mu.Unlock()
}

// alertDanger отправляет снимок кадра при переходе в DANGER. Ошибки только логируются.
func (s *LaneDetectionService) alertDanger(ctx context.Context, frame port.Frame, analysis entity.SpeedAnalysis) {
	if s.notifier == nil {
		return
	}

	caption := fmt.Sprintf("⚠️ Опасная скорость: %.1f (среднее %.1f)", analysis.Current, analysis.Average)

	snapshot, err := s.detector.Snapshot(frame)
	if err != nil {
		log.Printf("Error making snapshot: %v", err)
		if err := s.notifier.Notify(ctx, caption); err != nil {
			log.Printf("Error sending alert: %v", err)
		}
		return
	}

	if err := s.notifier.NotifyPhoto(ctx, caption, snapshot); err != nil {
		log.Printf("Error sending alert: %v", err)
	}
}

func (s *LaneDetectionService) notifySummary(ctx context.Context, session *entity.Session) {
	if s.notifier == nil {
		return
	}

	text := fmt.Sprintf("✅ Обработка завершена\nКадров: %d\nВ правой полосе: %d\nWARNING: %d\nDANGER: %d\nНекорректных показаний: %d",
		session.FramesProcessed, session.InRightLaneFrames, session.WarningFrames, session.DangerFrames, session.InvalidReadings)
	if err := s.notifier.Notify(ctx, text); err != nil {
		log.Printf("Error sending summary: %v", err)
	}
}
