package entity

// SessionState состояние сессии обработки видео
type SessionState string

const (
	StateCreated    SessionState = "created"    // Сессия создана
	StateProcessing SessionState = "processing" // Идёт обработка кадров
	StateFinished   SessionState = "finished"   // Поток закончился
	StateFailed     SessionState = "failed"     // Обработка прервана
)

// Session одна сессия распознавания со своей статистикой
type Session struct {
	ID                string
	SpeedLimit        float64
	State             SessionState
	FramesProcessed   int
	InRightLaneFrames int
	WarningFrames     int
	DangerFrames      int
	InvalidReadings   int
	LastStatus        SpeedStatus
}

// NewSession создаёт сессию в начальном состоянии
func NewSession(id string, speedLimit float64) *Session {
	return &Session{
		ID:         id,
		SpeedLimit: speedLimit,
		State:      StateCreated,
		LastStatus: SpeedNormal,
	}
}

// SetState обновляет состояние сессии
func (s *Session) SetState(state SessionState) {
	s.State = state
}

// RecordFrame учитывает результат обработки одного кадра
func (s *Session) RecordFrame(analysis SpeedAnalysis, lane LaneClassification) {
	s.FramesProcessed++
	if lane.InRightLane {
		s.InRightLaneFrames++
	}
	switch analysis.Status {
	case SpeedWarning:
		s.WarningFrames++
	case SpeedDanger:
		s.DangerFrames++
	}
	s.LastStatus = analysis.Status
}

// Done сообщает, завершена ли сессия
func (s *Session) Done() bool {
	return s.State == StateFinished || s.State == StateFailed
}
