package container

import (
	app "lane-assist/internal/application"
	"lane-assist/internal/domain/entity"
	"lane-assist/internal/domain/port"
)

type Container struct {
	SessionService       *app.SessionService
	LaneDetectionService *app.LaneDetectionService
}

func New(sessionRepo port.SessionRepository, detector port.LaneDetector, notifier port.Notifier, colors entity.ColorScheme, speedUnit string) *Container {
	sessionService := app.NewSessionService(sessionRepo)
	annotator := app.NewFrameAnnotator(colors, speedUnit)
	laneDetectionService := app.NewLaneDetectionService(sessionService, detector, notifier, annotator)

	return &Container{
		SessionService:       sessionService,
		LaneDetectionService: laneDetectionService,
	}
}
