package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lane-assist/config"
	"lane-assist/internal/container"
	"lane-assist/internal/domain/port"
	"lane-assist/internal/infrastructure/storage"
	"lane-assist/internal/infrastructure/telegram"
	"lane-assist/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Processing stopped: %v", err)
	}
	log.Printf("Processing complete. Output saved to %s", cfg.OutputVideo)
}

// run открывает видео и прогоняет его через сессию. Файлы закрываются до выхода из процесса.
func run(ctx context.Context, cfg *config.Config) error {
	// Оповещения в Telegram необязательны
	var notifier port.Notifier
	if cfg.NotificationsEnabled() {
		tg, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("Telegram notifications disabled: %v", err)
		} else {
			notifier = tg
		}
	}

	sessionRepo := storage.NewMemorySessionRepository()
	detector := vision.NewGoCVLaneDetector()
	appContainer := container.New(sessionRepo, detector, notifier, cfg.Colors, cfg.SpeedUnit)

	log.Printf("Attempting to open video: %s", cfg.InputVideo)
	src, err := vision.OpenVideoSource(cfg.InputVideo)
	if err != nil {
		return fmt.Errorf("could not open video file: %w", err)
	}
	defer src.Close()

	info := src.Info()
	log.Printf("Video opened: %dx%d, %.2f fps, %d frames", info.Width, info.Height, info.FPS, info.FrameCount)

	sink, err := vision.OpenVideoSink(cfg.OutputVideo, info)
	if err != nil {
		return fmt.Errorf("could not create output video: %w", err)
	}
	defer sink.Close()

	session, err := appContainer.LaneDetectionService.Open(ctx, cfg.SpeedLimit)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	session, err = appContainer.LaneDetectionService.RunVideo(ctx, session.ID, src, sink, cfg.TestSpeeds)
	if session != nil {
		log.Printf("Session %s %s: frames=%d in_right_lane=%d warning=%d danger=%d invalid_readings=%d",
			session.ID, session.State, session.FramesProcessed, session.InRightLaneFrames,
			session.WarningFrames, session.DangerFrames, session.InvalidReadings)
	}
	return err
}
