package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	colorful "github.com/lucasb-eyer/go-colorful"

	"lane-assist/internal/domain/entity"
)

const (
	defaultInputVideo  = "solidWhiteRight.mp4"
	defaultOutputVideo = "lane_detection_output.mp4"
	defaultSpeedLimit  = 60.0
	defaultTestSpeeds  = "40,50,60,70,80,90,100"
	defaultSpeedUnit   = "km/h"
)

type Config struct {
	InputVideo     string
	OutputVideo    string
	SpeedLimit     float64
	TestSpeeds     []entity.SpeedReading
	SpeedUnit      string
	Colors         entity.ColorScheme
	TelegramToken  string
	TelegramChatID int64
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		InputVideo:    getEnv("INPUT_VIDEO", defaultInputVideo),
		OutputVideo:   getEnv("OUTPUT_VIDEO", defaultOutputVideo),
		TestSpeeds:    ParseSpeeds(getEnv("TEST_SPEEDS", defaultTestSpeeds)),
		SpeedUnit:     getEnv("SPEED_UNIT", defaultSpeedUnit),
		Colors:        entity.DefaultColorScheme(),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	limit, err := strconv.ParseFloat(getEnv("SPEED_LIMIT", strconv.FormatFloat(defaultSpeedLimit, 'f', -1, 64)), 64)
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("SPEED_LIMIT must be a positive number: %q", os.Getenv("SPEED_LIMIT"))
	}
	cfg.SpeedLimit = limit

	if len(cfg.TestSpeeds) == 0 {
		return nil, fmt.Errorf("TEST_SPEEDS is empty")
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = chatID
	}

	colors := []struct {
		env string
		dst *color.RGBA
	}{
		{"COLOR_IN_LANE", &cfg.Colors.InLane},
		{"COLOR_NOT_IN_LANE", &cfg.Colors.NotInLane},
		{"COLOR_SPEED_NORMAL", &cfg.Colors.SpeedNormal},
		{"COLOR_SPEED_WARNING", &cfg.Colors.SpeedWarning},
		{"COLOR_SPEED_DANGER", &cfg.Colors.SpeedDanger},
	}
	for _, c := range colors {
		raw := os.Getenv(c.env)
		if raw == "" {
			continue
		}
		parsed, err := ParseColor(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.env, err)
		}
		*c.dst = parsed
	}

	return cfg, nil
}

// NotificationsEnabled сообщает, заданы ли токен и чат Telegram
func (c *Config) NotificationsEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// ParseSpeeds разбирает список скоростей через запятую.
// Нечисловые элементы остаются в списке как некорректные показания.
func ParseSpeeds(raw string) []entity.SpeedReading {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]entity.SpeedReading, 0, len(parts))
	for _, p := range parts {
		out = append(out, entity.ParseSpeedReading(p))
	}
	return out
}

// ParseColor разбирает цвет вида "#00ff00"
func ParseColor(raw string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(raw))
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
