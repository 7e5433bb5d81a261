package entity

import (
	"math"
	"strconv"
	"strings"
)

// SpeedStatus уровень превышения скорости
type SpeedStatus string

const (
	SpeedNormal  SpeedStatus = "NORMAL"  // Не выше лимита
	SpeedWarning SpeedStatus = "WARNING" // Выше лимита
	SpeedDanger  SpeedStatus = "DANGER"  // Выше лимита * 1.3
)

// SpeedReading одно показание скорости.
// Нечисловое показание допустимо: процессор подставит вместо него лимит скорости.
type SpeedReading struct {
	value float64
	valid bool
}

// Speed создаёт показание из числа. NaN и бесконечность считаются некорректными.
func Speed(v float64) SpeedReading {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return SpeedReading{}
	}
	return SpeedReading{value: v, valid: true}
}

// InvalidSpeed возвращает заведомо некорректное показание
func InvalidSpeed() SpeedReading {
	return SpeedReading{}
}

// ParseSpeedReading разбирает текстовое показание (например из TEST_SPEEDS).
// Ошибки разбора не возвращаются: такое показание просто помечается некорректным.
func ParseSpeedReading(s string) SpeedReading {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return InvalidSpeed()
	}
	return Speed(v)
}

// Value возвращает значение и признак корректности
func (r SpeedReading) Value() (float64, bool) {
	return r.value, r.valid
}

// SpeedAnalysis снимок статистики окна скоростей.
// Пересчитывается на каждое новое показание и никогда не изменяется на месте.
type SpeedAnalysis struct {
	Current float64     // последнее показание
	Average float64     // среднее по окну
	Status  SpeedStatus // уровень превышения
	Factor  float64     // коэффициент адаптации в [0,1]
}
