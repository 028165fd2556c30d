// Package summary renders computed workout statistics as report lines.
package summary

import (
	"fmt"

	"github.com/okian/fittrack/internal/domain/training"
)

// messageFormat is the report line layout. Every number keeps three
// fractional digits.
const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Summary holds the statistics of one workout at full precision.
type Summary struct {
	Kind     string  `json:"training_type"`
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
	Calories float64 `json:"calories"`
}

// Summarize computes the statistics of t.
func Summarize(t training.Training) Summary {
	return Summary{
		Kind:     t.Kind().String(),
		Duration: t.Hours(),
		Distance: t.Distance(),
		Speed:    t.MeanSpeed(),
		Calories: t.SpentCalories(),
	}
}

// Message returns the human readable report line.
func (s Summary) Message() string {
	return fmt.Sprintf(messageFormat, s.Kind, s.Duration, s.Distance, s.Speed, s.Calories)
}

// String implements fmt.Stringer.
func (s Summary) String() string { return s.Message() }
