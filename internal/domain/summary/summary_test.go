package summary_test

import (
	"regexp"
	"testing"

	"github.com/okian/fittrack/internal/domain/summary"
	"github.com/okian/fittrack/internal/domain/training"
	. "github.com/smartystreets/goconvey/convey"
)

var threeDigits = regexp.MustCompile(`^Тип тренировки: \w+; ` +
	`Длительность: -?\d+\.\d{3} ч\.; ` +
	`Дистанция: -?\d+\.\d{3} км; ` +
	`Ср\. скорость: -?\d+\.\d{3} км/ч; ` +
	`Потрачено ккал: -?\d+\.\d{3}\.$`)

func TestSummarize(t *testing.T) {
	Convey("Given the reference sensor packages", t, func() {
		cases := []struct {
			code string
			data []float64
			want string
		}{
			{
				code: "SWM",
				data: []float64{720, 1, 80, 25, 40},
				want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; " +
					"Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
			},
			{
				code: "RUN",
				data: []float64{15000, 1, 75},
				want: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; " +
					"Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
			},
			{
				code: "WLK",
				data: []float64{9000, 1, 75, 180},
				want: "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; " +
					"Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
			},
		}

		for _, c := range cases {
			tr, err := training.Build(c.code, c.data)
			So(err, ShouldBeNil)

			Convey("Then "+c.code+" renders the expected line", func() {
				So(summary.Summarize(tr).Message(), ShouldEqual, c.want)
			})
		}
	})
}

func TestSummaryPrecision(t *testing.T) {
	Convey("Given a summary with full precision values", t, func() {
		s := summary.Summary{
			Kind:     "Running",
			Duration: 1.23456789,
			Distance: 2,
			Speed:    1.0,
			Calories: 0.0004,
		}

		Convey("Then every number is printed with three fractional digits", func() {
			msg := s.Message()
			So(msg, ShouldContainSubstring, "Длительность: 1.235 ч.")
			So(msg, ShouldContainSubstring, "Дистанция: 2.000 км")
			So(msg, ShouldContainSubstring, "Ср. скорость: 1.000 км/ч")
			So(msg, ShouldContainSubstring, "Потрачено ккал: 0.000.")
			So(threeDigits.MatchString(msg), ShouldBeTrue)
		})

		Convey("Then the stored values are not rounded", func() {
			So(s.Duration, ShouldEqual, 1.23456789)
			So(s.String(), ShouldEqual, s.Message())
		})
	})

	Convey("Given a summary of an arbitrary workout", t, func() {
		tr, err := training.Build("RUN", []float64{12345, 1.37, 68.2})
		So(err, ShouldBeNil)

		Convey("Then the line keeps the fixed layout", func() {
			So(threeDigits.MatchString(summary.Summarize(tr).Message()), ShouldBeTrue)
		})
	})
}
