package model_test

import (
	"testing"

	"github.com/google/uuid"
	model "github.com/okian/fittrack/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestPackage(t *testing.T) {
	convey.Convey("Given a Package", t, func() {
		convey.Convey("When created with NewPackage", func() {
			p := model.NewPackage("RUN", 15000, 1, 75)

			convey.Convey("Then it should carry a UUID and the readings", func() {
				_, err := uuid.Parse(p.ID)
				convey.So(err, convey.ShouldBeNil)
				convey.So(p.Code, convey.ShouldEqual, "RUN")
				convey.So(p.Data, convey.ShouldResemble, []float64{15000, 1, 75})
			})
		})

		convey.Convey("When the sensor sent no id", func() {
			p := model.Package{Code: "SWM"}.WithID()

			convey.Convey("Then an id should be generated", func() {
				convey.So(p.ID, convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When the sensor sent an id", func() {
			p := model.Package{ID: "pkg-1", Code: "SWM"}.WithID()

			convey.Convey("Then it should be kept", func() {
				convey.So(p.ID, convey.ShouldEqual, "pkg-1")
			})
		})
	})
}

func TestDefaultBatch(t *testing.T) {
	convey.Convey("Given the default batch", t, func() {
		batch := model.DefaultBatch()

		convey.Convey("Then it should hold one package per workout code in reference order", func() {
			convey.So(len(batch), convey.ShouldEqual, 3)
			convey.So(batch[0].Code, convey.ShouldEqual, "SWM")
			convey.So(batch[1].Code, convey.ShouldEqual, "RUN")
			convey.So(batch[2].Code, convey.ShouldEqual, "WLK")
		})

		convey.Convey("Then callers should get an independent copy", func() {
			batch[0].Data[0] = 1
			convey.So(model.DefaultBatch()[0].Data[0], convey.ShouldEqual, 720.0)
		})
	})
}
