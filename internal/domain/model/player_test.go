package model_test

import (
	"math"
	"testing"

	model "github.com/okian/regista/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestPlayer(t *testing.T) {
	convey.Convey("Given a Player struct", t, func() {
		convey.Convey("When all fields carry values", func() {
			p := model.Player{
				Name:      "Pedri",
				Squad:     "Barcelona",
				Position:  "MF",
				League:    "La Liga",
				Age:       21,
				Nineties:  28.5,
				PrgDist:   5200,
				PrgPasses: 180,
			}

			convey.Convey("Then presence checks should report true", func() {
				convey.So(p.HasAge(), convey.ShouldBeTrue)
				convey.So(p.HasNineties(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When numeric fields are NaN", func() {
			p := model.Player{Age: math.NaN(), Nineties: math.NaN()}

			convey.Convey("Then presence checks should report false", func() {
				convey.So(p.HasAge(), convey.ShouldBeFalse)
				convey.So(p.HasNineties(), convey.ShouldBeFalse)
			})
		})
	})
}
