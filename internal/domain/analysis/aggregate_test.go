package analysis_test

import (
	"testing"

	analysis "github.com/okian/regista/internal/domain/analysis"
	model "github.com/okian/regista/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func ranked(name, squad, lg string, age, prgDist float64) model.RankedPlayer {
	return model.RankedPlayer{Player: model.Player{
		Name:    name,
		Squad:   squad,
		League:  lg,
		Age:     age,
		PrgDist: prgDist,
	}}
}

func TestSummarize(t *testing.T) {
	Convey("Given an analysis result", t, func() {
		Convey("When the result is empty", func() {
			s := analysis.Summarize(nil)

			Convey("Then the summary should be zero-valued", func() {
				So(s.Players, ShouldEqual, 0)
				So(s.Leagues, ShouldBeEmpty)
				So(s.Squads, ShouldBeEmpty)
			})
		})

		Convey("When the result spans leagues and squads", func() {
			result := []model.RankedPlayer{
				ranked("a", "Arsenal", "Premier League", 22, 900),
				ranked("b", "Arsenal", "Premier League", 24, 700),
				ranked("c", "Lyon", "Ligue 1", 20, 500),
				ranked("d", "Lyon", "Ligue 1", 21, 300),
				ranked("e", "Monaco", "Ligue 1", 23, 100),
			}
			s := analysis.Summarize(result)

			Convey("Then overall totals should be correct", func() {
				So(s.Players, ShouldEqual, 5)
				So(s.MaxPrgDist, ShouldEqual, 900)
				So(s.AvgPrgDist, ShouldEqual, 500)
			})

			Convey("Then league stats should sort by average PrgDist descending", func() {
				So(s.Leagues, ShouldHaveLength, 2)
				So(s.Leagues[0].League, ShouldEqual, "Premier League")
				So(s.Leagues[0].Players, ShouldEqual, 2)
				So(s.Leagues[0].AvgPrgDist, ShouldEqual, 800)
				So(s.Leagues[0].MaxPrgDist, ShouldEqual, 900)
				So(s.Leagues[0].AvgAge, ShouldEqual, 23)
				So(s.Leagues[1].League, ShouldEqual, "Ligue 1")
				So(s.Leagues[1].Players, ShouldEqual, 3)
				So(s.Leagues[1].AvgPrgDist, ShouldEqual, 300)
			})

			Convey("Then only squads with multiple qualifying players should appear", func() {
				So(s.Squads, ShouldHaveLength, 2)
				So(s.Squads[0].Squad, ShouldEqual, "Arsenal")
				So(s.Squads[0].Players, ShouldEqual, 2)
				So(s.Squads[0].AvgPrgDist, ShouldEqual, 800)
				So(s.Squads[1].Squad, ShouldEqual, "Lyon")
				So(s.Squads[1].AvgPrgDist, ShouldEqual, 400)
			})
		})
	})
}

func TestSchemaError(t *testing.T) {
	Convey("Given a schema error", t, func() {
		err := analysis.NewSchemaError("Age", "90s")

		Convey("Then it should name the missing columns", func() {
			So(err.Error(), ShouldContainSubstring, "Age")
			So(err.Error(), ShouldContainSubstring, "90s")
		})

		Convey("Then IsSchemaError should detect it, wrapped or not", func() {
			So(analysis.IsSchemaError(err), ShouldBeTrue)
			So(analysis.IsSchemaError(wrap(err)), ShouldBeTrue)
			So(analysis.IsSchemaError(analysis.ErrBadParams), ShouldBeFalse)
		})
	})
}

func wrap(err error) error {
	return &wrapped{err: err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "ingest: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }
