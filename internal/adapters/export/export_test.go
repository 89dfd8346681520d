package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/xuri/excelize/v2"

	export "github.com/okian/regista/internal/adapters/export"
	model "github.com/okian/regista/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func result() []model.RankedPlayer {
	return []model.RankedPlayer{
		{Rank: 1, Player: model.Player{
			Name: "Pedri", League: "La Liga", Squad: "Barcelona",
			Position: "MF", Age: 21, Nineties: 28.5, PrgDist: 5200, PrgPasses: 180,
		}},
		{Rank: 2, Player: model.Player{
			Name: "Jude Bellingham", League: "La Liga", Squad: "Real Madrid",
			Position: "MF,FW", Age: 20, Nineties: 25, PrgDist: 4100, PrgPasses: 150,
		}},
	}
}

func TestWriteCSV(t *testing.T) {
	Convey("Given an analysis result", t, func() {
		Convey("When exporting to CSV", func() {
			var buf bytes.Buffer
			err := export.WriteCSV(&buf, result())

			Convey("Then the document should parse back with header and rows", func() {
				So(err, ShouldBeNil)
				records, err := csv.NewReader(&buf).ReadAll()
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 3)
				So(records[0], ShouldResemble, []string{
					"Rank", "Player", "League", "Squad", "Age", "Pos", "90s", "PrgDist", "PrgP",
				})
				So(records[1][0], ShouldEqual, "1")
				So(records[1][1], ShouldEqual, "Pedri")
				So(records[1][6], ShouldEqual, "28.5")
				So(records[2][5], ShouldEqual, "MF,FW")
			})
		})

		Convey("When exporting an empty result to CSV", func() {
			var buf bytes.Buffer
			err := export.WriteCSV(&buf, nil)

			Convey("Then only the header should be written", func() {
				So(err, ShouldBeNil)
				records, err := csv.NewReader(&buf).ReadAll()
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 1)
			})
		})
	})
}

func TestWriteXLSX(t *testing.T) {
	Convey("Given an analysis result", t, func() {
		Convey("When exporting to XLSX", func() {
			var buf bytes.Buffer
			err := export.WriteXLSX(&buf, result())

			Convey("Then the workbook should open and carry the rows", func() {
				So(err, ShouldBeNil)

				f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
				So(err, ShouldBeNil)
				defer f.Close()

				rows, err := f.GetRows("Leaders")
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 3)
				So(rows[0][0], ShouldEqual, "Rank")
				So(rows[1][1], ShouldEqual, "Pedri")
				So(rows[2][1], ShouldEqual, "Jude Bellingham")
			})
		})
	})
}
