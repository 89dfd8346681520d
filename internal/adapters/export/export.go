// Package export serializes analysis results for download.
package export

import (
	"math"
	"strconv"

	"github.com/okian/regista/internal/domain/model"
)

// Format identifiers for the supported download formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Columns of the exported table, in order. Mirrors the source data's
// column naming plus the derived rank.
var columns = []string{"Rank", "Player", "League", "Squad", "Age", "Pos", "90s", "PrgDist", "PrgP"}

// record flattens one ranked player into export cells.
func record(r model.RankedPlayer) []string {
	return []string{
		strconv.Itoa(r.Rank),
		r.Name,
		r.League,
		r.Squad,
		formatFloat(r.Age),
		r.Position,
		formatFloat(r.Nineties),
		formatFloat(r.PrgDist),
		formatFloat(r.PrgPasses),
	}
}

// formatFloat renders a numeric cell; NaN becomes an empty cell.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
