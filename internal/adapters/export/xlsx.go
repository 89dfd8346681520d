package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/okian/regista/internal/domain/model"
)

// sheetName is the single sheet of the exported workbook.
const sheetName = "Leaders"

// WriteXLSX writes the result as an XLSX workbook with one sheet.
// Numeric columns keep their numeric type so spreadsheet sorting works.
func WriteXLSX(w io.Writer, result []model.RankedPlayer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, name := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, r := range result {
		values := []interface{}{
			r.Rank, r.Name, r.League, r.Squad,
			cellFloat(r.Age), r.Position,
			cellFloat(r.Nineties), cellFloat(r.PrgDist), cellFloat(r.PrgPasses),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// cellFloat maps NaN to an empty cell value.
func cellFloat(v float64) interface{} {
	if math.IsNaN(v) {
		return ""
	}
	return v
}
