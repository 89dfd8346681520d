package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/okian/regista/internal/domain/model"
)

// WriteCSV writes the result as a CSV document with a header row.
func WriteCSV(w io.Writer, result []model.RankedPlayer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range result {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
