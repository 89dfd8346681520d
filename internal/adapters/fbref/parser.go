// Package fbref parses FBRef progressive-passing CSV exports into player rows.
//
// Exports copied out of FBRef tables are messy: preamble lines above the
// header, the header repeated mid-table, a "Matches" footer, duplicate
// column names across pass-length sections, and blank numeric cells. The
// parser locates the real header, dedupes column names, loads the body
// into a gota dataframe and coerces numerics cell by cell (unparseable
// values become NaN, the way a coerced pandas read behaves).
package fbref

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/okian/regista/internal/domain/analysis"
	"github.com/okian/regista/internal/domain/league"
	"github.com/okian/regista/internal/domain/model"
	"github.com/okian/regista/pkg/logger"
)

// Column names the pipeline depends on.
const (
	colPlayer  = "Player"
	colPos     = "Pos"
	colAge     = "Age"
	col90s     = "90s"
	colSquad   = "Squad"
	colComp    = "Comp"
	colPrgDist = "PrgDist"
	colPrgP    = "PrgP"
)

// requiredColumns must all be present after header detection.
var requiredColumns = []string{colPlayer, colPos, colAge, col90s}

// Parser converts raw CSV exports into model.Player rows.
type Parser struct {
	log logger.Logger
}

// Option applies a configuration option to the Parser.
type Option func(*Parser)

// WithLogger sets a custom logger for the parser.
func WithLogger(log logger.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// NewParser creates a parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads one CSV export. explicitLeague, when non-empty, labels every
// row; otherwise the league comes from the Comp column or is inferred from
// the squad name. A missing header or missing required columns yield a
// *analysis.SchemaError.
func (p *Parser) Parse(ctx context.Context, r io.Reader, explicitLeague string) ([]model.Player, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	headerIdx := findHeaderLine(lines)
	if headerIdx < 0 {
		return nil, analysis.NewSchemaError(requiredColumns...)
	}

	body, err := dedupeHeader(strings.Join(lines[headerIdx:], "\n"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	// Keep every column as string; numeric coercion happens per cell so a
	// stray value never fails the whole load.
	df := dataframe.ReadCSV(strings.NewReader(body),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, df.Err)
	}

	names := df.Names()
	if missing := missingColumns(names); len(missing) > 0 {
		return nil, analysis.NewSchemaError(missing...)
	}

	prgDistCol, ok := progressiveDistanceColumn(names)
	if !ok {
		return nil, analysis.NewSchemaError(colPrgDist)
	}

	hasSquad := hasColumn(names, colSquad)
	hasComp := hasColumn(names, colComp)
	hasPrgP := hasColumn(names, colPrgP)

	rows := make([]model.Player, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		name := strings.TrimSpace(df.Col(colPlayer).Elem(i).String())
		if !isPlayerRow(name) {
			continue
		}

		row := model.Player{
			Name:     name,
			Position: strings.TrimSpace(df.Col(colPos).Elem(i).String()),
			Age:      coerceFloat(df.Col(colAge).Elem(i).String()),
			Nineties: coerceFloat(df.Col(col90s).Elem(i).String()),
			PrgDist:  orZero(coerceFloat(df.Col(prgDistCol).Elem(i).String())),
		}
		if hasSquad {
			row.Squad = strings.TrimSpace(df.Col(colSquad).Elem(i).String())
		}
		if hasPrgP {
			row.PrgPasses = orZero(coerceFloat(df.Col(colPrgP).Elem(i).String()))
		}

		switch {
		case explicitLeague != "":
			row.League = explicitLeague
		case hasComp:
			row.League = league.FromComp(df.Col(colComp).Elem(i).String())
		case hasSquad:
			row.League = league.FromSquad(row.Squad)
		default:
			row.League = league.Unknown
		}

		rows = append(rows, row)
	}

	if p.log != nil {
		p.log.Debug(ctx, "parsed csv export",
			logger.Int("rows", len(rows)),
			logger.String("prg_dist_column", prgDistCol),
		)
	}

	return rows, nil
}

// findHeaderLine returns the index of the first line that looks like the
// FBRef header row, or -1 when no line qualifies.
func findHeaderLine(lines []string) int {
	for i, line := range lines {
		if strings.Contains(line, colPlayer) &&
			strings.Contains(line, colAge) &&
			strings.Contains(line, colPos) &&
			strings.Contains(line, col90s) {
			return i
		}
	}
	return -1
}

// isPlayerRow filters the repeated in-table header rows and the Matches
// footer that FBRef appends to copied tables.
func isPlayerRow(name string) bool {
	return name != "" && name != colPlayer && name != "Matches"
}

// missingColumns lists required columns absent from the parsed header.
func missingColumns(names []string) []string {
	var missing []string
	for _, want := range requiredColumns {
		if !hasColumn(names, want) {
			missing = append(missing, want)
		}
	}
	return missing
}

// progressiveDistanceColumn picks the exact PrgDist column or, failing
// that, the first column whose name contains "prg" or "prog", so variant
// headers like "Prg Dist" or "Progressive Distance" still load. The PrgP
// pass-count column is never picked as a distance fallback.
func progressiveDistanceColumn(names []string) (string, bool) {
	if hasColumn(names, colPrgDist) {
		return colPrgDist, true
	}
	for _, n := range names {
		if n == colPrgP {
			continue
		}
		ln := strings.ToLower(n)
		if strings.Contains(ln, "prg") || strings.Contains(ln, "prog") {
			return n, true
		}
	}
	return "", false
}

func hasColumn(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

// coerceFloat parses a numeric cell; unparseable or empty becomes NaN.
func coerceFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "NaN" {
		return math.NaN()
	}
	// FBRef ages sometimes come as "24-123" (years-days); keep the years.
	if idx := strings.IndexByte(s, '-'); idx > 0 {
		if v, err := strconv.ParseFloat(s[:idx], 64); err == nil {
			return v
		}
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// orZero maps NaN to 0 for fields that default rather than go missing.
func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// dedupeHeader renames duplicate column names in the first CSV record so
// the dataframe load does not collapse the pass-length sections (FBRef
// repeats Cmp/Att/Cmp% per section).
func dedupeHeader(content string) (string, error) {
	rd := csv.NewReader(strings.NewReader(content))
	rd.FieldsPerRecord = -1
	header, err := rd.Read()
	if err != nil {
		return "", err
	}

	seen := map[string]int{}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("col_%d", i)
		}
		if n, dup := seen[h]; dup {
			seen[h] = n + 1
			h = fmt.Sprintf("%s_%d", h, n+1)
		}
		if _, dup := seen[h]; !dup {
			seen[h] = 1
		}
		header[i] = h
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(header); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	// Re-attach the body unchanged, skipping the original header line.
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		sb.WriteString(content[idx+1:])
	}
	return sb.String(), nil
}
