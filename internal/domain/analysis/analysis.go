// Package analysis implements the filter/sort pipeline over player rows.
//
// The pipeline is a single-shot, stateless transformation: rows matching
// all predicates, ordered by progressive distance descending. It never
// mutates its input and holds no state between calls.
package analysis

import (
	"sort"
	"strings"

	"github.com/okian/regista/internal/domain/model"
)

// Default filter parameters, matching the source dashboard.
const (
	DefaultMaxAge      = 25
	DefaultMinNineties = 13.0
	DefaultPosition    = "MF"
)

// Params are the scalar inputs to one analysis run.
type Params struct {
	// MaxAge is the inclusive upper age bound.
	MaxAge int
	// MinNineties is the inclusive lower bound on 90-minute equivalents.
	MinNineties float64
	// Position is the required primary position code: the first token of
	// composite position strings, so "MF" admits "MF,FW" but not "FW,MF".
	Position string
}

// DefaultParams returns the dashboard's default filter settings.
func DefaultParams() Params {
	return Params{
		MaxAge:      DefaultMaxAge,
		MinNineties: DefaultMinNineties,
		Position:    DefaultPosition,
	}
}

// Analyze filters rows by position, age and playing time, then orders the
// survivors by progressive distance descending. The sort is stable: ties
// keep their input order. Ranks are assigned 1..n on the result.
//
// Rows with a missing age or playing time cannot satisfy the numeric
// predicates and are excluded (NaN fails every ordered comparison).
// An empty result is a valid outcome, not an error.
func Analyze(rows []model.Player, p Params) []model.RankedPlayer {
	out := make([]model.RankedPlayer, 0, len(rows))
	for _, r := range rows {
		if !matchesPosition(r.Position, p.Position) {
			continue
		}
		if !(r.Age <= float64(p.MaxAge)) {
			continue
		}
		if !(r.Nineties >= p.MinNineties) {
			continue
		}
		out = append(out, model.RankedPlayer{Player: r})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PrgDist > out[j].PrgDist
	})

	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// matchesPosition reports whether code is the row's primary position.
// FBRef writes composite positions comma-separated with the primary role
// first; only that first token counts, so "MF" matches "MF" and "MF,FW"
// but not "FW,MF" or "DF,MF".
func matchesPosition(position, code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return true
	}
	primary, _, _ := strings.Cut(position, ",")
	return strings.EqualFold(strings.TrimSpace(primary), code)
}
