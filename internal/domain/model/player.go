// Package model contains domain models passed between layers.
package model

import "math"

// Player represents one player-season observation parsed from an FBRef
// progressive-passing export. Numeric fields use NaN for missing values,
// mirroring the coerced parse; a NaN never satisfies an ordered
// comparison, so missing values drop out of every numeric filter.
type Player struct {
	Name      string  `json:"player"`
	Squad     string  `json:"squad"`
	Position  string  `json:"position"` // position code, possibly composite ("MF,FW")
	League    string  `json:"league"`
	Age       float64 `json:"age"`
	Nineties  float64 `json:"nineties"` // playing time in 90-minute equivalents
	PrgDist   float64 `json:"prg_dist"` // cumulative progressive passing distance
	PrgPasses float64 `json:"prg_passes"`
}

// HasAge reports whether the age field carries a value.
func (p Player) HasAge() bool { return !math.IsNaN(p.Age) }

// HasNineties reports whether the playing-time field carries a value.
func (p Player) HasNineties() bool { return !math.IsNaN(p.Nineties) }

// RankedPlayer is a Player with its position in an ordered analysis result.
type RankedPlayer struct {
	Rank int `json:"rank"`
	Player
}
