// Package league defines the Big 5 league identifiers and squad-based inference.
package league

import (
	"errors"
	"strings"
)

// ErrUnknown marks a league name outside the five covered leagues.
var ErrUnknown = errors.New("unknown league")

// Canonical league identifiers for the five covered top-tier leagues.
const (
	PremierLeague = "Premier League"
	LaLiga        = "La Liga"
	Bundesliga    = "Bundesliga"
	SerieA        = "Serie A"
	Ligue1        = "Ligue 1"
	Unknown       = "Unknown"
)

// All lists the canonical identifiers in display order.
func All() []string {
	return []string{PremierLeague, LaLiga, Bundesliga, SerieA, Ligue1}
}

// IsKnown reports whether name is one of the five canonical identifiers.
func IsKnown(name string) bool {
	switch name {
	case PremierLeague, LaLiga, Bundesliga, SerieA, Ligue1:
		return true
	}
	return false
}

// compSuffixes maps FBRef competition strings ("eng Premier League") to
// canonical identifiers. Matching is by suffix after the country prefix.
var compSuffixes = map[string]string{
	"premier league": PremierLeague,
	"la liga":        LaLiga,
	"bundesliga":     Bundesliga,
	"serie a":        SerieA,
	"ligue 1":        Ligue1,
}

// FromComp normalizes an FBRef Comp column value to a canonical identifier.
// Values already canonical pass through; unknown competitions map to Unknown.
func FromComp(comp string) string {
	c := strings.TrimSpace(comp)
	if c == "" {
		return Unknown
	}
	if IsKnown(c) {
		return c
	}
	lc := strings.ToLower(c)
	for suffix, name := range compSuffixes {
		if strings.HasSuffix(lc, suffix) {
			return name
		}
	}
	return Unknown
}
