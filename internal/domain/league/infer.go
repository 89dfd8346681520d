package league

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Well-known clubs per league, used when an export carries no Comp column.
// Names follow FBRef squad spelling; lookup is diacritic-insensitive, so
// "Atletico Madrid" and "Atlético Madrid" resolve the same way.
var squadLeagues = map[string]string{}

// leagueSquads keeps the FBRef display names per league.
var leagueSquads = map[string][]string{}

func init() { //nolint:gochecknoinits // builds the squad lookup table once
	register := func(name string, squads ...string) {
		leagueSquads[name] = squads
		for _, s := range squads {
			squadLeagues[foldKey(s)] = name
		}
	}

	register(PremierLeague,
		"Arsenal", "Chelsea", "Liverpool", "Manchester City", "Manchester Utd",
		"Tottenham", "Newcastle Utd", "Brighton", "Aston Villa", "West Ham",
		"Crystal Palace", "Fulham", "Wolves", "Everton", "Brentford",
		"Nott'ham Forest", "Sheffield Utd", "Burnley", "Luton Town", "Bournemouth",
	)
	register(LaLiga,
		"Real Madrid", "Barcelona", "Atlético Madrid", "Sevilla", "Real Sociedad",
		"Betis", "Villarreal", "Valencia", "Athletic Club", "Espanyol",
		"Getafe", "Osasuna", "Celta Vigo", "Mallorca", "Cádiz",
	)
	register(Bundesliga,
		"Bayern Munich", "Dortmund", "RB Leipzig", "Union Berlin", "Freiburg",
		"Bayer Leverkusen", "Eintracht Frankfurt", "Wolfsburg", "Mainz 05",
		"Borussia Mönchengladbach", "Köln", "Augsburg", "Werder Bremen",
		"Schalke 04", "Hoffenheim", "VfB Stuttgart", "Hertha BSC",
	)
	register(SerieA,
		"Juventus", "Inter", "AC Milan", "Napoli", "Lazio", "Roma", "Atalanta",
		"Fiorentina", "Torino", "Sassuolo", "Udinese", "Bologna", "Empoli",
		"Monza", "Lecce", "Cagliari", "Genoa", "Frosinone", "Salernitana", "Verona",
	)
	register(Ligue1,
		"Paris S-G", "Marseille", "Monaco", "Lille", "Rennes", "Nice", "Lyon",
		"Montpellier", "Lens", "Strasbourg", "Nantes", "Reims", "Toulouse",
		"Lorient", "Le Havre", "Metz", "Brest", "Clermont Foot",
	)
}

// FromSquad infers the league from a squad name. Returns Unknown when the
// squad is not in the lookup table.
func FromSquad(squad string) string {
	s := strings.TrimSpace(squad)
	if s == "" {
		return Unknown
	}
	if name, ok := squadLeagues[foldKey(s)]; ok {
		return name
	}
	return Unknown
}

// Squads returns the known squad names of a league, in table order.
// Returns nil for an unknown league.
func Squads(name string) []string {
	return leagueSquads[name]
}

// foldKey lower-cases and strips diacritics to produce a lookup key.
func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
