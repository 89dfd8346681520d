package analysis

import (
	"sort"

	"github.com/okian/regista/internal/domain/model"
)

// LeagueStat aggregates qualifying players of one league.
type LeagueStat struct {
	League     string  `json:"league"`
	Players    int     `json:"players"`
	AvgPrgDist float64 `json:"avg_prg_dist"`
	MaxPrgDist float64 `json:"max_prg_dist"`
	AvgAge     float64 `json:"avg_age"`
}

// SquadStat aggregates qualifying players of one squad.
type SquadStat struct {
	League     string  `json:"league"`
	Squad      string  `json:"squad"`
	Players    int     `json:"players"`
	AvgPrgDist float64 `json:"avg_prg_dist"`
}

// Summary is the aggregate view over one analysis result.
type Summary struct {
	Players    int          `json:"players"`
	AvgPrgDist float64      `json:"avg_prg_dist"`
	MaxPrgDist float64      `json:"max_prg_dist"`
	Leagues    []LeagueStat `json:"leagues"`
	// Squads lists only squads with more than one qualifying player.
	Squads []SquadStat `json:"squads"`
}

// Summarize computes league and squad breakdowns over an analysis result.
// League stats sort by average progressive distance descending; squad
// stats the same, keeping only squads with multiple qualifying players.
func Summarize(result []model.RankedPlayer) Summary {
	s := Summary{Players: len(result)}
	if len(result) == 0 {
		return s
	}

	var total float64
	type acc struct {
		n       int
		prgSum  float64
		prgMax  float64
		ageSum  float64
		ageSeen int
	}
	leagues := map[string]*acc{}
	type squadKey struct{ league, squad string }
	squads := map[squadKey]*acc{}

	for _, r := range result {
		total += r.PrgDist
		if r.PrgDist > s.MaxPrgDist {
			s.MaxPrgDist = r.PrgDist
		}

		la, ok := leagues[r.League]
		if !ok {
			la = &acc{}
			leagues[r.League] = la
		}
		la.n++
		la.prgSum += r.PrgDist
		if r.PrgDist > la.prgMax {
			la.prgMax = r.PrgDist
		}
		if r.HasAge() {
			la.ageSum += r.Age
			la.ageSeen++
		}

		key := squadKey{league: r.League, squad: r.Squad}
		sa, ok := squads[key]
		if !ok {
			sa = &acc{}
			squads[key] = sa
		}
		sa.n++
		sa.prgSum += r.PrgDist
	}

	s.AvgPrgDist = total / float64(len(result))

	for name, a := range leagues {
		st := LeagueStat{
			League:     name,
			Players:    a.n,
			AvgPrgDist: a.prgSum / float64(a.n),
			MaxPrgDist: a.prgMax,
		}
		if a.ageSeen > 0 {
			st.AvgAge = a.ageSum / float64(a.ageSeen)
		}
		s.Leagues = append(s.Leagues, st)
	}
	sort.Slice(s.Leagues, func(i, j int) bool {
		if s.Leagues[i].AvgPrgDist != s.Leagues[j].AvgPrgDist {
			return s.Leagues[i].AvgPrgDist > s.Leagues[j].AvgPrgDist
		}
		return s.Leagues[i].League < s.Leagues[j].League
	})

	for key, a := range squads {
		if a.n < 2 {
			continue
		}
		s.Squads = append(s.Squads, SquadStat{
			League:     key.league,
			Squad:      key.squad,
			Players:    a.n,
			AvgPrgDist: a.prgSum / float64(a.n),
		})
	}
	sort.Slice(s.Squads, func(i, j int) bool {
		if s.Squads[i].AvgPrgDist != s.Squads[j].AvgPrgDist {
			return s.Squads[i].AvgPrgDist > s.Squads[j].AvgPrgDist
		}
		return s.Squads[i].Squad < s.Squads[j].Squad
	})

	return s
}
