// Package gendata generates synthetic FBRef-style CSV exports for local
// testing. The output reproduces the quirks of a real export: a preamble
// line, repeated in-body header rows and a trailing Matches row.
package gendata

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/okian/regista/internal/domain/league"
)

// Config controls the shape of the generated export.
type Config struct {
	// Rows is the number of player rows to generate.
	Rows int

	// League restricts output to one league. Empty means all five.
	League string

	// HeaderEvery inserts a repeated header row after this many player
	// rows, as FBRef does on long tables. Zero disables repetition.
	HeaderEvery int

	// YearsDays formats ages as "23-112" instead of plain years.
	YearsDays bool

	// Seed makes the output reproducible. Zero picks a random seed.
	Seed int64

	// OutputFile is the target path. Empty writes to stdout.
	OutputFile string
}

var header = []string{"Rk", "Player", "Pos", "Squad", "Comp", "Age", "90s", "PrgDist", "PrgP"}

var positions = []string{"MF", "MF", "MF", "MF,FW", "DF,MF", "FW", "DF", "GK"}

var firstNames = []string{
	"Luka", "Pedro", "Marco", "Jamal", "Theo", "Nico", "Bruno", "Ivan",
	"Mateo", "Julian", "Emil", "Sandro", "Rayan", "Tom", "Ousmane",
}

var lastNames = []string{
	"Silva", "Fernandez", "Keller", "Rossi", "Dubois", "Novak", "Martins",
	"Weber", "Moretti", "Laurent", "Petrov", "Diallo", "Costa", "Berg",
}

var compByLeague = map[string]string{
	league.PremierLeague: "eng Premier League",
	league.LaLiga:        "es La Liga",
	league.Bundesliga:    "de Bundesliga",
	league.SerieA:        "it Serie A",
	league.Ligue1:        "fr Ligue 1",
}

// ShowHelp prints usage guidance for the generator.
func ShowHelp() {
	fmt.Println("gen-data produces a synthetic FBRef-style CSV export.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gen-data -rows 500 -output data/big5_players.csv")
	fmt.Println("  gen-data -rows 100 -league \"La Liga\" -years-days")
	fmt.Println("  gen-data -seed 42 -header-every 25")
}

// Run writes one generated export according to cfg.
func Run(ctx context.Context, cfg *Config) error {
	if cfg.Rows < 1 {
		return fmt.Errorf("rows must be positive, got %d", cfg.Rows)
	}
	if cfg.League != "" && !league.IsKnown(cfg.League) {
		return fmt.Errorf("unknown league %q", cfg.League)
	}

	var out io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return Generate(ctx, out, cfg)
}

// Generate writes the export to w. Split from Run so tests can target a
// buffer directly.
func Generate(_ context.Context, w io.Writer, cfg *Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	leagues := league.All()
	if cfg.League != "" {
		leagues = []string{cfg.League}
	}

	var b strings.Builder
	b.WriteString(",,,Total,Total,Total,Passing,Passing,Passing\n")
	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')

	for i := 0; i < cfg.Rows; i++ {
		if cfg.HeaderEvery > 0 && i > 0 && i%cfg.HeaderEvery == 0 {
			b.WriteString(strings.Join(header, ","))
			b.WriteByte('\n')
		}

		ln := leagues[rng.Intn(len(leagues))]
		squads := league.Squads(ln)
		squad := squads[rng.Intn(len(squads))]

		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		pos := positions[rng.Intn(len(positions))]
		ageYears := 17 + rng.Intn(18)
		age := fmt.Sprintf("%d", ageYears)
		if cfg.YearsDays {
			age = fmt.Sprintf("%d-%03d", ageYears, rng.Intn(365))
		}
		nineties := float64(rng.Intn(380)) / 10.0
		prgDist := rng.Intn(9000)
		prgP := prgDist / (25 + rng.Intn(20))

		row := []string{
			fmt.Sprintf("%d", i+1),
			name,
			pos,
			squad,
			compByLeague[ln],
			age,
			fmt.Sprintf("%.1f", nineties),
			fmt.Sprintf("%d", prgDist),
			fmt.Sprintf("%d", prgP),
		}
		for j, v := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			if strings.Contains(v, ",") {
				b.WriteString(`"` + v + `"`)
			} else {
				b.WriteString(v)
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(",Matches,,,,,,,\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
