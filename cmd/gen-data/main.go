package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/regista/internal/gendata"
)

// Default configuration constants.
const (
	defaultRows    = 2500
	defaultTimeout = 30 * time.Second
)

func main() {
	var (
		rows        = flag.Int("rows", defaultRows, "Number of player rows to generate")
		leagueName  = flag.String("league", "", "Restrict output to one league (default: all five)")
		headerEvery = flag.Int("header-every", 25, "Insert a repeated header row every N rows (0 disables)")
		yearsDays   = flag.Bool("years-days", false, "Format ages as years-days, e.g. 23-112")
		seed        = flag.Int64("seed", 0, "Random seed for reproducible output (0 picks one)")
		outputFile  = flag.String("output", "", "Output file (default: stdout)")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		gendata.ShowHelp()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	config := &gendata.Config{
		Rows:        *rows,
		League:      *leagueName,
		HeaderEvery: *headerEvery,
		YearsDays:   *yearsDays,
		Seed:        *seed,
		OutputFile:  *outputFile,
	}

	if err := gendata.Run(ctx, config); err != nil {
		os.Stderr.WriteString("generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
