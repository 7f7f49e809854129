package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/mkoolen/hue-memory/analysis/internal/category"
	"github.com/mkoolen/hue-memory/analysis/internal/fixture"
)

// #region main

func main() {
	outPath := flag.String("out", "", "output fixture JSON path")
	sessions := flag.Int("sessions", 1, "number of sessions to generate")
	n := flag.Int("n", 10000, "trials per session")
	precision := flag.Float64("precision", 500, "true precision")
	guessRate := flag.Float64("guess-rate", 0, "true guess rate")
	biasVal := flag.Float64("bias", 0, "true bias in degrees (needs a category table)")
	swapRate := flag.Float64("swap-rate", 0, "true swap rate; adds a non-target column")
	tableName := flag.String("table", "default", "category table for bias generation: default, classic, or none")
	seed := flag.Int64("seed", 0, "random seed (0 = time-seeded)")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: simulate --out path/to/fixture.json [--sessions N] [--n N] [--precision P] [--guess-rate G] [--bias B] [--swap-rate S] [--seed N]")
		os.Exit(2)
	}

	if err := run(*outPath, *sessions, *n, *precision, *guessRate, *biasVal, *swapRate, *tableName, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(outPath string, sessions, n int, precision, guessRate, biasVal, swapRate float64, tableName string, seed int64) error {
	var table category.Table
	switch tableName {
	case "default":
		table = category.DefaultTable()
	case "classic":
		table = category.ClassicTable()
	case "none":
		// Generate only needs a table when a bias is requested; it
		// rejects that combination itself.
	default:
		return fmt.Errorf("unknown category table %q (want default, classic, or none)", tableName)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	f := &fixture.Fixture{
		Description: fmt.Sprintf("synthetic: precision=%g guess_rate=%g bias=%g swap_rate=%g seed=%d",
			precision, guessRate, biasVal, swapRate, seed),
	}
	for i := 0; i < sessions; i++ {
		s, err := fixture.Generate(fixture.SynthSpec{
			ID:        fmt.Sprintf("synth-%03d", i+1),
			N:         n,
			Precision: precision,
			GuessRate: guessRate,
			Bias:      biasVal,
			SwapRate:  swapRate,
		}, table, rng)
		if err != nil {
			return err
		}
		f.Sessions = append(f.Sessions, s)
	}

	if err := fixture.SaveFixture(outPath, f); err != nil {
		return err
	}
	fmt.Printf("wrote %d session(s) of %d trials to %s\n", sessions, n, outPath)
	return nil
}

// #endregion run
