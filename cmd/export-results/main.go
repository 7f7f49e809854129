package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mkoolen/hue-memory/analysis/internal/results"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to results database")
	outPath := flag.String("out", "", "output CSV path")
	last := flag.Int("last", 1000, "number of most recent fit runs to export")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: export-results --db results.db --out results.csv [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *outPath, *last); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, outPath string, last int) error {
	store, err := results.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.ListFits(last)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	header := []string{
		"run_id", "session_id", "model", "n_trials", "precision", "guess_rate",
		"bias", "swap_rate", "aic", "aic_underflow", "t_chance", "p_chance", "created_at",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.RunID,
			rec.SessionID,
			rec.Model,
			strconv.Itoa(rec.NTrials),
			formatFloat(rec.Precision),
			formatFloat(rec.GuessRate),
			optionalFloat(rec.HasBias, rec.Bias),
			optionalFloat(rec.HasSwap, rec.SwapRate),
			formatFloat(rec.AIC),
			strconv.FormatBool(rec.AICUnderflow),
			formatFloat(rec.TChance),
			formatFloat(rec.PChance),
			rec.CreatedAt.Format(time.RFC3339Nano),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	fmt.Printf("exported %d fit run(s) to %s\n", len(records), outPath)
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func optionalFloat(has bool, v float64) string {
	if !has {
		return ""
	}
	return formatFloat(v)
}

// #endregion export
