package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/mkoolen/hue-memory/analysis/internal/bias"
	"github.com/mkoolen/hue-memory/analysis/internal/category"
	"github.com/mkoolen/hue-memory/analysis/internal/chance"
	"github.com/mkoolen/hue-memory/analysis/internal/fit"
	"github.com/mkoolen/hue-memory/analysis/internal/fixture"
	"github.com/mkoolen/hue-memory/analysis/internal/mixture"
	"github.com/mkoolen/hue-memory/analysis/internal/results"
)

// #region main

func main() {
	dataPath := flag.String("data", "", "path to dataset fixture JSON")
	dbPath := flag.String("db", "", "optional results database; fits are persisted when set")
	tableName := flag.String("table", "default", "category table: default, classic, or none")
	swap := flag.Bool("swap", false, "fit the swap model using the fixture's non-target columns")
	noBias := flag.Bool("no-bias", false, "drop the directional bias component")
	seed := flag.Int64("seed", 0, "random seed for the chance test shuffle (0 = time-seeded)")
	flag.Parse()

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fit --data path/to/fixture.json [--db results.db] [--table default|classic|none] [--swap] [--no-bias] [--seed N]")
		os.Exit(2)
	}

	if err := run(*dataPath, *dbPath, *tableName, *swap, *noBias, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(dataPath, dbPath, tableName string, swap, noBias bool, seed int64) error {
	table, err := tableByName(tableName)
	if err != nil {
		return err
	}

	f, err := fixture.LoadFixture(dataPath)
	if err != nil {
		return err
	}

	var store *results.Store
	if dbPath != "" {
		store, err = results.NewStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for _, session := range f.Sessions {
		if err := fitSession(session, table, store, swap, noBias, rng); err != nil {
			return fmt.Errorf("session %q: %w", session.ID, err)
		}
	}
	return nil
}

func fitSession(s fixture.Session, table category.Table, store *results.Store, swap, noBias bool, rng *rand.Rand) error {
	x, err := bias.ResponseBias(s.Memoranda, s.Responses, table)
	if err != nil {
		return err
	}

	var nontargets [][]float64
	if swap {
		if len(s.Nontargets) == 0 {
			return fmt.Errorf("swap model requested but fixture has no non-target columns")
		}
		for _, col := range s.Nontargets {
			nt, err := bias.ResponseBias(col, s.Responses, table)
			if err != nil {
				return err
			}
			nontargets = append(nontargets, nt)
		}
	}

	res, err := fit.FitMixtureModel(x, nontargets, !noBias, nil)
	if err != nil {
		return err
	}

	aic, underflow, err := mixture.AIC(res.Params, res.K(), x, nontargets)
	if err != nil {
		return err
	}
	if underflow {
		fmt.Fprintf(os.Stderr, "warning: session %q: likelihood product underflowed, AIC floored\n", s.ID)
	}

	tChance, pChance, err := chance.TestChancePerformance(s.Memoranda, s.Responses, rng)
	if err != nil {
		return err
	}

	p := res.Params
	fmt.Printf("%s\tmodel=%s\tn=%d\tprecision=%.2f\tguess_rate=%.4f", s.ID, modelName(res), len(x), p.Precision, p.GuessRate)
	if res.HasBias {
		fmt.Printf("\tbias=%.3f", p.Bias)
	}
	if res.HasSwap {
		fmt.Printf("\tswap_rate=%.4f", p.SwapRate)
	}
	fmt.Printf("\taic=%.2f\tp_chance=%.3g\n", aic, pChance)

	if store != nil {
		_, err = store.SaveFit(results.FitRecord{
			SessionID:    s.ID,
			Model:        modelName(res),
			NTrials:      len(x),
			Precision:    p.Precision,
			GuessRate:    p.GuessRate,
			HasBias:      res.HasBias,
			Bias:         p.Bias,
			HasSwap:      res.HasSwap,
			SwapRate:     p.SwapRate,
			AIC:          aic,
			AICUnderflow: underflow,
			TChance:      tChance,
			PChance:      pChance,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// #endregion run

// #region helpers

func tableByName(name string) (category.Table, error) {
	switch name {
	case "default":
		return category.DefaultTable(), nil
	case "classic":
		return category.ClassicTable(), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown category table %q (want default, classic, or none)", name)
	}
}

func modelName(r fit.Result) string {
	name := "mixture"
	if r.HasBias {
		name += "+bias"
	}
	if r.HasSwap {
		name += "+swap"
	}
	return name
}

// #endregion helpers
