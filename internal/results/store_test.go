package results

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetFit(t *testing.T) {
	s := tempStore(t)

	saved, err := s.SaveFit(FitRecord{
		SessionID: "subj-01",
		Model:     "mixture+bias",
		NTrials:   240,
		Precision: 612.3,
		GuessRate: 0.04,
		HasBias:   true,
		Bias:      1.8,
		AIC:       1450.2,
		TChance:   -31.5,
		PChance:   1.2e-30,
	})
	if err != nil {
		t.Fatalf("SaveFit: %v", err)
	}
	if saved.RunID == "" {
		t.Fatal("expected generated run ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := s.GetFit(saved.RunID)
	if err != nil {
		t.Fatalf("GetFit: %v", err)
	}
	if got.SessionID != "subj-01" || got.Model != "mixture+bias" || got.NTrials != 240 {
		t.Errorf("record mismatch: %+v", got)
	}
	if !got.HasBias || got.Bias != 1.8 {
		t.Errorf("bias not persisted: %+v", got)
	}
	if got.HasSwap {
		t.Error("swap should stay unset for a non-swap model")
	}
	if math.Abs(got.PChance-1.2e-30) > 1e-40 {
		t.Errorf("p_chance mismatch: %v", got.PChance)
	}
}

func TestSaveFitUnderflowFlag(t *testing.T) {
	s := tempStore(t)
	saved, err := s.SaveFit(FitRecord{
		SessionID: "subj-02", Model: "mixture", NTrials: 10,
		Precision: 9000, GuessRate: 0, AIC: 1492.9, AICUnderflow: true,
		PChance: 1,
	})
	if err != nil {
		t.Fatalf("SaveFit: %v", err)
	}
	got, err := s.GetFit(saved.RunID)
	if err != nil {
		t.Fatalf("GetFit: %v", err)
	}
	if !got.AICUnderflow {
		t.Error("underflow flag not persisted")
	}
}

func TestListFitsOrder(t *testing.T) {
	s := tempStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.SaveFit(FitRecord{
			SessionID: "subj-03",
			Model:     "mixture",
			NTrials:   100,
			Precision: float64(500 + i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveFit %d: %v", i, err)
		}
	}

	records, err := s.ListFits(2)
	if err != nil {
		t.Fatalf("ListFits: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// Newest first.
	if records[0].Precision != 502 || records[1].Precision != 501 {
		t.Errorf("wrong order: %v, %v", records[0].Precision, records[1].Precision)
	}
}

func TestGetFitMissing(t *testing.T) {
	s := tempStore(t)
	if _, err := s.GetFit("no-such-run"); err == nil {
		t.Error("expected error for missing run")
	}
}
