package bias

import (
	"errors"
	"testing"

	"github.com/mkoolen/hue-memory/analysis/internal/category"
)

// protoTable covers 0 with a prototype at +10, so for memorandum 0 the
// prototype direction is positive.
var protoTable = category.Table{
	{Name: "test", Min: -45, Max: 45, Prototype: 10},
}

func TestResponseBiasSignRule(t *testing.T) {
	tests := []struct {
		name       string
		memorandum float64
		response   float64
		want       float64
	}{
		{"toward-prototype", 0, 5, 5},
		{"away-from-prototype", 0, -5, -5},
		{"on-target", 0, 0, 0},
		{"past-prototype-still-toward", 0, 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResponseBias([]float64{tt.memorandum}, []float64{tt.response}, protoTable)
			if err != nil {
				t.Fatalf("ResponseBias: %v", err)
			}
			if got[0] != tt.want {
				t.Errorf("got %v, want %v", got[0], tt.want)
			}
		})
	}
}

func TestResponseBiasNegativeProtoDirection(t *testing.T) {
	// Memorandum at 40: prototype 10 lies in the negative direction,
	// so a negative error is toward the prototype and comes out positive.
	got, err := ResponseBias([]float64{40, 40}, []float64{35, 45}, protoTable)
	if err != nil {
		t.Fatalf("ResponseBias: %v", err)
	}
	if got[0] != 5 {
		t.Errorf("error toward prototype: got %v, want 5", got[0])
	}
	if got[1] != -5 {
		t.Errorf("error away from prototype: got %v, want -5", got[1])
	}
}

func TestResponseBiasWithoutTable(t *testing.T) {
	// No table: raw signed circular distances, no reinterpretation.
	got, err := ResponseBias([]float64{0, 350}, []float64{-5, 10}, nil)
	if err != nil {
		t.Fatalf("ResponseBias: %v", err)
	}
	if got[0] != -5 || got[1] != 20 {
		t.Errorf("got %v, want [-5 20]", got)
	}
}

func TestResponseBiasDefaultTable(t *testing.T) {
	// Memorandum 0 sits in red (prototype 8): same rule as the fixed
	// test table, through the shipped default.
	got, err := ResponseBias([]float64{0, 0}, []float64{5, -5}, category.DefaultTable())
	if err != nil {
		t.Fatalf("ResponseBias: %v", err)
	}
	if got[0] != 5 || got[1] != -5 {
		t.Errorf("got %v, want [5 -5]", got)
	}
}

func TestResponseBiasInvalidInput(t *testing.T) {
	if _, err := ResponseBias(nil, nil, nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := ResponseBias([]float64{0}, []float64{1, 2}, nil); err == nil {
		t.Error("expected error for length mismatch")
	}
	partial := category.Table{{Name: "narrow", Min: 10, Max: 20, Prototype: 15}}
	_, err := ResponseBias([]float64{200}, []float64{210}, partial)
	if !errors.Is(err, category.ErrNoCategory) {
		t.Errorf("expected ErrNoCategory, got %v", err)
	}
}
