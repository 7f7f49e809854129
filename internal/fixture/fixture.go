// Package fixture reads and writes JSON dataset fixtures: sessions of
// memorandum/response angle pairs, with optional non-target columns
// for swap analysis.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a dataset fixture.
type Fixture struct {
	Description string    `json:"description,omitempty"`
	Sessions    []Session `json:"sessions"`
}

// Session holds one subject's trials. Memoranda and Responses are
// per-trial hue angles in degrees; Nontargets holds zero or more
// columns of non-target angles, each aligned with the trials.
type Session struct {
	ID         string      `json:"id"`
	Memoranda  []float64   `json:"memoranda"`
	Responses  []float64   `json:"responses"`
	Nontargets [][]float64 `json:"nontargets,omitempty"`
}

// #endregion fixture-types

// #region load-save

// LoadFixture reads and parses a JSON fixture file, validating its
// column shapes.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	if err := f.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion load-save

// #region validate

// Validate checks that every session has trials and that all columns
// are aligned.
func (f *Fixture) Validate() error {
	if len(f.Sessions) == 0 {
		return fmt.Errorf("fixture has no sessions")
	}
	for i, s := range f.Sessions {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("session %d (%q): %w", i, s.ID, err)
		}
	}
	return nil
}

// Validate checks one session's column shapes.
func (s *Session) Validate() error {
	if len(s.Memoranda) == 0 {
		return fmt.Errorf("no trials")
	}
	if len(s.Responses) != len(s.Memoranda) {
		return fmt.Errorf("%d responses for %d memoranda", len(s.Responses), len(s.Memoranda))
	}
	for j, col := range s.Nontargets {
		if len(col) != len(s.Memoranda) {
			return fmt.Errorf("non-target column %d has %d values, want %d", j, len(col), len(s.Memoranda))
		}
	}
	return nil
}

// #endregion validate
