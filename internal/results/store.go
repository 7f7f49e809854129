// Package results persists fitting runs in SQLite, one row per
// session fit: parameters, AIC, and the chance test outcome.
package results

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS fit_runs (
	run_id        TEXT PRIMARY KEY,
	session_id    TEXT NOT NULL,
	model         TEXT NOT NULL,
	n_trials      INTEGER NOT NULL,
	precision     REAL NOT NULL,
	guess_rate    REAL NOT NULL,
	bias          REAL,
	swap_rate     REAL,
	aic           REAL NOT NULL,
	aic_underflow INTEGER NOT NULL DEFAULT 0,
	t_chance      REAL NOT NULL,
	p_chance      REAL NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fit_runs_session ON fit_runs(session_id);
`
// #endregion schema

// #region store-struct
// Store manages fit results in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region save-fit
// SaveFit inserts a fitting run. A missing RunID gets a fresh UUID, a
// zero CreatedAt the current time; the stored record is returned.
func (s *Store) SaveFit(rec FitRecord) (FitRecord, error) {
	if rec.RunID == "" {
		rec.RunID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO fit_runs (run_id, session_id, model, n_trials, precision, guess_rate,
		 bias, swap_rate, aic, aic_underflow, t_chance, p_chance, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.SessionID, rec.Model, rec.NTrials, rec.Precision, rec.GuessRate,
		nullUnless(rec.HasBias, rec.Bias), nullUnless(rec.HasSwap, rec.SwapRate),
		rec.AIC, boolToInt(rec.AICUnderflow), rec.TChance, rec.PChance,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return FitRecord{}, fmt.Errorf("insert fit run: %w", err)
	}
	return rec, nil
}
// #endregion save-fit

// #region get-fit
// GetFit retrieves a fitting run by ID.
func (s *Store) GetFit(runID string) (FitRecord, error) {
	row := s.db.QueryRow(
		`SELECT run_id, session_id, model, n_trials, precision, guess_rate,
		 bias, swap_rate, aic, aic_underflow, t_chance, p_chance, created_at
		 FROM fit_runs WHERE run_id = ?`, runID,
	)
	rec, err := scanFit(row)
	if err != nil {
		return FitRecord{}, fmt.Errorf("get fit run %s: %w", runID, err)
	}
	return rec, nil
}
// #endregion get-fit

// #region list-fits
// ListFits returns the most recent fitting runs, newest first.
func (s *Store) ListFits(limit int) ([]FitRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, session_id, model, n_trials, precision, guess_rate,
		 bias, swap_rate, aic, aic_underflow, t_chance, p_chance, created_at
		 FROM fit_runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list fit runs: %w", err)
	}
	defer rows.Close()

	var records []FitRecord
	for rows.Next() {
		rec, err := scanFit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fit run: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-fits

// #region scan

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFit(row scanner) (FitRecord, error) {
	var rec FitRecord
	var biasVal, swapVal sql.NullFloat64
	var underflow int
	var createdStr string

	err := row.Scan(&rec.RunID, &rec.SessionID, &rec.Model, &rec.NTrials,
		&rec.Precision, &rec.GuessRate, &biasVal, &swapVal,
		&rec.AIC, &underflow, &rec.TChance, &rec.PChance, &createdStr)
	if err != nil {
		return FitRecord{}, err
	}
	if biasVal.Valid {
		rec.HasBias = true
		rec.Bias = biasVal.Float64
	}
	if swapVal.Valid {
		rec.HasSwap = true
		rec.SwapRate = swapVal.Float64
	}
	rec.AICUnderflow = underflow != 0
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

func nullUnless(has bool, v float64) any {
	if !has {
		return nil
	}
	return v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion scan
