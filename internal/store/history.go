// Package store keeps a SQLite-backed history of projection runs.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

var (
	// ErrNotFound is returned when no run matches the requested ID.
	ErrNotFound = errors.New("run not found")
	// ErrAmbiguousID is returned when an ID prefix matches more than one run.
	ErrAmbiguousID = errors.New("run id prefix is ambiguous")
)

// Run is one saved projection.
type Run struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	CreatedAt        time.Time              `json:"created_at"`
	Input            domain.ProjectionInput `json:"input"`
	DaysRemaining    int                    `json:"days_remaining"`
	DailyBudget      decimal.Decimal        `json:"daily_budget"`
	RetirementAssets decimal.Decimal        `json:"retirement_assets"`
	FinalAssets      decimal.Decimal        `json:"final_assets"`
	FinalBalance     decimal.Decimal        `json:"final_balance"`
	Points           []domain.YearPoint     `json:"points"`
}

// ShortID is the first eight characters of the ID, enough for GetRun in practice.
func (r Run) ShortID() string {
	if len(r.ID) < 8 {
		return r.ID
	}
	return r.ID[:8]
}

// Result rebuilds the projection result that was saved.
func (r Run) Result() domain.ProjectionResult {
	return domain.ProjectionResult{
		Points:           r.Points,
		DaysRemaining:    r.DaysRemaining,
		RetirementAssets: r.RetirementAssets,
		DailyBudget:      r.DailyBudget,
		FinalBalance:     r.FinalBalance,
	}
}

// History provides SQLite-backed run storage.
type History struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db, now: time.Now, newID: uuid.NewString}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun stores a finished projection under a fresh ID.
func (h *History) SaveRun(name string, in domain.ProjectionInput, result domain.ProjectionResult) (Run, error) {
	run := Run{
		ID:               h.newID(),
		Name:             name,
		CreatedAt:        h.now().UTC(),
		Input:            in,
		DaysRemaining:    result.DaysRemaining,
		DailyBudget:      result.DailyBudget,
		RetirementAssets: result.RetirementAssets,
		FinalAssets:      result.FinalAssets(),
		FinalBalance:     result.FinalBalance,
		Points:           result.Points,
	}

	inputJSON, err := json.Marshal(run.Input)
	if err != nil {
		return Run{}, fmt.Errorf("encoding input: %w", err)
	}
	pointsJSON, err := json.Marshal(run.Points)
	if err != nil {
		return Run{}, fmt.Errorf("encoding points: %w", err)
	}

	_, err = h.db.Exec(`INSERT INTO runs
		(id, name, created_at, input_json, days_remaining, daily_budget,
		 retirement_assets, final_assets, final_balance, points_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Name, run.CreatedAt.Format(timeLayout), string(inputJSON), run.DaysRemaining,
		run.DailyBudget.String(), run.RetirementAssets.String(), run.FinalAssets.String(),
		run.FinalBalance.String(), string(pointsJSON),
	)
	if err != nil {
		return Run{}, fmt.Errorf("saving run: %w", err)
	}
	return run, nil
}

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = `id, name, created_at, input_json, days_remaining, daily_budget,
	retirement_assets, final_assets, final_balance, points_json`

// ListRuns returns the most recent runs first. limit <= 0 returns all of them.
func (h *History) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := h.db.Query("SELECT "+runColumns+" FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns the run with the given ID or unique ID prefix.
func (h *History) GetRun(id string) (Run, error) {
	if id == "" {
		return Run{}, ErrNotFound
	}
	rows, err := h.db.Query("SELECT "+runColumns+" FROM runs WHERE substr(id, 1, length(?)) = ? LIMIT 2", id, id)
	if err != nil {
		return Run{}, fmt.Errorf("loading run: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var found []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return Run{}, err
		}
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return Run{}, err
	}

	switch len(found) {
	case 0:
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return found[0], nil
	default:
		return Run{}, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
	}
}

// DeleteAll removes every run and reports how many were deleted.
func (h *History) DeleteAll() (int64, error) {
	res, err := h.db.Exec("DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var (
		r                                    Run
		createdAt, inputJSON, ptsJSON        string
		budget, atRetirement, final, balance string
	)
	if err := s.Scan(&r.ID, &r.Name, &createdAt, &inputJSON, &r.DaysRemaining,
		&budget, &atRetirement, &final, &balance, &ptsJSON); err != nil {
		return Run{}, fmt.Errorf("scanning run: %w", err)
	}

	var err error
	if r.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return Run{}, fmt.Errorf("run %s: bad timestamp: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(inputJSON), &r.Input); err != nil {
		return Run{}, fmt.Errorf("run %s: decoding input: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(ptsJSON), &r.Points); err != nil {
		return Run{}, fmt.Errorf("run %s: decoding points: %w", r.ID, err)
	}
	if r.DailyBudget, err = decimal.NewFromString(budget); err != nil {
		return Run{}, fmt.Errorf("run %s: daily budget: %w", r.ID, err)
	}
	if r.RetirementAssets, err = decimal.NewFromString(atRetirement); err != nil {
		return Run{}, fmt.Errorf("run %s: retirement assets: %w", r.ID, err)
	}
	if r.FinalAssets, err = decimal.NewFromString(final); err != nil {
		return Run{}, fmt.Errorf("run %s: final assets: %w", r.ID, err)
	}
	if r.FinalBalance, err = decimal.NewFromString(balance); err != nil {
		return Run{}, fmt.Errorf("run %s: final balance: %w", r.ID, err)
	}
	return r, nil
}
