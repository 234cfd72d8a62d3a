package metrics

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store keeps experiment runs and their game records in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database and runs migrations.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id     TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			setup_json TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS game_records (
			run_id      TEXT NOT NULL REFERENCES runs(run_id),
			game        INTEGER NOT NULL,
			seed        INTEGER NOT NULL,
			outcome     TEXT NOT NULL,
			winner      INTEGER NOT NULL,
			turns       INTEGER NOT NULL,
			vps_json    TEXT NOT NULL,
			money_json  TEXT NOT NULL,
			duration_ns INTEGER NOT NULL,
			PRIMARY KEY (run_id, game)
		);
	`)
	return err
}

// SaveRun registers a run under setup.RunID together with its game records, in one
// transaction: either the run and all its records are stored or nothing is.
func (s *Store) SaveRun(setup Setup, records []GameRecord) error {
	if setup.RunID == "" {
		return fmt.Errorf("cannot save run %q without a run id", setup.Name)
	}
	data, err := json.Marshal(setup)
	if err != nil {
		return fmt.Errorf("encode setup: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO runs (run_id, name, setup_json) VALUES (?, ?, ?)",
		setup.RunID, setup.Name, string(data),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	if err := insertGameRecords(tx, setup.RunID, records); err != nil {
		return err
	}
	return tx.Commit()
}

// GetRun retrieves the setup of a run.
func (s *Store) GetRun(runID string) (*Setup, error) {
	var data string
	if err := s.db.QueryRow("SELECT setup_json FROM runs WHERE run_id = ?", runID).Scan(&data); err != nil {
		return nil, err
	}
	var setup Setup
	if err := json.Unmarshal([]byte(data), &setup); err != nil {
		return nil, fmt.Errorf("decode setup: %w", err)
	}
	return &setup, nil
}

func insertGameRecords(tx *sql.Tx, runID string, records []GameRecord) error {
	stmt, err := tx.Prepare(`
		INSERT INTO game_records (run_id, game, seed, outcome, winner, turns, vps_json, money_json, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		vps, err := json.Marshal(r.VPs)
		if err != nil {
			return fmt.Errorf("encode vps of game %d: %w", r.Game, err)
		}
		money, err := json.Marshal(r.Money)
		if err != nil {
			return fmt.Errorf("encode money of game %d: %w", r.Game, err)
		}
		if _, err := stmt.Exec(runID, r.Game, int64(r.Seed), r.Outcome, r.Winner, r.Turns,
			string(vps), string(money), int64(r.Duration)); err != nil {
			return fmt.Errorf("insert game %d: %w", r.Game, err)
		}
	}
	return nil
}

// GameRecords returns the records of a run ordered by game index.
func (s *Store) GameRecords(runID string) ([]GameRecord, error) {
	rows, err := s.db.Query(`
		SELECT game, seed, outcome, winner, turns, vps_json, money_json, duration_ns
		FROM game_records WHERE run_id = ? ORDER BY game
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []GameRecord
	for rows.Next() {
		var (
			r           GameRecord
			seed, nanos int64
			vps, money  string
		)
		if err := rows.Scan(&r.Game, &seed, &r.Outcome, &r.Winner, &r.Turns, &vps, &money, &nanos); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(vps), &r.VPs); err != nil {
			return nil, fmt.Errorf("decode vps of game %d: %w", r.Game, err)
		}
		if err := json.Unmarshal([]byte(money), &r.Money); err != nil {
			return nil, fmt.Errorf("decode money of game %d: %w", r.Game, err)
		}
		r.Seed = uint64(seed)
		r.Duration = time.Duration(nanos)
		result = append(result, r)
	}
	return result, rows.Err()
}

// OutcomeCounts tallies the outcomes of a run.
func (s *Store) OutcomeCounts(runID string) (map[string]int, error) {
	rows, err := s.db.Query("SELECT outcome, COUNT(*) FROM game_records WHERE run_id = ? GROUP BY outcome", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
