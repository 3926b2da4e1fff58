// Package store handles SQLite persistence for completed sessions.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/keytrainer/keytrainer/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for session data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			ts          TEXT    NOT NULL,
			source      TEXT    NOT NULL,
			wpm         REAL    NOT NULL,
			accuracy    REAL    NOT NULL,
			duration    REAL    NOT NULL,
			chars_typed INTEGER NOT NULL,
			errors      TEXT    NOT NULL DEFAULT '[]',
			timings     TEXT    NOT NULL DEFAULT '[]'
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_source ON sessions(source);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return s.maybeMigrate()
}

// maybeMigrate adds columns introduced after the initial schema if they
// don't exist yet, following the same idempotent inspect-then-ALTER
// pattern for every future column addition.
func (s *Store) maybeMigrate() error {
	rows, err := s.db.Query(`PRAGMA table_info(sessions)`)
	if err != nil {
		return err
	}
	cols := map[string]struct{}{}
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			_ = rows.Close()
			return err
		}
		cols[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if cerr := rows.Close(); cerr != nil {
		_ = cerr
	}

	if _, ok := cols["timings"]; !ok {
		if _, err := s.db.Exec(`ALTER TABLE sessions ADD COLUMN timings TEXT NOT NULL DEFAULT '[]'`); err != nil {
			return err
		}
	}
	return nil
}

type errorPairJSON struct {
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

// SaveSession persists a completed session, JSON-encoding errors and
// timings, and returns the new row id.
func (s *Store) SaveSession(ctx context.Context, rec model.SessionRecord) (int64, error) {
	errsJSON := make([]errorPairJSON, 0, len(rec.Errors))
	for _, e := range rec.Errors {
		errsJSON = append(errsJSON, errorPairJSON{Expected: string(e.Expected), Got: string(e.Got)})
	}
	errorsBlob, err := json.Marshal(errsJSON)
	if err != nil {
		return 0, fmt.Errorf("failed to encode errors: %w", err)
	}
	if rec.Timings == nil {
		rec.Timings = []int{}
	}
	timingsBlob, err := json.Marshal(rec.Timings)
	if err != nil {
		return 0, fmt.Errorf("failed to encode timings: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (ts, source, wpm, accuracy, duration, chars_typed, errors, timings)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Format(time.RFC3339Nano),
		rec.Source,
		round2(rec.WPM),
		round2(rec.Accuracy),
		round2(rec.DurationSec),
		rec.CharsTyped,
		string(errorsBlob),
		string(timingsBlob),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Stats returns the aggregate summary over all sessions: totals, best/avg
// WPM, avg accuracy, and the 10 most recent sessions.
func (s *Store) Stats(ctx context.Context) (model.StoreSummary, error) {
	var total int
	var best, avgWPM, avgAcc sql.NullFloat64
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MAX(wpm), AVG(wpm), AVG(accuracy) FROM sessions`)
	if err := row.Scan(&total, &best, &avgWPM, &avgAcc); err != nil {
		return model.StoreSummary{}, err
	}

	recent, err := s.listRecent(ctx, 10)
	if err != nil {
		return model.StoreSummary{}, err
	}

	return model.StoreSummary{
		Total:       total,
		BestWPM:     round2(best.Float64),
		AvgWPM:      round2(avgWPM.Float64),
		AvgAccuracy: round2(avgAcc.Float64),
		Recent:      recent,
	}, nil
}

func (s *Store) listRecent(ctx context.Context, n int) ([]model.SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ts, source, wpm, accuracy, duration, chars_typed, errors, timings
		 FROM sessions ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			_ = cerr
		}
	}()

	var out []model.SessionRecord
	for rows.Next() {
		rec, err := scanSessionRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// BestWPMFor returns the best WPM recorded for source, or 0 if none.
func (s *Store) BestWPMFor(ctx context.Context, source string) (float64, error) {
	var best sql.NullFloat64
	row := s.db.QueryRowContext(ctx, `SELECT MAX(wpm) FROM sessions WHERE source = ?`, source)
	if err := row.Scan(&best); err != nil {
		return 0, err
	}
	return best.Float64, nil
}

// GhostTimings returns the inter-keystroke timings (ms) from the
// highest-WPM session recorded for source, or an empty slice if none.
func (s *Store) GhostTimings(ctx context.Context, source string) ([]int, error) {
	var timingsJSON string
	row := s.db.QueryRowContext(ctx,
		`SELECT timings FROM sessions WHERE source = ? ORDER BY wpm DESC LIMIT 1`, source)
	if err := row.Scan(&timingsJSON); err != nil {
		if err == sql.ErrNoRows {
			return []int{}, nil
		}
		return nil, err
	}
	var timings []int
	if err := json.Unmarshal([]byte(timingsJSON), &timings); err != nil {
		return []int{}, nil
	}
	if timings == nil {
		timings = []int{}
	}
	return timings, nil
}

// FocusData reads the errors blobs of the last nSessions sessions and
// returns the top-5 weak digraphs and problem chars, worst-first.
func (s *Store) FocusData(ctx context.Context, nSessions int) (model.FocusData, error) {
	if nSessions <= 0 {
		nSessions = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT errors FROM sessions ORDER BY id DESC LIMIT ?`, nSessions)
	if err != nil {
		return model.FocusData{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			_ = cerr
		}
	}()

	digraphCounts := map[string]int{}
	digraphOrder := []string{}
	charCounts := map[rune]int{}
	charOrder := []rune{}

	for rows.Next() {
		var errorsJSON string
		if err := rows.Scan(&errorsJSON); err != nil {
			return model.FocusData{}, err
		}
		var errs []errorPairJSON
		if err := json.Unmarshal([]byte(errorsJSON), &errs); err != nil {
			continue
		}

		chars := make([]rune, 0, len(errs))
		for _, e := range errs {
			er := []rune(e.Expected)
			if len(er) != 1 {
				continue
			}
			ch := er[0]
			chars = append(chars, ch)
			if _, ok := charCounts[ch]; !ok {
				charOrder = append(charOrder, ch)
			}
			charCounts[ch]++
		}
		for i := 0; i < len(chars)-1; i++ {
			dg := string(chars[i]) + string(chars[i+1])
			if _, ok := digraphCounts[dg]; !ok {
				digraphOrder = append(digraphOrder, dg)
			}
			digraphCounts[dg]++
		}
	}
	if err := rows.Err(); err != nil {
		return model.FocusData{}, err
	}

	weakDigraphs := topStringsByCount(digraphOrder, digraphCounts, 5)
	problemChars := topRunesByCount(charOrder, charCounts, 5)

	return model.FocusData{WeakDigraphs: weakDigraphs, ProblemChars: problemChars}, nil
}

func scanSessionRow(rows *sql.Rows) (model.SessionRecord, error) {
	var rec model.SessionRecord
	var tsRaw, errorsJSON, timingsJSON string
	if err := rows.Scan(&rec.ID, &tsRaw, &rec.Source, &rec.WPM, &rec.Accuracy, &rec.DurationSec, &rec.CharsTyped, &errorsJSON, &timingsJSON); err != nil {
		return model.SessionRecord{}, err
	}
	if ts, err := time.Parse(time.RFC3339Nano, tsRaw); err == nil {
		rec.Timestamp = ts
	}
	var errs []errorPairJSON
	if err := json.Unmarshal([]byte(errorsJSON), &errs); err == nil {
		for _, e := range errs {
			er, eg := []rune(e.Expected), []rune(e.Got)
			if len(er) != 1 || len(eg) != 1 {
				continue
			}
			rec.Errors = append(rec.Errors, model.ErrorPair{Expected: er[0], Got: eg[0]})
		}
	}
	var timings []int
	if err := json.Unmarshal([]byte(timingsJSON), &timings); err == nil {
		rec.Timings = timings
	}
	return rec, nil
}

func topStringsByCount(order []string, counts map[string]int, n int) []string {
	sorted := make([]string, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool { return counts[sorted[i]] > counts[sorted[j]] })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func topRunesByCount(order []rune, counts map[rune]int, n int) []rune {
	sorted := make([]rune, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool { return counts[sorted[i]] > counts[sorted[j]] })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
