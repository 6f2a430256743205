package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jstigall/legisim/internal/legislature"
)

// archiveSchema holds one row per repetition, keyed by the sweep that
// produced it so several sweeps can share one database file.
const archiveSchema = `
CREATE TABLE IF NOT EXISTS repetitions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    sweep TEXT NOT NULL,
    rep INTEGER NOT NULL,
    initial_value REAL NOT NULL,
    final_value REAL NOT NULL,
    votes INTEGER NOT NULL,
    yeas INTEGER NOT NULL,
    maj_size INTEGER NOT NULL,
    distance REAL NOT NULL,
    maj_sigma REAL NOT NULL,
    maj_adj REAL NOT NULL,
    min_sigma REAL NOT NULL,
    min_adj REAL NOT NULL,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);

CREATE INDEX IF NOT EXISTS idx_repetitions_sweep ON repetitions(sweep);
`

// Archive persists outcome rows to a SQLite database.
type Archive struct {
	db   *sql.DB
	path string
}

// OpenArchive opens (or creates) the archive database at path.
func OpenArchive(path string) (*Archive, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), archiveSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing archive schema: %w", err)
	}

	return &Archive{db: db, path: path}, nil
}

// AppendBatch inserts all outcomes under the given sweep label in one
// transaction.
func (a *Archive) AppendBatch(ctx context.Context, sweep string, outcomes []legislature.Outcome) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO repetitions (sweep, rep, initial_value, final_value, votes, yeas,
			maj_size, distance, maj_sigma, maj_adj, min_sigma, min_adj)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range outcomes {
		if _, err := stmt.ExecContext(ctx, sweep, o.Rep, o.InitialValue, o.FinalValue,
			o.Votes, o.Yeas, o.MajSize, o.Distance, o.MajSigma, o.MajAdj,
			o.MinSigma, o.MinAdj); err != nil {
			return fmt.Errorf("inserting repetition %d: %w", o.Rep, err)
		}
	}

	return tx.Commit()
}

// Summary aggregates a sweep's archived repetitions.
type Summary struct {
	Sweep     string
	Count     int
	MeanVotes float64
	MeanFinal float64
}

// Summarize returns aggregate statistics for one sweep label.
func (a *Archive) Summarize(ctx context.Context, sweep string) (Summary, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(AVG(votes), 0), COALESCE(AVG(final_value), 0)
		FROM repetitions WHERE sweep = ?`, sweep)

	s := Summary{Sweep: sweep}
	if err := row.Scan(&s.Count, &s.MeanVotes, &s.MeanFinal); err != nil {
		return Summary{}, fmt.Errorf("summarizing sweep %q: %w", sweep, err)
	}
	return s, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}
