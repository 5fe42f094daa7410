package record

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
)

// BatchRecorder stores batch comparison results.
type BatchRecorder interface {
	// RecordBatch buffers one row per entry and policy.
	RecordBatch(frames int, entries []sim.BatchEntry)

	// Flush writes all buffered rows.
	Flush() error

	// Close flushes and releases the database.
	Close() error
}

// comparisonRow is one policy's result on one reference string.
type comparisonRow struct {
	batchID   string
	index     int
	input     string
	reference string
	accesses  int
	frames    int
	policy    string
	faults    int
}

// SQLiteRecorder writes comparison rows into a SQLite database.
type SQLiteRecorder struct {
	db        *sql.DB
	statement *sql.Stmt

	path      string
	batchID   string
	batchSize int
	rows      []comparisonRow
	closed    bool
}

// NewSQLiteRecorder opens (creating if needed) the database at path. An empty
// path creates a new file named after a fresh ID. Buffered rows are flushed at
// process exit if Close is never called.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	if path == "" {
		path = "pagesim_results_" + xid.New().String() + ".sqlite3"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	r := &SQLiteRecorder{
		db:        db,
		path:      path,
		batchID:   xid.New().String(),
		batchSize: 10000,
	}
	if err := r.createTable(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if r.statement, err = db.Prepare(`INSERT INTO comparisons
		(batch_id, batch_index, input, reference, accesses, frames, policy, faults)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("preparing insert: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Database used for recording: %s\n", path)
	atexit.Register(func() {
		if err := r.Close(); err != nil {
			logrus.Errorf("closing recorder: %v", err)
		}
	})
	return r, nil
}

func (r *SQLiteRecorder) createTable() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS comparisons (
		batch_id    TEXT NOT NULL,
		batch_index INTEGER NOT NULL,
		input       TEXT NOT NULL,
		reference   TEXT NOT NULL,
		accesses    INTEGER NOT NULL,
		frames      INTEGER NOT NULL,
		policy      TEXT NOT NULL,
		faults      INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("creating comparisons table: %w", err)
	}
	return nil
}

// Path returns the database file.
func (r *SQLiteRecorder) Path() string { return r.path }

// BatchID identifies the rows written by this recorder.
func (r *SQLiteRecorder) BatchID() string { return r.batchID }

func (r *SQLiteRecorder) RecordBatch(frames int, entries []sim.BatchEntry) {
	for _, e := range entries {
		for _, name := range sim.BuiltinPolicyNames() {
			faults, ok := e.Result[name]
			if !ok {
				continue
			}
			r.rows = append(r.rows, comparisonRow{
				batchID:   r.batchID,
				index:     e.Index,
				input:     e.Input,
				reference: sim.FormatReferenceString(e.Reference),
				accesses:  len(e.Reference),
				frames:    frames,
				policy:    name,
				faults:    faults,
			})
		}
	}
	if len(r.rows) >= r.batchSize {
		if err := r.Flush(); err != nil {
			logrus.Errorf("flushing recorder: %v", err)
		}
	}
}

func (r *SQLiteRecorder) Flush() error {
	if len(r.rows) == 0 || r.closed {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	stmt := tx.Stmt(r.statement)
	for _, row := range r.rows {
		if _, err := stmt.Exec(row.batchID, row.index, row.input, row.reference,
			row.accesses, row.frames, row.policy, row.faults); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("inserting row %d/%s: %w", row.index, row.policy, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	logrus.Debugf("recorder: wrote %d rows to %s", len(r.rows), r.path)
	r.rows = nil
	return nil
}

func (r *SQLiteRecorder) Close() error {
	if r.closed {
		return nil
	}
	flushErr := r.Flush()
	r.closed = true
	_ = r.statement.Close()
	if err := r.db.Close(); err != nil {
		return err
	}
	return flushErr
}
