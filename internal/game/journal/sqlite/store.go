// Package sqlite provides a SQLite-backed journal implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/rpgsim/internal/game/journal"
	"github.com/louisbranch/rpgsim/internal/game/journal/sqlite/migrations"
	"github.com/louisbranch/rpgsim/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/rpgsim/internal/platform/timeouts"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists journal runs in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var (
	_ journal.Recorder = (*Store)(nil)
	_ journal.Reader   = (*Store)(nil)
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite journal and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		cleanPath, timeouts.JournalBusy.Milliseconds())
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// BeginRun inserts a run row.
func (s *Store) BeginRun(ctx context.Context, run journal.Run) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	runID := strings.TrimSpace(run.ID)
	if runID == "" {
		return fmt.Errorf("run id is required")
	}
	startedAt := run.StartedAt
	if startedAt.IsZero() {
		startedAt = s.now()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO runs (id, source, format, declared, started_at) VALUES (?, ?, ?, ?, ?)`,
		runID,
		strings.TrimSpace(run.Source),
		strings.TrimSpace(run.Format),
		run.Declared,
		toMillis(startedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return journal.ErrAlreadyExists
		}
		return fmt.Errorf("begin run: %w", err)
	}
	return nil
}

// RecordCommand stores one command and its events in a single transaction.
func (s *Store) RecordCommand(ctx context.Context, record journal.CommandRecord) (err error) {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(record.RunID) == "" {
		return fmt.Errorf("run id is required")
	}
	if record.Seq <= 0 {
		return fmt.Errorf("command seq must be greater than zero")
	}
	output, err := json.Marshal(nonNil(record.Output))
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	recordedAt := record.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = s.now()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO commands (run_id, seq, line, type, accepted, rejection_code, output, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.RunID,
		record.Seq,
		record.Line,
		record.Type,
		record.Accepted,
		record.RejectionCode,
		string(output),
		toMillis(recordedAt),
	); err != nil {
		if isUniqueViolation(err) {
			return journal.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return journal.ErrNotFound
		}
		return fmt.Errorf("record command %d: %w", record.Seq, err)
	}
	for i, evt := range record.Events {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO events (run_id, seq, idx, type, entity_type, entity_id, payload_json)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			record.RunID,
			record.Seq,
			i,
			string(evt.Type),
			evt.EntityType,
			evt.EntityID,
			evt.PayloadJSON,
		); err != nil {
			return fmt.Errorf("record event %d.%d: %w", record.Seq, i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit command %d: %w", record.Seq, err)
	}
	return nil
}

// FinishRun stamps the run finish time.
func (s *Store) FinishRun(ctx context.Context, runID string, finishedAt time.Time) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if finishedAt.IsZero() {
		finishedAt = s.now()
	}
	res, err := s.sqlDB.ExecContext(ctx, `UPDATE runs SET finished_at = ? WHERE id = ?`, toMillis(finishedAt), strings.TrimSpace(runID))
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n == 0 {
		return journal.ErrNotFound
	}
	return nil
}

const runColumns = `r.id, r.source, r.format, r.declared, r.started_at, r.finished_at,
	        (SELECT COUNT(*) FROM commands c WHERE c.run_id = r.id)`

// GetRun returns one run by id.
func (s *Store) GetRun(ctx context.Context, runID string) (journal.Run, error) {
	if err := s.ready(ctx); err != nil {
		return journal.Run{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs r WHERE r.id = ?`, strings.TrimSpace(runID))
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return journal.Run{}, journal.ErrNotFound
		}
		return journal.Run{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns every run ordered by start time.
func (s *Store) ListRuns(ctx context.Context) ([]journal.Run, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+runColumns+` FROM runs r ORDER BY r.started_at, r.id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []journal.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ListCommands returns the commands of a run in processing order, with
// their events attached.
func (s *Store) ListCommands(ctx context.Context, runID string) ([]journal.CommandRecord, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT run_id, seq, line, type, accepted, rejection_code, output, recorded_at
		   FROM commands
		  WHERE run_id = ?
		  ORDER BY seq`,
		strings.TrimSpace(runID),
	)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	defer rows.Close()

	var records []journal.CommandRecord
	for rows.Next() {
		var (
			record     journal.CommandRecord
			output     string
			recordedAt int64
		)
		if err := rows.Scan(&record.RunID, &record.Seq, &record.Line, &record.Type, &record.Accepted,
			&record.RejectionCode, &output, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan command: %w", err)
		}
		if err := json.Unmarshal([]byte(output), &record.Output); err != nil {
			return nil, fmt.Errorf("decode command %d output: %w", record.Seq, err)
		}
		record.RecordedAt = fromMillis(recordedAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commands: %w", err)
	}
	rows.Close()

	events, err := s.ListEvents(ctx, runID)
	if err != nil {
		return nil, err
	}
	bySeq := make(map[int]int, len(records))
	for i, record := range records {
		bySeq[record.Seq] = i
	}
	for _, evt := range events {
		if i, ok := bySeq[evt.Seq]; ok {
			records[i].Events = append(records[i].Events, evt.Event())
		}
	}
	return records, nil
}

// ListEvents returns the events of a run ordered by command and index.
func (s *Store) ListEvents(ctx context.Context, runID string) ([]journal.EventRecord, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT run_id, seq, idx, type, entity_type, entity_id, payload_json
		   FROM events
		  WHERE run_id = ?
		  ORDER BY seq, idx`,
		strings.TrimSpace(runID),
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []journal.EventRecord
	for rows.Next() {
		var evt journal.EventRecord
		if err := rows.Scan(&evt.RunID, &evt.Seq, &evt.Index, &evt.Type, &evt.EntityType, &evt.EntityID, &evt.PayloadJSON); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (journal.Run, error) {
	var (
		run        journal.Run
		startedAt  int64
		finishedAt sql.NullInt64
	)
	if err := row.Scan(&run.ID, &run.Source, &run.Format, &run.Declared, &startedAt, &finishedAt, &run.Processed); err != nil {
		return journal.Run{}, err
	}
	run.StartedAt = fromMillis(startedAt)
	if finishedAt.Valid {
		run.FinishedAt = fromMillis(finishedAt.Int64)
	}
	return run, nil
}

func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}
