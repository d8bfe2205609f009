package runlog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; existing databases must be pruned after a bump.
const schemaVersion = 1

// ErrNotFound indicates the requested run does not exist.
var ErrNotFound = errors.New("runlog: run not found")

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("runlog: schema version mismatch")

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the run-log database inside dir.
func Open(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, "runlog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (run 'subweave runs prune --all' or delete %s)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Begin inserts a new running entry and returns it with its generated ID.
func (s *Store) Begin(ctx context.Context, source, lang string, merged, transliterated bool, formats []string) (*Run, error) {
	now := time.Now().UTC()
	run := &Run{
		ID:             uuid.NewString(),
		Source:         source,
		Language:       lang,
		Merged:         merged,
		Transliterated: transliterated,
		Formats:        formats,
		Status:         StatusRunning,
		CreatedAt:      now,
	}

	formatsJSON, err := marshalList(run.Formats)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source, language, merged, transliterated, formats, status, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.Language, boolToInt(run.Merged), boolToInt(run.Transliterated),
		formatsJSON, run.Status, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// Finish marks the run completed or failed and records its artifacts,
// warnings, and error message.
func (s *Store) Finish(ctx context.Context, run *Run) error {
	if !run.Finished() {
		return fmt.Errorf("finish run %s: status %q is not terminal", run.ID, run.Status)
	}
	artifactsJSON, err := marshalList(run.Artifacts)
	if err != nil {
		return err
	}
	warningsJSON, err := marshalList(run.Warnings)
	if err != nil {
		return err
	}
	finished := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET artifacts = ?, warnings = ?, status = ?, error_message = ?, finished_at = ? WHERE id = ?`,
		artifactsJSON, warningsJSON, run.Status, nullableString(run.ErrorMessage),
		finished.Format(time.RFC3339Nano), run.ID,
	)
	if err != nil {
		return fmt.Errorf("update run %s: %w", run.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	run.FinishedAt = finished
	return nil
}

// Get returns one run by ID.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" FROM runs WHERE id = ?", id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return run, err
}

// List returns the most recent runs, newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	query := selectColumns + " FROM runs ORDER BY created_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Prune removes finished runs older than the cutoff and returns how many
// were deleted. A zero cutoff removes every finished run.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE status != ? AND created_at < ?`,
		StatusRunning, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}

const selectColumns = `SELECT id, source, language, merged, transliterated, formats, artifacts, warnings, status, error_message, created_at, finished_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run           Run
		merged        int
		translit      int
		formatsJSON   string
		artifactsJSON string
		warningsJSON  string
		errorMessage  sql.NullString
		createdAt     string
		finishedAt    sql.NullString
	)
	err := row.Scan(&run.ID, &run.Source, &run.Language, &merged, &translit,
		&formatsJSON, &artifactsJSON, &warningsJSON, &run.Status, &errorMessage,
		&createdAt, &finishedAt)
	if err != nil {
		return nil, err
	}
	run.Merged = merged != 0
	run.Transliterated = translit != 0
	if run.Formats, err = unmarshalList(formatsJSON); err != nil {
		return nil, fmt.Errorf("decode formats for run %s: %w", run.ID, err)
	}
	if run.Artifacts, err = unmarshalList(artifactsJSON); err != nil {
		return nil, fmt.Errorf("decode artifacts for run %s: %w", run.ID, err)
	}
	if run.Warnings, err = unmarshalList(warningsJSON); err != nil {
		return nil, fmt.Errorf("decode warnings for run %s: %w", run.ID, err)
	}
	run.ErrorMessage = errorMessage.String
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at for run %s: %w", run.ID, err)
	}
	if finishedAt.Valid {
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt.String); err != nil {
			return nil, fmt.Errorf("parse finished_at for run %s: %w", run.ID, err)
		}
	}
	return &run, nil
}

func marshalList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(data), nil
}

func unmarshalList(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
