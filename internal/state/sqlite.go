// Package state records schema deployments in a local SQLite ledger.
//
// Every create, drop, verify or load run against a target is written as a
// deployment row, so the history of a database can be listed without
// connecting to it.
package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// timeLayout is fixed width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

var (
	// ErrNotOpened is returned when the store is used before Open.
	ErrNotOpened = errors.New("database not opened")
	// ErrDeploymentNotFound is returned for an unknown deployment ID.
	ErrDeploymentNotFound = errors.New("deployment not found")
)

// Status is the lifecycle state of a deployment.
type Status string

// Deployment statuses.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Operation names what a deployment did to its target.
type Operation string

// Recorded operations.
const (
	OperationCreate Operation = "create"
	OperationDrop   Operation = "drop"
	OperationVerify Operation = "verify"
	OperationLoad   Operation = "load"
)

// Deployment is one recorded run against a target database.
type Deployment struct {
	ID          string     `json:"id"`
	Catalog     string     `json:"catalog"`
	Target      string     `json:"target"`
	Operation   Operation  `json:"operation"`
	SchemaMap   string     `json:"schema_map"`
	Status      Status     `json:"status"`
	Statements  int        `json:"statements"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// Duration is the elapsed time of a finished deployment, zero while running.
func (d *Deployment) Duration() time.Duration {
	if d.CompletedAt == nil {
		return 0
	}
	return d.CompletedAt.Sub(d.StartedAt)
}

// SQLiteStore is the ledger backed by SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// NewSQLiteStore creates a store. A nil logger discards output.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Open connects to the ledger at path, creating parent directories.
// Use ":memory:" for a throwaway ledger.
func (s *SQLiteStore) Open(path string) error {
	dsn := ":memory:"
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create state directory: %w", err)
			}
		}
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	s.logger.Debug("opened state store", slog.String("path", path))
	return nil
}

// Close closes the ledger connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the location passed to Open.
func (s *SQLiteStore) Path() string {
	return s.path
}

// StartDeployment records a running deployment and returns it with a fresh ID.
func (s *SQLiteStore) StartDeployment(ctx context.Context, catalog, target string, op Operation, schemaMap string) (*Deployment, error) {
	if s.db == nil {
		return nil, ErrNotOpened
	}

	d := &Deployment{
		ID:        uuid.New().String(),
		Catalog:   catalog,
		Target:    target,
		Operation: op,
		SchemaMap: schemaMap,
		Status:    StatusRunning,
		StartedAt: s.now(),
	}

	s.logger.Debug("starting deployment",
		slog.String("id", d.ID),
		slog.String("catalog", catalog),
		slog.String("target", target),
		slog.String("operation", string(op)))

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO deployments (id, catalog, target, operation, schema_map, status, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Catalog, d.Target, string(d.Operation), d.SchemaMap, string(d.Status),
		d.StartedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start deployment: %w", err)
	}
	return d, nil
}

// CompleteDeployment finishes a deployment. A nil runErr marks it completed,
// anything else marks it failed with the error text.
func (s *SQLiteStore) CompleteDeployment(ctx context.Context, id string, statements int, runErr error) error {
	if s.db == nil {
		return ErrNotOpened
	}

	status := StatusCompleted
	var errMsg sql.NullString
	if runErr != nil {
		status = StatusFailed
		errMsg = sql.NullString{String: runErr.Error(), Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE deployments SET status = ?, statements = ?, completed_at = ?, error = ? WHERE id = ?`,
		string(status), statements, s.now().Format(timeLayout), errMsg, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete deployment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to complete deployment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrDeploymentNotFound, id)
	}

	s.logger.Debug("completed deployment", slog.String("id", id), slog.String("status", string(status)))
	return nil
}

const selectDeployment = `SELECT id, catalog, target, operation, schema_map, status, statements,
	started_at, completed_at, error FROM deployments`

// GetDeployment returns one deployment by ID.
func (s *SQLiteStore) GetDeployment(ctx context.Context, id string) (*Deployment, error) {
	if s.db == nil {
		return nil, ErrNotOpened
	}

	row := s.db.QueryRowContext(ctx, selectDeployment+` WHERE id = ?`, id)
	d, err := scanDeployment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDeploymentNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}
	return d, nil
}

// ListDeployments returns the most recent deployments first. A limit below
// one returns every row.
func (s *SQLiteStore) ListDeployments(ctx context.Context, limit int) ([]*Deployment, error) {
	if s.db == nil {
		return nil, ErrNotOpened
	}
	if limit < 1 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		selectDeployment+` ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}
	defer rows.Close()

	var out []*Deployment
	for rows.Next() {
		d, err := scanDeployment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deployment: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDeployment(row scanner) (*Deployment, error) {
	var (
		d           Deployment
		op, status  string
		startedAt   string
		completedAt sql.NullString
		errMsg      sql.NullString
	)
	if err := row.Scan(&d.ID, &d.Catalog, &d.Target, &op, &d.SchemaMap, &status,
		&d.Statements, &startedAt, &completedAt, &errMsg); err != nil {
		return nil, err
	}
	d.Operation = Operation(op)
	d.Status = Status(status)
	d.Error = errMsg.String

	t, err := time.Parse(timeLayout, startedAt)
	if err != nil {
		return nil, fmt.Errorf("started_at: %w", err)
	}
	d.StartedAt = t
	if completedAt.Valid {
		t, err := time.Parse(timeLayout, completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("completed_at: %w", err)
		}
		d.CompletedAt = &t
	}
	return &d, nil
}
