// Package duckdb provides a DuckDB database adapter.
//
// DuckDB is the default engine for verification runs: an in-memory database
// is created per run and needs no server.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/leapstack-labs/omopcdm/pkg/adapter"
	duckdbdialect "github.com/leapstack-labs/omopcdm/pkg/adapters/duckdb/dialect"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

// Adapter implements the adapter.Adapter interface for DuckDB.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new DuckDB adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the DuckDB DDL dialect.
func (a *Adapter) Dialect() *dialect.Dialect {
	return duckdbdialect.DuckDB
}

// Connect establishes a connection to DuckDB and applies the target params.
// An empty path opens an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	params, err := parseParams(cfg.Params)
	if err != nil {
		return err
	}

	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}
	a.Logger.Debug("opening duckdb", slog.String("path", path))

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("failed to open duckdb connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	a.DB = db
	a.Cfg = cfg

	if err := a.applyParams(ctx, params); err != nil {
		_ = a.Close()
		return err
	}
	return nil
}

func (a *Adapter) applyParams(ctx context.Context, p *Params) error {
	for _, ext := range p.Extensions {
		a.Logger.Debug("loading extension", slog.String("extension", ext))
		if err := a.Exec(ctx, "INSTALL "+ext); err != nil {
			return fmt.Errorf("install extension %s: %w", ext, err)
		}
		if err := a.Exec(ctx, "LOAD "+ext); err != nil {
			return fmt.Errorf("load extension %s: %w", ext, err)
		}
	}
	for _, stmt := range settingStatements(p.Settings) {
		if err := a.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply setting: %w", err)
		}
	}
	for _, s := range p.Secrets {
		if err := a.Exec(ctx, buildCreateSecretSQL(s)); err != nil {
			return fmt.Errorf("create %s secret: %w", s.Type, err)
		}
	}
	return nil
}

// ListTables returns the base tables of one schema.
func (a *Adapter) ListTables(ctx context.Context, schema string) ([]string, error) {
	return a.ListTablesCommon(ctx, schema, a.Dialect())
}

// GetTableMetadata retrieves metadata for a specified table.
func (a *Adapter) GetTableMetadata(ctx context.Context, table string) (*adapter.Metadata, error) {
	return a.GetTableMetadataCommon(ctx, table, a.Dialect())
}

// LoadCSV appends a delimited file to an existing table with COPY.
// Tab-delimited files are read the way vocabulary exports are written:
// unquoted fields and dates as YYYYMMDD.
func (a *Adapter) LoadCSV(ctx context.Context, table string, path string, delimiter rune) error {
	if a.DB == nil {
		return adapter.ErrNotConnected
	}

	if !strings.Contains(path, "://") {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = abs
	}

	schema, name := adapter.ParseQualifiedName(table, a.Dialect())
	opts := []string{"DELIMITER " + quoteLiteral(string(delimiter)), "HEADER true"}
	if delimiter == '\t' {
		opts = append(opts, "QUOTE ''", "DATEFORMAT '%Y%m%d'")
	}
	query := fmt.Sprintf("COPY %s FROM %s (%s)",
		a.Dialect().Qualify(schema, name), quoteLiteral(path), strings.Join(opts, ", "))

	a.Logger.Debug("loading file", slog.String("table", table), slog.String("path", path))
	if err := a.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to load %s into %s: %w", path, table, err)
	}
	return nil
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
