// Package adapter defines the database contract used to deploy and verify
// assembled schemas.
//
// Generation of DDL never touches a database; everything that does goes
// through an Adapter. Concrete adapter implementations are in pkg/adapters/
// subdirectories and register themselves from init().
package adapter

import (
	"context"
	"errors"

	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

// Shorthands for the connection types defined in pkg/core.
type (
	// Config is an alias for core.AdapterConfig.
	Config = core.AdapterConfig

	// Column is an alias for core.Column.
	Column = core.Column

	// Metadata is an alias for core.TableMetadata.
	Metadata = core.TableMetadata

	// Rows is an alias for core.Rows.
	Rows = core.Rows
)

// ErrNotConnected is returned by every operation attempted before Connect.
var ErrNotConnected = errors.New("database connection not established")

// Adapter defines the interface that all database adapters must implement.
// Engine errors are wrapped and returned as is; adapters never retry.
type Adapter interface {
	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows.
	Exec(ctx context.Context, sql string) error

	// Query executes a SQL statement that returns rows.
	Query(ctx context.Context, sql string) (*Rows, error)

	// ExecScript executes statements in order, stopping at the first failure.
	// When transactional is set the whole script is rolled back on failure.
	ExecScript(ctx context.Context, stmts []string, transactional bool) error

	// ListTables returns the sorted base table names of one schema.
	ListTables(ctx context.Context, schema string) ([]string, error)

	// GetTableMetadata retrieves metadata for a specified table.
	GetTableMetadata(ctx context.Context, table string) (*Metadata, error)

	// LoadCSV appends a delimited file with a header row to an existing table.
	LoadCSV(ctx context.Context, table string, path string, delimiter rune) error

	// Dialect returns the DDL dialect of the engine.
	Dialect() *dialect.Dialect
}
