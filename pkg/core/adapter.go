package core

import (
	"database/sql"
)

// AdapterConfig holds the connection settings for a deployment target.
// Path is only used by file-based engines; Params carries engine-specific
// settings decoded by the adapter itself.
type AdapterConfig struct {
	Type     string
	Path     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Schema   string
	Options  map[string]string
	Params   map[string]any
}

// Column is a column of a live table as reported by the engine.
type Column struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
	Position   int
}

// TableMetadata describes a live table: its columns in ordinal order and
// the current row count.
type TableMetadata struct {
	Schema   string
	Name     string
	Columns  []Column
	RowCount int64
}

// Rows wraps sql.Rows so callers need not import database/sql.
type Rows struct {
	*sql.Rows
}
