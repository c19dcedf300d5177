package core

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data. The runtime behavior (quoting, type rendering, etc.)
// lives in pkg/dialect.Dialect, which embeds this config.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "duckdb", "postgres")
	Name string

	// Identifiers defines quoting and normalization rules
	Identifiers IdentifierConfig

	// DefaultSchema is the default schema name ("main" for DuckDB, "public" for Postgres)
	DefaultSchema string

	// Placeholder defines how query parameters are formatted
	Placeholder PlaceholderStyle

	// MaxIdentifierLength is the longest identifier the engine accepts; 0 means unlimited.
	MaxIdentifierLength int

	// ForeignKeys selects how foreign key constraints are emitted.
	ForeignKeys ForeignKeyStyle

	// CrossSchemaForeignKeys reports whether a constraint may reference a
	// table in another schema.
	CrossSchemaForeignKeys bool

	// ReferentialActions reports whether ON DELETE actions are accepted.
	ReferentialActions bool

	// NoIndexes reports that the engine has no secondary indexes, so
	// CREATE INDEX statements are never emitted.
	NoIndexes bool

	// Types maps logical type kinds to the engine's type names.
	Types map[TypeKind]string

	Keywords []string
}

// ForeignKeyStyle defines where foreign key constraints are declared.
type ForeignKeyStyle int

const (
	// ForeignKeysAlter adds every constraint with ALTER TABLE after all tables
	// exist, so reference cycles are allowed (PostgreSQL).
	ForeignKeysAlter ForeignKeyStyle = iota
	// ForeignKeysInline declares constraints inside CREATE TABLE. Referenced
	// tables must already exist, so cyclic references cannot be expressed (DuckDB).
	ForeignKeysInline
	// ForeignKeysNone never emits foreign key constraints.
	ForeignKeysNone
)

// String returns the string representation of ForeignKeyStyle.
func (s ForeignKeyStyle) String() string {
	switch s {
	case ForeignKeysAlter:
		return "alter"
	case ForeignKeysInline:
		return "inline"
	case ForeignKeysNone:
		return "none"
	default:
		return "unknown"
	}
}

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase normalizes unquoted identifiers to lowercase (default SQL behavior).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase normalizes unquoted identifiers to uppercase (Snowflake, Oracle).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (MySQL, ClickHouse).
	NormCaseSensitive
	// NormCaseInsensitive normalizes to lowercase for comparison (DuckDB).
	NormCaseInsensitive
)

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for all parameters (DuckDB, MySQL, SQLite).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, etc. for parameters (PostgreSQL).
	PlaceholderDollar
)

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string                // Quote character: ", `, [
	QuoteEnd      string                // End quote character (usually same as Quote, ] for [)
	Escape        string                // Escape sequence: "", ``, ]]
	Normalization NormalizationStrategy // How to normalize unquoted identifiers
}
