// Package dialect provides the PostgreSQL DDL dialect definition.
// This package is lightweight and has no database driver dependencies,
// so DDL can be rendered without connecting to a server.
package dialect

import (
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

func init() {
	dialect.Register(Postgres)
}

// postgresReservedWords contains common PostgreSQL reserved words.
// This is a manually maintained list of frequently problematic identifiers.
// For a complete list, use pg_get_keywords() at runtime.
var postgresReservedWords = []string{
	"user", "order", "group", "table", "select", "from", "where", "index",
	"all", "and", "any", "array", "as", "asc", "asymmetric", "authorization",
	"between", "binary", "both", "case", "cast", "check", "collate", "column",
	"constraint", "create", "cross", "current_catalog", "current_date",
	"current_role", "current_schema", "current_time", "current_timestamp",
	"current_user", "default", "deferrable", "desc", "distinct", "do", "else",
	"end", "except", "false", "fetch", "for", "foreign", "freeze", "full",
	"grant", "having", "ilike", "in", "initially", "inner", "intersect",
	"into", "is", "isnull", "join", "lateral", "leading", "left", "like",
	"limit", "localtime", "localtimestamp", "natural", "not", "notnull",
	"null", "offset", "on", "only", "or", "outer", "overlaps", "placing",
	"primary", "references", "returning", "right", "session_user", "similar",
	"some", "symmetric", "then", "to", "trailing", "true", "union", "unique",
	"using", "variadic", "verbose", "when", "window", "with",
}

// Postgres is the PostgreSQL dialect configuration.
// Identifiers longer than NAMEDATALEN-1 (63) bytes are silently truncated by
// the server, so constraint names are shortened before they get there.
var Postgres = dialect.NewDialect("postgres").
	Identifiers(`"`, `"`, `""`, dialect.NormLowercase). // Postgres normalizes unquoted identifiers to lowercase
	DefaultSchema("public").
	PlaceholderStyle(dialect.PlaceholderDollar).
	MaxIdentifierLength(63).
	ForeignKeys(dialect.ForeignKeysAlter, true).
	Type(core.KindDateTime, "TIMESTAMP").
	WithReservedWords(postgresReservedWords...).
	Build()
