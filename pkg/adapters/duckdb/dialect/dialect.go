// Package dialect provides the DuckDB DDL dialect definition.
// This package is lightweight and has no database driver dependencies,
// so DDL can be rendered without opening a database.
package dialect

import (
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

func init() {
	dialect.Register(DuckDB)
}

var duckdbReservedWords = []string{
	"all", "analyse", "analyze", "and", "any", "array", "as", "asc",
	"asymmetric", "both", "case", "cast", "check", "collate", "column",
	"constraint", "create", "default", "deferrable", "desc", "describe",
	"distinct", "do", "else", "end", "except", "false", "fetch", "for",
	"foreign", "from", "grant", "group", "having", "in", "initially",
	"intersect", "into", "lateral", "leading", "limit", "not", "null",
	"offset", "on", "only", "or", "order", "pivot", "pivot_longer",
	"pivot_wider", "placing", "primary", "qualify", "references",
	"returning", "select", "show", "some", "summarize", "symmetric", "table",
	"then", "to", "trailing", "true", "union", "unique", "unpivot", "using",
	"variadic", "when", "where", "window", "with",
}

// DuckDB is the DuckDB dialect configuration.
//
// DuckDB has no ALTER TABLE ... ADD CONSTRAINT for foreign keys and rejects
// constraints that reference another schema, so foreign keys are declared
// inline and only within one schema. ON DELETE actions other than the
// default are rejected by the parser.
var DuckDB = dialect.NewDialect("duckdb").
	Identifiers(`"`, `"`, `""`, dialect.NormCaseInsensitive).
	DefaultSchema("main").
	PlaceholderStyle(dialect.PlaceholderQuestion).
	ForeignKeys(dialect.ForeignKeysInline, false).
	ReferentialActions(false).
	Type(core.KindText, "VARCHAR").
	WithReservedWords(duckdbReservedWords...).
	Build()
