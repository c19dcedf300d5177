// Package databricks provides the Databricks SQL DDL dialect definition.
// This package is pure Go with no database driver dependencies.
package databricks

import (
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

func init() {
	dialect.Register(Databricks)
}

var databricksReservedWords = []string{
	"all", "alter", "and", "any", "array", "as", "at", "authorization",
	"between", "both", "by", "case", "cast", "check", "collate", "column",
	"commit", "constraint", "create", "cross", "cube", "current",
	"current_date", "current_time", "current_timestamp", "current_user",
	"delete", "describe", "distinct", "drop", "else", "end", "escape",
	"except", "exists", "external", "false", "fetch", "filter", "for",
	"foreign", "from", "full", "function", "global", "grant", "group",
	"grouping", "having", "in", "inner", "insert", "intersect", "interval",
	"into", "is", "join", "lateral", "leading", "left", "like", "local",
	"natural", "no", "not", "null", "of", "on", "only", "or", "order",
	"out", "outer", "overlaps", "partition", "position", "primary", "range",
	"references", "revoke", "right", "rollback", "rollup", "row", "rows",
	"select", "session_user", "set", "some", "start", "table", "tablesample",
	"then", "time", "to", "trailing", "true", "truncate", "union", "unique",
	"unknown", "update", "user", "using", "values", "when", "where",
	"window", "with",
}

// Config is the Databricks DDL dialect configuration.
//
// Unity Catalog accepts primary and foreign key constraints as informational
// only, without ON DELETE actions. Delta tables have no secondary indexes.
var Config = &core.DialectConfig{
	Name:          "databricks",
	DefaultSchema: "default",
	Placeholder:   core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: core.NormCaseInsensitive,
	},
	MaxIdentifierLength:    255,
	ForeignKeys:            core.ForeignKeysAlter,
	CrossSchemaForeignKeys: true,
	ReferentialActions:     false,
	NoIndexes:              true,
	Types: map[core.TypeKind]string{
		core.KindInteger: "INT",
		core.KindNumeric: "DECIMAL(38,10)",
		core.KindText:    "STRING",
	},
	Keywords: databricksReservedWords,
}

// Databricks is the Databricks SQL DDL dialect.
var Databricks = dialect.New(Config).Build()
