// Package snowflake provides the Snowflake DDL dialect definition.
// This package is pure Go with no database driver dependencies; DDL is
// rendered for deployment with Snowflake's own tooling.
package snowflake

import (
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

func init() {
	dialect.Register(Snowflake)
}

// snowflakeReservedWords are the identifiers Snowflake rejects unquoted.
var snowflakeReservedWords = []string{
	"account", "all", "alter", "and", "any", "as", "between", "by", "case",
	"cast", "check", "column", "connect", "connection", "constraint",
	"create", "cross", "current", "current_date", "current_time",
	"current_timestamp", "current_user", "database", "delete", "distinct",
	"drop", "else", "exists", "false", "following", "for", "from", "full",
	"grant", "group", "gscluster", "having", "ilike", "in", "increment",
	"inner", "insert", "intersect", "into", "is", "issue", "join", "lateral",
	"left", "like", "localtime", "localtimestamp", "minus", "natural", "not",
	"null", "of", "on", "or", "order", "organization", "qualify", "regexp",
	"revoke", "right", "rlike", "row", "rows", "sample", "schema", "select",
	"set", "some", "start", "table", "tablesample", "then", "to", "trigger",
	"true", "try_cast", "union", "unique", "update", "using", "values",
	"view", "when", "whenever", "where", "with",
}

// Config is the Snowflake DDL dialect configuration.
//
// Unquoted identifiers resolve case-insensitively, so lower case catalog
// names are emitted unquoted. Foreign keys are recorded but not enforced;
// standard tables have no secondary indexes.
var Config = &core.DialectConfig{
	Name:          "snowflake",
	DefaultSchema: "public",
	Placeholder:   core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormCaseInsensitive,
	},
	MaxIdentifierLength:    255,
	ForeignKeys:            core.ForeignKeysAlter,
	CrossSchemaForeignKeys: true,
	ReferentialActions:     true,
	NoIndexes:              true,
	Types: map[core.TypeKind]string{
		core.KindDateTime: "TIMESTAMP_NTZ",
	},
	Keywords: snowflakeReservedWords,
}

// Snowflake is the Snowflake DDL dialect.
var Snowflake = dialect.New(Config).Build()
