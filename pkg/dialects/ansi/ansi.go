// Package ansi provides a standard SQL DDL dialect.
//
// It targets engines without a dedicated dialect: foreign keys are added with
// ALTER TABLE once every table exists, identifiers are limited to 128
// characters and unbounded text is a CLOB.
package ansi

import (
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// reservedWords are SQL:2016 reserved words likely to appear as identifiers.
var reservedWords = []string{
	"all", "and", "any", "as", "asc", "between", "by", "case", "cast",
	"check", "column", "constraint", "create", "cross", "current",
	"current_date", "current_time", "current_timestamp", "current_user",
	"date", "default", "delete", "desc", "distinct", "drop", "else", "end",
	"except", "exists", "false", "fetch", "for", "foreign", "from", "full",
	"grant", "group", "having", "in", "inner", "insert", "intersect", "into",
	"is", "join", "left", "like", "natural", "not", "null", "of", "offset",
	"on", "or", "order", "outer", "primary", "references", "right", "row",
	"rows", "select", "set", "some", "table", "then", "time", "timestamp",
	"to", "true", "union", "unique", "update", "user", "using", "value",
	"values", "when", "where", "with", "year",
}

// Config is the standard SQL dialect configuration. Unquoted identifiers
// are case insensitive, so catalog names are emitted as defined.
var Config = &core.DialectConfig{
	Name:        "ansi",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormCaseInsensitive,
	},
	MaxIdentifierLength:    128,
	ForeignKeys:            core.ForeignKeysAlter,
	CrossSchemaForeignKeys: true,
	ReferentialActions:     true,
	Types: map[core.TypeKind]string{
		core.KindText: "CLOB",
	},
	Keywords: reservedWords,
}

// ANSI is the standard SQL dialect.
var ANSI = dialect.New(Config).Build()
