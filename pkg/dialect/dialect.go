// Package dialect provides the SQL dialect abstraction used to render DDL.
//
// A Dialect wraps a core.DialectConfig (pure data) with behavior: identifier
// quoting, reserved word handling, placeholder formatting and the mapping of
// logical column types to engine types. Dialects of engines with an adapter
// live next to it in pkg/adapters/<engine>/dialect; render-only dialects live
// in pkg/dialects. Both register themselves from init().
package dialect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// Re-exported strategy constants so dialect definitions read naturally.
const (
	NormLowercase       = core.NormLowercase
	NormUppercase       = core.NormUppercase
	NormCaseSensitive   = core.NormCaseSensitive
	NormCaseInsensitive = core.NormCaseInsensitive

	PlaceholderQuestion = core.PlaceholderQuestion
	PlaceholderDollar   = core.PlaceholderDollar

	ForeignKeysAlter  = core.ForeignKeysAlter
	ForeignKeysInline = core.ForeignKeysInline
	ForeignKeysNone   = core.ForeignKeysNone
)

// DefaultTypes is the ANSI-ish type mapping most engines accept.
var DefaultTypes = map[core.TypeKind]string{
	core.KindInteger:    "INTEGER",
	core.KindBigInteger: "BIGINT",
	core.KindNumeric:    "NUMERIC",
	core.KindString:     "VARCHAR",
	core.KindText:       "TEXT",
	core.KindDate:       "DATE",
	core.KindDateTime:   "TIMESTAMP",
}

// Dialect is a DDL dialect: static configuration plus rendering behavior.
type Dialect struct {
	Name          string
	Identifiers   core.IdentifierConfig
	DefaultSchema string
	Placeholder   core.PlaceholderStyle

	MaxIdentifierLength    int
	ForeignKeys            core.ForeignKeyStyle
	CrossSchemaForeignKeys bool
	ReferentialActions     bool
	NoIndexes              bool

	types         map[core.TypeKind]string
	reservedWords map[string]struct{}
}

// Config returns the pure data configuration for this dialect.
func (d *Dialect) Config() *core.DialectConfig {
	types := make(map[core.TypeKind]string, len(d.types))
	for k, v := range d.types {
		types[k] = v
	}
	keywords := make([]string, 0, len(d.reservedWords))
	for w := range d.reservedWords {
		keywords = append(keywords, w)
	}

	return &core.DialectConfig{
		Name:                   d.Name,
		Identifiers:            d.Identifiers,
		DefaultSchema:          d.DefaultSchema,
		Placeholder:            d.Placeholder,
		MaxIdentifierLength:    d.MaxIdentifierLength,
		ForeignKeys:            d.ForeignKeys,
		CrossSchemaForeignKeys: d.CrossSchemaForeignKeys,
		ReferentialActions:     d.ReferentialActions,
		NoIndexes:              d.NoIndexes,
		Types:                  types,
		Keywords:               keywords,
	}
}

// GetName returns the dialect name.
func (d *Dialect) GetName() string {
	return d.Name
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case core.NormUppercase:
		return strings.ToUpper(name)
	case core.NormLowercase, core.NormCaseInsensitive:
		return strings.ToLower(name)
	default: // NormCaseSensitive
		return name
	}
}

// FormatPlaceholder returns a placeholder for the given parameter index (1-based).
// Returns "?" for PlaceholderQuestion style, "$1", "$2" etc. for PlaceholderDollar style.
func (d *Dialect) FormatPlaceholder(index int) string {
	switch d.Placeholder {
	case core.PlaceholderDollar:
		return "$" + strconv.Itoa(index)
	default: // PlaceholderQuestion
		return "?"
	}
}

// IsReservedWord returns true if the word needs quoting when used as an identifier.
func (d *Dialect) IsReservedWord(word string) bool {
	normalized := d.NormalizeName(word)
	_, ok := d.reservedWords[normalized]
	return ok
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., ] -> ]])
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// QuoteIdentifierIfNeeded quotes an identifier if it's a reserved word or
// would not survive the engine's normalization unquoted.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if d.IsReservedWord(name) || !isPlainIdentifier(name) || d.NormalizeName(name) != name {
		return d.QuoteIdentifier(name)
	}
	return name
}

func isPlainIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Qualify renders schema.name with each part quoted as needed.
func (d *Dialect) Qualify(schema, name string) string {
	if schema == "" {
		return d.QuoteIdentifierIfNeeded(name)
	}
	return d.QuoteIdentifierIfNeeded(schema) + "." + d.QuoteIdentifierIfNeeded(name)
}

// ColumnType renders a logical column type. Inferred types must be resolved
// before rendering.
func (d *Dialect) ColumnType(t core.ColumnType) (string, error) {
	name, ok := d.types[t.Kind]
	if !ok {
		return "", fmt.Errorf("dialect %s: no type mapping for %s", d.Name, t.Kind)
	}
	if t.Kind == core.KindString {
		return fmt.Sprintf("%s(%d)", name, t.Length), nil
	}
	return name, nil
}

// ---------- Builder ----------

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name string) *Builder {
	types := make(map[core.TypeKind]string, len(DefaultTypes))
	for k, v := range DefaultTypes {
		types[k] = v
	}
	return &Builder{
		dialect: &Dialect{
			Name: name,
			Identifiers: core.IdentifierConfig{
				Quote:         `"`,
				QuoteEnd:      `"`,
				Escape:        `""`,
				Normalization: core.NormLowercase,
			},
			CrossSchemaForeignKeys: true,
			ReferentialActions:     true,
			types:                  types,
			reservedWords:          make(map[string]struct{}),
		},
	}
}

// New creates a dialect builder from a DialectConfig.
func New(cfg *core.DialectConfig) *Builder {
	b := NewDialect(cfg.Name).
		Identifiers(cfg.Identifiers.Quote, cfg.Identifiers.QuoteEnd, cfg.Identifiers.Escape, cfg.Identifiers.Normalization).
		DefaultSchema(cfg.DefaultSchema).
		PlaceholderStyle(cfg.Placeholder).
		MaxIdentifierLength(cfg.MaxIdentifierLength).
		ForeignKeys(cfg.ForeignKeys, cfg.CrossSchemaForeignKeys).
		ReferentialActions(cfg.ReferentialActions).
		WithReservedWords(cfg.Keywords...)
	b.dialect.NoIndexes = cfg.NoIndexes
	for k, v := range cfg.Types {
		b.Type(k, v)
	}
	return b
}

// Identifiers configures identifier quoting and normalization.
func (b *Builder) Identifiers(quote, quoteEnd, escape string, norm core.NormalizationStrategy) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{
		Quote:         quote,
		QuoteEnd:      quoteEnd,
		Escape:        escape,
		Normalization: norm,
	}
	return b
}

// DefaultSchema sets the default schema name.
func (b *Builder) DefaultSchema(schema string) *Builder {
	b.dialect.DefaultSchema = schema
	return b
}

// PlaceholderStyle sets how query parameters are formatted.
func (b *Builder) PlaceholderStyle(style core.PlaceholderStyle) *Builder {
	b.dialect.Placeholder = style
	return b
}

// MaxIdentifierLength sets the longest identifier the engine accepts (0 = unlimited).
func (b *Builder) MaxIdentifierLength(n int) *Builder {
	b.dialect.MaxIdentifierLength = n
	return b
}

// ForeignKeys sets how foreign keys are emitted and whether they may cross schemas.
func (b *Builder) ForeignKeys(style core.ForeignKeyStyle, crossSchema bool) *Builder {
	b.dialect.ForeignKeys = style
	b.dialect.CrossSchemaForeignKeys = crossSchema
	return b
}

// ReferentialActions sets whether ON DELETE clauses may be emitted.
func (b *Builder) ReferentialActions(enabled bool) *Builder {
	b.dialect.ReferentialActions = enabled
	return b
}

// WithoutIndexes marks an engine without secondary indexes.
func (b *Builder) WithoutIndexes() *Builder {
	b.dialect.NoIndexes = true
	return b
}

// Type overrides the engine type name for a logical kind.
func (b *Builder) Type(kind core.TypeKind, name string) *Builder {
	b.dialect.types[kind] = name
	return b
}

// WithReservedWords registers words that need quoting when used as identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.reservedWords[b.dialect.NormalizeName(w)] = struct{}{}
	}
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}
