package dialect

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/omopcdm/pkg/core"
)

func TestColumnType(t *testing.T) {
	d := NewDialect("test").Type(core.KindDateTime, "DATETIME2").Build()

	tests := []struct {
		in   core.ColumnType
		want string
	}{
		{core.Integer, "INTEGER"},
		{core.BigInteger, "BIGINT"},
		{core.Numeric, "NUMERIC"},
		{core.Varchar(50), "VARCHAR(50)"},
		{core.Text, "TEXT"},
		{core.Date, "DATE"},
		{core.DateTime, "DATETIME2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := d.ColumnType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := d.ColumnType(core.ColumnType{})
	assert.Error(t, err, "inferred types must be resolved before rendering")
}

func TestQuoteIdentifierIfNeeded(t *testing.T) {
	d := NewDialect("test").WithReservedWords("offset", "user").Build()

	tests := []struct {
		in   string
		want string
	}{
		{"person_id", "person_id"},
		{"offset", `"offset"`},
		{"OFFSET", `"OFFSET"`},
		{"Person", `"Person"`},
		{"has space", `"has space"`},
		{"1abc", `"1abc"`},
		{`we"ird`, `"we""ird"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, d.QuoteIdentifierIfNeeded(tt.in))
		})
	}
}

func TestQualify(t *testing.T) {
	d := NewDialect("test").WithReservedWords("user").Build()
	assert.Equal(t, "cdm.person", d.Qualify("cdm", "person"))
	assert.Equal(t, `cdm."user"`, d.Qualify("cdm", "user"))
	assert.Equal(t, "person", d.Qualify("", "person"))
}

func TestFormatPlaceholder(t *testing.T) {
	q := NewDialect("q").Build()
	assert.Equal(t, "?", q.FormatPlaceholder(3))

	dollar := NewDialect("d").PlaceholderStyle(PlaceholderDollar).Build()
	assert.Equal(t, "$3", dollar.FormatPlaceholder(3))
}

func TestConfigRoundTrip(t *testing.T) {
	d := NewDialect("test").
		DefaultSchema("main").
		MaxIdentifierLength(63).
		ForeignKeys(ForeignKeysInline, false).
		WithReservedWords("Offset", "USER").
		Build()

	cfg := d.Config()
	assert.Equal(t, "main", cfg.DefaultSchema)
	assert.Equal(t, core.ForeignKeysInline, cfg.ForeignKeys)
	assert.False(t, cfg.CrossSchemaForeignKeys)
	sort.Strings(cfg.Keywords)
	assert.Equal(t, []string{"offset", "user"}, cfg.Keywords)

	rebuilt := New(cfg).Build()
	assert.Equal(t, 63, rebuilt.MaxIdentifierLength)
	assert.True(t, rebuilt.IsReservedWord("offset"))
	assert.Equal(t, core.ForeignKeysInline, rebuilt.ForeignKeys)
}

func TestNormalizationStrategies(t *testing.T) {
	tests := []struct {
		name  string
		norm  core.NormalizationStrategy
		input string
		want  string
	}{
		{"lowercase", NormLowercase, "FooBar", "foobar"},
		{"uppercase", NormUppercase, "FooBar", "FOOBAR"},
		{"case sensitive", NormCaseSensitive, "FooBar", "FooBar"},
		{"case insensitive", NormCaseInsensitive, "FooBar", "foobar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDialect("test").
				Identifiers(`"`, `"`, `""`, tt.norm).
				Build()

			assert.Equal(t, tt.want, d.NormalizeName(tt.input))
		})
	}
}

func TestRegistry(t *testing.T) {
	Register(NewDialect("Registry_Test").Build())
	d, ok := Get("registry_test")
	require.True(t, ok)
	assert.Equal(t, "Registry_Test", d.GetName())
	assert.Contains(t, List(), "registry_test")
}

func TestLookup(t *testing.T) {
	Register(NewDialect("lookup_test").Build())

	d, err := Lookup("LOOKUP_TEST")
	require.NoError(t, err)
	assert.Equal(t, "lookup_test", d.Name)

	_, err = Lookup("oracle")
	var unknown *UnknownDialectError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "oracle", unknown.Name)
	assert.Contains(t, unknown.Available, "lookup_test")
	assert.Contains(t, err.Error(), `unknown dialect "oracle"`)
}

func TestNoIndexesRoundTrip(t *testing.T) {
	d := NewDialect("warehouse").WithoutIndexes().Build()
	assert.True(t, d.NoIndexes)
	assert.True(t, d.Config().NoIndexes)
	assert.True(t, New(d.Config()).Build().NoIndexes)
}
