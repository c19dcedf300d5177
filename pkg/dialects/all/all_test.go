package all_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	_ "github.com/leapstack-labs/omopcdm/pkg/catalog/all"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/ddl"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
	_ "github.com/leapstack-labs/omopcdm/pkg/dialects/all"
)

func generate(t *testing.T, dialectName, catalogName string) *ddl.Script {
	t.Helper()
	d, ok := dialect.Get(dialectName)
	require.True(t, ok, "dialect %s not registered", dialectName)
	schema, err := catalog.Assemble(catalogName)
	require.NoError(t, err)
	script, err := ddl.Generate(schema, d, core.NewSchemaMap("vocab", "cdm"))
	require.NoError(t, err)
	return script
}

func createTable(t *testing.T, script *ddl.Script, table string) string {
	t.Helper()
	for _, s := range script.Filter(ddl.KindCreateTable) {
		if s.Table == table {
			return s.SQL
		}
	}
	t.Fatalf("no CREATE TABLE for %s", table)
	return ""
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"ansi", "snowflake", "databricks"} {
		t.Run(name, func(t *testing.T) {
			d, ok := dialect.Get(name)
			require.True(t, ok)
			assert.Equal(t, name, d.GetName())
		})
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		dialect     string
		wantIndexes bool
		contains    []string
		excludes    []string
	}{
		{
			dialect:     "ansi",
			wantIndexes: true,
			contains:    []string{"CLOB"},
		},
		{
			dialect:  "snowflake",
			contains: []string{"death_datetime TIMESTAMP_NTZ"},
			excludes: []string{"CREATE INDEX"},
		},
		{
			dialect:  "databricks",
			contains: []string{"location_id INT NOT NULL"},
			excludes: []string{"CREATE INDEX", "ON DELETE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			script := generate(t, tt.dialect, "5.4+custom")
			all := strings.Join(script.SQL(), ";\n")

			assert.Equal(t, tt.dialect, script.Dialect)
			assert.Empty(t, script.Skipped)
			assert.NotEmpty(t, script.Filter(ddl.KindAddForeignKey))
			assert.Equal(t, tt.wantIndexes, len(script.Filter(ddl.KindCreateIndex)) > 0)

			for _, want := range tt.contains {
				assert.Contains(t, all, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, all, unwanted)
			}
		})
	}
}

func TestSnowflake_DeathTable(t *testing.T) {
	death := createTable(t, generate(t, "snowflake", "5.4"), "death")
	assert.True(t, strings.HasPrefix(death, "CREATE TABLE cdm.death ("), death)
	assert.Contains(t, death, "death_datetime TIMESTAMP_NTZ")
}

func TestDatabricks_QuotesWithBackticks(t *testing.T) {
	d, ok := dialect.Get("databricks")
	require.True(t, ok)

	assert.Equal(t, "`order`", d.QuoteIdentifierIfNeeded("order"))
	assert.Equal(t, "`Mixed`", d.QuoteIdentifierIfNeeded("Mixed"))
	assert.Equal(t, "`a``b`", d.QuoteIdentifier("a`b"))
	assert.Equal(t, "person_id", d.QuoteIdentifierIfNeeded("person_id"))
}
