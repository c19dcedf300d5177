package ddl_test

import (
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/omopcdm/internal/testutil"
	duckdbdialect "github.com/leapstack-labs/omopcdm/pkg/adapters/duckdb/dialect"
	postgresdialect "github.com/leapstack-labs/omopcdm/pkg/adapters/postgres/dialect"
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	_ "github.com/leapstack-labs/omopcdm/pkg/catalog/all"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/ddl"
	"github.com/leapstack-labs/omopcdm/pkg/naming"
)

func assemble(t *testing.T, name string) *core.Schema {
	t.Helper()
	s, err := catalog.Assemble(name)
	require.NoError(t, err)
	return s
}

func indexOf(stmts []ddl.Statement, kind ddl.Kind, table string) int {
	return slices.IndexFunc(stmts, func(s ddl.Statement) bool {
		return s.Kind == kind && s.Table == table
	})
}

func findSkipped(skipped []ddl.SkippedForeignKey, table, column string) (ddl.SkippedForeignKey, bool) {
	for _, s := range skipped {
		if s.Table == table && s.Column == column {
			return s, true
		}
	}
	return ddl.SkippedForeignKey{}, false
}

func TestGenerate_Postgres(t *testing.T) {
	schema := assemble(t, "5.4")
	m := core.NewSchemaMap("vocab", "cdm")

	script, err := ddl.Generate(schema, postgresdialect.Postgres, m)
	require.NoError(t, err)

	assert.Equal(t, "postgres", script.Dialect)
	assert.Empty(t, script.Skipped)

	schemas := script.Filter(ddl.KindCreateSchema)
	require.Len(t, schemas, 2)
	assert.Equal(t, "CREATE SCHEMA IF NOT EXISTS cdm", schemas[0].SQL)
	assert.Equal(t, "CREATE SCHEMA IF NOT EXISTS vocab", schemas[1].SQL)

	assert.Len(t, script.Filter(ddl.KindCreateTable), schema.Len())

	// Both directions of the concept/domain cycle are kept.
	sqls := script.SQL()
	assert.Contains(t, sqls,
		"ALTER TABLE vocab.concept ADD CONSTRAINT fk_concept_domain_id_domain FOREIGN KEY (domain_id) REFERENCES vocab.domain (domain_id)")
	assert.Contains(t, sqls,
		"ALTER TABLE vocab.domain ADD CONSTRAINT fk_domain_domain_concept_id_concept FOREIGN KEY (domain_concept_id) REFERENCES vocab.concept (concept_id)")
	assert.Contains(t, sqls,
		"ALTER TABLE cdm.person ADD CONSTRAINT fk_person_gender_concept_id_concept FOREIGN KEY (gender_concept_id) REFERENCES vocab.concept (concept_id)")

	// Constraints follow every table, indexes follow every constraint.
	lastTable := slices.IndexFunc(script.Statements, func(s ddl.Statement) bool { return s.Kind == ddl.KindAddForeignKey }) - 1
	require.Positive(t, lastTable)
	assert.Equal(t, ddl.KindCreateTable, script.Statements[lastTable].Kind)
	for _, st := range script.Statements[lastTable+1:] {
		assert.Contains(t, []ddl.Kind{ddl.KindAddForeignKey, ddl.KindCreateIndex}, st.Kind)
	}

	i := indexOf(script.Statements, ddl.KindCreateTable, "person")
	require.GreaterOrEqual(t, i, 0)
	person := script.Statements[i].SQL
	assert.True(t, strings.HasPrefix(person, "CREATE TABLE cdm.person (\n    person_id INTEGER NOT NULL,\n"))
	assert.Contains(t, person, "year_of_birth INTEGER NOT NULL")
	assert.Contains(t, person, "CONSTRAINT pk_person PRIMARY KEY (person_id)")

	assert.Contains(t, sqls, "CREATE INDEX ix_person_gender_concept_id ON cdm.person (gender_concept_id)")
}

func TestGenerate_DuckDBSingleSchema(t *testing.T) {
	schema := assemble(t, "5.4")
	m := core.NewSchemaMap("main", "main")

	script, err := ddl.Generate(schema, duckdbdialect.DuckDB, m)
	require.NoError(t, err)

	assert.Empty(t, script.Filter(ddl.KindAddForeignKey))
	assert.Len(t, script.Filter(ddl.KindCreateTable), schema.Len())

	tests := []struct {
		table  string
		column string
		reason string
	}{
		{"domain", "domain_concept_id", ddl.ReasonCycle},
		{"vocabulary", "vocabulary_concept_id", ddl.ReasonCycle},
		{"concept_class", "concept_class_concept_id", ddl.ReasonCycle},
		{"visit_occurrence", "preceding_visit_occurrence_id", ddl.ReasonSelfReference},
	}
	for _, tt := range tests {
		t.Run(tt.table+"."+tt.column, func(t *testing.T) {
			skipped, ok := findSkipped(script.Skipped, tt.table, tt.column)
			require.True(t, ok)
			assert.Equal(t, tt.reason, skipped.Reason)
			assert.Equal(t, "main", skipped.Schema)
		})
	}

	_, ok := findSkipped(script.Skipped, "concept", "domain_id")
	assert.False(t, ok, "concept keeps its reference to domain")

	// Referenced tables are created first.
	order := []struct{ before, after string }{
		{"domain", "concept"},
		{"vocabulary", "concept"},
		{"concept", "person"},
		{"person", "visit_occurrence"},
		{"visit_occurrence", "visit_detail"},
	}
	for _, o := range order {
		b := indexOf(script.Statements, ddl.KindCreateTable, o.before)
		a := indexOf(script.Statements, ddl.KindCreateTable, o.after)
		require.GreaterOrEqual(t, b, 0, o.before)
		assert.Less(t, b, a, "%s must be created before %s", o.before, o.after)
	}

	concept := script.Statements[indexOf(script.Statements, ddl.KindCreateTable, "concept")].SQL
	assert.Contains(t, concept,
		"CONSTRAINT fk_concept_domain_id_domain FOREIGN KEY (domain_id) REFERENCES main.domain (domain_id)")
}

func TestGenerate_DuckDBSkipsCrossSchema(t *testing.T) {
	schema := assemble(t, "5.4")

	script, err := ddl.Generate(schema, duckdbdialect.DuckDB, core.NewSchemaMap("vocab", "cdm"))
	require.NoError(t, err)

	skipped, ok := findSkipped(script.Skipped, "person", "gender_concept_id")
	require.True(t, ok)
	assert.Equal(t, ddl.ReasonCrossSchema, skipped.Reason)
	assert.Equal(t, "vocab.concept.concept_id", skipped.Target)

	_, ok = findSkipped(script.Skipped, "visit_occurrence", "person_id")
	assert.False(t, ok, "same-schema references are kept")
}

func TestGenerate_QuotesReservedColumns(t *testing.T) {
	schema := assemble(t, "5.4")
	m := core.NewSchemaMap("vocab", "cdm")

	for _, d := range []struct {
		name   string
		script func() (*ddl.Script, error)
	}{
		{"postgres", func() (*ddl.Script, error) { return ddl.Generate(schema, postgresdialect.Postgres, m) }},
		{"duckdb", func() (*ddl.Script, error) { return ddl.Generate(schema, duckdbdialect.DuckDB, m) }},
	} {
		t.Run(d.name, func(t *testing.T) {
			script, err := d.script()
			require.NoError(t, err)
			i := indexOf(script.Statements, ddl.KindCreateTable, "note_nlp")
			require.GreaterOrEqual(t, i, 0)
			assert.Contains(t, script.Statements[i].SQL, `"offset" VARCHAR(50)`)
		})
	}
}

func TestGenerate_Remapping(t *testing.T) {
	schema := assemble(t, "5.4")
	maps := []core.SchemaMap{
		core.NewSchemaMap("vocab_a", "cdm_a"),
		core.NewSchemaMap("vocab_b", "cdm_b"),
		core.NewSchemaMap("shared", "shared"),
	}

	scripts := make([]*ddl.Script, len(maps))
	var wg sync.WaitGroup
	for i, m := range maps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := ddl.Generate(schema, postgresdialect.Postgres, m)
			assert.NoError(t, err)
			scripts[i] = s
		}()
	}
	wg.Wait()

	require.NotNil(t, scripts[0])
	require.NotNil(t, scripts[1])
	require.NotNil(t, scripts[2])
	assert.Contains(t, scripts[0].Tables(), "cdm_a.person")
	assert.Contains(t, scripts[0].Tables(), "vocab_a.concept")
	assert.Contains(t, scripts[1].Tables(), "cdm_b.person")
	assert.NotContains(t, scripts[1].String(), "cdm_a")
	assert.Len(t, scripts[2].Filter(ddl.KindCreateSchema), 1)

	// The schema still carries placeholders.
	assert.Contains(t, schema.TableNamesIn(core.CDMSchema), "person")
	assert.NotContains(t, scripts[0].String(), "cdm_schema")
}

func TestGenerate_ReferentialActions(t *testing.T) {
	schema := assemble(t, "5.4+custom")
	m := core.NewSchemaMap("vocab", "cdm")

	pg, err := ddl.Generate(schema, postgresdialect.Postgres, m)
	require.NoError(t, err)
	assert.Contains(t, pg.SQL(),
		"ALTER TABLE cdm.cloudspine ADD CONSTRAINT fk_cloudspine_person_id_person FOREIGN KEY (person_id) REFERENCES cdm.person (person_id) ON DELETE CASCADE")

	duck, err := ddl.Generate(schema, duckdbdialect.DuckDB, m)
	require.NoError(t, err)
	i := indexOf(duck.Statements, ddl.KindCreateTable, "cloudspine")
	require.GreaterOrEqual(t, i, 0)
	assert.Contains(t, duck.Statements[i].SQL, "REFERENCES cdm.person (person_id)")
	assert.NotContains(t, duck.Statements[i].SQL, "ON DELETE")

	person := pg.Statements[indexOf(pg.Statements, ddl.KindCreateTable, "person")].SQL
	assert.Contains(t, person, "person_id BIGINT NOT NULL")
}

func TestGenerate_Options(t *testing.T) {
	schema := assemble(t, "5.4")
	m := core.NewSchemaMap("vocab", "cdm")

	tests := []struct {
		name  string
		opts  []ddl.Option
		check func(t *testing.T, s *ddl.Script)
	}{
		{
			name: "without indexes",
			opts: []ddl.Option{ddl.WithoutIndexes()},
			check: func(t *testing.T, s *ddl.Script) {
				assert.Empty(t, s.Filter(ddl.KindCreateIndex))
			},
		},
		{
			name: "without foreign keys",
			opts: []ddl.Option{ddl.WithoutForeignKeys()},
			check: func(t *testing.T, s *ddl.Script) {
				assert.Empty(t, s.Filter(ddl.KindAddForeignKey))
				assert.Empty(t, s.Skipped)
			},
		},
		{
			name: "if not exists",
			opts: []ddl.Option{ddl.WithIfNotExists()},
			check: func(t *testing.T, s *ddl.Script) {
				for _, st := range s.Filter(ddl.KindCreateTable) {
					assert.True(t, strings.HasPrefix(st.SQL, "CREATE TABLE IF NOT EXISTS "), st.SQL)
				}
				for _, st := range s.Filter(ddl.KindCreateIndex) {
					assert.True(t, strings.HasPrefix(st.SQL, "CREATE INDEX IF NOT EXISTS "), st.SQL)
				}
			},
		},
		{
			name: "custom convention",
			opts: []ddl.Option{ddl.WithConvention(naming.Convention{PrimaryKey: "%(table_name)s_pkey"})},
			check: func(t *testing.T, s *ddl.Script) {
				i := indexOf(s.Statements, ddl.KindCreateTable, "person")
				require.GreaterOrEqual(t, i, 0)
				assert.Contains(t, s.Statements[i].SQL, "CONSTRAINT person_pkey PRIMARY KEY (person_id)")
				assert.Contains(t, s.SQL(), "CREATE INDEX ix_person_gender_concept_id ON cdm.person (gender_concept_id)")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ddl.Generate(schema, postgresdialect.Postgres, m, tt.opts...)
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestGenerate_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("a_very_long_table_name_", 4)
	schema := core.NewSchema("test", "1", []core.Table{{
		Entity: "Long",
		Name:   long,
		Schema: core.CDMSchema,
		Columns: []core.Field{
			{Name: "id", Type: core.Integer, Position: 100, PrimaryKey: true, Index: true},
		},
	}})

	script, err := ddl.Generate(schema, postgresdialect.Postgres, core.NewSchemaMap("vocab", "cdm"))
	require.NoError(t, err)

	pk := naming.Truncate("pk_"+long, 63)
	assert.Len(t, pk, 60)
	assert.Contains(t, script.Statements[1].SQL, "CONSTRAINT "+pk+" PRIMARY KEY (id)")

	idx := script.Filter(ddl.KindCreateIndex)
	require.Len(t, idx, 1)
	assert.Contains(t, idx[0].SQL, naming.Truncate("ix_"+long+"_id", 63))
}

func TestGenerate_Errors(t *testing.T) {
	schema := assemble(t, "5.4")

	_, err := ddl.Generate(nil, postgresdialect.Postgres, nil)
	require.ErrorIs(t, err, ddl.ErrSchemaRequired)

	_, err = ddl.Generate(schema, nil, nil)
	require.Error(t, err)

	_, err = ddl.Generate(schema, postgresdialect.Postgres, core.SchemaMap{"bogus": "x"})
	require.Error(t, err)

	_, err = ddl.Generate(schema, postgresdialect.Postgres, nil,
		ddl.WithConvention(naming.Convention{Index: "ix_%(unknown)s"}))
	require.Error(t, err)
}

func TestGenerate_UnmappedPlaceholders(t *testing.T) {
	schema := assemble(t, "5.4")

	script, err := ddl.Generate(schema, postgresdialect.Postgres, nil)
	require.NoError(t, err)
	assert.Contains(t, script.Tables(), "cdm_schema.person")
	assert.Contains(t, script.Tables(), "vocabulary_schema.concept")
}

func TestDrop(t *testing.T) {
	schema := assemble(t, "5.4")

	t.Run("named schemas", func(t *testing.T) {
		script, err := ddl.Drop(schema, postgresdialect.Postgres, core.NewSchemaMap("vocab", "cdm"))
		require.NoError(t, err)
		assert.Equal(t, []string{
			"DROP SCHEMA IF EXISTS cdm CASCADE",
			"DROP SCHEMA IF EXISTS vocab CASCADE",
		}, script.SQL())
	})

	t.Run("default schema keeps the schema", func(t *testing.T) {
		script, err := ddl.Drop(schema, duckdbdialect.DuckDB, core.NewSchemaMap("main", "main"))
		require.NoError(t, err)
		assert.Empty(t, script.Filter(ddl.KindDropSchema))

		drops := script.Filter(ddl.KindDropTable)
		require.Len(t, drops, schema.Len())
		person := indexOf(drops, ddl.KindDropTable, "person")
		visit := indexOf(drops, ddl.KindDropTable, "visit_occurrence")
		concept := indexOf(drops, ddl.KindDropTable, "concept")
		assert.Less(t, visit, person)
		assert.Less(t, person, concept)
		assert.Equal(t, "DROP TABLE IF EXISTS main.person", drops[person].SQL)
	})
}

func TestSplitStatements(t *testing.T) {
	schema := assemble(t, "5.4")
	script, err := ddl.Generate(schema, postgresdialect.Postgres, core.NewSchemaMap("vocab", "cdm"))
	require.NoError(t, err)

	assert.Equal(t, script.SQL(), ddl.SplitStatements(script.String()))

	input := `
-- vocabulary
CREATE SCHEMA IF NOT EXISTS vocab;

CREATE TABLE vocab.domain (
    domain_id VARCHAR(20) NOT NULL
);
CREATE INDEX ix_domain_domain_id ON vocab.domain (domain_id)`
	assert.Equal(t, []string{
		"CREATE SCHEMA IF NOT EXISTS vocab",
		"CREATE TABLE vocab.domain (\n    domain_id VARCHAR(20) NOT NULL\n)",
		"CREATE INDEX ix_domain_domain_id ON vocab.domain (domain_id)",
	}, ddl.SplitStatements(input))
	assert.Empty(t, ddl.SplitStatements("\n-- nothing\n"))
}

func TestGenerate_LogsSkippedForeignKeys(t *testing.T) {
	schema := assemble(t, "5.4")
	logger, buf := testutil.NewBufferLogger()

	_, err := ddl.Generate(schema, duckdbdialect.DuckDB, core.NewSchemaMap("main", "main"), ddl.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "skipping foreign key")
	assert.Contains(t, out, "column=domain_concept_id")
	assert.Contains(t, out, `reason="would close a dependency cycle"`)
}
