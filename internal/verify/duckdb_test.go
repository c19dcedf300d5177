package verify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/omopcdm/internal/testutil"
	"github.com/leapstack-labs/omopcdm/internal/verify"
	"github.com/leapstack-labs/omopcdm/pkg/adapters/duckdb"
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	_ "github.com/leapstack-labs/omopcdm/pkg/catalog/all"
	"github.com/leapstack-labs/omopcdm/pkg/catalog/tableset"
	"github.com/leapstack-labs/omopcdm/pkg/core"
)

func openDuckDB(t *testing.T) *duckdb.Adapter {
	t.Helper()
	adp := duckdb.New(testutil.NewTestLogger(t))
	require.NoError(t, adp.Connect(context.Background(), core.AdapterConfig{Path: ":memory:"}))
	t.Cleanup(func() { _ = adp.Close() })
	return adp
}

func TestRun_EveryCatalog(t *testing.T) {
	for _, name := range catalog.List() {
		t.Run(name, func(t *testing.T) {
			schema, err := catalog.Assemble(name)
			require.NoError(t, err)
			expected, err := tableset.For(name)
			require.NoError(t, err)

			adp := openDuckDB(t)
			h := verify.New(adp, schema, core.NewSchemaMap("vocab", "cdm"), testutil.NewTestLogger(t))

			report, err := h.Run(context.Background(), expected)
			require.NoError(t, err)
			assert.True(t, report.Tables.OK())
			assert.Empty(t, report.Columns)
			assert.Empty(t, report.FailedProbes())
			assert.NotEmpty(t, report.Probes)

			// Teardown left nothing behind.
			tables, err := h.Tables(context.Background())
			require.NoError(t, err)
			assert.Empty(t, tables)
		})
	}
}

func TestSetup_SharedPhysicalSchema(t *testing.T) {
	schema, err := catalog.Assemble("5.4")
	require.NoError(t, err)
	expected, err := tableset.For("5.4")
	require.NoError(t, err)

	ctx := context.Background()
	h := verify.New(openDuckDB(t), schema, core.NewSchemaMap("omop", "omop"), testutil.NewTestLogger(t))

	script, err := h.Setup(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, script.Skipped)

	report, err := h.CheckTables(ctx, expected)
	require.NoError(t, err)
	assert.NoError(t, report.Err())

	_, err = h.ProbeRelationships(ctx)
	require.NoError(t, err)
	require.NoError(t, h.Teardown(ctx))
}

func TestTeardown_IsolatesMappings(t *testing.T) {
	schema, err := catalog.Assemble("5.4")
	require.NoError(t, err)
	expected, err := tableset.For("5.4")
	require.NoError(t, err)

	ctx := context.Background()
	adp := openDuckDB(t)
	a := verify.New(adp, schema, core.NewSchemaMap("vocab_a", "cdm_a"), nil, verify.WithTransactional(false))
	b := verify.New(adp, schema, core.NewSchemaMap("vocab_b", "cdm_b"), nil, verify.WithTransactional(false))

	// Both mappings are created at the same time from one assembled schema.
	g, gctx := errgroup.WithContext(ctx)
	for _, h := range []*verify.Harness{a, b} {
		g.Go(func() error {
			_, err := h.Setup(gctx)
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, h := range []*verify.Harness{a, b} {
		report, err := h.CheckTables(ctx, expected)
		require.NoError(t, err)
		require.NoError(t, report.Err())
	}

	require.NoError(t, a.Teardown(ctx))

	gone, err := a.Tables(ctx)
	require.NoError(t, err)
	assert.Empty(t, gone)

	report, err := b.CheckTables(ctx, expected)
	require.NoError(t, err)
	assert.NoError(t, report.Err())

	_, err = b.ProbeRelationships(ctx)
	require.NoError(t, err)
}

func TestCheckTables_ReportsMismatch(t *testing.T) {
	schema, err := catalog.Assemble("5.4+extras")
	require.NoError(t, err)

	ctx := context.Background()
	h := verify.New(openDuckDB(t), schema, core.NewSchemaMap("vocab", "cdm"), nil)
	_, err = h.Setup(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Teardown(ctx) })

	// The extras tables are not part of the plain 5.4 set.
	plain, err := tableset.For("5.4")
	require.NoError(t, err)

	report, err := h.CheckTables(ctx, plain)
	require.NoError(t, err)
	assert.Empty(t, report.Missing)
	assert.Equal(t, []string{"source_to_concept_map_version", "stem_table"}, report.Unexpected)

	var mismatch *verify.TableSetMismatchError
	require.ErrorAs(t, report.Err(), &mismatch)
}

func TestRun_Keep(t *testing.T) {
	schema, err := catalog.Assemble("5.4")
	require.NoError(t, err)
	expected, err := tableset.For("5.4")
	require.NoError(t, err)

	ctx := context.Background()
	h := verify.New(openDuckDB(t), schema, core.NewSchemaMap("vocab", "cdm"), testutil.NewTestLogger(t),
		verify.WithKeep(true))

	_, err = h.Run(ctx, expected)
	require.NoError(t, err)

	tables, err := h.Tables(ctx)
	require.NoError(t, err)
	assert.Len(t, tables, len(expected))
}

func TestCheckColumns_DetectsDrift(t *testing.T) {
	schema := core.NewSchema("drift", "1", []core.Table{{
		Entity: "Note", Name: "note", Schema: core.CDMSchema,
		Columns: []core.Field{
			{Name: "note_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", Type: core.Integer, Position: 200},
		},
	}})

	ctx := context.Background()
	adp := openDuckDB(t)
	require.NoError(t, adp.ExecScript(ctx, []string{
		"CREATE SCHEMA cdm",
		"CREATE TABLE cdm.note (person_id INTEGER, note_id INTEGER)",
	}, true))

	h := verify.New(adp, schema, core.NewSchemaMap("vocab", "cdm"), testutil.NewTestLogger(t))
	mismatches, err := h.CheckColumns(ctx)
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "note", mismatches[0].Table)
	assert.Equal(t, []string{"note_id", "person_id"}, mismatches[0].Expected)
	assert.Equal(t, []string{"person_id", "note_id"}, mismatches[0].Actual)
}
