package verify

import (
	"context"
	"log/slog"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/omopcdm/internal/testutil"
	"github.com/leapstack-labs/omopcdm/pkg/adapter"
	postgresdialect "github.com/leapstack-labs/omopcdm/pkg/adapters/postgres/dialect"
	"github.com/leapstack-labs/omopcdm/pkg/catalog/tableset"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

// mockAdapter runs the shared database/sql implementation against sqlmock.
type mockAdapter struct {
	adapter.BaseSQLAdapter
	d *dialect.Dialect
}

func (m *mockAdapter) Connect(context.Context, adapter.Config) error { return nil }

func (m *mockAdapter) ListTables(ctx context.Context, schema string) ([]string, error) {
	return m.ListTablesCommon(ctx, schema, m.d)
}

func (m *mockAdapter) GetTableMetadata(ctx context.Context, table string) (*adapter.Metadata, error) {
	return m.GetTableMetadataCommon(ctx, table, m.d)
}

func (m *mockAdapter) LoadCSV(context.Context, string, string, rune) error { return nil }

func (m *mockAdapter) Dialect() *dialect.Dialect { return m.d }

func newMockHarness(t *testing.T, schema *core.Schema, opts ...Option) (*Harness, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	adp := &mockAdapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{DB: db},
		d:              postgresdialect.Postgres,
	}
	return New(adp, schema, core.NewSchemaMap("vocab", "cdm"), testutil.NewTestLogger(t), opts...), mock
}

// miniSchema is person and death referencing it, plus concept in the
// vocabulary schema.
func miniSchema() *core.Schema {
	return core.NewSchema("mini", "1", []core.Table{
		{
			Entity: "Concept", Name: "concept", Schema: core.VocabularySchema,
			Columns: []core.Field{{Name: "concept_id", Type: core.Integer, Position: 100, PrimaryKey: true}},
		},
		{
			Entity: "Person", Name: "person", Schema: core.CDMSchema,
			Columns: []core.Field{
				{Name: "person_id", Type: core.Integer, Position: 100, PrimaryKey: true},
				{Name: "gender_concept_id", Type: core.Integer, Position: 200, References: core.ConceptID},
			},
			Relationships: []core.ResolvedRelationship{{
				Name: "gender_concept", Field: "gender_concept_id", Target: "Concept",
				TargetTable: "concept", TargetColumn: "concept_id", TargetSchema: core.VocabularySchema,
			}},
		},
		{
			Entity: "Death", Name: "death", Schema: core.CDMSchema,
			Columns: []core.Field{
				{Name: "person_id", Type: core.Integer, Position: 100, PrimaryKey: true, References: core.PersonID},
			},
			Relationships: []core.ResolvedRelationship{{
				Name: "person", Field: "person_id", Target: "Person",
				TargetTable: "person", TargetColumn: "person_id", TargetSchema: core.CDMSchema,
			}},
		},
	})
}

func TestHarness_Setup(t *testing.T) {
	h, mock := newMockHarness(t, miniSchema())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE SCHEMA IF NOT EXISTS cdm")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE SCHEMA IF NOT EXISTS vocab")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE vocab.concept")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE cdm.person")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE cdm.death")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE cdm.death ADD CONSTRAINT fk_death_person_id_person")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE cdm.person ADD CONSTRAINT fk_person_gender_concept_id_concept")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	script, err := h.Setup(context.Background())
	require.NoError(t, err)
	assert.Len(t, script.Statements, 7)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHarness_SetupFailure(t *testing.T) {
	h, mock := newMockHarness(t, miniSchema())

	mock.ExpectBegin()
	mock.ExpectExec("CREATE SCHEMA").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := h.Setup(context.Background())
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "create schema")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHarness_CheckTables(t *testing.T) {
	tests := []struct {
		name           string
		cdm            []string
		vocab          []string
		wantMissing    []string
		wantUnexpected []string
	}{
		{
			name:  "exact match",
			cdm:   []string{"death", "person"},
			vocab: []string{"concept"},
		},
		{
			name:           "missing and unexpected",
			cdm:            []string{"person", "stem_table"},
			vocab:          []string{"concept"},
			wantMissing:    []string{"death"},
			wantUnexpected: []string{"stem_table"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newMockHarness(t, miniSchema())

			cdmRows := sqlmock.NewRows([]string{"table_name"})
			for _, n := range tt.cdm {
				cdmRows.AddRow(n)
			}
			vocabRows := sqlmock.NewRows([]string{"table_name"})
			for _, n := range tt.vocab {
				vocabRows.AddRow(n)
			}
			mock.ExpectQuery("information_schema.tables").WithArgs("cdm").WillReturnRows(cdmRows)
			mock.ExpectQuery("information_schema.tables").WithArgs("vocab").WillReturnRows(vocabRows)

			report, err := h.CheckTables(context.Background(), tableset.Of("concept", "person", "death"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantMissing, report.Missing)
			assert.Equal(t, tt.wantUnexpected, report.Unexpected)

			if tt.wantMissing == nil && tt.wantUnexpected == nil {
				assert.True(t, report.OK())
				assert.NoError(t, report.Err())
				return
			}
			var mismatch *TableSetMismatchError
			require.ErrorAs(t, report.Err(), &mismatch)
			assert.Equal(t, "table set mismatch: missing death; unexpected stem_table", mismatch.Error())
		})
	}
}

func expectColumns(mock sqlmock.Sqlmock, schema, table string, cols ...string) {
	rows := sqlmock.NewRows([]string{"column_name", "data_type", "is_nullable", "ordinal_position"})
	for i, c := range cols {
		rows.AddRow(c, "integer", "NO", i+1)
	}
	mock.ExpectQuery("information_schema.columns").WithArgs(schema, table).WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
}

func TestHarness_CheckColumns(t *testing.T) {
	h, mock := newMockHarness(t, miniSchema())

	mock.ExpectQuery("information_schema.tables").WithArgs("cdm").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("person"))
	mock.ExpectQuery("information_schema.tables").WithArgs("vocab").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("concept"))
	expectColumns(mock, "vocab", "concept", "concept_id")
	expectColumns(mock, "cdm", "person", "gender_concept_id", "person_id")

	mismatches, err := h.CheckColumns(context.Background())
	require.NoError(t, err)
	require.Len(t, mismatches, 1, "death is absent and left to CheckTables")
	assert.Equal(t, ColumnMismatch{
		Table:    "person",
		Expected: []string{"person_id", "gender_concept_id"},
		Actual:   []string{"gender_concept_id", "person_id"},
	}, mismatches[0])

	var orderErr *ColumnOrderError
	require.ErrorAs(t, columnsErr(mismatches), &orderErr)
	assert.Equal(t, "column order mismatch: person", orderErr.Error())
	assert.NoError(t, columnsErr(nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHarness_CheckColumnsMetadataError(t *testing.T) {
	h, mock := newMockHarness(t, miniSchema())

	mock.ExpectQuery("information_schema.tables").WithArgs("cdm").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectQuery("information_schema.tables").WithArgs("vocab").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("concept"))
	mock.ExpectQuery("information_schema.columns").WillReturnError(assert.AnError)

	_, err := h.CheckColumns(context.Background())
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "read columns of concept")
}

func TestHarness_ProbeRelationships(t *testing.T) {
	h, mock := newMockHarness(t, miniSchema(), WithConcurrency(1))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT src.person_id, tgt.person_id FROM cdm.death src LEFT JOIN cdm.person tgt ON src.person_id = tgt.person_id LIMIT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"person_id", "person_id"}))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT src.gender_concept_id, tgt.concept_id FROM cdm.person src LEFT JOIN vocab.concept tgt ON src.gender_concept_id = tgt.concept_id LIMIT 1")).
		WillReturnError(assert.AnError)

	results, err := h.ProbeRelationships(context.Background())
	require.Error(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "death", results[0].Table)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "person", results[1].Table)
	assert.Equal(t, "gender_concept", results[1].Relationship)
	assert.ErrorIs(t, results[1].Err, assert.AnError)

	var probeErr *ProbeError
	require.ErrorAs(t, err, &probeErr)
	assert.Equal(t, "gender_concept", probeErr.Relationship)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHarness_Teardown(t *testing.T) {
	h, mock := newMockHarness(t, miniSchema())

	mock.ExpectExec(regexp.QuoteMeta("DROP SCHEMA IF EXISTS cdm CASCADE")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DROP SCHEMA IF EXISTS vocab CASCADE")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, h.Teardown(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHarness_RunTearsDownAfterFailure(t *testing.T) {
	h, mock := newMockHarness(t, miniSchema())

	mock.ExpectBegin()
	mock.ExpectExec("CREATE SCHEMA").WillReturnError(assert.AnError)
	mock.ExpectRollback()
	mock.ExpectExec(regexp.QuoteMeta("DROP SCHEMA IF EXISTS cdm CASCADE")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DROP SCHEMA IF EXISTS vocab CASCADE")).WillReturnResult(sqlmock.NewResult(0, 0))

	report, err := h.Run(context.Background(), tableset.Of("concept", "person", "death"))
	require.ErrorIs(t, err, assert.AnError)
	require.NotNil(t, report)
	assert.Nil(t, report.Tables)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNew_Defaults(t *testing.T) {
	h := New(&mockAdapter{d: postgresdialect.Postgres}, miniSchema(), nil, nil)
	assert.True(t, h.transactional)
	assert.Equal(t, DefaultConcurrency, h.concurrency)
	assert.NotNil(t, h.logger)

	h = New(&mockAdapter{d: postgresdialect.Postgres}, miniSchema(), nil, slog.Default(),
		WithConcurrency(0), WithTransactional(false))
	assert.Equal(t, 1, h.concurrency)
	assert.False(t, h.transactional)
	assert.Equal(t, []string{"cdm_schema", "vocabulary_schema"}, h.physicalSchemas())
}
