package naming

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConvention(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"index", func() (string, error) { return Default.IndexName("person", "person_id") }, "ix_person_person_id"},
		{"multi column index", func() (string, error) {
			return Default.IndexName("concept_ancestor", "ancestor_concept_id", "descendant_concept_id")
		},
			"ix_concept_ancestor_ancestor_concept_id_descendant_concept_id"},
		{"unique", func() (string, error) { return Default.UniqueName("concept", "concept_code", "vocabulary_id") }, "uq_concept_concept_code"},
		{"check", func() (string, error) { return Default.CheckName("person", "year_positive") }, "ck_person_year_positive"},
		{"foreign key", func() (string, error) { return Default.ForeignKeyName("visit_occurrence", "person_id", "person") },
			"fk_visit_occurrence_person_id_person"},
		{"primary key", func() (string, error) { return Default.PrimaryKeyName("concept_ancestor") }, "pk_concept_ancestor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameIsDeterministic(t *testing.T) {
	a, err := Default.ForeignKeyName("drug_exposure", "drug_concept_id", "concept")
	require.NoError(t, err)
	b, err := Default.ForeignKeyName("drug_exposure", "drug_concept_id", "concept")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNameInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
	}{
		{"empty table", func() (string, error) { return Default.PrimaryKeyName("") }},
		{"index without columns", func() (string, error) { return Default.IndexName("person") }},
		{"fk without referred table", func() (string, error) { return Default.ForeignKeyName("person", "location_id", "") }},
		{"check without name", func() (string, error) { return Default.CheckName("person", "") }},
		{"unknown kind", func() (string, error) { return Default.Name(Kind("zz"), Input{Table: "person"}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.got()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestConventionValidate(t *testing.T) {
	require.NoError(t, Default.Validate())

	bad := Default
	bad.PrimaryKey = "pk_%(schema_name)s"
	assert.Error(t, bad.Validate())

	empty := Default
	empty.Index = ""
	assert.Error(t, empty.Validate())
}

func TestConventionMerge(t *testing.T) {
	c := Default.Merge(Convention{PrimaryKey: "%(table_name)s_pkey"})
	name, err := c.PrimaryKeyName("person")
	require.NoError(t, err)
	assert.Equal(t, "person_pkey", name)
	assert.Equal(t, Default.Index, c.Index)
}

func TestTruncate(t *testing.T) {
	short := "fk_person_location_id_location"
	assert.Equal(t, short, Truncate(short, 63))
	assert.Equal(t, short, Truncate(short, 0))

	long := "fk_" + strings.Repeat("very_long_table_", 5) + "concept_id_concept"
	got := Truncate(long, 63)
	assert.Len(t, got, 63-8+5)
	assert.LessOrEqual(t, len(got), 63)
	assert.True(t, strings.HasPrefix(got, long[:55]))
	assert.Equal(t, got, Truncate(long, 63), "truncation must be deterministic")
}
