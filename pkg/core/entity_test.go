package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntity() Entity {
	return Entity{
		Name:   "Death",
		Table:  "death",
		Schema: CDMSchema,
		Fields: []Field{
			{Name: "death_date", Type: Date, Position: 200},
			{Name: "person_id", References: PersonID, Position: 100, PrimaryKey: true},
			{Name: "cause_source_value", Type: Varchar(50), Position: 600, Nullable: true},
		},
		Relationships: []Relationship{{Name: "person", Field: "person_id", Target: "Person"}},
	}
}

func TestEntitySortedFields(t *testing.T) {
	e := testEntity()
	sorted := e.SortedFields()

	names := make([]string, len(sorted))
	for i, f := range sorted {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"person_id", "death_date", "cause_source_value"}, names)
	// declaration order untouched
	assert.Equal(t, "death_date", e.Fields[0].Name)
	assert.Equal(t, []string{"person_id"}, e.PrimaryKey())
}

func TestEntityClone(t *testing.T) {
	e := testEntity()
	c := e.Clone()
	c.Fields[0].Name = "changed"
	c.Relationships[0].Target = "Other"

	assert.Equal(t, "death_date", e.Fields[0].Name)
	assert.Equal(t, "Person", e.Relationships[0].Target)
}

func TestCatalogLookup(t *testing.T) {
	c := &Catalog{Name: "test", Entities: []Entity{testEntity()}}

	e, ok := c.Entity("Death")
	require.True(t, ok)
	assert.Equal(t, "death", e.Table)

	_, ok = c.EntityByTable("death")
	assert.True(t, ok)
	_, ok = c.Entity("Person")
	assert.False(t, ok)

	clone := c.Clone()
	clone.Entities[0].Fields[0].Type = Text
	assert.Equal(t, Date, c.Entities[0].Fields[0].Type)
}

func TestParseRef(t *testing.T) {
	r, err := ParseRef("cdm_schema.person.person_id")
	require.NoError(t, err)
	assert.Equal(t, PersonID, r)
	assert.Equal(t, "cdm_schema.person.person_id", r.String())

	_, err = ParseRef("person.person_id")
	assert.Error(t, err)
	_, err = ParseRef("results.person.person_id")
	assert.Error(t, err)
	assert.True(t, ColumnRef{}.IsZero())
}

func TestParseOnDelete(t *testing.T) {
	a, err := ParseOnDelete("cascade")
	require.NoError(t, err)
	assert.Equal(t, OnDeleteCascade, a)

	a, err = ParseOnDelete("no action")
	require.NoError(t, err)
	assert.Equal(t, OnDeleteNoAction, a)

	_, err = ParseOnDelete("explode")
	assert.Error(t, err)
}

func TestSchemaAccessorsReturnCopies(t *testing.T) {
	s := NewSchema("test", "1", []Table{{
		Entity:  "Death",
		Name:    "death",
		Schema:  CDMSchema,
		Columns: []Field{{Name: "person_id", Type: Integer, Position: 100, PrimaryKey: true}},
	}})

	tbl, ok := s.Table("death")
	require.True(t, ok)
	tbl.Columns[0].Type = BigInteger

	again, _ := s.Entity("Death")
	assert.Equal(t, Integer, again.Columns[0].Type)
	assert.Equal(t, []string{"death"}, s.TableNamesIn(CDMSchema))
	assert.Empty(t, s.TableNamesIn(VocabularySchema))
}
