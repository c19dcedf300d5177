package compose

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// testCatalog is a tiny catalog with a vocabulary cycle (concept <-> domain)
// and a clinical table with two relationships to the same target.
func testCatalog() *core.Catalog {
	return &core.Catalog{
		Name:    "test",
		Version: "0",
		Entities: []core.Entity{
			{
				Name: "Concept", Table: "concept", Schema: core.VocabularySchema,
				Fields: []core.Field{
					{Name: "concept_id", Type: core.Integer, Position: 100, PrimaryKey: true},
					{Name: "domain_id", References: core.DomainID, Position: 200},
				},
				Relationships: []core.Relationship{{Name: "domain", Field: "domain_id", Target: "Domain"}},
			},
			{
				Name: "Domain", Table: "domain", Schema: core.VocabularySchema,
				Fields: []core.Field{
					{Name: "domain_id", Type: core.Varchar(20), Position: 100, PrimaryKey: true},
					{Name: "domain_concept_id", References: core.ConceptID, Position: 200},
				},
			},
			{
				Name: "Person", Table: "person", Schema: core.CDMSchema,
				Fields: []core.Field{
					{Name: "person_id", Type: core.Integer, Position: 100, PrimaryKey: true},
					{Name: "gender_concept_id", References: core.ConceptID, Position: 200},
				},
			},
			{
				Name: "Death", Table: "death", Schema: core.CDMSchema,
				Fields: []core.Field{
					{Name: "death_date", Type: core.Date, Position: 200},
					{Name: "person_id", References: core.PersonID, Position: 100, PrimaryKey: true},
					{Name: "cause_concept_id", References: core.ConceptID, Position: 300, Nullable: true},
					{Name: "cause_source_concept_id", References: core.ConceptID, Position: 400, Nullable: true},
				},
				Relationships: []core.Relationship{
					{Name: "person", Field: "person_id", Target: "Person"},
					{Name: "cause_concept", Field: "cause_concept_id", Target: "Concept"},
					{Name: "cause_source_concept", Field: "cause_source_concept_id", Target: "Concept"},
				},
			},
		},
	}
}

func TestAssembleBase(t *testing.T) {
	s, err := Assemble(testCatalog())
	require.NoError(t, err)

	assert.Equal(t, []string{"concept", "death", "domain", "person"}, s.TableNames())

	death, ok := s.Table("death")
	require.True(t, ok)
	assert.Equal(t, []string{"person_id", "death_date", "cause_concept_id", "cause_source_concept_id"}, death.ColumnNames())

	pid, _ := death.Column("person_id")
	assert.Equal(t, core.Integer, pid.Type)

	concept, _ := s.Table("concept")
	did, _ := concept.Column("domain_id")
	assert.Equal(t, core.Varchar(20), did.Type)

	require.Len(t, death.Relationships, 3)
	assert.Equal(t, "cause_concept_id", death.Relationships[0].Field)
	assert.Equal(t, "cause_source_concept_id", death.Relationships[1].Field)
	assert.Equal(t, "concept", death.Relationships[1].TargetTable)
	assert.Equal(t, core.VocabularySchema, death.Relationships[1].TargetSchema)
}

func TestAssembleOverlays(t *testing.T) {
	ov := NewOverlay("site",
		ReplaceField{Entity: "Person", Field: core.Field{Name: "person_id", Type: core.BigInteger, PrimaryKey: true}},
		InsertField{Entity: "Death", Field: core.Field{Name: "new_field_1", Type: core.Text, Position: 150, Nullable: true}},
		InsertField{Entity: "death", Field: core.Field{Name: "new_field_2", Type: core.Text, Position: 10000, Nullable: true}},
		ChangeType{Entity: "Death", Field: "death_date", Type: core.DateTime},
		SetNullable{Entity: "Death", Field: "death_date", Nullable: true},
	)

	s, err := Assemble(testCatalog(), ov)
	require.NoError(t, err)

	death, _ := s.Table("death")
	assert.Equal(t, []string{"person_id", "new_field_1", "death_date", "cause_concept_id", "cause_source_concept_id", "new_field_2"}, death.ColumnNames())

	pid, _ := death.Column("person_id")
	assert.Equal(t, core.BigInteger, pid.Type)

	dd, _ := death.Column("death_date")
	assert.Equal(t, core.DateTime, dd.Type)
	assert.True(t, dd.Nullable)
}

func TestRemoveFieldDropsRelationship(t *testing.T) {
	s, err := Assemble(testCatalog(), NewOverlay("trim", RemoveField{Entity: "Death", Field: "cause_source_concept_id"}))
	require.NoError(t, err)

	death, _ := s.Table("death")
	_, ok := death.Column("cause_source_concept_id")
	assert.False(t, ok)
	assert.Len(t, death.Relationships, 2)
}

func TestAddAndRemoveEntity(t *testing.T) {
	spine := core.Entity{
		Name: "CloudSpine", Table: "cloudspine", Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "cloud_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200},
		},
	}
	ov := NewOverlay("spine",
		AddEntity{Entity: spine},
		AddRelationship{Entity: "CloudSpine", Relationship: core.Relationship{Name: "person", Field: "person_id", Target: "Person"}},
		RemoveEntity{Entity: "Death"},
	)

	s, err := Assemble(testCatalog(), ov)
	require.NoError(t, err)
	assert.Equal(t, []string{"cloudspine", "concept", "domain", "person"}, s.TableNames())

	tbl, _ := s.Table("cloudspine")
	require.Len(t, tbl.Relationships, 1)
	assert.Equal(t, "person", tbl.Relationships[0].TargetTable)
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *core.Catalog)
		ops    []Op
		check  func(t *testing.T, err error)
	}{
		{
			name: "ordinal collision",
			ops:  []Op{InsertField{Entity: "Death", Field: core.Field{Name: "x", Type: core.Text, Position: 200}}},
			check: func(t *testing.T, err error) {
				var target *OrdinalCollisionError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 200, target.Position)
			},
		},
		{
			name: "unknown entity",
			ops:  []Op{ChangeType{Entity: "Nope", Field: "x", Type: core.Text}},
			check: func(t *testing.T, err error) {
				var target *UnknownEntityError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "Nope", target.Entity)
			},
		},
		{
			name: "dangling override",
			ops:  []Op{ReplaceField{Entity: "Person", Field: core.Field{Name: "missing", Type: core.Text}}},
			check: func(t *testing.T, err error) {
				var target *UnknownFieldError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "missing", target.Field)
			},
		},
		{
			name: "position change",
			ops:  []Op{ReplaceField{Entity: "Person", Field: core.Field{Name: "person_id", Type: core.BigInteger, Position: 900, PrimaryKey: true}}},
			check: func(t *testing.T, err error) {
				var target *PositionChangeError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 100, target.From)
			},
		},
		{
			name: "explicit fk type mismatch",
			ops:  []Op{ChangeType{Entity: "Death", Field: "person_id", Type: core.BigInteger}},
			check: func(t *testing.T, err error) {
				var target *TypeMismatchError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, core.Integer, target.Want)
			},
		},
		{
			name: "duplicate entity",
			ops:  []Op{AddEntity{Entity: core.Entity{Name: "Other", Table: "person", Schema: core.CDMSchema}}},
			check: func(t *testing.T, err error) {
				var target *DuplicateEntityError
				require.True(t, errors.As(err, &target))
			},
		},
		{
			name: "dangling reference after removal",
			ops:  []Op{RemoveEntity{Entity: "Person"}},
			check: func(t *testing.T, err error) {
				var target *UnresolvedReferenceError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "person", target.Ref.Table)
				var rel *UnresolvedRelationshipError
				assert.True(t, errors.As(err, &rel))
			},
		},
		{
			name: "relationship on plain column",
			ops: []Op{AddRelationship{Entity: "Death", Relationship: core.Relationship{
				Name: "date", Field: "death_date", Target: "Person",
			}}},
			check: func(t *testing.T, err error) {
				var target *UnresolvedRelationshipError
				require.True(t, errors.As(err, &target))
				assert.Contains(t, target.Reason, "not a foreign key")
			},
		},
		{
			name: "relationship to wrong target",
			ops: []Op{AddRelationship{Entity: "Death", Relationship: core.Relationship{
				Name: "wrong", Field: "cause_concept_id", Target: "Person",
			}}},
			check: func(t *testing.T, err error) {
				var target *UnresolvedRelationshipError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "wrong", target.Relationship)
			},
		},
		{
			name: "reference to non key column",
			mutate: func(c *core.Catalog) {
				c.Entities[3].Fields[2].References = core.Ref(core.VocabularySchema, "domain", "domain_concept_id")
			},
			check: func(t *testing.T, err error) {
				var target *UnresolvedReferenceError
				require.True(t, errors.As(err, &target))
				assert.Contains(t, target.Reason, "primary key")
			},
		},
		{
			name: "untyped plain field",
			ops:  []Op{InsertField{Entity: "Person", Field: core.Field{Name: "x", Position: 300}}},
			check: func(t *testing.T, err error) {
				var target *InvalidFieldError
				require.True(t, errors.As(err, &target))
			},
		},
		{
			name: "insert without position",
			ops:  []Op{InsertField{Entity: "Person", Field: core.Field{Name: "x", Type: core.Text}}},
			check: func(t *testing.T, err error) {
				var target *InvalidFieldError
				require.True(t, errors.As(err, &target))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := testCatalog()
			if tt.mutate != nil {
				tt.mutate(base)
			}
			_, err := Assemble(base, NewOverlay("bad", tt.ops...))
			require.Error(t, err)

			var asm *AssemblyError
			require.True(t, errors.As(err, &asm))
			assert.Equal(t, "test", asm.Catalog)
			tt.check(t, err)
		})
	}
}

func TestValidationCollectsAllProblems(t *testing.T) {
	base := testCatalog()
	base.Entities[2].Fields = append(base.Entities[2].Fields,
		core.Field{Name: "a", Type: core.Text, Position: 100},
		core.Field{Name: "gender_concept_id", Type: core.Text, Position: 900},
	)

	_, err := Assemble(base)
	var asm *AssemblyError
	require.True(t, errors.As(err, &asm))
	assert.GreaterOrEqual(t, len(asm.Errs), 2)

	var collision *OrdinalCollisionError
	assert.True(t, errors.As(err, &collision))
	var dup *DuplicateFieldError
	assert.True(t, errors.As(err, &dup))
}

func TestAssembleDoesNotMutate(t *testing.T) {
	base := testCatalog()
	before := base.Clone()

	_, err := Assemble(base, NewOverlay("x",
		ReplaceField{Entity: "Person", Field: core.Field{Name: "person_id", Type: core.BigInteger, PrimaryKey: true}},
		RemoveEntity{Entity: "Domain"},
	))
	require.Error(t, err) // concept.domain_id now dangles
	assert.Equal(t, before, base)
}

func TestApply(t *testing.T) {
	c, err := Apply(testCatalog(), NewOverlay("x", RemoveField{Entity: "Death", Field: "death_date"}))
	require.NoError(t, err)
	e, _ := c.Entity("Death")
	_, ok := e.Field("death_date")
	assert.False(t, ok)

	_, err = Apply(testCatalog(), NewOverlay("x", RemoveField{Entity: "Death", Field: "zzz"}))
	var unknown *UnknownFieldError
	assert.True(t, errors.As(err, &unknown))
}
