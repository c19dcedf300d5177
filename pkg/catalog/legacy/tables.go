package legacy

import "github.com/leapstack-labs/omopcdm/pkg/core"

var (
	cohortDefinitionID    = core.Ref(core.CDMSchema, "cohort_definition", "cohort_definition_id")
	attributeDefinitionID = core.Ref(core.CDMSchema, "attribute_definition", "attribute_definition_id")
)

func cohortDefinition() core.Entity {
	return core.Entity{
		Name:   "CohortDefinition",
		Table:  "cohort_definition",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "cohort_definition_id", Type: core.Integer, Position: 100, PrimaryKey: true, Index: true},
			{Name: "cohort_definition_name", Type: core.Varchar(255), Position: 200},
			{Name: "cohort_definition_description", Type: core.Text, Position: 300, Nullable: true},
			{Name: "definition_type_concept_id", References: core.ConceptID, Position: 400},
			{Name: "cohort_definition_syntax", Type: core.Text, Position: 500, Nullable: true},
			{Name: "subject_concept_id", References: core.ConceptID, Position: 600},
			{Name: "cohort_initiation_date", Type: core.Date, Position: 700, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "definition_type_concept", Field: "definition_type_concept_id", Target: "Concept"},
			{Name: "subject_concept", Field: "subject_concept_id", Target: "Concept"},
		},
	}
}

func cohort() core.Entity {
	return core.Entity{
		Name:   "Cohort",
		Table:  "cohort",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "cohort_definition_id", References: cohortDefinitionID, Position: 100, PrimaryKey: true, Index: true},
			{Name: "subject_id", Type: core.Integer, Position: 200, PrimaryKey: true, Index: true},
			{Name: "cohort_start_date", Type: core.Date, Position: 300, PrimaryKey: true},
			{Name: "cohort_end_date", Type: core.Date, Position: 400, PrimaryKey: true},
		},
		Relationships: []core.Relationship{
			{Name: "cohort_definition", Field: "cohort_definition_id", Target: "CohortDefinition"},
		},
	}
}

func attributeDefinition() core.Entity {
	return core.Entity{
		Name:   "AttributeDefinition",
		Table:  "attribute_definition",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "attribute_definition_id", Type: core.Integer, Position: 100, PrimaryKey: true, Index: true},
			{Name: "attribute_name", Type: core.Varchar(255), Position: 200},
			{Name: "attribute_description", Type: core.Text, Position: 300, Nullable: true},
			{Name: "attribute_type_concept_id", References: core.ConceptID, Position: 400},
			{Name: "attribute_syntax", Type: core.Text, Position: 500, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "attribute_type_concept", Field: "attribute_type_concept_id", Target: "Concept"},
		},
	}
}

func cohortAttribute() core.Entity {
	return core.Entity{
		Name:   "CohortAttribute",
		Table:  "cohort_attribute",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "cohort_definition_id", References: cohortDefinitionID, Position: 100, PrimaryKey: true, Index: true},
			{Name: "subject_id", Type: core.Integer, Position: 200, PrimaryKey: true},
			{Name: "cohort_start_date", Type: core.Date, Position: 300, PrimaryKey: true},
			{Name: "cohort_end_date", Type: core.Date, Position: 400, PrimaryKey: true},
			{Name: "attribute_definition_id", References: attributeDefinitionID, Position: 500, PrimaryKey: true, Index: true},
			{Name: "value_as_number", Type: core.Numeric, Position: 600, Nullable: true},
			{Name: "value_as_concept_id", References: core.ConceptID, Position: 700, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "attribute_definition", Field: "attribute_definition_id", Target: "AttributeDefinition"},
			{Name: "cohort_definition", Field: "cohort_definition_id", Target: "CohortDefinition"},
			{Name: "value_as_concept", Field: "value_as_concept_id", Target: "Concept"},
		},
	}
}
