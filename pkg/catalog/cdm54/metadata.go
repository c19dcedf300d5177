package cdm54

import "github.com/leapstack-labs/omopcdm/pkg/core"

func cdmSource() core.Entity {
	return core.Entity{
		Name:   "CdmSource",
		Table:  "cdm_source",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "cdm_source_name", Type: core.Varchar(255), Position: 100, PrimaryKey: true},
			{Name: "cdm_source_abbreviation", Type: core.Varchar(25), Position: 200},
			{Name: "cdm_holder", Type: core.Varchar(255), Position: 300},
			{Name: "source_description", Type: core.Text, Position: 400, Nullable: true},
			{Name: "source_documentation_reference", Type: core.Varchar(255), Position: 500, Nullable: true},
			{Name: "cdm_etl_reference", Type: core.Varchar(255), Position: 600, Nullable: true},
			{Name: "source_release_date", Type: core.Date, Position: 700},
			{Name: "cdm_release_date", Type: core.Date, Position: 800},
			{Name: "cdm_version", Type: core.Varchar(10), Position: 900, Nullable: true},
			{Name: "cdm_version_concept_id", References: core.ConceptID, Position: 1000},
			{Name: "vocabulary_version", Type: core.Varchar(20), Position: 1100},
		},
		Relationships: []core.Relationship{
			{Name: "cdm_version_concept", Field: "cdm_version_concept_id", Target: "Concept"},
		},
	}
}

func metadata() core.Entity {
	return core.Entity{
		Name:   "Metadata",
		Table:  "metadata",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "metadata_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "metadata_concept_id", References: core.ConceptID, Position: 200, Index: true},
			{Name: "metadata_type_concept_id", References: core.ConceptID, Position: 300},
			{Name: "name", Type: core.Varchar(250), Position: 400},
			{Name: "value_as_string", Type: core.Varchar(250), Position: 500, Nullable: true},
			{Name: "value_as_concept_id", References: core.ConceptID, Position: 600, Nullable: true},
			{Name: "value_as_number", Type: core.Numeric, Position: 700, Nullable: true},
			{Name: "metadata_date", Type: core.Date, Position: 800, Nullable: true},
			{Name: "metadata_datetime", Type: core.DateTime, Position: 900, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "metadata_concept", Field: "metadata_concept_id", Target: "Concept"},
			{Name: "metadata_type_concept", Field: "metadata_type_concept_id", Target: "Concept"},
			{Name: "value_as_concept", Field: "value_as_concept_id", Target: "Concept"},
		},
	}
}
