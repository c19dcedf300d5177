package cdm600

import "github.com/leapstack-labs/omopcdm/pkg/core"

func drugEra() core.Entity {
	return core.Entity{
		Name:   "DrugEra",
		Table:  "drug_era",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "drug_era_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "drug_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "drug_era_start_datetime", Type: core.DateTime, Position: 400},
			{Name: "drug_era_end_datetime", Type: core.DateTime, Position: 500},
			{Name: "drug_exposure_count", Type: core.Integer, Position: 600, Nullable: true},
			{Name: "gap_days", Type: core.Integer, Position: 700, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "drug_concept", Field: "drug_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
		},
	}
}

func doseEra() core.Entity {
	return core.Entity{
		Name:   "DoseEra",
		Table:  "dose_era",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "dose_era_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "drug_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "unit_concept_id", References: core.ConceptID, Position: 400},
			{Name: "dose_value", Type: core.Numeric, Position: 500},
			{Name: "dose_era_start_datetime", Type: core.DateTime, Position: 600},
			{Name: "dose_era_end_datetime", Type: core.DateTime, Position: 700},
		},
		Relationships: []core.Relationship{
			{Name: "drug_concept", Field: "drug_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "unit_concept", Field: "unit_concept_id", Target: "Concept"},
		},
	}
}

func conditionEra() core.Entity {
	return core.Entity{
		Name:   "ConditionEra",
		Table:  "condition_era",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "condition_era_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "condition_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "condition_era_start_datetime", Type: core.DateTime, Position: 400},
			{Name: "condition_era_end_datetime", Type: core.DateTime, Position: 500},
			{Name: "condition_occurrence_count", Type: core.Integer, Position: 600, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "condition_concept", Field: "condition_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
		},
	}
}
