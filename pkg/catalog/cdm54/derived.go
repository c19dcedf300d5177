package cdm54

import "github.com/leapstack-labs/omopcdm/pkg/core"

func drugEra() core.Entity {
	return core.Entity{
		Name:   "DrugEra",
		Table:  "drug_era",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "drug_era_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "drug_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "drug_era_start_date", Type: core.DateTime, Position: 400},
			{Name: "drug_era_end_date", Type: core.DateTime, Position: 500},
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
			{Name: "dose_era_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "drug_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "unit_concept_id", References: core.ConceptID, Position: 400},
			{Name: "dose_value", Type: core.Numeric, Position: 500},
			{Name: "dose_era_start_date", Type: core.DateTime, Position: 600},
			{Name: "dose_era_end_date", Type: core.DateTime, Position: 700},
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
			{Name: "condition_era_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "condition_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "condition_era_start_date", Type: core.DateTime, Position: 400},
			{Name: "condition_era_end_date", Type: core.DateTime, Position: 500},
			{Name: "condition_occurrence_count", Type: core.Integer, Position: 600, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "condition_concept", Field: "condition_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
		},
	}
}

func episode() core.Entity {
	return core.Entity{
		Name:   "Episode",
		Table:  "episode",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "episode_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200},
			{Name: "episode_concept_id", References: core.ConceptID, Position: 300},
			{Name: "episode_start_date", Type: core.Date, Position: 400},
			{Name: "episode_start_datetime", Type: core.DateTime, Position: 500, Nullable: true},
			{Name: "episode_end_date", Type: core.Date, Position: 600, Nullable: true},
			{Name: "episode_end_datetime", Type: core.DateTime, Position: 700, Nullable: true},
			{Name: "episode_parent_id", Type: core.BigInteger, Position: 800, Nullable: true},
			{Name: "episode_number", Type: core.Integer, Position: 900, Nullable: true},
			{Name: "episode_object_concept_id", References: core.ConceptID, Position: 1000},
			{Name: "episode_type_concept_id", References: core.ConceptID, Position: 1100},
			{Name: "episode_source_value", Type: core.Varchar(50), Position: 1200, Nullable: true},
			{Name: "episode_source_concept_id", References: core.ConceptID, Position: 1300, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "episode_concept", Field: "episode_concept_id", Target: "Concept"},
			{Name: "episode_object_concept", Field: "episode_object_concept_id", Target: "Concept"},
			{Name: "episode_source_concept", Field: "episode_source_concept_id", Target: "Concept"},
			{Name: "episode_type_concept", Field: "episode_type_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
		},
	}
}

func episodeEvent() core.Entity {
	return core.Entity{
		Name:   "EpisodeEvent",
		Table:  "episode_event",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "episode_id", References: core.Ref(core.CDMSchema, "episode", "episode_id"), Position: 100, PrimaryKey: true},
			{Name: "event_id", Type: core.BigInteger, Position: 200, PrimaryKey: true},
			{Name: "episode_event_field_concept_id", References: core.ConceptID, Position: 300, PrimaryKey: true},
		},
		Relationships: []core.Relationship{
			{Name: "episode", Field: "episode_id", Target: "Episode"},
			{Name: "episode_event_field_concept", Field: "episode_event_field_concept_id", Target: "Concept"},
		},
	}
}
