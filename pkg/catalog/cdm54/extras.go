package cdm54

import "github.com/leapstack-labs/omopcdm/pkg/core"

// StemTable is the ETL staging table used by the OHDSI conversion tools.
func StemTable() core.Entity {
	return core.Entity{
		Name:   "StemTable",
		Table:  "stem_table",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "domain_id", References: core.DomainID, Position: 200, Nullable: true},
			{Name: "person_id", References: core.PersonID, Position: 300, Index: true},
			{Name: "concept_id", References: core.ConceptID, Position: 400, Index: true},
			{Name: "start_date", Type: core.Date, Position: 500, Nullable: true},
			{Name: "start_datetime", Type: core.DateTime, Position: 600},
			{Name: "end_date", Type: core.Date, Position: 700, Nullable: true},
			{Name: "end_datetime", Type: core.DateTime, Position: 800, Nullable: true},
			{Name: "verbatim_end_date", Type: core.Date, Position: 900, Nullable: true},
			{Name: "type_concept_id", References: core.ConceptID, Position: 1000},
			{Name: "operator_concept_id", References: core.ConceptID, Position: 1100, Nullable: true},
			{Name: "value_as_number", Type: core.Numeric, Position: 1200, Nullable: true},
			{Name: "value_as_concept_id", References: core.ConceptID, Position: 1300, Nullable: true},
			{Name: "value_as_string", Type: core.Varchar(60), Position: 1400, Nullable: true},
			{Name: "value_as_datetime", Type: core.DateTime, Position: 1500, Nullable: true},
			{Name: "unit_concept_id", References: core.ConceptID, Position: 1600, Nullable: true},
			{Name: "range_low", Type: core.Numeric, Position: 1700, Nullable: true},
			{Name: "range_high", Type: core.Numeric, Position: 1800, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1900, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 2000, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 2100, Nullable: true},
			{Name: "source_value", Type: core.Varchar(50), Position: 2200, Nullable: true},
			{Name: "source_concept_id", References: core.ConceptID, Position: 2300, Nullable: true},
			{Name: "unit_source_value", Type: core.Varchar(50), Position: 2400, Nullable: true},
			{Name: "unit_source_concept_id", References: core.ConceptID, Position: 2500, Nullable: true},
			{Name: "value_source_value", Type: core.Varchar(50), Position: 2600, Nullable: true},
			{Name: "stop_reason", Type: core.Varchar(20), Position: 2700, Nullable: true},
			{Name: "refills", Type: core.Integer, Position: 2800, Nullable: true},
			{Name: "quantity", Type: core.Numeric, Position: 2900, Nullable: true},
			{Name: "days_supply", Type: core.Integer, Position: 3000, Nullable: true},
			{Name: "sig", Type: core.Text, Position: 3100, Nullable: true},
			{Name: "route_concept_id", References: core.ConceptID, Position: 3200, Nullable: true},
			{Name: "lot_number", Type: core.Varchar(50), Position: 3300, Nullable: true},
			{Name: "route_source_value", Type: core.Varchar(50), Position: 3400, Nullable: true},
			{Name: "dose_unit_source_value", Type: core.Varchar(50), Position: 3500, Nullable: true},
			{Name: "condition_status_source_value", Type: core.Varchar(50), Position: 3600, Nullable: true},
			{Name: "condition_status_concept_id", References: core.ConceptID, Position: 3700, Nullable: true},
			{Name: "qualifier_concept_id", References: core.ConceptID, Position: 3800, Nullable: true},
			{Name: "qualifier_source_value", Type: core.Varchar(50), Position: 3900, Nullable: true},
			{Name: "modifier_concept_id", References: core.ConceptID, Position: 4000, Nullable: true},
			{Name: "unique_device_id", Type: core.Varchar(50), Position: 4100, Nullable: true},
			{Name: "production_id", Type: core.Varchar(255), Position: 4200, Nullable: true},
			{Name: "anatomic_site_concept_id", References: core.ConceptID, Position: 4300, Nullable: true},
			{Name: "disease_status_concept_id", References: core.ConceptID, Position: 4400, Nullable: true},
			{Name: "specimen_source_id", Type: core.Varchar(50), Position: 4500, Nullable: true},
			{Name: "anatomic_site_source_value", Type: core.Varchar(50), Position: 4600, Nullable: true},
			{Name: "disease_status_source_value", Type: core.Varchar(50), Position: 4700, Nullable: true},
			{Name: "event_id", Type: core.BigInteger, Position: 4800, Nullable: true},
			{Name: "event_field_concept_id", References: core.ConceptID, Position: 4900, Nullable: true},
			{Name: "modifier_source_value", Type: core.Varchar(50), Position: 5000, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "anatomic_site_concept", Field: "anatomic_site_concept_id", Target: "Concept"},
			{Name: "concept", Field: "concept_id", Target: "Concept"},
			{Name: "condition_status_concept", Field: "condition_status_concept_id", Target: "Concept"},
			{Name: "disease_status_concept", Field: "disease_status_concept_id", Target: "Concept"},
			{Name: "domain", Field: "domain_id", Target: "Domain"},
			{Name: "event_field_concept", Field: "event_field_concept_id", Target: "Concept"},
			{Name: "modifier_concept", Field: "modifier_concept_id", Target: "Concept"},
			{Name: "operator_concept", Field: "operator_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "qualifier_concept", Field: "qualifier_concept_id", Target: "Concept"},
			{Name: "route_concept", Field: "route_concept_id", Target: "Concept"},
			{Name: "source_concept", Field: "source_concept_id", Target: "Concept"},
			{Name: "type_concept", Field: "type_concept_id", Target: "Concept"},
			{Name: "unit_concept", Field: "unit_concept_id", Target: "Concept"},
			{Name: "unit_source_concept", Field: "unit_source_concept_id", Target: "Concept"},
			{Name: "value_as_concept", Field: "value_as_concept_id", Target: "Concept"},
			{Name: "visit_detail", Field: "visit_detail_id", Target: "VisitDetail"},
			{Name: "visit_occurrence", Field: "visit_occurrence_id", Target: "VisitOccurrence"},
		},
	}
}

// SourceToConceptMapVersion tracks which source_to_concept_map upload is loaded.
func SourceToConceptMapVersion() core.Entity {
	return core.Entity{
		Name:   "SourceToConceptMapVersion",
		Table:  "source_to_concept_map_version",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "source_vocabulary_id", References: core.VocabularyID, Position: 100, PrimaryKey: true},
			{Name: "stcm_version", Type: core.Varchar(255), Position: 200},
			{Name: "last_upload_date", Type: core.DateTime, Position: 300},
		},
		Relationships: []core.Relationship{
			{Name: "source_vocabulary", Field: "source_vocabulary_id", Target: "Vocabulary"},
		},
	}
}
