package cdm600

import "github.com/leapstack-labs/omopcdm/pkg/core"

func person() core.Entity {
	return core.Entity{
		Name:   "Person",
		Table:  "person",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "person_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "gender_concept_id", References: core.ConceptID, Position: 200},
			{Name: "year_of_birth", Type: core.Integer, Position: 300},
			{Name: "month_of_birth", Type: core.Integer, Position: 400, Nullable: true},
			{Name: "day_of_birth", Type: core.Integer, Position: 500, Nullable: true},
			{Name: "birth_datetime", Type: core.DateTime, Position: 600, Nullable: true},
			{Name: "death_datetime", Type: core.DateTime, Position: 700, Nullable: true},
			{Name: "race_concept_id", References: core.ConceptID, Position: 800},
			{Name: "ethnicity_concept_id", References: core.ConceptID, Position: 900},
			{Name: "location_id", References: core.LocationID, Position: 1000, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1100, Nullable: true},
			{Name: "care_site_id", References: core.CareSiteID, Position: 1200, Nullable: true},
			{Name: "person_source_value", Type: core.Varchar(50), Position: 1300, Nullable: true},
			{Name: "gender_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "gender_source_concept_id", References: core.ConceptID, Position: 1500},
			{Name: "race_source_value", Type: core.Varchar(50), Position: 1600, Nullable: true},
			{Name: "race_source_concept_id", References: core.ConceptID, Position: 1700},
			{Name: "ethnicity_source_value", Type: core.Varchar(50), Position: 1800, Nullable: true},
			{Name: "ethnicity_source_concept_id", References: core.ConceptID, Position: 1900},
		},
		Relationships: []core.Relationship{
			{Name: "care_site", Field: "care_site_id", Target: "CareSite"},
			{Name: "ethnicity_concept", Field: "ethnicity_concept_id", Target: "Concept"},
			{Name: "ethnicity_source_concept", Field: "ethnicity_source_concept_id", Target: "Concept"},
			{Name: "gender_concept", Field: "gender_concept_id", Target: "Concept"},
			{Name: "gender_source_concept", Field: "gender_source_concept_id", Target: "Concept"},
			{Name: "location", Field: "location_id", Target: "Location"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "race_concept", Field: "race_concept_id", Target: "Concept"},
			{Name: "race_source_concept", Field: "race_source_concept_id", Target: "Concept"},
		},
	}
}

func observationPeriod() core.Entity {
	return core.Entity{
		Name:   "ObservationPeriod",
		Table:  "observation_period",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "observation_period_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "observation_period_start_date", Type: core.Date, Position: 300},
			{Name: "observation_period_end_date", Type: core.Date, Position: 400},
			{Name: "period_type_concept_id", References: core.ConceptID, Position: 500},
		},
		Relationships: []core.Relationship{
			{Name: "period_type_concept", Field: "period_type_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
		},
	}
}

func visitOccurrence() core.Entity {
	return core.Entity{
		Name:   "VisitOccurrence",
		Table:  "visit_occurrence",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "visit_occurrence_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "visit_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "visit_start_date", Type: core.Date, Position: 400, Nullable: true},
			{Name: "visit_start_datetime", Type: core.DateTime, Position: 500},
			{Name: "visit_end_date", Type: core.Date, Position: 600, Nullable: true},
			{Name: "visit_end_datetime", Type: core.DateTime, Position: 700},
			{Name: "visit_type_concept_id", References: core.ConceptID, Position: 800},
			{Name: "provider_id", References: core.ProviderID, Position: 900, Nullable: true},
			{Name: "care_site_id", References: core.CareSiteID, Position: 1000, Nullable: true},
			{Name: "visit_source_value", Type: core.Varchar(50), Position: 1100, Nullable: true},
			{Name: "visit_source_concept_id", References: core.ConceptID, Position: 1200},
			{Name: "admitted_from_concept_id", References: core.ConceptID, Position: 1300},
			{Name: "admitted_from_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "discharge_to_source_value", Type: core.Varchar(50), Position: 1500, Nullable: true},
			{Name: "discharge_to_concept_id", References: core.ConceptID, Position: 1600},
			{Name: "preceding_visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1700, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "admitted_from_concept", Field: "admitted_from_concept_id", Target: "Concept"},
			{Name: "care_site", Field: "care_site_id", Target: "CareSite"},
			{Name: "discharge_to_concept", Field: "discharge_to_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "preceding_visit_occurrence", Field: "preceding_visit_occurrence_id", Target: "VisitOccurrence"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "visit_concept", Field: "visit_concept_id", Target: "Concept"},
			{Name: "visit_source_concept", Field: "visit_source_concept_id", Target: "Concept"},
			{Name: "visit_type_concept", Field: "visit_type_concept_id", Target: "Concept"},
		},
	}
}

func visitDetail() core.Entity {
	return core.Entity{
		Name:   "VisitDetail",
		Table:  "visit_detail",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "visit_detail_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "visit_detail_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "visit_detail_start_date", Type: core.Date, Position: 400, Nullable: true},
			{Name: "visit_detail_start_datetime", Type: core.DateTime, Position: 500},
			{Name: "visit_detail_end_date", Type: core.Date, Position: 600, Nullable: true},
			{Name: "visit_detail_end_datetime", Type: core.DateTime, Position: 700},
			{Name: "visit_detail_type_concept_id", References: core.ConceptID, Position: 800},
			{Name: "provider_id", References: core.ProviderID, Position: 900, Nullable: true},
			{Name: "care_site_id", References: core.CareSiteID, Position: 1000, Nullable: true},
			{Name: "discharge_to_concept_id", References: core.ConceptID, Position: 1100},
			{Name: "admitted_from_concept_id", References: core.ConceptID, Position: 1200},
			{Name: "admitted_from_source_value", Type: core.Varchar(50), Position: 1300, Nullable: true},
			{Name: "visit_detail_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "visit_detail_source_concept_id", References: core.ConceptID, Position: 1500},
			{Name: "discharge_to_source_value", Type: core.Varchar(50), Position: 1600, Nullable: true},
			{Name: "preceding_visit_detail_id", References: core.VisitDetailID, Position: 1700, Nullable: true},
			{Name: "visit_detail_parent_id", References: core.VisitDetailID, Position: 1800, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1900},
		},
		Relationships: []core.Relationship{
			{Name: "admitted_from_concept", Field: "admitted_from_concept_id", Target: "Concept"},
			{Name: "care_site", Field: "care_site_id", Target: "CareSite"},
			{Name: "discharge_to_concept", Field: "discharge_to_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "preceding_visit_detail", Field: "preceding_visit_detail_id", Target: "VisitDetail"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "visit_detail_concept", Field: "visit_detail_concept_id", Target: "Concept"},
			{Name: "visit_detail_parent", Field: "visit_detail_parent_id", Target: "VisitDetail"},
			{Name: "visit_detail_source_concept", Field: "visit_detail_source_concept_id", Target: "Concept"},
			{Name: "visit_detail_type_concept", Field: "visit_detail_type_concept_id", Target: "Concept"},
			{Name: "visit_occurrence", Field: "visit_occurrence_id", Target: "VisitOccurrence"},
		},
	}
}

func conditionOccurrence() core.Entity {
	return core.Entity{
		Name:   "ConditionOccurrence",
		Table:  "condition_occurrence",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "condition_occurrence_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "condition_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "condition_start_date", Type: core.Date, Position: 400, Nullable: true},
			{Name: "condition_start_datetime", Type: core.DateTime, Position: 500},
			{Name: "condition_end_date", Type: core.Date, Position: 600, Nullable: true},
			{Name: "condition_end_datetime", Type: core.DateTime, Position: 700, Nullable: true},
			{Name: "condition_type_concept_id", References: core.ConceptID, Position: 800},
			{Name: "stop_reason", Type: core.Varchar(20), Position: 900, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1000, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1100, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1200, Nullable: true},
			{Name: "condition_source_value", Type: core.Varchar(50), Position: 1300, Nullable: true},
			{Name: "condition_source_concept_id", References: core.ConceptID, Position: 1400},
			{Name: "condition_status_source_value", Type: core.Varchar(50), Position: 1500, Nullable: true},
			{Name: "condition_status_concept_id", References: core.ConceptID, Position: 1600},
		},
		Relationships: []core.Relationship{
			{Name: "condition_concept", Field: "condition_concept_id", Target: "Concept"},
			{Name: "condition_source_concept", Field: "condition_source_concept_id", Target: "Concept"},
			{Name: "condition_status_concept", Field: "condition_status_concept_id", Target: "Concept"},
			{Name: "condition_type_concept", Field: "condition_type_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "visit_detail", Field: "visit_detail_id", Target: "VisitDetail"},
			{Name: "visit_occurrence", Field: "visit_occurrence_id", Target: "VisitOccurrence"},
		},
	}
}

func drugExposure() core.Entity {
	return core.Entity{
		Name:   "DrugExposure",
		Table:  "drug_exposure",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "drug_exposure_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "drug_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "drug_exposure_start_date", Type: core.Date, Position: 400, Nullable: true},
			{Name: "drug_exposure_start_datetime", Type: core.DateTime, Position: 500},
			{Name: "drug_exposure_end_date", Type: core.Date, Position: 600, Nullable: true},
			{Name: "drug_exposure_end_datetime", Type: core.DateTime, Position: 700},
			{Name: "verbatim_end_date", Type: core.Date, Position: 800, Nullable: true},
			{Name: "drug_type_concept_id", References: core.ConceptID, Position: 900},
			{Name: "stop_reason", Type: core.Varchar(20), Position: 1000, Nullable: true},
			{Name: "refills", Type: core.Integer, Position: 1100, Nullable: true},
			{Name: "quantity", Type: core.Numeric, Position: 1200, Nullable: true},
			{Name: "days_supply", Type: core.Integer, Position: 1300, Nullable: true},
			{Name: "sig", Type: core.Text, Position: 1400, Nullable: true},
			{Name: "route_concept_id", References: core.ConceptID, Position: 1500},
			{Name: "lot_number", Type: core.Varchar(50), Position: 1600, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1700, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1800, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1900, Nullable: true},
			{Name: "drug_source_value", Type: core.Varchar(50), Position: 2000, Nullable: true},
			{Name: "drug_source_concept_id", References: core.ConceptID, Position: 2100},
			{Name: "route_source_value", Type: core.Varchar(50), Position: 2200, Nullable: true},
			{Name: "dose_unit_source_value", Type: core.Varchar(50), Position: 2300, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "drug_concept", Field: "drug_concept_id", Target: "Concept"},
			{Name: "drug_source_concept", Field: "drug_source_concept_id", Target: "Concept"},
			{Name: "drug_type_concept", Field: "drug_type_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "route_concept", Field: "route_concept_id", Target: "Concept"},
			{Name: "visit_detail", Field: "visit_detail_id", Target: "VisitDetail"},
			{Name: "visit_occurrence", Field: "visit_occurrence_id", Target: "VisitOccurrence"},
		},
	}
}

func procedureOccurrence() core.Entity {
	return core.Entity{
		Name:   "ProcedureOccurrence",
		Table:  "procedure_occurrence",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "procedure_occurrence_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "procedure_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "procedure_date", Type: core.Date, Position: 400, Nullable: true},
			{Name: "procedure_datetime", Type: core.DateTime, Position: 500},
			{Name: "procedure_type_concept_id", References: core.ConceptID, Position: 600},
			{Name: "modifier_concept_id", References: core.ConceptID, Position: 700},
			{Name: "quantity", Type: core.Integer, Position: 800, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 900, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1000, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1100, Nullable: true},
			{Name: "procedure_source_value", Type: core.Varchar(50), Position: 1200, Nullable: true},
			{Name: "procedure_source_concept_id", References: core.ConceptID, Position: 1300},
			{Name: "modifier_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "modifier_concept", Field: "modifier_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "procedure_concept", Field: "procedure_concept_id", Target: "Concept"},
			{Name: "procedure_source_concept", Field: "procedure_source_concept_id", Target: "Concept"},
			{Name: "procedure_type_concept", Field: "procedure_type_concept_id", Target: "Concept"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "visit_detail", Field: "visit_detail_id", Target: "VisitDetail"},
			{Name: "visit_occurrence", Field: "visit_occurrence_id", Target: "VisitOccurrence"},
		},
	}
}

func deviceExposure() core.Entity {
	return core.Entity{
		Name:   "DeviceExposure",
		Table:  "device_exposure",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "device_exposure_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "device_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "device_exposure_start_date", Type: core.Date, Position: 400, Nullable: true},
			{Name: "device_exposure_start_datetime", Type: core.DateTime, Position: 500},
			{Name: "device_exposure_end_date", Type: core.Date, Position: 600, Nullable: true},
			{Name: "device_exposure_end_datetime", Type: core.DateTime, Position: 700, Nullable: true},
			{Name: "device_type_concept_id", References: core.ConceptID, Position: 800},
			{Name: "unique_device_id", Type: core.Varchar(50), Position: 900, Nullable: true},
			{Name: "quantity", Type: core.Integer, Position: 1000, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1100, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1200, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1300, Nullable: true},
			{Name: "device_source_value", Type: core.Varchar(100), Position: 1400, Nullable: true},
			{Name: "device_source_concept_id", References: core.ConceptID, Position: 1500},
		},
		Relationships: []core.Relationship{
			{Name: "device_concept", Field: "device_concept_id", Target: "Concept"},
			{Name: "device_source_concept", Field: "device_source_concept_id", Target: "Concept"},
			{Name: "device_type_concept", Field: "device_type_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "visit_detail", Field: "visit_detail_id", Target: "VisitDetail"},
			{Name: "visit_occurrence", Field: "visit_occurrence_id", Target: "VisitOccurrence"},
		},
	}
}

func measurement() core.Entity {
	return core.Entity{
		Name:   "Measurement",
		Table:  "measurement",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "measurement_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "measurement_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "measurement_date", Type: core.Date, Position: 400, Nullable: true},
			{Name: "measurement_datetime", Type: core.DateTime, Position: 500},
			{Name: "measurement_time", Type: core.Varchar(10), Position: 600, Nullable: true},
			{Name: "measurement_type_concept_id", References: core.ConceptID, Position: 700},
			{Name: "operator_concept_id", References: core.ConceptID, Position: 800, Nullable: true},
			{Name: "value_as_number", Type: core.Numeric, Position: 900, Nullable: true},
			{Name: "value_as_concept_id", References: core.ConceptID, Position: 1000, Nullable: true},
			{Name: "unit_concept_id", References: core.ConceptID, Position: 1100, Nullable: true},
			{Name: "range_low", Type: core.Numeric, Position: 1200, Nullable: true},
			{Name: "range_high", Type: core.Numeric, Position: 1300, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1400, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1500, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1600, Nullable: true},
			{Name: "measurement_source_value", Type: core.Varchar(50), Position: 1700, Nullable: true},
			{Name: "measurement_source_concept_id", References: core.ConceptID, Position: 1800},
			{Name: "unit_source_value", Type: core.Varchar(50), Position: 1900, Nullable: true},
			{Name: "value_source_value", Type: core.Varchar(50), Position: 2000, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "measurement_concept", Field: "measurement_concept_id", Target: "Concept"},
			{Name: "measurement_source_concept", Field: "measurement_source_concept_id", Target: "Concept"},
			{Name: "measurement_type_concept", Field: "measurement_type_concept_id", Target: "Concept"},
			{Name: "operator_concept", Field: "operator_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "unit_concept", Field: "unit_concept_id", Target: "Concept"},
			{Name: "value_as_concept", Field: "value_as_concept_id", Target: "Concept"},
			{Name: "visit_detail", Field: "visit_detail_id", Target: "VisitDetail"},
			{Name: "visit_occurrence", Field: "visit_occurrence_id", Target: "VisitOccurrence"},
		},
	}
}

func observation() core.Entity {
	return core.Entity{
		Name:   "Observation",
		Table:  "observation",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "observation_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "observation_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "observation_date", Type: core.Date, Position: 400, Nullable: true},
			{Name: "observation_datetime", Type: core.DateTime, Position: 500},
			{Name: "observation_type_concept_id", References: core.ConceptID, Position: 600},
			{Name: "value_as_number", Type: core.Numeric, Position: 700, Nullable: true},
			{Name: "value_as_string", Type: core.Varchar(60), Position: 800, Nullable: true},
			{Name: "value_as_concept_id", References: core.ConceptID, Position: 900, Nullable: true},
			{Name: "value_as_datetime", Type: core.DateTime, Position: 1000, Nullable: true},
			{Name: "qualifier_concept_id", References: core.ConceptID, Position: 1100, Nullable: true},
			{Name: "unit_concept_id", References: core.ConceptID, Position: 1200, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1300, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1400, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1500, Nullable: true},
			{Name: "observation_source_value", Type: core.Varchar(50), Position: 1600, Nullable: true},
			{Name: "observation_source_concept_id", References: core.ConceptID, Position: 1700},
			{Name: "unit_source_value", Type: core.Varchar(50), Position: 1800, Nullable: true},
			{Name: "qualifier_source_value", Type: core.Varchar(50), Position: 1900, Nullable: true},
			{Name: "observation_event_id", Type: core.BigInteger, Position: 2000, Nullable: true},
			{Name: "obs_event_field_concept_id", References: core.ConceptID, Position: 2100},
		},
		Relationships: []core.Relationship{
			{Name: "obs_event_field_concept", Field: "obs_event_field_concept_id", Target: "Concept"},
			{Name: "observation_concept", Field: "observation_concept_id", Target: "Concept"},
			{Name: "observation_source_concept", Field: "observation_source_concept_id", Target: "Concept"},
			{Name: "observation_type_concept", Field: "observation_type_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "qualifier_concept", Field: "qualifier_concept_id", Target: "Concept"},
			{Name: "unit_concept", Field: "unit_concept_id", Target: "Concept"},
			{Name: "value_as_concept", Field: "value_as_concept_id", Target: "Concept"},
			{Name: "visit_detail", Field: "visit_detail_id", Target: "VisitDetail"},
			{Name: "visit_occurrence", Field: "visit_occurrence_id", Target: "VisitOccurrence"},
		},
	}
}

func note() core.Entity {
	return core.Entity{
		Name:   "Note",
		Table:  "note",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "note_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "note_event_id", Type: core.BigInteger, Position: 300, Nullable: true},
			{Name: "note_event_field_concept_id", Type: core.Integer, Position: 400},
			{Name: "note_date", Type: core.Date, Position: 500, Nullable: true},
			{Name: "note_datetime", Type: core.DateTime, Position: 600},
			{Name: "note_type_concept_id", References: core.ConceptID, Position: 700, Index: true},
			{Name: "note_class_concept_id", References: core.ConceptID, Position: 800},
			{Name: "note_title", Type: core.Varchar(250), Position: 900, Nullable: true},
			{Name: "note_text", Type: core.Text, Position: 1000},
			{Name: "encoding_concept_id", References: core.ConceptID, Position: 1100},
			{Name: "language_concept_id", References: core.ConceptID, Position: 1200},
			{Name: "provider_id", References: core.ProviderID, Position: 1300, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1400, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1500, Nullable: true},
			{Name: "note_source_value", Type: core.Varchar(50), Position: 1600, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "encoding_concept", Field: "encoding_concept_id", Target: "Concept"},
			{Name: "language_concept", Field: "language_concept_id", Target: "Concept"},
			{Name: "note_class_concept", Field: "note_class_concept_id", Target: "Concept"},
			{Name: "note_type_concept", Field: "note_type_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "visit_detail", Field: "visit_detail_id", Target: "VisitDetail"},
			{Name: "visit_occurrence", Field: "visit_occurrence_id", Target: "VisitOccurrence"},
		},
	}
}

func noteNlp() core.Entity {
	return core.Entity{
		Name:   "NoteNlp",
		Table:  "note_nlp",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "note_nlp_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "note_id", References: core.Ref(core.CDMSchema, "note", "note_id"), Position: 200, Index: true},
			{Name: "section_concept_id", References: core.ConceptID, Position: 300},
			{Name: "snippet", Type: core.Varchar(250), Position: 400, Nullable: true},
			{Name: "offset", Type: core.Varchar(250), Position: 500, Nullable: true},
			{Name: "lexical_variant", Type: core.Varchar(250), Position: 600},
			{Name: "note_nlp_concept_id", References: core.ConceptID, Position: 700, Index: true},
			{Name: "nlp_system", Type: core.Varchar(250), Position: 800, Nullable: true},
			{Name: "nlp_date", Type: core.Date, Position: 900},
			{Name: "nlp_datetime", Type: core.DateTime, Position: 1000, Nullable: true},
			{Name: "term_exists", Type: core.Varchar(1), Position: 1100, Nullable: true},
			{Name: "term_temporal", Type: core.Varchar(50), Position: 1200, Nullable: true},
			{Name: "term_modifiers", Type: core.Varchar(2000), Position: 1300, Nullable: true},
			{Name: "note_nlp_source_concept_id", References: core.ConceptID, Position: 1400},
		},
		Relationships: []core.Relationship{
			{Name: "note", Field: "note_id", Target: "Note"},
			{Name: "note_nlp_concept", Field: "note_nlp_concept_id", Target: "Concept"},
			{Name: "note_nlp_source_concept", Field: "note_nlp_source_concept_id", Target: "Concept"},
			{Name: "section_concept", Field: "section_concept_id", Target: "Concept"},
		},
	}
}

func specimen() core.Entity {
	return core.Entity{
		Name:   "Specimen",
		Table:  "specimen",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "specimen_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "specimen_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "specimen_type_concept_id", References: core.ConceptID, Position: 400},
			{Name: "specimen_date", Type: core.Date, Position: 500, Nullable: true},
			{Name: "specimen_datetime", Type: core.DateTime, Position: 600},
			{Name: "quantity", Type: core.Numeric, Position: 700, Nullable: true},
			{Name: "unit_concept_id", References: core.ConceptID, Position: 800, Nullable: true},
			{Name: "anatomic_site_concept_id", References: core.ConceptID, Position: 900},
			{Name: "disease_status_concept_id", References: core.ConceptID, Position: 1000},
			{Name: "specimen_source_id", Type: core.Varchar(50), Position: 1100, Nullable: true},
			{Name: "specimen_source_value", Type: core.Varchar(50), Position: 1200, Nullable: true},
			{Name: "unit_source_value", Type: core.Varchar(50), Position: 1300, Nullable: true},
			{Name: "anatomic_site_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "disease_status_source_value", Type: core.Varchar(50), Position: 1500, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "anatomic_site_concept", Field: "anatomic_site_concept_id", Target: "Concept"},
			{Name: "disease_status_concept", Field: "disease_status_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "specimen_concept", Field: "specimen_concept_id", Target: "Concept"},
			{Name: "specimen_type_concept", Field: "specimen_type_concept_id", Target: "Concept"},
			{Name: "unit_concept", Field: "unit_concept_id", Target: "Concept"},
		},
	}
}

func factRelationship() core.Entity {
	return core.Entity{
		Name:   "FactRelationship",
		Table:  "fact_relationship",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "fact_relationship_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "domain_concept_id_1", References: core.ConceptID, Position: 200, Index: true},
			{Name: "fact_id_1", Type: core.Integer, Position: 300},
			{Name: "domain_concept_id_2", References: core.ConceptID, Position: 400, Index: true},
			{Name: "fact_id_2", Type: core.Integer, Position: 500},
			{Name: "relationship_concept_id", References: core.ConceptID, Position: 600, Index: true},
		},
		Relationships: []core.Relationship{
			{Name: "domain_concept_1", Field: "domain_concept_id_1", Target: "Concept"},
			{Name: "domain_concept_2", Field: "domain_concept_id_2", Target: "Concept"},
			{Name: "relationship_concept", Field: "relationship_concept_id", Target: "Concept"},
		},
	}
}

func surveyConduct() core.Entity {
	return core.Entity{
		Name:   "SurveyConduct",
		Table:  "survey_conduct",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "survey_conduct_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "survey_concept_id", References: core.ConceptID, Position: 300},
			{Name: "survey_start_date", Type: core.Date, Position: 400, Nullable: true},
			{Name: "survey_start_datetime", Type: core.DateTime, Position: 500, Nullable: true},
			{Name: "survey_end_date", Type: core.Date, Position: 600, Nullable: true},
			{Name: "survey_end_datetime", Type: core.DateTime, Position: 700},
			{Name: "provider_id", References: core.ProviderID, Position: 800, Nullable: true},
			{Name: "assisted_concept_id", References: core.ConceptID, Position: 900},
			{Name: "respondent_type_concept_id", References: core.ConceptID, Position: 1000},
			{Name: "timing_concept_id", References: core.ConceptID, Position: 1100},
			{Name: "collection_method_concept_id", References: core.ConceptID, Position: 1200},
			{Name: "assisted_source_value", Type: core.Varchar(50), Position: 1300, Nullable: true},
			{Name: "respondent_type_source_value", Type: core.Varchar(100), Position: 1400, Nullable: true},
			{Name: "timing_source_value", Type: core.Varchar(100), Position: 1500, Nullable: true},
			{Name: "collection_method_source_value", Type: core.Varchar(100), Position: 1600, Nullable: true},
			{Name: "survey_source_value", Type: core.Varchar(100), Position: 1700, Nullable: true},
			{Name: "survey_source_concept_id", References: core.ConceptID, Position: 1800},
			{Name: "survey_source_identifier", Type: core.Varchar(100), Position: 1900, Nullable: true},
			{Name: "validated_survey_concept_id", References: core.ConceptID, Position: 2000},
			{Name: "validated_survey_source_value", Type: core.Varchar(100), Position: 2100, Nullable: true},
			{Name: "survey_version_number", Type: core.Varchar(20), Position: 2200, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 2300, Nullable: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 2400, Nullable: true},
			{Name: "response_visit_occurrence_id", References: core.VisitOccurrenceID, Position: 2500, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "assisted_concept", Field: "assisted_concept_id", Target: "Concept"},
			{Name: "collection_method_concept", Field: "collection_method_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "respondent_type_concept", Field: "respondent_type_concept_id", Target: "Concept"},
			{Name: "response_visit_occurrence", Field: "response_visit_occurrence_id", Target: "VisitOccurrence"},
			{Name: "survey_concept", Field: "survey_concept_id", Target: "Concept"},
			{Name: "survey_source_concept", Field: "survey_source_concept_id", Target: "Concept"},
			{Name: "timing_concept", Field: "timing_concept_id", Target: "Concept"},
			{Name: "validated_survey_concept", Field: "validated_survey_concept_id", Target: "Concept"},
			{Name: "visit_detail", Field: "visit_detail_id", Target: "VisitDetail"},
			{Name: "visit_occurrence", Field: "visit_occurrence_id", Target: "VisitOccurrence"},
		},
	}
}
