package cdm54

import "github.com/leapstack-labs/omopcdm/pkg/core"

func person() core.Entity {
	return core.Entity{
		Name:   "Person",
		Table:  "person",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "person_id", Type: core.Integer, Position: 100, PrimaryKey: true, Index: true},
			{Name: "gender_concept_id", References: core.ConceptID, Position: 200, Index: true},
			{Name: "year_of_birth", Type: core.Integer, Position: 300},
			{Name: "month_of_birth", Type: core.Integer, Position: 400, Nullable: true},
			{Name: "day_of_birth", Type: core.Integer, Position: 500, Nullable: true},
			{Name: "birth_datetime", Type: core.DateTime, Position: 600, Nullable: true},
			{Name: "race_concept_id", References: core.ConceptID, Position: 700},
			{Name: "ethnicity_concept_id", References: core.ConceptID, Position: 800},
			{Name: "location_id", References: core.LocationID, Position: 900, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1000, Nullable: true},
			{Name: "care_site_id", References: core.CareSiteID, Position: 1100, Nullable: true},
			{Name: "person_source_value", Type: core.Varchar(50), Position: 1200, Nullable: true},
			{Name: "gender_source_value", Type: core.Varchar(50), Position: 1300, Nullable: true},
			{Name: "gender_source_concept_id", References: core.ConceptID, Position: 1400, Nullable: true},
			{Name: "race_source_value", Type: core.Varchar(50), Position: 1500, Nullable: true},
			{Name: "race_source_concept_id", References: core.ConceptID, Position: 1600, Nullable: true},
			{Name: "ethnicity_source_value", Type: core.Varchar(50), Position: 1700, Nullable: true},
			{Name: "ethnicity_source_concept_id", References: core.ConceptID, Position: 1800, Nullable: true},
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
			{Name: "observation_period_id", Type: core.Integer, Position: 100, PrimaryKey: true},
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
			{Name: "visit_occurrence_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "visit_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "visit_start_date", Type: core.Date, Position: 400},
			{Name: "visit_start_datetime", Type: core.DateTime, Position: 500, Nullable: true},
			{Name: "visit_end_date", Type: core.Date, Position: 600},
			{Name: "visit_end_datetime", Type: core.DateTime, Position: 700, Nullable: true},
			{Name: "visit_type_concept_id", References: core.ConceptID, Position: 800},
			{Name: "provider_id", References: core.ProviderID, Position: 900, Nullable: true},
			{Name: "care_site_id", References: core.CareSiteID, Position: 1000, Nullable: true},
			{Name: "visit_source_value", Type: core.Varchar(50), Position: 1100, Nullable: true},
			{Name: "visit_source_concept_id", References: core.ConceptID, Position: 1200, Nullable: true},
			{Name: "admitted_from_concept_id", References: core.ConceptID, Position: 1300, Nullable: true},
			{Name: "admitted_from_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "discharged_to_concept_id", References: core.ConceptID, Position: 1500, Nullable: true},
			{Name: "discharged_to_source_value", Type: core.Varchar(50), Position: 1600, Nullable: true},
			{Name: "preceding_visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1700, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "admitted_from_concept", Field: "admitted_from_concept_id", Target: "Concept"},
			{Name: "care_site", Field: "care_site_id", Target: "CareSite"},
			{Name: "discharged_to_concept", Field: "discharged_to_concept_id", Target: "Concept"},
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
			{Name: "visit_detail_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "visit_detail_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "visit_detail_start_date", Type: core.Date, Position: 400},
			{Name: "visit_detail_start_datetime", Type: core.DateTime, Position: 500, Nullable: true},
			{Name: "visit_detail_end_date", Type: core.Date, Position: 600},
			{Name: "visit_detail_end_datetime", Type: core.DateTime, Position: 700, Nullable: true},
			{Name: "visit_detail_type_concept_id", References: core.ConceptID, Position: 800},
			{Name: "provider_id", References: core.ProviderID, Position: 900, Nullable: true},
			{Name: "care_site_id", References: core.CareSiteID, Position: 1000, Nullable: true},
			{Name: "visit_detail_source_value", Type: core.Varchar(50), Position: 1100, Nullable: true},
			{Name: "visit_detail_source_concept_id", References: core.ConceptID, Position: 1200, Nullable: true},
			{Name: "admitted_from_concept_id", References: core.ConceptID, Position: 1300, Nullable: true},
			{Name: "admitted_from_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "discharged_to_source_value", Type: core.Varchar(50), Position: 1500, Nullable: true},
			{Name: "discharged_to_concept_id", References: core.ConceptID, Position: 1600, Nullable: true},
			{Name: "preceding_visit_detail_id", References: core.VisitDetailID, Position: 1700, Nullable: true},
			{Name: "parent_visit_detail_id", References: core.VisitDetailID, Position: 1800, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1900, Index: true},
		},
		Relationships: []core.Relationship{
			{Name: "admitted_from_concept", Field: "admitted_from_concept_id", Target: "Concept"},
			{Name: "care_site", Field: "care_site_id", Target: "CareSite"},
			{Name: "discharged_to_concept", Field: "discharged_to_concept_id", Target: "Concept"},
			{Name: "parent_visit_detail", Field: "parent_visit_detail_id", Target: "VisitDetail"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "preceding_visit_detail", Field: "preceding_visit_detail_id", Target: "VisitDetail"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "visit_detail_concept", Field: "visit_detail_concept_id", Target: "Concept"},
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
			{Name: "condition_occurrence_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "condition_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "condition_start_date", Type: core.Date, Position: 400},
			{Name: "condition_start_datetime", Type: core.DateTime, Position: 500, Nullable: true},
			{Name: "condition_end_date", Type: core.Date, Position: 600, Nullable: true},
			{Name: "condition_end_datetime", Type: core.DateTime, Position: 700, Nullable: true},
			{Name: "condition_type_concept_id", References: core.ConceptID, Position: 800},
			{Name: "condition_status_concept_id", References: core.ConceptID, Position: 900, Nullable: true},
			{Name: "stop_reason", Type: core.Varchar(20), Position: 1000, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1100, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1200, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1300, Nullable: true},
			{Name: "condition_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "condition_source_concept_id", References: core.ConceptID, Position: 1500, Nullable: true},
			{Name: "condition_status_source_value", Type: core.Varchar(50), Position: 1600, Nullable: true},
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
			{Name: "drug_exposure_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "drug_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "drug_exposure_start_date", Type: core.Date, Position: 400},
			{Name: "drug_exposure_start_datetime", Type: core.DateTime, Position: 500, Nullable: true},
			{Name: "drug_exposure_end_date", Type: core.Date, Position: 600},
			{Name: "drug_exposure_end_datetime", Type: core.DateTime, Position: 700, Nullable: true},
			{Name: "verbatim_end_date", Type: core.Date, Position: 800, Nullable: true},
			{Name: "drug_type_concept_id", References: core.ConceptID, Position: 900},
			{Name: "stop_reason", Type: core.Varchar(20), Position: 1000, Nullable: true},
			{Name: "refills", Type: core.Integer, Position: 1100, Nullable: true},
			{Name: "quantity", Type: core.Numeric, Position: 1200, Nullable: true},
			{Name: "days_supply", Type: core.Integer, Position: 1300, Nullable: true},
			{Name: "sig", Type: core.Text, Position: 1400, Nullable: true},
			{Name: "route_concept_id", References: core.ConceptID, Position: 1500, Nullable: true},
			{Name: "lot_number", Type: core.Varchar(50), Position: 1600, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1700, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1800, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1900, Nullable: true},
			{Name: "drug_source_value", Type: core.Varchar(50), Position: 2000, Nullable: true},
			{Name: "drug_source_concept_id", References: core.ConceptID, Position: 2100, Nullable: true},
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
			{Name: "procedure_occurrence_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "procedure_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "procedure_date", Type: core.Date, Position: 400},
			{Name: "procedure_datetime", Type: core.DateTime, Position: 500, Nullable: true},
			{Name: "procedure_end_date", Type: core.Date, Position: 600, Nullable: true},
			{Name: "procedure_end_datetime", Type: core.DateTime, Position: 700, Nullable: true},
			{Name: "procedure_type_concept_id", References: core.ConceptID, Position: 800},
			{Name: "modifier_concept_id", References: core.ConceptID, Position: 900, Nullable: true},
			{Name: "quantity", Type: core.Integer, Position: 1000, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1100, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1200, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1300, Nullable: true},
			{Name: "procedure_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "procedure_source_concept_id", References: core.ConceptID, Position: 1500, Nullable: true},
			{Name: "modifier_source_value", Type: core.Varchar(50), Position: 1600, Nullable: true},
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
			{Name: "device_exposure_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "device_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "device_exposure_start_date", Type: core.Date, Position: 400},
			{Name: "device_exposure_start_datetime", Type: core.DateTime, Position: 500, Nullable: true},
			{Name: "device_exposure_end_date", Type: core.Date, Position: 600, Nullable: true},
			{Name: "device_exposure_end_datetime", Type: core.DateTime, Position: 700, Nullable: true},
			{Name: "device_type_concept_id", References: core.ConceptID, Position: 800},
			{Name: "unique_device_id", Type: core.Varchar(255), Position: 900, Nullable: true},
			{Name: "production_id", Type: core.Varchar(255), Position: 1000, Nullable: true},
			{Name: "quantity", Type: core.Integer, Position: 1100, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1200, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1300, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1400, Nullable: true},
			{Name: "device_source_value", Type: core.Varchar(50), Position: 1500, Nullable: true},
			{Name: "device_source_concept_id", References: core.ConceptID, Position: 1600, Nullable: true},
			{Name: "unit_concept_id", References: core.ConceptID, Position: 1700, Nullable: true},
			{Name: "unit_source_value", Type: core.Varchar(50), Position: 1800, Nullable: true},
			{Name: "unit_source_concept_id", References: core.ConceptID, Position: 1900, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "device_concept", Field: "device_concept_id", Target: "Concept"},
			{Name: "device_source_concept", Field: "device_source_concept_id", Target: "Concept"},
			{Name: "device_type_concept", Field: "device_type_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "unit_concept", Field: "unit_concept_id", Target: "Concept"},
			{Name: "unit_source_concept", Field: "unit_source_concept_id", Target: "Concept"},
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
			{Name: "measurement_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "measurement_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "measurement_date", Type: core.Date, Position: 400},
			{Name: "measurement_datetime", Type: core.DateTime, Position: 500, Nullable: true},
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
			{Name: "measurement_source_concept_id", References: core.ConceptID, Position: 1800, Nullable: true},
			{Name: "unit_source_value", Type: core.Varchar(50), Position: 1900, Nullable: true},
			{Name: "unit_source_concept_id", References: core.ConceptID, Position: 2000, Nullable: true},
			{Name: "value_source_value", Type: core.Varchar(50), Position: 2100, Nullable: true},
			{Name: "measurement_event_id", Type: core.BigInteger, Position: 2200, Nullable: true},
			{Name: "meas_event_field_concept_id", References: core.ConceptID, Position: 2300, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "meas_event_field_concept", Field: "meas_event_field_concept_id", Target: "Concept"},
			{Name: "measurement_concept", Field: "measurement_concept_id", Target: "Concept"},
			{Name: "measurement_source_concept", Field: "measurement_source_concept_id", Target: "Concept"},
			{Name: "measurement_type_concept", Field: "measurement_type_concept_id", Target: "Concept"},
			{Name: "operator_concept", Field: "operator_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
			{Name: "provider", Field: "provider_id", Target: "Provider"},
			{Name: "unit_concept", Field: "unit_concept_id", Target: "Concept"},
			{Name: "unit_source_concept", Field: "unit_source_concept_id", Target: "Concept"},
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
			{Name: "observation_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "observation_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "observation_date", Type: core.Date, Position: 400},
			{Name: "observation_datetime", Type: core.DateTime, Position: 500, Nullable: true},
			{Name: "observation_type_concept_id", References: core.ConceptID, Position: 600},
			{Name: "value_as_number", Type: core.Numeric, Position: 700, Nullable: true},
			{Name: "value_as_string", Type: core.Varchar(60), Position: 800, Nullable: true},
			{Name: "value_as_concept_id", References: core.ConceptID, Position: 900, Nullable: true},
			{Name: "qualifier_concept_id", References: core.ConceptID, Position: 1000, Nullable: true},
			{Name: "unit_concept_id", References: core.ConceptID, Position: 1100, Nullable: true},
			{Name: "provider_id", References: core.ProviderID, Position: 1200, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1300, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1400, Nullable: true},
			{Name: "observation_source_value", Type: core.Varchar(50), Position: 1500, Nullable: true},
			{Name: "observation_source_concept_id", References: core.ConceptID, Position: 1600, Nullable: true},
			{Name: "unit_source_value", Type: core.Varchar(50), Position: 1700, Nullable: true},
			{Name: "qualifier_source_value", Type: core.Varchar(50), Position: 1800, Nullable: true},
			{Name: "value_source_value", Type: core.Varchar(50), Position: 1900, Nullable: true},
			{Name: "observation_event_id", Type: core.BigInteger, Position: 2000, Nullable: true},
			{Name: "obs_event_field_concept_id", References: core.ConceptID, Position: 2100, Nullable: true},
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

func death() core.Entity {
	return core.Entity{
		Name:   "Death",
		Table:  "death",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "person_id", References: core.PersonID, Position: 100, PrimaryKey: true, Index: true},
			{Name: "death_date", Type: core.Date, Position: 200},
			{Name: "death_datetime", Type: core.DateTime, Position: 300, Nullable: true},
			{Name: "death_type_concept_id", References: core.ConceptID, Position: 400, Nullable: true},
			{Name: "cause_concept_id", References: core.ConceptID, Position: 500, Nullable: true},
			{Name: "cause_source_value", Type: core.Varchar(50), Position: 600, Nullable: true},
			{Name: "cause_source_concept_id", References: core.ConceptID, Position: 700, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "cause_concept", Field: "cause_concept_id", Target: "Concept"},
			{Name: "cause_source_concept", Field: "cause_source_concept_id", Target: "Concept"},
			{Name: "death_type_concept", Field: "death_type_concept_id", Target: "Concept"},
			{Name: "person", Field: "person_id", Target: "Person"},
		},
	}
}

func note() core.Entity {
	return core.Entity{
		Name:   "Note",
		Table:  "note",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "note_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "note_date", Type: core.Date, Position: 300},
			{Name: "note_datetime", Type: core.DateTime, Position: 400, Nullable: true},
			{Name: "note_type_concept_id", References: core.ConceptID, Position: 500, Index: true},
			{Name: "note_class_concept_id", References: core.ConceptID, Position: 600},
			{Name: "note_title", Type: core.Varchar(250), Position: 700, Nullable: true},
			{Name: "note_text", Type: core.Text, Position: 800},
			{Name: "encoding_concept_id", References: core.ConceptID, Position: 900},
			{Name: "language_concept_id", References: core.ConceptID, Position: 1000},
			{Name: "provider_id", References: core.ProviderID, Position: 1100, Nullable: true},
			{Name: "visit_occurrence_id", References: core.VisitOccurrenceID, Position: 1200, Nullable: true, Index: true},
			{Name: "visit_detail_id", References: core.VisitDetailID, Position: 1300, Nullable: true},
			{Name: "note_source_value", Type: core.Varchar(50), Position: 1400, Nullable: true},
			{Name: "note_event_id", Type: core.BigInteger, Position: 1500, Nullable: true},
			{Name: "note_event_field_concept_id", References: core.ConceptID, Position: 1600, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "encoding_concept", Field: "encoding_concept_id", Target: "Concept"},
			{Name: "language_concept", Field: "language_concept_id", Target: "Concept"},
			{Name: "note_class_concept", Field: "note_class_concept_id", Target: "Concept"},
			{Name: "note_event_field_concept", Field: "note_event_field_concept_id", Target: "Concept"},
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
			{Name: "note_nlp_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "note_id", Type: core.Integer, Position: 200, Index: true},
			{Name: "section_concept_id", References: core.ConceptID, Position: 300, Nullable: true},
			{Name: "snippet", Type: core.Varchar(250), Position: 400, Nullable: true},
			{Name: "offset", Type: core.Varchar(50), Position: 500, Nullable: true},
			{Name: "lexical_variant", Type: core.Varchar(250), Position: 600},
			{Name: "note_nlp_concept_id", References: core.ConceptID, Position: 700, Nullable: true, Index: true},
			{Name: "note_nlp_source_concept_id", References: core.ConceptID, Position: 800, Nullable: true},
			{Name: "nlp_system", Type: core.Varchar(250), Position: 900, Nullable: true},
			{Name: "nlp_date", Type: core.Date, Position: 1000},
			{Name: "nlp_datetime", Type: core.DateTime, Position: 1100, Nullable: true},
			{Name: "term_exists", Type: core.Varchar(1), Position: 1200, Nullable: true},
			{Name: "term_temporal", Type: core.Varchar(50), Position: 1300, Nullable: true},
			{Name: "term_modifiers", Type: core.Varchar(2000), Position: 1400, Nullable: true},
		},
		Relationships: []core.Relationship{
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
			{Name: "specimen_id", Type: core.Integer, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, Position: 200, Index: true},
			{Name: "specimen_concept_id", References: core.ConceptID, Position: 300, Index: true},
			{Name: "specimen_type_concept_id", References: core.ConceptID, Position: 400},
			{Name: "specimen_date", Type: core.Date, Position: 500},
			{Name: "specimen_datetime", Type: core.DateTime, Position: 600, Nullable: true},
			{Name: "quantity", Type: core.Numeric, Position: 700, Nullable: true},
			{Name: "unit_concept_id", References: core.ConceptID, Position: 800, Nullable: true},
			{Name: "anatomic_site_concept_id", References: core.ConceptID, Position: 900, Nullable: true},
			{Name: "disease_status_concept_id", References: core.ConceptID, Position: 1000, Nullable: true},
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
			{Name: "domain_concept_id_1", References: core.ConceptID, Position: 100, PrimaryKey: true, Index: true},
			{Name: "fact_id_1", Type: core.Integer, Position: 200, PrimaryKey: true},
			{Name: "domain_concept_id_2", References: core.ConceptID, Position: 300, PrimaryKey: true, Index: true},
			{Name: "fact_id_2", Type: core.Integer, Position: 400, PrimaryKey: true},
			{Name: "relationship_concept_id", References: core.ConceptID, Position: 500, PrimaryKey: true, Index: true},
		},
		Relationships: []core.Relationship{
			{Name: "domain_concept_1", Field: "domain_concept_id_1", Target: "Concept"},
			{Name: "domain_concept_2", Field: "domain_concept_id_2", Target: "Concept"},
			{Name: "relationship_concept", Field: "relationship_concept_id", Target: "Concept"},
		},
	}
}
