package cdm531

import "github.com/leapstack-labs/omopcdm/pkg/core"

func location() core.Entity {
	return core.Entity{
		Name:   "Location",
		Table:  "location",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "location_id", Type: core.Integer, Position: 100, PrimaryKey: true, Index: true},
			{Name: "address_1", Type: core.Varchar(50), Position: 200, Nullable: true},
			{Name: "address_2", Type: core.Varchar(50), Position: 300, Nullable: true},
			{Name: "city", Type: core.Varchar(50), Position: 400, Nullable: true},
			{Name: "state", Type: core.Varchar(2), Position: 500, Nullable: true},
			{Name: "zip", Type: core.Varchar(9), Position: 600, Nullable: true},
			{Name: "county", Type: core.Varchar(20), Position: 700, Nullable: true},
			{Name: "location_source_value", Type: core.Varchar(50), Position: 800, Nullable: true},
		},
	}
}

func careSite() core.Entity {
	return core.Entity{
		Name:   "CareSite",
		Table:  "care_site",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "care_site_id", Type: core.Integer, Position: 100, PrimaryKey: true, Index: true},
			{Name: "care_site_name", Type: core.Varchar(255), Position: 200, Nullable: true},
			{Name: "place_of_service_concept_id", References: core.ConceptID, Position: 300, Nullable: true},
			{Name: "location_id", References: core.LocationID, Position: 400, Nullable: true},
			{Name: "care_site_source_value", Type: core.Varchar(50), Position: 500, Nullable: true},
			{Name: "place_of_service_source_value", Type: core.Varchar(50), Position: 600, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "location", Field: "location_id", Target: "Location"},
			{Name: "place_of_service_concept", Field: "place_of_service_concept_id", Target: "Concept"},
		},
	}
}

func provider() core.Entity {
	return core.Entity{
		Name:   "Provider",
		Table:  "provider",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "provider_id", Type: core.Integer, Position: 100, PrimaryKey: true, Index: true},
			{Name: "provider_name", Type: core.Varchar(255), Position: 200, Nullable: true},
			{Name: "npi", Type: core.Varchar(20), Position: 300, Nullable: true},
			{Name: "dea", Type: core.Varchar(20), Position: 400, Nullable: true},
			{Name: "specialty_concept_id", References: core.ConceptID, Position: 500, Nullable: true},
			{Name: "care_site_id", References: core.CareSiteID, Position: 600, Nullable: true},
			{Name: "year_of_birth", Type: core.Integer, Position: 700, Nullable: true},
			{Name: "gender_concept_id", References: core.ConceptID, Position: 800, Nullable: true},
			{Name: "provider_source_value", Type: core.Varchar(50), Position: 900, Nullable: true},
			{Name: "specialty_source_value", Type: core.Varchar(50), Position: 1000, Nullable: true},
			{Name: "specialty_source_concept_id", References: core.ConceptID, Position: 1100, Nullable: true},
			{Name: "gender_source_value", Type: core.Varchar(50), Position: 1200, Nullable: true},
			{Name: "gender_source_concept_id", References: core.ConceptID, Position: 1300, Nullable: true},
		},
		Relationships: []core.Relationship{
			{Name: "care_site", Field: "care_site_id", Target: "CareSite"},
			{Name: "gender_concept", Field: "gender_concept_id", Target: "Concept"},
			{Name: "gender_source_concept", Field: "gender_source_concept_id", Target: "Concept"},
			{Name: "specialty_concept", Field: "specialty_concept_id", Target: "Concept"},
			{Name: "specialty_source_concept", Field: "specialty_source_concept_id", Target: "Concept"},
		},
	}
}
