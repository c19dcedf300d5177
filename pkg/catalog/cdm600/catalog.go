// Package cdm600 defines the OMOP Common Data Model 6.0.0 entity catalog.
//
// 6.0 has no standalone death table; person.death_datetime carries it.
package cdm600

import (
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	"github.com/leapstack-labs/omopcdm/pkg/compose"
	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// Version is the CDM release label.
const Version = "6.0.0"

func init() {
	catalog.Register(catalog.Definition{
		Name:        Version,
		Description: "OMOP CDM 6.0.0",
		Base:        Catalog,
	})
	catalog.Register(catalog.Definition{
		Name:        Version + "+extras",
		Description: "OMOP CDM 6.0.0 with stem_table and source_to_concept_map_version",
		Base:        Catalog,
		Overlays:    func() []compose.Overlay { return []compose.Overlay{Extras()} },
	})
}

// Catalog returns a fresh copy of the OMOP CDM 6.0.0 entity definitions.
func Catalog() *core.Catalog {
	return &core.Catalog{
		Name:    "cdm600",
		Version: Version,
		Entities: []core.Entity{
			// Standardized vocabularies
			concept(), conceptClass(), domain(), vocabulary(), conceptAncestor(), conceptSynonym(), drugStrength(), relationship(), conceptRelationship(), sourceToConceptMap(),
			// Health system
			location(), locationHistory(), careSite(), provider(),
			// Clinical data
			person(), observationPeriod(), visitOccurrence(), visitDetail(), conditionOccurrence(), drugExposure(), procedureOccurrence(), deviceExposure(), measurement(), observation(), note(), noteNlp(), specimen(), factRelationship(), surveyConduct(),
			// Health economics
			payerPlanPeriod(), cost(),
			// Derived elements
			drugEra(), doseEra(), conditionEra(),
			// Metadata
			cdmSource(), metadata(),
		},
	}
}

// Extras adds the helper tables that are not part of the official table set.
func Extras() compose.Overlay {
	return compose.NewOverlay("extras",
		compose.AddEntity{Entity: StemTable()},
		compose.AddEntity{Entity: SourceToConceptMapVersion()},
	)
}
