// Package cdm531 defines the OMOP Common Data Model 5.3.1 entity catalog.
package cdm531

import (
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	"github.com/leapstack-labs/omopcdm/pkg/compose"
	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// Version is the CDM release label.
const Version = "5.3.1"

func init() {
	catalog.Register(catalog.Definition{
		Name:        Version,
		Description: "OMOP CDM 5.3.1",
		Base:        Catalog,
	})
	catalog.Register(catalog.Definition{
		Name:        Version + "+extras",
		Description: "OMOP CDM 5.3.1 with stem_table and source_to_concept_map_version",
		Base:        Catalog,
		Overlays:    func() []compose.Overlay { return []compose.Overlay{Extras()} },
	})
}

// Catalog returns a fresh copy of the OMOP CDM 5.3.1 entity definitions.
func Catalog() *core.Catalog {
	return &core.Catalog{
		Name:    "cdm531",
		Version: Version,
		Entities: []core.Entity{
			// Standardized vocabularies
			concept(), conceptClass(), domain(), vocabulary(), conceptAncestor(), conceptSynonym(), drugStrength(), relationship(), conceptRelationship(), sourceToConceptMap(),
			// Health system
			location(), careSite(), provider(),
			// Clinical data
			person(), observationPeriod(), visitOccurrence(), visitDetail(), conditionOccurrence(), drugExposure(), procedureOccurrence(), deviceExposure(), measurement(), observation(), death(), note(), noteNlp(), specimen(), factRelationship(),
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
