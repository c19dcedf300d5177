// Package cdm54 defines the OMOP Common Data Model 5.4 entity catalog.
//
// Vocabulary tables are placed in the vocabulary_schema placeholder, every
// other table in cdm_schema.
package cdm54

import (
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	"github.com/leapstack-labs/omopcdm/pkg/compose"
	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// Version is the CDM release label.
const Version = "5.4"

func init() {
	catalog.Register(catalog.Definition{
		Name:        Version,
		Description: "OMOP CDM 5.4",
		Base:        Catalog,
	})
	catalog.Register(catalog.Definition{
		Name:        Version + "+extras",
		Description: "OMOP CDM 5.4 with stem_table and source_to_concept_map_version",
		Base:        Catalog,
		Overlays:    func() []compose.Overlay { return []compose.Overlay{Extras()} },
	})
}

// Catalog returns a fresh copy of the OMOP CDM 5.4 entity definitions.
func Catalog() *core.Catalog {
	return &core.Catalog{
		Name:    "cdm54",
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
			drugEra(), doseEra(), conditionEra(), episode(), episodeEvent(),
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
