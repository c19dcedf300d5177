// Package legacy provides the cohort tables that CDM 5.4 moved out of the
// standard model (cohort, cohort_definition, cohort_attribute,
// attribute_definition) as an overlay.
package legacy

import (
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	"github.com/leapstack-labs/omopcdm/pkg/catalog/cdm54"
	"github.com/leapstack-labs/omopcdm/pkg/compose"
	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// Name is the registered catalog name.
const Name = cdm54.Version + "+legacy"

func init() {
	catalog.Register(catalog.Definition{
		Name:        Name,
		Description: "OMOP CDM 5.4 with the legacy cohort tables",
		Base:        cdm54.Catalog,
		Overlays:    func() []compose.Overlay { return []compose.Overlay{Overlay()} },
	})
}

// Entities returns fresh copies of the legacy entities.
func Entities() []core.Entity {
	return []core.Entity{cohortDefinition(), attributeDefinition(), cohort(), cohortAttribute()}
}

// Overlay adds the legacy entities to a base catalog.
func Overlay() compose.Overlay {
	ov := compose.Overlay{Name: "legacy"}
	for _, e := range Entities() {
		ov.Ops = append(ov.Ops, compose.AddEntity{Entity: e})
	}
	return ov
}
