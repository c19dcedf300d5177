// Package examples shows how a site customizes a release with an overlay.
package examples

import (
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	"github.com/leapstack-labs/omopcdm/pkg/catalog/cdm54"
	"github.com/leapstack-labs/omopcdm/pkg/compose"
	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// CustomName is the registered name of the customized 5.4 catalog.
const CustomName = cdm54.Version + "+custom"

func init() {
	catalog.Register(catalog.Definition{
		Name:        CustomName,
		Description: "OMOP CDM 5.4 with BIGINT person ids, extra death columns and a cloudspine table",
		Base:        cdm54.Catalog,
		Overlays:    func() []compose.Overlay { return []compose.Overlay{Custom()} },
	})
}

// Custom widens person.person_id to BIGINT, adds two columns to death around
// the inherited ones and adds the cloudspine table.
func Custom() compose.Overlay {
	return compose.NewOverlay("custom",
		compose.ReplaceField{Entity: "Person", Field: core.Field{
			Name: "person_id", Type: core.BigInteger, Position: 100, PrimaryKey: true, Index: true,
		}},
		compose.InsertField{Entity: "Death", Field: core.Field{
			Name: "new_field_1", Type: core.Text, Position: 150, Nullable: true,
		}},
		compose.InsertField{Entity: "Death", Field: core.Field{
			Name: "new_field_2", Type: core.Text, Position: 10000, Nullable: true,
		}},
		compose.AddEntity{Entity: cloudSpine()},
	)
}

func cloudSpine() core.Entity {
	return core.Entity{
		Name:   "CloudSpine",
		Table:  "cloudspine",
		Schema: core.CDMSchema,
		Fields: []core.Field{
			{Name: "cloud_id", Type: core.BigInteger, Position: 100, PrimaryKey: true},
			{Name: "person_id", References: core.PersonID, OnDelete: core.OnDeleteCascade, Position: 200, Index: true},
		},
		Relationships: []core.Relationship{
			{Name: "person", Field: "person_id", Target: "Person"},
		},
	}
}
