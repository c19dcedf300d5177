// Package all registers every bundled catalog. Import it for side effects.
package all

import (
	// Register all catalogs
	_ "github.com/leapstack-labs/omopcdm/pkg/catalog/cdm531"
	_ "github.com/leapstack-labs/omopcdm/pkg/catalog/cdm54"
	_ "github.com/leapstack-labs/omopcdm/pkg/catalog/cdm600"
	_ "github.com/leapstack-labs/omopcdm/pkg/catalog/examples"
	_ "github.com/leapstack-labs/omopcdm/pkg/catalog/legacy"
)
