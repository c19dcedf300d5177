// Package all registers every render-only DDL dialect. Import it for side
// effects.
package all

import (
	// Register all render-only dialects
	_ "github.com/leapstack-labs/omopcdm/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/omopcdm/pkg/dialects/databricks"
	_ "github.com/leapstack-labs/omopcdm/pkg/dialects/snowflake"
)
