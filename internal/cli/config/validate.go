package config

import (
	"fmt"

	"github.com/leapstack-labs/omopcdm/internal/cli/output"
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
)

// Validate checks the values that every command depends on.
func (c *Config) Validate() error {
	if c.Catalog == "" {
		return fmt.Errorf("catalog is required")
	}
	if _, ok := catalog.Get(c.Catalog); !ok {
		return &catalog.UnknownCatalogError{Name: c.Catalog, Available: catalog.List()}
	}
	if err := c.SchemaMap().Validate(); err != nil {
		return err
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	if err := c.Convention().Validate(); err != nil {
		return fmt.Errorf("naming: %w", err)
	}
	return nil
}
