// Package config holds the project configuration shared by the CLI and
// library callers: file discovery, target defaults and target validation.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/omopcdm/pkg/adapter"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

// Default configuration values.
const (
	DefaultCatalog    = "5.4"
	DefaultTargetType = "duckdb"
	DefaultStateFile  = ".omopcdm/state.db"
	DefaultPostgres   = 5432
)

// DefaultSchemaForType returns the default schema for a database type.
// It looks up the dialect in the registry; if not found, returns "main".
func DefaultSchemaForType(dbType string) string {
	if d, ok := dialect.Get(dbType); ok && d.DefaultSchema != "" {
		return d.DefaultSchema
	}
	return "main"
}

// ApplyTargetDefaults fills unset target fields for the target's type.
func ApplyTargetDefaults(t *core.TargetConfig) {
	if t == nil {
		return
	}
	if t.Type == "" {
		t.Type = DefaultTargetType
	}
	t.Type = strings.ToLower(t.Type)
	if t.Schema == "" {
		t.Schema = DefaultSchemaForType(t.Type)
	}
	if t.Type == "postgres" && t.Port == 0 {
		t.Port = DefaultPostgres
	}
}

// ValidateTarget checks the target against the adapter registry.
func ValidateTarget(t *core.TargetConfig) error {
	if t == nil {
		return fmt.Errorf("target is required")
	}
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}
	if !adapter.IsRegistered(strings.ToLower(t.Type)) {
		return &adapter.UnknownAdapterError{
			Type:      t.Type,
			Available: adapter.ListAdapters(),
		}
	}
	if t.Type == "postgres" && t.Host == "" {
		return fmt.Errorf("postgres target requires host")
	}
	return nil
}
