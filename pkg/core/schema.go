package core

import (
	"fmt"
	"slices"
)

// LogicalSchema is a placeholder schema name used by catalog definitions.
// It is bound to a physical schema at generation time through a SchemaMap.
type LogicalSchema string

const (
	// VocabularySchema holds the standardized vocabulary tables.
	VocabularySchema LogicalSchema = "vocabulary_schema"
	// CDMSchema holds clinical, health system, economics and derived tables.
	CDMSchema LogicalSchema = "cdm_schema"
)

// LogicalSchemas lists every placeholder in a stable order.
func LogicalSchemas() []LogicalSchema {
	return []LogicalSchema{VocabularySchema, CDMSchema}
}

// Valid reports whether s is a known placeholder.
func (s LogicalSchema) Valid() bool {
	return s == VocabularySchema || s == CDMSchema
}

// SchemaMap binds placeholders to physical schema names. Both placeholders
// may map to the same physical schema.
type SchemaMap map[LogicalSchema]string

// NewSchemaMap maps the vocabulary and CDM placeholders.
func NewSchemaMap(vocabulary, cdm string) SchemaMap {
	return SchemaMap{VocabularySchema: vocabulary, CDMSchema: cdm}
}

// Resolve returns the physical name for a placeholder. Unmapped placeholders
// resolve to themselves.
func (m SchemaMap) Resolve(s LogicalSchema) string {
	if name, ok := m[s]; ok && name != "" {
		return name
	}
	return string(s)
}

// Physical returns the distinct physical schema names, sorted.
func (m SchemaMap) Physical() []string {
	var out []string
	for _, s := range LogicalSchemas() {
		name := m.Resolve(s)
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Validate rejects unknown placeholders and empty physical names.
func (m SchemaMap) Validate() error {
	for k, v := range m {
		if !k.Valid() {
			return fmt.Errorf("unknown schema placeholder %q", k)
		}
		if v == "" {
			return fmt.Errorf("schema placeholder %q mapped to empty name", k)
		}
	}
	return nil
}
