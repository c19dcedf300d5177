// Package core defines the shared language of the omopcdm system.
//
// This package contains:
//   - Meta model (ColumnType, Field, Entity, Relationship, Catalog)
//   - The assembled, resolved Schema produced by composition
//   - Schema placeholders and SchemaMap remapping
//   - Service interfaces and configuration (Adapter, TargetConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
