package compose

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// AssemblyError collects every configuration problem found while assembling
// a schema. Individual errors are reachable with errors.As.
type AssemblyError struct {
	Catalog string
	Errs    []error
}

func (e *AssemblyError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "assemble %s: %d problem(s)", e.Catalog, len(e.Errs))
	for _, err := range e.Errs {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e *AssemblyError) Unwrap() []error {
	return e.Errs
}

// UnknownEntityError is returned when an operation names an entity the
// catalog does not define.
type UnknownEntityError struct {
	Entity string
	Op     string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("%s: unknown entity %q", e.Op, e.Entity)
}

// UnknownFieldError is returned for overrides that target a field the entity
// does not have.
type UnknownFieldError struct {
	Entity string
	Field  string
	Op     string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: entity %q has no field %q", e.Op, e.Entity, e.Field)
}

// DuplicateEntityError is returned when two entities share a name or table.
type DuplicateEntityError struct {
	Entity string
	Table  string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("duplicate entity %q (table %q)", e.Entity, e.Table)
}

// DuplicateFieldError is returned when a field name appears twice in an entity.
type DuplicateFieldError struct {
	Entity string
	Field  string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("entity %q: duplicate field %q", e.Entity, e.Field)
}

// DuplicateRelationshipError is returned when a relationship name appears twice.
type DuplicateRelationshipError struct {
	Entity       string
	Relationship string
}

func (e *DuplicateRelationshipError) Error() string {
	return fmt.Sprintf("entity %q: duplicate relationship %q", e.Entity, e.Relationship)
}

// OrdinalCollisionError is returned when two fields of an entity share a position.
type OrdinalCollisionError struct {
	Entity   string
	Position int
	Fields   [2]string
}

func (e *OrdinalCollisionError) Error() string {
	return fmt.Sprintf("entity %q: fields %q and %q share position %d", e.Entity, e.Fields[0], e.Fields[1], e.Position)
}

// PositionChangeError is returned when a replacement tries to move an inherited field.
type PositionChangeError struct {
	Entity string
	Field  string
	From   int
	To     int
}

func (e *PositionChangeError) Error() string {
	return fmt.Sprintf("entity %q: field %q cannot move from position %d to %d", e.Entity, e.Field, e.From, e.To)
}

// InvalidEntityError reports a malformed entity definition.
type InvalidEntityError struct {
	Entity string
	Reason string
}

func (e *InvalidEntityError) Error() string {
	return fmt.Sprintf("entity %q: %s", e.Entity, e.Reason)
}

// InvalidFieldError reports a malformed field definition.
type InvalidFieldError struct {
	Entity string
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("entity %q: field %q: %s", e.Entity, e.Field, e.Reason)
}

// UnresolvedReferenceError is returned when a foreign key points at a column
// that does not exist in the assembled schema.
type UnresolvedReferenceError struct {
	Entity string
	Field  string
	Ref    core.ColumnRef
	Reason string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("entity %q: field %q references %s: %s", e.Entity, e.Field, e.Ref, e.Reason)
}

// UnresolvedRelationshipError is returned when a relationship cannot be bound
// to its foreign key field and target entity.
type UnresolvedRelationshipError struct {
	Entity       string
	Relationship string
	Reason       string
}

func (e *UnresolvedRelationshipError) Error() string {
	return fmt.Sprintf("entity %q: relationship %q: %s", e.Entity, e.Relationship, e.Reason)
}

// TypeMismatchError is returned when an explicitly typed foreign key column
// disagrees with the column it references.
type TypeMismatchError struct {
	Entity string
	Field  string
	Got    core.ColumnType
	Want   core.ColumnType
	Ref    core.ColumnRef
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("entity %q: field %q is %s but references %s of type %s", e.Entity, e.Field, e.Got, e.Ref, e.Want)
}
