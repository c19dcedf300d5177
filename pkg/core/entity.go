package core

import (
	"fmt"
	"slices"
	"strings"
)

// ColumnRef points at a column of another entity. The zero value means the
// field is not a foreign key.
type ColumnRef struct {
	Schema LogicalSchema
	Table  string
	Column string
}

// Ref builds a ColumnRef.
func Ref(schema LogicalSchema, table, column string) ColumnRef {
	return ColumnRef{Schema: schema, Table: table, Column: column}
}

// ParseRef parses "schema.table.column".
func ParseRef(s string) (ColumnRef, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ColumnRef{}, fmt.Errorf("reference %q must be schema.table.column", s)
	}
	schema := LogicalSchema(parts[0])
	if !schema.Valid() {
		return ColumnRef{}, fmt.Errorf("reference %q: unknown schema placeholder %q", s, parts[0])
	}
	return Ref(schema, parts[1], parts[2]), nil
}

// IsZero reports whether the ref is unset.
func (r ColumnRef) IsZero() bool {
	return r == ColumnRef{}
}

func (r ColumnRef) String() string {
	return string(r.Schema) + "." + r.Table + "." + r.Column
}

// Frequently referenced key columns.
var (
	ConceptID         = Ref(VocabularySchema, "concept", "concept_id")
	VocabularyID      = Ref(VocabularySchema, "vocabulary", "vocabulary_id")
	DomainID          = Ref(VocabularySchema, "domain", "domain_id")
	ConceptClassID    = Ref(VocabularySchema, "concept_class", "concept_class_id")
	PersonID          = Ref(CDMSchema, "person", "person_id")
	VisitOccurrenceID = Ref(CDMSchema, "visit_occurrence", "visit_occurrence_id")
	VisitDetailID     = Ref(CDMSchema, "visit_detail", "visit_detail_id")
	ProviderID        = Ref(CDMSchema, "provider", "provider_id")
	CareSiteID        = Ref(CDMSchema, "care_site", "care_site_id")
	LocationID        = Ref(CDMSchema, "location", "location_id")
)

// OnDelete is a referential action.
type OnDelete string

const (
	OnDeleteNoAction OnDelete = ""
	OnDeleteCascade  OnDelete = "CASCADE"
	OnDeleteSetNull  OnDelete = "SET NULL"
	OnDeleteRestrict OnDelete = "RESTRICT"
)

// ParseOnDelete accepts the referential actions in any case.
func ParseOnDelete(s string) (OnDelete, error) {
	switch a := OnDelete(strings.ToUpper(strings.TrimSpace(s))); a {
	case OnDeleteNoAction, OnDeleteCascade, OnDeleteSetNull, OnDeleteRestrict:
		return a, nil
	case "NO ACTION":
		return OnDeleteNoAction, nil
	}
	return "", fmt.Errorf("unknown ON DELETE action %q", s)
}

// Field is one column of an entity.
//
// Position is the ordinal sort key: physical column order is ascending
// Position regardless of declaration order. Nullable false means NOT NULL.
// A field with References set and an inferred Type takes the referenced
// column's type during assembly.
type Field struct {
	Name       string
	Type       ColumnType
	References ColumnRef
	OnDelete   OnDelete
	Position   int
	Nullable   bool
	PrimaryKey bool
	Index      bool
}

// IsForeignKey reports whether the field references another column.
func (f Field) IsForeignKey() bool {
	return !f.References.IsZero()
}

// Relationship is a many-to-one association from an entity to Target,
// keyed by the foreign key field Field.
type Relationship struct {
	Name   string
	Field  string
	Target string
}

// Entity is a table definition.
type Entity struct {
	// Name identifies the entity within a catalog (e.g. "VisitOccurrence").
	Name string
	// Table is the physical table name (e.g. "visit_occurrence").
	Table  string
	Schema LogicalSchema
	Fields []Field

	Relationships []Relationship
}

// Field returns the named field.
func (e *Entity) Field(name string) (*Field, bool) {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i], true
		}
	}
	return nil, false
}

// SortedFields returns a copy of the fields in ordinal order.
func (e *Entity) SortedFields() []Field {
	out := slices.Clone(e.Fields)
	slices.SortStableFunc(out, func(a, b Field) int { return a.Position - b.Position })
	return out
}

// PrimaryKey returns the primary key column names in ordinal order.
func (e *Entity) PrimaryKey() []string {
	var pk []string
	for _, f := range e.SortedFields() {
		if f.PrimaryKey {
			pk = append(pk, f.Name)
		}
	}
	return pk
}

// Clone returns a deep copy.
func (e Entity) Clone() Entity {
	e.Fields = slices.Clone(e.Fields)
	e.Relationships = slices.Clone(e.Relationships)
	return e
}

// Catalog is the closed set of entity definitions for one CDM release.
type Catalog struct {
	Name     string
	Version  string
	Entities []Entity
}

// Entity returns the entity with the given name.
func (c *Catalog) Entity(name string) (*Entity, bool) {
	for i := range c.Entities {
		if c.Entities[i].Name == name {
			return &c.Entities[i], true
		}
	}
	return nil, false
}

// EntityByTable returns the entity with the given table name.
func (c *Catalog) EntityByTable(table string) (*Entity, bool) {
	for i := range c.Entities {
		if c.Entities[i].Table == table {
			return &c.Entities[i], true
		}
	}
	return nil, false
}

// Tables returns the sorted table names.
func (c *Catalog) Tables() []string {
	out := make([]string, 0, len(c.Entities))
	for _, e := range c.Entities {
		out = append(out, e.Table)
	}
	slices.Sort(out)
	return out
}

// Clone returns a deep copy that shares no slices with c.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{Name: c.Name, Version: c.Version, Entities: make([]Entity, len(c.Entities))}
	for i, e := range c.Entities {
		out.Entities[i] = e.Clone()
	}
	return out
}
