// Package compose assembles a concrete schema from a base catalog and an
// ordered list of overlays.
//
// Assembly never mutates its inputs: the base catalog is cloned before any
// operation runs, so the same catalog may be assembled concurrently with
// different overlays. Foreign keys and relationships are resolved in two
// phases (register every entity, then look targets up by name), which lets
// entities reference each other in any order, including cyclically.
package compose

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// Overlay is a named, ordered list of operations applied on top of a catalog.
type Overlay struct {
	Name string
	Ops  []Op
}

// NewOverlay builds an overlay.
func NewOverlay(name string, ops ...Op) Overlay {
	return Overlay{Name: name, Ops: ops}
}

// Assemble applies overlays to a clone of base and returns the resolved schema.
// Operation errors stop assembly immediately; validation problems are
// collected and returned together as an *AssemblyError.
func Assemble(base *core.Catalog, overlays ...Overlay) (*core.Schema, error) {
	if base == nil {
		return nil, fmt.Errorf("assemble: base catalog is nil")
	}
	work := base.Clone()

	for _, ov := range overlays {
		for _, op := range ov.Ops {
			if err := op.Apply(work); err != nil {
				return nil, &AssemblyError{
					Catalog: base.Name,
					Errs:    []error{fmt.Errorf("overlay %q: %s: %w", ov.Name, op, err)},
				}
			}
		}
	}

	tables, errs := resolve(work)
	if len(errs) > 0 {
		return nil, &AssemblyError{Catalog: base.Name, Errs: errs}
	}
	return core.NewSchema(base.Name, base.Version, tables), nil
}

// Apply runs overlays against a clone of base without resolving it. It is
// used to inspect an overlaid catalog before validation.
func Apply(base *core.Catalog, overlays ...Overlay) (*core.Catalog, error) {
	work := base.Clone()
	for _, ov := range overlays {
		for _, op := range ov.Ops {
			if err := op.Apply(work); err != nil {
				return nil, fmt.Errorf("overlay %q: %s: %w", ov.Name, op, err)
			}
		}
	}
	return work, nil
}

type resolver struct {
	cat     *core.Catalog
	byName  map[string]*core.Entity
	byTable map[string]*core.Entity
	types   map[string]core.ColumnType
	errs    []error
}

func fieldKey(table, field string) string { return table + "." + field }

func resolve(c *core.Catalog) ([]core.Table, []error) {
	r := &resolver{
		cat:     c,
		byName:  make(map[string]*core.Entity, len(c.Entities)),
		byTable: make(map[string]*core.Entity, len(c.Entities)),
		types:   make(map[string]core.ColumnType),
	}

	// Phase one: register every entity.
	for i := range c.Entities {
		e := &c.Entities[i]
		if e.Name == "" || e.Table == "" {
			r.errs = append(r.errs, &InvalidEntityError{Entity: e.Name, Reason: "entity needs a name and a table"})
			continue
		}
		if !e.Schema.Valid() {
			r.errs = append(r.errs, &InvalidEntityError{Entity: e.Name, Reason: fmt.Sprintf("unknown schema placeholder %q", e.Schema)})
		}
		if len(e.Fields) == 0 {
			r.errs = append(r.errs, &InvalidEntityError{Entity: e.Name, Reason: "entity has no fields"})
		}
		_, dupName := r.byName[e.Name]
		_, dupTable := r.byTable[e.Table]
		if dupName || dupTable {
			r.errs = append(r.errs, &DuplicateEntityError{Entity: e.Name, Table: e.Table})
			continue
		}
		r.byName[e.Name] = e
		r.byTable[e.Table] = e
	}

	for i := range c.Entities {
		r.checkFields(&c.Entities[i])
	}

	// Phase two: resolve references, types and relationships.
	tables := make([]core.Table, 0, len(c.Entities))
	for i := range c.Entities {
		e := &c.Entities[i]
		if r.byName[e.Name] != e {
			continue
		}
		tables = append(tables, r.table(e))
	}
	return tables, r.errs
}

func (r *resolver) checkFields(e *core.Entity) {
	names := make(map[string]bool, len(e.Fields))
	positions := make(map[int]string, len(e.Fields))
	for _, f := range e.Fields {
		if f.Name == "" {
			r.errs = append(r.errs, &InvalidFieldError{Entity: e.Name, Reason: "field has no name"})
			continue
		}
		if names[f.Name] {
			r.errs = append(r.errs, &DuplicateFieldError{Entity: e.Name, Field: f.Name})
		}
		names[f.Name] = true

		if f.Position <= 0 {
			r.errs = append(r.errs, &InvalidFieldError{Entity: e.Name, Field: f.Name, Reason: "position must be positive"})
		} else if other, ok := positions[f.Position]; ok {
			r.errs = append(r.errs, &OrdinalCollisionError{Entity: e.Name, Position: f.Position, Fields: [2]string{other, f.Name}})
		} else {
			positions[f.Position] = f.Name
		}

		if f.Type.IsInferred() && !f.IsForeignKey() {
			r.errs = append(r.errs, &InvalidFieldError{Entity: e.Name, Field: f.Name, Reason: "field has no type and no reference to infer one from"})
		}
		if f.Type.Kind == core.KindString && f.Type.Length <= 0 {
			r.errs = append(r.errs, &InvalidFieldError{Entity: e.Name, Field: f.Name, Reason: "string type needs a positive length"})
		}
	}

	rels := make(map[string]bool, len(e.Relationships))
	for _, rel := range e.Relationships {
		if rels[rel.Name] {
			r.errs = append(r.errs, &DuplicateRelationshipError{Entity: e.Name, Relationship: rel.Name})
		}
		rels[rel.Name] = true
	}
}

// target returns the entity and column a reference points at.
func (r *resolver) target(ref core.ColumnRef) (*core.Entity, *core.Field, string) {
	t, ok := r.byTable[ref.Table]
	if !ok {
		return nil, nil, "no such table"
	}
	if t.Schema != ref.Schema {
		return nil, nil, fmt.Sprintf("table lives in %s", t.Schema)
	}
	f, ok := t.Field(ref.Column)
	if !ok {
		return nil, nil, "no such column"
	}
	if pk := t.PrimaryKey(); len(pk) != 1 || pk[0] != ref.Column {
		return nil, nil, "column is not the single-column primary key of its table"
	}
	return t, f, ""
}

// columnType returns the concrete type of a field, following inferred
// foreign keys transitively. seen guards against reference cycles.
func (r *resolver) columnType(e *core.Entity, f *core.Field, seen map[string]bool) (core.ColumnType, bool) {
	key := fieldKey(e.Table, f.Name)
	if t, ok := r.types[key]; ok {
		return t, true
	}
	if !f.Type.IsInferred() {
		r.types[key] = f.Type
		return f.Type, true
	}
	if !f.IsForeignKey() || seen[key] {
		return core.ColumnType{}, false
	}
	seen[key] = true
	te, tf, reason := r.target(f.References)
	if reason != "" {
		return core.ColumnType{}, false
	}
	t, ok := r.columnType(te, tf, seen)
	if ok {
		r.types[key] = t
	}
	return t, ok
}

func (r *resolver) table(e *core.Entity) core.Table {
	cols := e.SortedFields()
	for i := range cols {
		f := &cols[i]
		if !f.IsForeignKey() {
			continue
		}
		te, tf, reason := r.target(f.References)
		if reason != "" {
			r.errs = append(r.errs, &UnresolvedReferenceError{Entity: e.Name, Field: f.Name, Ref: f.References, Reason: reason})
			continue
		}
		want, ok := r.columnType(te, tf, map[string]bool{})
		if !ok {
			r.errs = append(r.errs, &InvalidFieldError{Entity: e.Name, Field: f.Name, Reason: "cannot infer type through reference cycle"})
			continue
		}
		if f.Type.IsInferred() {
			f.Type = want
		} else if f.Type != want {
			r.errs = append(r.errs, &TypeMismatchError{Entity: e.Name, Field: f.Name, Got: f.Type, Want: want, Ref: f.References})
		}
	}

	rels := make([]core.ResolvedRelationship, 0, len(e.Relationships))
	for _, rel := range e.Relationships {
		resolved, reason := r.relationship(e, rel)
		if reason != "" {
			r.errs = append(r.errs, &UnresolvedRelationshipError{Entity: e.Name, Relationship: rel.Name, Reason: reason})
			continue
		}
		rels = append(rels, resolved)
	}
	slices.SortFunc(rels, func(a, b core.ResolvedRelationship) int { return strings.Compare(a.Name, b.Name) })

	return core.Table{
		Entity:        e.Name,
		Name:          e.Table,
		Schema:        e.Schema,
		Columns:       cols,
		Relationships: rels,
	}
}

func (r *resolver) relationship(e *core.Entity, rel core.Relationship) (core.ResolvedRelationship, string) {
	f, ok := e.Field(rel.Field)
	if !ok {
		return core.ResolvedRelationship{}, fmt.Sprintf("field %q does not exist", rel.Field)
	}
	if !f.IsForeignKey() {
		return core.ResolvedRelationship{}, fmt.Sprintf("field %q is not a foreign key", rel.Field)
	}
	target, ok := r.byName[rel.Target]
	if !ok {
		return core.ResolvedRelationship{}, fmt.Sprintf("unknown target entity %q", rel.Target)
	}
	if f.References.Table != target.Table {
		return core.ResolvedRelationship{}, fmt.Sprintf("field %q references %q, not %q", rel.Field, f.References.Table, target.Table)
	}
	return core.ResolvedRelationship{
		Name:         rel.Name,
		Field:        rel.Field,
		Target:       target.Name,
		TargetTable:  target.Table,
		TargetColumn: f.References.Column,
		TargetSchema: target.Schema,
	}, ""
}
