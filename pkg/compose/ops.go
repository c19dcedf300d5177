package compose

import (
	"fmt"
	"slices"

	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// Op is one overlay operation. Apply mutates the working catalog it is given;
// Assemble only ever passes a private clone.
type Op interface {
	Apply(c *core.Catalog) error
	String() string
}

// findEntity looks an entity up by name, then by table.
func findEntity(c *core.Catalog, key, op string) (*core.Entity, error) {
	if e, ok := c.Entity(key); ok {
		return e, nil
	}
	if e, ok := c.EntityByTable(key); ok {
		return e, nil
	}
	return nil, &UnknownEntityError{Entity: key, Op: op}
}

func findField(e *core.Entity, name, op string) (*core.Field, error) {
	if f, ok := e.Field(name); ok {
		return f, nil
	}
	return nil, &UnknownFieldError{Entity: e.Name, Field: name, Op: op}
}

// ReplaceField swaps an inherited field for a new definition. The field keeps
// its name and position; a non-zero Position that differs from the inherited
// one is rejected.
type ReplaceField struct {
	Entity string
	Field  core.Field
}

func (o ReplaceField) String() string {
	return fmt.Sprintf("replace_field %s.%s", o.Entity, o.Field.Name)
}

// Apply implements Op.
func (o ReplaceField) Apply(c *core.Catalog) error {
	e, err := findEntity(c, o.Entity, "replace_field")
	if err != nil {
		return err
	}
	f, err := findField(e, o.Field.Name, "replace_field")
	if err != nil {
		return err
	}
	if o.Field.Position != 0 && o.Field.Position != f.Position {
		return &PositionChangeError{Entity: e.Name, Field: f.Name, From: f.Position, To: o.Field.Position}
	}
	next := o.Field
	next.Position = f.Position
	*f = next
	return nil
}

// ChangeType overrides only the type of a field.
type ChangeType struct {
	Entity string
	Field  string
	Type   core.ColumnType
}

func (o ChangeType) String() string {
	return fmt.Sprintf("change_type %s.%s %s", o.Entity, o.Field, o.Type)
}

// Apply implements Op.
func (o ChangeType) Apply(c *core.Catalog) error {
	e, err := findEntity(c, o.Entity, "change_type")
	if err != nil {
		return err
	}
	f, err := findField(e, o.Field, "change_type")
	if err != nil {
		return err
	}
	f.Type = o.Type
	return nil
}

// SetNullable overrides only the nullability of a field.
type SetNullable struct {
	Entity   string
	Field    string
	Nullable bool
}

func (o SetNullable) String() string {
	return fmt.Sprintf("set_nullable %s.%s %t", o.Entity, o.Field, o.Nullable)
}

// Apply implements Op.
func (o SetNullable) Apply(c *core.Catalog) error {
	e, err := findEntity(c, o.Entity, "set_nullable")
	if err != nil {
		return err
	}
	f, err := findField(e, o.Field, "set_nullable")
	if err != nil {
		return err
	}
	f.Nullable = o.Nullable
	return nil
}

// InsertField adds a new field at an explicit position. Existing fields are
// never resequenced; a position already in use fails validation.
type InsertField struct {
	Entity string
	Field  core.Field
}

func (o InsertField) String() string {
	return fmt.Sprintf("insert_field %s.%s@%d", o.Entity, o.Field.Name, o.Field.Position)
}

// Apply implements Op.
func (o InsertField) Apply(c *core.Catalog) error {
	e, err := findEntity(c, o.Entity, "insert_field")
	if err != nil {
		return err
	}
	if o.Field.Name == "" {
		return &InvalidFieldError{Entity: e.Name, Reason: "inserted field has no name"}
	}
	if o.Field.Position <= 0 {
		return &InvalidFieldError{Entity: e.Name, Field: o.Field.Name, Reason: "inserted field needs an explicit position"}
	}
	if _, ok := e.Field(o.Field.Name); ok {
		return &DuplicateFieldError{Entity: e.Name, Field: o.Field.Name}
	}
	e.Fields = append(e.Fields, o.Field)
	return nil
}

// RemoveField drops a field together with the relationships keyed by it.
type RemoveField struct {
	Entity string
	Field  string
}

func (o RemoveField) String() string {
	return fmt.Sprintf("remove_field %s.%s", o.Entity, o.Field)
}

// Apply implements Op.
func (o RemoveField) Apply(c *core.Catalog) error {
	e, err := findEntity(c, o.Entity, "remove_field")
	if err != nil {
		return err
	}
	if _, err := findField(e, o.Field, "remove_field"); err != nil {
		return err
	}
	e.Fields = slices.DeleteFunc(e.Fields, func(f core.Field) bool { return f.Name == o.Field })
	e.Relationships = slices.DeleteFunc(e.Relationships, func(r core.Relationship) bool { return r.Field == o.Field })
	return nil
}

// AddEntity adds a complete new table.
type AddEntity struct {
	Entity core.Entity
}

func (o AddEntity) String() string {
	return fmt.Sprintf("add_entity %s", o.Entity.Name)
}

// Apply implements Op.
func (o AddEntity) Apply(c *core.Catalog) error {
	if o.Entity.Name == "" || o.Entity.Table == "" {
		return &InvalidEntityError{Entity: o.Entity.Name, Reason: "added entity needs a name and a table"}
	}
	if _, ok := c.Entity(o.Entity.Name); ok {
		return &DuplicateEntityError{Entity: o.Entity.Name, Table: o.Entity.Table}
	}
	if _, ok := c.EntityByTable(o.Entity.Table); ok {
		return &DuplicateEntityError{Entity: o.Entity.Name, Table: o.Entity.Table}
	}
	c.Entities = append(c.Entities, o.Entity.Clone())
	return nil
}

// RemoveEntity drops a table. Foreign keys pointing at it fail validation
// unless they are removed too.
type RemoveEntity struct {
	Entity string
}

func (o RemoveEntity) String() string {
	return fmt.Sprintf("remove_entity %s", o.Entity)
}

// Apply implements Op.
func (o RemoveEntity) Apply(c *core.Catalog) error {
	e, err := findEntity(c, o.Entity, "remove_entity")
	if err != nil {
		return err
	}
	name := e.Name
	c.Entities = slices.DeleteFunc(c.Entities, func(x core.Entity) bool { return x.Name == name })
	return nil
}

// AddRelationship adds a many-to-one association to an existing entity.
type AddRelationship struct {
	Entity       string
	Relationship core.Relationship
}

func (o AddRelationship) String() string {
	return fmt.Sprintf("add_relationship %s.%s", o.Entity, o.Relationship.Name)
}

// Apply implements Op.
func (o AddRelationship) Apply(c *core.Catalog) error {
	e, err := findEntity(c, o.Entity, "add_relationship")
	if err != nil {
		return err
	}
	for _, r := range e.Relationships {
		if r.Name == o.Relationship.Name {
			return &DuplicateRelationshipError{Entity: e.Name, Relationship: r.Name}
		}
	}
	e.Relationships = append(e.Relationships, o.Relationship)
	return nil
}
