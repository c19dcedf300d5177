package core

import "slices"

// ResolvedRelationship is a Relationship whose target has been looked up in
// the assembled schema.
type ResolvedRelationship struct {
	Name         string
	Field        string
	Target       string
	TargetTable  string
	TargetColumn string
	TargetSchema LogicalSchema
}

// Table is an assembled entity: columns in ordinal order, every type
// concrete, every relationship resolved.
type Table struct {
	Entity        string
	Name          string
	Schema        LogicalSchema
	Columns       []Field
	Relationships []ResolvedRelationship
}

// Column returns the named column.
func (t *Table) Column(name string) (Field, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Field{}, false
}

// ColumnNames returns the column names in ordinal order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// PrimaryKey returns the primary key column names in ordinal order.
func (t *Table) PrimaryKey() []string {
	var pk []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			pk = append(pk, c.Name)
		}
	}
	return pk
}

// ForeignKeys returns the referencing columns in ordinal order.
func (t *Table) ForeignKeys() []Field {
	var fks []Field
	for _, c := range t.Columns {
		if c.IsForeignKey() {
			fks = append(fks, c)
		}
	}
	return fks
}

func (t Table) clone() Table {
	t.Columns = slices.Clone(t.Columns)
	t.Relationships = slices.Clone(t.Relationships)
	return t
}

// Schema is the result of composing a catalog with overlays. It is immutable:
// accessors return copies, so a Schema may be shared between goroutines and
// bound to any number of SchemaMaps.
type Schema struct {
	catalog string
	version string
	tables  []Table
	byName  map[string]int
	byTable map[string]int
}

// NewSchema builds a Schema from already-validated tables. Table order is kept.
func NewSchema(catalog, version string, tables []Table) *Schema {
	s := &Schema{
		catalog: catalog,
		version: version,
		tables:  make([]Table, len(tables)),
		byName:  make(map[string]int, len(tables)),
		byTable: make(map[string]int, len(tables)),
	}
	for i, t := range tables {
		s.tables[i] = t.clone()
		s.byName[t.Entity] = i
		s.byTable[t.Name] = i
	}
	return s
}

// Catalog returns the name of the catalog the schema was assembled from.
func (s *Schema) Catalog() string { return s.catalog }

// Version returns the CDM version label.
func (s *Schema) Version() string { return s.version }

// Len returns the number of tables.
func (s *Schema) Len() int { return len(s.tables) }

// Tables returns copies of all tables in catalog order.
func (s *Schema) Tables() []Table {
	out := make([]Table, len(s.tables))
	for i, t := range s.tables {
		out[i] = t.clone()
	}
	return out
}

// TableNames returns the sorted table names.
func (s *Schema) TableNames() []string {
	out := make([]string, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, t.Name)
	}
	slices.Sort(out)
	return out
}

// TableNamesIn returns the sorted table names placed in the given placeholder schema.
func (s *Schema) TableNamesIn(schema LogicalSchema) []string {
	var out []string
	for _, t := range s.tables {
		if t.Schema == schema {
			out = append(out, t.Name)
		}
	}
	slices.Sort(out)
	return out
}

// Entity returns the table assembled from the named entity.
func (s *Schema) Entity(name string) (Table, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Table{}, false
	}
	return s.tables[i].clone(), true
}

// Table returns the table with the given physical name.
func (s *Schema) Table(name string) (Table, bool) {
	i, ok := s.byTable[name]
	if !ok {
		return Table{}, false
	}
	return s.tables[i].clone(), true
}
