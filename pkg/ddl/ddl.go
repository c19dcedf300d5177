// Package ddl renders an assembled schema as DDL for one dialect and one
// schema mapping.
//
// Generation never modifies the schema: placeholders are resolved through the
// SchemaMap while statements are rendered, so the same *core.Schema can be
// generated for many mappings and dialects at once.
//
// Dialects that add foreign keys with ALTER TABLE get every constraint after
// all tables exist, which tolerates reference cycles such as concept and
// domain. Dialects that only accept inline constraints get tables in
// dependency order; references that would close a cycle, point at their own
// table or cross into another schema are skipped and reported in
// Script.Skipped.
package ddl

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/omopcdm/internal/dag"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
	"github.com/leapstack-labs/omopcdm/pkg/naming"
)

// ErrSchemaRequired is returned when no assembled schema is given.
var ErrSchemaRequired = errors.New("schema is required")

// Skip reasons.
const (
	ReasonSelfReference = "self reference"
	ReasonCrossSchema   = "cross-schema reference"
	ReasonCycle         = "would close a dependency cycle"
)

type foreignKey struct {
	name   string
	table  core.Table
	column core.Field
	target core.Table
}

type generator struct {
	schema *core.Schema
	d      *dialect.Dialect
	m      core.SchemaMap
	opts   options
}

func newGenerator(schema *core.Schema, d *dialect.Dialect, m core.SchemaMap, opts []Option) (*generator, error) {
	if schema == nil {
		return nil, ErrSchemaRequired
	}
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.convention.Validate(); err != nil {
		return nil, err
	}
	return &generator{schema: schema, d: d, m: m, opts: o}, nil
}

// Generate renders CREATE statements for every table of schema.
func Generate(schema *core.Schema, d *dialect.Dialect, m core.SchemaMap, opts ...Option) (*Script, error) {
	g, err := newGenerator(schema, d, m, opts)
	if err != nil {
		return nil, err
	}

	script := &Script{Dialect: d.Name}
	for _, s := range g.physicalSchemas() {
		script.Statements = append(script.Statements, Statement{
			Kind:   KindCreateSchema,
			Schema: s,
			SQL:    "CREATE SCHEMA IF NOT EXISTS " + d.QuoteIdentifierIfNeeded(s),
		})
	}

	fks, order, err := g.plan(script)
	if err != nil {
		return nil, err
	}

	inline := g.opts.foreignKeys && d.ForeignKeys == core.ForeignKeysInline
	byTable := make(map[string][]foreignKey)
	for _, fk := range fks {
		byTable[fk.table.Name] = append(byTable[fk.table.Name], fk)
	}

	for _, t := range order {
		var own []foreignKey
		if inline {
			own = byTable[t.Name]
		}
		sql, err := g.createTable(t, own)
		if err != nil {
			return nil, err
		}
		script.Statements = append(script.Statements, Statement{
			Kind:   KindCreateTable,
			Schema: g.m.Resolve(t.Schema),
			Table:  t.Name,
			SQL:    sql,
		})
	}

	if !inline {
		for _, fk := range fks {
			script.Statements = append(script.Statements, Statement{
				Kind:   KindAddForeignKey,
				Schema: g.m.Resolve(fk.table.Schema),
				Table:  fk.table.Name,
				SQL: fmt.Sprintf("ALTER TABLE %s ADD %s",
					g.qualified(fk.table), g.foreignKeyClause(fk)),
			})
		}
	}

	if g.opts.indexes && !d.NoIndexes {
		for _, t := range order {
			stmts, err := g.indexes(t)
			if err != nil {
				return nil, err
			}
			script.Statements = append(script.Statements, stmts...)
		}
	}

	return script, nil
}

// Drop renders the statements removing every mapped schema with its
// contents. Tables in the dialect's default schema are dropped one by one,
// dependents first, since the default schema itself must survive.
func Drop(schema *core.Schema, d *dialect.Dialect, m core.SchemaMap) (*Script, error) {
	g, err := newGenerator(schema, d, m, nil)
	if err != nil {
		return nil, err
	}

	script := &Script{Dialect: d.Name}
	for _, s := range g.physicalSchemas() {
		if d.DefaultSchema == "" || d.NormalizeName(s) != d.NormalizeName(d.DefaultSchema) {
			script.Statements = append(script.Statements, Statement{
				Kind:   KindDropSchema,
				Schema: s,
				SQL:    fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", d.QuoteIdentifierIfNeeded(s)),
			})
			continue
		}

		order, err := g.dependencyOrder(s)
		if err != nil {
			return nil, err
		}
		cascade := ""
		if d.ForeignKeys == core.ForeignKeysAlter {
			cascade = " CASCADE"
		}
		for _, t := range slices.Backward(order) {
			script.Statements = append(script.Statements, Statement{
				Kind:   KindDropTable,
				Schema: s,
				Table:  t.Name,
				SQL:    fmt.Sprintf("DROP TABLE IF EXISTS %s%s", g.qualified(t), cascade),
			})
		}
	}
	return script, nil
}

// physicalSchemas returns the sorted physical schemas the tables land in.
func (g *generator) physicalSchemas() []string {
	var out []string
	for _, t := range g.schema.Tables() {
		name := g.m.Resolve(t.Schema)
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

func sortedTables(s *core.Schema) []core.Table {
	tables := s.Tables()
	slices.SortFunc(tables, func(a, b core.Table) int {
		return strings.Compare(a.Name, b.Name)
	})
	return tables
}

// plan selects the foreign keys to emit and the table creation order.
// Candidates are visited by table name then ordinal so the outcome does not
// depend on catalog order.
func (g *generator) plan(script *Script) ([]foreignKey, []core.Table, error) {
	tables := sortedTables(g.schema)
	if !g.opts.foreignKeys || g.d.ForeignKeys == core.ForeignKeysNone {
		return nil, g.schema.Tables(), nil
	}

	inline := g.d.ForeignKeys == core.ForeignKeysInline
	graph := dag.NewGraph()
	for _, t := range tables {
		graph.AddNode(t.Name, t)
	}

	var fks []foreignKey
	for _, t := range tables {
		for _, col := range t.ForeignKeys() {
			target, ok := g.schema.Table(col.References.Table)
			if !ok {
				return nil, nil, fmt.Errorf("table %s column %s: unknown referenced table %q",
					t.Name, col.Name, col.References.Table)
			}

			reason := ""
			switch {
			case inline && target.Name == t.Name:
				reason = ReasonSelfReference
			case !g.d.CrossSchemaForeignKeys && g.m.Resolve(t.Schema) != g.m.Resolve(target.Schema):
				reason = ReasonCrossSchema
			case inline:
				added, err := graph.AddEdgeIfAcyclic(target.Name, t.Name)
				if err != nil {
					return nil, nil, err
				}
				if !added {
					reason = ReasonCycle
				}
			}
			if reason != "" {
				g.skip(script, t, col, reason)
				continue
			}

			name, err := g.opts.convention.ForeignKeyName(t.Name, col.Name, target.Name)
			if err != nil {
				return nil, nil, err
			}
			fks = append(fks, foreignKey{
				name:   naming.Truncate(name, g.d.MaxIdentifierLength),
				table:  t,
				column: col,
				target: target,
			})
		}
	}

	if !inline {
		return fks, g.schema.Tables(), nil
	}

	nodes, err := graph.TopologicalSort()
	if err != nil {
		return nil, nil, err
	}
	order := make([]core.Table, len(nodes))
	for i, n := range nodes {
		order[i] = n.Data.(core.Table)
	}
	return fks, order, nil
}

func (g *generator) skip(script *Script, t core.Table, col core.Field, reason string) {
	ref := col.References
	target := g.m.Resolve(ref.Schema) + "." + ref.Table + "." + ref.Column
	script.Skipped = append(script.Skipped, SkippedForeignKey{
		Schema: g.m.Resolve(t.Schema),
		Table:  t.Name,
		Column: col.Name,
		Target: target,
		Reason: reason,
	})
	g.opts.logger.Debug("skipping foreign key",
		"dialect", g.d.Name,
		"table", t.Name,
		"column", col.Name,
		"references", target,
		"reason", reason)
}

// dependencyOrder orders the tables of one physical schema so that
// referenced tables come before the tables referencing them.
func (g *generator) dependencyOrder(physical string) ([]core.Table, error) {
	graph := dag.NewGraph()
	var tables []core.Table
	for _, t := range sortedTables(g.schema) {
		if g.m.Resolve(t.Schema) == physical {
			tables = append(tables, t)
			graph.AddNode(t.Name, t)
		}
	}
	for _, t := range tables {
		for _, col := range t.ForeignKeys() {
			if _, ok := graph.GetNode(col.References.Table); !ok {
				continue
			}
			if _, err := graph.AddEdgeIfAcyclic(col.References.Table, t.Name); err != nil {
				return nil, err
			}
		}
	}
	nodes, err := graph.TopologicalSort()
	if err != nil {
		return nil, err
	}
	out := make([]core.Table, len(nodes))
	for i, n := range nodes {
		out[i] = n.Data.(core.Table)
	}
	return out, nil
}

func (g *generator) qualified(t core.Table) string {
	return g.d.Qualify(g.m.Resolve(t.Schema), t.Name)
}

func (g *generator) quoteColumns(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = g.d.QuoteIdentifierIfNeeded(c)
	}
	return strings.Join(quoted, ", ")
}

func (g *generator) createTable(t core.Table, fks []foreignKey) (string, error) {
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("table %s has no columns", t.Name)
	}

	var lines []string
	for _, col := range t.Columns {
		typ, err := g.d.ColumnType(col.Type)
		if err != nil {
			return "", fmt.Errorf("table %s column %s: %w", t.Name, col.Name, err)
		}
		line := g.d.QuoteIdentifierIfNeeded(col.Name) + " " + typ
		if !col.Nullable {
			line += " NOT NULL"
		}
		lines = append(lines, line)
	}

	if pk := t.PrimaryKey(); len(pk) > 0 {
		name, err := g.opts.convention.PrimaryKeyName(t.Name)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("CONSTRAINT %s PRIMARY KEY (%s)",
			g.d.QuoteIdentifierIfNeeded(naming.Truncate(name, g.d.MaxIdentifierLength)),
			g.quoteColumns(pk)))
	}

	for _, fk := range fks {
		lines = append(lines, g.foreignKeyClause(fk))
	}

	create := "CREATE TABLE "
	if g.opts.ifNotExists {
		create += "IF NOT EXISTS "
	}
	return create + g.qualified(t) + " (\n    " + strings.Join(lines, ",\n    ") + "\n)", nil
}

func (g *generator) foreignKeyClause(fk foreignKey) string {
	clause := fmt.Sprintf("CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
		g.d.QuoteIdentifierIfNeeded(fk.name),
		g.d.QuoteIdentifierIfNeeded(fk.column.Name),
		g.qualified(fk.target),
		g.d.QuoteIdentifierIfNeeded(fk.column.References.Column))

	if fk.column.OnDelete != core.OnDeleteNoAction {
		if g.d.ReferentialActions {
			clause += " ON DELETE " + string(fk.column.OnDelete)
		} else {
			g.opts.logger.Debug("dropping ON DELETE action",
				"dialect", g.d.Name,
				"table", fk.table.Name,
				"column", fk.column.Name,
				"action", string(fk.column.OnDelete))
		}
	}
	return clause
}

func (g *generator) indexes(t core.Table) ([]Statement, error) {
	var out []Statement
	for _, col := range t.Columns {
		if !col.Index {
			continue
		}
		name, err := g.opts.convention.IndexName(t.Name, col.Name)
		if err != nil {
			return nil, err
		}
		create := "CREATE INDEX "
		if g.opts.ifNotExists {
			create += "IF NOT EXISTS "
		}
		out = append(out, Statement{
			Kind:   KindCreateIndex,
			Schema: g.m.Resolve(t.Schema),
			Table:  t.Name,
			SQL: fmt.Sprintf("%s%s ON %s (%s)", create,
				g.d.QuoteIdentifierIfNeeded(naming.Truncate(name, g.d.MaxIdentifierLength)),
				g.qualified(t),
				g.d.QuoteIdentifierIfNeeded(col.Name)),
		})
	}
	return out, nil
}
