package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/omopcdm/internal/cli/output"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/spf13/cobra"
)

// TableDescription is the JSON form of describe.
type TableDescription struct {
	Entity        string            `json:"entity"`
	Table         string            `json:"table"`
	Schema        string            `json:"schema"`
	Columns       []ColumnInfo      `json:"columns"`
	Relationships []RelationshipRef `json:"relationships,omitempty"`
}

// ColumnInfo describes one column.
type ColumnInfo struct {
	Position   int    `json:"position"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key,omitempty"`
	Index      bool   `json:"index,omitempty"`
	References string `json:"references,omitempty"`
	OnDelete   string `json:"on_delete,omitempty"`
}

// RelationshipRef describes one resolved relationship.
type RelationshipRef struct {
	Name   string `json:"name"`
	Field  string `json:"field"`
	Target string `json:"target"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <table>",
		Short: "Show the columns of one table",
		Long: `Show the columns of one table of the assembled schema in ordinal order,
with types, nullability, keys and resolved references. The table may be
named by table name (visit_occurrence) or entity name (VisitOccurrence).`,
		Example: `  omopcdm describe person
  omopcdm describe death --catalog 5.4+custom
  omopcdm describe VisitDetail -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runDescribe(cmdCtx, args[0])
		},
	}
}

func runDescribe(c *CommandContext, name string) error {
	schema, err := c.Schema()
	if err != nil {
		return err
	}
	t, ok := schema.Table(name)
	if !ok {
		if t, ok = schema.Entity(name); !ok {
			return fmt.Errorf("table %q not found in catalog %s", name, c.Cfg.Catalog)
		}
	}

	desc := describeTable(t, c.Cfg.SchemaMap())
	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(desc)
	}

	r.Header(1, desc.Schema+"."+desc.Table)
	rows := make([][]string, 0, len(desc.Columns))
	for _, col := range desc.Columns {
		null := "NOT NULL"
		if col.Nullable {
			null = ""
		}
		key := ""
		switch {
		case col.PrimaryKey:
			key = "PK"
		case col.Index:
			key = "IX"
		}
		rows = append(rows, []string{strconv.Itoa(col.Position), col.Name, col.Type, null, key, col.References})
	}
	r.Table([]string{"#", "Column", "Type", "Null", "Key", "References"}, rows)

	if len(desc.Relationships) > 0 {
		r.Header(2, "Relationships")
		for _, rel := range desc.Relationships {
			r.Printf("- %s: %s -> %s\n", rel.Name, rel.Field, rel.Target)
		}
	}
	return nil
}

func describeTable(t core.Table, m core.SchemaMap) TableDescription {
	desc := TableDescription{
		Entity: t.Entity,
		Table:  t.Name,
		Schema: m.Resolve(t.Schema),
	}
	for _, col := range t.Columns {
		info := ColumnInfo{
			Position:   col.Position,
			Name:       col.Name,
			Type:       col.Type.String(),
			Nullable:   col.Nullable,
			PrimaryKey: col.PrimaryKey,
			Index:      col.Index,
			OnDelete:   string(col.OnDelete),
		}
		if col.IsForeignKey() {
			ref := col.References
			info.References = m.Resolve(ref.Schema) + "." + ref.Table + "." + ref.Column
		}
		desc.Columns = append(desc.Columns, info)
	}
	for _, rel := range t.Relationships {
		desc.Relationships = append(desc.Relationships, RelationshipRef{
			Name:   rel.Name,
			Field:  rel.Field,
			Target: rel.TargetTable + "." + rel.TargetColumn,
		})
	}
	return desc
}
