package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/omopcdm/internal/cli/output"
	"github.com/leapstack-labs/omopcdm/internal/dag"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/spf13/cobra"
)

// GraphQuerier provides read-only access to the table dependency graph.
type GraphQuerier interface {
	GetParents(string) []string
	GetChildren(string) []string
	GetRoots() []string
	GetLeaves() []string
	NodeCount() int
	EdgeCount() int
}

// SkippedEdge is a foreign key left out of the graph because it closes a
// cycle (a self reference or a mutual pair).
type SkippedEdge struct {
	Table  string `json:"table"`
	Column string `json:"column"`
	Target string `json:"target"`
}

// GraphOutput is the JSON form of the graph command.
type GraphOutput struct {
	Catalog    string              `json:"catalog"`
	Table      string              `json:"table,omitempty"`
	Upstream   []string            `json:"upstream,omitempty"`
	Downstream []string            `json:"downstream,omitempty"`
	Levels     [][]string          `json:"levels"`
	Parents    map[string][]string `json:"depends_on"`
	Roots      []string            `json:"roots"`
	Leaves     []string            `json:"leaves"`
	Skipped    []SkippedEdge       `json:"skipped,omitempty"`
	Tables     int                 `json:"tables"`
	Edges      int                 `json:"edges"`
}

// focus is the neighbourhood of one table: everything it depends on and
// everything that depends on it.
type focus struct {
	Table      string
	Upstream   []string
	Downstream []string
}

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graph [table]",
		Short: "Show the foreign key dependency graph",
		Long: `Display the tables of the assembled schema grouped by creation level.

Level 0 holds tables without foreign keys. Every other table sits one level
below the deepest table it references, so tables of the same level can be
created or loaded in any order. Self references and mutual references are
listed separately; they do not affect the levels.

With a table argument the graph is narrowed to that table, the tables it
depends on (directly or not) and the tables that depend on it.`,
		Example: `  omopcdm graph
  omopcdm graph visit_occurrence
  omopcdm graph --catalog 5.3.1 --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			schema, err := cmdCtx.Schema()
			if err != nil {
				return err
			}
			graph, skipped, err := buildTableGraph(schema)
			if err != nil {
				return err
			}

			var f *focus
			if len(args) == 1 {
				if _, ok := schema.Table(args[0]); !ok {
					return fmt.Errorf("unknown table %q in catalog %s", args[0], schema.Catalog())
				}
				f = &focus{
					Table:      args[0],
					Upstream:   graph.GetUpstreamNodes(args[0]),
					Downstream: graph.GetDownstreamNodes(args[0]),
				}
				graph, skipped = narrow(graph, skipped, f)
			}

			levels, err := graph.GetLevels()
			if err != nil {
				return fmt.Errorf("failed to get levels: %w", err)
			}

			r := cmdCtx.Renderer
			switch r.EffectiveMode() {
			case output.ModeJSON:
				return graphJSON(r, schema, graph, levels, skipped, f)
			case output.ModeMarkdown:
				graphMarkdown(r, graph, levels, skipped, f)
			default:
				graphText(r, graph, levels, skipped, f)
			}
			return nil
		},
	}
}

// narrow keeps the focused table and its neighbourhood, dropping skipped
// edges that leave it.
func narrow(g *dag.Graph, skipped []SkippedEdge, f *focus) (*dag.Graph, []SkippedEdge) {
	nodes := slices.Concat([]string{f.Table}, f.Upstream, f.Downstream)
	var kept []SkippedEdge
	for _, e := range skipped {
		if slices.Contains(nodes, e.Table) && slices.Contains(nodes, e.Target) {
			kept = append(kept, e)
		}
	}
	return g.Subgraph(nodes), kept
}

// buildTableGraph adds one node per table and one edge per foreign key,
// referenced table first. Tables and columns are visited in order so the
// skipped edges are stable.
func buildTableGraph(schema *core.Schema) (*dag.Graph, []SkippedEdge, error) {
	g := dag.NewGraph()
	tables := schema.Tables()
	slices.SortFunc(tables, func(a, b core.Table) int { return strings.Compare(a.Name, b.Name) })
	for _, t := range tables {
		g.AddNode(t.Name, t.Entity)
	}

	var skipped []SkippedEdge
	for _, t := range tables {
		for _, fk := range t.ForeignKeys() {
			added, err := g.AddEdgeIfAcyclic(fk.References.Table, t.Name)
			if err != nil {
				return nil, nil, err
			}
			if !added {
				skipped = append(skipped, SkippedEdge{Table: t.Name, Column: fk.Name, Target: fk.References.Table})
			}
		}
	}
	return g, skipped, nil
}

func graphText(r *output.Renderer, graph GraphQuerier, levels [][]string, skipped []SkippedEdge, f *focus) {
	styles := r.Styles()
	if f != nil {
		r.Header(1, "Dependency Graph: "+f.Table)
		r.Println(output.FormatKeyValue("Depends on", joinOrNone(f.Upstream)))
		r.Println(output.FormatKeyValue("Referenced by", joinOrNone(f.Downstream)))
		r.Println("")
	} else {
		r.Header(1, "Dependency Graph")
	}

	for i, level := range levels {
		r.Println(styles.Header2.Render(fmt.Sprintf("Level %d:", i)))
		for _, table := range level {
			r.Printf("  %s\n", styles.TableName.Render(table))
			if deps := graph.GetParents(table); len(deps) > 0 {
				r.Printf("    %s %s\n", styles.Muted.Render("depends on:"), strings.Join(deps, ", "))
			}
		}
		r.Println("")
	}

	if len(skipped) > 0 {
		r.Println(styles.Header2.Render("Cyclic references:"))
		for _, e := range skipped {
			r.Printf("  %s.%s -> %s\n", e.Table, e.Column, e.Target)
		}
		r.Println("")
	}

	r.Println(styles.Muted.Render(fmt.Sprintf("Total: %d tables, %d dependencies, %d roots, %d leaves",
		graph.NodeCount(), graph.EdgeCount(), len(graph.GetRoots()), len(graph.GetLeaves()))))
}

func graphMarkdown(r *output.Renderer, graph GraphQuerier, levels [][]string, skipped []SkippedEdge, f *focus) {
	if f != nil {
		r.Println(output.FormatHeader(1, "Dependency Graph: "+f.Table))
		r.Println("")
		r.Println(output.FormatKeyValue("Depends on", joinOrNone(f.Upstream)))
		r.Println(output.FormatKeyValue("Referenced by", joinOrNone(f.Downstream)))
	} else {
		r.Println(output.FormatHeader(1, "Dependency Graph"))
	}
	r.Println("")
	for i, level := range levels {
		r.Println(output.FormatHeader(2, fmt.Sprintf("Level %d", i)))
		r.Println("")
		for _, table := range level {
			deps := graph.GetParents(table)
			if len(deps) == 0 {
				r.Printf("- `%s`\n", table)
				continue
			}
			r.Printf("- `%s` (depends on: %s)\n", table, strings.Join(deps, ", "))
		}
		r.Println("")
	}
	if len(skipped) > 0 {
		r.Println(output.FormatHeader(2, "Cyclic references"))
		r.Println("")
		for _, e := range skipped {
			r.Printf("- `%s.%s` -> `%s`\n", e.Table, e.Column, e.Target)
		}
		r.Println("")
	}
	r.Println(output.FormatKeyValue("Tables", fmt.Sprint(graph.NodeCount())))
	r.Println(output.FormatKeyValue("Dependencies", fmt.Sprint(graph.EdgeCount())))
	r.Println(output.FormatKeyValue("Roots", joinOrNone(graph.GetRoots())))
	r.Println(output.FormatKeyValue("Leaves", fmt.Sprint(len(graph.GetLeaves()))))
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func graphJSON(r *output.Renderer, schema *core.Schema, graph *dag.Graph, levels [][]string, skipped []SkippedEdge, f *focus) error {
	parents := make(map[string][]string, graph.NodeCount())
	for _, level := range levels {
		for _, name := range level {
			deps := slices.Clone(graph.GetParents(name))
			slices.Sort(deps)
			parents[name] = deps
		}
	}
	out := GraphOutput{
		Catalog: schema.Catalog(),
		Levels:  levels,
		Parents: parents,
		Roots:   graph.GetRoots(),
		Leaves:  graph.GetLeaves(),
		Skipped: skipped,
		Tables:  graph.NodeCount(),
		Edges:   graph.EdgeCount(),
	}
	if f != nil {
		out.Table = f.Table
		out.Upstream = f.Upstream
		out.Downstream = f.Downstream
	}
	return r.JSON(out)
}
