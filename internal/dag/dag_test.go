package dag

import (
	"slices"
	"testing"
)

// vocabGraph models the vocabulary tables: concept depends on domain,
// vocabulary and concept_class; concept_ancestor depends on concept.
func vocabGraph(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	for _, id := range []string{"concept", "domain", "vocabulary", "concept_class", "concept_ancestor"} {
		g.AddNode(id, nil)
	}
	for _, e := range [][2]string{
		{"domain", "concept"},
		{"vocabulary", "concept"},
		{"concept_class", "concept"},
		{"concept", "concept_ancestor"},
	} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("add edge %v: %v", e, err)
		}
	}
	return g
}

func TestGraph_AddNodeAndEdge(t *testing.T) {
	g := vocabGraph(t)

	if g.NodeCount() != 5 {
		t.Errorf("expected 5 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 4 {
		t.Errorf("expected 4 edges, got %d", g.EdgeCount())
	}

	g.AddNode("concept", "updated")
	n, ok := g.GetNode("concept")
	if !ok || n.Data != "updated" {
		t.Errorf("expected node data to be replaced, got %v", n)
	}
	if g.EdgeCount() != 4 {
		t.Error("re-adding a node must keep its edges")
	}
}

func TestGraph_AddEdge_Errors(t *testing.T) {
	g := NewGraph()
	g.AddNode("person", nil)

	if err := g.AddEdge("person", "missing"); err == nil {
		t.Error("expected error for nonexistent child node")
	}
	if err := g.AddEdge("missing", "person"); err == nil {
		t.Error("expected error for nonexistent parent node")
	}
	if err := g.AddEdge("person", "person"); err == nil {
		t.Error("expected error for self-loop")
	}
}

func TestGraph_DuplicateEdges(t *testing.T) {
	g := NewGraph()
	g.AddNode("person", nil)
	g.AddNode("death", nil)

	_ = g.AddEdge("person", "death")
	_ = g.AddEdge("person", "death")

	if g.EdgeCount() != 1 {
		t.Errorf("expected 1 edge (no duplicates), got %d", g.EdgeCount())
	}
}

func TestGraph_Reaches(t *testing.T) {
	g := vocabGraph(t)

	if !g.Reaches("domain", "concept_ancestor") {
		t.Error("domain should reach concept_ancestor")
	}
	if g.Reaches("concept_ancestor", "domain") {
		t.Error("concept_ancestor should not reach domain")
	}
	if g.Reaches("domain", "vocabulary") {
		t.Error("siblings should not reach each other")
	}
}

func TestGraph_AddEdgeIfAcyclic(t *testing.T) {
	g := vocabGraph(t)

	// domain.domain_concept_id -> concept would close concept <-> domain
	added, err := g.AddEdgeIfAcyclic("concept", "domain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Error("edge closing a cycle must be skipped")
	}

	added, _ = g.AddEdgeIfAcyclic("concept", "concept")
	if added {
		t.Error("self reference must be skipped")
	}

	g.AddNode("drug_strength", nil)
	added, err = g.AddEdgeIfAcyclic("concept", "drug_strength")
	if err != nil || !added {
		t.Errorf("expected edge to be added, got added=%v err=%v", added, err)
	}

	if cyc, path := g.HasCycle(); cyc {
		t.Errorf("graph must stay acyclic, found %v", path)
	}
}

func TestGraph_HasCycle(t *testing.T) {
	g := vocabGraph(t)
	if cyc, path := g.HasCycle(); cyc {
		t.Errorf("expected no cycle, found %v", path)
	}

	_ = g.AddEdge("concept", "domain")
	cyc, path := g.HasCycle()
	if !cyc {
		t.Fatal("expected cycle to be detected")
	}
	if len(path) == 0 {
		t.Error("expected cycle path to be non-empty")
	}

	if _, err := g.TopologicalSort(); err == nil {
		t.Error("expected error sorting a cyclic graph")
	}
	if _, err := g.GetLevels(); err == nil {
		t.Error("expected error leveling a cyclic graph")
	}
}

func TestGraph_TopologicalSort(t *testing.T) {
	g := vocabGraph(t)

	sorted, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("failed to sort: %v", err)
	}

	ids := make([]string, len(sorted))
	for i, n := range sorted {
		ids[i] = n.ID
	}
	want := []string{"concept_class", "domain", "vocabulary", "concept", "concept_ancestor"}
	if !slices.Equal(ids, want) {
		t.Errorf("expected %v, got %v", want, ids)
	}
}

func TestGraph_GetLevels(t *testing.T) {
	g := vocabGraph(t)

	levels, err := g.GetLevels()
	if err != nil {
		t.Fatalf("failed to get levels: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}
	if !slices.Equal(levels[0], []string{"concept_class", "domain", "vocabulary"}) {
		t.Errorf("unexpected level 0: %v", levels[0])
	}
	if !slices.Equal(levels[2], []string{"concept_ancestor"}) {
		t.Errorf("unexpected level 2: %v", levels[2])
	}

	empty, err := NewGraph().GetLevels()
	if err != nil || len(empty) != 0 {
		t.Errorf("expected no levels for empty graph, got %v %v", empty, err)
	}
}

func TestGraph_UpstreamAndDownstream(t *testing.T) {
	g := vocabGraph(t)

	up := g.GetUpstreamNodes("concept_ancestor")
	if !slices.Equal(up, []string{"concept", "concept_class", "domain", "vocabulary"}) {
		t.Errorf("unexpected upstream: %v", up)
	}

	down := g.GetDownstreamNodes("domain")
	if !slices.Equal(down, []string{"concept", "concept_ancestor"}) {
		t.Errorf("unexpected downstream: %v", down)
	}
}

func TestGraph_RootsAndLeaves(t *testing.T) {
	g := vocabGraph(t)

	if roots := g.GetRoots(); !slices.Equal(roots, []string{"concept_class", "domain", "vocabulary"}) {
		t.Errorf("unexpected roots: %v", roots)
	}
	if leaves := g.GetLeaves(); !slices.Equal(leaves, []string{"concept_ancestor"}) {
		t.Errorf("unexpected leaves: %v", leaves)
	}
}

func TestGraph_Subgraph(t *testing.T) {
	g := vocabGraph(t)

	sub := g.Subgraph([]string{"domain", "concept", "missing"})
	if sub.NodeCount() != 2 {
		t.Errorf("expected 2 nodes, got %d", sub.NodeCount())
	}
	if sub.EdgeCount() != 1 {
		t.Errorf("expected 1 edge, got %d", sub.EdgeCount())
	}
	if children := sub.GetChildren("domain"); len(children) != 1 || children[0] != "concept" {
		t.Error("expected edge from domain to concept")
	}
}
