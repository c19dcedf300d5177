// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/omopcdm/internal/cli/output"
)

// ProjectConfig is the omopcdm.yaml written by SetupTestProject. The DuckDB
// database and the ledger live inside the project directory.
const ProjectConfig = `catalog: "5.4"
schemas:
  vocabulary: vocab
  cdm: cdm
overlays:
  - overlays/site.yaml
state_path: .omopcdm/state.db
target:
  type: duckdb
  database: omop.duckdb
targets:
  scratch:
    type: duckdb
    database: ":memory:"
`

// SiteOverlay widens person.person_id and adds one column to death.
const SiteOverlay = `name: site
operations:
  - op: replace_field
    entity: Person
    field:
      name: person_id
      type: BIGINT
      primary_key: true
  - op: insert_field
    entity: Death
    field:
      name: site_note
      type: TEXT
      position: 850
      nullable: true
`

// SetupTestProject creates a temporary project with a config file and one
// overlay file and returns its directory.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "overlays"), 0755); err != nil {
		t.Fatalf("failed to create overlays directory: %v", err)
	}
	WriteFile(t, filepath.Join(tmpDir, "omopcdm.yaml"), ProjectConfig)
	WriteFile(t, filepath.Join(tmpDir, "overlays", "site.yaml"), SiteOverlay)
	return tmpDir
}

// SetupVocabularyDir writes tab-delimited DOMAIN.csv and vocabulary.csv
// files the way vocabulary downloads name them and returns the directory.
func SetupVocabularyDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	WriteFile(t, filepath.Join(dir, "DOMAIN.csv"),
		"domain_id\tdomain_name\tdomain_concept_id\n"+
			"Condition\tCondition\t19\n"+
			"Drug\tDrug\t13\n")
	WriteFile(t, filepath.Join(dir, "vocabulary.csv"),
		"vocabulary_id\tvocabulary_name\tvocabulary_reference\tvocabulary_version\tvocabulary_concept_id\n"+
			"SNOMED\tSystematic Nomenclature of Medicine\thttp://www.snomed.org/\t2024-03-01\t44819097\n")
	return dir
}

// WriteFile writes content to path, failing the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererText creates a new test renderer in text mode (simulated TTY).
func NewTestRendererText() *TestRenderer {
	return NewTestRenderer(output.ModeText, true)
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON, false)
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	if n := strings.Count(md, "```"); n%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", n)
	}
	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
