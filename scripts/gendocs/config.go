package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	intconfig "github.com/leapstack-labs/omopcdm/internal/config"
	"github.com/leapstack-labs/omopcdm/pkg/adapter"
	"github.com/leapstack-labs/omopcdm/pkg/naming"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Category    string // "project", "target", "naming"
}

// getConfigSchema mirrors internal/cli/config.Config and core.TargetConfig.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "catalog", Type: "string", Default: intconfig.DefaultCatalog, Description: "Catalog to assemble (see `omopcdm catalogs`)", Category: "project"},
		{Name: "schemas.vocabulary", Type: "string", Default: "vocabulary_schema", Description: "Physical schema for vocabulary tables", Category: "project"},
		{Name: "schemas.cdm", Type: "string", Default: "cdm_schema", Description: "Physical schema for clinical tables", Category: "project"},
		{Name: "overlays", Type: "[]string", Description: "Overlay files applied after the catalog's own overlays, in order", Category: "project"},
		{Name: "state_path", Type: "string", Default: intconfig.DefaultStateFile, Description: "Deployment ledger database", Category: "project"},
		{Name: "output", Type: "string", Default: "auto", Description: "Output format: auto, text, markdown, json", Category: "project"},

		{Name: "type", Type: "string", Default: intconfig.DefaultTargetType, Description: "Adapter: " + strings.Join(adapter.ListAdapters(), ", "), Category: "target"},
		{Name: "database", Type: "string", Description: "File path (DuckDB) or database name", Category: "target"},
		{Name: "host", Type: "string", Description: "Database host (PostgreSQL)", Category: "target"},
		{Name: "port", Type: "int", Default: fmt.Sprint(intconfig.DefaultPostgres), Description: "Database port (PostgreSQL)", Category: "target"},
		{Name: "user", Type: "string", Description: "Database username", Category: "target"},
		{Name: "password", Type: "string", Description: "Database password", Category: "target"},
		{Name: "options", Type: "map[string]string", Description: "Additional driver-specific options", Category: "target"},
		{Name: "params", Type: "map[string]any", Description: "Adapter-specific configuration (extensions, settings)", Category: "target"},

		{Name: "naming.ix", Type: "string", Default: naming.Default.Index, Description: "Index name template", Category: "naming"},
		{Name: "naming.fk", Type: "string", Default: naming.Default.ForeignKey, Description: "Foreign key name template", Category: "naming"},
		{Name: "naming.pk", Type: "string", Default: naming.Default.PrimaryKey, Description: "Primary key name template", Category: "naming"},
		{Name: "naming.uq", Type: "string", Default: naming.Default.Unique, Description: "Unique constraint name template", Category: "naming"},
		{Name: "naming.ck", Type: "string", Default: naming.Default.Check, Description: "Check constraint name template", Category: "naming"},
	}
}

func configRows(category string) [][]string {
	var rows [][]string
	for _, f := range getConfigSchema() {
		if f.Category != category {
			continue
		}
		defVal := "-"
		if f.Default != "" {
			defVal = InlineCode(f.Default)
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, defVal, f.Description})
	}
	return rows
}

// generateConfigDocs generates the omopcdm.yaml reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "omopcdm configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("omopcdm reads `omopcdm.yaml` from the current directory or the nearest parent. Run `omopcdm init` to create one.")

	headers := []string{"Field", "Type", "Default", "Description"}

	w.Header(2, "Project Settings")
	w.Table(headers, configRows("project"))

	w.Header(2, "Target Configuration")
	w.Paragraph("The `target` key is the default deployment target. Named entries under `targets` are merged over it when selected with `--target`.")
	w.Table(headers, configRows("target"))

	w.Header(2, "Constraint Naming")
	w.Paragraph("Templates use the `%(token)s` placeholders of the naming convention. Unset keys keep the default.")
	w.Table(headers, configRows("naming"))

	w.Header(2, "Environment Variables")
	w.Paragraph("Use `${VAR_NAME}` syntax to reference environment variables in your configuration:")
	w.CodeBlock("yaml", `targets:
  warehouse:
    type: postgres
    password: ${OMOP_PG_PASSWORD}`)

	filename := filepath.Join(outDir, "configuration.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}
