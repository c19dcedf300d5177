package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	_ "github.com/leapstack-labs/omopcdm/pkg/catalog/all"
	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// generateCatalogDocs writes an index of the registered catalogs and one
// page per catalog listing every table and column.
func generateCatalogDocs(outDir string) error {
	log.Printf("Generating catalog docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	index := NewMarkdownWriter()
	index.Frontmatter("Catalogs", "OMOP CDM catalogs shipped with omopcdm")
	index.GeneratedMarker()
	index.Header(1, "Catalogs")

	var rows [][]string
	for _, def := range catalog.Definitions() {
		schema, err := catalog.Assemble(def.Name)
		if err != nil {
			return fmt.Errorf("catalog %s: %w", def.Name, err)
		}
		page := catalogPage(def, schema)
		file := pageName(def.Name)
		if err := os.WriteFile(filepath.Join(outDir, file), page, 0600); err != nil {
			return err
		}
		log.Printf("  Generated %s", file)

		link := fmt.Sprintf("[%s](/catalogs/%s)", InlineCode(def.Name), strings.TrimSuffix(file, ".md"))
		rows = append(rows, []string{link, schema.Version(), fmt.Sprint(schema.Len()), cleanDescription(def.Description)})
	}
	index.Table([]string{"Catalog", "Version", "Tables", "Description"}, rows)

	return os.WriteFile(filepath.Join(outDir, "index.md"), index.Bytes(), 0600)
}

// pageName maps a catalog name such as "5.4+custom" to a file name.
func pageName(name string) string {
	r := strings.NewReplacer(".", "-", "+", "-")
	return "cdm-" + r.Replace(name) + ".md"
}

func catalogPage(def catalog.Definition, schema *core.Schema) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CDM "+def.Name, def.Description)
	w.GeneratedMarker()
	w.Header(1, "CDM "+def.Name)
	if def.Description != "" {
		w.Paragraph(def.Description)
	}

	for _, ls := range core.LogicalSchemas() {
		names := schema.TableNamesIn(ls)
		if len(names) == 0 {
			continue
		}
		w.Header(2, InlineCode(string(ls)))
		for _, name := range names {
			t, _ := schema.Table(name)
			writeTable(w, t)
		}
	}
	return w.Bytes()
}

func writeTable(w *MarkdownWriter, t core.Table) {
	w.Header(3, t.Name)
	w.Paragraph("Entity " + InlineCode(t.Entity) + ".")

	var rows [][]string
	for _, c := range t.Columns {
		var flags []string
		if c.PrimaryKey {
			flags = append(flags, "PK")
		}
		if !c.Nullable {
			flags = append(flags, "NOT NULL")
		}
		if c.Index {
			flags = append(flags, "indexed")
		}
		ref := ""
		if c.IsForeignKey() {
			ref = InlineCode(c.References.String())
		}
		rows = append(rows, []string{InlineCode(c.Name), c.Type.String(), strings.Join(flags, ", "), ref})
	}
	w.Table([]string{"Column", "Type", "Constraints", "References"}, rows)

	if len(t.Relationships) == 0 {
		return
	}
	w.Paragraph("Relationships:")
	items := make([]string, 0, len(t.Relationships))
	for _, r := range t.Relationships {
		items = append(items, fmt.Sprintf("%s via %s to %s", InlineCode(r.Name), InlineCode(r.Field), InlineCode(r.TargetTable)))
	}
	w.BulletList(items)
}
