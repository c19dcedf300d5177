package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/omopcdm/internal/cli/output"
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	"github.com/spf13/cobra"
)

// CatalogInfo describes one registered catalog.
type CatalogInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Tables      int    `json:"tables"`
	Selected    bool   `json:"selected"`
}

// NewCatalogsCommand creates the catalogs command.
func NewCatalogsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalogs",
		Short: "List the available CDM catalogs",
		Long: `List every registered catalog: the CDM releases and the variants built
from them with bundled overlays. The configured catalog is marked.`,
		Example: `  omopcdm catalogs
  omopcdm catalogs -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runCatalogs(cmdCtx)
		},
	}
}

func runCatalogs(c *CommandContext) error {
	var infos []CatalogInfo
	for _, def := range catalog.Definitions() {
		schema, err := catalog.Assemble(def.Name)
		if err != nil {
			return fmt.Errorf("assemble %s: %w", def.Name, err)
		}
		infos = append(infos, CatalogInfo{
			Name:        def.Name,
			Description: def.Description,
			Version:     schema.Version(),
			Tables:      schema.Len(),
			Selected:    def.Name == c.Cfg.Catalog,
		})
	}

	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	r.Header(1, "Catalogs")
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name
		if info.Selected {
			name += " *"
		}
		rows = append(rows, []string{name, info.Version, strconv.Itoa(info.Tables), info.Description})
	}
	r.Table([]string{"Catalog", "Version", "Tables", "Description"}, rows)
	return nil
}
