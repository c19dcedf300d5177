package commands

import (
	"fmt"
	"os"
	"path/filepath"

	intconfig "github.com/leapstack-labs/omopcdm/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new omopcdm project",
		Long: `Initialize a project directory with:
  - omopcdm.yaml with a DuckDB target and a named Postgres target
  - overlays/site.yaml, an example overlay file
  - .gitignore for the ledger and database files`,
		Example: `  omopcdm init
  omopcdm init my-warehouse
  omopcdm init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runInit(cmdCtx, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}

func runInit(c *CommandContext, dir string, force bool) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, intconfig.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", intconfig.ConfigFileName)
	}

	files, err := copyTemplate("project", dir, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	project, err := intconfig.LoadFromDir(dir)
	if err != nil {
		return fmt.Errorf("generated %s does not load: %w", intconfig.ConfigFileName, err)
	}

	r := c.Renderer
	styles := r.Styles()
	for _, f := range files {
		r.Printf("  %s %s\n", styles.StatusSuccess.String(), f)
	}
	r.Println("")
	r.Success("omopcdm project initialized")
	if project != nil {
		r.Muted(fmt.Sprintf("catalog %s, schemas %s/%s, target %s",
			project.Catalog, project.Schemas.Vocabulary, project.Schemas.CDM, project.Target.Type))
	}
	r.Println("")
	r.Println("Next steps:")
	r.Println("  omopcdm ddl        Print the DDL for the configured catalog")
	r.Println("  omopcdm verify     Create, check and drop the schema")
	r.Println("  omopcdm create     Deploy the schema to the target")
	return nil
}
