package commands

import (
	"fmt"

	"github.com/leapstack-labs/omopcdm/internal/cli/output"
	"github.com/leapstack-labs/omopcdm/pkg/ddl"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
	"github.com/spf13/cobra"
)

// DDLOptions holds the flags shared by ddl and create.
type DDLOptions struct {
	Dialect       string
	Drop          bool
	NoIndexes     bool
	NoForeignKeys bool
	IfNotExists   bool
}

func (o *DDLOptions) generatorOptions(c *CommandContext) []ddl.Option {
	opts := []ddl.Option{
		ddl.WithLogger(c.Logger),
		ddl.WithConvention(c.Cfg.Convention()),
	}
	if o.NoIndexes {
		opts = append(opts, ddl.WithoutIndexes())
	}
	if o.NoForeignKeys {
		opts = append(opts, ddl.WithoutForeignKeys())
	}
	if o.IfNotExists {
		opts = append(opts, ddl.WithIfNotExists())
	}
	return opts
}

func addGeneratorFlags(cmd *cobra.Command, opts *DDLOptions) {
	cmd.Flags().BoolVar(&opts.NoIndexes, "no-indexes", false, "Skip CREATE INDEX statements")
	cmd.Flags().BoolVar(&opts.NoForeignKeys, "no-foreign-keys", false, "Skip foreign key constraints")
	cmd.Flags().BoolVar(&opts.IfNotExists, "if-not-exists", false, "Use CREATE TABLE IF NOT EXISTS")
}

// NewDDLCommand creates the ddl command.
func NewDDLCommand() *cobra.Command {
	opts := &DDLOptions{}
	cmd := &cobra.Command{
		Use:   "ddl",
		Short: "Print the DDL for the assembled schema",
		Long: `Print the CREATE statements for the configured catalog, overlays and
schema mapping, in the SQL flavour of a dialect. Nothing is executed.

The dialect defaults to the configured target type. Foreign keys a dialect
cannot express are reported on stderr.`,
		Example: `  # Postgres DDL with placeholders mapped
  omopcdm ddl --dialect postgres --vocab-schema vocab --cdm-schema cdm

  # DuckDB drop script
  omopcdm ddl --dialect duckdb --drop

  # Statements as JSON
  omopcdm ddl -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runDDL(cmdCtx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dialect, "dialect", "", "SQL dialect (default: target type)")
	cmd.Flags().BoolVar(&opts.Drop, "drop", false, "Print the drop script instead")
	addGeneratorFlags(cmd, opts)
	_ = cmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func runDDL(c *CommandContext, opts *DDLOptions) error {
	name := opts.Dialect
	if name == "" {
		name = c.Cfg.Target.Type
	}
	d, err := dialect.Lookup(name)
	if err != nil {
		return err
	}

	schema, err := c.Schema()
	if err != nil {
		return err
	}

	var script *ddl.Script
	if opts.Drop {
		script, err = ddl.Drop(schema, d, c.Cfg.SchemaMap())
	} else {
		script, err = ddl.Generate(schema, d, c.Cfg.SchemaMap(), opts.generatorOptions(c)...)
	}
	if err != nil {
		return err
	}

	r := c.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(script)
	case output.ModeMarkdown:
		r.Println(output.FormatCode("sql", script.String()))
	default:
		r.Printf("%s", script.String())
	}
	reportSkipped(r, script)
	return nil
}

func reportSkipped(r *output.Renderer, script *ddl.Script) {
	if len(script.Skipped) == 0 {
		return
	}
	r.Warning(fmt.Sprintf("%d foreign keys not expressible in %s:", len(script.Skipped), script.Dialect))
	for _, s := range script.Skipped {
		_, _ = fmt.Fprintf(r.ErrWriter(), "  %s.%s.%s -> %s (%s)\n", s.Schema, s.Table, s.Column, s.Target, s.Reason)
	}
}
