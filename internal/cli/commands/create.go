package commands

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/leapstack-labs/omopcdm/internal/cli/output"
	"github.com/leapstack-labs/omopcdm/internal/state"
	"github.com/leapstack-labs/omopcdm/pkg/ddl"
	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create command.
func NewCreateCommand() *cobra.Command {
	opts := &DDLOptions{}
	var noTransaction bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the schema on the target database",
		Long: `Generate the DDL for the configured catalog and execute it against the
configured target. Statements run in one transaction unless
--no-transaction is given. Every run is recorded in the deployment ledger.`,
		Example: `  omopcdm create
  omopcdm create --target staging --vocab-schema vocab --cdm-schema cdm
  omopcdm create --no-foreign-keys   # before bulk loading vocabularies`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runCreate(cmd.Context(), cmdCtx, opts, !noTransaction)
		},
	}

	addGeneratorFlags(cmd, opts)
	cmd.Flags().BoolVar(&noTransaction, "no-transaction", false, "Execute statements one by one without a transaction")
	return cmd
}

func runCreate(ctx context.Context, c *CommandContext, opts *DDLOptions, transactional bool) error {
	schema, err := c.Schema()
	if err != nil {
		return err
	}

	adp, err := c.OpenTarget(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = adp.Close() }()

	script, err := ddl.Generate(schema, adp.Dialect(), c.Cfg.SchemaMap(), opts.generatorOptions(c)...)
	if err != nil {
		return err
	}

	start := time.Now()
	err = c.Record(ctx, state.OperationCreate, func() (int, error) {
		if err := adp.ExecScript(ctx, script.SQL(), transactional); err != nil {
			return 0, err
		}
		return len(script.Statements), nil
	})
	if err != nil {
		c.Renderer.Error("create failed")
		return err
	}

	c.Logger.Info("schema created",
		slog.String("catalog", c.Cfg.Catalog),
		slog.String("target", c.Cfg.TargetLabel()),
		slog.Int("statements", len(script.Statements)),
		slog.Duration("elapsed", time.Since(start)))

	reportSkipped(c.Renderer, script)
	return renderDeployment(c.Renderer, "Created", script)
}

// NewDropCommand creates the drop command.
func NewDropCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop the mapped schemas from the target database",
		Long: `Drop every physical schema the configured mapping uses, with everything
in it. Tables in the target's default schema (public, main) are dropped
one by one instead, leaving the schema itself in place.

This is destructive and requires --yes.`,
		Example: `  omopcdm drop --yes
  omopcdm drop --target staging --cdm-schema cdm_scratch --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to drop %s on %s without --yes",
					strings.Join(cmdCtx.Cfg.SchemaMap().Physical(), ", "), cmdCtx.Cfg.TargetLabel())
			}
			return runDrop(cmd.Context(), cmdCtx)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the drop")
	return cmd
}

func runDrop(ctx context.Context, c *CommandContext) error {
	schema, err := c.Schema()
	if err != nil {
		return err
	}

	adp, err := c.OpenTarget(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = adp.Close() }()

	script, err := ddl.Drop(schema, adp.Dialect(), c.Cfg.SchemaMap())
	if err != nil {
		return err
	}

	err = c.Record(ctx, state.OperationDrop, func() (int, error) {
		if err := adp.ExecScript(ctx, script.SQL(), false); err != nil {
			return 0, err
		}
		return len(script.Statements), nil
	})
	if err != nil {
		c.Renderer.Error("drop failed")
		return err
	}
	return renderDeployment(c.Renderer, "Dropped", script)
}

// DeploymentSummary is the JSON form of create and drop results.
type DeploymentSummary struct {
	Action     string   `json:"action"`
	Dialect    string   `json:"dialect"`
	Statements int      `json:"statements"`
	Schemas    []string `json:"schemas,omitempty"`
	Tables     []string `json:"tables,omitempty"`
	Skipped    int      `json:"skipped_foreign_keys"`
}

func renderDeployment(r *output.Renderer, action string, script *ddl.Script) error {
	var schemas []string
	for _, st := range script.Statements {
		switch st.Kind {
		case ddl.KindCreateSchema, ddl.KindDropSchema, ddl.KindDropTable:
			if !slices.Contains(schemas, st.Schema) {
				schemas = append(schemas, st.Schema)
			}
		}
	}
	summary := DeploymentSummary{
		Action:     strings.ToLower(action),
		Dialect:    script.Dialect,
		Statements: len(script.Statements),
		Schemas:    schemas,
		Tables:     script.Tables(),
		Skipped:    len(script.Skipped),
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(summary)
	}

	r.Success(fmt.Sprintf("%s %s (%d statements)", action, strings.Join(schemas, ", "), summary.Statements))
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatKeyValue("Dialect", summary.Dialect))
		r.Println(output.FormatKeyValue("Statements", fmt.Sprint(summary.Statements)))
		if len(summary.Tables) > 0 {
			r.Println(output.FormatKeyValue("Tables", fmt.Sprint(len(summary.Tables))))
		}
	} else if len(summary.Tables) > 0 {
		r.Muted(fmt.Sprintf("%d tables", len(summary.Tables)))
	}
	return nil
}
