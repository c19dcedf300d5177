package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/leapstack-labs/omopcdm/internal/cli/output"
	"github.com/leapstack-labs/omopcdm/internal/state"
	"github.com/leapstack-labs/omopcdm/internal/verify"
	"github.com/leapstack-labs/omopcdm/pkg/catalog/tableset"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/spf13/cobra"
)

// VerifyOptions holds options for the verify command.
type VerifyOptions struct {
	Concurrency   int
	NoTransaction bool
	Keep          bool
}

// VerifyOutput is the JSON form of a verification run.
type VerifyOutput struct {
	Catalog      string        `json:"catalog"`
	Target       string        `json:"target"`
	Statements   int           `json:"statements"`
	Expected     int           `json:"expected_tables"`
	Missing      []string      `json:"missing,omitempty"`
	Unexpected   []string      `json:"unexpected,omitempty"`
	Columns      []string      `json:"column_mismatches,omitempty"`
	Probes       int           `json:"probes"`
	FailedProbes []ProbeOutput `json:"failed_probes,omitempty"`
	Passed       bool          `json:"passed"`
}

// ProbeOutput describes one failed relationship probe.
type ProbeOutput struct {
	Table        string `json:"table"`
	Relationship string `json:"relationship"`
	Error        string `json:"error"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand() *cobra.Command {
	opts := &VerifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Create, check and drop the schema on the target",
		Long: `Round-trip the assembled schema through the target database:

  1. create every table (one transaction by default)
  2. compare the live table set with the catalog's expected set
  3. run one join probe per relationship
  4. drop what was created, even after a failure (unless --keep)

Failures are reported, never corrected. For catalogs with extra overlay
files the expected set is the assembled schema's own table list.`,
		Example: `  omopcdm verify
  omopcdm verify --catalog 6.0.0 --vocab-schema vocab --cdm-schema cdm
  omopcdm verify --target staging --concurrency 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runVerify(cmd.Context(), cmdCtx, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", verify.DefaultConcurrency, "Relationship probes run in parallel")
	cmd.Flags().BoolVar(&opts.NoTransaction, "no-transaction", false, "Create tables without a transaction")
	cmd.Flags().BoolVar(&opts.Keep, "keep", false, "Leave the schema in place afterwards")
	return cmd
}

// expectedTables returns the golden set for the configured catalog, or the
// schema's own tables when overlay files change it.
func expectedTables(c *CommandContext, schema *core.Schema) tableset.Set {
	if len(c.Cfg.Overlays) == 0 {
		if set, err := tableset.For(c.Cfg.Catalog); err == nil {
			return set
		}
	}
	return tableset.Of(schema.TableNames()...)
}

func runVerify(ctx context.Context, c *CommandContext, opts *VerifyOptions) error {
	schema, err := c.Schema()
	if err != nil {
		return err
	}

	adp, err := c.OpenTarget(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = adp.Close() }()

	h := verify.New(adp, schema, c.Cfg.SchemaMap(), c.Logger,
		verify.WithConcurrency(opts.Concurrency),
		verify.WithTransactional(!opts.NoTransaction),
		verify.WithKeep(opts.Keep))
	expected := expectedTables(c, schema)

	var report *verify.Report
	runErr := c.Record(ctx, state.OperationVerify, func() (int, error) {
		var err error
		report, err = h.Run(ctx, expected)
		if report == nil || report.Script == nil {
			return 0, err
		}
		return len(report.Script.Statements), err
	})

	if report != nil && report.Tables != nil {
		if err := renderVerify(c, expected, report); err != nil {
			return err
		}
	}
	if runErr != nil {
		c.Renderer.Error("verification failed")
		return runErr
	}
	c.Renderer.Success("verification passed")
	return nil
}

func renderVerify(c *CommandContext, expected tableset.Set, report *verify.Report) error {
	out := VerifyOutput{
		Catalog:    c.Cfg.Catalog,
		Target:     c.Cfg.TargetLabel(),
		Expected:   len(expected),
		Missing:    report.Tables.Missing,
		Unexpected: report.Tables.Unexpected,
		Probes:     len(report.Probes),
	}
	for _, m := range report.Columns {
		out.Columns = append(out.Columns, m.Table)
	}
	if report.Script != nil {
		out.Statements = len(report.Script.Statements)
	}
	for _, p := range report.FailedProbes() {
		out.FailedProbes = append(out.FailedProbes, ProbeOutput{
			Table:        p.Table,
			Relationship: p.Relationship,
			Error:        p.Err.Error(),
		})
	}
	out.Passed = report.Tables.OK() && len(out.Columns) == 0 && len(out.FailedProbes) == 0

	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	r.Header(1, "Verification: "+out.Catalog)
	tablesStatus := "ok"
	if !report.Tables.OK() {
		tablesStatus = "mismatch"
	}
	columnStatus := "ok"
	if len(out.Columns) > 0 {
		columnStatus = fmt.Sprintf("%d mismatched", len(out.Columns))
	}
	probeStatus := "ok"
	if len(out.FailedProbes) > 0 {
		probeStatus = fmt.Sprintf("%d failed", len(out.FailedProbes))
	}
	r.Table([]string{"Check", "Result", "Detail"}, [][]string{
		{"Statements", "executed", fmt.Sprint(out.Statements)},
		{"Tables", tablesStatus, fmt.Sprintf("%d expected, %d found", out.Expected, len(report.Tables.Actual))},
		{"Columns", columnStatus, "ordinal order"},
		{"Relationships", probeStatus, fmt.Sprintf("%d probes", out.Probes)},
	})
	for _, name := range out.Missing {
		r.Printf("- missing table: %s\n", name)
	}
	for _, name := range out.Unexpected {
		r.Printf("- unexpected table: %s\n", name)
	}
	for _, m := range report.Columns {
		r.Printf("- %s columns: got %s, want %s\n", m.Table, strings.Join(m.Actual, ", "), strings.Join(m.Expected, ", "))
	}
	for _, p := range out.FailedProbes {
		r.Printf("- %s.%s: %s\n", p.Table, p.Relationship, p.Error)
	}
	return nil
}
