package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/omopcdm/internal/cli/config"
	"github.com/leapstack-labs/omopcdm/internal/cli/output"
	intconfig "github.com/leapstack-labs/omopcdm/internal/config"
	"github.com/leapstack-labs/omopcdm/internal/state"
	"github.com/leapstack-labs/omopcdm/pkg/adapter"
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	"github.com/leapstack-labs/omopcdm/pkg/compose"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the context from the config and logger the root
// command stored, falling back to defaults.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig(cmd.Context())
	mode, err := output.ParseMode(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}, nil
}

// getConfig returns the loaded configuration or the built-in defaults.
func getConfig(ctx context.Context) *config.Config {
	if cfg := config.FromContext(ctx); cfg != nil {
		return cfg
	}
	target := &core.TargetConfig{}
	intconfig.ApplyTargetDefaults(target)
	return &config.Config{
		Catalog:      intconfig.DefaultCatalog,
		StatePath:    intconfig.DefaultStateFile,
		OutputFormat: config.DefaultOutput,
		Target:       target,
	}
}

// Schema assembles the configured catalog with the configured overlay files.
func (c *CommandContext) Schema() (*core.Schema, error) {
	extra := make([]compose.Overlay, 0, len(c.Cfg.Overlays))
	for _, path := range c.Cfg.Overlays {
		ov, err := compose.LoadOverlayFile(path)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("loaded overlay", slog.String("path", path), slog.String("name", ov.Name), slog.Int("operations", len(ov.Ops)))
		extra = append(extra, ov)
	}

	schema, err := catalog.Assemble(c.Cfg.Catalog, extra...)
	if err != nil {
		return nil, fmt.Errorf("assemble %s: %w", c.Cfg.Catalog, err)
	}
	c.Logger.Debug("assembled schema", slog.String("catalog", c.Cfg.Catalog), slog.Int("tables", schema.Len()))
	return schema, nil
}

// OpenTarget connects to the configured target.
func (c *CommandContext) OpenTarget(ctx context.Context) (adapter.Adapter, error) {
	return adapter.Open(ctx, c.Cfg.Target.AdapterConfig(), c.Logger)
}

// OpenLedger opens and migrates the deployment ledger.
func (c *CommandContext) OpenLedger() (*state.SQLiteStore, error) {
	store := state.NewSQLiteStore(c.Logger)
	if err := store.Open(c.Cfg.StatePath); err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// Record runs fn as a ledger deployment. fn returns the number of executed
// statements. Ledger failures are logged and never mask fn's error.
func (c *CommandContext) Record(ctx context.Context, op state.Operation, fn func() (int, error)) error {
	store, err := c.OpenLedger()
	if err != nil {
		c.Logger.Warn("deployment ledger unavailable", slog.String("path", c.Cfg.StatePath), slog.Any("error", err))
		_, runErr := fn()
		return runErr
	}
	defer func() { _ = store.Close() }()

	d, err := store.StartDeployment(ctx, c.Cfg.Catalog, c.Cfg.TargetLabel(), op, formatSchemaMap(c.Cfg.SchemaMap()))
	if err != nil {
		c.Logger.Warn("failed to record deployment", slog.Any("error", err))
		_, runErr := fn()
		return runErr
	}

	n, runErr := fn()
	if err := store.CompleteDeployment(context.WithoutCancel(ctx), d.ID, n, runErr); err != nil {
		c.Logger.Warn("failed to complete deployment", slog.String("id", d.ID), slog.Any("error", err))
	}
	return runErr
}

// formatSchemaMap renders a map as "vocabulary_schema=vocab,cdm_schema=cdm"
// with every placeholder listed.
func formatSchemaMap(m core.SchemaMap) string {
	parts := make([]string, 0, 2)
	for _, s := range core.LogicalSchemas() {
		parts = append(parts, string(s)+"="+m.Resolve(s))
	}
	return strings.Join(parts, ",")
}
