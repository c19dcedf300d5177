// Package verify deploys an assembled schema to a live database and checks
// it. The created table set must equal the expected golden set, every table
// must carry its columns in ordinal order, and every relationship must be
// joinable. Failures are reported, never corrected.
package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/leapstack-labs/omopcdm/pkg/adapter"
	"github.com/leapstack-labs/omopcdm/pkg/catalog/tableset"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/ddl"
)

// DefaultConcurrency bounds the number of relationship probes in flight.
const DefaultConcurrency = 4

// Harness runs the verification steps for one schema and one mapping.
type Harness struct {
	adapter adapter.Adapter
	schema  *core.Schema
	m       core.SchemaMap
	logger  *slog.Logger

	transactional bool
	keep          bool
	concurrency   int
	ddlOptions    []ddl.Option
}

// Option configures a Harness.
type Option func(*Harness)

// WithTransactional sets whether Setup runs the DDL in one transaction.
func WithTransactional(enabled bool) Option {
	return func(h *Harness) { h.transactional = enabled }
}

// WithKeep makes Run leave the created schema in place.
func WithKeep(keep bool) Option {
	return func(h *Harness) { h.keep = keep }
}

// WithConcurrency bounds concurrent relationship probes. Values below one
// run probes one at a time.
func WithConcurrency(n int) Option {
	return func(h *Harness) {
		if n < 1 {
			n = 1
		}
		h.concurrency = n
	}
}

// WithDDLOptions passes options through to ddl.Generate.
func WithDDLOptions(opts ...ddl.Option) Option {
	return func(h *Harness) { h.ddlOptions = append(h.ddlOptions, opts...) }
}

// New creates a harness. If logger is nil, a discard logger is used.
func New(adp adapter.Adapter, schema *core.Schema, m core.SchemaMap, logger *slog.Logger, opts ...Option) *Harness {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Harness{
		adapter:       adp,
		schema:        schema,
		m:             m,
		logger:        logger,
		transactional: true,
		concurrency:   DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Setup generates the DDL for the adapter's dialect and executes it.
func (h *Harness) Setup(ctx context.Context) (*ddl.Script, error) {
	opts := append([]ddl.Option{ddl.WithLogger(h.logger)}, h.ddlOptions...)
	script, err := ddl.Generate(h.schema, h.adapter.Dialect(), h.m, opts...)
	if err != nil {
		return nil, fmt.Errorf("generate ddl: %w", err)
	}

	h.logger.Info("creating schema",
		slog.String("catalog", h.schema.Catalog()),
		slog.String("dialect", script.Dialect),
		slog.Int("tables", len(script.Filter(ddl.KindCreateTable))),
		slog.Int("statements", len(script.Statements)),
		slog.Int("skipped_foreign_keys", len(script.Skipped)))

	if err := h.adapter.ExecScript(ctx, script.SQL(), h.transactional); err != nil {
		return script, fmt.Errorf("create schema: %w", err)
	}
	return script, nil
}

// physicalSchemas returns the sorted physical schemas the tables land in.
func (h *Harness) physicalSchemas() []string {
	var out []string
	for _, t := range h.schema.Tables() {
		if name := h.m.Resolve(t.Schema); !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Tables returns the sorted live table names across the mapped schemas.
func (h *Harness) Tables(ctx context.Context) ([]string, error) {
	var out []string
	for _, s := range h.physicalSchemas() {
		tables, err := h.adapter.ListTables(ctx, s)
		if err != nil {
			return nil, err
		}
		out = append(out, tables...)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// TableReport compares the live table set with an expected one.
type TableReport struct {
	Expected   []string
	Actual     []string
	Missing    []string
	Unexpected []string
}

// OK reports whether the sets are equal.
func (r *TableReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Unexpected) == 0
}

// Err returns a *TableSetMismatchError when the sets differ.
func (r *TableReport) Err() error {
	if r.OK() {
		return nil
	}
	return &TableSetMismatchError{Missing: r.Missing, Unexpected: r.Unexpected}
}

// TableSetMismatchError reports the difference between the live and the
// expected table set.
type TableSetMismatchError struct {
	Missing    []string
	Unexpected []string
}

func (e *TableSetMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected "+strings.Join(e.Unexpected, ", "))
	}
	return "table set mismatch: " + strings.Join(parts, "; ")
}

// CheckTables compares the live tables with expected.
func (h *Harness) CheckTables(ctx context.Context, expected tableset.Set) (*TableReport, error) {
	actual, err := h.Tables(ctx)
	if err != nil {
		return nil, err
	}
	missing, unexpected := expected.Diff(actual)
	report := &TableReport{
		Expected:   expected.Sorted(),
		Actual:     actual,
		Missing:    missing,
		Unexpected: unexpected,
	}
	if !report.OK() {
		h.logger.Warn("table set mismatch",
			slog.Any("missing", missing),
			slog.Any("unexpected", unexpected))
	}
	return report, nil
}

// Teardown drops everything Setup created.
func (h *Harness) Teardown(ctx context.Context) error {
	script, err := ddl.Drop(h.schema, h.adapter.Dialect(), h.m)
	if err != nil {
		return fmt.Errorf("generate drop: %w", err)
	}
	h.logger.Info("dropping schema", slog.Any("schemas", h.physicalSchemas()))
	if err := h.adapter.ExecScript(ctx, script.SQL(), false); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}

// Report is the outcome of Run.
type Report struct {
	Script  *ddl.Script
	Tables  *TableReport
	Columns []ColumnMismatch
	Probes  []ProbeResult
}

// FailedProbes returns the probes that returned an error.
func (r *Report) FailedProbes() []ProbeResult {
	var out []ProbeResult
	for _, p := range r.Probes {
		if p.Err != nil {
			out = append(out, p)
		}
	}
	return out
}

// Run executes setup, the table and column checks and the relationship
// probes, then tears down unless WithKeep is set. Teardown runs even when an
// earlier step fails; its error is joined to the returned one.
func (h *Harness) Run(ctx context.Context, expected tableset.Set) (report *Report, err error) {
	report = &Report{}
	if !h.keep {
		defer func() {
			if tdErr := h.Teardown(context.WithoutCancel(ctx)); tdErr != nil {
				err = errors.Join(err, tdErr)
			}
		}()
	}

	report.Script, err = h.Setup(ctx)
	if err != nil {
		return report, err
	}

	report.Tables, err = h.CheckTables(ctx, expected)
	if err != nil {
		return report, err
	}

	report.Columns, err = h.CheckColumns(ctx)
	if err != nil {
		return report, err
	}

	var probeErr error
	report.Probes, probeErr = h.ProbeRelationships(ctx)
	return report, errors.Join(report.Tables.Err(), columnsErr(report.Columns), probeErr)
}
