package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// ProbeResult is the outcome of one relationship probe.
type ProbeResult struct {
	Table        string
	Relationship string
	SQL          string
	Err          error
}

// ProbeError wraps the engine error of a failed probe.
type ProbeError struct {
	Table        string
	Relationship string
	Err          error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("relationship %s.%s: %v", e.Table, e.Relationship, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// probeSQL renders a join from the referencing table to the target that
// returns at most one row.
func (h *Harness) probeSQL(t core.Table, rel core.ResolvedRelationship) string {
	d := h.adapter.Dialect()
	src := d.Qualify(h.m.Resolve(t.Schema), t.Name)
	tgt := d.Qualify(h.m.Resolve(rel.TargetSchema), rel.TargetTable)
	field := d.QuoteIdentifierIfNeeded(rel.Field)
	col := d.QuoteIdentifierIfNeeded(rel.TargetColumn)
	return fmt.Sprintf("SELECT src.%s, tgt.%s FROM %s src LEFT JOIN %s tgt ON src.%s = tgt.%s LIMIT 1",
		field, col, src, tgt, field, col)
}

// ProbeRelationships runs one probe per relationship, bounded by the
// harness concurrency. Results are in table then relationship order; the
// returned error joins every failed probe.
func (h *Harness) ProbeRelationships(ctx context.Context) ([]ProbeResult, error) {
	var results []ProbeResult
	for _, name := range h.schema.TableNames() {
		t, _ := h.schema.Table(name)
		for _, rel := range t.Relationships {
			results = append(results, ProbeResult{
				Table:        t.Name,
				Relationship: rel.Name,
				SQL:          h.probeSQL(t, rel),
			})
		}
	}

	var g errgroup.Group
	g.SetLimit(h.concurrency)
	for i := range results {
		g.Go(func() error {
			results[i].Err = h.probe(ctx, results[i].SQL)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, &ProbeError{Table: r.Table, Relationship: r.Relationship, Err: r.Err})
		}
	}
	h.logger.Info("probed relationships",
		slog.Int("probes", len(results)),
		slog.Int("failed", len(errs)))
	return results, errors.Join(errs...)
}

func (h *Harness) probe(ctx context.Context, query string) error {
	rows, err := h.adapter.Query(ctx, query)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
	}
	return rows.Err()
}
