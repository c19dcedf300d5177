package verify

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// ColumnMismatch is a live table whose columns differ from the assembled
// ones in name or ordinal order.
type ColumnMismatch struct {
	Table    string
	Expected []string
	Actual   []string
}

// ColumnOrderError lists the tables whose live columns differ.
type ColumnOrderError struct {
	Mismatches []ColumnMismatch
}

func (e *ColumnOrderError) Error() string {
	names := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		names[i] = m.Table
	}
	return "column order mismatch: " + strings.Join(names, ", ")
}

// CheckColumns reads every live table's columns and compares them, in
// order, with the assembled table. Tables absent from the database are
// left to CheckTables.
func (h *Harness) CheckColumns(ctx context.Context) ([]ColumnMismatch, error) {
	live, err := h.Tables(ctx)
	if err != nil {
		return nil, err
	}

	var out []ColumnMismatch
	for _, t := range h.schema.Tables() {
		if _, found := slices.BinarySearch(live, t.Name); !found {
			continue
		}
		meta, err := h.adapter.GetTableMetadata(ctx, h.m.Resolve(t.Schema)+"."+t.Name)
		if err != nil {
			return out, fmt.Errorf("read columns of %s: %w", t.Name, err)
		}
		actual := make([]string, len(meta.Columns))
		for i, c := range meta.Columns {
			actual[i] = strings.ToLower(c.Name)
		}
		if expected := t.ColumnNames(); !slices.Equal(expected, actual) {
			h.logger.Warn("column order mismatch",
				slog.String("table", t.Name),
				slog.Any("expected", expected),
				slog.Any("actual", actual))
			out = append(out, ColumnMismatch{Table: t.Name, Expected: expected, Actual: actual})
		}
	}
	return out, nil
}

func columnsErr(mismatches []ColumnMismatch) error {
	if len(mismatches) == 0 {
		return nil
	}
	return &ColumnOrderError{Mismatches: mismatches}
}
