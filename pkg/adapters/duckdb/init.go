package duckdb

import (
	"log/slog"

	"github.com/leapstack-labs/omopcdm/pkg/adapter"
)

func init() {
	adapter.Register("duckdb", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
