package ddl

import (
	"log/slog"

	"github.com/leapstack-labs/omopcdm/pkg/naming"
)

type options struct {
	logger      *slog.Logger
	convention  naming.Convention
	indexes     bool
	foreignKeys bool
	ifNotExists bool
}

func defaultOptions() options {
	return options{
		logger:      slog.New(slog.DiscardHandler),
		convention:  naming.Default,
		indexes:     true,
		foreignKeys: true,
	}
}

// Option configures Generate.
type Option func(*options)

// WithLogger sets the logger skipped constraints are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConvention overrides templates of the default naming convention.
func WithConvention(c naming.Convention) Option {
	return func(o *options) {
		o.convention = naming.Default.Merge(c)
	}
}

// WithoutIndexes omits CREATE INDEX statements.
func WithoutIndexes() Option {
	return func(o *options) { o.indexes = false }
}

// WithoutForeignKeys omits every foreign key constraint.
func WithoutForeignKeys() Option {
	return func(o *options) { o.foreignKeys = false }
}

// WithIfNotExists makes table and index creation idempotent.
func WithIfNotExists() Option {
	return func(o *options) { o.ifNotExists = true }
}
