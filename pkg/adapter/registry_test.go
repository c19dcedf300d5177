package adapter

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

// stubAdapter records Connect and Close calls.
type stubAdapter struct {
	BaseSQLAdapter
	connectErr error
	connected  bool
	closed     bool
}

func (s *stubAdapter) Connect(_ context.Context, _ Config) error {
	if s.connectErr != nil {
		return s.connectErr
	}
	s.connected = true
	return nil
}

func (s *stubAdapter) Close() error {
	s.closed = true
	return nil
}

func (s *stubAdapter) ListTables(context.Context, string) ([]string, error) { return nil, nil }

func (s *stubAdapter) GetTableMetadata(context.Context, string) (*Metadata, error) {
	return nil, ErrNotConnected
}

func (s *stubAdapter) LoadCSV(context.Context, string, string, rune) error { return nil }

func (s *stubAdapter) Dialect() *dialect.Dialect { return testDialect }

// registerStub registers a factory returning stub under name.
func registerStub(name string, stub *stubAdapter) {
	Register(name, func(*slog.Logger) Adapter { return stub })
}

func TestUnknownAdapterError_Error(t *testing.T) {
	err := &UnknownAdapterError{Type: "oracle", Available: []string{"duckdb", "postgres"}}

	msg := err.Error()
	assert.Contains(t, msg, `"oracle"`)
	assert.Contains(t, msg, "[duckdb postgres]")
	assert.Contains(t, msg, "omopcdm.yaml")
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	registerStub("Stub_Mixed", &stubAdapter{})

	tests := []struct {
		name   string
		lookup string
	}{
		{"as registered", "Stub_Mixed"},
		{"lower", "stub_mixed"},
		{"upper", "STUB_MIXED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsRegistered(tt.lookup))
			factory, ok := Get(tt.lookup)
			require.True(t, ok)
			assert.NotNil(t, factory)
		})
	}

	assert.Contains(t, ListAdapters(), "stub_mixed", "names are listed lower case")
	assert.NotContains(t, ListAdapters(), "Stub_Mixed")
	assert.False(t, IsRegistered("stub_other"))
}

func TestNewAdapter_EmptyType(t *testing.T) {
	_, err := NewAdapter(Config{}, nil)
	require.Error(t, err)
	assert.Equal(t, "adapter type not specified", err.Error())
}

func TestOpen(t *testing.T) {
	t.Run("connects", func(t *testing.T) {
		stub := &stubAdapter{}
		registerStub("stub_ok", stub)

		adp, err := Open(context.Background(), Config{Type: "STUB_OK"}, nil)
		require.NoError(t, err)
		assert.Same(t, stub, adp)
		assert.True(t, stub.connected)
		assert.False(t, stub.closed)
	})

	t.Run("closes on connect failure", func(t *testing.T) {
		engineErr := errors.New("connection refused")
		stub := &stubAdapter{connectErr: engineErr}
		registerStub("stub_down", stub)

		adp, err := Open(context.Background(), Config{Type: "stub_down"}, nil)
		require.Error(t, err)
		assert.Nil(t, adp)
		assert.ErrorIs(t, err, engineErr)
		assert.Contains(t, err.Error(), "connect stub_down")
		assert.True(t, stub.closed)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := Open(context.Background(), Config{Type: "no_such_engine"}, nil)
		var unknown *UnknownAdapterError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "no_such_engine", unknown.Type)
	})
}
