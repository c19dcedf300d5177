package state

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/leapstack-labs/omopcdm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(filepath.Join(t.TempDir(), "state.db")))
	require.NoError(t, store.Migrate())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// clock returns a now func that advances one second per call.
func clock(start time.Time) func() time.Time {
	current := start.Add(-time.Second)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func TestSQLiteStore_OpenClose(t *testing.T) {
	t.Run("file in nested directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".omopcdm", "state.db")
		store := NewSQLiteStore(nil)
		require.NoError(t, store.Open(path))
		assert.Equal(t, path, store.Path())
		require.NoError(t, store.Close())
		assert.FileExists(t, path)
	})

	t.Run("in memory", func(t *testing.T) {
		store := NewSQLiteStore(nil)
		require.NoError(t, store.Open(":memory:"))
		require.NoError(t, store.Migrate())
		_, err := store.StartDeployment(context.Background(), "5.4", "duckdb", OperationCreate, "")
		require.NoError(t, err)
		require.NoError(t, store.Close())
	})

	t.Run("close twice", func(t *testing.T) {
		store := NewSQLiteStore(nil)
		require.NoError(t, store.Open(":memory:"))
		require.NoError(t, store.Close())
		require.NoError(t, store.Close())
	})
}

func TestSQLiteStore_NotOpened(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(nil)

	assert.ErrorIs(t, store.Migrate(), ErrNotOpened)
	_, err := store.MigrationVersion()
	assert.ErrorIs(t, err, ErrNotOpened)
	_, err = store.StartDeployment(ctx, "5.4", "duckdb", OperationCreate, "")
	assert.ErrorIs(t, err, ErrNotOpened)
	assert.ErrorIs(t, store.CompleteDeployment(ctx, "x", 0, nil), ErrNotOpened)
	_, err = store.GetDeployment(ctx, "x")
	assert.ErrorIs(t, err, ErrNotOpened)
	_, err = store.ListDeployments(ctx, 10)
	assert.ErrorIs(t, err, ErrNotOpened)
}

func TestSQLiteStore_Migrate(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.MigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// running again is a no-op
	require.NoError(t, store.Migrate())
}

func TestSQLiteStore_DeploymentLifecycle(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		runErr     error
		statements int
		wantStatus Status
		wantError  string
	}{
		{name: "completed", statements: 42, wantStatus: StatusCompleted},
		{name: "failed", runErr: errors.New("statement 3 (CREATE TABLE cdm.person): boom"), statements: 3, wantStatus: StatusFailed, wantError: "statement 3 (CREATE TABLE cdm.person): boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := setupTestStore(t)
			store.now = clock(start)

			d, err := store.StartDeployment(ctx, "5.4", "duckdb", OperationCreate, "vocabulary_schema=vocab,cdm_schema=cdm")
			require.NoError(t, err)
			assert.NotEmpty(t, d.ID)
			assert.Equal(t, StatusRunning, d.Status)
			assert.Zero(t, d.Duration())

			running, err := store.GetDeployment(ctx, d.ID)
			require.NoError(t, err)
			assert.Equal(t, StatusRunning, running.Status)
			assert.Nil(t, running.CompletedAt)
			assert.Equal(t, start, running.StartedAt)

			require.NoError(t, store.CompleteDeployment(ctx, d.ID, tt.statements, tt.runErr))

			got, err := store.GetDeployment(ctx, d.ID)
			require.NoError(t, err)
			assert.Equal(t, "5.4", got.Catalog)
			assert.Equal(t, "duckdb", got.Target)
			assert.Equal(t, OperationCreate, got.Operation)
			assert.Equal(t, "vocabulary_schema=vocab,cdm_schema=cdm", got.SchemaMap)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.statements, got.Statements)
			assert.Equal(t, tt.wantError, got.Error)
			require.NotNil(t, got.CompletedAt)
			assert.Equal(t, time.Second, got.Duration())
		})
	}
}

func TestSQLiteStore_UnknownDeployment(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	_, err := store.GetDeployment(ctx, "missing")
	assert.ErrorIs(t, err, ErrDeploymentNotFound)

	err = store.CompleteDeployment(ctx, "missing", 0, nil)
	assert.ErrorIs(t, err, ErrDeploymentNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestSQLiteStore_ListDeployments(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	store.now = clock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	var ids []string
	for _, op := range []Operation{OperationCreate, OperationVerify, OperationDrop} {
		d, err := store.StartDeployment(ctx, "5.3.1", "postgres", op, "")
		require.NoError(t, err)
		ids = append(ids, d.ID)
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "all", limit: 0, want: []string{ids[2], ids[1], ids[0]}},
		{name: "limited", limit: 2, want: []string{ids[2], ids[1]}},
		{name: "over limit", limit: 10, want: []string{ids[2], ids[1], ids[0]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.ListDeployments(ctx, tt.limit)
			require.NoError(t, err)
			gotIDs := make([]string, len(got))
			for i, d := range got {
				gotIDs[i] = d.ID
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}

func TestSQLiteStore_ListDeployments_Empty(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.ListDeployments(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}
