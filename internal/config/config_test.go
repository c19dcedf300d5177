package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/omopcdm/internal/config"
	"github.com/leapstack-labs/omopcdm/pkg/adapter"
	_ "github.com/leapstack-labs/omopcdm/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/omopcdm/pkg/adapters/postgres"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTargetDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   core.TargetConfig
		want core.TargetConfig
	}{
		{
			name: "empty defaults to duckdb",
			in:   core.TargetConfig{},
			want: core.TargetConfig{Type: "duckdb", Schema: "main"},
		},
		{
			name: "postgres gets port and public",
			in:   core.TargetConfig{Type: "Postgres", Host: "db"},
			want: core.TargetConfig{Type: "postgres", Host: "db", Port: 5432, Schema: "public"},
		},
		{
			name: "explicit values kept",
			in:   core.TargetConfig{Type: "postgres", Port: 6543, Schema: "omop"},
			want: core.TargetConfig{Type: "postgres", Port: 6543, Schema: "omop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			config.ApplyTargetDefaults(&got)
			assert.Equal(t, tt.want, got)
		})
	}

	config.ApplyTargetDefaults(nil)
}

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name    string
		target  *core.TargetConfig
		wantErr string
	}{
		{name: "duckdb", target: &core.TargetConfig{Type: "duckdb"}},
		{name: "postgres", target: &core.TargetConfig{Type: "postgres", Host: "localhost"}},
		{name: "nil", target: nil, wantErr: "target is required"},
		{name: "no type", target: &core.TargetConfig{}, wantErr: "target type is required"},
		{name: "postgres without host", target: &core.TargetConfig{Type: "postgres"}, wantErr: "requires host"},
		{name: "unknown", target: &core.TargetConfig{Type: "oracle"}, wantErr: "unknown adapter type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.ValidateTarget(tt.target)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	var unknown *adapter.UnknownAdapterError
	require.ErrorAs(t, config.ValidateTarget(&core.TargetConfig{Type: "oracle"}), &unknown)
	assert.Contains(t, unknown.Available, "duckdb")
}

func TestLoadFromDir(t *testing.T) {
	t.Run("no config", func(t *testing.T) {
		cfg, err := config.LoadFromDir(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("yml with defaults", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "omopcdm.yml"), []byte(`
schemas:
  vocabulary: vocab
  cdm: cdm
target:
  type: postgres
  host: localhost
`), 0o600))

		cfg, err := config.LoadFromDir(dir)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, config.DefaultCatalog, cfg.Catalog)
		assert.Equal(t, config.DefaultStateFile, cfg.StatePath)
		assert.Equal(t, core.NewSchemaMap("vocab", "cdm"), cfg.Schemas.Map())
		assert.Equal(t, 5432, cfg.Target.Port)
		assert.Equal(t, "public", cfg.Target.Schema)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "omopcdm.yaml"), []byte("catalog: [\n"), 0o600))
		_, err := config.LoadFromDir(dir)
		require.Error(t, err)
	})
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ConfigFileName), []byte("catalog: \"5.4\"\n"), 0o600))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, root, config.FindProjectRoot(nested))
	assert.Equal(t, filepath.Join(root, config.ConfigFileName), config.FindConfigFile(root))
	assert.Empty(t, config.FindConfigFile(nested))
}
