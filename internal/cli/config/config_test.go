package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/leapstack-labs/omopcdm/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/omopcdm/pkg/adapters/postgres"
	"github.com/leapstack-labs/omopcdm/pkg/catalog"
	_ "github.com/leapstack-labs/omopcdm/pkg/catalog/all"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/naming"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.StringP("target", "t", "", "")
	flags.String("catalog", "", "")
	flags.String("vocab-schema", "", "")
	flags.String("cdm-schema", "", "")
	flags.StringSlice("overlay", nil, "")
	flags.String("state", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.StringP("output", "o", "", "")
	return flags
}

func TestLoadConfigWithTarget_Fixtures(t *testing.T) {
	testdata, err := filepath.Abs("testdata")
	require.NoError(t, err)

	t.Run("duckdb", func(t *testing.T) {
		ResetConfig()
		cfg, err := LoadConfigWithTarget(filepath.Join("testdata", "duckdb.yaml"), "", nil)
		require.NoError(t, err)

		assert.Equal(t, "5.4+extras", cfg.Catalog)
		assert.Equal(t, core.NewSchemaMap("vocab", "cdm"), cfg.SchemaMap())
		assert.Equal(t, []string{filepath.Join(testdata, "overlays", "site.yaml")}, cfg.Overlays)
		assert.Equal(t, filepath.Join(testdata, "state", "ledger.db"), cfg.StatePath)
		assert.Equal(t, testdata, cfg.ProjectRoot)
		assert.Equal(t, "duckdb", cfg.Target.Type)
		assert.Equal(t, ":memory:", cfg.Target.Database)
		assert.Equal(t, "main", cfg.Target.Schema)
		assert.Equal(t, "duckdb", cfg.TargetLabel())
		assert.Equal(t, "auto", cfg.OutputFormat)
		assert.Equal(t, filepath.Join("testdata", "duckdb.yaml"), GetConfigFileUsed())
		assert.Same(t, cfg, GetCurrentConfig())

		conv := cfg.Convention()
		assert.Equal(t, "idx_%(table_name)s_%(column_0_N_name)s", conv.Index)
		assert.Equal(t, naming.Default.ForeignKey, conv.ForeignKey)
		require.NoError(t, cfg.Validate())
	})

	t.Run("base target", func(t *testing.T) {
		ResetConfig()
		cfg, err := LoadConfigWithTarget(filepath.Join("testdata", "targets.yaml"), "", nil)
		require.NoError(t, err)

		assert.Equal(t, "5.3.1", cfg.Catalog)
		assert.Equal(t, filepath.Join(testdata, "omop.duckdb"), cfg.Target.Database)
		assert.Empty(t, cfg.TargetName)
		assert.Empty(t, cfg.SchemaMap())
	})

	t.Run("named postgres target", func(t *testing.T) {
		ResetConfig()
		t.Setenv("OMOPCDM_TEST_PG_HOST", "db.internal")
		t.Setenv("OMOPCDM_TEST_PG_PASSWORD", "s3cret")

		cfg, err := LoadConfigWithTarget(filepath.Join("testdata", "targets.yaml"), "staging", nil)
		require.NoError(t, err)

		assert.Equal(t, "staging", cfg.TargetName)
		assert.Equal(t, "staging", cfg.TargetLabel())
		assert.Equal(t, "postgres", cfg.Target.Type)
		assert.Equal(t, "db.internal", cfg.Target.Host)
		assert.Equal(t, 6543, cfg.Target.Port)
		assert.Equal(t, "omop", cfg.Target.Database)
		assert.Equal(t, "s3cret", cfg.Target.Password)
		assert.Equal(t, "public", cfg.Target.Schema)
		assert.Equal(t, map[string]string{"sslmode": "require"}, cfg.Target.Options)
	})

	t.Run("named target inherits type", func(t *testing.T) {
		ResetConfig()
		cfg, err := LoadConfigWithTarget(filepath.Join("testdata", "targets.yaml"), "local", nil)
		require.NoError(t, err)

		assert.Equal(t, "duckdb", cfg.Target.Type)
		assert.Equal(t, filepath.Join(testdata, "local.duckdb"), cfg.Target.Database)
	})

	t.Run("unknown target", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfigWithTarget(filepath.Join("testdata", "targets.yaml"), "prod", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown target "prod" (available: local, staging)`)
	})

	t.Run("missing file", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfigWithTarget(filepath.Join("testdata", "nope.yaml"), "", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "omopcdm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigWithTarget_Precedence(t *testing.T) {
	cfgPath := writeConfig(t, "catalog: \"5.3.1\"\nschemas:\n  cdm: from_file\n")

	tests := []struct {
		name        string
		env         map[string]string
		setFlags    map[string]string
		wantCatalog string
		wantCDM     string
	}{
		{name: "file", wantCatalog: "5.3.1", wantCDM: "from_file"},
		{
			name:        "env over file",
			env:         map[string]string{"OMOPCDM_CATALOG": "6.0.0", "OMOPCDM_SCHEMAS__CDM": "from_env"},
			wantCatalog: "6.0.0",
			wantCDM:     "from_env",
		},
		{
			name:        "flag over env",
			env:         map[string]string{"OMOPCDM_CATALOG": "6.0.0", "OMOPCDM_SCHEMAS__CDM": "from_env"},
			setFlags:    map[string]string{"catalog": "5.4", "cdm-schema": "from_flag"},
			wantCatalog: "5.4",
			wantCDM:     "from_flag",
		},
		{
			name:        "unset flag keeps env",
			env:         map[string]string{"OMOPCDM_CATALOG": "6.0.0"},
			wantCatalog: "6.0.0",
			wantCDM:     "from_file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			for key, v := range tt.env {
				t.Setenv(key, v)
			}
			flags := rootFlags()
			for name, v := range tt.setFlags {
				require.NoError(t, flags.Set(name, v))
			}

			cfg, err := LoadConfigWithTarget(cfgPath, "", flags)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCatalog, cfg.Catalog)
			assert.Equal(t, tt.wantCDM, cfg.SchemaMap().Resolve(core.CDMSchema))
		})
	}
}

func TestLoadConfigWithTarget_FlagPaths(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "state_path: from_file.db\n")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	flags := rootFlags()
	require.NoError(t, flags.Set("state", "ledger.db"))
	require.NoError(t, flags.Set("overlay", "a.yaml"))
	require.NoError(t, flags.Set("overlay", "b.yaml"))
	require.NoError(t, flags.Set("verbose", "true"))
	require.NoError(t, flags.Set("target", "ignored"))

	cfg, err := LoadConfigWithTarget(cfgPath, "", flags)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cwd, "ledger.db"), cfg.StatePath)
	assert.Equal(t, []string{filepath.Join(cwd, "a.yaml"), filepath.Join(cwd, "b.yaml")}, cfg.Overlays)
	assert.True(t, cfg.Verbose)
	assert.Nil(t, cfg.Targets)
}

func TestLoadConfigWithTarget_InvalidTarget(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "target:\n  type: oracle\n")

	_, err := LoadConfigWithTarget(cfgPath, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid target configuration")
	assert.Contains(t, err.Error(), "unknown adapter type")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{Catalog: "5.4", OutputFormat: "auto"}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no catalog", mutate: func(c *Config) { c.Catalog = "" }, wantErr: "catalog is required"},
		{name: "unknown catalog", mutate: func(c *Config) { c.Catalog = "4.0" }, wantErr: `unknown catalog "4.0"`},
		{name: "bad output", mutate: func(c *Config) { c.OutputFormat = "xml" }, wantErr: "unknown output format"},
		{
			name:    "bad naming token",
			mutate:  func(c *Config) { c.Naming = &core.NamingConfig{ForeignKey: "fk_%(bogus)s"} },
			wantErr: "naming",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	var unknown *catalog.UnknownCatalogError
	cfg := valid()
	cfg.Catalog = "4.0"
	require.ErrorAs(t, cfg.Validate(), &unknown)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("OMOPCDM_TEST_USER", "etl")

	tests := []struct {
		in, want string
	}{
		{in: "${OMOPCDM_TEST_USER}", want: "etl"},
		{in: "user=${OMOPCDM_TEST_USER}!", want: "user=etl!"},
		{in: "${OMOPCDM_TEST_UNSET}", want: "${OMOPCDM_TEST_UNSET}"},
		{in: "plain", want: "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnvVars(tt.in))
		})
	}
}

func TestMergeTargetConfig(t *testing.T) {
	base := &core.TargetConfig{
		Type:    "postgres",
		Host:    "localhost",
		Port:    5432,
		Options: map[string]string{"sslmode": "disable", "application_name": "omopcdm"},
		Params:  map[string]any{"a": 1},
	}
	override := &core.TargetConfig{
		Host:    "db.internal",
		Options: map[string]string{"sslmode": "require"},
	}

	merged := MergeTargetConfig(base, override)
	assert.Equal(t, "postgres", merged.Type)
	assert.Equal(t, "db.internal", merged.Host)
	assert.Equal(t, 5432, merged.Port)
	assert.Equal(t, map[string]string{"sslmode": "require", "application_name": "omopcdm"}, merged.Options)
	assert.Equal(t, map[string]any{"a": 1}, merged.Params)

	// base untouched
	assert.Equal(t, "localhost", base.Host)
	assert.Equal(t, "disable", base.Options["sslmode"])

	assert.Same(t, override, MergeTargetConfig(nil, override))
	assert.Same(t, base, MergeTargetConfig(base, nil))
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
