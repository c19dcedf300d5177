package duckdb

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/omopcdm/pkg/core"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		want    *Params
		wantErr bool
	}{
		{name: "nil", input: nil, want: &Params{}},
		{
			name: "vocabulary bucket",
			input: map[string]any{
				"extensions": []any{"httpfs"},
				"secrets": []any{
					map[string]any{
						"type":     "s3",
						"provider": "credential_chain",
						"scope":    "s3://athena-vocab",
					},
				},
			},
			want: &Params{
				Extensions: []string{"httpfs"},
				Secrets:    []SecretConfig{{Type: "s3", Provider: "credential_chain", Scope: "s3://athena-vocab"}},
			},
		},
		{
			name: "settings are weakly typed",
			input: map[string]any{
				"settings": map[string]any{"threads": 4, "memory_limit": "8GB"},
			},
			want: &Params{Settings: map[string]string{"threads": "4", "memory_limit": "8GB"}},
		},
		{
			name:    "unknown key",
			input:   map[string]any{"extension": []any{"httpfs"}},
			wantErr: true,
		},
		{
			name:    "wrong shape",
			input:   map[string]any{"secrets": "s3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseParams(tt.input)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid duckdb params")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildCreateSecretSQL(t *testing.T) {
	useSSL := false
	tests := []struct {
		name string
		cfg  SecretConfig
		want string
	}{
		{
			name: "credential chain",
			cfg:  SecretConfig{Type: "s3", Provider: "credential_chain", Region: "eu-west-1"},
			want: "CREATE SECRET (\n    TYPE s3,\n    PROVIDER credential_chain,\n    REGION 'eu-west-1'\n)",
		},
		{
			name: "explicit keys are quoted",
			cfg:  SecretConfig{Type: "s3", KeyID: "AKIA", Secret: "it's", Endpoint: "minio:9000", URLStyle: "path", UseSSL: &useSSL},
			want: "CREATE SECRET (\n    TYPE s3,\n    KEY_ID 'AKIA',\n    SECRET 'it''s',\n    ENDPOINT 'minio:9000',\n    URL_STYLE 'path',\n    USE_SSL false\n)",
		},
		{
			name: "scope list",
			cfg:  SecretConfig{Type: "gcs", Scope: []any{"gs://vocab", "gs://cdm"}},
			want: "CREATE SECRET (\n    TYPE gcs,\n    SCOPE ('gs://vocab', 'gs://cdm')\n)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildCreateSecretSQL(tt.cfg))
		})
	}
}

func TestSettingStatements(t *testing.T) {
	got := settingStatements(map[string]string{"threads": "2", "memory_limit": "1GB"})
	assert.Equal(t, []string{"SET memory_limit = '1GB'", "SET threads = '2'"}, got)
	assert.Empty(t, settingStatements(nil))
}

func TestConnect_AppliesParams(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)
	require.NoError(t, adp.Connect(ctx, core.AdapterConfig{
		Path: ":memory:",
		Params: map[string]any{
			"settings": map[string]any{"threads": "2"},
		},
	}))
	defer func() { _ = adp.Close() }()

	rows, err := adp.Query(ctx, "SELECT current_setting('threads')")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()
	require.True(t, rows.Next())
	var threads string
	require.NoError(t, rows.Scan(&threads))
	assert.Equal(t, "2", threads)
}

// Installing an extension may download it, so this only runs when asked to.
func TestConnect_LoadsExtensions(t *testing.T) {
	if os.Getenv("OMOPCDM_TEST_DUCKDB_EXTENSIONS") == "" {
		t.Skip("set OMOPCDM_TEST_DUCKDB_EXTENSIONS=1 to install extensions")
	}
	ctx := context.Background()
	adp := New(nil)
	require.NoError(t, adp.Connect(ctx, core.AdapterConfig{
		Path:   ":memory:",
		Params: map[string]any{"extensions": []any{"json"}},
	}))
	defer func() { _ = adp.Close() }()

	rows, err := adp.Query(ctx, "SELECT loaded FROM duckdb_extensions() WHERE extension_name = 'json'")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()
	require.True(t, rows.Next())
	var loaded bool
	require.NoError(t, rows.Scan(&loaded))
	assert.True(t, loaded)
}

func TestConnect_RejectsBadParams(t *testing.T) {
	adp := New(nil)
	err := adp.Connect(context.Background(), core.AdapterConfig{
		Path:   ":memory:",
		Params: map[string]any{"bogus": true},
	})
	require.Error(t, err)
}
