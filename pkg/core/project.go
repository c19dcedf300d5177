package core

// ProjectConfig holds project-level configuration.
type ProjectConfig struct {
	Catalog   string        `koanf:"catalog"`
	Schemas   SchemaConfig  `koanf:"schemas"`
	Overlays  []string      `koanf:"overlays"`
	StatePath string        `koanf:"state_path"`
	Target    *TargetConfig `koanf:"target"`
	Naming    *NamingConfig `koanf:"naming"`
}

// SchemaConfig binds the placeholder schemas to physical names.
type SchemaConfig struct {
	Vocabulary string `koanf:"vocabulary"`
	CDM        string `koanf:"cdm"`
}

// Map converts the configuration into a SchemaMap. Empty names are left
// unmapped so the placeholder is used as is.
func (c SchemaConfig) Map() SchemaMap {
	m := SchemaMap{}
	if c.Vocabulary != "" {
		m[VocabularySchema] = c.Vocabulary
	}
	if c.CDM != "" {
		m[CDMSchema] = c.CDM
	}
	return m
}

// NamingConfig overrides constraint name templates. Empty entries keep the default.
type NamingConfig struct {
	Index      string `koanf:"ix"`
	Unique     string `koanf:"uq"`
	Check      string `koanf:"ck"`
	ForeignKey string `koanf:"fk"`
	PrimaryKey string `koanf:"pk"`
}

// TargetConfig holds database target configuration.
type TargetConfig struct {
	Type string `koanf:"type"` // duckdb, postgres

	// File-based databases (DuckDB)
	Database string `koanf:"database"` // file path or database name

	// Network databases
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Common
	Schema string `koanf:"schema"`

	// Additional driver-specific options
	Options map[string]string `koanf:"options"`

	// Params holds adapter-specific configuration (e.g., DuckDB extensions, settings)
	Params map[string]any `koanf:"params"`
}

// AdapterConfig converts the target into connection settings.
func (t *TargetConfig) AdapterConfig() AdapterConfig {
	cfg := AdapterConfig{
		Type:     t.Type,
		Host:     t.Host,
		Port:     t.Port,
		Database: t.Database,
		Username: t.User,
		Password: t.Password,
		Schema:   t.Schema,
		Options:  t.Options,
		Params:   t.Params,
	}
	if t.Type == "duckdb" {
		cfg.Path = t.Database
	}
	return cfg
}
