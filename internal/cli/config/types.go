// Package config loads the omopcdm CLI configuration.
//
// Values are layered with koanf: built-in defaults, then omopcdm.yaml, then
// OMOPCDM_* environment variables, then explicitly set flags.
package config

import (
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/leapstack-labs/omopcdm/pkg/naming"
)

// Config holds all CLI configuration options.
type Config struct {
	Catalog      string                        `koanf:"catalog"`
	Schemas      core.SchemaConfig             `koanf:"schemas"`
	Overlays     []string                      `koanf:"overlays"`
	StatePath    string                        `koanf:"state_path"`
	Verbose      bool                          `koanf:"verbose"`
	OutputFormat string                        `koanf:"output"`
	Target       *core.TargetConfig            `koanf:"target"`
	Targets      map[string]*core.TargetConfig `koanf:"targets"`
	Naming       *core.NamingConfig            `koanf:"naming"`

	// TargetName is the entry of Targets selected with --target, if any.
	TargetName string `koanf:"-"`
	// ProjectRoot is the directory relative paths were resolved against.
	ProjectRoot string `koanf:"-"`
}

// SchemaMap binds the placeholder schemas to the configured names.
func (c *Config) SchemaMap() core.SchemaMap {
	return c.Schemas.Map()
}

// Convention returns the naming convention with configured overrides.
func (c *Config) Convention() naming.Convention {
	if c.Naming == nil {
		return naming.Default
	}
	return naming.Default.Merge(naming.Convention{
		Index:      c.Naming.Index,
		Unique:     c.Naming.Unique,
		Check:      c.Naming.Check,
		ForeignKey: c.Naming.ForeignKey,
		PrimaryKey: c.Naming.PrimaryKey,
	})
}

// TargetLabel names the target for logs and the ledger.
func (c *Config) TargetLabel() string {
	if c.TargetName != "" {
		return c.TargetName
	}
	if c.Target != nil {
		return c.Target.Type
	}
	return ""
}

// Default configuration values.
const (
	DefaultOutput = "auto" // TTY=text, otherwise markdown
)
