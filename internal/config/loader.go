package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "omopcdm.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "omopcdm.yml"

// LoadFromDir loads a ProjectConfig from omopcdm.yaml or omopcdm.yml in dir.
// Returns nil, nil if no config file is found.
func LoadFromDir(dir string) (*core.ProjectConfig, error) {
	path := FindConfigFile(dir)
	if path == "" {
		return nil, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}

	var cfg core.ProjectConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Catalog == "" {
		cfg.Catalog = DefaultCatalog
	}
	if cfg.StatePath == "" {
		cfg.StatePath = DefaultStateFile
	}
	ApplyTargetDefaults(cfg.Target)
	return &cfg, nil
}

// FindConfigFile returns the config file in dir, or "" if there is none.
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// FindProjectRoot walks up from startDir to the first directory holding a
// config file. Returns "" if none is found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for {
		if FindConfigFile(dir) != "" {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
