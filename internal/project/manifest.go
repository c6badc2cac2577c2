package project

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is a project-level cfgpp.toml. It supplies defaults for the CLI
// and the driver: where includes are resolved from, which schema to check
// against, and whether env expansion and includes run at all.
type Manifest struct {
	Parse  ParseSection  `toml:"parse"`
	Schema SchemaSection `toml:"schema"`
	Cache  CacheSection  `toml:"cache"`
}

// ParseSection configures the parser.
type ParseSection struct {
	IncludePaths    []string `toml:"include_paths"`
	MaxIncludeDepth int      `toml:"max_include_depth"`
	ExpandEnvVars   *bool    `toml:"expand_env_vars"`
	ProcessIncludes *bool    `toml:"process_includes"`
}

// SchemaSection points at the schema file used by validate.
type SchemaSection struct {
	Path string `toml:"path"`
}

// CacheSection configures the parse cache.
type CacheSection struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Load parses a cfgpp.toml manifest. Include paths are rebased onto the
// manifest's directory so the manifest works from anywhere.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	base := filepath.Dir(path)
	for i, inc := range m.Parse.IncludePaths {
		if !filepath.IsAbs(inc) {
			m.Parse.IncludePaths[i] = filepath.Join(base, inc)
		}
	}
	if meta.IsDefined("schema", "path") && !filepath.IsAbs(m.Schema.Path) {
		m.Schema.Path = filepath.Join(base, m.Schema.Path)
	}
	if meta.IsDefined("cache", "dir") && !filepath.IsAbs(m.Cache.Dir) {
		m.Cache.Dir = filepath.Join(base, m.Cache.Dir)
	}
	return &m, nil
}
