package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/open-atmos/nbhooks/internal/check"
	"github.com/open-atmos/nbhooks/internal/header"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when -p is not given.
const DefaultPath = ".nbhooks.yaml"

type Repository struct {
	Owner  string `yaml:"owner"`
	Name   string `yaml:"name,omitempty"`
	Branch string `yaml:"branch"`
}

type Header struct {
	Template string   `yaml:"template"`
	Markers  []string `yaml:"markers"`
	Version  string   `yaml:"version,omitempty"`
}

type Notebooks struct {
	MaxSize        string   `yaml:"max_size"`
	StderrAllow    []string `yaml:"stderr_allow"`
	ForbiddenCalls []string `yaml:"forbidden_calls"`
}

type Issues struct {
	Enabled  bool          `yaml:"enabled"`
	TokenEnv string        `yaml:"token_env"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type ForbiddenImport struct {
	Pattern string `yaml:"pattern"`
	Message string `yaml:"message,omitempty"`
}

type Python struct {
	ForbiddenImports []ForbiddenImport `yaml:"forbidden_imports"`
	Skip             []string          `yaml:"skip"`
}

type Execute struct {
	Command string        `yaml:"command"`
	Kernel  string        `yaml:"kernel"`
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	Repository        Repository `yaml:"repository"`
	Header            Header     `yaml:"header"`
	Notebooks         Notebooks  `yaml:"notebooks"`
	Issues            Issues     `yaml:"issues"`
	Python            Python     `yaml:"python"`
	BuildRequirements [][]string `yaml:"build_requirements"`
	Execute           Execute    `yaml:"execute"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Repository: Repository{Owner: "open-atmos", Branch: "main"},
		Header: Header{
			Template: header.DefaultTemplate,
			Markers:  append([]string(nil), header.DefaultMarkers...),
		},
		Notebooks: Notebooks{
			MaxSize:        humanize.Bytes(check.DefaultMaxSize),
			StderrAllow:    append([]string(nil), check.DefaultStderrAllow...),
			ForbiddenCalls: append([]string(nil), check.DefaultForbiddenCalls...),
		},
		Issues: Issues{Enabled: true, TokenEnv: "GITHUB_TOKEN", CacheTTL: time.Hour},
		Python: Python{
			ForbiddenImports: []ForbiddenImport{{
				Pattern: "from PySDM_examples.utils import notebook_vars",
				Message: "Please use open-atmos-jupyter-utils package.",
			}},
			Skip: []string{"__init__.py"},
		},
		BuildRequirements: [][]string{{"pyproject.toml", "examples/pyproject.toml"}},
		Execute: Execute{
			Command: "jupyter",
			Kernel:  "python3",
			Timeout: 15 * time.Minute,
		},
	}
}

// Load reads a YAML config file on top of the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when path does
// not exist and optional is set.
func LoadOrDefault(path string, optional bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && optional && errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// MaxSizeBytes parses notebooks.max_size. An empty value disables the limit.
func (c *Config) MaxSizeBytes() (int64, error) {
	if c.Notebooks.MaxSize == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(c.Notebooks.MaxSize)
	if err != nil {
		return 0, fmt.Errorf("notebooks.max_size: %w", err)
	}
	return int64(n), nil
}

// RenderHeader returns the canonical header text for repo. A non-empty
// version overrides header.version.
func (c *Config) RenderHeader(repo, version string) (string, error) {
	if version == "" {
		version = c.Header.Version
	}
	return header.Render(c.Header.Template, repo, version)
}
