package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFile       = ".gherkin-report.yaml"
	DefaultFormat     = "markdown"
	DefaultExcludeTag = "@excludeFromReport"
)

// Config holds the settings a report run reads from file. Pointer fields
// distinguish "unset" from an explicit empty value.
type Config struct {
	Format      string   `yaml:"format,omitempty"`
	Exclude     *string  `yaml:"exclude,omitempty"`
	Destination string   `yaml:"destination,omitempty"`
	LogLevel    string   `yaml:"log_level,omitempty"`
	LogFormat   string   `yaml:"log_format,omitempty"`
	Paths       []string `yaml:"paths,omitempty"`
}

func Default() *Config {
	exclude := DefaultExcludeTag
	return &Config{
		Format:    DefaultFormat,
		Exclude:   &exclude,
		LogLevel:  "error",
		LogFormat: "text",
		Paths:     []string{"features/**/*.feature"},
	}
}

// Load reads path. A missing file returns nil and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Merge returns defaults overlaid with the non-empty fields of cfg.
func Merge(cfg *Config) *Config {
	out := Default()
	if cfg == nil {
		return out
	}
	if cfg.Format != "" {
		out.Format = cfg.Format
	}
	if cfg.Exclude != nil {
		out.Exclude = cfg.Exclude
	}
	if cfg.Destination != "" {
		out.Destination = cfg.Destination
	}
	if cfg.LogLevel != "" {
		out.LogLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		out.LogFormat = cfg.LogFormat
	}
	if len(cfg.Paths) > 0 {
		out.Paths = cfg.Paths
	}
	return out
}

// ExcludeTag returns the configured exclusion tag, or "" when unset.
func (c *Config) ExcludeTag() string {
	if c.Exclude == nil {
		return ""
	}
	return *c.Exclude
}
