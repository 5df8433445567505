package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/regu-ai/regu/internal/aging"
)

// FileName is the project configuration file at the repo root.
const FileName = "regu.yaml"

// Config represents the top-level regu.yaml configuration.
type Config struct {
	Entity EntityConfig `yaml:"entity"`
	Period PeriodConfig `yaml:"period"`
	Aging  AgingConfig  `yaml:"aging"`
	Export ExportConfig `yaml:"export"`
	Server ServerConfig `yaml:"server"`
	Git    GitConfig    `yaml:"git"`
}

// EntityConfig identifies the reporting BLU entity.
type EntityConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
}

// PeriodConfig labels the current and comparative reporting periods.
type PeriodConfig struct {
	Current  string `yaml:"current"`  // e.g. "Dec 2023"
	Previous string `yaml:"previous"` // e.g. "Dec 2022"
}

// AgingConfig controls receivable aging.
type AgingConfig struct {
	FuturePolicy string `yaml:"future_policy"` // "absolute" or "reject"
}

// ExportConfig controls report export.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // "pdf" or "csv"
}

// ServerConfig controls the HTTP read API.
type ServerConfig struct {
	Port string `yaml:"port"`
	Env  string `yaml:"env"`
}

// GitConfig controls the author of snapshot commits.
type GitConfig struct {
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a regu.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks values that the engine would otherwise reject late.
func (c *Config) Validate() error {
	if _, err := aging.ParseFuturePolicy(c.Aging.FuturePolicy); err != nil {
		return fmt.Errorf("aging.future_policy: %w", err)
	}
	switch c.Export.Format {
	case "", "pdf", "csv":
	default:
		return fmt.Errorf("export.format: unsupported format %q", c.Export.Format)
	}
	return nil
}

// FuturePolicy returns the configured aging policy for future-dated invoices.
func (c *Config) FuturePolicy() aging.FuturePolicy {
	p, err := aging.ParseFuturePolicy(c.Aging.FuturePolicy)
	if err != nil {
		return aging.PolicyAbsolute
	}
	return p
}

// Default returns a Config with sensible defaults for a new project.
func Default(entityName, entityType string) *Config {
	return &Config{
		Entity: EntityConfig{
			Name:       entityName,
			EntityType: entityType,
		},
		Period: PeriodConfig{
			Current:  "Dec 2023",
			Previous: "Dec 2022",
		},
		Aging: AgingConfig{
			FuturePolicy: string(aging.PolicyAbsolute),
		},
		Export: ExportConfig{
			Dir:    "exports",
			Format: "pdf",
		},
		Server: ServerConfig{
			Port: "8000",
			Env:  "production",
		},
		Git: GitConfig{
			AuthorName:  "Regu Reporting",
			AuthorEmail: "reporting@regu.local",
		},
	}
}
