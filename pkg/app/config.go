package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional facet.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Server ServerConfig `yaml:"server"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Title       string `yaml:"title,omitempty"`
	ResourceDir string `yaml:"resource_dir,omitempty"`
}

// ServerConfig contains serving settings.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
	Port    int    `yaml:"port,omitempty"`
}

// LoadOptional reads facet.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "facet.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read facet.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse facet.yaml: %w", err)
	}

	return &cfg, nil
}

// ResolveOptions loads facet.yaml from dir (if present) and resolves it to
// Options, leaving zero values for New to default.
func ResolveOptions(dir string) (Options, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return Options{}, err
	}
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return Options{}, fmt.Errorf("facet.yaml: invalid port %d", cfg.Server.Port)
	}
	return Options{
		Address:     strings.TrimSpace(cfg.Server.Address),
		Port:        cfg.Server.Port,
		Title:       strings.TrimSpace(cfg.App.Title),
		ResourceDir: strings.TrimSpace(cfg.App.ResourceDir),
	}, nil
}
