package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the composer binary
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Menu    MenuConfig    `yaml:"menu"`
}

// ServiceConfig holds service identity and logging configuration
type ServiceConfig struct {
	Name     string `yaml:"name"`
	LogLevel string `yaml:"log_level"`
}

// MenuConfig holds the menu catalog location
type MenuConfig struct {
	Path string `yaml:"path"`
}

// Load reads configuration from a YAML file and applies defaults for
// fields left blank.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = "menu-composer"
	}
	if c.Service.LogLevel == "" {
		c.Service.LogLevel = "info"
	}
	if c.Menu.Path == "" {
		c.Menu.Path = "menu.yaml"
	}
}
