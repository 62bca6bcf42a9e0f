package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults a project checks in as .cssc.yaml. Flags always
// win over config values.
type Config struct {
	// Output is the CSS file to write instead of stdout.
	Output string `yaml:"output,omitempty"`

	// Map is the source map file to write; non-empty enables destination
	// tracking.
	Map string `yaml:"map,omitempty"`

	// Source is the logical source filename recorded in the source map.
	Source string `yaml:"source,omitempty"`
}

// LoadConfig reads the config file at path. A missing file is not an error;
// it yields an empty config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to path in YAML form.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
