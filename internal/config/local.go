package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"valuesort/pkg/logger"
	"valuesort/pkg/sorter"
)

// ConfigPathEnv overrides the default config location.
const ConfigPathEnv = "VALUESORT_CONFIG_PATH"

// Config represents the root configuration structure
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Solver  SolverConfig  `yaml:"solver"`
	Domain  DomainConfig  `yaml:"domain"`
}

// LoggingConfig configures pkg/logger
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SolverConfig selects how selector construction sorts variable values.
type SolverConfig struct {
	ValueSorterManner sorter.Manner `yaml:"value_sorter_manner"`
	// Parallelism bounds concurrent selector construction; 0 means unbounded.
	Parallelism int `yaml:"parallelism"`
	// VariableSorterManners overrides ValueSorterManner per "Entity.variable".
	VariableSorterManners map[string]sorter.Manner `yaml:"variable_sorter_manners"`
}

// DomainConfig declares the planning entities and the value ranges of their variables.
type DomainConfig struct {
	Entities []EntityConfig `yaml:"entities"`
}

// EntityConfig declares one planning entity type.
type EntityConfig struct {
	Name      string           `yaml:"name"`
	Variables []VariableConfig `yaml:"variables"`
}

// VariableConfig declares one planning variable.
type VariableConfig struct {
	Name string `yaml:"name"`
	// Strength is an expression evaluated per value; weaker values have lower results.
	// Empty means the variable declares no strength comparison.
	Strength string        `yaml:"strength"`
	Values   []ValueConfig `yaml:"values"`
}

// ValueConfig declares one candidate value.
type ValueConfig struct {
	ID         string         `yaml:"id"`
	Attributes map[string]any `yaml:"attributes"`
}

const DefaultConfigTemplate = `logging:
  level: info
solver:
  value_sorter_manner: INCREASING_STRENGTH_IF_AVAILABLE
  parallelism: 4
domain:
  entities:
    - name: Lecture
      variables:
        - name: room
          strength: "capacity"
          values:
            - id: RoomA
              attributes: {capacity: 10}
            - id: RoomB
              attributes: {capacity: 2}
            - id: RoomC
              attributes: {capacity: 7}
    - name: Shift
      variables:
        - name: employee
          values:
            - id: ann
            - id: beth
`

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Solver:  SolverConfig{ValueSorterManner: sorter.IncreasingStrengthIfAvailable},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	if !slices.Contains(sorter.Manners(), c.Solver.ValueSorterManner) {
		return fmt.Errorf("solver.value_sorter_manner must be one of %v", sorter.Manners())
	}
	if c.Solver.Parallelism < 0 {
		return fmt.Errorf("solver.parallelism must not be negative, got %d", c.Solver.Parallelism)
	}
	for key := range c.Solver.VariableSorterManners {
		entity, variable, ok := strings.Cut(key, ".")
		if !ok || entity == "" || variable == "" {
			return fmt.Errorf("solver.variable_sorter_manners key %q must have the form Entity.variable", key)
		}
		if m := c.Solver.VariableSorterManners[key]; !slices.Contains(sorter.Manners(), m) {
			return fmt.Errorf("solver.variable_sorter_manners[%s] must be one of %v", key, sorter.Manners())
		}
	}
	return nil
}

// Parse decodes and validates a YAML document on top of the defaults.
func Parse(data []byte) (*Config, error) {
	conf := Default()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("failed to parse yaml config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return conf, nil
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// DefaultPath returns VALUESORT_CONFIG_PATH or ~/.config/valuesort/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", "valuesort", "config.yaml"), nil
}

// LoadLocalConfig loads configuration from DefaultPath.
// If the configuration file doesn't exist, it creates a template for the user.
func LoadLocalConfig() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Warnf("Config file missing at %s, creating default template...", configPath)
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate), 0644); err != nil {
			return nil, fmt.Errorf("failed to write default config template: %w", err)
		}
		return nil, fmt.Errorf("generated default config at %s. Please update it and restart", configPath)
	}

	return Load(configPath)
}
