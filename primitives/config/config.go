package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPrecision is the threshold below which a quantity is treated as zero
	DefaultPrecision = 1e-10
	// DefaultMaxIterations bounds every Newton-Raphson run
	DefaultMaxIterations = 1000
)

// Config holds the numerical tolerances of the engine.
// It is passed by value to every entry point, nothing reads it from a global.
type Config struct {
	Precision     float64 `yaml:"precision"`
	MaxIterations int     `yaml:"max_iterations"`
}

// Default returns the configuration used when nothing else is specified
func Default() Config {
	return Config{
		Precision:     DefaultPrecision,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate checks that the tolerances can drive the engine
func (c Config) Validate() error {
	if math.IsNaN(c.Precision) || math.IsInf(c.Precision, 0) || c.Precision <= 0 {
		return fmt.Errorf("precision must be a positive finite number, got %v", c.Precision)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}

// DedupDistance is the distance under which two roots are considered equal
func (c Config) DedupDistance() float64 {
	return 10 * c.Precision
}

// Load reads a YAML configuration file.
// Keys absent from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
