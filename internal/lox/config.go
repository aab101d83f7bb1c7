package lox

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxCallDepth is the number of nested calls allowed before the
// interpreter reports a stack overflow.
const DefaultMaxCallDepth = 512

// MaxCallDepthLimit is the largest call depth a configuration may ask for.
// Deeper recursion would exhaust the Go stack before the interpreter can
// report it.
const MaxCallDepthLimit = 10000

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of an interpreter session. It can be loaded from a
// YAML file, fields that are not present keep their default values.
type Config struct {
	MaxCallDepth int    `yaml:"max_call_depth"`
	Prompt       string `yaml:"prompt"`
	HistoryFile  string `yaml:"history_file"`

	// REPL makes the interpreter print the value of every expression
	// statement. It's set by the driver, not by the config file.
	REPL bool `yaml:"-"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	return Config{
		MaxCallDepth: DefaultMaxCallDepth,
		Prompt:       "> ",
		HistoryFile:  ".tlox_history",
	}
}

// LoadConfig reads the YAML file at the given path
func LoadConfig(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	cfg, err := ParseConfig(file)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML document over the default configuration. Unknown
// fields are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting holds a usable value
func (cfg Config) Validate() error {
	if cfg.MaxCallDepth <= 0 {
		return fmt.Errorf("%w: max_call_depth must be positive, got %d", ErrInvalidConfig, cfg.MaxCallDepth)
	}
	if cfg.MaxCallDepth > MaxCallDepthLimit {
		return fmt.Errorf(
			"%w: max_call_depth must be at most %d, got %d",
			ErrInvalidConfig, MaxCallDepthLimit, cfg.MaxCallDepth,
		)
	}
	return nil
}
