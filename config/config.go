// Package config loads optional engine-level configuration: the GOSUB
// recursion depth limit, plus the driver's own color and prompt
// preferences. None of this is visible to a Grin program; it only shapes
// how the host interpreter behaves, and is independent of Grin's own
// language-level I/O model.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxRecursionDepth bounds GOSUB call-stack depth absent an explicit
// configuration file. It is generous enough that no well-formed Grin
// program should ever hit it; it exists to turn a runaway GOSUB/RETURN
// cycle into a reported RecursionDepth error instead of unbounded memory
// growth.
const DefaultMaxRecursionDepth = 10000

// Config holds the tunables an operator may override via a YAML file
// passed to `grin -config`.
type Config struct {
	// RecursionDepth is the maximum live GOSUB call-stack depth.
	RecursionDepth int `yaml:"recursion_depth"`
	// Color enables ANSI coloring of the CLI's own banner/diagnostics
	// (never the interpreted program's stdout stream).
	Color bool `yaml:"color"`
	// Prompt is shown by the interactive line-edited front end.
	Prompt string `yaml:"prompt"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		RecursionDepth: DefaultMaxRecursionDepth,
		Color:          true,
		Prompt:         "grin> ",
	}
}

// Load reads and parses a YAML configuration file, filling in defaults for
// any field the file omits.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.RecursionDepth <= 0 {
		cfg.RecursionDepth = DefaultMaxRecursionDepth
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "grin> "
	}
	return cfg, nil
}
