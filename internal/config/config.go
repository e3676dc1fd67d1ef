// Package config loads samctl's TOML configuration file, grounded on
// the same github.com/BurntSushi/toml dependency dekarrin/tunaq uses
// for its own config layer.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gopherlabs/suffixautomaton/automaton"
)

// ErrInvalidBackend is returned when a config file names a transition
// backend other than "dense" or "sparse".
var ErrInvalidBackend = errors.New("config: backend must be \"dense\" or \"sparse\"")

// Config holds samctl's tunable defaults. The zero value is usable:
// Backend resolves to automaton.Dense and EagerIndex defaults to
// false, matching the library's own lazy-index default.
type Config struct {
	Backend    string `toml:"backend"`
	EagerIndex bool   `toml:"eager_index"`

	BatchInputPath  string `toml:"batch_input_path"`
	BatchOutputPath string `toml:"batch_output_path"`
}

// Load reads and decodes a TOML config file at path.
func Load(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return c, nil
}

// ResolveBackend maps the configured backend name to an
// automaton.Backend, defaulting to automaton.Dense when unset.
func (c Config) ResolveBackend() (automaton.Backend, error) {
	switch c.Backend {
	case "", "dense":
		return automaton.Dense, nil
	case "sparse":
		return automaton.Sparse, nil
	default:
		return automaton.Dense, ErrInvalidBackend
	}
}
