// Package config loads the handful of tunables spec.md §6 allows ("no
// persisted state; no environment variables" for the core itself — this
// is strictly CLI/façade-side configuration, never consulted by
// pkg/checker or pkg/prover's own logic): the prover's default search
// deadline, its memoization cache size, and cmd/ndcheck's default logic
// label. Backed by github.com/BurntSushi/toml, the same config library
// the teacher's node configuration uses.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable read from a TOML file on disk.
type Config struct {
	// ProverDeadline bounds the prover's first, complete=true search
	// attempt (spec §4.5, default 3s).
	ProverDeadline time.Duration
	// MemoTableSize bounds the prover's per-search LRU memoization table.
	MemoTableSize int
	// DefaultLogic is the logic name loaded from default_logic;
	// cmd/ndcheck takes the logic from the input file and does not read
	// this field.
	DefaultLogic string
}

// fileConfig mirrors Config's fields as they appear in the TOML source
// (the deadline as whole seconds, the logic name as a plain string).
type fileConfig struct {
	ProverDeadlineSeconds int    `toml:"prover_deadline_seconds"`
	MemoTableSize         int    `toml:"memo_table_size"`
	DefaultLogic          string `toml:"default_logic"`
}

// Default returns a 3-second search deadline, a 4096-entry memoization
// table, and TFL as the default logic.
func Default() Config {
	return Config{
		ProverDeadline: 3 * time.Second,
		MemoTableSize:  4096,
		DefaultLogic:   "TFL",
	}
}

// Load reads a TOML config file, falling back to Default for any field
// the file omits.
func Load(path string) (Config, error) {
	cfg := Default()
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return cfg, err
	}
	if fc.ProverDeadlineSeconds > 0 {
		cfg.ProverDeadline = time.Duration(fc.ProverDeadlineSeconds) * time.Second
	}
	if fc.MemoTableSize > 0 {
		cfg.MemoTableSize = fc.MemoTableSize
	}
	if fc.DefaultLogic != "" {
		cfg.DefaultLogic = fc.DefaultLogic
	}
	return cfg, nil
}
