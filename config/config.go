// Copyright 2024 The tfkernel Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config reads the TOML-driven tuning an embedder's process wants
// around a Kernel: nothing in here ever reaches into a DAG, and nothing
// under core/ or plugins/ imports this package — it exists purely for the
// wiring a host program does once at startup.
package config

import (
	"github.com/BurntSushi/toml"
	goerrors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrReadConfig is raised when path can't be read or decoded as TOML.
	ErrReadConfig = goerrors.NewKind("reading kernel config %s: %s")

	// ErrInvalidMaxDepth is raised when fold.max_fold_depth is negative.
	ErrInvalidMaxDepth = goerrors.NewKind("fold.max_fold_depth must be >= 0, got %d")
)

// Config holds the kernel-level settings that have no place in a program's
// own DAG: extra volatile kinds to union into the fold default set, a debug
// depth guard, and whether to turn on trace-level logging.
type Config struct {
	Fold  FoldConfig  `toml:"fold"`
	Trace TraceConfig `toml:"trace"`
}

// FoldConfig tunes core/fold.Options beyond its built-in defaults.
type FoldConfig struct {
	// VolatileKinds lists additional kinds to union into
	// fold.DefaultVolatileKinds() — e.g. a host plugin's own volatile
	// reads that don't ship as part of this module.
	VolatileKinds []string `toml:"volatile_kinds"`

	// MaxDepth is the max_fold_depth setting; 0 (the default) means
	// unbounded. Load only decodes it and rejects negative values:
	// fold.Options has no depth setting, and nothing in core/fold reads it,
	// so it does not limit reserved-kind recursion or DAG depth.
	MaxDepth int `toml:"max_fold_depth"`
}

// TraceConfig controls the fold trampoline's structured logging.
type TraceConfig struct {
	// Enabled flips the configured logger to DebugLevel, turning on the
	// frame push/pop and memo-hit trace lines. Off by default: logging is
	// always opt-in, never required for correctness.
	Enabled bool `toml:"enabled"`
}

// defaults returns a Config populated the way a kernel behaves with no
// config file at all.
func defaults() Config {
	return Config{
		Fold: FoldConfig{
			MaxDepth: 0,
		},
		Trace: TraceConfig{
			Enabled: false,
		},
	}
}

// Load reads path as TOML, layering its values over defaults(). An empty
// path is a no-op: Load returns the defaults unchanged, since every field a
// Config carries is optional tuning, never a required setting.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, ErrReadConfig.New(path, err)
	}
	if cfg.Fold.MaxDepth < 0 {
		return Config{}, ErrInvalidMaxDepth.New(cfg.Fold.MaxDepth)
	}
	return cfg, nil
}
