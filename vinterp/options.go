// SPDX-License-Identifier: MIT

// Package vinterp: functional configuration for the remapping kernel.
// This file defines:
//   - Option (functional options over an unexported config),
//   - documented defaults (constants in types.go),
//   - With* constructors,
//   - resolve (internal) that applies defaults and enforces invariants.
//
// Every public entry point accepts ...Option and resolves them exactly once.
package vinterp

import (
	"fmt"
	"runtime"
)

// config stores the effective kernel configuration after applying options.
// Unexported so callers cannot bypass resolve's validation.
type config struct {
	kind Kind

	levels    []float64
	levelsSet bool // distinguishes WithLevels() from "option omitted"

	axisName    string
	axisIndex   int
	axisByIndex bool // WithAxisIndex wins over axisName when set

	levelAxisName string

	progress Progress

	workers    int
	workersSet bool
}

// Option mutates the kernel configuration. Later options override earlier
// ones field by field.
type Option func(*config)

// WithKind selects the interpolation formula (default Linear).
func WithKind(k Kind) Option {
	return func(c *config) { c.kind = k }
}

// WithLevels sets the target levels, replacing any previous choice. Values
// are copied. Passing no values selects nothing and resolves to ErrNoLevels;
// omit the option entirely to get DefaultLevels.
func WithLevels(levels ...float64) Option {
	return func(c *config) {
		c.levels = append([]float64(nil), levels...)
		c.levelsSet = true
	}
}

// WithLevel targets a single level; shorthand for WithLevels(lev).
func WithLevel(lev float64) Option {
	return func(c *config) {
		c.levels = []float64{lev}
		c.levelsSet = true
	}
}

// WithAxisName selects the vertical axis on both inputs by name
// (default DefaultAxisName, "z").
func WithAxisName(name string) Option {
	return func(c *config) {
		c.axisName = name
		c.axisByIndex = false
	}
}

// WithAxisIndex selects the vertical axis by dimension position instead of
// by name, for inputs whose axes carry no usable names.
func WithAxisIndex(d int) Option {
	return func(c *config) {
		c.axisIndex = d
		c.axisByIndex = true
	}
}

// WithLevelAxisName names the output's new vertical axis
// (default DefaultLevelAxisName, "plev").
func WithLevelAxisName(name string) Option {
	return func(c *config) { c.levelAxisName = name }
}

// WithProgress installs an observational per-level hook; see Progress.
// A nil hook disables reporting (the default).
func WithProgress(fn Progress) Option {
	return func(c *config) { c.progress = fn }
}

// WithWorkers caps the number of target levels processed concurrently.
// The default is min(GOMAXPROCS, level count); WithWorkers(1) forces a
// sequential run. Counts below one resolve to ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
		c.workersSet = true
	}
}

// resolve applies defaults and validates the assembled configuration.
// It is the single gate every public entry point goes through.
func resolve(opts []Option) (config, error) {
	cfg := config{
		kind:          Linear,
		axisName:      DefaultAxisName,
		levelAxisName: DefaultLevelAxisName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.kind != Linear && cfg.kind != LogLinear {
		return cfg, fmt.Errorf("%w: %s", ErrUnknownKind, cfg.kind)
	}
	if !cfg.levelsSet {
		cfg.levels = DefaultLevels()
	}
	if len(cfg.levels) == 0 {
		return cfg, ErrNoLevels
	}
	if cfg.kind == LogLinear {
		for _, lev := range cfg.levels {
			if lev <= 0 {
				return cfg, fmt.Errorf("%w: %v", ErrNonPositiveLevel, lev)
			}
		}
	}
	if cfg.levelAxisName == "" {
		cfg.levelAxisName = DefaultLevelAxisName
	}
	if cfg.workersSet && cfg.workers < 1 {
		return cfg, fmt.Errorf("%w: %d", ErrBadWorkers, cfg.workers)
	}
	if !cfg.workersSet {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	if cfg.workers > len(cfg.levels) {
		cfg.workers = len(cfg.levels)
	}

	return cfg, nil
}
