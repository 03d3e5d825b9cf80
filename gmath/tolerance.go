// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmath

import "math"

// tolerance constants, computed once and never mutated
const (
	// Epsilon is the default parameter-equality tolerance
	Epsilon = 1e-9

	// Delta is a lax geometric-equality tolerance used by plane tests
	// (on_xy_plane, on_xz_plane)
	Delta = 1e-6

	// CoarseTess is the default coarse chord tolerance
	CoarseTess = 1e-2

	// FineTess is the default fine chord tolerance
	FineTess = 1e-4
)

// FineTessSq is FineTess squared, cached to avoid repeated multiplication
// in hot subdivision loops
var FineTessSq = FineTess * FineTess

// FineTessAngle and CoarseTessAngle are angular step tolerances in radians
var (
	FineTessAngle   = 31.0 * math.Pi / 180.0
	CoarseTessAngle = 61.0 * math.Pi / 180.0
)

// Config carries the tolerances consumed by the curve/surface/mesh
// packages, replacing the source's module-level mutable doubles with an
// explicit, injectable value. The zero Config is invalid; use
// NewConfig or DefaultConfig.
type Config struct {
	Epsilon         float64 `json:"epsilon"`
	Delta           float64 `json:"delta"`
	CoarseTess      float64 `json:"coarseTess"`
	FineTess        float64 `json:"fineTess"`
	FineTessSq      float64 `json:"fineTessSq"`
	FineTessAngle   float64 `json:"fineTessAngle"`
	CoarseTessAngle float64 `json:"coarseTessAngle"`
}

// DefaultConfig is the process-wide immutable default; callers that want
// a private, mutable copy should call NewConfig instead of taking this
// value's address
var DefaultConfig = Config{
	Epsilon:         Epsilon,
	Delta:           Delta,
	CoarseTess:      CoarseTess,
	FineTess:        FineTess,
	FineTessSq:      FineTessSq,
	FineTessAngle:   FineTessAngle,
	CoarseTessAngle: CoarseTessAngle,
}

// NewConfig returns a fresh copy of DefaultConfig that the caller may
// freely tune
func NewConfig() *Config {
	cfg := DefaultConfig
	return &cfg
}

// OrDefault returns cfg, or a pointer to DefaultConfig if cfg is nil; used
// at every public entry point that accepts an optional *Config
func OrDefault(cfg *Config) *Config {
	if cfg == nil {
		return &DefaultConfig
	}
	return cfg
}
