// SPDX-License-Identifier: MIT
// Package: polyomino/generate
//
// options.go: functional options for Generate.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input.
//     Generate itself never panics.
//   • No hidden globals; everything flows through config.

package generate

import (
	"fmt"

	"go.uber.org/zap"
)

// GrowthMode selects which candidate cells are tried when growing a shape.
type GrowthMode int

const (
	// GrowAdjacent tries the four edge neighbours of every cell.
	GrowAdjacent GrowthMode = iota
	// GrowBoxed tries every offset (x, y) with 0 ≤ x, y ≤ k added to every
	// cell, kept only inside the k×k bounding box.
	GrowBoxed
)

// String implements fmt.Stringer.
func (m GrowthMode) String() string {
	switch m {
	case GrowAdjacent:
		return "adjacent"
	case GrowBoxed:
		return "boxed"
	default:
		return fmt.Sprintf("GrowthMode(%d)", int(m))
	}
}

// config is the resolved set of parameters for one Generate call.
type config struct {
	growth  GrowthMode
	workers int
	logger  *zap.Logger
}

// defaultConfig: adjacent growth, sequential, silent.
func defaultConfig() config {
	return config{
		growth:  GrowAdjacent,
		workers: 1,
		logger:  zap.NewNop(),
	}
}

// Option customizes a Generate call.
type Option func(*config)

// WithGrowth selects the candidate rule. Panics on an unknown mode.
func WithGrowth(m GrowthMode) Option {
	if m != GrowAdjacent && m != GrowBoxed {
		panic(fmt.Sprintf("generate: WithGrowth(%v)", m))
	}
	return func(c *config) {
		c.growth = m
	}
}

// WithWorkers sets the number of goroutines used to expand each level.
// Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(fmt.Sprintf("generate: WithWorkers(%d)", w))
	}
	return func(c *config) {
		c.workers = w
	}
}

// WithLogger attaches a logger for per-level progress. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generate: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
