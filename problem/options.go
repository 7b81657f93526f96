// SPDX-License-Identifier: MIT
// Package: problem
//
// options.go: functional options for Factory.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs (nil).
//     Generation itself never panics.

package problem

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option customizes a Factory at construction time.
type Option func(*factoryConfig)

// factoryConfig aggregates the optional knobs of a Factory.
type factoryConfig struct {
	logger *log.Logger
}

// newFactoryConfig applies opts over a discard-logger default.
func newFactoryConfig(opts ...Option) factoryConfig {
	cfg := factoryConfig{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes the factory's debug events to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("problem: WithLogger(nil)")
	}
	return func(c *factoryConfig) {
		c.logger = l
	}
}
