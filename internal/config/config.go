// Package config loads runtime-diagnostics configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Diagnostics holds backtrace-reporting configuration.
type Diagnostics struct {
	// ResolverPath is the external symbolizer command spawned per frame.
	ResolverPath string `env:"ENGINEKIT_ADDR2LINE" envDefault:"addr2line"`
	// MaxFrames bounds stack capture depth.
	MaxFrames int `env:"ENGINEKIT_MAX_FRAMES" envDefault:"100"`
	// UseResolver enables the external symbolizer subprocess. Off by
	// default: it costs one process spawn per frame.
	UseResolver bool `env:"ENGINEKIT_USE_ADDR2LINE" envDefault:"false"`
	// FrameFilter is an optional expr expression over module, function
	// and address; frames it rejects are dropped from reports.
	FrameFilter string `env:"ENGINEKIT_FRAME_FILTER" envDefault:""`
}

// ParseDiagnostics parses diagnostics configuration from the environment.
func ParseDiagnostics() (*Diagnostics, error) {
	var cfg Diagnostics
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse diagnostics config: %w", err)
	}
	return &cfg, nil
}
