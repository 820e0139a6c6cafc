// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// incdiff.Option.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"znkr.io/incdiff/internal/path"
)

// ErrInvalid is returned by [Config.Validate] for inconsistent configurations.
var ErrInvalid = errors.New("invalid configuration")

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks returned.
	Context int

	// MaxDepth is the confirmed search depth after which an incremental engine truncates its
	// history. Values <= 0 disable truncation.
	MaxDepth int

	// TruncateDepth is the number of non-diagonal steps kept when truncating. Unless
	// TruncateDepthSet is true, it is derived from MaxDepth.
	TruncateDepth    int
	TruncateDepthSet bool

	// Observer receives every edge traversed during a search.
	Observer path.Observer

	// Logger receives diagnostic messages. It's never nil after FromOptions.
	Logger *slog.Logger

	// CaptureDir, if set, is the directory in which the inputs of an incremental engine are
	// recorded for replay.
	CaptureDir string

	// Colors, if set, makes textdiff emit ANSI escape sequences.
	Colors *ColorConfig
}

// ColorConfig contains the escape sequences used to color unified diffs.
type ColorConfig struct {
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
}

// DefaultColors are the colors used if no colors are configured explicitly.
var DefaultColors = ColorConfig{
	HunkHeader: "\033[36m",
	Match:      "",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
}

// Reset is the escape sequence that resets all colors.
const Reset = "\033[0m"

// Default is the default configuration.
var Default = Config{
	Context:  3,
	MaxDepth: 50,
	Observer: path.Discard,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	MaxDepth
	TruncateDepth
	Observer
	Logger
	Capture
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if !cfg.TruncateDepthSet {
		cfg.TruncateDepth = max(0, cfg.MaxDepth/3)
	}
	if cfg.Observer == nil {
		cfg.Observer = path.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// Validate checks that the truncation parameters are consistent.
func (cfg *Config) Validate() error {
	if cfg.MaxDepth <= 0 {
		return nil
	}
	if cfg.TruncateDepth < 0 {
		return fmt.Errorf("%w: negative truncate depth %d", ErrInvalid, cfg.TruncateDepth)
	}
	if cfg.TruncateDepth > cfg.MaxDepth {
		return fmt.Errorf("%w: truncate depth %d exceeds max depth %d", ErrInvalid, cfg.TruncateDepth, cfg.MaxDepth)
	}
	return nil
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "incdiff.Context"
	case MaxDepth:
		return "incdiff.MaxDepth"
	case TruncateDepth:
		return "incdiff.TruncateDepth"
	case Observer:
		return "incdiff.Observe"
	case Logger:
		return "incdiff.Logger"
	case Capture:
		return "incdiff.Capture"
	case Colors:
		return "textdiff.TerminalColors"
	default:
		panic("never reached")
	}
}
