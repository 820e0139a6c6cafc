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

package incdiff

import (
	"fmt"
	"log/slog"

	"znkr.io/incdiff/internal/config"
)

// Option configures the behavior of comparison functions and engines.
type Option = config.Option

// ErrInvalidConfig is returned by [New] and [NewFunc] for inconsistent options.
var ErrInvalidConfig = config.ErrInvalid

// Context sets the number of matches to include as a prefix and postfix for hunks returned in
// [Hunks] and [HunksFunc]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// MaxDepth sets the edit distance after which an [Engine] discards the confirmed prefix of its
// search history. The default is 50. Values <= 0 disable truncation, memory usage then grows with
// the input.
func MaxDepth(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxDepth = n
		return config.MaxDepth
	}
}

// TruncateDepth sets the number of insertions and deletions, counted backwards from the end of the
// current alignment, that an [Engine] keeps when it truncates its history. The default is a third
// of [MaxDepth]. It must not be negative or larger than MaxDepth.
func TruncateDepth(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.TruncateDepth = n
		cfg.TruncateDepthSet = true
		return config.TruncateDepth
	}
}

// Observe reports every edge of the edit graph traversed during a search to obs.
func Observe(obs Observer) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Observer = obs
		return config.Observer
	}
}

// Logger sets the logger for diagnostic messages of an [Engine]. By default, nothing is logged.
func Logger(logger *slog.Logger) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Logger = logger
		return config.Logger
	}
}

// Capture records the inputs of an [Engine] in a new session in dir. Sessions can be read with
// [znkr.io/incdiff/replay.Read].
func Capture(dir string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CaptureDir = dir
		return config.Capture
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
