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

// replay re-runs a session recorded with incdiff.Capture and prints the difference.
//
// Sessions recorded by textdiff.Writer contain lines of text. replay feeds the recorded chunks to a
// new textdiff.Writer, so the output is the same as the recording Writer produced if the engine
// parameters match. With -v, the engine logs every truncation to stderr and with -edges every edge
// traversed by the search.
//
//	replay -dir /tmp/captures            # replays the latest session in /tmp/captures
//	replay -max-depth 10 session-....db  # replays a specific session with different parameters
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"znkr.io/incdiff"
	"znkr.io/incdiff/replay"
	"znkr.io/incdiff/textdiff"
)

// Marker that textdiff appends to a last line without newline.
const missingNewline = "\n\\ No newline at end of file\n"

type config struct {
	dir           string
	session       string
	maxDepth      int
	truncateDepth int
	verbose       bool
	edges         bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dir, "dir", "", "capture directory, the latest session in it is replayed")
	flag.IntVar(&cfg.maxDepth, "max-depth", 50, "depth after which the engine truncates its history, <= 0 disables truncation")
	flag.IntVar(&cfg.truncateDepth, "truncate-depth", -1, "non-diagonal steps kept when truncating, < 0 derives it from -max-depth")
	flag.BoolVar(&cfg.verbose, "v", false, "log engine internals to stderr")
	flag.BoolVar(&cfg.edges, "edges", false, "log every traversed edge, implies -v")
	flag.Parse()

	switch {
	case cfg.dir != "" && flag.CommandLine.NArg() == 0:
	case cfg.dir == "" && flag.CommandLine.NArg() == 1:
		cfg.session = flag.CommandLine.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "error: usage: replay -dir <dir> | replay <session>\n")
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, out io.Writer) error {
	session := cfg.session
	if session == "" {
		var err error
		session, err = replay.Latest(cfg.dir)
		if err != nil {
			return err
		}
	}
	a, b, err := replay.Read[string, string](session)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose || cfg.edges {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Info("replaying session", "path", session, "lines", len(a), "chunks", len(b))

	opts := []incdiff.Option{incdiff.MaxDepth(cfg.maxDepth), incdiff.Logger(logger)}
	if cfg.truncateDepth >= 0 {
		opts = append(opts, incdiff.TruncateDepth(cfg.truncateDepth))
	}
	if cfg.edges {
		opts = append(opts, incdiff.Observe(incdiff.SlogObserver(logger)))
	}

	x := strings.TrimSuffix(strings.Join(a, ""), missingNewline)
	w, err := textdiff.NewWriter(out, x, opts...)
	if err != nil {
		return err
	}
	for _, chunk := range b {
		for _, line := range chunk {
			if _, err := io.WriteString(w, strings.TrimSuffix(line, missingNewline)); err != nil {
				return err
			}
		}
	}
	return w.Close()
}
