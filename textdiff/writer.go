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

package textdiff

import (
	"bytes"
	"errors"
	"io"
	"slices"

	"znkr.io/incdiff"
	"znkr.io/incdiff/internal/config"
)

var errClosed = errors.New("textdiff: write to closed Writer")

// Writer compares a fixed text against the text written to it and writes every line of the
// difference as soon as it's final. Lines are prefixed with " " for matches, "-" for deletions and
// "+" for insertions; there are no hunk headers.
//
// A line only becomes final once the underlying [incdiff.Engine] truncates its history, the amount
// of buffered output can be controlled with [incdiff.MaxDepth]. Close writes everything that's
// left.
type Writer struct {
	out    printer
	engine *incdiff.Engine[string, string]
	xlines []string
	ylines []string // lines of y starting at line ybase
	ybase  int

	partial []byte         // incomplete last line
	pending incdiff.Result // alignment after (sx, sy)
	sx, sy  int            // position up to which output has been written
	closed  bool
}

// NewWriter creates a Writer that compares x against the text written to it and writes the
// difference to w.
//
// The following options are supported: [incdiff.MaxDepth], [incdiff.TruncateDepth],
// [incdiff.Observe], [incdiff.Logger], [incdiff.Capture], [textdiff.TerminalColors]
func NewWriter(w io.Writer, x string, opts ...incdiff.Option) (*Writer, error) {
	cfg := config.FromOptions(opts, config.MaxDepth|config.TruncateDepth|config.Observer|config.Logger|config.Capture|config.Colors)

	// The engine doesn't know about colors, filter them out.
	var engineOpts []incdiff.Option
	for _, opt := range opts {
		var scratch config.Config
		if opt(&scratch) != config.Colors {
			engineOpts = append(engineOpts, opt)
		}
	}

	var xlines []string
	for _, l := range splitLines([]byte(x)) {
		xlines = append(xlines, string(l))
	}
	engine, err := incdiff.New(xlines, nil, engineOpts...)
	if err != nil {
		return nil, err
	}
	return &Writer{
		out:    printer{w: w, colors: cfg.Colors},
		engine: engine,
		xlines: xlines,
	}, nil
}

// Write appends p to the compared text. Complete lines are compared immediately, an incomplete
// last line is kept until it's completed or the Writer is closed.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, errClosed
	}
	w.partial = append(w.partial, p...)
	var chunk []string
	rest := w.partial
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			break
		}
		chunk = append(chunk, string(rest[:i+1]))
		rest = rest[i+1:]
	}
	w.partial = w.partial[:copy(w.partial, rest)]
	if len(chunk) > 0 {
		w.update(chunk)
	}
	if w.out.err != nil {
		return 0, w.out.err
	}
	return len(p), nil
}

// Close compares the remaining text, writes the rest of the difference and releases the engine.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if len(w.partial) > 0 {
		w.update([]string{string(w.partial) + missingNewline})
		w.partial = nil
	}
	w.pending.Merge(w.engine.Flush())
	w.emit(incdiff.Point{X: len(w.xlines), Y: w.ybase + len(w.ylines)})
	return errors.Join(w.out.err, w.engine.Close())
}

func (w *Writer) update(chunk []string) {
	w.ylines = append(w.ylines, chunk...)
	w.pending.Merge(w.engine.Update(chunk))
	w.emit(w.engine.Settled())
}

// emit writes the alignment from (sx, sy) to until, which must be a point on the alignment.
func (w *Writer) emit(until incdiff.Point) {
	r := &w.pending
	var i, j, k int // next match, delete and insert
	s, t := w.sx, w.sy
	for s < until.X || t < until.Y {
		switch {
		case s < until.X && j < len(r.Deletes) && r.Deletes[j] == s:
			w.out.line(prefixDelete, []byte(w.xlines[s]))
			s++
			j++
		case t < until.Y && k < len(r.Inserts) && r.Inserts[k] == t:
			w.out.line(prefixInsert, []byte(w.ylines[t-w.ybase]))
			t++
			k++
		case i < len(r.Matches) && r.Matches[i] == (incdiff.Point{X: s, Y: t}):
			w.out.line(prefixMatch, []byte(w.xlines[s]))
			s++
			t++
			i++
		default:
			panic("never reached")
		}
	}
	r.Matches, r.Deletes, r.Inserts = r.Matches[i:], r.Deletes[j:], r.Inserts[k:]
	w.ylines = slices.Delete(w.ylines, 0, t-w.ybase)
	w.sx, w.sy, w.ybase = s, t, t
}
