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

// Package textdiff provides functions to compare text line by line, both for complete inputs and
// for text that arrives as a stream.
package textdiff

import (
	"bytes"
	"fmt"
	"io"
	"unsafe"

	"znkr.io/incdiff"
	"znkr.io/incdiff/internal/baseline"
	"znkr.io/incdiff/internal/config"
	"znkr.io/incdiff/internal/path"
	"znkr.io/incdiff/internal/rvecs"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const missingNewline = "\n\\ No newline at end of file\n"

// Edit describes a single edit of a line-by-line diff.
type Edit[T string | []byte] struct {
	Op           incdiff.Op
	LineX, LineY int // Zero based line numbers, -1 for the missing side of a Delete or Insert.
	Line         T   // Line content including the trailing newline.
}

// Hunk describes a sequence of consecutive edits.
type Hunk[T string | []byte] struct {
	LineNoX, EndLineNoX int       // Start and end line in x (zero based).
	LineNoY, EndLineNoY int       // Start and end line in y (zero based).
	Edits               []Edit[T] // Edits to transform x lines to y lines.
}

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// The following options are supported: [incdiff.Context], [textdiff.TerminalColors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Unified[T string | []byte](x, y T, opts ...incdiff.Option) T {
	switch x := any(x).(type) {
	case string:
		// This hackery let's us support both string and []byte types with the same implementation
		// without copying the inputs in or the outputs out. It's save because we never modify the
		// inputs or retain the output anywhere.
		y := any(y).(string)
		xp, yp := unsafe.StringData(x), unsafe.StringData(y)
		out := unified(unsafe.Slice(xp, len(x)), unsafe.Slice(yp, len(y)), opts)
		return any(unsafe.String(unsafe.SliceData(out), len(out))).(T)
	case []byte:
		return any(unified(x, any(y).([]byte), opts)).(T)
	default:
		panic("never reached")
	}
}

func unified(x, y []byte, opts []incdiff.Option) []byte {
	cfg := config.FromOptions(opts, config.Context|config.Colors)

	xlines, ylines := splitLines(x), splitLines(y)
	rx, ry := diffLines(xlines, ylines)

	var b bytes.Buffer
	p := printer{w: &b, colors: cfg.Colors}
	for h := range rvecs.Hunks(rx, ry, cfg) {
		p.header(h.S0+1, h.S1-h.S0, h.T0+1, h.T1-h.T0)
		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			for s < h.S1 && rx[s] {
				p.line(prefixDelete, xlines[s])
				s++
			}
			for t < h.T1 && ry[t] {
				p.line(prefixInsert, ylines[t])
				t++
			}
			for s < h.S1 && t < h.T1 && !rx[s] && !ry[t] {
				p.line(prefixMatch, xlines[s])
				s++
				t++
			}
		}
	}
	if b.Len() == 0 {
		return nil
	}
	return b.Bytes()
}

// Hunks compares the lines in x and y and returns the changes necessary to convert from one to the
// other.
//
// The output is a sequence of hunks. A hunk represents a contiguous block of changes (insertions
// and deletions) along with some surrounding context. The amount of context can be configured using
// [incdiff.Context].
//
// If x and y are identical, the output has length zero.
//
// The following option is supported: [incdiff.Context]
func Hunks[T string | []byte](x, y T, opts ...incdiff.Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context)
	xlines, ylines := splitLines([]byte(x)), splitLines([]byte(y))
	rx, ry := diffLines(xlines, ylines)

	var out []Hunk[T]
	for h := range rvecs.Hunks(rx, ry, cfg) {
		edits := make([]Edit[T], 0, h.Edits)
		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			for s < h.S1 && rx[s] {
				edits = append(edits, Edit[T]{incdiff.Delete, s, -1, T(xlines[s])})
				s++
			}
			for t < h.T1 && ry[t] {
				edits = append(edits, Edit[T]{incdiff.Insert, -1, t, T(ylines[t])})
				t++
			}
			for s < h.S1 && t < h.T1 && !rx[s] && !ry[t] {
				edits = append(edits, Edit[T]{incdiff.Match, s, t, T(xlines[s])})
				s++
				t++
			}
		}
		out = append(out, Hunk[T]{
			LineNoX:    h.S0,
			EndLineNoX: h.S1,
			LineNoY:    h.T0,
			EndLineNoY: h.T1,
			Edits:      edits,
		})
	}
	return out
}

// Edits compares the lines in x and y and returns the changes necessary to convert from one to the
// other.
//
// Edits returns one edit for every line in the inputs. If x and y are identical, the output will
// consist of a match edit for every line.
func Edits[T string | []byte](x, y T) []Edit[T] {
	xlines, ylines := splitLines([]byte(x)), splitLines([]byte(y))
	rx, ry := diffLines(xlines, ylines)

	var out []Edit[T]
	n, m := len(xlines), len(ylines)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			out = append(out, Edit[T]{incdiff.Delete, s, -1, T(xlines[s])})
			s++
		}
		for t < m && ry[t] {
			out = append(out, Edit[T]{incdiff.Insert, -1, t, T(ylines[t])})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			out = append(out, Edit[T]{incdiff.Match, s, t, T(xlines[s])})
			s++
			t++
		}
	}
	return out
}

func diffLines(xlines, ylines [][]byte) (rx, ry []bool) {
	c := baseline.Diff(xlines, ylines, bytes.Equal, path.Discard)
	return rvecs.FromClassified(c, len(xlines), len(ylines))
}

// splitLines splits text after every newline. If the text doesn't end with a newline, a missing
// newline marker is appended to the last line.
func splitLines(text []byte) [][]byte {
	lines := bytes.SplitAfter(text, []byte{'\n'})

	// SplitAfter adds an empty element after the last '\n', we need to remove it because it doesn't
	// count as a line for diffs. OTOH, if that line is missing, we know that the file is missing
	// a newline at the end. We fix that by appending a missing ending marker to the last element.
	if last := len(lines) - 1; len(lines[last]) == 0 {
		lines = lines[:last]
	} else {
		l := lines[last]
		lines[last] = append(l[:len(l):len(l)], missingNewline...)
	}
	return lines
}

// printer writes diff lines, optionally colored.
type printer struct {
	w      io.Writer
	colors *config.ColorConfig
	err    error
}

func (p *printer) header(s, ns, t, nt int) {
	if p.err != nil {
		return
	}
	if p.colors != nil && p.colors.HunkHeader != "" {
		_, p.err = fmt.Fprintf(p.w, "%s@@ -%d,%d +%d,%d @@%s\n", p.colors.HunkHeader, s, ns, t, nt, config.Reset)
		return
	}
	_, p.err = fmt.Fprintf(p.w, "@@ -%d,%d +%d,%d @@\n", s, ns, t, nt)
}

func (p *printer) line(prefix string, line []byte) {
	if p.err != nil {
		return
	}
	if p.colors == nil {
		if _, p.err = io.WriteString(p.w, prefix); p.err == nil {
			_, p.err = p.w.Write(line)
		}
		return
	}
	var code string
	switch prefix {
	case prefixMatch:
		code = p.colors.Match
	case prefixDelete:
		code = p.colors.Delete
	case prefixInsert:
		code = p.colors.Insert
	}
	line = bytes.TrimSuffix(line, []byte{'\n'})
	if code == "" {
		_, p.err = fmt.Fprintf(p.w, "%s%s\n", prefix, line)
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s%s%s\n", code, prefix, line, config.Reset)
}
