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
	"crypto/sha256"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/incdiff"
)

func TestWriter(t *testing.T) {
	var x, y strings.Builder
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&x, "line %d\n", i)
		if i%4 == 2 {
			fmt.Fprintf(&y, "changed %d\n", i)
		} else {
			fmt.Fprintf(&y, "line %d\n", i)
		}
	}
	stream := strings.SplitAfter(strings.TrimSuffix(y.String(), "\n"), "\n")
	stream[len(stream)-1] += "\n"

	tests := []struct {
		name   string
		x      string
		opts   []incdiff.Option
		writes []string
		want   []string // output after every write and after Close
	}{
		{
			name:   "truncate-often",
			x:      x.String(),
			opts:   []incdiff.Option{incdiff.MaxDepth(2), incdiff.TruncateDepth(0)},
			writes: stream,
			want: []string{
				"",
				"",
				"",
				" line 1\n-line 2\n+changed 2\n",
				"",
				"",
				"",
				" line 3\n line 4\n line 5\n-line 6\n+changed 6\n",
				"",
				"",
				"",
				" line 7\n line 8\n line 9\n-line 10\n+changed 10\n",
				"",
				"",
				"",
				" line 11\n line 12\n line 13\n-line 14\n+changed 14\n line 15\n",
			},
		},
		{
			name:   "truncate-with-context",
			x:      x.String(),
			opts:   []incdiff.Option{incdiff.MaxDepth(4), incdiff.TruncateDepth(1)},
			writes: stream,
			want: []string{
				"",
				"",
				"",
				"",
				"",
				"",
				"",
				" line 1\n-line 2\n+changed 2\n line 3\n line 4\n",
				"",
				"",
				"",
				" line 5\n-line 6\n+changed 6\n line 7\n line 8\n",
				"",
				"",
				"",
				" line 9\n-line 10\n+changed 10\n line 11\n line 12\n line 13\n-line 14\n+changed 14\n line 15\n",
			},
		},
		{
			name:   "everything-on-close",
			x:      x.String(),
			opts:   []incdiff.Option{incdiff.MaxDepth(0)},
			writes: []string{y.String()},
			want: []string{
				"",
				" line 1\n-line 2\n+changed 2\n line 3\n line 4\n line 5\n-line 6\n+changed 6\n line 7\n line 8\n" +
					" line 9\n-line 10\n+changed 10\n line 11\n line 12\n line 13\n-line 14\n+changed 14\n line 15\n",
			},
		},
		{
			name:   "partial-lines",
			x:      "a\nb\nc\n",
			writes: []string{"a\nx", "\nc"},
			want: []string{
				"",
				"",
				" a\n-b\n-c\n+x\n+c\n\\ No newline at end of file\n",
			},
		},
		{
			name:   "split-line",
			x:      "one\ntwo\n",
			opts:   []incdiff.Option{incdiff.MaxDepth(1), incdiff.TruncateDepth(0)},
			writes: []string{"one\n", "tw", "o\nthree\n"},
			want: []string{
				"",
				"",
				"",
				" one\n two\n+three\n",
			},
		},
		{
			name: "nothing-written",
			x:    "a\nb\n",
			want: []string{
				"-a\n-b\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			w, err := NewWriter(&out, tt.x, tt.opts...)
			if err != nil {
				t.Fatalf("NewWriter(...) failed: %v", err)
			}
			var got []string
			for _, p := range tt.writes {
				n, err := w.Write([]byte(p))
				if err != nil || n != len(p) {
					t.Fatalf("Write(%q) = %d, %v, want %d, nil", p, n, err, len(p))
				}
				got = append(got, out.String())
				out.Reset()
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close() failed: %v", err)
			}
			got = append(got, out.String())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Writer output differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestWriterReconstructs(t *testing.T) {
	seed := sha256.Sum256([]byte(t.Name()))
	rng := rand.New(rand.NewChaCha8(seed))
	for i := range 100 {
		x := randomText(rng)
		y := randomText(rng)
		opts := []incdiff.Option{incdiff.MaxDepth(rng.IntN(6)), incdiff.TruncateDepth(0)}
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			var out bytes.Buffer
			w, err := NewWriter(&out, x, opts...)
			if err != nil {
				t.Fatalf("NewWriter(...) failed: %v", err)
			}
			for rest := y; len(rest) > 0; {
				n := min(len(rest), 1+rng.IntN(8))
				if _, err := w.Write([]byte(rest[:n])); err != nil {
					t.Fatalf("Write(...) failed: %v", err)
				}
				rest = rest[n:]
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close() failed: %v", err)
			}

			var gotX, gotY strings.Builder
			for _, l := range strings.SplitAfter(out.String(), "\n") {
				if len(l) == 0 || l[0] == '\\' {
					continue
				}
				switch l[0] {
				case ' ':
					gotX.WriteString(l[1:])
					gotY.WriteString(l[1:])
				case '-':
					gotX.WriteString(l[1:])
				case '+':
					gotY.WriteString(l[1:])
				default:
					t.Fatalf("unexpected line %q", l)
				}
			}
			if diff := cmp.Diff(strings.TrimSuffix(x, "\n"), strings.TrimSuffix(gotX.String(), "\n")); diff != "" {
				t.Errorf("x reconstructed from output differs [-want,+got]:\n%s", diff)
			}
			if diff := cmp.Diff(strings.TrimSuffix(y, "\n"), strings.TrimSuffix(gotY.String(), "\n")); diff != "" {
				t.Errorf("y reconstructed from output differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func randomText(rng *rand.Rand) string {
	var sb strings.Builder
	for range rng.IntN(20) {
		fmt.Fprintf(&sb, "%c\n", 'a'+rng.IntN(4))
	}
	return sb.String()
}

func TestWriterColors(t *testing.T) {
	var out bytes.Buffer
	w, err := NewWriter(&out, "a\nb\n", TerminalColors())
	if err != nil {
		t.Fatalf("NewWriter(...) failed: %v", err)
	}
	if _, err := w.Write([]byte("a\nc\n")); err != nil {
		t.Fatalf("Write(...) failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	want := " a\n\033[31m-b\033[0m\n\033[32m+c\033[0m\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Writer output differs [-want,+got]:\n%s", diff)
	}
}

func TestWriterClosed(t *testing.T) {
	w, err := NewWriter(&bytes.Buffer{}, "a\n")
	if err != nil {
		t.Fatalf("NewWriter(...) failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
	if _, err := w.Write([]byte("a\n")); !errors.Is(err, errClosed) {
		t.Errorf("Write(...) after Close() = %v, want %v", err, errClosed)
	}
}

var errBroken = errors.New("broken")

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestWriterOutputError(t *testing.T) {
	w, err := NewWriter(brokenWriter{}, "a\nb\n", incdiff.MaxDepth(1), incdiff.TruncateDepth(0))
	if err != nil {
		t.Fatalf("NewWriter(...) failed: %v", err)
	}
	for _, p := range []string{"x\n", "y\n", "z\n"} {
		w.Write([]byte(p))
	}
	if err := w.Close(); !errors.Is(err, errBroken) {
		t.Errorf("Close() = %v, want %v", err, errBroken)
	}
}

func TestNewWriterInvalid(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, "a\n", incdiff.MaxDepth(3), incdiff.TruncateDepth(5))
	if !errors.Is(err, incdiff.ErrInvalidConfig) {
		t.Errorf("NewWriter(...) = %v, want %v", err, incdiff.ErrInvalidConfig)
	}
}
