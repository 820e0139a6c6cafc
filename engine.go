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
	"errors"
	"log/slog"
	"slices"

	"znkr.io/incdiff/internal/config"
	"znkr.io/incdiff/internal/frontier"
	"znkr.io/incdiff/internal/path"
	"znkr.io/incdiff/replay"
)

// Engine compares a fixed slice against a slice that grows over time.
//
// An Engine keeps the search frontier of Myers' algorithm between updates. When the right input
// grows, the search is resumed from the last checkpoint, the first depth at which the previous
// search reached the end of the right input. Depths below the checkpoint never looked at the end of
// the right input and remain valid.
//
// An Engine is not safe for concurrent use.
type Engine[X, Y any] struct {
	a  []X
	b  []Y
	eq func(X, Y) bool

	cfg    config.Config
	obs    path.Observer // cfg.Observer shifted by offset
	tree   *frontier.Tree
	depth  int   // confirmed depth, the search resumes here
	offset Point // position of the live window in the full inputs

	capture *replay.Writer
	err     error // sticky capture error
}

// New creates an engine that compares a against b and everything appended to b later.
//
// The following options are supported: [incdiff.MaxDepth], [incdiff.TruncateDepth],
// [incdiff.Observe], [incdiff.Logger], [incdiff.Capture]
func New[T comparable](a, b []T, opts ...Option) (*Engine[T, T], error) {
	return NewFunc(a, b, equal[T], opts...)
}

// NewFunc creates an engine that compares a against b and everything appended to b later using
// the provided equality comparison.
//
// The following options are supported: [incdiff.MaxDepth], [incdiff.TruncateDepth],
// [incdiff.Observe], [incdiff.Logger], [incdiff.Capture]
func NewFunc[X, Y any](a []X, b []Y, eq func(X, Y) bool, opts ...Option) (*Engine[X, Y], error) {
	if eq == nil {
		return nil, invalid("nil comparator")
	}
	cfg := config.FromOptions(opts, config.MaxDepth|config.TruncateDepth|config.Observer|config.Logger|config.Capture)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine[X, Y]{
		a:    slices.Clone(a),
		b:    slices.Clone(b),
		eq:   eq,
		cfg:  cfg,
		obs:  cfg.Observer,
		tree: frontier.New(),
	}
	if cfg.CaptureDir != "" {
		w, err := replay.Create(cfg.CaptureDir)
		if err != nil {
			return nil, err
		}
		if err := w.Init(e.a, e.b); err != nil {
			w.Close()
			return nil, err
		}
		cfg.Logger.Debug("capturing session", "path", w.Path())
		e.capture = w
	}
	return e, nil
}

// Depth returns the confirmed depth, the number of insertions and deletions on the current path
// since the last truncation.
func (e *Engine[X, Y]) Depth() int { return e.depth }

// Settled returns the position before which the alignment is final. Results of later updates
// never start before this position. It only advances when the engine truncates its history.
func (e *Engine[X, Y]) Settled() Point { return e.offset }

// Diff computes a complete alignment of the inputs seen so far. It doesn't change the state of the
// engine.
//
// If the engine truncated its history, only the retained part of the inputs is aligned and the
// result starts at the truncation point.
func (e *Engine[X, Y]) Diff() Result {
	t := frontier.New()
	end, _ := search(t, e.a, e.b, e.eq, 0, true, e.obs)
	t.Backtrace(end, e.obs)
	return fromClassified(path.Resolve(t.Latest(), e.offset), e.offset)
}

// Update appends chunk to the right input and returns the part of the alignment that changed. The
// result is authoritative from its position onwards, see [Result.Merge].
//
// Updating with an empty chunk returns an empty result and doesn't change the engine.
func (e *Engine[X, Y]) Update(chunk []Y) Result {
	if len(chunk) == 0 {
		end := e.end()
		return Result{PosX: end.X, PosY: end.Y}
	}
	if e.capture != nil && e.err == nil {
		e.err = e.capture.Append(chunk)
	}
	if e.cfg.MaxDepth > 0 && e.depth >= e.cfg.MaxDepth {
		e.truncate()
	}

	e.b = append(e.b, chunk...)
	e.tree.Checkout()
	end, depth := search(e.tree, e.a, e.b, e.eq, e.depth, false, e.obs)
	e.depth = depth
	e.tree.Backtrace(end, e.obs)
	return e.latest()
}

// Flush extends the alignment to the end of both inputs. Updates only align the left input as far
// as the right input has been seen, Flush reports the remaining deletions.
//
// Flush doesn't affect the checkpoint, more chunks can be appended afterwards.
func (e *Engine[X, Y]) Flush() Result {
	e.tree.Checkout()
	end, _ := search(e.tree, e.a, e.b, e.eq, e.depth, true, e.obs)
	e.tree.Backtrace(end, e.obs)
	return e.latest()
}

// Close finishes the captured session, if any, and returns the first capture error.
func (e *Engine[X, Y]) Close() error {
	if e.capture == nil {
		return e.err
	}
	err := errors.Join(e.err, e.capture.Close())
	e.capture = nil
	e.err = err
	return err
}

// latest converts the segment found by the last backtrace into a result.
func (e *Engine[X, Y]) latest() Result {
	seg := e.tree.Latest()
	pos := seg[0]
	if pos == path.Root {
		pos = Point{}
	}
	return fromClassified(path.Resolve(seg, e.offset), pos.Add(e.offset))
}

// end returns the end of the current trace.
func (e *Engine[X, Y]) end() Point {
	trace := e.tree.Trace()
	p := trace[len(trace)-1]
	if p == path.Root {
		p = Point{}
	}
	return p.Add(e.offset)
}

// truncate drops the part of the inputs before the truncation point and starts over with a new
// tree. The new state is only adopted once it's complete.
func (e *Engine[X, Y]) truncate() {
	p := e.tree.Truncate(e.cfg.TruncateDepth)
	a := slices.Clone(e.a[p.X:])
	b := slices.Clone(e.b[p.Y:])
	tree := frontier.New()
	offset := e.offset.Add(p)
	obs := path.Shifted(e.cfg.Observer, offset)

	e.cfg.Logger.Debug("truncating history",
		slog.Int("depth", e.depth),
		slog.Int("nodes", e.tree.Len()),
		slog.Group("at", slog.Int("x", offset.X), slog.Int("y", offset.Y)),
	)
	e.a, e.b, e.tree, e.offset, e.obs, e.depth = a, b, tree, offset, obs, 0
}
