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

// Package baseline contains the textbook variant of Myers' algorithm.
//
// The forward pass keeps a copy of the frontier for every d (quadratic memory) and a single
// backward pass recovers the edit path from these copies. It is used for one-shot diffs and as
// the reference the frontier tree based engines are tested against.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y.
// For x = "ABCABBA" and y = "CBABAC" the graph looks like this:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A step to the right deletes an element of x, a step down inserts an element of y and a diagonal
// step is a match. A d-path is a path with exactly d non-diagonal steps, it ends on a diagonal
// k = x-y in {-d, -d+2, ..., d}. The furthest reaching d-path on diagonal k is either the furthest
// reaching (d-1)-path on k+1 followed by a step down, or the one on k-1 followed by a step right,
// each followed by as many diagonal steps as possible.
//
// The search starts from a virtual root at (0,-1) on diagonal k=1, so that the 0-path is just
// the first step down to (0,0) followed by the common prefix.
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package baseline

import "znkr.io/incdiff/internal/path"

// ShortestEdit runs the forward pass and returns the frontier for every d. The i-th entry holds
// the furthest x reached on every diagonal with i-1 non-diagonal steps; entry 0 holds the
// position of the virtual root.
//
// The frontiers are indexed by k + len(x) + len(y) + 1.
func ShortestEdit[X, Y any](x []X, y []Y, eq func(X, Y) bool, obs path.Observer) [][]int {
	n, m := len(x), len(y)
	dmax := n + m
	offset := dmax + 1
	v := make([]int, 2*dmax+3) // v[k+offset] is the furthest x on diagonal k
	var trace [][]int
	for d := 0; d <= dmax; d++ {
		trace = append(trace, append([]int(nil), v...))
		for k := -d; k <= d; k += 2 {
			var from path.Point
			var s int
			if k == -d || (k != d && v[k-1+offset] < v[k+1+offset]) {
				s = v[k+1+offset]
				from = path.Point{X: s, Y: s - k - 1} // step down
			} else {
				s = v[k-1+offset] + 1
				from = path.Point{X: s - 1, Y: s - k} // step right
			}
			t := s - k
			obs.Forward(from, path.Point{X: s, Y: t})

			for s < n && t < m && eq(x[s], y[t]) {
				obs.Forward(path.Point{X: s, Y: t}, path.Point{X: s + 1, Y: t + 1})
				s++
				t++
			}
			v[k+offset] = s
			if s >= n && t >= m {
				return trace
			}
		}
	}
	panic("never reached")
}

// Backtrace walks the frontiers returned by [ShortestEdit] backwards and returns the edit path
// from the virtual root to (len(x), len(y)).
func Backtrace[X, Y any](x []X, y []Y, trace [][]int, obs path.Observer) []path.Point {
	s, t := len(x), len(y)
	offset := len(x) + len(y) + 1
	var backward []path.Point
	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := s - t

		var prevK int
		if k == -d || (k != d && v[k-1+offset] < v[k+1+offset]) {
			prevK = k + 1 // reached by a step down
		} else {
			prevK = k - 1 // reached by a step right
		}
		prevS := v[prevK+offset]
		prevT := prevS - prevK

		for s > prevS && t > prevT {
			obs.Backward(path.Point{X: s, Y: t}, path.Point{X: s - 1, Y: t - 1})
			backward = append(backward, path.Point{X: s, Y: t})
			s--
			t--
		}
		obs.Backward(path.Point{X: s, Y: t}, path.Point{X: prevS, Y: prevT})
		backward = append(backward, path.Point{X: s, Y: t})
		s, t = prevS, prevT
	}

	p := make([]path.Point, 0, len(backward)+1)
	p = append(p, path.Root)
	for i := len(backward) - 1; i >= 0; i-- {
		p = append(p, backward[i])
	}
	return p
}

// Diff computes the edit path from x to y and classifies it.
func Diff[X, Y any](x []X, y []Y, eq func(X, Y) bool, obs path.Observer) path.Classified {
	if obs == nil {
		obs = path.Discard
	}
	trace := ShortestEdit(x, y, eq, obs)
	return path.Resolve(Backtrace(x, y, trace, obs), path.Point{})
}
