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

// Package path contains the coordinate type shared by all engines and the resolver that turns
// an edit path into matches, deletions and insertions.
//
// An edit path is a sequence of points in the edit graph that starts at the virtual root (0,-1).
// Consecutive points differ by exactly one move: a step right (x+1) is a deletion, a step down
// (y+1) is an insertion and a diagonal step (x+1, y+1) is a match. The first step of every path
// leads from the virtual root down to (0,0), it is an artifact of the search and never reported.
package path

// Point is a position in the edit graph. X is an index into the left input and Y an index into
// the right input.
type Point struct {
	X, Y int
}

// Root is the virtual root of every edit path.
var Root = Point{0, -1}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// K returns the diagonal index of p.
func (p Point) K() int { return p.X - p.Y }

// Observer receives the edges traversed during a search. It is purely observational and never
// consulted for correctness.
type Observer interface {
	// Forward is called for every edge explored by the forward search.
	Forward(from, to Point)
	// Backward is called for every edge walked while recovering the edit path.
	Backward(from, to Point)
}

// Discard is an Observer that ignores all edges.
var Discard Observer = discard{}

type discard struct{}

func (discard) Forward(from, to Point)  {}
func (discard) Backward(from, to Point) {}

// Shifted wraps obs so that it receives points translated by offset.
func Shifted(obs Observer, offset Point) Observer {
	if obs == Discard || offset == (Point{}) {
		return obs
	}
	return shifted{obs, offset}
}

type shifted struct {
	obs    Observer
	offset Point
}

func (s shifted) Forward(from, to Point)  { s.obs.Forward(from.Add(s.offset), to.Add(s.offset)) }
func (s shifted) Backward(from, to Point) { s.obs.Backward(from.Add(s.offset), to.Add(s.offset)) }
