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
	"slices"

	"znkr.io/incdiff/internal/path"
)

// Point is a position in the edit graph, X is an index into the left input and Y an index into the
// right input.
type Point = path.Point

// Result describes (a part of) an alignment between two slices. All lists are in ascending order.
//
// A Result is authoritative from position (PosX, PosY) onwards: it replaces every previously
// reported entry at or after this position. For a complete diff, the position is (0, 0).
type Result struct {
	PosX, PosY int
	Matches    []Point // Pairs of matching indices.
	Deletes    []int   // Indices of deleted elements of the left input.
	Inserts    []int   // Indices of inserted elements of the right input.
}

func fromClassified(c path.Classified, pos Point) Result {
	return Result{
		PosX:    pos.X,
		PosY:    pos.Y,
		Matches: c.Matches,
		Deletes: c.Deletes,
		Inserts: c.Inserts,
	}
}

// Empty reports whether r contains no entries.
func (r Result) Empty() bool {
	return len(r.Matches) == 0 && len(r.Deletes) == 0 && len(r.Inserts) == 0
}

// Merge replaces all entries of r at or after the position of next with the entries of next.
//
// Merging the results of all calls to [Engine.Update] in order, followed by the result of
// [Engine.Flush], yields a complete alignment of both inputs.
func (r *Result) Merge(next Result) {
	r.Matches = splice(r.Matches, cutMatches(r.Matches, next.PosX), next.Matches)
	r.Deletes = splice(r.Deletes, cutInts(r.Deletes, next.PosX), next.Deletes)
	r.Inserts = splice(r.Inserts, cutInts(r.Inserts, next.PosY), next.Inserts)
	r.PosX = min(r.PosX, next.PosX)
	r.PosY = min(r.PosY, next.PosY)
}

// cutMatches returns the number of matches with X < x.
func cutMatches(matches []Point, x int) int {
	i, _ := slices.BinarySearchFunc(matches, x, func(p Point, x int) int { return p.X - x })
	return i
}

// cutInts returns the number of indices < v.
func cutInts(indices []int, v int) int {
	i, _ := slices.BinarySearch(indices, v)
	return i
}

// splice replaces dst[i:] with src. Empty results are nil, like the lists of a fresh diff.
func splice[T any](dst []T, i int, src []T) []T {
	dst = append(dst[:i], src...)
	if len(dst) == 0 {
		return nil
	}
	return dst
}
