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

package path

// Classified is an edit path split into its three kinds of moves. All lists are in ascending
// order.
type Classified struct {
	Matches []Point // Pairs of matching indices.
	Deletes []int   // Indices into x.
	Inserts []int   // Indices into y.
}

// Resolve classifies every step of the path p and translates all indices by offset.
//
// If p starts at Root, the first step (Root to (0,0)) is dropped.
func Resolve(p []Point, offset Point) Classified {
	var c Classified
	if len(p) < 2 {
		return c
	}

	start := 0
	if p[0] == Root {
		start = 1
	}

	// Preallocate based on the dominant move; exact counts would need another pass.
	n := len(p) - 1 - start
	c.Matches = make([]Point, 0, n)
	for i := start; i < len(p)-1; i++ {
		cur, next := p[i], p[i+1]
		switch {
		case cur.X+1 == next.X && cur.Y+1 == next.Y:
			c.Matches = append(c.Matches, cur.Add(offset))
		case cur.X+1 == next.X:
			c.Deletes = append(c.Deletes, cur.X+offset.X)
		default:
			c.Inserts = append(c.Inserts, cur.Y+offset.Y)
		}
	}
	if len(c.Matches) == 0 {
		c.Matches = nil
	}
	return c
}
