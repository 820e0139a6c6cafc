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
	"znkr.io/incdiff/internal/frontier"
	"znkr.io/incdiff/internal/path"
)

// search runs the forward pass of Myers' algorithm on t, starting at depth d. The leaf frontier of
// t must hold the furthest reaching (d-1)-paths.
//
// If final is false, the search stops at the first depth at which a path reaches the end of y and
// returns the node with the largest x among all such paths at this depth. The frontier is committed
// as soon as the first node reaches the end of y and the returned depth is the depth of this
// commit, which may be lower than the depth of the returned node.
//
// If final is true, the search stops at (len(x), len(y)) and never commits.
func search[X, Y any](t *frontier.Tree, x []X, y []Y, eq func(X, Y) bool, d int, final bool, obs path.Observer) (frontier.ID, int) {
	n, m := len(x), len(y)
	commit := -1
	for ; ; d++ {
		t.Expand(d)
		end, endX := frontier.None, -1
		for k := -d; k <= d; k += 2 {
			var from, id frontier.ID
			if k == -d || (k != d && t.X(k-1) < t.X(k+1)) {
				from = t.Leaf(k + 1)
				id = t.Down(from)
			} else {
				from = t.Leaf(k - 1)
				id = t.Right(from)
			}
			p := t.Point(id)
			obs.Forward(t.Point(from), p)

			for p.X < n && p.Y < m && eq(x[p.X], y[p.Y]) {
				id = t.Diagonal(id)
				q := t.Point(id)
				obs.Forward(p, q)
				p = q
			}
			t.Set(id)

			if final {
				if p.X >= n && p.Y >= m {
					return id, d
				}
				continue
			}
			if p.Y == m {
				if !t.Committed() {
					t.Commit()
					commit = d
				}
				// Paths that ran past the end of x can't be extended to a valid alignment.
				if p.X <= n && p.X > endX {
					end, endX = id, p.X
				}
			}
		}
		if end != frontier.None {
			return end, commit
		}
	}
}
