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

// Package frontier contains the node tree used by the resumable variant of Myers' algorithm.
//
// The textbook algorithm stores the search frontier as an array of integers, one x value per
// diagonal. Here, every entry of the frontier is a node in a tree instead. A node knows its
// position, its parent and up to three children, one per move (down, right, diagonal). That makes
// partial paths addressable: the edit path is recovered by following parent links and paths found
// in earlier rounds of an incremental search can be shared with later rounds.
//
// Nodes live in an arena and are addressed by [ID]. Children are created lazily and cached, so
// traversing the same move from the same node twice yields the same node. Apart from the child
// cache, nodes never change after they are created. The only way to discard nodes is to drop the
// whole tree.
//
// Every node has exactly one parent, so the nodes form a tree and following parent links from any
// node terminates at the virtual root at (0,-1).
package frontier

import (
	"slices"

	"znkr.io/incdiff/internal/path"
)

// ID identifies a node in a [Tree].
type ID int32

const (
	// None is the absence of a node.
	None ID = -1
	// Root is the virtual root at (0,-1).
	Root ID = 0
)

// Move is one of the three moves in the edit graph.
type Move int

const (
	Down     Move = iota // Insertion, y+1.
	Right                // Deletion, x+1.
	Diagonal             // Match, x+1 and y+1.
)

type node struct {
	x, y   int
	parent ID
	next   [3]ID // children by move; 0 means not created yet (the root is never a child)
}

// snapshot is a saved copy of the leaf frontier.
type snapshot struct {
	leaves []ID
	offset int
}

// Tree is a search frontier backed by a tree of nodes.
type Tree struct {
	nodes []node

	// leaves[k+offset] is the best node on diagonal k at the current search depth.
	leaves []ID
	offset int

	backup    snapshot
	committed bool

	trace   []ID               // path from the root to the end of the last backtrace
	index   map[path.Point]int // position of every trace node by point
	latest  []ID               // segment of trace added by the last backtrace
	pending []ID               // scratch space for Backtrace
}

// New creates an empty tree containing only the virtual root on diagonal k=1.
func New() *Tree {
	t := &Tree{
		nodes:  []node{{x: path.Root.X, y: path.Root.Y, parent: None}},
		leaves: []ID{None, None, Root},
		offset: 1,
		trace:  []ID{Root},
		index:  map[path.Point]int{path.Root: 0},
	}
	t.Commit()
	return t
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Point returns the position of a node.
func (t *Tree) Point(id ID) path.Point {
	n := &t.nodes[id]
	return path.Point{X: n.x, Y: n.y}
}

// Parent returns the parent of a node, or None for the root.
func (t *Tree) Parent(id ID) ID { return t.nodes[id].parent }

// Child returns the cached child of a node for a move, or None if it doesn't exist yet.
func (t *Tree) Child(id ID, mv Move) ID {
	if c := t.nodes[id].next[mv]; c != 0 {
		return c
	}
	return None
}

// Down returns the child one step down from id, creating it if necessary.
func (t *Tree) Down(id ID) ID { return t.child(id, Down, 0, 1) }

// Right returns the child one step right from id, creating it if necessary.
func (t *Tree) Right(id ID) ID { return t.child(id, Right, 1, 0) }

// Diagonal returns the child one diagonal step from id, creating it if necessary.
func (t *Tree) Diagonal(id ID) ID { return t.child(id, Diagonal, 1, 1) }

func (t *Tree) child(id ID, mv Move, dx, dy int) ID {
	if c := t.nodes[id].next[mv]; c != 0 {
		return c
	}
	c := ID(len(t.nodes))
	p := t.nodes[id]
	t.nodes = append(t.nodes, node{x: p.x + dx, y: p.y + dy, parent: id})
	t.nodes[id].next[mv] = c
	return c
}

// Leaf returns the node currently stored for diagonal k.
func (t *Tree) Leaf(k int) ID { return t.leaves[k+t.offset] }

// X returns the x coordinate of the node currently stored for diagonal k.
func (t *Tree) X(k int) int { return t.nodes[t.leaves[k+t.offset]].x }

// Set records id as the best node on its diagonal.
func (t *Tree) Set(id ID) {
	n := &t.nodes[id]
	t.leaves[n.x-n.y+t.offset] = id
}

// Expand makes sure that the leaf frontier can hold the diagonals [-d, d]. Existing entries keep
// their diagonals.
func (t *Tree) Expand(d int) {
	// The root lives on k=1, so the frontier must always reach d+1.
	if t.offset >= d+1 && len(t.leaves)-t.offset > d+1 {
		return
	}
	size := max(2*len(t.leaves), 2*d+3)
	offset := size / 2
	leaves := make([]ID, size)
	for i := range leaves {
		leaves[i] = None
	}
	copy(leaves[offset-t.offset:], t.leaves)
	t.leaves, t.offset = leaves, offset
}

// Commit saves the leaf frontier.
func (t *Tree) Commit() {
	t.backup = snapshot{
		leaves: slices.Clone(t.leaves),
		offset: t.offset,
	}
	t.committed = true
}

// Committed reports whether the frontier was committed since the last checkout.
func (t *Tree) Committed() bool { return t.committed }

// Checkout restores the leaf frontier saved by the last commit.
func (t *Tree) Checkout() {
	t.leaves = slices.Clone(t.backup.leaves)
	t.offset = t.backup.offset
	t.committed = false
}

// Trace returns the path from the root to the end of the last backtrace.
func (t *Tree) Trace() []path.Point { return t.points(t.trace) }

// Latest returns the segment of the trace that was added by the last backtrace. It starts at the
// point where the new path joined the previous trace.
func (t *Tree) Latest() []path.Point { return t.points(t.latest) }

func (t *Tree) points(ids []ID) []path.Point {
	out := make([]path.Point, len(ids))
	for i, id := range ids {
		out[i] = t.Point(id)
	}
	return out
}

// Backtrace walks from end towards the root until it meets a point on the current trace. The
// walked segment replaces the tail of the trace after that point and becomes the latest segment.
func (t *Tree) Backtrace(end ID, obs path.Observer) {
	t.pending = t.pending[:0]
	id := end
	for {
		t.pending = append(t.pending, id)
		if pos, ok := t.index[t.Point(id)]; ok {
			t.splice(pos)
			return
		}
		p := t.nodes[id].parent
		obs.Backward(t.Point(id), t.Point(p))
		id = p
	}
}

// splice replaces trace[pos:] with the reversed pending segment.
func (t *Tree) splice(pos int) {
	for _, id := range t.trace[pos:] {
		delete(t.index, t.Point(id))
	}
	t.trace = t.trace[:pos]
	start := len(t.trace)
	for i := len(t.pending) - 1; i >= 0; i-- {
		id := t.pending[i]
		t.index[t.Point(id)] = len(t.trace)
		t.trace = append(t.trace, id)
	}
	t.latest = append(t.latest[:0], t.trace[start:]...)
}

// Truncate walks the trace from its end towards the root, counting non-diagonal steps. It returns
// the start of the first diagonal step that is at least depth non-diagonal steps away from the end.
// If there is no such step, it returns the first point after the root, (0,0).
func (t *Tree) Truncate(depth int) path.Point {
	turns := 0
	for i := len(t.trace) - 1; i > 0; i-- {
		cur, prev := t.Point(t.trace[i]), t.Point(t.trace[i-1])
		diag := cur.X == prev.X+1 && cur.Y == prev.Y+1
		if !diag {
			turns++
		}
		if turns >= depth && diag {
			return prev
		}
	}
	return path.Point{X: 0, Y: 0}
}
