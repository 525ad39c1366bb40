package soltree

import (
	"github.com/fejozsi/ddg-go/ddgraph"
	"github.com/fejozsi/ddg-go/seqedge"
)

// Node is one decision-tree node: the free sequencing edges still available
// for branching at this point in the search, delta-ascending, plus a
// monotonic sequence number for reporting.
type Node struct {
	Sequence  int
	FreeEdges []seqedge.Edge
}

// Tree is the stack of decision-tree nodes plus the fixed-edge stack. The
// two stay in lockstep: the number of nodes above the root always equals
// the number of KindNormal entries on the fixed stack, because a forward
// move pushes one of each and a backtrack pops one node while converting
// one KindNormal entry to KindConjugated.
type Tree struct {
	nodes []Node
	fixed seqedge.Stack
	seq   int
}

// New returns a tree with just the root node, sequence number 1 and an
// empty free-edge list (the caller fills it in via SetFreeEdges once the
// first critical path has been computed).
func New() *Tree {
	return &Tree{nodes: []Node{{Sequence: 1}}, seq: 1}
}

// Current returns the node at the top of the stack.
func (t *Tree) Current() *Node { return &t.nodes[len(t.nodes)-1] }

// SetFreeEdges installs the free-edge list for the current node, as
// produced by seqedge.Enumerate.
func (t *Tree) SetFreeEdges(edges []seqedge.Edge) { t.Current().FreeEdges = edges }

// TakeFirstFreeEdge removes and returns the current node's smallest-delta
// free edge. The caller must have checked HasFreeEdge.
func (t *Tree) TakeFirstFreeEdge() seqedge.Edge {
	node := t.Current()
	e := node.FreeEdges[0]
	node.FreeEdges = node.FreeEdges[1:]
	return e
}

// HasFreeEdge reports whether the current node still has a branching
// candidate.
func (t *Tree) HasFreeEdge() bool { return len(t.Current().FreeEdges) > 0 }

// AtRoot reports whether the current node is the tree's root.
func (t *Tree) AtRoot() bool { return len(t.nodes) == 1 }

// Depth reports how many decision nodes sit above the root.
func (t *Tree) Depth() int { return len(t.nodes) - 1 }

// MoveForward takes edge, expected to be the current node's first
// (smallest-delta) free edge already removed from it, conjugates and
// fixes it, and pushes a fresh decision node for the deeper level.
func (t *Tree) MoveForward(g *ddgraph.Graph, edge seqedge.Edge) {
	t.fixed.FixNormal(g, edge)
	t.seq++
	t.nodes = append(t.nodes, Node{Sequence: t.seq})
}

// Backtrack undoes the most recent still-reversible choice on the fixed
// stack and pops the current decision node, so the parent node, with
// whatever free edges it has left, becomes current again. It reports the
// edge now committed in its original orientation and true, or false if
// the tree is already at its root.
func (t *Tree) Backtrack(g *ddgraph.Graph) (seqedge.Edge, bool) {
	if t.AtRoot() {
		return seqedge.Edge{}, false
	}
	edge, ok := t.fixed.Backtrack(g)
	if !ok {
		return seqedge.Edge{}, false
	}
	t.nodes = t.nodes[:len(t.nodes)-1]
	return edge, true
}

// Exhausted reports whether the search has nothing left to try: the stack
// is back at the root and the root's free-edge list has been drained.
func (t *Tree) Exhausted() bool {
	return t.AtRoot() && !t.HasFreeEdge()
}

// Fixed exposes the underlying fixed-edge stack, e.g. for the engine's
// end-of-search cleanup.
func (t *Tree) Fixed() *seqedge.Stack { return &t.fixed }
