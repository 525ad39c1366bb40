package seqedge

import (
	"github.com/fejozsi/ddg-go/ddgraph"
	"github.com/fejozsi/ddg-go/pathcalc"
)

// Edge is a candidate sequencing swap: two operations on the same machine,
// currently ordered From before To, whose transition the critical path
// runs along. Conjugating it reverses that order.
type Edge struct {
	From, To ddgraph.OpID
	Delta    float64
}

// Enumerate walks sink.CriticalPrev back to Source and returns every
// sequencing (machine-order) transition on the critical path as a
// branching candidate, ordered by ascending Delta. Transitions whose
// critical predecessor arrived over a technological arc are skipped: those
// orders are either job routing or sequencing decisions already fixed, and
// neither can be contested. A pathcalc.Run with machine arcs must already
// have run.
func Enumerate(g *ddgraph.Graph) []Edge {
	var edges []Edge
	id := g.Op(ddgraph.SinkID).CriticalPrev
	for id != ddgraph.SourceID && id != ddgraph.NoOp {
		node := g.Op(id)
		pred := node.CriticalPrev
		if pred == ddgraph.NoOp {
			break
		}
		if node.CriticalIsMachineEdge {
			predOp := g.Op(pred)
			a := pathcalc.SecondForward(g, id) - node.FwdBefore
			b := pathcalc.SecondBackward(g, pred) - predOp.BackBefore
			c := node.Duration + predOp.Duration + a + b
			delta := a
			if b > delta {
				delta = b
			}
			if c > delta {
				delta = c
			}
			edges = insert(edges, Edge{From: pred, To: id, Delta: delta})
		}
		id = pred
	}
	return edges
}

// insert places e before the first existing edge whose Delta is not
// smaller, keeping the list Delta-ascending with later-enumerated edges
// winning ties.
func insert(edges []Edge, e Edge) []Edge {
	pos := 0
	for pos < len(edges) && edges[pos].Delta < e.Delta {
		pos++
	}
	edges = append(edges, Edge{})
	copy(edges[pos+1:], edges[pos:])
	edges[pos] = e
	return edges
}

// Conjugate swaps the machine-order positions of the two operations linked
// by an existing MachineNext arc from -> to, re-linking their surrounding
// neighbours so the chain reads ...prev, to, from, next... afterwards.
// Conjugate is its own inverse: calling it again with (to, from) restores
// the original order.
//
// Precondition: g.Op(from).MachineNext == to.
func Conjugate(g *ddgraph.Graph, from, to ddgraph.OpID) {
	prev := g.Op(from).MachinePrev
	next := g.Op(to).MachineNext

	link(g, prev, to)
	link(g, to, from)
	link(g, from, next)
}

func link(g *ddgraph.Graph, a, b ddgraph.OpID) {
	if a != ddgraph.NoOp {
		g.Op(a).MachineNext = b
	}
	if b != ddgraph.NoOp {
		g.Op(b).MachinePrev = a
	}
}

// Kind classifies a fixed edge on the Stack.
type Kind int

const (
	// KindNormal marks the edge chosen and conjugated on a forward move.
	// Its original orientation has not been explored yet.
	KindNormal Kind = iota
	// KindConjugated marks an edge a backtrack has flipped back to its
	// original orientation; both orientations are now spoken for, and a
	// later backtrack past it only needs to drop its arc.
	KindConjugated
)

// Fixed is one entry of the fixed-edge stack. From -> To is the currently
// committed orientation: From precedes To on the machine, and a matching
// technological arc From -> To is recorded in the graph so that path
// passes and the enumerator treat the decision as settled.
type Fixed struct {
	Kind     Kind
	From, To ddgraph.OpID
}

// Stack is the fixed-edge stack: sequencing decisions committed along the
// current root-to-node path, each backed by a technological arc in the
// graph. All mutation is strictly LIFO.
type Stack struct {
	items []Fixed
}

// Len reports how many edges are currently fixed.
func (s *Stack) Len() int { return len(s.items) }

// NormalCount reports how many entries are KindNormal, which is by
// construction the depth of the decision tree above its root.
func (s *Stack) NormalCount() int {
	n := 0
	for _, f := range s.items {
		if f.Kind == KindNormal {
			n++
		}
	}
	return n
}

// FixNormal conjugates the free edge e and commits the resulting
// orientation: the machine chain now reads e.To before e.From, a
// technological arc e.To -> e.From is added, and the decision is pushed as
// KindNormal.
func (s *Stack) FixNormal(g *ddgraph.Graph, e Edge) {
	Conjugate(g, e.From, e.To)
	g.AddTechnological(e.To, e.From)
	s.items = append(s.items, Fixed{Kind: KindNormal, From: e.To, To: e.From})
}

// Top returns the most recently fixed edge without removing it, and false
// if the stack is empty.
func (s *Stack) Top() (Fixed, bool) {
	if len(s.items) == 0 {
		return Fixed{}, false
	}
	return s.items[len(s.items)-1], true
}

// pop removes and returns the top entry.
func (s *Stack) pop() Fixed {
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

// Backtrack unwinds the most recent still-reversible decision. Every
// KindConjugated edge on top of the stack has both orientations explored:
// each is popped and its arc removed (its machine order already matches
// the original, so the chain is untouched). The KindNormal edge beneath
// them is then conjugated back to its original orientation, its arc
// replaced by one for that orientation, and pushed again as
// KindConjugated, making the original order the committed branch. Reports
// the re-committed edge, or false if nothing reversible remains.
func (s *Stack) Backtrack(g *ddgraph.Graph) (Edge, bool) {
	for {
		top, ok := s.Top()
		if !ok {
			return Edge{}, false
		}
		if top.Kind == KindNormal {
			break
		}
		s.pop()
		g.RemoveTechnological(top.From, top.To)
	}
	n := s.pop()
	Conjugate(g, n.From, n.To)
	g.RemoveTechnological(n.From, n.To)
	g.AddTechnological(n.To, n.From)
	s.items = append(s.items, Fixed{Kind: KindConjugated, From: n.To, To: n.From})
	return Edge{From: n.To, To: n.From}, true
}

// Clear removes every remaining fixed edge and its technological arc,
// without touching the machine chains; the caller is expected to reinstall
// a complete order (e.g. the adopted incumbent) afterwards.
func (s *Stack) Clear(g *ddgraph.Graph) {
	for len(s.items) > 0 {
		top := s.pop()
		g.RemoveTechnological(top.From, top.To)
	}
}
