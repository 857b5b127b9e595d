package regexlib

// Epsilon is the reserved no-input transition label. It is disjoint
// from the alphabet (symbols are alphanumeric).
const Epsilon rune = 0

// StateID indexes a state inside its owning automaton's arena.
type StateID int

type nfaState struct {
	accept bool
	trans  map[rune][]StateID // symbol (or Epsilon) → targets
}

// NFA is an arena of states addressed by StateID. The arena doubles as
// the id allocator: every BuildNFA call starts a fresh one, so ids never
// collide across independent compilations. Exactly one state has the
// accepting flag set once construction finishes.
type NFA struct {
	states []nfaState
	Start  StateID
	Accept StateID
}

// NumStates reports the arena size.
func (n *NFA) NumStates() int { return len(n.states) }

func (n *NFA) newState() StateID {
	n.states = append(n.states, nfaState{trans: map[rune][]StateID{}})
	return StateID(len(n.states) - 1)
}

func (n *NFA) addEdge(from StateID, sym rune, to StateID) {
	n.states[from].trans[sym] = append(n.states[from].trans[sym], to)
}

// nfaFrag is a sub-automaton under construction: one start, one accept.
type nfaFrag struct {
	start, accept StateID
}

// BuildNFA translates the syntax tree into an automaton with Thompson's
// construction. Each sub-tree yields a fragment with a single accepting
// state; composing fragments clears the inner accept flags, so the
// post-condition is exactly one accepting state.
func BuildNFA(root *Node) (*NFA, error) {
	if root == nil {
		return nil, ErrEmptyResult
	}
	n := &NFA{}
	frag := n.build(root)
	n.Start, n.Accept = frag.start, frag.accept
	return n, nil
}

func (n *NFA) build(node *Node) nfaFrag {
	switch node.Kind {
	case KindLiteral, KindEpsilon:
		start := n.newState()
		accept := n.newState()
		sym := Epsilon
		if node.Kind == KindLiteral {
			sym = node.Sym
		}
		n.addEdge(start, sym, accept)
		n.states[accept].accept = true
		return nfaFrag{start, accept}

	case KindStar:
		sub := n.build(node.Left)
		start := n.newState()
		accept := n.newState()
		n.states[sub.accept].accept = false
		n.addEdge(start, Epsilon, sub.start)
		n.addEdge(start, Epsilon, accept)
		n.addEdge(sub.accept, Epsilon, sub.start)
		n.addEdge(sub.accept, Epsilon, accept)
		n.states[accept].accept = true
		return nfaFrag{start, accept}

	case KindConcat:
		left := n.build(node.Left)
		right := n.build(node.Right)
		n.states[left.accept].accept = false
		n.addEdge(left.accept, Epsilon, right.start)
		return nfaFrag{left.start, right.accept}

	case KindUnion:
		left := n.build(node.Left)
		right := n.build(node.Right)
		start := n.newState()
		accept := n.newState()
		n.states[left.accept].accept = false
		n.states[right.accept].accept = false
		n.addEdge(start, Epsilon, left.start)
		n.addEdge(start, Epsilon, right.start)
		n.addEdge(left.accept, Epsilon, accept)
		n.addEdge(right.accept, Epsilon, accept)
		n.states[accept].accept = true
		return nfaFrag{start, accept}
	}
	panic("regexlib: unknown node kind")
}
