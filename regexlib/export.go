package regexlib

import (
	"encoding/json"
	"io"
	"sort"
)

// Read-only view of an automaton for visualization/export collaborators.
// Nothing in the core consumes these; they are the boundary only.

// GraphNode is one automaton state.
type GraphNode struct {
	ID        int  `json:"id"`
	Accepting bool `json:"accepting"`
}

// GraphEdge is one transition. Symbol is Epsilon for ε edges.
type GraphEdge struct {
	From   int
	To     int
	Symbol rune
}

// Graph is implemented by NFA, DFA and MinDFA.
type Graph interface {
	StartID() int
	Nodes() []GraphNode
	Edges() []GraphEdge
}

// StartID implements Graph.
func (n *NFA) StartID() int { return int(n.Start) }

// Nodes lists all states in id order.
func (n *NFA) Nodes() []GraphNode {
	out := make([]GraphNode, len(n.states))
	for i, s := range n.states {
		out[i] = GraphNode{ID: i, Accepting: s.accept}
	}
	return out
}

// Edges lists all transitions, ordered by source id then symbol
// (ε sorts first).
func (n *NFA) Edges() []GraphEdge {
	var out []GraphEdge
	for i, s := range n.states {
		for _, sym := range sortedKeys(s.trans) {
			for _, to := range s.trans[sym] {
				out = append(out, GraphEdge{From: i, To: int(to), Symbol: sym})
			}
		}
	}
	return out
}

// StartID implements Graph.
func (d *DFA) StartID() int { return int(d.Start) }

// Nodes lists all states in id order.
func (d *DFA) Nodes() []GraphNode { return stateNodes(d.states) }

// Edges lists all transitions, ordered by source id then symbol.
func (d *DFA) Edges() []GraphEdge { return stateEdges(d.states) }

// StartID implements Graph.
func (m *MinDFA) StartID() int { return int(m.Start) }

// Nodes lists all states in id order.
func (m *MinDFA) Nodes() []GraphNode { return stateNodes(m.states) }

// Edges lists all transitions, ordered by source id then symbol.
func (m *MinDFA) Edges() []GraphEdge { return stateEdges(m.states) }

func stateNodes(states []dfaState) []GraphNode {
	out := make([]GraphNode, len(states))
	for i, s := range states {
		out[i] = GraphNode{ID: i, Accepting: s.accept}
	}
	return out
}

func stateEdges(states []dfaState) []GraphEdge {
	var out []GraphEdge
	for i, s := range states {
		syms := make([]rune, 0, len(s.trans))
		for sym := range s.trans {
			syms = append(syms, sym)
		}
		sort.Slice(syms, func(a, b int) bool { return syms[a] < syms[b] })
		for _, sym := range syms {
			out = append(out, GraphEdge{From: i, To: int(s.trans[sym]), Symbol: sym})
		}
	}
	return out
}

func sortedKeys(trans map[rune][]StateID) []rune {
	syms := make([]rune, 0, len(trans))
	for sym := range trans {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(a, b int) bool { return syms[a] < syms[b] })
	return syms
}

// TreeNode is a flattened syntax tree node, for visualization.
type TreeNode struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// TreeEdge points from a parent tree node to a child.
type TreeEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// FlattenTree numbers the tree pre-order and returns labeled nodes plus
// parent→child edges.
func FlattenTree(root *Node) ([]TreeNode, []TreeEdge) {
	var nodes []TreeNode
	var edges []TreeEdge
	var walk func(n *Node) int
	walk = func(n *Node) int {
		id := len(nodes)
		nodes = append(nodes, TreeNode{ID: id, Label: nodeLabel(n)})
		if n.Left != nil {
			edges = append(edges, TreeEdge{From: id, To: walk(n.Left)})
		}
		if n.Right != nil {
			edges = append(edges, TreeEdge{From: id, To: walk(n.Right)})
		}
		return id
	}
	if root != nil {
		walk(root)
	}
	return nodes, edges
}

func nodeLabel(n *Node) string {
	switch n.Kind {
	case KindEpsilon:
		return "ε"
	case KindLiteral:
		return string(n.Sym)
	case KindConcat:
		return "."
	case KindUnion:
		return "|"
	case KindStar:
		return "*"
	}
	return "?"
}

type edgeJSON struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	Symbol string `json:"symbol"`
}

type graphJSON struct {
	States      []GraphNode `json:"states"`
	Start       int         `json:"start_state"`
	Transitions []edgeJSON  `json:"transitions"`
}

// ExportJSON writes the automaton as {states, start_state, transitions},
// with "ε" standing in for epsilon edges.
func ExportJSON(w io.Writer, g Graph) error {
	edges := g.Edges()
	out := graphJSON{
		States:      g.Nodes(),
		Start:       g.StartID(),
		Transitions: make([]edgeJSON, len(edges)),
	}
	for i, e := range edges {
		sym := "ε"
		if e.Symbol != Epsilon {
			sym = string(e.Symbol)
		}
		out.Transitions[i] = edgeJSON{From: e.From, To: e.To, Symbol: sym}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExportTreeJSON writes the flattened syntax tree as {nodes, edges}.
func ExportTreeJSON(w io.Writer, root *Node) error {
	nodes, edges := FlattenTree(root)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Nodes []TreeNode `json:"nodes"`
		Edges []TreeEdge `json:"edges"`
	}{nodes, edges})
}
