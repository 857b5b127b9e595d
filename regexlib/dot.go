package regexlib

import (
	"fmt"
	"io"
)

// ExportDOT prints a Graphviz representation of the automaton to w.
func ExportDOT(w io.Writer, g Graph) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for _, n := range g.Nodes() {
		shape := "circle"
		if n.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", n.ID, shape)
	}
	for _, e := range g.Edges() {
		label := "ε"
		if e.Symbol != Epsilon {
			label = string(e.Symbol)
		}
		fmt.Fprintf(w, "    q%d -> q%d [label=\"%s\"];\n", e.From, e.To, label)
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", g.StartID())

	fmt.Fprintln(w, "}")
}

// ExportTreeDOT prints a Graphviz representation of the syntax tree to w.
func ExportTreeDOT(w io.Writer, root *Node) {
	fmt.Fprintln(w, "digraph T {")
	nodes, edges := FlattenTree(root)
	for _, n := range nodes {
		fmt.Fprintf(w, "    t%d [label=\"%s\"];\n", n.ID, n.Label)
	}
	for _, e := range edges {
		fmt.Fprintf(w, "    t%d -> t%d;\n", e.From, e.To)
	}
	fmt.Fprintln(w, "}")
}
