package regexlib

import "sort"

// NodeKind tags a syntax tree node.
type NodeKind int

const (
	KindEpsilon NodeKind = iota // ε leaf
	KindLiteral                 // single alphabet symbol
	KindConcat
	KindUnion
	KindStar // unary, Left only
)

// Node is one node of the regex syntax tree. The tree is exclusively
// owned: no sharing, no cycles, depth bounded by the input length.
type Node struct {
	Kind  NodeKind
	Left  *Node
	Right *Node
	Sym   rune // set for KindLiteral only
}

func literalNode(r rune) *Node { return &Node{Kind: KindLiteral, Sym: r} }

// Alphabet collects the symbols actually occurring in the tree, sorted.
// ε is a reserved sentinel and never part of the result.
func Alphabet(root *Node) []rune {
	set := map[rune]struct{}{}
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Kind == KindLiteral {
			set[n.Sym] = struct{}{}
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)
	return sortedRunes(set)
}

func sortedRunes(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
