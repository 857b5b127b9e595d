package regexlib

import (
	"errors"
	"testing"
)

func TestBuildTreeShapes(t *testing.T) {
	root, err := BuildTree("ab.")
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if root.Kind != KindConcat || root.Left.Sym != 'a' || root.Right.Sym != 'b' {
		t.Fatalf("wrong tree for ab.: %+v", root)
	}

	root, err = BuildTree("ab|")
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if root.Kind != KindUnion || root.Left.Sym != 'a' || root.Right.Sym != 'b' {
		t.Fatalf("wrong tree for ab|: %+v", root)
	}

	root, err = BuildTree("a*")
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if root.Kind != KindStar || root.Left.Sym != 'a' || root.Right != nil {
		t.Fatalf("wrong tree for a*: %+v", root)
	}

	// right child is the more recently pushed operand
	root, err = BuildTree("ab.c|")
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if root.Kind != KindUnion || root.Left.Kind != KindConcat || root.Right.Sym != 'c' {
		t.Fatalf("wrong tree for ab.c|: %+v", root)
	}
}

func TestBuildTreeDepthBounded(t *testing.T) {
	root, err := BuildTree(NormalizeAndPostfix("(a|b)*abb"))
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	depth := func(n *Node) int {
		var rec func(*Node) int
		rec = func(n *Node) int {
			if n == nil {
				return 0
			}
			l, r := rec(n.Left), rec(n.Right)
			if r > l {
				l = r
			}
			return l + 1
		}
		return rec(n)
	}
	if d := depth(root); d > len("(a|b)*abb") {
		t.Fatalf("tree depth %d exceeds input length", d)
	}
}

func TestBuildTreeRejectsMalformed(t *testing.T) {
	for _, postfix := range []string{"*", "a|", "b.", "ab", "a(b"} {
		if _, err := BuildTree(postfix); !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("BuildTree(%q): want ErrMalformedInput, got %v", postfix, err)
		}
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	if _, err := BuildTree(""); !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("BuildTree(\"\"): want ErrEmptyResult, got %v", err)
	}
}
