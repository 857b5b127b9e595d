package regexlib

import "fmt"

// BuildTree folds a postfix token stream into a syntax tree with an
// explicit stack. A symbol or ε pushes a leaf, '*' pops one operand,
// '.' and '|' pop two (the later push becomes the right child).
//
// Operators with missing operands and leftover operands are rejected
// with ErrMalformedInput rather than silently skipped; an empty stream
// yields ErrEmptyResult.
func BuildTree(postfix string) (*Node, error) {
	var stk []*Node
	pop := func() *Node {
		n := stk[len(stk)-1]
		stk = stk[:len(stk)-1]
		return n
	}

	for _, tok := range postfix {
		switch {
		case isSymbol(tok):
			stk = append(stk, literalNode(tok))
		case tok == Epsilon:
			stk = append(stk, &Node{Kind: KindEpsilon})
		case tok == '*':
			if len(stk) < 1 {
				return nil, fmt.Errorf("%w: '*' with no operand", ErrMalformedInput)
			}
			stk = append(stk, &Node{Kind: KindStar, Left: pop()})
		case tok == opConcat || tok == '|':
			if len(stk) < 2 {
				return nil, fmt.Errorf("%w: %q with %d operand(s)", ErrMalformedInput, tok, len(stk))
			}
			kind := KindConcat
			if tok == '|' {
				kind = KindUnion
			}
			right := pop()
			left := pop()
			stk = append(stk, &Node{Kind: kind, Left: left, Right: right})
		default:
			return nil, fmt.Errorf("%w: unexpected postfix token %q", ErrMalformedInput, tok)
		}
	}

	switch len(stk) {
	case 0:
		return nil, ErrEmptyResult
	case 1:
		return stk[0], nil
	default:
		return nil, fmt.Errorf("%w: %d loose operands after parse", ErrMalformedInput, len(stk))
	}
}
