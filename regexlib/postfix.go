package regexlib

import "strings"

// opConcat is the explicit concatenation operator inserted by
// InsertConcat. It never occurs in user input (not alphanumeric).
const opConcat = '.'

func isSymbol(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// InsertConcat makes concatenation explicit, e.g. "a(b|c)*d" →
// "a.(b|c)*.d". The operator goes between every pair where the left
// side ends a sub-expression (symbol, ')' or '*') and the right side
// starts one (symbol or '(').
func InsertConcat(regex string) string {
	rs := []rune(regex)
	var b strings.Builder
	b.Grow(2 * len(rs))
	for i, curr := range rs {
		b.WriteRune(curr)
		if i+1 < len(rs) {
			next := rs[i+1]
			if (isSymbol(curr) || curr == '*' || curr == ')') &&
				(isSymbol(next) || next == '(') {
				b.WriteRune(opConcat)
			}
		}
	}
	return b.String()
}

// Precedence: '*' is emitted directly (already postfix), then '.' > '|'.
func precedence(op rune) int {
	switch op {
	case opConcat:
		return 2
	case '|':
		return 1
	}
	return 0 // '(' and anything else never outrank a real operator
}

// ToPostfix converts a regex with explicit concatenation to postfix with
// the shunting-yard algorithm. Input is assumed balanced; call Validate
// first to reject malformed patterns, otherwise the token stream may be
// silently truncated (the stack pops are guarded, never a panic).
func ToPostfix(regex string) string {
	var out, ops []rune
	for _, tok := range regex {
		switch {
		case isSymbol(tok):
			out = append(out, tok)
		case tok == '(':
			ops = append(ops, tok)
		case tok == ')':
			for len(ops) > 0 && ops[len(ops)-1] != '(' {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 {
				ops = ops[:len(ops)-1] // discard the '('
			}
		case tok == '*':
			out = append(out, tok)
		case tok == opConcat || tok == '|':
			for len(ops) > 0 && precedence(ops[len(ops)-1]) >= precedence(tok) {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		}
	}
	for len(ops) > 0 {
		out = append(out, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	return string(out)
}

// NormalizeAndPostfix chains InsertConcat and ToPostfix.
func NormalizeAndPostfix(regex string) string {
	return ToPostfix(InsertConcat(regex))
}
