package regexlib

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar of the restricted regex language, used only to reject
// malformed patterns up front with a position. The conversion pipeline
// itself still works on the raw string.

type reExpr struct {
	Terms []*reConcat `parser:"@@ ( Pipe @@ )*"`
}

type reConcat struct {
	Factors []*reFactor `parser:"@@+"`
}

type reFactor struct {
	Base  *reBase  `parser:"@@"`
	Stars []string `parser:"@Star*"`
}

type reBase struct {
	Symbol *string `parser:"@Symbol"`
	Group  *reExpr `parser:"| LParen @@ RParen"`
}

var (
	reLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Symbol", Pattern: `[0-9A-Za-z]`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
		{Name: "Pipe", Pattern: `\|`},
		{Name: "Star", Pattern: `\*`},
	})
	reParser = participle.MustBuild[reExpr](participle.Lexer(reLexer))
)

// Validate rejects patterns the pipeline cannot handle: illegal
// characters, unbalanced parentheses, dangling '|' or leading '*'.
// An empty pattern is classified as ErrEmptyResult.
func Validate(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: empty pattern", ErrEmptyResult)
	}
	if _, err := reParser.ParseString("", pattern); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return nil
}
