package regexlib

import "fmt"

// Compilation holds every artifact of one regex → minimal DFA run.
// Artifacts are built once and must not be mutated afterwards.
type Compilation struct {
	Pattern  string
	Concat   string // pattern with explicit '.' operators
	Postfix  string
	Tree     *Node
	Alphabet []rune
	NFA      *NFA
	DFA      *DFA
	Min      *MinDFA
}

// Compile runs the full pipeline. A failing stage halts immediately and
// the returned error names it; no partial artifact is handed forward.
func Compile(pattern string) (*Compilation, error) {
	/* 1) validation -------------------------------------------------- */
	if err := Validate(pattern); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	/* 2) normalize + postfix ----------------------------------------- */
	concat := InsertConcat(pattern)
	postfix := ToPostfix(concat)

	/* 3) syntax tree -------------------------------------------------- */
	tree, err := BuildTree(postfix)
	if err != nil {
		return nil, fmt.Errorf("syntax tree: %w", err)
	}

	/* 4) Thompson NFA ------------------------------------------------- */
	nfa, err := BuildNFA(tree)
	if err != nil {
		return nil, fmt.Errorf("nfa: %w", err)
	}

	/* 5) subset construction ------------------------------------------ */
	alphabet := Alphabet(tree)
	dfa, err := SubsetConstruct(nfa, alphabet)
	if err != nil {
		return nil, fmt.Errorf("subset construction: %w", err)
	}

	/* 6) minimization -------------------------------------------------- */
	min, err := Minimize(dfa, alphabet)
	if err != nil {
		return nil, fmt.Errorf("minimize: %w", err)
	}

	return &Compilation{
		Pattern:  pattern,
		Concat:   concat,
		Postfix:  postfix,
		Tree:     tree,
		Alphabet: alphabet,
		NFA:      nfa,
		DFA:      dfa,
		Min:      min,
	}, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(pattern string) *Compilation {
	c, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return c
}
