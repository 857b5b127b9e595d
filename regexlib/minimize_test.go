package regexlib

import (
	"errors"
	"testing"
)

func mustMin(t *testing.T, pattern string) *MinDFA {
	t.Helper()
	c, err := Compile(pattern)
	if err != nil {
		t.Fatalf("compile %q: %v", pattern, err)
	}
	return c.Min
}

// ------------------------------------------------------------------- textbook

func TestMinimizeTextbook(t *testing.T) {
	// (a|b)*abb is the classic example: minimal DFA has 4 states.
	m := mustMin(t, "(a|b)*abb")
	if m.NumStates() != 4 {
		t.Fatalf("(a|b)*abb: %d minimized states, want 4", m.NumStates())
	}
	for _, s := range []string{"abb", "aabb", "babb", "abababb", "bbbabb"} {
		if !runAutomaton(m.states, m.Start, s) {
			t.Fatalf("minimized DFA rejects %q", s)
		}
	}
	for _, s := range []string{"", "ab", "abba", "bba", "abbb"} {
		if runAutomaton(m.states, m.Start, s) {
			t.Fatalf("minimized DFA accepts %q", s)
		}
	}
}

func TestMinimizeNeverGrows(t *testing.T) {
	for _, pat := range []string{"a", "a*", "a|b", "ab", "(a|b)*abb", "a(b|c)*d", "(ab|a)*c"} {
		c, err := Compile(pat)
		if err != nil {
			t.Fatalf("compile %q: %v", pat, err)
		}
		if c.Min.NumStates() > c.DFA.NumStates() {
			t.Fatalf("%q: minimized has %d states, DFA only %d",
				pat, c.Min.NumStates(), c.DFA.NumStates())
		}
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	for _, pat := range []string{"a", "a|ab", "(a|b)*abb", "a(b|c)*d"} {
		c, err := Compile(pat)
		if err != nil {
			t.Fatalf("compile %q: %v", pat, err)
		}
		// a MinDFA has the same shape as a DFA, so feed it back in
		again, err := Minimize(&DFA{states: c.Min.states, Start: c.Min.Start, Alpha: c.Min.Alpha}, c.Alphabet)
		if err != nil {
			t.Fatalf("re-minimize %q: %v", pat, err)
		}
		if again.NumStates() != c.Min.NumStates() {
			t.Fatalf("%q: re-minimizing changed state count %d → %d",
				pat, c.Min.NumStates(), again.NumStates())
		}
	}
}

// ------------------------------------------------------------------- edge cases

func TestMinimizeDropsUnreachable(t *testing.T) {
	// q0 -a-> q1(acc), plus an unreachable accepting q2.
	d := &DFA{
		states: []dfaState{
			{trans: map[rune]StateID{'a': 1}},
			{accept: true, trans: map[rune]StateID{}},
			{accept: true, trans: map[rune]StateID{'a': 2}},
		},
		Start: 0,
		Alpha: []rune{'a'},
	}
	m, err := Minimize(d, d.Alpha)
	if err != nil {
		t.Fatalf("minimize: %v", err)
	}
	if m.NumStates() != 2 {
		t.Fatalf("unreachable state survived: %d states, want 2", m.NumStates())
	}
}

func TestMinimizeAllAccepting(t *testing.T) {
	// a* has no non-accepting reachable state; the empty group is omitted.
	m := mustMin(t, "a*")
	if m.NumStates() != 1 {
		t.Fatalf("a*: %d minimized states, want 1", m.NumStates())
	}
	if !m.states[m.Start].accept {
		t.Fatalf("a*: start must accept ε")
	}
	if to := m.states[m.Start].trans['a']; to != m.Start {
		t.Fatalf("a*: expected a self-loop, got %d", to)
	}
}

func TestMinimizeEmpty(t *testing.T) {
	if _, err := Minimize(nil, []rune{'a'}); !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("want ErrEmptyResult, got %v", err)
	}
}

func TestMinimizeRejectsEpsilonInAlphabet(t *testing.T) {
	d := mustDFA(t, "a")
	if _, err := Minimize(d, []rune{'a', Epsilon}); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("want ErrMalformedInput for ε in alphabet, got %v", err)
	}
}
