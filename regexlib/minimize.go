package regexlib

import (
	"fmt"
	"sort"
)

// MinDFA is the minimized automaton. Each state stands for one block of
// Myhill-Nerode-equivalent DFA states; the shape mirrors DFA.
type MinDFA struct {
	states []dfaState
	Start  StateID
	Alpha  []rune
}

// NumStates reports the number of minimized states.
func (m *MinDFA) NumStates() int { return len(m.states) }

// Minimize builds the minimal DFA by partition refinement. Only states
// reachable from the start take part (recomputed here, regardless of what
// the caller passes in). The initial split is accepting vs non-accepting;
// each pass recomputes every member's transition signature against the
// current blocks and splits blocks with more than one distinct signature,
// until a pass changes nothing. The fixed point is the unique coarsest
// stable partition, so the output does not depend on iteration order.
func Minimize(d *DFA, alphabet []rune) (*MinDFA, error) {
	if d == nil || len(d.states) == 0 {
		return nil, ErrEmptyResult
	}
	alpha := append([]rune(nil), alphabet...)
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })
	for _, sym := range alpha {
		if sym == Epsilon {
			return nil, fmt.Errorf("%w: alphabet contains the ε sentinel", ErrMalformedInput)
		}
	}

	// Reachable states, breadth-first from the start. The visit order is
	// deterministic and fixes the numbering of the output states.
	reach := []StateID{d.Start}
	seen := map[StateID]bool{d.Start: true}
	for i := 0; i < len(reach); i++ {
		s := reach[i]
		for _, sym := range alpha {
			if t, ok := d.states[s].trans[sym]; ok && !seen[t] {
				seen[t] = true
				reach = append(reach, t)
			}
		}
	}

	// Initial partition: non-accepting, then accepting; empty groups omitted.
	var acc, non []StateID
	for _, s := range reach {
		if d.states[s].accept {
			acc = append(acc, s)
		} else {
			non = append(non, s)
		}
	}
	var blocks [][]StateID
	if len(non) > 0 {
		blocks = append(blocks, non)
	}
	if len(acc) > 0 {
		blocks = append(blocks, acc)
	}

	blockOf := make(map[StateID]int, len(reach))
	index := func() {
		for i, b := range blocks {
			for _, s := range b {
				blockOf[s] = i
			}
		}
	}

	// signature: block index per symbol, -1 when no transition.
	signature := func(s StateID) string {
		sig := make([]int, len(alpha))
		for i, sym := range alpha {
			if t, ok := d.states[s].trans[sym]; ok {
				sig[i] = blockOf[t]
			} else {
				sig[i] = -1
			}
		}
		return fmt.Sprint(sig)
	}

	for {
		index()
		changed := false
		var next [][]StateID
		for _, b := range blocks {
			groups := map[string][]StateID{}
			var order []string
			for _, s := range b {
				sig := signature(s)
				if _, ok := groups[sig]; !ok {
					order = append(order, sig)
				}
				groups[sig] = append(groups[sig], s)
			}
			if len(groups) > 1 {
				changed = true
			}
			for _, sig := range order {
				next = append(next, groups[sig])
			}
		}
		blocks = next
		if !changed {
			break
		}
	}
	index()

	m := &MinDFA{
		states: make([]dfaState, len(blocks)),
		Alpha:  alpha,
	}
	for i, b := range blocks {
		st := dfaState{trans: map[rune]StateID{}}
		for _, s := range b {
			if d.states[s].accept {
				st.accept = true
				break
			}
		}
		// Transitions of an arbitrary member, remapped block-to-block.
		rep := b[0]
		for _, sym := range alpha {
			if t, ok := d.states[rep].trans[sym]; ok {
				st.trans[sym] = StateID(blockOf[t])
			}
		}
		m.states[i] = st
	}
	m.Start = StateID(blockOf[d.Start])
	return m, nil
}
