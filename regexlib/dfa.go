package regexlib

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

type dfaState struct {
	accept bool
	trans  map[rune]StateID // partial: no entry means no transition
}

// DFA is the deterministic automaton produced by subset construction.
// Each state stands for a set of NFA states; state 0 is the start.
type DFA struct {
	states []dfaState
	Start  StateID
	Alpha  []rune
}

// NumStates reports the number of DFA states.
func (d *DFA) NumStates() int { return len(d.states) }

// closure expands a state set to its epsilon-closure with a breadth-first
// worklist. The input set is not modified, so closure(closure(S)) == closure(S).
func (n *NFA) closure(set *bitset.BitSet) *bitset.BitSet {
	out := set.Clone()
	var queue []StateID
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		queue = append(queue, StateID(i))
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, to := range n.states[s].trans[Epsilon] {
			if !out.Test(uint(to)) {
				out.Set(uint(to))
				queue = append(queue, to)
			}
		}
	}
	return out
}

func (n *NFA) anyAccepting(set *bitset.BitSet) bool {
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if n.states[i].accept {
			return true
		}
	}
	return false
}

// subsetKey canonicalizes a state set for memoization: the sorted id list.
func subsetKey(set *bitset.BitSet) string {
	ids := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		ids = append(ids, int(i))
	}
	return fmt.Sprint(ids)
}

// SubsetConstruct determinizes the NFA over the given alphabet. Subsets
// are processed in first-discovered order; for each symbol (sorted order)
// the move's closure either maps to an already-seen DFA state or mints
// the next sequential id. An empty move records no transition, so the
// result may be a partial function.
func SubsetConstruct(n *NFA, alphabet []rune) (*DFA, error) {
	if n == nil || len(n.states) == 0 {
		return nil, ErrEmptyResult
	}
	alpha := append([]rune(nil), alphabet...)
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })
	for _, sym := range alpha {
		if sym == Epsilon {
			return nil, fmt.Errorf("%w: alphabet contains the ε sentinel", ErrMalformedInput)
		}
	}

	seed := bitset.New(uint(len(n.states)))
	seed.Set(uint(n.Start))
	startSet := n.closure(seed)

	d := &DFA{Alpha: alpha}
	d.states = append(d.states, dfaState{
		accept: n.anyAccepting(startSet),
		trans:  map[rune]StateID{},
	})
	seen := map[string]StateID{subsetKey(startSet): 0}

	type work struct {
		set *bitset.BitSet
		id  StateID
	}
	queue := []work{{startSet, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, sym := range alpha {
			move := bitset.New(uint(len(n.states)))
			for i, ok := cur.set.NextSet(0); ok; i, ok = cur.set.NextSet(i + 1) {
				for _, to := range n.states[i].trans[sym] {
					move.Set(uint(to))
				}
			}
			if move.None() {
				continue
			}
			clo := n.closure(move)
			key := subsetKey(clo)
			id, ok := seen[key]
			if !ok {
				id = StateID(len(d.states))
				d.states = append(d.states, dfaState{
					accept: n.anyAccepting(clo),
					trans:  map[rune]StateID{},
				})
				seen[key] = id
				queue = append(queue, work{clo, id})
			}
			d.states[cur.id].trans[sym] = id
		}
	}
	return d, nil
}
