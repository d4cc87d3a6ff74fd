package nfa

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Reachable returns every state reachable from a state, including the
// state itself, in ascending order. Cycles are visited once.
func (a *NFA[T]) Reachable(from StateID) []StateID {
	return a.walk([]StateID{from}, func(StateID) []Symbol { return nil })
}

// EpsilonClosure returns the states reachable from any of the given states
// by epsilon transitions only, including the given states, in ascending
// order.
func (a *NFA[T]) EpsilonClosure(states ...StateID) []StateID {
	eps := []Symbol{Epsilon}
	return a.walk(states, func(StateID) []Symbol { return eps })
}

// Labeled returns the states reachable from a state which carry an accept
// label, in ascending order.
func (a *NFA[T]) Labeled(from StateID) []StateID {
	var labeled []StateID
	for _, id := range a.Reachable(from) {
		if a.labels[id].ok {
			labeled = append(labeled, id)
		}
	}
	return labeled
}

// walk performs a depth-first traversal. follow selects the symbols to
// follow from a state; a nil result follows every symbol.
func (a *NFA[T]) walk(roots []StateID, follow func(StateID) []Symbol) []StateID {
	visited := hashset.New()
	stack := arraystack.New()
	for _, id := range roots {
		a.check(id)
		stack.Push(id)
	}
	for !stack.Empty() {
		top, _ := stack.Pop()
		id := top.(StateID)
		if visited.Contains(id) {
			continue
		}
		visited.Add(id)
		syms := follow(id)
		if syms == nil {
			syms = a.Symbols(id)
		}
		for _, sym := range syms {
			for _, to := range a.Targets(id, sym) {
				if !visited.Contains(to) {
					stack.Push(to)
				}
			}
		}
	}
	states := make([]StateID, 0, visited.Size())
	for _, v := range visited.Values() {
		states = append(states, v.(StateID))
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}
