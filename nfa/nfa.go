package nfa

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
)

// StateID identifies a state within its NFA.
type StateID int

// Symbol is the input character of a transition.
type Symbol rune

// Epsilon is the symbol of transitions which do not consume input.
const Epsilon Symbol = -1

func (sym Symbol) String() string {
	if sym == Epsilon {
		return "ε"
	}
	return fmt.Sprintf("%q", rune(sym))
}

// NFA is a non-deterministic finite automaton with accept labels of type T.
// The zero value is not usable; create NFAs with New.
type NFA[T any] struct {
	labels []label[T]                // arena of states, indexed by StateID
	delta  []map[Symbol]*treeset.Set // adjacency table, sets of StateID
}

type label[T any] struct {
	value T
	ok    bool
}

// New creates an empty NFA.
func New[T any]() *NFA[T] {
	return &NFA[T]{
		labels: make([]label[T], 0, 16),
		delta:  make([]map[Symbol]*treeset.Set, 0, 16),
	}
}

// NewState adds a fresh state without transitions and without label.
func (a *NFA[T]) NewState() StateID {
	id := StateID(len(a.labels))
	a.labels = append(a.labels, label[T]{})
	a.delta = append(a.delta, nil)
	return id
}

// Size returns the number of states.
func (a *NFA[T]) Size() int {
	return len(a.labels)
}

// AddTransition adds a transition from one state to another on sym.
// Adding an existing transition again has no effect.
func (a *NFA[T]) AddTransition(from StateID, sym Symbol, to StateID) {
	a.check(from)
	a.check(to)
	if a.delta[from] == nil {
		a.delta[from] = make(map[Symbol]*treeset.Set)
	}
	targets, ok := a.delta[from][sym]
	if !ok {
		targets = treeset.NewWith(compareStateIDs)
		a.delta[from][sym] = targets
	}
	targets.Add(to)
}

// SetLabel sets the accept label of a state.
func (a *NFA[T]) SetLabel(id StateID, value T) {
	a.check(id)
	a.labels[id] = label[T]{value: value, ok: true}
}

// ClearLabel removes the accept label of a state.
func (a *NFA[T]) ClearLabel(id StateID) {
	a.check(id)
	a.labels[id] = label[T]{}
}

// Label returns the accept label of a state. The boolean is false for
// states without a label.
func (a *NFA[T]) Label(id StateID) (T, bool) {
	a.check(id)
	return a.labels[id].value, a.labels[id].ok
}

// Symbols returns the symbols of the transitions leaving a state, in
// ascending order. Epsilon, if present, comes first.
func (a *NFA[T]) Symbols(id StateID) []Symbol {
	a.check(id)
	syms := make([]Symbol, 0, len(a.delta[id]))
	for sym := range a.delta[id] {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Targets returns the states reachable from a state by a single
// transition on sym, in ascending order.
func (a *NFA[T]) Targets(id StateID, sym Symbol) []StateID {
	a.check(id)
	targets, ok := a.delta[id][sym]
	if !ok {
		return nil
	}
	ids := make([]StateID, 0, targets.Size())
	for _, v := range targets.Values() {
		ids = append(ids, v.(StateID))
	}
	return ids
}

// Transitions returns all transitions leaving a state. The map is a copy
// and may be modified by the caller.
func (a *NFA[T]) Transitions(id StateID) map[Symbol][]StateID {
	a.check(id)
	m := make(map[Symbol][]StateID, len(a.delta[id]))
	for sym := range a.delta[id] {
		m[sym] = a.Targets(id, sym)
	}
	return m
}

// Degree returns the number of transitions leaving a state.
func (a *NFA[T]) Degree(id StateID) int {
	a.check(id)
	n := 0
	for _, targets := range a.delta[id] {
		n += targets.Size()
	}
	return n
}

func (a *NFA[T]) check(id StateID) {
	if id < 0 || int(id) >= len(a.labels) {
		panic(fmt.Sprintf("nfa: state %d does not exist", id))
	}
}

func compareStateIDs(a, b interface{}) int {
	x, y := a.(StateID), b.(StateID)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
