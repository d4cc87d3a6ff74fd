/*
Package nfa holds non-deterministic finite automata built from regular
expression syntax trees by Thompson's construction.

An NFA is an arena of states. States are addressed by StateID, an index into
the arena, and the transitions are kept in an adjacency table beside it.
Transitions are labeled with a Symbol; the special symbol Epsilon denotes a
transition which does not consume input. Any number of transitions may leave
a state on the same symbol, and cycles are common: every Kleene star
introduces a back-edge. States are compared by identity, i.e. by their
StateID, never by content. States are never removed; an NFA is discarded as
a whole.

States may carry an accept label of a client-defined type. A label signals
that reaching the state means having recognized a complete pattern, e.g. a
token category of a scanner.

A Builder compiles a syntax tree (see package regex) into a Fragment, i.e.
a pair of one start state and one accept state:

	a := nfa.New[string]()
	frag := nfa.NewBuilder(a).Build(tree, "Ident")
	// frag.Accept carries label "Ident"

The label given to Build is handed down along the last operand of every
operator (the right side of concatenations and unions, the operand of a
star) and surfaces on the fragment's accept state. No other state of the
fragment is labeled.

Matching input against an NFA is not part of this package. Clients walking
an NFA may use the read-only accessors (Symbols, Targets, Transitions,
Label) together with Reachable and EpsilonClosure, which terminate on cycles.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package nfa

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for code which has a type parameter named T in scope.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
