/*
Package lexnfa compiles regular expressions into non-deterministic finite
automata, as the first step of building a token scanner.

Description

A scanner has to recognize tokens, and tokens are usually described by
regular expressions. Every token category gets a pattern, say

	Ident   [a-z][a-z0-9_]*
	Number  [0-9]+

and the scanner will try to recognize any of these patterns in its input,
reporting the category of the pattern recognized. Package lexnfa performs
the compilation of one pattern into an automaton, where the automaton's
accept state is labeled with the pattern's category.

Compilation takes three steps. Each step's output is the next step's sole
input:

	pattern text → regex.Lexer  → tokens
	tokens       → regex.Parser → syntax tree
	syntax tree  → nfa.Builder  → NFA fragment (start state, accept state)

The NFA is built by Thompson's construction, one fragment with a single
start and a single accept state per sub-expression, wiring fragments with
epsilon transitions. See sub-packages regex and nfa for the details.

Error Handling

A malformed pattern never aborts compilation. Functions ParsePattern and
Compile degrade to the empty expression ε, which accepts nothing but the
empty input, and additionally return an error telling why. Clients may
distinguish an empty pattern from a malformed one:

	a, frag, err := lexnfa.Compile("(a|b", "Token")
	if errors.Is(err, regex.ErrUnmatchedParen) {
	    …  // malformed; a is the automaton for ε
	} else if errors.Is(err, regex.ErrEmptyPattern) {
	    …  // nothing to compile
	}

Sub-package lexdef reads complete sets of token definitions and compiles
them into a single automaton.

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package lexnfa

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
