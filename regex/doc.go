/*
Package regex reads textual regular-expression patterns and turns them into
an abstract syntax tree.

The pattern language is deliberately small. It knows alternation (|),
explicit or implicit concatenation (. or juxtaposition), the postfix
operators *, + and ?, parentheses, and two kinds of character groups:

	"abc"      every distinct character between the quotes
	[a-zA-Z_]  single characters and inclusive ranges

Whitespace outside of groups is not significant.

Patterns are processed in two stages. A Lexer breaks the pattern into a flat
sequence of tokens, terminated by a single TokEOF. A Parser then performs
recursive descent over the tokens, with alternation binding weakest and
repetition binding strongest. Operators + and ? are desugared on the fly:

	X+  =>  Concat(X, Star(X'))    where X' is an independent copy of X
	X?  =>  Union(X, ε)

Both stages report failures as *Error values, carrying the stage, the
byte position within the pattern and one of the sentinel errors of this
package.

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
package regex

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
