/*
Package bidi implements a simplified variant of the Unicode UAX#9 Bidirectional
Algorithm, reordering UTF-16 text from logical to visual order.

It is not standards-conforming. There are no embedding levels, no isolates and
no explicit formatting characters. Instead, every code unit is classified as
one of four directions (RTL, Weak, Neutral, LTR), consecutive code units of
equal direction form chunks, and chunks are resolved and reordered line by
line:

1. Input is split into lines at LF and CR. Empty lines are dropped.

2. A line's dominant direction is the direction of its first strong code unit.

3. Neutral chunks take the direction of their neighbours if both agree, else
the dominant direction. A weak chunk following an RTL chunk in an LTR line
changes places with it.

4. Adjacent chunks of equal direction are merged, a line of dominant direction
RTL has its chunks reversed, and the code units of every RTL chunk are
reversed and mirrored (e.g., parentheses).

Reorder joins output lines with a single LF. ReorderLines may be used to keep
the original line separators instead.

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

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
package bidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
