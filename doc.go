/*
Package ushape prepares Unicode text for display devices which cannot shape
or reorder text themselves, like terminals or renderers drawing one glyph per
code point.

Description

Text is handled as UTF-16 code units. ShapeUnicode runs a fixed pipeline of
transformations on a copy of its input, selected by an Options bitmask:

▪︎ Arabic letters are replaced by their contextual presentation forms, Lam-Alef
pairs are composed to ligatures and tashkeel are shaped, removed or replaced
(package arabic). Presentation forms may be mapped back as well (LettersUnshape).

▪︎ Complex scripts (Buginese, Javanese, Myanmar, Tamil, Tibetan, Khmer) have
their vowel signs and medials moved to where they are drawn (package shaping).

▪︎ Lines are reordered from logical to visual order with a simplified
bidirectional algorithm (package bidi), mirroring glyphs like parentheses.

Shaping never fails. Unknown or unimplemented option fields are ignored by
ShapeUnicode; clients may check them with Validate beforehand.

Typical usage:

    opts := ushape.ContextFromEnvironment().Options()
    visual := ushape.ShapeString("سلام", opts)

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
package ushape

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
