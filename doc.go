/*
Package qstring is about quoted-string grammars for structured header values.

Description

Header fields of internet messages and media types carry structured
values: parameter lists, content types, dispositions and so on. Tokens
within such values either stand bare or are wrapped into a quoted-string,
a construct delimited by DQUOTE characters which admits characters a bare
token may not contain. Which characters are admissible where is not
answered by a single grammar: the RFCs describe a modern syntax and an
obsolete syntax (retained for backward compatibility, with wider
quoted-pair escaping), and each of the two comes in a US-ASCII-only and
an internationalized flavor, the latter permitting non-ASCII code units
directly as free text. That makes four grammar profiles, which agree on
most of their behavior, in particular on the treatment of folding
whitespace, and diverge in small, precisely located places.

Package qstring provides the shared vocabulary for these grammars:
quoting classification, bare-token validation, the per-unit parsing
contract implemented by grammar profiles, and the folding-whitespace
sub-automaton all profiles delegate to. Concrete grammars live in
sub-packages; sub-package mime implements the MIME header grammar with
its four canonical profiles. Sub-package scan holds the driver that steps
a profile over input one code unit at a time.

Code Units

All classification works on single bytes. Input is consumed one code
unit at a time, where a code unit is one byte of the (possibly
multi-byte) encoded input; a caller holding decoded code points is
expected to feed the individual bytes of their encoding. Classification
is total over the byte range, i.e. there is no lookup that can fail, and
runs in constant time per unit.

A parse is strictly sequential: the decision for a unit may depend on
the folding-whitespace run the automaton is currently in, so a unit must
be fully processed before the next one is considered. The grammar
profiles and category tables themselves are immutable after construction
and may be shared freely between concurrent parses; all transient state
travels in the State value owned by a single parse.

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
package qstring

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
