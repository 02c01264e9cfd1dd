/*
Package mime implements the quoted-string grammar of MIME header values.

Content

MIME and internet-message header fields share one quoted-string
construct, but not one grammar. RFC 5322 describes the modern syntax
and, for backward compatibility, an obsolete syntax whose quoted-pairs
may escape any US-ASCII character; RFC 6532 adds internationalized
variants which admit non-ASCII code units directly as free text. This
package provides the four resulting grammar profiles,

  Obs         obsolete syntax, US-ASCII only
  ObsUTF8     obsolete syntax, internationalized
  Modern      modern syntax, US-ASCII only
  ModernUTF8  modern syntax, internationalized

together with the per-byte category table they consult, the two quoting
classifiers (restricted and extended) and the canonical bare-token
validator. All four profiles implement qstring.Parsing and share the
folding-whitespace automaton of the root package; they diverge only in
their flags and their quoted-pair predicate.

Typical Usage

Clients pick a profile and hand it to a driver, e.g. the scanner in
sub-package scan:

  content, tail, err := scan.Parse(mime.ModernUTF8, input)

The category table is a generated constant; lookup is total over the
byte range and never fails.

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
package mime
