/*
Package scan drives a quoted-string grammar profile over input.

Typical Usage

Scanner provides an interface similar to the scanners of package bufio
for reading a quoted-string off the front of a header-value fragment.
Clients pick a grammar profile, e.g. from package mime, and either use
the one-shot functions,

  content, tail, err := scan.Parse(mime.ModernUTF8, input)

or a Scanner when the surrounding tokenizer wants to keep state:

  s := scan.NewPooledScanner(mime.Modern)
  defer s.Free()
  s.Init(input)
  if s.Scan() {
    // do something with s.Content() and s.Tail()
  }

The scanner owns the structural layer of the quoted-string: the two
DQUOTE delimiters and the quoted-pair escape marker. Every other code
unit is resolved by the grammar profile, one unit at a time. Content is
returned as the raw span between the delimiters; quoted-pairs are NOT
unescaped, decoding is the business of a higher layer.

How it works

The scanner keeps a qstring.State and feeds each unit to the profile's
Advance function. Units absorbed as pure formatting (the CR LF of a
line fold) stay part of the raw span but are flagged by the profile;
the scanner merely checks admissibility. Before a delimiter or escape
marker may close the current folding-whitespace run, and at the end of
input, the state is checked for an open fold.

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
package scan

import (
	"context"
	"errors"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/qstring"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNoQuotedString is returned if the input does not start with a
// DQUOTE. ErrUnterminated flags input ending before the closing DQUOTE
// or right after an escape marker. ErrTrailingData is returned by
// Validate for input continuing past the closing DQUOTE.
var (
	ErrNoQuotedString = errors.New("scan: input does not start with a quoted-string")
	ErrUnterminated   = errors.New("scan: quoted-string is not terminated")
	ErrTrailingData   = errors.New("scan: data after closing DQUOTE")
)

// A Scanner reads one quoted-string off the front of its input,
// resolving each code unit through a grammar profile. The zero value is
// not usable; create scanners with NewScanner or NewPooledScanner and
// set their input with Init.
//
// A Scanner must not be shared between concurrent parses.
type Scanner struct {
	g       qstring.Parsing
	st      qstring.State
	data    []byte
	pos     int
	content []byte
	err     error
}

// NewScanner creates a Scanner for grammar profile g.
func NewScanner(g qstring.Parsing) *Scanner {
	return &Scanner{g: g}
}

// Init initializes a Scanner to read from data. s is either a newly
// created scanner to be initialized, or we may re-initialize a scanner
// already in use.
func (s *Scanner) Init(data []byte) {
	s.data = data
	s.pos = 0
	s.st = qstring.Normal
	s.content = nil
	s.err = nil
}

// Scan reads the quoted-string at the current position. It returns
// true on success, after which Content and Tail hold the results, and
// false on error, after which Err reports the reason.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.pos >= len(s.data) || s.data[s.pos] != '"' {
		s.err = ErrNoQuotedString
		return false
	}
	s.pos++
	start := s.pos
	s.st = qstring.Normal
	for s.pos < len(s.data) {
		b := s.data[s.pos]
		switch b {
		case '"':
			if err := s.st.End(); err != nil {
				s.err = err
				return false
			}
			s.content = s.data[start:s.pos]
			s.pos++
			CT().P("length", len(s.content)).Debugf("Scan() = %q", s.content)
			return true
		case '\\':
			if err := s.st.End(); err != nil {
				s.err = err
				return false
			}
			s.st = qstring.Normal
			if s.pos+1 >= len(s.data) {
				s.err = ErrUnterminated
				return false
			}
			quoted := s.data[s.pos+1]
			if !s.g.CanBeQuoted(quoted) {
				s.err = &qstring.Error{Kind: qstring.IllegalCodeUnit, Unit: quoted}
				return false
			}
			s.pos += 2
		default:
			next, emit, err := s.g.Advance(s.st, b)
			if err != nil {
				s.err = err
				return false
			}
			if !emit {
				CT().Debugf("absorbing formatting unit 0x%02x", b)
			}
			s.st = next
			s.pos++
		}
	}
	s.err = ErrUnterminated
	return false
}

// Content returns the raw span between the delimiters of the most
// recently scanned quoted-string. The slice aliases the input data; no
// allocation is performed and quoted-pairs are not unescaped.
func (s *Scanner) Content() []byte {
	return s.content
}

// Tail returns the input remaining after the most recently scanned
// quoted-string.
func (s *Scanner) Tail() []byte {
	return s.data[s.pos:]
}

// Err returns the error that stopped the most recent Scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Scanners are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Scanner{}, nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

// NewPooledScanner returns a Scanner for grammar profile g, taken from
// the pool. Callers hand it back with Free when done.
func NewPooledScanner(g qstring.Parsing) *Scanner {
	o, _ := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx)
	s := o.(*Scanner)
	s.g = g
	s.Init(nil)
	return s
}

// Free clears the Scanner and puts it back into the pool.
func (s *Scanner) Free() {
	s.g = nil
	s.data = nil
	s.content = nil
	s.err = nil
	s.pos = 0
	s.st = qstring.Normal
	_ = globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, s)
}

// Parse reads one quoted-string off the front of data under grammar
// profile g. It returns the raw content span between the delimiters
// (quoted-pairs not unescaped) and the input remaining after the
// closing DQUOTE.
func Parse(g qstring.Parsing, data []byte) (content []byte, tail []byte, err error) {
	s := NewPooledScanner(g)
	defer s.Free()
	s.Init(data)
	if !s.Scan() {
		return nil, data, s.Err()
	}
	return s.Content(), s.Tail(), nil
}

// Validate checks that data in its entirety is one well-formed
// quoted-string under grammar profile g.
func Validate(g qstring.Parsing, data []byte) error {
	_, tail, err := Parse(g, data)
	if err != nil {
		return err
	}
	if len(tail) != 0 {
		return ErrTrailingData
	}
	return nil
}
