package mime

import "strings"

//go:generate go run ./internal/generator

// CharClass is a set of named grammar categories a byte value belongs
// to. A value may belong to several categories, e.g. SP is both Ws and
// QTextWs.
//
// The category contents follow the RFC definitions: Token is the RFC
// 2045 token character set, QText the RFC 5322 qtext set. Neither
// contains control characters (0x00-0x1F, 0x7F).
type CharClass uint8

// The grammar categories of the MIME header grammar.
const (
	// Token: legal in a bare, unquoted token.
	Token CharClass = 1 << iota
	// QText: legal, unescaped, inside a quoted-string body.
	QText
	// QTextWs: QText plus linear whitespace.
	QTextWs
	// Ws: linear whitespace, i.e. SP and HTAB.
	Ws
	// DQuoteOrEscape: the two characters which structurally require
	// escaping inside a quoted-string, DQUOTE and backslash.
	DQuoteOrEscape
)

var charClassNames = []string{"Token", "QText", "QTextWs", "Ws", "DQuoteOrEscape"}

func (c CharClass) String() string {
	if c == 0 {
		return "None"
	}
	var parts []string
	for i, name := range charClassNames {
		if c&(1<<uint(i)) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// ClassOf returns the set of categories the byte value belongs to.
// Total over the byte range, constant time.
func ClassOf(b byte) CharClass {
	return mediaTypeChars[b]
}

// Is reports whether the byte value belongs to at least one of the
// categories in c.
func Is(b byte, c CharClass) bool {
	return mediaTypeChars[b]&c != 0
}
