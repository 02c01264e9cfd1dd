package qstring

// QuotingClass tells how a single code unit may appear inside a
// quoted-string body.
type QuotingClass int8

// The three quoting classes. They are exhaustive and mutually exclusive:
// a classifier maps every byte value to exactly one of them.
const (
	// QText flags a unit which is safe inside a quoted-string body
	// without an escape.
	QText QuotingClass = iota
	// NeedsQuoting flags a unit which must be preceded by the escape
	// marker to appear at all.
	NeedsQuoting
	// Invalid flags a unit which cannot appear under this grammar in
	// any form, escaped or not.
	Invalid
)

func (q QuotingClass) String() string {
	switch q {
	case QText:
		return "QText"
	case NeedsQuoting:
		return "NeedsQuoting"
	case Invalid:
		return "Invalid"
	}
	return "<unknown quoting class>"
}

// A QuotingClassifier decides the quoting class of single code units.
// Classifiers are pure and stateless; the classification of a unit
// never depends on its neighbors.
//
// Two kinds of classifiers exist: restricted ones for US-ASCII-only
// grammars, where units above 0x7F have no representation at all, and
// extended ones for internationalized grammars, where non-ASCII units
// are valid free text and nothing is Invalid.
type QuotingClassifier interface {
	ClassifyForQuoting(b byte) QuotingClass
}

// A TokenValidator checks whether a sequence of code units may be
// emitted as a bare token, without any quoting at all. It is driven one
// unit at a time through Next; End is called once after the last unit
// and judges the accumulated sequence as a whole.
//
// Any false returned from Next is final for the token: the caller must
// fall back to quoting, not retry. Validators may carry state (e.g. to
// reject an empty token from End), so a fresh instance is needed per
// token.
type TokenValidator interface {
	Next(b byte) bool
	End() bool
}
