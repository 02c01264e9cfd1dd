package qstring

import "fmt"

// ErrorKind names one of the closed set of grammar failure reasons.
type ErrorKind int8

const (
	// IllegalCodeUnit: the unit is not admissible under the active
	// grammar in the active state, neither literally nor escaped.
	IllegalCodeUnit ErrorKind = iota
	// MalformedFold: a whitespace/line-fold run violated the FWS
	// production, e.g. a CR without LF or a fold without trailing
	// whitespace.
	MalformedFold
	// PrematureEnd: input ended while a fold was still open.
	PrematureEnd
)

func (k ErrorKind) String() string {
	switch k {
	case IllegalCodeUnit:
		return "IllegalCodeUnit"
	case MalformedFold:
		return "MalformedFold"
	case PrematureEnd:
		return "PrematureEnd"
	}
	return "<unknown error kind>"
}

// Error reports input which is inadmissible under the active grammar.
// Errors are detected at the offending unit; no backtracking or
// recovery is attempted by the core. Unit holds the offending code
// unit, except for PrematureEnd, where there is none.
type Error struct {
	Kind ErrorKind
	Unit byte
}

func (e *Error) Error() string {
	switch e.Kind {
	case IllegalCodeUnit:
		return fmt.Sprintf("qstring: illegal code unit 0x%02x", e.Unit)
	case MalformedFold:
		return fmt.Sprintf("qstring: malformed folding whitespace at unit 0x%02x", e.Unit)
	case PrematureEnd:
		return "qstring: input ended inside an open fold"
	}
	return "qstring: grammar error"
}
