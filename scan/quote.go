package scan

import (
	"strings"

	"github.com/npillmayer/qstring"
)

// PlainToken reports whether data may be emitted as a bare token,
// without any quoting at all. This is the fast path a tokenizer runs
// before deciding to produce a quoted-string.
//
// The validator v is driven one unit at a time and may carry state, so
// callers pass a fresh instance per call. A false from the validator is
// final; PlainToken does not retry.
func PlainToken(v qstring.TokenValidator, data []byte) bool {
	for _, b := range data {
		if !v.Next(b) {
			return false
		}
	}
	return v.End()
}

// Quote renders data for inclusion in a structured header value. If
// the validator accepts data as a bare token it is returned unchanged;
// otherwise a quoted-string is built, escaping units per classifier c.
// A unit Invalid under c has no representation and yields an
// IllegalCodeUnit error.
//
// Note that an empty input never stands as a bare token and always
// comes back as the empty quoted-string.
func Quote(c qstring.QuotingClassifier, v qstring.TokenValidator, data []byte) (string, error) {
	if len(data) > 0 && PlainToken(v, data) {
		return string(data), nil
	}
	var sb strings.Builder
	sb.Grow(len(data) + 2)
	sb.WriteByte('"')
	for _, b := range data {
		switch c.ClassifyForQuoting(b) {
		case qstring.QText:
			sb.WriteByte(b)
		case qstring.NeedsQuoting:
			sb.WriteByte('\\')
			sb.WriteByte(b)
		default:
			return "", &qstring.Error{Kind: qstring.IllegalCodeUnit, Unit: b}
		}
	}
	sb.WriteByte('"')
	return sb.String(), nil
}
