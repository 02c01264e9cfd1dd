package mime

import "github.com/npillmayer/qstring"

// ASCIIQuoting is the restricted quoting classifier, for grammar
// profiles which do not permit non-ASCII free text. Any US-ASCII unit
// outside of QTextWs can still be force-quoted through a quoted-pair;
// units above 0x7F have no representation at all.
type ASCIIQuoting struct{}

// ClassifyForQuoting is part of interface qstring.QuotingClassifier.
func (ASCIIQuoting) ClassifyForQuoting(b byte) qstring.QuotingClass {
	if Is(b, QTextWs) {
		return qstring.QText
	}
	if b <= 0x7f {
		return qstring.NeedsQuoting
	}
	return qstring.Invalid
}

// UTF8Quoting is the extended quoting classifier, for internationalized
// grammar profiles. Non-ASCII units are valid free text directly, so no
// unit is Invalid under this classifier.
type UTF8Quoting struct{}

// ClassifyForQuoting is part of interface qstring.QuotingClassifier.
func (UTF8Quoting) ClassifyForQuoting(b byte) qstring.QuotingClass {
	if b > 0x7f || Is(b, QTextWs) {
		return qstring.QText
	}
	return qstring.NeedsQuoting
}

// ClassifierFor returns the quoting classifier matching a grammar
// profile. The restricted/extended split follows the profile's
// non-ASCII flag alone; modern and obsolete profiles share the two
// classifier instances.
func ClassifierFor(g qstring.Parsing) qstring.QuotingClassifier {
	if g.AllowsNonASCII() {
		return UTF8Quoting{}
	}
	return ASCIIQuoting{}
}
