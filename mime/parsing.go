package mime

import "github.com/npillmayer/qstring"

// Profile is one of the four canonical grammar profiles of the MIME
// header grammar. A profile binds the non-ASCII flag, the
// obsolete-syntax flag and the quoted-pair predicate to the shared
// folding-whitespace automaton; the result is a complete per-unit
// transition function.
//
// Profiles are immutable and safe for concurrent use; all transient
// parse state travels in qstring.State values. No profiles beyond the
// four package-level instances exist.
type Profile struct {
	name     string
	utf8     bool
	obs      bool
	quotable func(b byte) bool
}

// The four canonical grammar profiles.
var (
	// Obs: obsolete syntax, US-ASCII only.
	Obs = &Profile{name: "Obs", obs: true, quotable: anyASCII}
	// ObsUTF8: obsolete syntax, internationalized.
	ObsUTF8 = &Profile{name: "ObsUTF8", utf8: true, obs: true, quotable: anyASCII}
	// Modern: modern syntax, US-ASCII only.
	Modern = &Profile{name: "Modern", quotable: visibleOrWs}
	// ModernUTF8: modern syntax, internationalized.
	ModernUTF8 = &Profile{name: "ModernUTF8", utf8: true, quotable: visibleOrWs}
)

// obs syntax allows any US-ASCII character in quoted-pairs.
func anyASCII(b byte) bool {
	return b <= 0x7f
}

// VCHAR / WSP equals QText + Ws + DQuoteOrEscape.
// Internationalized mail does not extend quoted-pairs, just qtext, so
// the internationalized profiles use this predicate unchanged.
func visibleOrWs(b byte) bool {
	return Is(b, Ws|QText|DQuoteOrEscape)
}

func (p *Profile) String() string {
	return p.name
}

// AllowsNonASCII is part of interface qstring.Parsing.
func (p *Profile) AllowsNonASCII() bool {
	return p.utf8
}

// ObsoleteSyntax is part of interface qstring.Parsing.
func (p *Profile) ObsoleteSyntax() bool {
	return p.obs
}

// CanBeQuoted is part of interface qstring.Parsing.
func (p *Profile) CanBeQuoted(b byte) bool {
	return p.quotable(b)
}

// HandleNormalState resolves a code unit while outside of a folding
// whitespace run. Whitespace and CR enter the fold automaton, qtext is
// emitted, non-ASCII is emitted iff the profile permits it; everything
// else is inadmissible here.
//
// HandleNormalState is part of interface qstring.Parsing.
func (p *Profile) HandleNormalState(b byte) (qstring.State, bool, error) {
	switch {
	case Is(b, Ws):
		return qstring.Folding(qstring.FWSRun), true, nil
	case b == '\r':
		return qstring.Folding(qstring.FWSHitCR), false, nil
	case Is(b, QText):
		return qstring.Normal, true, nil
	case b > 0x7f && p.utf8:
		return qstring.Normal, true, nil
	}
	return qstring.Normal, false, &qstring.Error{Kind: qstring.IllegalCodeUnit, Unit: b}
}

// Advance is part of interface qstring.Parsing.
func (p *Profile) Advance(st qstring.State, b byte) (qstring.State, bool, error) {
	if st.IsNormal() {
		return p.HandleNormalState(b)
	}
	return st.FWS().Advance(p, b)
}
