package mime

import (
	"testing"

	"github.com/npillmayer/qstring"
)

func TestProfileFlags(t *testing.T) {
	cases := []struct {
		p         *Profile
		utf8, obs bool
	}{
		{Obs, false, true},
		{ObsUTF8, true, true},
		{Modern, false, false},
		{ModernUTF8, true, false},
	}
	for _, c := range cases {
		if c.p.AllowsNonASCII() != c.utf8 || c.p.ObsoleteSyntax() != c.obs {
			t.Errorf("%s: flags = (%v, %v), expected (%v, %v)", c.p,
				c.p.AllowsNonASCII(), c.p.ObsoleteSyntax(), c.utf8, c.obs)
		}
	}
}

func TestQuotedPairPredicates(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		obsWant := v <= 0x7f
		if Obs.CanBeQuoted(b) != obsWant || ObsUTF8.CanBeQuoted(b) != obsWant {
			t.Errorf("obsolete profiles: CanBeQuoted(%#02x) should be %v", v, obsWant)
		}
		modernWant := Is(b, Ws|QText|DQuoteOrEscape)
		if Modern.CanBeQuoted(b) != modernWant || ModernUTF8.CanBeQuoted(b) != modernWant {
			t.Errorf("modern profiles: CanBeQuoted(%#02x) should be %v", v, modernWant)
		}
	}
}

func TestQuoteDelimiterIsEscapable(t *testing.T) {
	for _, p := range []*Profile{Obs, ObsUTF8, Modern, ModernUTF8} {
		if !p.CanBeQuoted('"') || !p.CanBeQuoted('\\') {
			t.Errorf("%s: DQUOTE and backslash must be escapable", p)
		}
	}
	if Is('"', Token) || Is('"', QText) {
		t.Errorf("DQUOTE must be neither Token nor QText, have %s", ClassOf('"'))
	}
}

func TestNormalStateEmitsQText(t *testing.T) {
	st, emit, err := Modern.HandleNormalState('A')
	if err != nil || !emit || !st.IsNormal() {
		t.Errorf("'A' should be emitted in Normal state, have (%s, %v, %v)", st, emit, err)
	}
}

func TestNormalStateEntersFoldOnWhitespace(t *testing.T) {
	st, emit, err := Modern.HandleNormalState('\t')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !emit {
		t.Error("whitespace is content and should be emitted")
	}
	if st.IsNormal() || st.FWS() != qstring.FWSRun {
		t.Errorf("HTAB should enter the fold automaton, have %s", st)
	}
}

func TestNonASCIIRequiresInternationalizedProfile(t *testing.T) {
	for _, p := range []*Profile{Obs, Modern} {
		_, _, err := p.HandleNormalState(0xC3)
		ge, ok := err.(*qstring.Error)
		if !ok || ge.Kind != qstring.IllegalCodeUnit || ge.Unit != 0xC3 {
			t.Errorf("%s: expected IllegalCodeUnit for 0xC3, have %v", p, err)
		}
	}
	for _, p := range []*Profile{ObsUTF8, ModernUTF8} {
		st, emit, err := p.HandleNormalState(0xC3)
		if err != nil || !emit || !st.IsNormal() {
			t.Errorf("%s: 0xC3 should be emitted as qtext, have (%s, %v, %v)", p, st, emit, err)
		}
	}
}

func TestAdvanceAcrossFold(t *testing.T) {
	input := "a\r\n b"
	st := qstring.Normal
	var emitted []byte
	for i := 0; i < len(input); i++ {
		next, emit, err := Modern.Advance(st, input[i])
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		if emit {
			emitted = append(emitted, input[i])
		}
		st = next
	}
	if string(emitted) != "a b" {
		t.Errorf("emitted = %q, expected fold CRLF to be absorbed", emitted)
	}
	if err := st.End(); err != nil {
		t.Errorf("unexpected end-of-input error: %v", err)
	}
}

func TestControlCharacterIsIllegalEverywhere(t *testing.T) {
	for _, p := range []*Profile{Obs, ObsUTF8, Modern, ModernUTF8} {
		_, _, err := p.HandleNormalState(0x01)
		ge, ok := err.(*qstring.Error)
		if !ok || ge.Kind != qstring.IllegalCodeUnit {
			t.Errorf("%s: expected IllegalCodeUnit for 0x01, have %v", p, err)
		}
	}
}
