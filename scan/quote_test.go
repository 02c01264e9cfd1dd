package scan

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/qstring"
	"github.com/npillmayer/qstring/mime"
)

func TestPlainTokenFastPath(t *testing.T) {
	if !PlainToken(mime.TokenValidator{}, []byte("plain")) {
		t.Error("'plain' should pass as a bare token")
	}
	if PlainToken(mime.TokenValidator{}, []byte("two words")) {
		t.Error("a value containing SP cannot stand as a bare token")
	}
	if PlainToken(mime.TokenValidator{}, []byte(`say "hi"`)) {
		t.Error("a value containing DQUOTE cannot stand as a bare token")
	}
}

func TestQuotePassesTokensThrough(t *testing.T) {
	out, err := Quote(mime.ASCIIQuoting{}, mime.TokenValidator{}, []byte("attachment"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "attachment" {
		t.Errorf("bare token should be returned unchanged, have %q", out)
	}
}

func TestQuoteBuildsQuotedString(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"two words", `"two words"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"", `""`},
	}
	for _, c := range cases {
		out, err := Quote(mime.ASCIIQuoting{}, mime.TokenValidator{}, []byte(c.input))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.input, err)
		}
		if diff := cmp.Diff(c.want, out); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestQuoteRejectsUnrepresentableUnits(t *testing.T) {
	_, err := Quote(mime.ASCIIQuoting{}, mime.TokenValidator{}, []byte("na\xc3\xafve"))
	ge, ok := err.(*qstring.Error)
	if !ok || ge.Kind != qstring.IllegalCodeUnit {
		t.Errorf("expected IllegalCodeUnit under the restricted classifier, have %v", err)
	}
	out, err := Quote(mime.UTF8Quoting{}, mime.TokenValidator{}, []byte("na\xc3\xafve"))
	if err != nil {
		t.Fatalf("extended classifier should represent non-ASCII, have %v", err)
	}
	if out != "\"na\xc3\xafve\"" {
		t.Errorf("non-ASCII should be literal qtext, have %q", out)
	}
}

// Quote output parses back under the matching grammar profile.
func TestQuoteRoundTrip(t *testing.T) {
	inputs := []string{"plain", "two words", `say "hi"`, "tab\there"}
	for _, in := range inputs {
		out, err := Quote(mime.ClassifierFor(mime.Modern), mime.TokenValidator{}, []byte(in))
		if err != nil {
			t.Fatalf("%q: quoting failed: %v", in, err)
		}
		if out == in {
			continue // stood as a bare token, nothing to validate
		}
		if err := Validate(mime.Modern, []byte(out)); err != nil {
			t.Errorf("%q: quoted form %q does not validate: %v", in, out, err)
		}
	}
}

func ExampleQuote() {
	out, _ := Quote(mime.ASCIIQuoting{}, mime.TokenValidator{}, []byte(`say "hi"`))
	fmt.Println(out)
	out, _ = Quote(mime.ASCIIQuoting{}, mime.TokenValidator{}, []byte("attachment"))
	fmt.Println(out)
	// Output:
	// "say \"hi\""
	// attachment
}
