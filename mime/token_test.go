package mime

import "testing"

func TestTokenValidatorAcceptsTokenCharacters(t *testing.T) {
	var v TokenValidator
	for _, b := range []byte("media-type_1.0!#$%{}") {
		if !v.Next(b) {
			t.Errorf("token character %q rejected", b)
		}
	}
	if !v.End() {
		t.Error("canonical validator must accept any accumulated token")
	}
}

func TestTokenValidatorRejectsNonTokenCharacters(t *testing.T) {
	var v TokenValidator
	for _, b := range []byte{'"', '\\', ' ', '\t', '(', '=', 0x00, 0x7f, 0xC3} {
		if v.Next(b) {
			t.Errorf("non-token unit %#02x accepted", b)
		}
	}
}

func TestTokenValidatorIsIdempotent(t *testing.T) {
	input := []byte("text/plain; charset=utf-8")
	var first, second []bool
	var v1, v2 TokenValidator
	for _, b := range input {
		first = append(first, v1.Next(b))
	}
	for _, b := range input {
		second = append(second, v2.Next(b))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("per-unit results differ at %d: %v vs %v", i, first[i], second[i])
		}
	}
	if v1.End() != v2.End() {
		t.Error("End results differ between fresh validators")
	}
}
