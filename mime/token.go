package mime

// TokenValidator is the canonical bare-token validator for the MIME
// token grammar: a unit is acceptable iff it is a Token character, and
// any accumulated sequence is acceptable as a whole. The zero value is
// ready for use; a fresh value is needed per token.
type TokenValidator struct{}

// Next is part of interface qstring.TokenValidator.
func (TokenValidator) Next(b byte) bool {
	return Is(b, Token)
}

// End is part of interface qstring.TokenValidator.
func (TokenValidator) End() bool {
	return true
}
