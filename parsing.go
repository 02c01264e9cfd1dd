package qstring

// Parsing is the contract a grammar profile fulfills toward a driver.
// A profile binds two grammar flags, a quoted-pair predicate and a
// normal-state handler to the shared folding-whitespace automaton,
// yielding a complete per-unit transition function.
//
// Implementations are immutable; the four canonical MIME profiles live
// in sub-package mime. All per-parse state travels in State values, so
// one profile instance may drive any number of concurrent parses.
type Parsing interface {
	// AllowsNonASCII reports whether units above 0x7F are admissible
	// as free text under this grammar.
	AllowsNonASCII() bool

	// ObsoleteSyntax reports whether the legacy folding and escaping
	// rules apply.
	ObsoleteSyntax() bool

	// CanBeQuoted reports whether the unit may appear after the escape
	// marker inside a quoted-pair under this grammar.
	CanBeQuoted(b byte) bool

	// HandleNormalState is the transition function while outside of a
	// folding-whitespace run. It reports the successor state and
	// whether the unit is emitted as content.
	HandleNormalState(b byte) (State, bool, error)

	// Advance resolves one code unit against the current state. In
	// Normal state it falls through to HandleNormalState; inside a
	// fold it forwards to the folding-whitespace automaton.
	Advance(st State, b byte) (State, bool, error)
}

// State is the parser state between two code units: either Normal, or
// inside a folding-whitespace run with the run's sub-state attached.
// States are small values; a parse owns its State exclusively and
// discards it at the end of the parse.
type State struct {
	folding bool
	fws     FWSState
}

// Normal is the initial state. It is also the only legal terminal
// state, see State.End.
var Normal = State{}

// Folding wraps a folding-whitespace sub-state into a parser state.
func Folding(f FWSState) State {
	return State{folding: true, fws: f}
}

// IsNormal reports whether s is outside of any folding-whitespace run.
func (s State) IsNormal() bool {
	return !s.folding
}

// FWS returns the folding-whitespace sub-state. Only meaningful when
// IsNormal() is false.
func (s State) FWS() FWSState {
	return s.fws
}

// End checks whether a parse may legally stop in state s. Stopping in
// Normal state or within a plain whitespace run is fine; stopping with
// a CR or CRLF pending leaves the fold open and yields a PrematureEnd
// error.
func (s State) End() error {
	if !s.folding {
		return nil
	}
	switch s.fws {
	case FWSHitCR, FWSHitCRLF:
		return &Error{Kind: PrematureEnd}
	}
	return nil
}

func (s State) String() string {
	if !s.folding {
		return "Normal"
	}
	return "Folding(" + s.fws.String() + ")"
}
