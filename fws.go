package qstring

// Folding whitespace (FWS) is a run of space and horizontal-tab units,
// optionally interrupted by a CRLF line fold:
//
//    FWS     = ([*WSP CRLF] 1*WSP)            ; modern syntax
//    obs-FWS = 1*WSP *(CRLF 1*WSP)            ; obsolete syntax
//
// The modern production admits at most one fold per run, the obsolete
// one any number. The whitespace units of a run are content and get
// emitted; the CR and LF of a fold are pure formatting and are
// absorbed.
//
// All four grammar profiles share this one automaton. A profile enters
// it from its normal-state handler and forwards every subsequent unit
// here until the run closes; the automaton hands non-whitespace units
// back to the profile's normal-state handler.

// FWSState is the sub-state describing the position within a folding
// whitespace run.
type FWSState int8

const (
	// FWSRun: inside a whitespace run, no fold consumed yet.
	FWSRun FWSState = iota
	// FWSHitCR: a CR has been consumed, the LF is pending.
	FWSHitCR
	// FWSHitCRLF: a CRLF has been consumed, the fold still needs at
	// least one whitespace unit to be complete.
	FWSHitCRLF
	// FWSFolded: inside the whitespace run following a complete fold.
	FWSFolded
)

func (f FWSState) String() string {
	switch f {
	case FWSRun:
		return "FWSRun"
	case FWSHitCR:
		return "FWSHitCR"
	case FWSHitCRLF:
		return "FWSHitCRLF"
	case FWSFolded:
		return "FWSFolded"
	}
	return "<unknown FWS state>"
}

// Advance resolves one code unit within a folding-whitespace run. It
// reports the successor state and whether the unit is emitted as
// content. Units which end the run are handed back to the grammar
// profile g for normal-state handling.
func (f FWSState) Advance(g Parsing, b byte) (State, bool, error) {
	switch f {
	case FWSRun, FWSFolded:
		switch b {
		case ' ', '\t':
			return Folding(f), true, nil
		case '\r':
			if f == FWSFolded && !g.ObsoleteSyntax() {
				// modern FWS has exactly one CRLF per run
				return Normal, false, &Error{Kind: MalformedFold, Unit: b}
			}
			return Folding(FWSHitCR), false, nil
		}
		return g.HandleNormalState(b)
	case FWSHitCR:
		if b == '\n' {
			return Folding(FWSHitCRLF), false, nil
		}
		return Normal, false, &Error{Kind: MalformedFold, Unit: b}
	case FWSHitCRLF:
		if b == ' ' || b == '\t' {
			return Folding(FWSFolded), true, nil
		}
		return Normal, false, &Error{Kind: MalformedFold, Unit: b}
	}
	return Normal, false, &Error{Kind: MalformedFold, Unit: b}
}
