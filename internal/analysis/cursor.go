package analysis

// CursorContext classifies what kind of syntactic construct is being
// typed at the end of fragment, using oracle to validate identifier,
// alias, atom, and operator candidates (spec §6, operation 1).
//
// Only the last line of fragment is considered; opts is accepted and
// ignored for forward compatibility.
func CursorContext(fragment string, oracle Oracle, opts Options) Context {
	window := lastLine(fragment)
	runes := []rune(window)

	s := &scanState{runes: runes, oracle: oracle}
	ctx, _ := s.reverseScan(len(runes))

	return ctx
}
