package analysis

// completeDotChain implements the dot recognizer (spec §4.4). tail is
// the already-accumulated right-hand side (possibly empty, for the
// reverse scanner's case 7 where the cursor sits right after a bare
// "."), and tailBegin is the position at which tail started being
// accumulated. pos points at the "." itself (it may lag behind
// tailBegin when spaces separate tail from the dot, as when an operator
// run is the dot's right-hand side); completeDotChain consumes the dot
// and any spaces to its left, then resolves the left-hand side.
//
// The reported Kind is KindDot with Chars set to tail, the right-hand
// segment alone, not the whole chain — so the returned position must be
// tailBegin, where that segment begins, not wherever resolving the
// left-hand side happened to leave off.
func (s *scanState) completeDotChain(tail string, tailBegin, pos int) (Context, int) {
	pos = s.skipSpaces(pos - 1) // the dot, then any spaces to its left

	left, _ := s.identifierRecognizer(pos, true)

	inside, ok := insideOf(left)
	if !ok {
		return noneContext(), tailBegin
	}

	return Context{Kind: KindDot, Chars: tail, Inside: inside}, tailBegin
}

// nestedAlias implements the nested-alias recognizer (spec §4.5): the
// left-hand side of the dot must itself be an alias, and the segments
// join with ".".
func (s *scanState) nestedAlias(tail string, pos int) (Context, int) {
	pos = s.skipSpaces(pos - 1) // the dot, then any spaces to its left

	left, newPos := s.identifierRecognizer(pos, true)
	if left.Kind != KindAlias {
		return noneContext(), newPos
	}

	return Context{Kind: KindAlias, Chars: left.Chars + "." + tail}, newPos
}

// insideOf converts a resolved left-hand-side context into the
// recursive InsideDot payload (spec §3, §4.4's allowed set).
func insideOf(c Context) (*Inside, bool) {
	switch c.Kind {
	case KindLocalOrVar:
		return &Inside{Kind: InsideVar, Chars: c.Chars}, true
	case KindUnquotedAtom:
		return &Inside{Kind: InsideUnquotedAtom, Chars: c.Chars}, true
	case KindAlias:
		return &Inside{Kind: InsideAlias, Chars: c.Chars}, true
	case KindModuleAttribute:
		return &Inside{Kind: InsideModuleAttribute, Chars: c.Chars}, true
	case KindDot:
		return &Inside{Kind: InsideDot, Chars: c.Chars, Nested: c.Inside}, true
	default:
		return nil, false
	}
}
