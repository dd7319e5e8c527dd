package analysis

// scanState is the record shared by the reverse scanner, the identifier
// recognizer, and the dot/operator recognizers that call back into one
// another. runes holds the window being scanned in natural left-to-right
// order. The scan position is not stored here: each recognizer takes and
// returns it as pos, the exclusive end of the remaining unconsumed
// prefix, i.e. runes[:pos] is what is left to examine. Every recognizer
// decrements pos as it consumes characters
// going right to left, per spec §3's "(reverse_chars_remaining,
// consumed_count, call_op_flag)" state tuple.
type scanState struct {
	runes  []rune
	oracle Oracle
}

// reverseScan is the reverse scanner's single entry point (spec §4.2).
// It strips trailing whitespace and dispatches on the last non-space
// character. It returns the classified context and the position
// immediately left of the matched token (used by the surround span
// builder to compute how many characters were consumed).
func (s *scanState) reverseScan(pos int) (Context, int) {
	spaces := 0
	for pos > 0 && isSpace(s.runes[pos-1]) {
		pos--
		spaces++
	}

	if pos == 0 {
		return exprContext(), pos
	}

	last := s.runes[pos-1]

	// Cases 2-4: token/AST-only operators and the binary-literal opener
	// cannot extend a cursor context. The window already ends exactly
	// at the queried position, so there is never real text beyond it to
	// check the spec's "not followed by :" exception against.
	if pos >= 2 && s.runes[pos-2] == '=' && last == '>' {
		return exprContext(), pos - 2
	}

	if pos >= 2 && s.runes[pos-2] == '-' && last == '>' {
		return exprContext(), pos - 2
	}

	if pos >= 2 && s.runes[pos-2] == '<' && last == '<' && !(pos >= 3 && s.runes[pos-3] == '<') {
		return exprContext(), pos - 2
	}

	// Case 5: a colon, unless it is the second half of "::".
	if last == ':' && !(pos >= 2 && s.runes[pos-2] == ':') {
		if spaces == 1 {
			return Context{Kind: KindUnquotedAtom, Chars: ""}, pos - 1
		}

		return exprContext(), pos - 1
	}

	// Cases 6-7: a trailing dot.
	if last == '.' {
		if pos == 1 {
			return noneContext(), 0
		}

		prev := s.runes[pos-2]
		if prev != '.' && prev != ':' {
			return s.completeDotChain("", pos, pos)
		}
		// Falls through to the identifier recognizer (case 12), whose
		// punctuation prechecks own "..", "...", ".:", and "..:".
	} else {
		// Case 8: call suffix.
		if last == '(' {
			inner := s.skipSpaces(pos - 1)
			if inner == 0 {
				return exprContext(), inner
			}

			ctx, newPos := s.identifierRecognizer(inner, true)

			return promoteCall(ctx), newPos
		}

		// Case 9: arity suffix.
		if last == '/' {
			inner := s.skipSpaces(pos - 1)
			if inner == 0 {
				return exprContext(), inner
			}

			ctx, newPos := s.identifierRecognizer(inner, true)

			return promoteArity(ctx), newPos
		}

		// Case 10: starter punctuation that isn't "(" (already handled).
		if isStarterPunct(last) {
			return exprContext(), pos - 1
		}

		// Case 11: a space-separated call, e.g. "foo bar".
		if spaces >= 1 {
			ctx, newPos := s.identifierRecognizer(pos, true)

			return promoteCall(ctx), newPos
		}
	}

	// Case 12: default.
	return s.identifierRecognizer(pos, false)
}

// promoteCall turns a bare identifier/dot/operator context into its
// call-suffix counterpart (spec §4.2 case 8 and case 11).
func promoteCall(c Context) Context {
	switch c.Kind {
	case KindLocalOrVar:
		return Context{Kind: KindLocalCall, Chars: c.Chars}
	case KindDot:
		return Context{Kind: KindDotCall, Chars: c.Chars, Inside: c.Inside}
	case KindOperator:
		return Context{Kind: KindOperatorCall, Chars: c.Chars}
	default:
		return noneContext()
	}
}

// promoteArity turns a bare identifier/dot/operator context into its
// arity-suffix counterpart (spec §4.2 case 9).
func promoteArity(c Context) Context {
	switch c.Kind {
	case KindLocalOrVar:
		return Context{Kind: KindLocalArity, Chars: c.Chars}
	case KindDot:
		return Context{Kind: KindDotArity, Chars: c.Chars, Inside: c.Inside}
	case KindOperator:
		return Context{Kind: KindOperatorArity, Chars: c.Chars}
	default:
		return noneContext()
	}
}

// hasDotAhead reports whether, scanning further left from pos, the next
// non-consumed character is a single "." (not the second dot of "..").
func (s *scanState) hasDotAhead(pos int) bool {
	if pos == 0 || s.runes[pos-1] != '.' {
		return false
	}

	return !(pos >= 2 && s.runes[pos-2] == '.')
}
