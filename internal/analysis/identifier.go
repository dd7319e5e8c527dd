package analysis

// identifierRecognizer accumulates identifier characters backwards from
// pos and consults the oracle to confirm kind and decide between
// continuation (dot chain, nested alias) and termination (spec §4.3).
// callOp is true when the caller already committed to "something
// follows this identifier" (a call, arity suffix, dot right-hand side,
// or nested alias segment); it demotes textual-operator words from
// local_or_var to operator.
func (s *scanState) identifierRecognizer(pos int, callOp bool) (Context, int) {
	if ctx, newPos, ok := s.punctuationIdentifier(pos); ok {
		return ctx, newPos
	}

	start := pos

	var marker string

	if pos > 0 && isTrailingIdentChar(s.runes[pos-1]) {
		if pos >= 2 && !isNonIdent(s.runes[pos-2]) {
			marker = string(s.runes[pos-1])
			pos--
		} else {
			return s.operatorRecognizer(start, callOp)
		}
	}

	var acc []rune

	for pos > 0 && !isNonIdent(s.runes[pos-1]) {
		acc = append([]rune{s.runes[pos-1]}, acc...)
		pos--
	}

	if len(acc) == 0 {
		return s.operatorRecognizer(start, callOp)
	}

	body := string(acc)
	full := body + marker

	// Module attribute: a single leading "@" that the accumulation loop
	// could not have skipped past (spec §4.3 step 3, first bullet).
	if body[0] == '@' {
		return s.moduleAttribute(body, pos)
	}

	term := rune(0)
	if pos > 0 {
		term = s.runes[pos-1]
	}

	doubleColon := pos >= 2 && s.runes[pos-2] == ':'

	if term == ':' && !doubleColon {
		tok := s.oracle.TokenizeIdentifier(body)
		if tok.Leftover == "" && tok.Kind != IdentOther {
			return Context{Kind: KindUnquotedAtom, Chars: body}, pos - 1
		}

		return noneContext(), start
	}

	if term == '?' {
		return noneContext(), start
	}

	tok := s.oracle.TokenizeIdentifier(full)
	if tok.Leftover != "" || tok.HasAt {
		return noneContext(), pos
	}

	switch tok.Kind {
	case IdentAtom:
		return noneContext(), pos

	case IdentAlias:
		if !tok.ASCIIOnly {
			return noneContext(), pos
		}

		if s.hasDotAhead(pos) {
			return s.nestedAlias(full, pos)
		}

		return Context{Kind: KindAlias, Chars: full}, pos

	case IdentIdentifier:
		if s.hasDotAhead(pos) {
			return s.completeDotChain(full, pos, pos)
		}

		if callOp && textualOperators[full] {
			return Context{Kind: KindOperator, Chars: full}, pos
		}

		return Context{Kind: KindLocalOrVar, Chars: full}, pos

	default:
		return noneContext(), pos
	}
}

// punctuationIdentifier handles the four punctuation-only literal runs
// that the general accumulation loop cannot classify on its own (spec
// §4.3 intro).
func (s *scanState) punctuationIdentifier(pos int) (Context, int, bool) {
	tail := func(n int) string {
		if pos < n {
			return ""
		}

		return string(s.runes[pos-n : pos])
	}

	switch {
	case tail(3) == "..:":
		return Context{Kind: KindUnquotedAtom, Chars: ".."}, pos - 3, true
	case tail(3) == "...":
		return Context{Kind: KindLocalOrVar, Chars: "..."}, pos - 3, true
	case tail(2) == ".:":
		return Context{Kind: KindUnquotedAtom, Chars: "."}, pos - 2, true
	case tail(2) == "..":
		return Context{Kind: KindOperator, Chars: ".."}, pos - 2, true
	default:
		return Context{}, pos, false
	}
}

// moduleAttribute classifies a candidate that begins with "@" (spec
// §4.3 step 3, first bullet).
func (s *scanState) moduleAttribute(body string, pos int) (Context, int) {
	rest := body[1:]
	if rest == "" {
		return Context{Kind: KindModuleAttribute, Chars: ""}, pos
	}

	tok := s.oracle.TokenizeIdentifier(rest)
	if tok.Kind == IdentIdentifier && !tok.HasAt && tok.Leftover == "" {
		return Context{Kind: KindModuleAttribute, Chars: rest}, pos
	}

	return noneContext(), pos
}
