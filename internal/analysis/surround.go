package analysis

import (
	"github.com/rivo/uniseg"
)

// SurroundContext classifies the complete token surrounding pos within
// fragment and reports its exact begin/end columns (spec §6, operation
// 2). It returns nil when pos falls outside the fragment, points past
// the end of its line, or the surrounding text does not resolve to any
// of the surround-mode context variants.
func SurroundContext(fragment string, pos Position, oracle Oracle, opts Options) *Record {
	line, ok := selectLine(fragment, pos.Line-1)
	if !ok {
		return nil
	}

	preStr, postStr, ok := splitAtGrapheme(line, pos.Column-1)
	if !ok || postStr == "" {
		return nil
	}

	preRunes, postRunes := []rune(preStr), []rune(postStr)
	preRunes, postRunes, elided := adjustSplit(preRunes, postRunes)

	taken := collectForwardToken(postRunes)

	lineRunes := []rune(line)
	n := len(preRunes) + elided + len(taken)

	combined := make([]rune, 0, len(preRunes)+len(taken))
	combined = append(combined, preRunes...)
	combined = append(combined, taken...)

	s := &scanState{runes: combined, oracle: oracle}
	ctx, newPos := s.reverseScan(len(combined))

	rest := lineRunes[n:]

	surroundCtx, ok := translateSurround(ctx, rest)
	if !ok {
		return nil
	}

	// newPos lives in combined's coordinate space, which has an
	// elided-sized gap relative to lineRunes whenever the matched token's
	// begin position falls within the taken-derived portion.
	lineBeginPos := newPos
	if newPos >= len(preRunes) {
		lineBeginPos = newPos + elided
	}

	beginCol := uniseg.GraphemeClusterCount(string(lineRunes[:lineBeginPos])) + 1
	endCol := uniseg.GraphemeClusterCount(string(lineRunes[:n])) + 1

	if endCol <= beginCol {
		return nil
	}

	return &Record{
		Context: surroundCtx,
		Begin:   Position{Line: pos.Line, Column: beginCol},
		End:     Position{Line: pos.Line, Column: endCol},
	}
}

// splitAtGrapheme splits line into (pre, post) at the clusterIdx-th
// extended grapheme cluster boundary (spec §4.7 step 1). ok is false
// when clusterIdx exceeds the number of clusters in line.
func splitAtGrapheme(line string, clusterIdx int) (pre, post string, ok bool) {
	if clusterIdx <= 0 {
		return "", line, true
	}

	gr := uniseg.NewGraphemes(line)

	consumed := 0
	offset := 0

	for gr.Next() {
		_, end := gr.Positions()
		offset = end
		consumed++

		if consumed == clusterIdx {
			return line[:offset], line[offset:], true
		}
	}

	return "", "", false
}

// adjustSplit applies the colon- and dot-boundary normalization rules
// of spec §4.7 step 2. The returned elided count is the number of
// runes from the original (pre, post) pair that do not appear in
// either returned slice, so callers indexing the original line can
// account for the gap.
func adjustSplit(pre, post []rune) ([]rune, []rune, int) {
	// Move a ":" that starts post into pre, unless either neighbor is
	// itself ":" (that would make "::").
	if len(post) > 0 && post[0] == ':' {
		leftIsColon := len(pre) > 0 && pre[len(pre)-1] == ':'
		rightIsColon := len(post) > 1 && post[1] == ':'

		if !leftIsColon && !rightIsColon {
			pre = append(append([]rune{}, pre...), ':')
			post = post[1:]
		}
	}

	// A lone "." immediately left of the cursor: step forward through
	// any spaces so the span begins at the right-hand identifier.
	trimmed := trimTrailingSpaces(pre)
	if len(trimmed) > 0 && trimmed[len(trimmed)-1] == '.' &&
		!(len(trimmed) >= 2 && trimmed[len(trimmed)-2] == '.') &&
		!(len(post) > 0 && post[0] == ':') {
		skip := 0
		for skip < len(post) && isSpace(post[skip]) {
			skip++
		}

		elided := (len(pre) - len(trimmed)) + skip

		return trimmed, post[skip:], elided
	}

	// The cursor sits between spaces, with a lone "." ahead: step past
	// the dot and its spaces.
	lead := 0
	for lead < len(post) && isSpace(post[lead]) {
		lead++
	}

	if lead < len(post) && post[lead] == '.' &&
		!(lead+1 < len(post) && (post[lead+1] == '.' || post[lead+1] == ':')) {
		rest := post[lead+1:]

		trail := 0
		for trail < len(rest) && isSpace(rest[trail]) {
			trail++
		}

		consumed := append([]rune{}, post[:lead+1+trail]...)
		pre = append(append([]rune{}, pre...), consumed...)
		post = rest[trail:]
	}

	return pre, post, 0
}

func trimTrailingSpaces(runes []rune) []rune {
	end := len(runes)
	for end > 0 && isSpace(runes[end-1]) {
		end--
	}

	return runes[:end]
}

// collectForwardToken gathers the forward-reading remainder of the
// token ahead of the cursor (spec §4.7 step 3).
func collectForwardToken(post []rune) []rune {
	if len(post) > 0 && isTrailingIdentChar(post[0]) {
		return post[:1]
	}

	i := 0
	for i < len(post) && !isNonIdent(post[i]) {
		i++
	}

	if i > 0 {
		for {
			j := i
			for j < len(post) && isSpace(post[j]) {
				j++
			}

			if !(j < len(post) && post[j] == '.' && !(j+1 < len(post) && post[j+1] == '.')) {
				break
			}

			k := j + 1
			for k < len(post) && isSpace(post[k]) {
				k++
			}

			if !(k < len(post) && isUpperASCII(post[k])) {
				break
			}

			m := k
			for m < len(post) && !isNonIdent(post[m]) {
				m++
			}

			if m == k {
				break
			}

			i = m
		}

		return post[:i]
	}

	j := 0
	for j < len(post) && isOperatorChar(post[j]) {
		j++
	}

	return post[:j]
}

func isUpperASCII(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// translateSurround maps a cursor-context result, plus whatever follows
// it in the line, onto the surround-mode variant set (spec §4.7 step
// 4). ok is false when the result collapses to None.
func translateSurround(ctx Context, rest []rune) (Context, bool) {
	switch ctx.Kind {
	case KindAlias:
		return ctx, true

	case KindDot:
		if ctx.Chars == "" {
			return Context{}, false
		}

		return ctx, true

	case KindDotCall, KindDotArity:
		if ctx.Chars == "" {
			return Context{}, false
		}

		return Context{Kind: KindDot, Chars: ctx.Chars, Inside: ctx.Inside}, true

	case KindLocalOrVar:
		return translateLocalOrVar(ctx.Chars, rest)

	case KindLocalCall, KindLocalArity:
		return translateLocalOrVar(ctx.Chars, rest)

	case KindModuleAttribute:
		if ctx.Chars == "" {
			return Context{Kind: KindOperator, Chars: "@"}, true
		}

		return ctx, true

	case KindUnquotedAtom:
		return ctx, true

	case KindOperator:
		return ctx, true

	case KindOperatorCall, KindOperatorArity:
		return Context{Kind: KindOperator, Chars: ctx.Chars}, true

	default:
		return Context{}, false
	}
}

func translateLocalOrVar(a string, rest []rune) (Context, bool) {
	i := 0
	for i < len(rest) && isSpace(rest[i]) {
		i++
	}

	var next rune
	if i < len(rest) {
		next = rest[i]
	}

	switch {
	case next == '(':
		return Context{Kind: KindLocalCall, Chars: a}, true
	case next == '/':
		return Context{Kind: KindLocalArity, Chars: a}, true
	case textualOperators[a]:
		return Context{Kind: KindOperator, Chars: a}, true
	case surroundKeywords[a]:
		return Context{}, false
	default:
		return Context{Kind: KindLocalOrVar, Chars: a}, true
	}
}
