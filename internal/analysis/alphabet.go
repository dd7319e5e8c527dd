package analysis

// Character alphabet classes, per spec §3. Closed sets, defined once and
// checked with simple membership tests rather than built as a 128-entry
// table: the sets are small enough that a linear scan over a handful of
// runes is cheaper to read and just as fast for single-rune lookups.

const operatorChars = `\<>+-*/:=|&~^%!`
const starterPunct = `,([{;`
const nonStarterPunct = `)]}"'.$`
const trailingIdentChars = "?!"

var textualOperators = map[string]bool{
	"when": true,
	"not":  true,
	"and":  true,
	"or":   true,
	"in":   true,
}

var surroundKeywords = map[string]bool{
	"do":     true,
	"end":    true,
	"after":  true,
	"else":   true,
	"catch":  true,
	"rescue": true,
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isOperatorChar(r rune) bool {
	return containsRune(operatorChars, r)
}

func isStarterPunct(r rune) bool {
	return containsRune(starterPunct, r)
}

func isNonStarterPunct(r rune) bool {
	return containsRune(nonStarterPunct, r)
}

func isTrailingIdentChar(r rune) bool {
	return r == '?' || r == '!'
}

// isNonIdent reports whether r can never be part of an identifier body.
func isNonIdent(r rune) bool {
	return isTrailingIdentChar(r) || isOperatorChar(r) || isStarterPunct(r) || isNonStarterPunct(r) || isSpace(r)
}

func containsRune(set string, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}

	return false
}
