package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeOracle is a minimal, table-driven stand-in for the host tokenizer,
// enough to exercise every branch of the reverse scanner without
// depending on the real oracle implementation.
type fakeOracle struct {
	atoms map[string]bool
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{atoms: map[string]bool{"true": true, "false": true, "nil": true}}
}

func (f *fakeOracle) TokenizeIdentifier(chars string) IdentifierToken {
	if chars == "" {
		return IdentifierToken{Kind: IdentOther}
	}

	r := []rune(chars)

	hasAt := false
	for _, c := range r[1:] {
		if c == '@' {
			hasAt = true
		}
	}

	switch {
	case r[0] == '_' || (r[0] >= 'a' && r[0] <= 'z'):
		kind := IdentIdentifier
		if f.atoms[chars] {
			kind = IdentAtom
		}

		return IdentifierToken{Kind: kind, ASCIIOnly: isASCIIRunes(r), HasAt: hasAt}
	case r[0] >= 'A' && r[0] <= 'Z':
		return IdentifierToken{Kind: IdentAlias, ASCIIOnly: isASCIIRunes(r), HasAt: hasAt}
	default:
		return IdentifierToken{Kind: IdentOther, Leftover: chars}
	}
}

func isASCIIRunes(r []rune) bool {
	for _, c := range r {
		if c > 127 {
			return false
		}
	}

	return true
}

func (f *fakeOracle) ClassifyOperator(chars string) OperatorClass {
	switch chars {
	case "+", "-", "!", "^", "~", "~~", "^^", "==", "<>", "|>", "<-":
		return OpBinary
	default:
		return OpNeither
	}
}

func (f *fakeOracle) TokenizeOperator(chars string) OperatorToken {
	if len(chars) > 1 && chars[0] == ':' {
		rest := chars[1:]
		if f.ClassifyOperator(rest) != OpNeither {
			return OperatorToken{Kind: OperatorTokenAtom, Name: rest}
		}
	}

	if f.ClassifyOperator(chars) != OpNeither {
		return OperatorToken{Kind: OperatorTokenOperator, Name: chars}
	}

	return OperatorToken{Kind: OperatorTokenOther}
}

func TestCursorContext_LocalOrVar(t *testing.T) {
	ctx := CursorContext("hello_wor", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindLocalOrVar, Chars: "hello_wor"}, ctx)
}

func TestCursorContext_Alias(t *testing.T) {
	ctx := CursorContext("Hello.Wor", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindAlias, Chars: "Hello.Wor"}, ctx)
}

func TestCursorContext_DotFromAliasToIdentifier(t *testing.T) {
	ctx := CursorContext("Hello.wor", newFakeOracle(), Options{})
	assert.Equal(t, KindDot, ctx.Kind)
	assert.Equal(t, "wor", ctx.Chars)
	assert.NotNil(t, ctx.Inside)
	assert.Equal(t, InsideAlias, ctx.Inside.Kind)
	assert.Equal(t, "Hello", ctx.Inside.Chars)
}

func TestCursorContext_ModuleAttribute(t *testing.T) {
	ctx := CursorContext("@foo", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindModuleAttribute, Chars: "foo"}, ctx)
}

func TestCursorContext_UnquotedAtom(t *testing.T) {
	ctx := CursorContext(":foo", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindUnquotedAtom, Chars: "foo"}, ctx)
}

func TestCursorContext_LocalArity(t *testing.T) {
	ctx := CursorContext("foo/", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindLocalArity, Chars: "foo"}, ctx)
}

func TestCursorContext_LocalCallOpenParen(t *testing.T) {
	ctx := CursorContext("foo(", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindLocalCall, Chars: "foo"}, ctx)
}

func TestCursorContext_LocalCallSpaceSeparated(t *testing.T) {
	ctx := CursorContext("foo ", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindLocalCall, Chars: "foo"}, ctx)
}

func TestCursorContext_TextualOperatorPromotion(t *testing.T) {
	ctx := CursorContext("when ", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindOperatorCall, Chars: "when"}, ctx)
}

func TestCursorContext_Empty(t *testing.T) {
	ctx := CursorContext("", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindExpr}, ctx)
}

func TestCursorContext_OpenParen(t *testing.T) {
	ctx := CursorContext("(", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindExpr}, ctx)
}

func TestCursorContext_BareDot(t *testing.T) {
	ctx := CursorContext(".", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindNone}, ctx)
}

func TestCursorContext_FatArrowIsExpr(t *testing.T) {
	ctx := CursorContext("=>", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindExpr}, ctx)
}

func TestCursorContext_OnlyLastLineConsidered(t *testing.T) {
	ctx := CursorContext("Alias.thing\nhello_wor", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindLocalOrVar, Chars: "hello_wor"}, ctx)
}

func TestCursorContext_OperatorRun(t *testing.T) {
	// The trailing space makes this a case 11 space-separated call, so the
	// bare operator gets promoted to its call variant, same as "when ".
	ctx := CursorContext("1 + ", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindOperatorCall, Chars: "+"}, ctx)
}

func TestCursorContext_OperatorNoTrailingSpace(t *testing.T) {
	ctx := CursorContext("1 +", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindOperator, Chars: "+"}, ctx)
}

func TestCursorContext_TrailingColonIsExpr(t *testing.T) {
	// A trailing ":" is claimed by the reverse scanner's own colon
	// dispatch (case 5) before the identifier recognizer's "..:"
	// punctuation precheck ever gets a chance to run; that precheck only
	// fires for colon runs reached through a recursive call (dot chain,
	// nested alias, call/arity suffix), not a bare trailing colon.
	ctx := CursorContext("..:", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindExpr}, ctx)
}

func TestCursorContext_DoubleDotOperator(t *testing.T) {
	ctx := CursorContext("..", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindOperator, Chars: ".."}, ctx)
}

func TestCursorContext_TrailingMarker(t *testing.T) {
	ctx := CursorContext("valid?", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindLocalOrVar, Chars: "valid?"}, ctx)
}

func TestCursorContext_AliasNonASCIIRejected(t *testing.T) {
	ctx := CursorContext("Héllo", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindNone}, ctx)
}

func TestCursorContext_NestedAlias(t *testing.T) {
	ctx := CursorContext("A.B.C", newFakeOracle(), Options{})
	assert.Equal(t, Context{Kind: KindAlias, Chars: "A.B.C"}, ctx)
}
