// Package analysis implements the reverse tokenizer and classification
// state machine that powers cursor and surround context queries over
// fragments of source text.
package analysis

// Kind tags the variant a Context holds. The zero value is KindExpr.
type Kind int

const (
	// KindExpr marks a position that could start a fresh expression.
	KindExpr Kind = iota

	// KindNone marks a structural mismatch; no context could be determined.
	KindNone

	// KindAlias is a dotted chain of ASCII identifiers, each starting
	// with an uppercase letter (a module name).
	KindAlias

	// KindLocalOrVar is a bare identifier: a local variable or function
	// reference with nothing yet committing it to a call.
	KindLocalOrVar

	// KindLocalArity is an identifier immediately followed by "/".
	KindLocalArity

	// KindLocalCall is an identifier immediately followed by "(" or a
	// space, i.e. a call form.
	KindLocalCall

	// KindModuleAttribute is an identifier prefixed with "@".
	KindModuleAttribute

	// KindUnquotedAtom is a ":name" symbol literal.
	KindUnquotedAtom

	// KindOperator is one of the closed family of punctuation operators,
	// or a textual operator word (when/not/and/or/in) used as one.
	KindOperator

	// KindOperatorArity is an operator followed by "/".
	KindOperatorArity

	// KindOperatorCall is an operator followed by "(" or a space.
	KindOperatorCall

	// KindDot is the right-hand side of a dot chain: Inside.Chars.
	KindDot

	// KindDotArity is a dot chain right-hand side followed by "/".
	KindDotArity

	// KindDotCall is a dot chain right-hand side followed by "(" or a space.
	KindDotCall
)

// Context is the tagged result of classifying a cursor or surround
// position. Chars holds the classified token text for every Kind except
// KindExpr and KindNone. Inside holds the left-hand side of a dot chain
// for KindDot, KindDotArity, and KindDotCall.
type Context struct {
	Kind   Kind
	Chars  string
	Inside *Inside
}

// InsideKind tags the left-hand side of a dot chain.
type InsideKind int

const (
	// InsideVar is a bare variable name to the left of a dot.
	InsideVar InsideKind = iota

	// InsideAlias is a module alias to the left of a dot.
	InsideAlias

	// InsideModuleAttribute is a module attribute to the left of a dot.
	InsideModuleAttribute

	// InsideUnquotedAtom is an unquoted atom to the left of a dot.
	InsideUnquotedAtom

	// InsideDot is itself a dot chain, for A.b.c nesting.
	InsideDot
)

// Inside is the recursive left-hand-side payload of a dot chain. Nested
// is non-nil only when Kind is InsideDot.
type Inside struct {
	Kind   InsideKind
	Chars  string
	Nested *Inside
}

// Options is accepted by CursorContext and SurroundContext but currently
// unused; it exists for forward compatibility with future query knobs.
type Options struct{}

// Position is a 1-based (line, column) location within a fragment.
type Position struct {
	Line   int
	Column int
}

// Record is the result of a surround query: the classified context plus
// the begin/end columns of the token that surrounds the queried position.
type Record struct {
	Context Context
	Begin   Position
	End     Position
}

func exprContext() Context { return Context{Kind: KindExpr} }
func noneContext() Context { return Context{Kind: KindNone} }

func isNone(c Context) bool { return c.Kind == KindNone }
