// This file declares the primitive constructors of the layout algebra.
//
// Construction is total: every builder accepts any input, including nil
// children (treated as Empty), and cannot fail.
package layout

// Shared leaf nodes.  Docs are immutable, so every Empty, Break and
// single-space Literal in a document can be the same node.
var (
	emptyDoc = &Doc{kind: kindEmpty}
	breakDoc = &Doc{kind: kindBreak}
	spaceDoc = &Doc{kind: kindLiteral, text: " "}
)

// orEmpty normalizes a nil child to the Empty node.
func orEmpty(d *Doc) *Doc {
	if d == nil {
		return emptyDoc
	}

	return d
}

// Empty returns the document that renders nothing.
func Empty() *Doc { return emptyDoc }

// Break returns a mandatory line break.  When a surrounding Group or
// Bracket collapses to one line, the break renders as a separator instead
// (a single space by default; see GroupWith).
func Break() *Doc { return breakDoc }

// Literal returns an opaque run of characters.  Its column cost is len(s):
// raw byte length, not display width.
func Literal(s string) *Doc {
	return &Doc{kind: kindLiteral, text: s}
}

// Indent renders x with amount added to the ambient indentation used by
// every Break inside it.  Negative amounts are accepted; a negative
// resulting indent is clamped to zero at render time.
func Indent(amount int, x *Doc) *Doc {
	return &Doc{kind: kindIndent, amount: amount, left: orEmpty(x)}
}

// Concat composes x and y sequentially: the column position at the end of
// x flows into the start of y.
func Concat(x, y *Doc) *Doc {
	return &Doc{kind: kindConcat, left: orEmpty(x), right: orEmpty(y)}
}

// SpaceJoin is Concat with a single space between x and y.
func SpaceJoin(x, y *Doc) *Doc {
	return Concat(x, Concat(spaceDoc, y))
}

// BreakJoin is Concat with a mandatory line break between x and y.
func BreakJoin(x, y *Doc) *Doc {
	return Concat(x, Concat(breakDoc, y))
}

// choice marks x and y as alternative renderings of the same content, x
// taking precedence over y.  Contract: x and y must flatten to identical
// text; the resolver never verifies this (CheckChoices can, on demand).
// Only the combinators create choice nodes, which keeps the contract
// inside the package.
func choice(x, y *Doc) *Doc {
	return &Doc{kind: kindChoice, left: orEmpty(x), right: orEmpty(y)}
}
