// This file declares the Doc node, its variant tags, the Formattable
// capability interface, and the resolved token chain produced by Resolve.
//
// Doc trees are immutable: builders never modify their arguments, and a
// finished tree may be shared freely, including across concurrent
// resolutions at different widths.
package layout

// kind tags the variant held by a Doc node.
type kind uint8

const (
	kindEmpty   kind = iota // renders nothing
	kindBreak               // mandatory line break; flattens to a separator
	kindLiteral             // opaque run of characters
	kindIndent              // child with an indentation delta
	kindConcat              // sequential composition
	kindChoice              // two alternative renderings of the same content
)

func (k kind) String() string {
	switch k {
	case kindEmpty:
		return "empty"
	case kindBreak:
		return "break"
	case kindLiteral:
		return "literal"
	case kindIndent:
		return "indent"
	case kindConcat:
		return "concat"
	case kindChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// Doc is one node of a layout description tree.
//
// A Doc describes every way a piece of content may be rendered; it carries
// no decision about which way.  Build trees with Empty, Break, Literal,
// Indent, Concat and the combinators (Group, Bracket, Fold, Spread, Stack,
// Fill), then hand them to Pretty or Resolve.
//
// The zero value is not meaningful; always use the builders.
type Doc struct {
	kind   kind
	text   string // Literal payload
	amount int    // Indent delta
	left   *Doc   // Indent child, Concat left, Choice primary
	right  *Doc   // Concat right, Choice secondary
}

// Formattable is the capability any domain type implements to be rendered:
// produce a layout description of yourself.
//
// Doc implements Formattable as the identity, so plain trees and domain
// values can be mixed in the list combinators.
type Formattable interface {
	// Layout returns the layout description of the receiver.
	Layout() *Doc
}

// Layout returns the document itself, making *Doc its own Formattable.
func (d *Doc) Layout() *Doc { return d }

// TokenKind tags one token of a resolved chain.
type TokenKind uint8

const (
	// TokenEnd terminates the chain; it carries no payload.
	TokenEnd TokenKind = iota

	// TokenText is a run of characters to emit as-is.
	TokenText

	// TokenBreak is a committed line break carrying the indent of the
	// line it opens.
	TokenBreak
)

func (k TokenKind) String() string {
	switch k {
	case TokenEnd:
		return "end"
	case TokenText:
		return "text"
	case TokenBreak:
		return "break"
	default:
		return "unknown"
	}
}

// Resolved is one token of the linear, choice-free chain produced by
// Resolve.  The chain is lazy: the tail is only resolved when Next is
// called, so a renderer may start emitting text before later parts of the
// document have been decided.
//
// A Resolved chain represents exactly one concrete layout.  It is built
// once per (tree, width) pair and is meant to be consumed once; it is not
// safe for concurrent use (the underlying tree is).
type Resolved struct {
	kind   TokenKind
	text   string // TokenText payload
	indent int    // TokenBreak indent
	next   func() *Resolved
	memo   *Resolved
}

// Kind reports which token the receiver is.
func (r *Resolved) Kind() TokenKind { return r.kind }

// Text returns the literal payload of a TokenText token ("" otherwise).
func (r *Resolved) Text() string { return r.text }

// Indent returns the indent of a TokenBreak token (0 otherwise).
// The value may be negative; renderers clamp it to zero.
func (r *Resolved) Indent() int { return r.indent }

// Next forces and returns the rest of the chain, or nil after TokenEnd.
// The tail is memoized, so repeated walks (the fits lookahead followed by
// the renderer) resolve each token at most once.
func (r *Resolved) Next() *Resolved {
	if r.kind == TokenEnd {
		return nil
	}
	if r.memo == nil {
		r.memo = r.next()
		r.next = nil
	}
	return r.memo
}
