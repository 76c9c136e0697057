package layout

// Resolver — turns a Doc tree into one concrete, choice-free token chain.
//
// Description:
//
//	The resolver consumes a work list of (ambient indent, node) pairs
//	front-to-back, threading the running column as an explicit parameter.
//	Concat, Indent and Empty decompose onto the list; Literal and Break
//	emit tokens whose continuations are lazy; a choice node forks the
//	remaining work and keeps whichever branch fits the current line.
//
// Algorithm Outline:
//  1. Pop the next (indent, node) pair; an empty list ends the chain.
//  2. Empty        → drop, continue.
//  3. Concat(x, y) → push y then x at the same indent (incremental
//     decomposition: large trees are processed node-by-node).
//  4. Indent(j, x) → push x at indent+j.
//  5. Literal(s)   → emit a text token; the continuation resumes at
//     column+len(s).
//  6. Break        → emit a break token; the continuation resumes at the
//     ambient indent.  The continuation is a thunk: later choices stay
//     undecided until a consumer demands the next token.
//  7. Choice(x, y) → resolve x and y against the same (structurally
//     shared, immutable) remaining work and keep better of the two.
//
// Complexity:
//
//	Each choice is decided by fits, a bounded lookahead over the current
//	line only, so total cost is amortized linear in the document size
//	along the explored path.  The work list bounds call depth for the
//	decomposition steps; only choice nodes recurse.

// workItem pairs a node with the ambient indent it will be resolved under.
// Threading the indent here, rather than storing it in the tree, lets the
// same subtree be revisited under different indents across choice forks.
type workItem struct {
	indent int
	doc    *Doc
}

// workList is a persistent, structurally shared stack of work items.
// Pushing allocates one cell and never mutates the tail, which is what
// makes forking at a choice node O(1): both branches simply retain the
// same remainder.
type workList struct {
	head workItem
	tail *workList
}

// push returns a new list with (indent, d) on top.  Safe on a nil receiver.
func (z *workList) push(indent int, d *Doc) *workList {
	return &workList{head: workItem{indent: indent, doc: d}, tail: z}
}

// endToken terminates every chain; TokenEnd never carries a continuation.
var endToken = &Resolved{kind: TokenEnd}

// best resolves the work list z into a token chain, where width is the
// target line width and column is the number of columns already consumed
// on the current line.
func best(width, column int, z *workList) *Resolved {
	for z != nil {
		indent, d := z.head.indent, z.head.doc
		z = z.tail

		switch d.kind {
		case kindEmpty:
			// nothing to emit

		case kindConcat:
			z = z.push(indent, d.right).push(indent, d.left)

		case kindIndent:
			z = z.push(indent+d.amount, d.left)

		case kindLiteral:
			rest, at := z, column+len(d.text)

			return &Resolved{
				kind: TokenText,
				text: d.text,
				next: func() *Resolved { return best(width, at, rest) },
			}

		case kindBreak:
			rest, at := z, indent

			return &Resolved{
				kind:   TokenBreak,
				indent: indent,
				next:   func() *Resolved { return best(width, at, rest) },
			}

		case kindChoice:
			// Both candidates see the same remainder; z is immutable, so
			// no copying is needed.  Producing a candidate is cheap: only
			// its first token exists until better forces a first line.
			primary := best(width, column, z.push(indent, d.left))
			secondary := best(width, column, z.push(indent, d.right))

			return better(width, column, primary, secondary)
		}
	}

	return endToken
}

// fits reports whether the first line of r needs at most remaining
// columns.  It never looks past the first break: a committed line break
// always terminates the current line successfully, and whatever follows is
// the next line's problem.
func fits(r *Resolved, remaining int) bool {
	for {
		if remaining < 0 {
			return false
		}

		switch r.kind {
		case TokenEnd, TokenBreak:
			return true
		case TokenText:
			remaining -= len(r.text)
			r = r.Next()
		}
	}
}

// better keeps x if its first line fits in the width remaining after
// column, and y otherwise.  Strictly first-fits-wins: once a branch is
// taken it is never revisited, even if a later sibling choice would have
// been happier with the other branch.
func better(width, column int, x, y *Resolved) *Resolved {
	if fits(x, width-column) {
		return x
	}

	return y
}
