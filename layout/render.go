package layout

import "strings"

// Resolve chooses the best concrete layout of x for the given width, with
// column columns already consumed on the current line, and returns it as a
// lazy token chain.  Resolve is pure: it never modifies the tree, and the
// same tree may be resolved concurrently at different widths.
//
// Most callers want Pretty; Resolve is the streaming entry point — walk
// the chain with Next and emit tokens as they are decided.
func Resolve(x Formattable, width, column int) *Resolved {
	if x == nil {
		return endToken
	}

	return best(width, column, (*workList)(nil).push(0, orEmpty(x.Layout())))
}

// Pretty renders x as text fitting width columns wherever a choice allows.
// It is a pure function of its two inputs: resolving the same (tree,
// width) pair always produces byte-identical output.
func Pretty(x Formattable, width int) string {
	return Resolve(x, width, 0).String()
}

// String renders the chain to text: text tokens are emitted as-is, and
// each break token emits a newline followed by its indent in spaces.  A
// negative indent is clamped to zero rather than treated as an error.
func (r *Resolved) String() string {
	var sb strings.Builder
	for ; r != nil; r = r.Next() {
		switch r.kind {
		case TokenText:
			sb.WriteString(r.text)
		case TokenBreak:
			sb.WriteByte('\n')
			if r.indent > 0 {
				sb.WriteString(strings.Repeat(" ", r.indent))
			}
		}
	}

	return sb.String()
}
