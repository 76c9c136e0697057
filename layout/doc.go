// Package layout renders tree-shaped descriptions of "possible layouts"
// into column-bounded text, choosing greedily but deterministically between
// compact and expanded forms at every branch point.
//
// 🚀 What is layout?
//
//	A small algebra of six node shapes — Empty, Break, Literal, Indent,
//	Concat and an internal two-way choice — plus a resolver that walks a
//	tree lazily and commits to one branch of each choice so the result
//	fits a target width.  It is the engine behind any "collapse to one
//	line if it fits, otherwise expand with indentation" formatter:
//	  • AST and S-expression pretty-printers
//	  • Config / record dumpers
//	  • Code generators that must respect a line width
//
// ✨ Key features:
//   - immutable, persistent Doc trees — build once, resolve at any width
//   - Group/Bracket: one-line form when it fits, indented form when not
//   - Fill: greedy line-packing with one-item lookahead
//   - lazy token chain — a renderer can stream before resolution finishes
//   - pure functions only: no locks, no global state, no I/O
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlfmt/layout"
//
//	body := layout.Spread([]*layout.Doc{
//	  layout.Literal("a"),
//	  layout.Literal("b"),
//	})
//	doc := layout.Bracket(2, "[", body, "]")
//
//	layout.Pretty(doc, 80) // "[ a b ]"
//	layout.Pretty(doc, 5)  // "[\n  a b\n]"
//
// Domain types plug in through the Formattable interface: implement
// Layout() *Doc and call Pretty directly on your own values.
//
// Performance:
//
//   - Each choice is decided by a bounded, current-line-only lookahead, so
//     resolution is amortized linear in the size of the document along the
//     explored path.
//   - The choice policy is greedy and never backtracks: a branch that fits
//     wins immediately, even when a later sibling would have preferred the
//     other branch.  Callers depend on this exact behavior.
//
// See examples in example_test.go and the demo programs under examples/.
package layout
