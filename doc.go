// Package lvlfmt is your toolbox for turning tree-shaped data — ASTs,
// S-expressions, nested records — into neatly column-bounded text.
//
// 🚀 What is lvlfmt?
//
//	A small, pure library built around one idea: describe every way your
//	document could be laid out, then let the resolver pick, choice by
//	choice, the best rendering that fits a target width:
//		• Layout algebra: Empty, Break, Literal, Indent, Concat + choice
//		• Flattening: collapse any description to its one-line form
//		• Resolver: greedy, deterministic, streams tokens lazily
//		• Combinators: Group, Bracket, Fold, Spread, Stack, Fill
//
// ✨ Why choose lvlfmt?
//
//   - Beginner-friendly – a handful of builders, clear, intuitive naming
//   - Rock-solid guarantees – immutable trees, pure functions, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – implement Formattable on your own types and call Pretty
//
// Everything lives in one subpackage:
//
//	layout/ — the Doc algebra, flattening, the resolver and all combinators
//
// Quick example — the same document at two widths:
//
//	width 10:  [ a b ]
//
//	width 5:   [
//	             a b
//	           ]
//
// Bracket collapses onto one line when it fits and expands with an indented
// body when it does not; every structured formatter is a composition of that
// one decision.
//
// Dive into examples/ for S-expression, tree and C-subset pretty-printers,
// and layout/doc.go for the full algebra walkthrough.
//
//	go get github.com/katalvlaran/lvlfmt/layout
package lvlfmt
