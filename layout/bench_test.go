package layout_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlfmt/layout"
)

// benchmarkPretty builds the document with build, resets the timer to
// discard the construction cost, then resolves it at width b.N times.
func benchmarkPretty(b *testing.B, build func() *layout.Doc, width int) {
	doc := build()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = layout.Pretty(doc, width)
	}
}

// words builds n distinct short literals.
func words(n int) []*layout.Doc {
	ds := make([]*layout.Doc, n)
	for i := range ds {
		ds[i] = layout.Literal(fmt.Sprintf("w%03d", i))
	}

	return ds
}

// brackets nests n brackets around a single literal.
func brackets(n int) *layout.Doc {
	doc := layout.Literal("x")
	for i := 0; i < n; i++ {
		doc = layout.Bracket(2, "[", doc, "]")
	}

	return doc
}

// BenchmarkPretty_SpreadWide renders 1000 space-joined words on one long line.
func BenchmarkPretty_SpreadWide(b *testing.B) {
	benchmarkPretty(b, func() *layout.Doc { return layout.Spread(words(1000)) }, 1<<20)
}

// BenchmarkPretty_StackTall renders 1000 stacked words, one per line.
func BenchmarkPretty_StackTall(b *testing.B) {
	benchmarkPretty(b, func() *layout.Doc { return layout.Stack(words(1000)) }, 80)
}

// BenchmarkPretty_FillPacked packs 500 words into 40-column lines, one
// choice decision per adjacent pair.
func BenchmarkPretty_FillPacked(b *testing.B) {
	benchmarkPretty(b, func() *layout.Doc { return layout.Fill(words(500)) }, 40)
}

// BenchmarkPretty_BracketDeep nests 100 brackets and resolves at a width
// that forces every level to expand.
func BenchmarkPretty_BracketDeep(b *testing.B) {
	benchmarkPretty(b, func() *layout.Doc { return brackets(100) }, 10)
}

// BenchmarkPretty_BracketDeepFlat nests 100 brackets and resolves at a
// width generous enough that every level collapses.
func BenchmarkPretty_BracketDeepFlat(b *testing.B) {
	benchmarkPretty(b, func() *layout.Doc { return brackets(100) }, 1<<20)
}

// BenchmarkCheckChoices audits a fill of 200 words.
func BenchmarkCheckChoices(b *testing.B) {
	doc := layout.Fill(words(200))

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = layout.CheckChoices(doc)
	}
}
