package layout

// Combinators — the derived builders every structured formatter is made of.
//
// Description:
//
//	Group and GroupWith offer the resolver a decision point: the fully
//	compact rendering of a subtree, or the subtree as given.  Bracket is
//	the canonical delimited-body pattern built on Group.  Fold, Spread and
//	Stack reduce lists; Fill packs a list greedily, one line-break decision
//	per adjacent pair.
//
// Complexity:
//
//	Group/GroupWith/Bracket — O(n) in the subtree size (one flatten pass).
//	Fold/Spread/Stack       — O(len(xs)) node constructions.
//	Fill                    — O(len(xs)²) node constructions (each step
//	                          re-flattens its one-item lookahead), linear
//	                          choice points for the resolver.

// Group offers a choice between the fully compact, single-line rendering
// of x and x as given.  The resolver takes the compact form whenever it
// fits in the remaining width.
func Group(x *Doc) *Doc {
	x = orEmpty(x)

	return choice(flatten(x), x)
}

// GroupWith is Group with sep substituted for every Break in the compact
// form, instead of the default single space.
func GroupWith(sep string, x *Doc) *Doc {
	x = orEmpty(x)

	return choice(flattenWith(sep, x), x)
}

// Bracket delimits x between left and right, with the body indented by
// amount.  Compact form: "left flat(x) right" on one line.  Expanded form:
// left, a fresh line with the body indented, a fresh line with right.
func Bracket(amount int, left string, x *Doc, right string) *Doc {
	return Group(Concat(
		Literal(left),
		Concat(
			Indent(amount, Concat(Break(), orEmpty(x))),
			Concat(Break(), Literal(right)),
		),
	))
}

// Fold left-reduces xs with op.  An empty (or nil) slice yields Empty.
func Fold[T Formattable](xs []T, op func(l, r *Doc) *Doc) *Doc {
	if len(xs) == 0 {
		return Empty()
	}

	acc := orEmpty(xs[0].Layout())
	for _, x := range xs[1:] {
		acc = op(acc, orEmpty(x.Layout()))
	}

	return acc
}

// Spread joins xs with single spaces.
func Spread[T Formattable](xs []T) *Doc {
	return Fold(xs, SpaceJoin)
}

// Stack joins xs with mandatory line breaks at the current indent.  A
// stack never collapses, regardless of width.
func Stack[T Formattable](xs []T) *Doc {
	return Fold(xs, BreakJoin)
}

// Fill packs xs onto as few lines as possible, greedily: before each item
// it chooses between staying on the current line (looking one item ahead
// in flattened form) and breaking onto a fresh line.  Earlier placements
// are never revisited, so the packing is linear but not globally optimal.
func Fill[T Formattable](xs []T) *Doc {
	ds := make([]*Doc, len(xs))
	for i, x := range xs {
		ds[i] = orEmpty(x.Layout())
	}

	return fill(ds)
}

// fill builds one choice node per adjacent pair:
//
//	fill(x, y, rest…) = choice(
//	    flat(x) ⎵ fill(flat(y), rest…),   // keep y on this line
//	    x ↵ fill(y, rest…),               // break before y
//	)
//
// where ⎵ is SpaceJoin and ↵ is BreakJoin.  Both branches flatten to the
// same text, so the choice contract holds by construction.
func fill(xs []*Doc) *Doc {
	switch len(xs) {
	case 0:
		return Empty()
	case 1:
		return xs[0]
	}

	x, y, rest := xs[0], xs[1], xs[2:]

	packed := make([]*Doc, 0, len(xs)-1)
	packed = append(packed, flatten(y))
	packed = append(packed, rest...)

	return choice(
		SpaceJoin(flatten(x), fill(packed)),
		BreakJoin(x, fill(xs[1:])),
	)
}
