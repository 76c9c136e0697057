package layout

// flattenWith rewrites d into its single-line form:
//
//	Break          → Literal(sep)
//	Indent(_, x)   → flattenWith(sep, x)   (indentation is meaningless on one line)
//	Concat(x, y)   → Concat(flattened x, flattened y)
//	Choice(p, _)   → flattenWith(sep, p)   (by contract, the secondary flattens identically)
//
// Empty and Literal nodes are returned as-is; sharing them is safe because
// Docs are immutable.  The input tree is never modified.
func flattenWith(sep string, d *Doc) *Doc {
	switch d.kind {
	case kindBreak:
		return &Doc{kind: kindLiteral, text: sep}
	case kindIndent:
		return flattenWith(sep, d.left)
	case kindConcat:
		return &Doc{
			kind:  kindConcat,
			left:  flattenWith(sep, d.left),
			right: flattenWith(sep, d.right),
		}
	case kindChoice:
		return flattenWith(sep, d.left)
	default: // kindEmpty, kindLiteral
		return d
	}
}

// flatten is flattenWith with the default single-space separator.
func flatten(d *Doc) *Doc {
	return flattenWith(" ", d)
}
