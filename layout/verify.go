package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrChoiceMismatch indicates a choice node whose two alternatives flatten
// to different text, breaking the construction contract behind Group,
// Bracket and Fill.
var ErrChoiceMismatch = errors.New("layout: choice alternatives flatten to different text")

// CheckChoices audits every choice node in x against the flatten
// equivalence contract: both alternatives of a choice must collapse to the
// same single-line text.  It is an opt-in debugging aid — Resolve and
// Pretty never perform this check, and a tree that fails it still resolves
// without error (its compact and expanded renderings simply diverge).
//
// The audit flattens with the default single-space separator, so trees
// built with GroupWith and a separator other than " " trade this
// equivalence deliberately and will be reported.
//
// Returns nil, or an error wrapping ErrChoiceMismatch naming the first
// offending pair of texts.
func CheckChoices(x Formattable) error {
	if x == nil {
		return nil
	}

	return checkChoices(orEmpty(x.Layout()))
}

// checkChoices walks the tree depth-first, auditing choice nodes as it
// descends into both alternatives.
func checkChoices(d *Doc) error {
	switch d.kind {
	case kindIndent:
		return checkChoices(d.left)

	case kindConcat:
		if err := checkChoices(d.left); err != nil {
			return err
		}

		return checkChoices(d.right)

	case kindChoice:
		primary, secondary := flatText(d.left), flatText(d.right)
		if primary != secondary {
			return fmt.Errorf("%w: %q vs %q", ErrChoiceMismatch, primary, secondary)
		}

		if err := checkChoices(d.left); err != nil {
			return err
		}

		return checkChoices(d.right)

	default: // kindEmpty, kindBreak, kindLiteral
		return nil
	}
}

// flatText renders the single-line form of d as plain text.  A flattened
// tree contains only Empty, Literal and Concat nodes, so a direct fold is
// enough; no resolution is involved.
func flatText(d *Doc) string {
	var sb strings.Builder
	appendFlat(&sb, flatten(d))

	return sb.String()
}

func appendFlat(sb *strings.Builder, d *Doc) {
	switch d.kind {
	case kindLiteral:
		sb.WriteString(d.text)
	case kindConcat:
		appendFlat(sb, d.left)
		appendFlat(sb, d.right)
	}
}
