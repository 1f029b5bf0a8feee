// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// types.go — the Selector value, the grammar-stage ordinal, and the
// Combinator vocabulary.
//
// Design contract (strict):
//   - Selector is an immutable value: factories copy the receiver, never
//     mutate it. Slices are reallocated on append so shared prefixes can
//     branch without aliasing.
//   - The grammar order is modeled as an explicit ordinal state machine:
//     every Selector carries the highest stage populated so far, and each
//     factory asserts newStage ≥ highest (single-occurrence stages also
//     assert strict non-duplication).
//   - The zero Selector is the valid empty entry point (stage stageNone,
//     renders to "").

package selector

// stage is the ordinal position of a fragment kind in the CSS selector
// grammar. Factories compare stages to reject out-of-order fragments;
// the zero value stageNone marks the empty selector.
type stage uint8

const (
	// stageNone — no fragment populated yet (the empty entry point).
	stageNone stage = iota
	// stageElement — element name, e.g. "div".
	stageElement
	// stageID — id fragment, rendered as "#id".
	stageID
	// stageClass — class fragments, each rendered as ".class".
	stageClass
	// stageAttr — attribute fragment, rendered as "[attr]".
	stageAttr
	// stagePseudoClass — pseudo-class fragments, each rendered as ":name".
	stagePseudoClass
	// stagePseudoElement — pseudo-element fragment, rendered as "::name".
	stagePseudoElement
)

// String reports the human-readable fragment-kind name of a stage.
// Used only to compose ErrOrderViolation context messages.
func (st stage) String() string {
	switch st {
	case stageElement:
		return "element"
	case stageID:
		return "id"
	case stageClass:
		return "class"
	case stageAttr:
		return "attribute"
	case stagePseudoClass:
		return "pseudo-class"
	case stagePseudoElement:
		return "pseudo-element"
	default:
		return "none"
	}
}

// Combinator is the token joining two selectors in a compound selector.
//
// The four CSS combinators are provided as constants. The value is NOT
// validated by Combine: an unknown token is rendered verbatim between
// the two operands.
type Combinator string

const (
	// Descendant combinator: "div span".
	Descendant Combinator = " "
	// Adjacent sibling combinator: "div + span".
	Adjacent Combinator = "+"
	// Sibling (general sibling) combinator: "div ~ span".
	Sibling Combinator = "~"
	// Child combinator: "div > span".
	Child Combinator = ">"
)

// Selector is an immutable CSS selector under construction.
//
// The zero value is the shared empty entry point: calling any factory
// on it starts a fresh chain, and String() yields "". A Selector built
// by Combine stores the fully rendered compound text in its element
// slot and leaves every other fragment empty.
//
// Selector is a small value type; pass and store it by value.
type Selector struct {
	element       string   // element name, single-occurrence
	id            string   // id fragment, single-occurrence
	classes       []string // class fragments, insertion order
	attr          string   // attribute fragment, last write wins
	pseudoClasses []string // pseudo-class fragments, insertion order
	pseudoElement string   // pseudo-element fragment, single-occurrence

	// highest grammar stage populated so far; factories assert that a
	// new fragment's stage is ≥ this value.
	stage stage
}
