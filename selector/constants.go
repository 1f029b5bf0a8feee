// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// constants.go — fragment prefixes and canonical factory names shared
// across rendering and error construction.

package selector

//-----------------------------------------------------------------------------
// Factory Method Name Constants
//   used to prefix errors with the factory name for context.
//-----------------------------------------------------------------------------

const (
	// MethodElement is the canonical name for the Element factory.
	MethodElement = "Element"
	// MethodID is the canonical name for the ID factory.
	MethodID = "ID"
	// MethodClass is the canonical name for the Class factory.
	MethodClass = "Class"
	// MethodAttr is the canonical name for the Attr factory.
	MethodAttr = "Attr"
	// MethodPseudoClass is the canonical name for the PseudoClass factory.
	MethodPseudoClass = "PseudoClass"
	// MethodPseudoElement is the canonical name for the PseudoElement factory.
	MethodPseudoElement = "PseudoElement"
)

//-----------------------------------------------------------------------------
// Rendering Tokens
//   every fragment kind carries its own prefix; categories concatenate
//   with no additional separator.
//-----------------------------------------------------------------------------

const (
	// idPrefix introduces the id fragment: "#main".
	idPrefix = "#"
	// classPrefix introduces each class fragment: ".container".
	classPrefix = "."
	// attrOpen and attrClose wrap the attribute fragment: `[href$=".png"]`.
	attrOpen  = "["
	attrClose = "]"
	// pseudoClassPrefix introduces each pseudo-class fragment: ":focus".
	pseudoClassPrefix = ":"
	// pseudoElementPrefix introduces the pseudo-element fragment: "::before".
	pseudoElementPrefix = "::"
	// combineSep separates each operand from the combinator token:
	// left + " " + combinator + " " + right.
	combineSep = " "
)
