// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// combine.go - joining two built selectors with a combinator token.

package selector

import "strings"

// Combine joins two selectors with a combinator into a single opaque
// Selector whose rendered form is
//
//	left.String() + " " + string(comb) + " " + right.String()
//
// The result stores the joined text in its element slot with every
// other fragment field empty, so a combined selector is itself a valid
// left or right operand for further combination (recursion depth is
// whatever the caller nests, nothing internal).
//
// The combinator value is not validated: the Descendant/Adjacent/
// Sibling/Child constants document the CSS vocabulary, but any token
// passes through verbatim.
//
// Complexity: O(len(left) + len(right)) rendering; O(1) otherwise.
func Combine(left Selector, comb Combinator, right Selector) Selector {
	var b strings.Builder

	b.WriteString(left.String())
	b.WriteString(combineSep)
	b.WriteString(string(comb))
	b.WriteString(combineSep)
	b.WriteString(right.String())

	return Selector{
		element: b.String(),
		stage:   stageElement,
	}
}
