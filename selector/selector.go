// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// selector.go - fragment factories and rendering for the Selector value.
//
// Design contract (strict):
//   - Six factories in grammar order: Element, ID, Class, Attr,
//     PseudoClass, PseudoElement. Each is a pure function of
//     (receiver, argument) -> new Selector; the receiver is never mutated.
//   - A failed factory call produces NO new Selector: the zero value is
//     returned with an error and the receiver stays valid and reusable.
//   - Package-level functions of the same six names start a chain from
//     the empty entry point; on the empty selector no ordering check can
//     fire, so they return the new Selector directly.
//   - Rendering (String) never fails and allocates one output buffer.
//
// AI-Hints (practical):
//   - Branch any intermediate Selector freely: `base := Element("ul")`
//     then derive several chains from base; copies never alias.
//   - Branch failures with errors.Is(err, ErrOrderViolation); the two
//     wrapped texts (duplicate / out-of-order) are context, not contract.

package selector

import "strings"

// =============================================================================
// Chain starters (package-level factories over the empty entry point)
// =============================================================================
//
// The empty Selector has stage stageNone, so no duplicate or ordering
// check can fail on the first fragment; the error path is unreachable
// and these return the Selector alone.

// Element starts a chain with an element fragment, e.g. Element("div").
func Element(name string) Selector {
	s, _ := Selector{}.Element(name)

	return s
}

// ID starts a chain with an id fragment, e.g. ID("main") → "#main".
func ID(value string) Selector {
	s, _ := Selector{}.ID(value)

	return s
}

// Class starts a chain with a class fragment, e.g. Class("row") → ".row".
func Class(name string) Selector {
	s, _ := Selector{}.Class(name)

	return s
}

// Attr starts a chain with an attribute fragment,
// e.g. Attr(`href$=".png"`) → `[href$=".png"]`.
func Attr(value string) Selector {
	s, _ := Selector{}.Attr(value)

	return s
}

// PseudoClass starts a chain with a pseudo-class fragment,
// e.g. PseudoClass("focus") → ":focus".
func PseudoClass(name string) Selector {
	s, _ := Selector{}.PseudoClass(name)

	return s
}

// PseudoElement starts a chain with a pseudo-element fragment,
// e.g. PseudoElement("before") → "::before".
func PseudoElement(name string) Selector {
	s, _ := Selector{}.PseudoElement(name)

	return s
}

// =============================================================================
// Fragment factories (methods)
// =============================================================================

// Element returns a copy of s carrying the element fragment.
//
// Errors:
//   - ErrOrderViolation (duplicate) if an element fragment is already set.
//   - ErrOrderViolation (out-of-order) if any later-kind fragment exists.
//
// Complexity: O(1) value copy.
func (s Selector) Element(name string) (Selector, error) {
	// Duplicate wins over out-of-order when both apply: the duplicate
	// text is the more precise diagnosis for a second Element call.
	if s.element != "" {
		return Selector{}, errDuplicate(MethodElement, stageElement)
	}
	if s.stage > stageElement {
		return Selector{}, errOutOfOrder(MethodElement, stageElement, s.stage)
	}

	next := s
	next.element = name
	next.stage = stageElement

	return next, nil
}

// ID returns a copy of s carrying the id fragment (rendered "#id").
//
// Errors:
//   - ErrOrderViolation (duplicate) if an id fragment is already set.
//   - ErrOrderViolation (out-of-order) if class/attribute/pseudo-class/
//     pseudo-element is already set.
//
// Complexity: O(1) value copy.
func (s Selector) ID(value string) (Selector, error) {
	if s.id != "" {
		return Selector{}, errDuplicate(MethodID, stageID)
	}
	if s.stage > stageID {
		return Selector{}, errOutOfOrder(MethodID, stageID, s.stage)
	}

	next := s
	next.id = value
	next.stage = stageID

	return next, nil
}

// Class returns a copy of s with one more class fragment appended.
// Classes repeat: each call appends in insertion order.
//
// Errors:
//   - ErrOrderViolation (out-of-order) if attribute/pseudo-class/
//     pseudo-element is already set.
//
// Complexity: O(len(classes)) for the defensive slice copy.
func (s Selector) Class(name string) (Selector, error) {
	if s.stage > stageClass {
		return Selector{}, errOutOfOrder(MethodClass, stageClass, s.stage)
	}

	next := s
	next.classes = appendFragment(s.classes, name)
	next.stage = stageClass

	return next, nil
}

// Attr returns a copy of s carrying the attribute fragment (rendered
// "[attr]"). Only a single attribute fragment is supported: a second
// call overwrites the previous value rather than appending.
//
// Errors:
//   - ErrOrderViolation (out-of-order) if pseudo-class/pseudo-element
//     is already set.
//
// Complexity: O(1) value copy.
func (s Selector) Attr(value string) (Selector, error) {
	if s.stage > stageAttr {
		return Selector{}, errOutOfOrder(MethodAttr, stageAttr, s.stage)
	}

	next := s
	next.attr = value
	next.stage = stageAttr

	return next, nil
}

// PseudoClass returns a copy of s with one more pseudo-class fragment
// appended (each rendered ":name", insertion order preserved).
//
// Errors:
//   - ErrOrderViolation (out-of-order) if a pseudo-element is already set.
//
// Complexity: O(len(pseudoClasses)) for the defensive slice copy.
func (s Selector) PseudoClass(name string) (Selector, error) {
	if s.stage > stagePseudoClass {
		return Selector{}, errOutOfOrder(MethodPseudoClass, stagePseudoClass, s.stage)
	}

	next := s
	next.pseudoClasses = appendFragment(s.pseudoClasses, name)
	next.stage = stagePseudoClass

	return next, nil
}

// PseudoElement returns a copy of s carrying the pseudo-element
// fragment (rendered "::name"). The pseudo-element is last in the
// grammar, so no out-of-order check applies; only duplication fails.
//
// Errors:
//   - ErrOrderViolation (duplicate) if a pseudo-element is already set.
//
// Complexity: O(1) value copy.
func (s Selector) PseudoElement(name string) (Selector, error) {
	if s.pseudoElement != "" {
		return Selector{}, errDuplicate(MethodPseudoElement, stagePseudoElement)
	}

	next := s
	next.pseudoElement = name
	next.stage = stagePseudoElement

	return next, nil
}

// =============================================================================
// Rendering
// =============================================================================

// String renders the accumulated fragments in grammar order:
//
//	element + "#id" + ".class"* + "[attr]" + ":pseudoClass"* + "::pseudoElement"
//
// Categories concatenate with no separator beyond each fragment's own
// prefix token. The empty entry point renders to "". Never fails.
//
// Complexity: O(total fragment length); one strings.Builder allocation.
func (s Selector) String() string {
	var b strings.Builder

	b.WriteString(s.element)
	if s.id != "" {
		b.WriteString(idPrefix)
		b.WriteString(s.id)
	}
	for _, c := range s.classes {
		b.WriteString(classPrefix)
		b.WriteString(c)
	}
	if s.attr != "" {
		b.WriteString(attrOpen)
		b.WriteString(s.attr)
		b.WriteString(attrClose)
	}
	for _, p := range s.pseudoClasses {
		b.WriteString(pseudoClassPrefix)
		b.WriteString(p)
	}
	if s.pseudoElement != "" {
		b.WriteString(pseudoElementPrefix)
		b.WriteString(s.pseudoElement)
	}

	return b.String()
}

// appendFragment appends x to xs into freshly allocated backing storage,
// so a Selector sharing xs with a branched sibling never observes the
// write. Exact-capacity allocation keeps a later append from aliasing.
func appendFragment(xs []string, x string) []string {
	out := make([]string, len(xs), len(xs)+1)
	copy(out, xs)

	return append(out, x)
}
