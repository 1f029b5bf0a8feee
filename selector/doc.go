// Package selector builds CSS selector strings through an immutable,
// chainable value type that enforces the selector grammar order.
//
// 🚀 What is a selector chain?
//
//	A CSS selector is assembled from up to six fragment kinds, which
//	must appear in a fixed grammar order:
//	  element → #id → .class* → [attr] → :pseudo-class* → ::pseudo-element
//
//	Each factory call returns a brand-new Selector; nothing is ever
//	mutated, so any intermediate value can branch into several
//	divergent chains (e.g. many selectors sharing one prefix).
//
// ✨ Key guarantees:
//   - grammar order enforced: adding an earlier-kind fragment after a
//     later-kind one fails with ErrOrderViolation
//   - element, id and pseudo-element are single-occurrence; a second
//     class or pseudo-class appends, a second attr overwrites
//   - Combine joins two selectors with a combinator token (' ', '+',
//     '~', '>') into one opaque selector
//   - the zero Selector is the shared empty entry point: it renders to
//     "" and is safe to use concurrently from any number of chains
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cssel/selector"
//
//	sel, err := selector.Element("a").Attr(`href$=".png"`)
//	if err != nil { ... }
//	sel, err = sel.PseudoClass("focus")
//	fmt.Println(sel) // a[href$=".png"]:focus
//
//	left, _ := selector.Element("div").ID("main")
//	right, _ := selector.Element("table").ID("data")
//	fmt.Println(selector.Combine(left, selector.Adjacent, right))
//	// div#main + table#data
//
// Performance:
//
//   - every factory call: O(1) copy of a small value (class and
//     pseudo-class slices are reallocated on append)
//   - String: O(total fragment length)
//
// See example_test.go for runnable examples and selector_test.go for
// the full grammar-order contract.
package selector
