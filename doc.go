// Package cssel is a small toolkit of immutable value utilities:
// a CSS selector builder with grammar-order enforcement, a rectangle
// value object, and generic JSON shape helpers.
//
// 🚀 What is cssel?
//
//	A tiny, allocation-honest library that brings together:
//		• Selector builder: element → id → class* → attr → :pseudo* → ::pseudo, enforced
//		• Combinators: descendant ' ', adjacent '+', sibling '~', child '>'
//		• Rectangle: a plain value object with call-time Area()
//		• JSON codec: Serialize / generic Deserialize[T] with a ParseError sentinel
//
// ✨ Why choose cssel?
//
//   - Immutable chains – every call returns a fresh value; branch any prefix freely
//   - Rock-solid errors – sentinel errors, errors.Is friendly, never panics
//   - Pure Go – no cgo, no I/O, no hidden deps
//   - Concurrency-safe – the empty entry point is shared starting data, not state
//
// Under the hood, everything is organized under three subpackages:
//
//	selector/  — the Selector value, six fragment factories, Combine & rendering
//	rectangle/ — Rectangle value object (width × height)
//	jsoncodec/ — Serialize / Deserialize[T] pass-throughs over encoding/json
//
// Quick example:
//
//	sel, _ := selector.Element("a").Attr(`href$=".png"`)
//	sel, _ = sel.PseudoClass("focus")
//	fmt.Println(sel) // a[href$=".png"]:focus
//
// Dive into each package's doc.go for the full contract, examples and
// the grammar-order state machine behind the builder.
//
//	go get github.com/katalvlaran/cssel
package cssel
