package selector_test

import (
	"testing"

	"github.com/katalvlaran/cssel/selector"
)

// buildFull assembles a selector using every fragment kind; failures
// abort the benchmark since the chain is statically valid.
func buildFull(b *testing.B) selector.Selector {
	b.Helper()

	sel, err := selector.Element("input").ID("login")
	if err == nil {
		sel, err = sel.Class("form-control")
	}
	if err == nil {
		sel, err = sel.Attr("type=password")
	}
	if err == nil {
		sel, err = sel.PseudoClass("focus")
	}
	if err == nil {
		sel, err = sel.PseudoElement("placeholder")
	}
	if err != nil {
		b.Fatalf("chain failed: %v", err)
	}

	return sel
}

// BenchmarkSelector_Chain measures the per-call cost of a full
// six-fragment chain (five value copies, two slice reallocations).
func BenchmarkSelector_Chain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = buildFull(b)
	}
}

// BenchmarkSelector_String measures rendering of a fully populated
// selector.
func BenchmarkSelector_String(b *testing.B) {
	sel := buildFull(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sel.String()
	}
}

// BenchmarkCombine_Nested measures left-deep combination of eight
// operands (recursion depth proportional to nesting, per contract).
func BenchmarkCombine_Nested(b *testing.B) {
	operand := selector.Element("li")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc := operand
		for d := 0; d < 7; d++ {
			acc = selector.Combine(acc, selector.Child, operand)
		}
		_ = acc.String()
	}
}
