// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrOrderViolation) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Factories attach context using `%w` (duplicate vs. out-of-order text).
//   • The package MUST NOT panic at runtime; every misuse surfaces as an error.

package selector

import (
	"errors"
	"fmt"
)

// ErrOrderViolation indicates builder misuse: either a duplicate of a
// single-occurrence fragment (element, id, pseudo-element), or a
// fragment supplied after a later-grammar-order fragment was already
// set. Both violations share this one sentinel and differ only in the
// wrapped human-readable text; callers should treat them as a single
// failure class.
// Usage: if errors.Is(err, ErrOrderViolation) { /* fix the chain */ }.
var ErrOrderViolation = errors.New("selector: grammar order violation")

// errDuplicate reports a second occurrence of a single-occurrence
// fragment. The factory name prefixes the message for context.
func errDuplicate(method string, kind stage) error {
	return fmt.Errorf("%s: duplicate %s fragment: %w", method, kind, ErrOrderViolation)
}

// errOutOfOrder reports a fragment supplied after a later-grammar-order
// fragment is already present.
func errOutOfOrder(method string, kind, have stage) error {
	return fmt.Errorf("%s: %s fragment after %s: %w", method, kind, have, ErrOrderViolation)
}
