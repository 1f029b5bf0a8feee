// Package rectangle provides a plain rectangle value object.
//
// Rectangle carries a width and a height and computes its area on
// demand from the current field values — nothing is cached, so a
// caller that mutates the exported fields always observes a consistent
// Area(). There is no validation: negative or zero dimensions are the
// caller's business.
//
// ⚙️ Usage:
//
//	r := rectangle.New(10, 20)
//	fmt.Println(r.Area()) // 200
package rectangle
