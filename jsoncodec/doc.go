// Package jsoncodec provides thin generic helpers over encoding/json:
// Serialize renders any plain value to its default JSON text, and
// Deserialize parses JSON text back into a typed value.
//
// Deserialize's type parameter plays the role of a prototype shape:
// the parsed data comes back as a T, so the full method set of T is
// reattached to plain parsed data (e.g. a rectangle regains Area()).
//
// Formatting follows encoding/json defaults: no indentation, object
// keys in struct declaration order. Malformed input fails with an
// error wrapping ErrParse; nothing else in this module produces or
// translates that sentinel.
//
// ⚙️ Usage:
//
//	text, _ := jsoncodec.Serialize(rectangle.New(10, 20))
//	// {"width":10,"height":20}
//
//	r, err := jsoncodec.Deserialize[rectangle.Rectangle](text)
//	if errors.Is(err, jsoncodec.ErrParse) { ... }
//	fmt.Println(r.Area()) // 200
package jsoncodec
