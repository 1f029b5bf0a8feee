package jsoncodec

import "errors"

// ErrParse indicates that Deserialize received text that is not valid
// JSON for the requested shape. The wrapping error carries the decoder
// detail; branch with errors.Is(err, ErrParse).
var ErrParse = errors.New("jsoncodec: malformed JSON input")
