package jsoncodec

import (
	"encoding/json"
	"fmt"
)

// Serialize renders v as its default JSON textual form (no indent,
// struct-declaration key order). Errors only on values encoding/json
// itself rejects (channels, cycles, unsupported float values).
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("Serialize: %w", err)
	}

	return string(data), nil
}

// Deserialize parses text as JSON into a T and returns it by value,
// reattaching T's method set to the plain parsed data. On malformed
// input it returns the zero T and an error wrapping ErrParse.
func Deserialize[T any](text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return out, fmt.Errorf("Deserialize: %w: %s", ErrParse, err)
	}

	return out, nil
}
