package jsoncodec_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cssel/jsoncodec"
	"github.com/katalvlaran/cssel/rectangle"
)

// TestSerialize_DefaultFormatting verifies the pass-through contract:
// default encoding/json output, keys in struct declaration order, no
// pretty-printing.
func TestSerialize_DefaultFormatting(t *testing.T) {
	text, err := jsoncodec.Serialize(rectangle.New(10, 20))
	require.NoError(t, err)
	assert.Equal(t, `{"width":10,"height":20}`, text)
}

// TestSerialize_PlainValues covers a few non-struct shapes.
func TestSerialize_PlainValues(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string", "ok", `"ok"`},
		{"number", 42, "42"},
		{"slice", []int{1, 2, 3}, "[1,2,3]"},
		{"nil", nil, "null"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := jsoncodec.Serialize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestDeserialize_ReattachesBehavior parses plain JSON into a typed
// shape and verifies the shape's method set works on the parsed data —
// the prototype-reattachment contract.
func TestDeserialize_ReattachesBehavior(t *testing.T) {
	r, err := jsoncodec.Deserialize[rectangle.Rectangle](`{"width":10,"height":20}`)
	require.NoError(t, err)

	if diff := cmp.Diff(rectangle.New(10, 20), r); diff != "" {
		t.Errorf("parsed rectangle mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 200.0, r.Area(), "behavior must operate on parsed data")
}

// TestDeserialize_RoundTrip serializes a nested structure and parses
// it back, comparing structurally.
func TestDeserialize_RoundTrip(t *testing.T) {
	type page struct {
		Title string                `json:"title"`
		Boxes []rectangle.Rectangle `json:"boxes"`
	}
	in := page{Title: "layout", Boxes: []rectangle.Rectangle{rectangle.New(1, 2), rectangle.New(3, 4)}}

	text, err := jsoncodec.Serialize(in)
	require.NoError(t, err)

	out, err := jsoncodec.Deserialize[page](text)
	require.NoError(t, err)

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestDeserialize_MalformedInput verifies malformed text fails with
// ErrParse and yields the zero shape.
func TestDeserialize_MalformedInput(t *testing.T) {
	for _, text := range []string{"", "{", `{"width":}`, "not json"} {
		t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
			r, err := jsoncodec.Deserialize[rectangle.Rectangle](text)
			assert.ErrorIs(t, err, jsoncodec.ErrParse)
			assert.Zero(t, r, "failed parse must yield the zero shape")
		})
	}
}

// ExampleDeserialize shows behavior reattachment onto parsed data.
func ExampleDeserialize() {
	r, err := jsoncodec.Deserialize[rectangle.Rectangle](`{"width":10,"height":20}`)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(r.Area())
	// Output:
	// 200
}
