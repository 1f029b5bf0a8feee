package rectangle

// Rectangle is a width × height value holder. Fields are exported so
// JSON round-trips and direct mutation both work; Area always reads
// the current values.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// New returns a Rectangle with the given dimensions.
func New(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area computes width × height at call time; never cached.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
