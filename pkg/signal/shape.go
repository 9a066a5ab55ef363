package signal

import "fmt"

// Shape identifies the waveform of the test signal.
type Shape string

const (
	ShapeSine     Shape = "sine"
	ShapeSquare   Shape = "square"
	ShapeTriangle Shape = "triangle"
	ShapeSawtooth Shape = "sawtooth"
)

// ParseShape validates a shape name coming from an external caller.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeSine, ShapeSquare, ShapeTriangle, ShapeSawtooth:
		return Shape(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidShape, s)
}

// Valid reports whether the shape is one of the four supported waveforms.
func (s Shape) Valid() bool {
	_, err := ParseShape(string(s))
	return err == nil
}
