package signal

import (
	"fmt"
	"math"
)

// SignalParameters describes the continuous test signal. Values are plain
// floats in engineering units: Frequency in Hz, Amplitude and DCOffset in
// volts. The struct is a value type; nothing mutates it after construction.
type SignalParameters struct {
	Shape     Shape   `json:"shape"`
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	DCOffset  float64 `json:"dc_offset"`
}

// Value returns the instantaneous voltage dc + amp*f(t) for the configured
// shape. The shapes are the exact closed-form waveforms, not band-limited
// Fourier truncations: square is sign(sin), triangle is asin(sin) rescaled,
// sawtooth is the floor-based ramp. An unrecognized shape is an error.
func (p SignalParameters) Value(t float64) (float64, error) {
	omega := 2 * math.Pi * p.Frequency

	var v float64
	switch p.Shape {
	case ShapeSine:
		v = math.Sin(omega * t)
	case ShapeSquare:
		v = sign(math.Sin(omega * t))
	case ShapeTriangle:
		v = (2 / math.Pi) * math.Asin(math.Sin(omega*t))
	case ShapeSawtooth:
		v = 2 * (t*p.Frequency - math.Floor(0.5+t*p.Frequency))
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidShape, p.Shape)
	}

	return p.DCOffset + p.Amplitude*v, nil
}

// Evaluate computes the voltage at every time value, one output per input in
// the same order. The shape is checked once up front so a bad enum fails
// before any work is done.
func (p SignalParameters) Evaluate(times []float64) ([]float64, error) {
	if !p.Shape.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShape, p.Shape)
	}

	voltages := make([]float64, len(times))
	for i, t := range times {
		v, err := p.Value(t)
		if err != nil {
			return nil, err
		}
		voltages[i] = v
	}
	return voltages, nil
}

// sign mirrors the numpy convention: sign(0) = 0.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
