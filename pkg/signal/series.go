package signal

import "fmt"

// Point is one (time, voltage) measurement.
type Point struct {
	Time    float64 `json:"t" doc:"Time in seconds"`
	Voltage float64 `json:"v" doc:"Voltage in volts"`
}

// TimeSeries is an ordered run of points with strictly increasing times
// spanning the display window [0, window].
type TimeSeries []Point

// Times returns the time column of the series.
func (ts TimeSeries) Times() []float64 {
	out := make([]float64, len(ts))
	for i, p := range ts {
		out[i] = p.Time
	}
	return out
}

// Voltages returns the voltage column of the series.
func (ts TimeSeries) Voltages() []float64 {
	out := make([]float64, len(ts))
	for i, p := range ts {
		out[i] = p.Voltage
	}
	return out
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n must be at least 2 for the spacing to be defined; n==1 yields [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Pin the endpoint so accumulated rounding never overshoots the window.
	out[n-1] = stop
	return out
}

// DenseSeries approximates the continuous signal over [0, window] with n
// evenly spaced points.
func DenseSeries(p SignalParameters, window float64, n int) (TimeSeries, error) {
	if window <= 0 {
		return nil, fmt.Errorf("display window must be greater than 0, got %g", window)
	}
	if n < 2 {
		return nil, fmt.Errorf("dense series needs at least 2 points, got %d", n)
	}
	return evaluateSeries(p, Linspace(0, window, n))
}

// SampledSeries produces the discrete samples taken at samplingFreq over
// [0, window]: floor(window*samplingFreq)+1 points, one per sampling period,
// starting at t=0.
func SampledSeries(p SignalParameters, samplingFreq, window float64) (TimeSeries, error) {
	if samplingFreq <= 0 {
		return nil, ErrInvalidSamplingRate
	}
	if window <= 0 {
		return nil, fmt.Errorf("display window must be greater than 0, got %g", window)
	}
	n := int(window*samplingFreq) + 1
	return evaluateSeries(p, Linspace(0, window, n))
}

func evaluateSeries(p SignalParameters, times []float64) (TimeSeries, error) {
	voltages, err := p.Evaluate(times)
	if err != nil {
		return nil, err
	}
	series := make(TimeSeries, len(times))
	for i := range times {
		series[i] = Point{Time: times[i], Voltage: voltages[i]}
	}
	return series, nil
}
