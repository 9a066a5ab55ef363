package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, got)

	assert.Equal(t, []float64{3}, Linspace(3, 9, 1))
	assert.Nil(t, Linspace(0, 1, 0))

	// Endpoint is pinned even when the step does not divide evenly.
	grid := Linspace(0, 0.1, 10000)
	require.Len(t, grid, 10000)
	assert.Equal(t, 0.0, grid[0])
	assert.Equal(t, 0.1, grid[9999])
}

func TestDenseSeries(t *testing.T) {
	p := SignalParameters{Shape: ShapeSine, Frequency: 120, Amplitude: 5}

	series, err := DenseSeries(p, 0.1, 10000)
	require.NoError(t, err)
	require.Len(t, series, 10000)

	assert.Equal(t, 0.0, series[0].Time)
	assert.Equal(t, 0.1, series[len(series)-1].Time)

	for i := 1; i < len(series); i++ {
		assert.Greater(t, series[i].Time, series[i-1].Time, "times must be strictly increasing")
	}
}

func TestDenseSeriesRejectsBadWindow(t *testing.T) {
	p := SignalParameters{Shape: ShapeSine, Frequency: 120, Amplitude: 5}

	_, err := DenseSeries(p, 0, 10000)
	assert.Error(t, err)

	_, err = DenseSeries(p, 0.1, 1)
	assert.Error(t, err)
}

func TestSampledSeriesPointCount(t *testing.T) {
	p := SignalParameters{Shape: ShapeSine, Frequency: 40, Amplitude: 1}

	// floor(0.1 * 100) + 1 = 11 samples over the display window.
	series, err := SampledSeries(p, 100, 0.1)
	require.NoError(t, err)
	assert.Len(t, series, 11)

	// A rate that does not divide the window still gets floor(w*fs)+1 points.
	series, err = SampledSeries(p, 97, 0.1)
	require.NoError(t, err)
	assert.Len(t, series, 10)
}

func TestSampledSeriesMatchesWaveform(t *testing.T) {
	p := SignalParameters{Shape: ShapeTriangle, Frequency: 40, Amplitude: 2, DCOffset: 1}

	series, err := SampledSeries(p, 100, 0.1)
	require.NoError(t, err)

	for _, pt := range series {
		want, err := p.Value(pt.Time)
		require.NoError(t, err)
		assert.Equal(t, want, pt.Voltage)
	}
}

func TestSampledSeriesInvalidRate(t *testing.T) {
	p := SignalParameters{Shape: ShapeSine, Frequency: 40, Amplitude: 1}

	_, err := SampledSeries(p, 0, 0.1)
	assert.ErrorIs(t, err, ErrInvalidSamplingRate)

	_, err = SampledSeries(p, -10, 0.1)
	assert.ErrorIs(t, err, ErrInvalidSamplingRate)
}

func TestSeriesColumns(t *testing.T) {
	ts := TimeSeries{{Time: 0, Voltage: 1}, {Time: 0.5, Voltage: -1}}
	assert.Equal(t, []float64{0, 0.5}, ts.Times())
	assert.Equal(t, []float64{1, -1}, ts.Voltages())
}
