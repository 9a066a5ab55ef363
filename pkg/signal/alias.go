package signal

import "math"

// DefaultAliasTolerance is the absolute difference in Hz below which the
// alias frequency is considered identical to the signal frequency. It guards
// against reporting floating-point noise as aliasing; the value is a display
// choice, not a derived quantity.
const DefaultAliasTolerance = 0.01

// SamplingParameters describes the discrete sampling process.
type SamplingParameters struct {
	SamplingFrequency float64 `json:"sampling_frequency"`
}

// Nyquist returns half the sampling frequency.
func (p SamplingParameters) Nyquist() float64 {
	return p.SamplingFrequency / 2
}

// SpectrumResult locates the sampled signal's energy in the first Nyquist
// band under an idealized DFT view.
type SpectrumResult struct {
	NyquistFrequency float64 `json:"nyquist_frequency"`
	AliasFrequency   float64 `json:"alias_frequency"`
	IsAliased        bool    `json:"is_aliased"`
}

// ComputeAlias folds signalFreq into [0, samplingFreq/2] using
// DefaultAliasTolerance for the aliased verdict.
func ComputeAlias(signalFreq, samplingFreq float64) (SpectrumResult, error) {
	return ComputeAliasTolerance(signalFreq, samplingFreq, DefaultAliasTolerance)
}

// ComputeAliasTolerance computes where a sampled tone of signalFreq appears
// in the spectrum. Sampling at samplingFreq makes any frequency
// indistinguishable from its remainder modulo the rate, and remainders above
// Nyquist mirror back into the first band because real-valued sampling cannot
// tell a frequency from its reflection about Nyquist.
func ComputeAliasTolerance(signalFreq, samplingFreq, tolerance float64) (SpectrumResult, error) {
	if samplingFreq <= 0 {
		return SpectrumResult{}, ErrInvalidSamplingRate
	}

	nyquist := samplingFreq / 2
	// Unreachable for positive float rates, but the invariant is checked on
	// its own: a zero Nyquist means no bin can be placed at all.
	if nyquist == 0 {
		return SpectrumResult{}, ErrDegenerateSpectrum
	}

	folded := math.Mod(signalFreq, samplingFreq)
	if folded < 0 {
		folded += samplingFreq
	}
	if folded > nyquist {
		folded = samplingFreq - folded
	}

	return SpectrumResult{
		NyquistFrequency: nyquist,
		AliasFrequency:   folded,
		IsAliased:        math.Abs(folded-signalFreq) > tolerance,
	}, nil
}
