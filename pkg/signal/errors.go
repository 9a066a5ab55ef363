package signal

import "errors"

var (
	// ErrInvalidShape is returned when a waveform shape is not one of the
	// supported values. An unknown shape is a caller bug, never a silent zero.
	ErrInvalidShape = errors.New("invalid signal shape")

	// ErrInvalidSamplingRate is returned when the sampling frequency is zero
	// or negative. There is no fallback rate; the caller must fix the input.
	ErrInvalidSamplingRate = errors.New("sampling frequency must be greater than 0")

	// ErrDegenerateSpectrum is returned when the Nyquist frequency computes
	// to exactly zero and no spectrum bin can be placed.
	ErrDegenerateSpectrum = errors.New("nyquist frequency is 0, spectrum is undefined")
)
