// Package signal holds the sampling demo's computational core: closed-form
// waveform synthesis for four periodic shapes and the alias-frequency fold
// that places a sampled tone inside the first Nyquist band.
//
// Everything here is a pure function of its arguments. There is no shared
// state, so the package is safe to call from any number of goroutines.
package signal
