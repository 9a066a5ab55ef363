package models

import (
	"time"

	"github.com/pkaminski/samplescope/pkg/signal"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// RenderParameters are the five scalar inputs of a render: the signal shape,
// its frequency, amplitude and DC offset, and the sampling rate. The numeric
// bounds mirror the frontend slider ranges.
type RenderParameters struct {
	Shape             string  `json:"shape" enum:"sine,square,triangle,sawtooth" required:"true" doc:"Waveform shape"`
	Frequency         float64 `json:"frequency" minimum:"1" maximum:"2000" required:"true" doc:"Signal frequency in Hz"`
	Amplitude         float64 `json:"amplitude" minimum:"0" maximum:"10" required:"true" doc:"AC amplitude in volts"`
	DCOffset          float64 `json:"dc_offset" minimum:"-5" maximum:"5" doc:"DC offset in volts"`
	SamplingFrequency float64 `json:"sampling_frequency" minimum:"1" maximum:"2000" required:"true" doc:"Sampling rate in Hz"`
	WindowSeconds     float64 `json:"window_seconds,omitempty" minimum:"0.001" maximum:"10" doc:"Display window override in seconds"`
}

// Signal converts the request parameters to the core value type.
func (p RenderParameters) Signal() signal.SignalParameters {
	return signal.SignalParameters{
		Shape:     signal.Shape(p.Shape),
		Frequency: p.Frequency,
		Amplitude: p.Amplitude,
		DCOffset:  p.DCOffset,
	}
}

// RenderRequest represents a request to render a sampling scene
type RenderRequest struct {
	Body RenderParameters
}

// SpectrumBin is one bar of the idealized DFT view.
type SpectrumBin struct {
	Frequency float64 `json:"frequency" doc:"Bin center frequency in Hz"`
	Magnitude float64 `json:"magnitude" doc:"Bin height in volts"`
	Kind      string  `json:"kind" enum:"dc,ac" doc:"Whether the bin is the DC component or the (possibly aliased) AC tone"`
}

// Spectrum is the idealized two-bin DFT view of the sampled signal.
type Spectrum struct {
	NyquistFrequency float64       `json:"nyquist_frequency" doc:"Half the sampling rate in Hz"`
	AliasFrequency   float64       `json:"alias_frequency" doc:"Where the AC energy appears, folded into [0, Nyquist]"`
	IsAliased        bool          `json:"is_aliased" doc:"True when the alias differs from the signal frequency"`
	BinWidth         float64       `json:"bin_width" doc:"Suggested bar width for plotting, in Hz"`
	Bins             []SpectrumBin `json:"bins" doc:"Visible spectrum bars; empty bins are omitted"`
	Verdict          string        `json:"verdict,omitempty" doc:"Human-readable sampling verdict"`
}

// RenderResponseBody is the body of the render response
type RenderResponseBody struct {
	ID        string            `json:"id" doc:"Render unique identifier"`
	Analog    signal.TimeSeries `json:"analog" doc:"Dense approximation of the continuous signal"`
	Samples   signal.TimeSeries `json:"samples" doc:"Discrete samples taken at the sampling rate"`
	Spectrum  Spectrum          `json:"spectrum" doc:"Idealized DFT spectrum view"`
	CreatedAt time.Time         `json:"created_at" doc:"Render timestamp"`
}

// RenderResponse represents a rendered sampling scene
type RenderResponse struct {
	Body RenderResponseBody
}

// RenderAudioRequest represents a request to render an audible WAV preview
type RenderAudioRequest struct {
	Body struct {
		RenderParameters
		DurationSeconds float64 `json:"duration_seconds,omitempty" minimum:"0.1" maximum:"10" doc:"Audition length in seconds, default 2"`
	}
}

// RenderAudioResponseBody is the body of the audio render response
type RenderAudioResponseBody struct {
	ID          string `json:"id" doc:"Render unique identifier"`
	DownloadURL string `json:"download_url" doc:"Pre-signed URL for the rendered WAV"`
	ExpiresIn   int    `json:"expires_in" doc:"URL expiration time in seconds"`
}

// RenderAudioResponse represents the rendered WAV artifact
type RenderAudioResponse struct {
	Body RenderAudioResponseBody
}
