package render

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkaminski/samplescope/internal/config"
	"github.com/pkaminski/samplescope/internal/storage"
	"github.com/pkaminski/samplescope/pkg/models"
	"github.com/pkaminski/samplescope/pkg/signal"
)

// binWidthRatio sizes the plotted spectrum bars relative to Nyquist. Like the
// alias tolerance it is cosmetic: bars narrower than 1 Hz become invisible.
const binWidthRatio = 0.02

// RenderService computes sampling scenes and audible previews from a set of
// render parameters.
type RenderService interface {
	RenderScene(ctx context.Context, params models.RenderParameters) (*models.RenderResponseBody, error)
	RenderAudio(ctx context.Context, params models.RenderParameters, durationSeconds float64) (*models.RenderAudioResponseBody, error)
}

type renderService struct {
	store   storage.ArtifactStore
	display config.DisplayConfig
}

// NewRenderService creates a render service backed by the given artifact store.
func NewRenderService(store storage.ArtifactStore, display config.DisplayConfig) RenderService {
	return &renderService{
		store:   store,
		display: display,
	}
}

// RenderScene synthesizes the dense analog curve, the discrete sample
// sequence and the idealized spectrum for one parameter set. The computation
// is stateless; every call starts from scratch.
func (s *renderService) RenderScene(ctx context.Context, params models.RenderParameters) (*models.RenderResponseBody, error) {
	shape, err := signal.ParseShape(params.Shape)
	if err != nil {
		return nil, err
	}

	sig := params.Signal()
	sig.Shape = shape

	window := params.WindowSeconds
	if window <= 0 {
		window = s.display.WindowSeconds
	}

	analog, err := signal.DenseSeries(sig, window, s.display.DensePoints)
	if err != nil {
		return nil, fmt.Errorf("failed to render analog series: %w", err)
	}

	samples, err := signal.SampledSeries(sig, params.SamplingFrequency, window)
	if err != nil {
		return nil, err
	}

	spectrum, err := s.buildSpectrum(sig, params.SamplingFrequency)
	if err != nil {
		return nil, err
	}

	return &models.RenderResponseBody{
		ID:        uuid.New().String(),
		Analog:    analog,
		Samples:   samples,
		Spectrum:  spectrum,
		CreatedAt: time.Now(),
	}, nil
}

// buildSpectrum folds the signal frequency into the first Nyquist band and
// dresses the result up as the two-bin DFT view the frontend plots: a DC bar
// at 0 Hz when an offset is present and an AC bar at the alias frequency when
// there is any AC amplitude.
func (s *renderService) buildSpectrum(sig signal.SignalParameters, samplingFreq float64) (models.Spectrum, error) {
	res, err := signal.ComputeAliasTolerance(sig.Frequency, samplingFreq, s.display.AliasToleranceHz)
	if err != nil {
		return models.Spectrum{}, err
	}

	binWidth := res.NyquistFrequency * binWidthRatio
	if binWidth < 1 {
		binWidth = 1
	}

	var bins []models.SpectrumBin
	if sig.DCOffset != 0 {
		bins = append(bins, models.SpectrumBin{
			Frequency: 0,
			Magnitude: sig.DCOffset,
			Kind:      "dc",
		})
	}
	if sig.Amplitude > 0 {
		bins = append(bins, models.SpectrumBin{
			Frequency: res.AliasFrequency,
			Magnitude: sig.Amplitude,
			Kind:      "ac",
		})
	}

	return models.Spectrum{
		NyquistFrequency: res.NyquistFrequency,
		AliasFrequency:   res.AliasFrequency,
		IsAliased:        res.IsAliased,
		BinWidth:         binWidth,
		Bins:             bins,
		Verdict:          verdict(sig, res),
	}, nil
}

// verdict is the human-readable sampling message shown next to the spectrum.
func verdict(sig signal.SignalParameters, res signal.SpectrumResult) string {
	if sig.Amplitude <= 0 {
		return ""
	}
	if res.IsAliased {
		return fmt.Sprintf("Aliasing! The %g Hz signal appears as a %.1f Hz bin.",
			sig.Frequency, res.AliasFrequency)
	}
	return fmt.Sprintf("Sampling OK. The %g Hz signal is represented correctly.", sig.Frequency)
}
