package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/google/uuid"

	"github.com/pkaminski/samplescope/pkg/models"
	"github.com/pkaminski/samplescope/pkg/signal"
)

const defaultAuditionSeconds = 2.0

// RenderAudio renders the configured signal as a 16-bit stereo WAV, uploads
// it to the artifact store and returns a pre-signed download URL. The voltage
// is normalized by the display ceiling so the preview never clips.
func (s *renderService) RenderAudio(ctx context.Context, params models.RenderParameters, durationSeconds float64) (*models.RenderAudioResponseBody, error) {
	shape, err := signal.ParseShape(params.Shape)
	if err != nil {
		return nil, err
	}

	sig := params.Signal()
	sig.Shape = shape

	if durationSeconds <= 0 {
		durationSeconds = defaultAuditionSeconds
	}

	sr := beep.SampleRate(s.display.AuditionSampleRate)
	numSamples := int(durationSeconds * float64(sr))

	streamer := &waveStreamer{
		sig:   sig,
		scale: s.display.VoltageCeiling,
		rate:  float64(sr),
	}

	// wav.Encode needs an io.WriteSeeker to finalize the header, so the
	// artifact goes through a temp file before the upload.
	tempFile := filepath.Join(os.TempDir(), fmt.Sprintf("audition-%s.wav", uuid.New()))
	f, err := os.Create(tempFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile) // Always cleanup

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(numSamples, streamer), format); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to encode wav: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(tempFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered wav: %w", err)
	}

	renderID := uuid.New().String()
	key := fmt.Sprintf("renders/%s.wav", renderID)

	if err := s.store.UploadArtifact(ctx, key, "audio/wav", data); err != nil {
		return nil, fmt.Errorf("failed to store rendered wav: %w", err)
	}

	downloadURL, err := s.store.GenerateDownloadURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to presign download: %w", err)
	}

	return &models.RenderAudioResponseBody{
		ID:          renderID,
		DownloadURL: downloadURL,
		ExpiresIn:   int((24 * time.Hour).Seconds()),
	}, nil
}

// waveStreamer adapts the waveform core to beep's pull model: each sample
// advances the phase by one sampling period.
type waveStreamer struct {
	sig   signal.SignalParameters
	scale float64
	rate  float64
	pos   int
	err   error
}

func (w *waveStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if w.err != nil {
		return 0, false
	}
	for i := range samples {
		t := float64(w.pos) / w.rate
		v, err := w.sig.Value(t)
		if err != nil {
			w.err = err
			return i, i > 0
		}
		v /= w.scale
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		samples[i][0] = v
		samples[i][1] = v
		w.pos++
	}
	return len(samples), true
}

func (w *waveStreamer) Err() error {
	return w.err
}
