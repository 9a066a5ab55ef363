package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pkaminski/samplescope/internal/config"
	"github.com/pkaminski/samplescope/pkg/models"
	"github.com/pkaminski/samplescope/pkg/signal"
)

func testDisplayConfig() config.DisplayConfig {
	return config.DisplayConfig{
		WindowSeconds:      0.1,
		DensePoints:        10000,
		VoltageCeiling:     15,
		AliasToleranceHz:   0.01,
		AuditionSampleRate: 44100,
	}
}

// MockArtifactStore implements storage.ArtifactStore for testing
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) UploadArtifact(ctx context.Context, key string, contentType string, data []byte) error {
	args := m.Called(ctx, key, contentType, data)
	return args.Error(0)
}

func (m *MockArtifactStore) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) DeleteArtifact(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestRenderSceneAliased(t *testing.T) {
	svc := NewRenderService(nil, testDisplayConfig())

	body, err := svc.RenderScene(context.Background(), models.RenderParameters{
		Shape:             "sine",
		Frequency:         120,
		Amplitude:         5,
		DCOffset:          0,
		SamplingFrequency: 100,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, body.ID)
	assert.Len(t, body.Analog, 10000)
	assert.Len(t, body.Samples, 11) // floor(0.1*100)+1

	assert.Equal(t, 50.0, body.Spectrum.NyquistFrequency)
	assert.Equal(t, 20.0, body.Spectrum.AliasFrequency)
	assert.True(t, body.Spectrum.IsAliased)
	assert.Contains(t, body.Spectrum.Verdict, "Aliasing")

	// Only the AC bin is visible with a zero DC offset.
	require.Len(t, body.Spectrum.Bins, 1)
	assert.Equal(t, "ac", body.Spectrum.Bins[0].Kind)
	assert.Equal(t, 20.0, body.Spectrum.Bins[0].Frequency)
	assert.Equal(t, 5.0, body.Spectrum.Bins[0].Magnitude)
}

func TestRenderSceneNotAliased(t *testing.T) {
	svc := NewRenderService(nil, testDisplayConfig())

	body, err := svc.RenderScene(context.Background(), models.RenderParameters{
		Shape:             "triangle",
		Frequency:         40,
		Amplitude:         2,
		DCOffset:          1.5,
		SamplingFrequency: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 40.0, body.Spectrum.AliasFrequency)
	assert.False(t, body.Spectrum.IsAliased)
	assert.Contains(t, body.Spectrum.Verdict, "Sampling OK")

	// DC bin first, then the AC bin.
	require.Len(t, body.Spectrum.Bins, 2)
	assert.Equal(t, "dc", body.Spectrum.Bins[0].Kind)
	assert.Equal(t, 0.0, body.Spectrum.Bins[0].Frequency)
	assert.Equal(t, 1.5, body.Spectrum.Bins[0].Magnitude)
	assert.Equal(t, "ac", body.Spectrum.Bins[1].Kind)
}

func TestRenderSceneSilentSignalHasNoVerdict(t *testing.T) {
	svc := NewRenderService(nil, testDisplayConfig())

	body, err := svc.RenderScene(context.Background(), models.RenderParameters{
		Shape:             "sine",
		Frequency:         120,
		Amplitude:         0,
		DCOffset:          2,
		SamplingFrequency: 100,
	})
	require.NoError(t, err)

	assert.Empty(t, body.Spectrum.Verdict)
	require.Len(t, body.Spectrum.Bins, 1)
	assert.Equal(t, "dc", body.Spectrum.Bins[0].Kind)
}

func TestRenderSceneBinWidthFloor(t *testing.T) {
	svc := NewRenderService(nil, testDisplayConfig())

	// Nyquist 5 Hz: 2% of it is 0.1 Hz, clamped up to the 1 Hz minimum.
	body, err := svc.RenderScene(context.Background(), models.RenderParameters{
		Shape:             "sine",
		Frequency:         3,
		Amplitude:         1,
		SamplingFrequency: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, body.Spectrum.BinWidth)

	// Nyquist 1000 Hz: the 2% rule wins.
	body, err = svc.RenderScene(context.Background(), models.RenderParameters{
		Shape:             "sine",
		Frequency:         3,
		Amplitude:         1,
		SamplingFrequency: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, body.Spectrum.BinWidth)
}

func TestRenderSceneWindowOverride(t *testing.T) {
	svc := NewRenderService(nil, testDisplayConfig())

	body, err := svc.RenderScene(context.Background(), models.RenderParameters{
		Shape:             "sine",
		Frequency:         40,
		Amplitude:         1,
		SamplingFrequency: 100,
		WindowSeconds:     0.05,
	})
	require.NoError(t, err)
	assert.Len(t, body.Samples, 6)
	assert.Equal(t, 0.05, body.Samples[len(body.Samples)-1].Time)
}

func TestRenderSceneInvalidShape(t *testing.T) {
	svc := NewRenderService(nil, testDisplayConfig())

	_, err := svc.RenderScene(context.Background(), models.RenderParameters{
		Shape:             "noise",
		Frequency:         40,
		Amplitude:         1,
		SamplingFrequency: 100,
	})
	assert.ErrorIs(t, err, signal.ErrInvalidShape)
}

func TestRenderSceneInvalidSamplingRate(t *testing.T) {
	svc := NewRenderService(nil, testDisplayConfig())

	for _, fs := range []float64{0, -5} {
		_, err := svc.RenderScene(context.Background(), models.RenderParameters{
			Shape:             "sine",
			Frequency:         40,
			Amplitude:         1,
			SamplingFrequency: fs,
		})
		assert.ErrorIs(t, err, signal.ErrInvalidSamplingRate, "fs=%g", fs)
	}
}

func TestRenderAudioUploadsWAV(t *testing.T) {
	mockStore := &MockArtifactStore{}
	svc := NewRenderService(mockStore, testDisplayConfig())

	var uploaded []byte
	mockStore.On("UploadArtifact", mock.Anything, mock.AnythingOfType("string"), "audio/wav", mock.Anything).
		Run(func(args mock.Arguments) {
			uploaded = args.Get(3).([]byte)
		}).Return(nil)
	mockStore.On("GenerateDownloadURL", mock.Anything, mock.AnythingOfType("string")).
		Return("https://example.com/renders/test.wav", nil)

	body, err := svc.RenderAudio(context.Background(), models.RenderParameters{
		Shape:             "sine",
		Frequency:         440,
		Amplitude:         5,
		SamplingFrequency: 100,
	}, 0.1)
	require.NoError(t, err)

	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "https://example.com/renders/test.wav", body.DownloadURL)
	assert.Equal(t, int((24 * 60 * 60)), body.ExpiresIn)

	// 44100 Hz, 0.1 s, stereo 16-bit: 44 byte header + 4410*4 bytes of data.
	require.NotEmpty(t, uploaded)
	assert.True(t, bytes.HasPrefix(uploaded, []byte("RIFF")), "expected a RIFF/WAVE file")
	assert.Equal(t, 44+4410*4, len(uploaded))

	mockStore.AssertExpectations(t)
}

func TestRenderAudioInvalidShape(t *testing.T) {
	mockStore := &MockArtifactStore{}
	svc := NewRenderService(mockStore, testDisplayConfig())

	_, err := svc.RenderAudio(context.Background(), models.RenderParameters{
		Shape:             "noise",
		Frequency:         440,
		Amplitude:         5,
		SamplingFrequency: 100,
	}, 1)
	assert.ErrorIs(t, err, signal.ErrInvalidShape)

	mockStore.AssertNotCalled(t, "UploadArtifact")
}
