package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/pkaminski/samplescope/internal/render"
	"github.com/pkaminski/samplescope/pkg/models"
	"github.com/pkaminski/samplescope/pkg/signal"
)

// RenderHandler handles render-related HTTP requests
type RenderHandler struct {
	renderSvc render.RenderService
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(renderSvc render.RenderService) *RenderHandler {
	return &RenderHandler{renderSvc: renderSvc}
}

// RenderScene computes the analog curve, the sample sequence and the spectrum
// for one parameter set
func (h *RenderHandler) RenderScene(ctx context.Context, req *models.RenderRequest) (*models.RenderResponse, error) {
	log.Info().
		Str("shape", req.Body.Shape).
		Float64("frequency", req.Body.Frequency).
		Float64("samplingFrequency", req.Body.SamplingFrequency).
		Msg("Rendering sampling scene")

	body, err := h.renderSvc.RenderScene(ctx, req.Body)
	if err != nil {
		return nil, translateRenderError(err)
	}

	log.Info().
		Str("renderID", body.ID).
		Float64("aliasFrequency", body.Spectrum.AliasFrequency).
		Bool("isAliased", body.Spectrum.IsAliased).
		Msg("Scene rendered")

	return &models.RenderResponse{Body: *body}, nil
}

// RenderAudio renders an audible WAV preview of the configured signal
func (h *RenderHandler) RenderAudio(ctx context.Context, req *models.RenderAudioRequest) (*models.RenderAudioResponse, error) {
	log.Info().
		Str("shape", req.Body.Shape).
		Float64("frequency", req.Body.Frequency).
		Float64("durationSeconds", req.Body.DurationSeconds).
		Msg("Rendering audio preview")

	body, err := h.renderSvc.RenderAudio(ctx, req.Body.RenderParameters, req.Body.DurationSeconds)
	if err != nil {
		if isParameterError(err) {
			return nil, translateRenderError(err)
		}
		return nil, huma.Error500InternalServerError("Failed to render audio preview", err)
	}

	log.Info().Str("renderID", body.ID).Msg("Audio preview rendered")
	return &models.RenderAudioResponse{Body: *body}, nil
}

// translateRenderError maps core signal errors onto user-visible HTTP errors.
// Parameter errors are terminal for the request; nothing is retried.
func translateRenderError(err error) error {
	switch {
	case errors.Is(err, signal.ErrInvalidSamplingRate):
		return huma.Error422UnprocessableEntity("Sampling frequency must be greater than 0.", err)
	case errors.Is(err, signal.ErrDegenerateSpectrum):
		return huma.Error422UnprocessableEntity("Nyquist frequency is 0, the spectrum cannot be drawn.", err)
	case errors.Is(err, signal.ErrInvalidShape):
		return huma.Error422UnprocessableEntity("Unknown waveform shape.", err)
	}
	return huma.Error500InternalServerError("Failed to render scene", err)
}

func isParameterError(err error) bool {
	return errors.Is(err, signal.ErrInvalidSamplingRate) ||
		errors.Is(err, signal.ErrDegenerateSpectrum) ||
		errors.Is(err, signal.ErrInvalidShape)
}
