package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/response"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PosterHandlerParams holds dependencies for PosterHandler, injected by Fx.
type PosterHandlerParams struct {
	fx.In

	PosterUC usecase.PosterUsecase
	Logger   *slog.Logger
}

// PosterHandler manages the marketing poster from the back-office.
type PosterHandler struct {
	posterUC usecase.PosterUsecase
	logger   *slog.Logger
}

// NewPosterHandler is the constructor for PosterHandler
func NewPosterHandler(params PosterHandlerParams) *PosterHandler {
	return &PosterHandler{
		posterUC: params.PosterUC,
		logger:   params.Logger,
	}
}

// VisibilityRequest represents the request body for the visibility flip
type VisibilityRequest struct {
	Hidden bool `json:"hidden"`
}

// GetPoster handles reading the stored poster, hidden or not
func (h *PosterHandler) GetPoster(c echo.Context) error {
	poster, err := h.posterUC.Current(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, poster)
}

// UploadPoster hosts the image and replaces the poster record
func (h *PosterHandler) UploadPoster(c echo.Context) error {
	filename, mimeType, data, err := readImageFile(c, "image")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	poster, err := h.posterUC.Upload(c.Request().Context(), filename, mimeType, data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, poster)
}

// SetVisibility handles flipping the poster's storefront visibility
func (h *PosterHandler) SetVisibility(c echo.Context) error {
	var req VisibilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visibility input")
	}

	poster, err := h.posterUC.SetHidden(c.Request().Context(), req.Hidden)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, poster)
}

// DeletePoster handles removing the poster record
func (h *PosterHandler) DeletePoster(c echo.Context) error {
	if err := h.posterUC.Delete(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}
