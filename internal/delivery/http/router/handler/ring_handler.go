package handler

import (
	"log/slog"
	"net/http"

	"chime/internal/delivery/http/response"
	"chime/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RingHandlerParams holds dependencies for RingHandler, injected by Fx.
type RingHandlerParams struct {
	fx.In

	RingerUC usecase.RingerUsecase
	Logger   *slog.Logger
}

// RingHandler holds dependencies for ringing-alarm interaction handlers
type RingHandler struct {
	ringerUC usecase.RingerUsecase
	logger   *slog.Logger
}

// NewRingHandler is the constructor for RingHandler
func NewRingHandler(params RingHandlerParams) *RingHandler {
	return &RingHandler{
		ringerUC: params.RingerUC,
		logger:   params.Logger,
	}
}

// DismissRequest represents the request body for dismissing a ringing alarm
type DismissRequest struct {
	// Scanned NFC tag ID; empty for a plain button dismissal.
	NfcTagID string `json:"nfc_tag_id"`
}

// Dismiss handles dismissal of a ringing alarm, subject to the NFC gate
func (h *RingHandler) Dismiss(c echo.Context) error {
	id, err := parseAlarmID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alarm ID")
	}

	var req DismissRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dismiss input")
	}

	alarm, err := h.ringerUC.Dismiss(c.Request().Context(), id, req.NfcTagID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alarm, "Alarm dismissed successfully")
}

// Snooze handles snoozing of a ringing alarm
func (h *RingHandler) Snooze(c echo.Context) error {
	id, err := parseAlarmID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alarm ID")
	}

	result, err := h.ringerUC.Snooze(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Alarm snoozed successfully")
}
