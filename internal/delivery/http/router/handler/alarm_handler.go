package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"chime/internal/delivery/http/response"
	"chime/internal/domain/entity"
	"chime/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlarmHandlerParams holds dependencies for AlarmHandler, injected by Fx.
type AlarmHandlerParams struct {
	fx.In

	AlarmUC     usecase.AlarmUsecase
	SchedulerUC usecase.SchedulerUsecase
	Logger      *slog.Logger
}

// AlarmHandler holds dependencies for alarm CRUD handlers
type AlarmHandler struct {
	alarmUC     usecase.AlarmUsecase
	schedulerUC usecase.SchedulerUsecase
	logger      *slog.Logger
}

// NewAlarmHandler is the constructor for AlarmHandler
func NewAlarmHandler(params AlarmHandlerParams) *AlarmHandler {
	return &AlarmHandler{
		alarmUC:     params.AlarmUC,
		schedulerUC: params.SchedulerUC,
		logger:      params.Logger,
	}
}

// AlarmRequest represents the request body for creating or updating an alarm
type AlarmRequest struct {
	Enabled            bool   `json:"enabled"`
	Hour               int    `json:"hour" validate:"min=0,max=23"`
	Minute             int    `json:"minute" validate:"min=0,max=59"`
	DayMask            uint8  `json:"day_mask" validate:"max=127"`
	Repeat             bool   `json:"repeat"`
	UseNfc             bool   `json:"use_nfc"`
	NfcTagID           string `json:"nfc_tag_id"`
	MediaPath          string `json:"media_path"`
	Volume             int    `json:"volume" validate:"min=0,max=100"`
	Vibrate            bool   `json:"vibrate"`
	Name               string `json:"name" validate:"max=255"`
	MaxSnoozeCount     *int   `json:"max_snooze_count" validate:"omitempty,min=-1"`
	SnoozeDuration     *int   `json:"snooze_duration" validate:"omitempty,min=1"`
	AutoDismissTimeout *int   `json:"auto_dismiss_timeout" validate:"omitempty,min=0"`
	DismissEarlyWindow int    `json:"dismiss_early_window" validate:"min=0"`
}

func (r *AlarmRequest) toInput() *usecase.AlarmInput {
	return &usecase.AlarmInput{
		Enabled:            r.Enabled,
		Hour:               r.Hour,
		Minute:             r.Minute,
		DayMask:            entity.DayMask(r.DayMask),
		Repeat:             r.Repeat,
		UseNfc:             r.UseNfc,
		NfcTagID:           r.NfcTagID,
		MediaPath:          r.MediaPath,
		Volume:             r.Volume,
		Vibrate:            r.Vibrate,
		Name:               r.Name,
		MaxSnoozeCount:     r.MaxSnoozeCount,
		SnoozeDuration:     r.SnoozeDuration,
		AutoDismissTimeout: r.AutoDismissTimeout,
		DismissEarlyWindow: r.DismissEarlyWindow,
	}
}

// CreateAlarm handles alarm creation
func (h *AlarmHandler) CreateAlarm(c echo.Context) error {
	var req AlarmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alarm input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alarm, err := h.alarmUC.CreateAlarm(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alarm, "Alarm created successfully")
}

// ListAlarms handles retrieving all alarms
func (h *AlarmHandler) ListAlarms(c echo.Context) error {
	alarms, err := h.alarmUC.ListAlarms(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alarms, "Alarms retrieved successfully")
}

// GetAlarm handles retrieving a single alarm
func (h *AlarmHandler) GetAlarm(c echo.Context) error {
	id, err := parseAlarmID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alarm ID")
	}

	alarm, err := h.alarmUC.GetAlarm(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alarm, "Alarm retrieved successfully")
}

// UpdateAlarm handles alarm updates
func (h *AlarmHandler) UpdateAlarm(c echo.Context) error {
	id, err := parseAlarmID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alarm ID")
	}

	var req AlarmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alarm input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alarm, err := h.alarmUC.UpdateAlarm(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alarm, "Alarm updated successfully")
}

// DeleteAlarm handles alarm deletion
func (h *AlarmHandler) DeleteAlarm(c echo.Context) error {
	id, err := parseAlarmID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alarm ID")
	}

	if err := h.alarmUC.DeleteAlarm(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Alarm deleted successfully"}, "Alarm deleted successfully")
}

// UpcomingAlarm reports the next pending occurrence across all enabled alarms
func (h *AlarmHandler) UpcomingAlarm(c echo.Context) error {
	upcoming, err := h.schedulerUC.Upcoming(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, upcoming, "Upcoming alarm retrieved successfully")
}

func parseAlarmID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
