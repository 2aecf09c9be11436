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

// StatisticHandlerParams holds dependencies for StatisticHandler, injected by Fx.
type StatisticHandlerParams struct {
	fx.In

	StatisticUC usecase.StatisticUsecase
	Logger      *slog.Logger
}

// StatisticHandler holds dependencies for statistics read handlers
type StatisticHandler struct {
	statisticUC usecase.StatisticUsecase
	logger      *slog.Logger
}

// NewStatisticHandler is the constructor for StatisticHandler
func NewStatisticHandler(params StatisticHandlerParams) *StatisticHandler {
	return &StatisticHandler{
		statisticUC: params.StatisticUC,
		logger:      params.Logger,
	}
}

// ListStatistics handles retrieving the statistics log with optional filters
func (h *StatisticHandler) ListStatistics(c echo.Context) error {
	var kind *entity.StatisticKind
	if raw := c.QueryParam("kind"); raw != "" {
		k := entity.StatisticKind(raw)
		switch k {
		case entity.StatisticCreated, entity.StatisticDeleted, entity.StatisticDismissed,
			entity.StatisticMissed, entity.StatisticSnoozed:
			kind = &k
		default:
			return response.BadRequest(c, "INVALID_KIND", "Unknown statistic kind")
		}
	}

	var alarmID *int64
	if raw := c.QueryParam("alarm_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid alarm ID")
		}
		alarmID = &id
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	stats, err := h.statisticUC.ListStatistics(c.Request().Context(), kind, alarmID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// Summary handles retrieving per-kind event counts
func (h *StatisticHandler) Summary(c echo.Context) error {
	summary, err := h.statisticUC.Summary(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Statistics summary retrieved successfully")
}
