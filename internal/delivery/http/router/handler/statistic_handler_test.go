package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"chime/internal/domain/entity"
	mockUsecase "chime/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatisticHandler_ListStatistics_FiltersByKind(t *testing.T) {
	statisticUC := mockUsecase.NewMockStatisticUsecase(t)
	h := &StatisticHandler{statisticUC: statisticUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newTestContext(http.MethodGet, "/statistics?kind=missed&limit=10", "")

	kind := entity.StatisticMissed
	statisticUC.EXPECT().
		ListStatistics(mock.Anything, &kind, (*int64)(nil), 10, 0).
		Return([]*entity.Statistic{{ID: 1, Kind: entity.StatisticMissed}}, nil)

	require.NoError(t, h.ListStatistics(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"missed"`)
}

func TestStatisticHandler_ListStatistics_UnknownKind(t *testing.T) {
	statisticUC := mockUsecase.NewMockStatisticUsecase(t)
	h := &StatisticHandler{statisticUC: statisticUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newTestContext(http.MethodGet, "/statistics?kind=overslept", "")

	require.NoError(t, h.ListStatistics(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_KIND")
}

func TestStatisticHandler_Summary(t *testing.T) {
	statisticUC := mockUsecase.NewMockStatisticUsecase(t)
	h := &StatisticHandler{statisticUC: statisticUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newTestContext(http.MethodGet, "/statistics/summary", "")

	statisticUC.EXPECT().
		Summary(mock.Anything).
		Return(map[entity.StatisticKind]int64{entity.StatisticDismissed: 4}, nil)

	require.NoError(t, h.Summary(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dismissed":4`)
}
