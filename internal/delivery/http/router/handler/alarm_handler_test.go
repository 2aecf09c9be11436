package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpvalidator "chime/internal/delivery/http/validator"
	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	mockUsecase "chime/internal/mocks/usecase"
	"chime/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = httpvalidator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAlarmHandler_CreateAlarm(t *testing.T) {
	alarmUC := mockUsecase.NewMockAlarmUsecase(t)
	h := &AlarmHandler{alarmUC: alarmUC, logger: slog.New(slog.DiscardHandler)}

	body := `{"enabled":true,"hour":7,"minute":30,"day_mask":62,"repeat":true,"volume":80,"name":"Workday"}`
	c, rec := newTestContext(http.MethodPost, "/alarms", body)

	alarmUC.EXPECT().
		CreateAlarm(mock.Anything, mock.MatchedBy(func(input *usecase.AlarmInput) bool {
			return input.Hour == 7 && input.Minute == 30 && input.DayMask == entity.DayMask(62)
		})).
		Return(&entity.Alarm{ID: 1, Enabled: true, Hour: 7, Minute: 30, Name: "Workday"}, nil)

	require.NoError(t, h.CreateAlarm(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"Workday"`)
}

func TestAlarmHandler_CreateAlarm_RejectsOutOfRangeTime(t *testing.T) {
	alarmUC := mockUsecase.NewMockAlarmUsecase(t)
	h := &AlarmHandler{alarmUC: alarmUC, logger: slog.New(slog.DiscardHandler)}

	body := `{"enabled":true,"hour":24,"minute":0}`
	c, rec := newTestContext(http.MethodPost, "/alarms", body)

	require.NoError(t, h.CreateAlarm(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAlarmHandler_GetAlarm_NotFound(t *testing.T) {
	alarmUC := mockUsecase.NewMockAlarmUsecase(t)
	h := &AlarmHandler{alarmUC: alarmUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newTestContext(http.MethodGet, "/alarms/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	alarmUC.EXPECT().GetAlarm(mock.Anything, int64(404)).Return(nil, domainerrors.ErrAlarmNotFound)

	require.NoError(t, h.GetAlarm(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrAlarmNotFound.ErrorCode())
}

func TestAlarmHandler_GetAlarm_InvalidID(t *testing.T) {
	alarmUC := mockUsecase.NewMockAlarmUsecase(t)
	h := &AlarmHandler{alarmUC: alarmUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newTestContext(http.MethodGet, "/alarms/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetAlarm(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestAlarmHandler_UpcomingAlarm(t *testing.T) {
	schedulerUC := mockUsecase.NewMockSchedulerUsecase(t)
	h := &AlarmHandler{schedulerUC: schedulerUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newTestContext(http.MethodGet, "/alarms/upcoming", "")

	schedulerUC.EXPECT().Upcoming(mock.Anything).Return(&usecase.UpcomingAlarm{AlarmID: 3, Name: "Early"}, nil)

	require.NoError(t, h.UpcomingAlarm(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Early"`)
}
