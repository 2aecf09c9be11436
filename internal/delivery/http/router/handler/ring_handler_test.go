package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	mockUsecase "chime/internal/mocks/usecase"
	"chime/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRingHandler_Dismiss(t *testing.T) {
	ringerUC := mockUsecase.NewMockRingerUsecase(t)
	h := &RingHandler{ringerUC: ringerUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newTestContext(http.MethodPost, "/alarms/7/dismiss", `{"nfc_tag_id":"tag-kitchen"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	ringerUC.EXPECT().
		Dismiss(mock.Anything, int64(7), "tag-kitchen").
		Return(&entity.Alarm{ID: 7, Name: "Workday"}, nil)

	require.NoError(t, h.Dismiss(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestRingHandler_Dismiss_NfcMismatch(t *testing.T) {
	ringerUC := mockUsecase.NewMockRingerUsecase(t)
	h := &RingHandler{ringerUC: ringerUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newTestContext(http.MethodPost, "/alarms/7/dismiss", `{"nfc_tag_id":"wrong"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	ringerUC.EXPECT().
		Dismiss(mock.Anything, int64(7), "wrong").
		Return(nil, domainerrors.ErrNfcTagMismatch)

	require.NoError(t, h.Dismiss(c))
	assert.Equal(t, domainerrors.ErrNfcTagMismatch.HTTPCode(), rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrNfcTagMismatch.ErrorCode())
}

func TestRingHandler_Snooze(t *testing.T) {
	ringerUC := mockUsecase.NewMockRingerUsecase(t)
	h := &RingHandler{ringerUC: ringerUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newTestContext(http.MethodPost, "/alarms/7/snooze", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	ringerUC.EXPECT().
		Snooze(mock.Anything, int64(7)).
		Return(&usecase.SnoozeResult{AlarmID: 7, SnoozeCount: 1}, nil)

	require.NoError(t, h.Snooze(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"snooze_count":1`)
}

func TestRingHandler_Snooze_LimitExceeded(t *testing.T) {
	ringerUC := mockUsecase.NewMockRingerUsecase(t)
	h := &RingHandler{ringerUC: ringerUC, logger: slog.New(slog.DiscardHandler)}

	c, rec := newTestContext(http.MethodPost, "/alarms/7/snooze", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	ringerUC.EXPECT().
		Snooze(mock.Anything, int64(7)).
		Return(nil, domainerrors.ErrSnoozeLimitExceeded)

	require.NoError(t, h.Snooze(c))
	assert.Equal(t, domainerrors.ErrSnoozeLimitExceeded.HTTPCode(), rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrSnoozeLimitExceeded.ErrorCode())
}
