package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chime/config"
	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"
	"chime/internal/infra/snooze"
	mockRepo "chime/internal/mocks/repository"
	mockUsecase "chime/internal/mocks/usecase"
	"chime/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// alarmServiceFixtures holds all test dependencies for alarm service tests.
type alarmServiceFixtures struct {
	service     *alarmService
	alarmRepo   *mockRepo.MockAlarmRepository
	statRepo    *mockRepo.MockStatisticRepository
	txManager   *mockRepo.MockTransactionManager
	scheduler   *mockUsecase.MockSchedulerUsecase
	snoozeStore service.SnoozeStore
}

func createTestAlarmService(t *testing.T) alarmServiceFixtures {
	cfg := &config.Config{
		Alarm: config.AlarmConfig{
			MaxSnoozeCount:     3,
			SnoozeDuration:     5,
			AutoDismissTimeout: 300,
		},
	}
	alarmRepo := mockRepo.NewMockAlarmRepository(t)
	statRepo := mockRepo.NewMockStatisticRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	scheduler := mockUsecase.NewMockSchedulerUsecase(t)
	snoozeStore := snooze.NewStore()
	logger := slog.New(slog.DiscardHandler)

	svc := NewAlarmService(cfg, alarmRepo, txManager, scheduler, snoozeStore, logger).(*alarmService)
	svc.now = func() time.Time { return testNow }

	return alarmServiceFixtures{
		service:     svc,
		alarmRepo:   alarmRepo,
		statRepo:    statRepo,
		txManager:   txManager,
		scheduler:   scheduler,
		snoozeStore: snoozeStore,
	}
}

func (f alarmServiceFixtures) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAlarmRepository().Return(f.alarmRepo).Maybe()
	factory.EXPECT().NewStatisticRepository().Return(f.statRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func baseAlarmInput() *usecase.AlarmInput {
	return &usecase.AlarmInput{
		Enabled: true,
		Hour:    7,
		Minute:  30,
		DayMask: entity.DayMask(0b0111110),
		Repeat:  true,
		Volume:  80,
		Vibrate: true,
		Name:    "Workday",
	}
}

func TestAlarmService_CreateAlarm_AppliesDefaultsAndArms(t *testing.T) {
	fx := createTestAlarmService(t)

	fx.expectTransaction(t)
	fx.alarmRepo.EXPECT().
		CreateAlarm(mock.Anything, mock.AnythingOfType("*entity.Alarm")).
		RunAndReturn(func(_ context.Context, alarm *entity.Alarm) error {
			alarm.ID = 11

			return nil
		})
	fx.statRepo.EXPECT().
		CreateStatistic(mock.Anything, mock.AnythingOfType("*entity.Statistic")).
		RunAndReturn(func(_ context.Context, stat *entity.Statistic) error {
			assert.Equal(t, entity.StatisticCreated, stat.Kind)
			require.NotNil(t, stat.AlarmID)
			assert.Equal(t, int64(11), *stat.AlarmID)

			return nil
		})
	fx.scheduler.EXPECT().Add(mock.Anything, mock.AnythingOfType("*entity.Alarm")).Return(nil)

	alarm, err := fx.service.CreateAlarm(context.Background(), baseAlarmInput())
	require.NoError(t, err)
	assert.Equal(t, int64(11), alarm.ID)
	assert.Equal(t, 3, alarm.MaxSnoozeCount)
	assert.Equal(t, 5, alarm.SnoozeDuration)
	assert.Equal(t, 300, alarm.AutoDismissTimeout)
}

func TestAlarmService_CreateAlarm_InputOverridesDefaults(t *testing.T) {
	fx := createTestAlarmService(t)

	maxSnooze := entity.UnlimitedSnoozes
	snoozeDuration := 10
	autoDismiss := 0

	input := baseAlarmInput()
	input.MaxSnoozeCount = &maxSnooze
	input.SnoozeDuration = &snoozeDuration
	input.AutoDismissTimeout = &autoDismiss

	fx.expectTransaction(t)
	fx.alarmRepo.EXPECT().CreateAlarm(mock.Anything, mock.Anything).Return(nil)
	fx.statRepo.EXPECT().CreateStatistic(mock.Anything, mock.Anything).Return(nil)
	fx.scheduler.EXPECT().Add(mock.Anything, mock.Anything).Return(nil)

	alarm, err := fx.service.CreateAlarm(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, entity.UnlimitedSnoozes, alarm.MaxSnoozeCount)
	assert.Equal(t, 10, alarm.SnoozeDuration)
	assert.Equal(t, 0, alarm.AutoDismissTimeout)
}

func TestAlarmService_CreateAlarm_PersistenceFailure(t *testing.T) {
	fx := createTestAlarmService(t)

	fx.expectTransaction(t)
	fx.alarmRepo.EXPECT().CreateAlarm(mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := fx.service.CreateAlarm(context.Background(), baseAlarmInput())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrAlarmCreationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAlarmService_GetAlarm_NotFound(t *testing.T) {
	fx := createTestAlarmService(t)

	fx.alarmRepo.EXPECT().
		FindAlarmByID(mock.Anything, int64(404)).
		Return(nil, repository.ErrAlarmNotFound)

	_, err := fx.service.GetAlarm(context.Background(), 404)
	require.ErrorIs(t, err, domainerrors.ErrAlarmNotFound)
}

func TestAlarmService_ListAlarms(t *testing.T) {
	fx := createTestAlarmService(t)

	alarms := []*entity.Alarm{{ID: 1}, {ID: 2}}
	fx.alarmRepo.EXPECT().FindAllAlarms(mock.Anything).Return(alarms, nil)

	got, err := fx.service.ListAlarms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, alarms, got)
}

func TestAlarmService_UpdateAlarm_RearmsTrigger(t *testing.T) {
	fx := createTestAlarmService(t)

	existing := &entity.Alarm{ID: 4, Enabled: true, Hour: 6, Minute: 0, MaxSnoozeCount: 3, SnoozeDuration: 5}

	input := baseAlarmInput()
	input.Hour = 8
	input.Minute = 15

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(4)).Return(existing, nil)
	fx.alarmRepo.EXPECT().
		UpdateAlarm(mock.Anything, mock.AnythingOfType("*entity.Alarm")).
		RunAndReturn(func(_ context.Context, alarm *entity.Alarm) error {
			assert.Equal(t, 8, alarm.Hour)
			assert.Equal(t, 15, alarm.Minute)

			return nil
		})
	fx.scheduler.EXPECT().Update(mock.Anything, existing).Return(nil)

	updated, err := fx.service.UpdateAlarm(context.Background(), 4, input)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Hour)
}

func TestAlarmService_UpdateAlarm_NotFound(t *testing.T) {
	fx := createTestAlarmService(t)

	fx.alarmRepo.EXPECT().
		FindAlarmByID(mock.Anything, int64(404)).
		Return(nil, repository.ErrAlarmNotFound)

	_, err := fx.service.UpdateAlarm(context.Background(), 404, baseAlarmInput())
	require.ErrorIs(t, err, domainerrors.ErrAlarmNotFound)
}

func TestAlarmService_DeleteAlarm_RecordsStatisticAndCancels(t *testing.T) {
	fx := createTestAlarmService(t)

	alarm := &entity.Alarm{ID: 9, Enabled: true, Hour: 7, Minute: 0, Name: "Doomed"}
	fx.snoozeStore.Increment(9)

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(9)).Return(alarm, nil)
	fx.expectTransaction(t)
	fx.statRepo.EXPECT().
		CreateStatistic(mock.Anything, mock.AnythingOfType("*entity.Statistic")).
		RunAndReturn(func(_ context.Context, stat *entity.Statistic) error {
			assert.Equal(t, entity.StatisticDeleted, stat.Kind)
			assert.Equal(t, "Doomed", stat.Name)

			return nil
		})
	fx.alarmRepo.EXPECT().DeleteAlarm(mock.Anything, int64(9)).Return(nil)
	fx.scheduler.EXPECT().Cancel(mock.Anything, int64(9)).Return(nil)

	require.NoError(t, fx.service.DeleteAlarm(context.Background(), 9))
	assert.Zero(t, fx.snoozeStore.Count(9))
}

func TestAlarmService_DeleteAlarm_NotFound(t *testing.T) {
	fx := createTestAlarmService(t)

	fx.alarmRepo.EXPECT().
		FindAlarmByID(mock.Anything, int64(404)).
		Return(nil, repository.ErrAlarmNotFound)

	err := fx.service.DeleteAlarm(context.Background(), 404)
	require.ErrorIs(t, err, domainerrors.ErrAlarmNotFound)
}
