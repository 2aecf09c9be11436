package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chime/internal/domain/entity"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"
	"chime/internal/infra/snooze"
	mockRepo "chime/internal/mocks/repository"
	mockSvc "chime/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testNow is a fixed Monday morning used across scheduler tests.
var testNow = time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC)

// schedulerServiceFixtures holds all test dependencies for scheduler service tests.
type schedulerServiceFixtures struct {
	service     *schedulerService
	alarmRepo   *mockRepo.MockAlarmRepository
	statRepo    *mockRepo.MockStatisticRepository
	txManager   *mockRepo.MockTransactionManager
	triggerSvc  *mockSvc.MockWakeTriggerService
	snoozeStore service.SnoozeStore
}

func createTestSchedulerService(t *testing.T) schedulerServiceFixtures {
	alarmRepo := mockRepo.NewMockAlarmRepository(t)
	statRepo := mockRepo.NewMockStatisticRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	triggerSvc := mockSvc.NewMockWakeTriggerService(t)
	snoozeStore := snooze.NewStore()
	logger := slog.New(slog.DiscardHandler)

	svc := NewSchedulerService(alarmRepo, txManager, triggerSvc, snoozeStore, logger).(*schedulerService)
	svc.now = func() time.Time { return testNow }

	return schedulerServiceFixtures{
		service:     svc,
		alarmRepo:   alarmRepo,
		statRepo:    statRepo,
		txManager:   txManager,
		triggerSvc:  triggerSvc,
		snoozeStore: snoozeStore,
	}
}

// expectTransaction routes Execute calls through a factory bound to the fixture mocks.
func (f schedulerServiceFixtures) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAlarmRepository().Return(f.alarmRepo).Maybe()
	factory.EXPECT().NewStatisticRepository().Return(f.statRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestSchedulerService_Add_SchedulesNextOccurrence(t *testing.T) {
	fx := createTestSchedulerService(t)

	alarm := &entity.Alarm{ID: 1, Enabled: true, Hour: 7, Minute: 30}
	wantFireAt := time.Date(2026, 8, 24, 7, 30, 0, 0, time.UTC)

	fx.triggerSvc.EXPECT().Schedule(int64(1), wantFireAt)

	require.NoError(t, fx.service.Add(context.Background(), alarm))
}

func TestSchedulerService_Add_DisabledAlarmIsNoop(t *testing.T) {
	fx := createTestSchedulerService(t)

	alarm := &entity.Alarm{ID: 1, Enabled: false, Hour: 7, Minute: 30}

	require.NoError(t, fx.service.Add(context.Background(), alarm))
}

func TestSchedulerService_Add_NilAlarmIsNoop(t *testing.T) {
	fx := createTestSchedulerService(t)

	require.NoError(t, fx.service.Add(context.Background(), nil))
}

func TestSchedulerService_AddAt_UsesExplicitTime(t *testing.T) {
	fx := createTestSchedulerService(t)

	alarm := &entity.Alarm{ID: 3, Enabled: true, Hour: 7, Minute: 0}
	fireAt := testNow.Add(5 * time.Minute)

	fx.triggerSvc.EXPECT().Schedule(int64(3), fireAt)

	require.NoError(t, fx.service.AddAt(context.Background(), alarm, fireAt))
}

func TestSchedulerService_Cancel_IsIdempotent(t *testing.T) {
	fx := createTestSchedulerService(t)

	fx.triggerSvc.EXPECT().Cancel(int64(9)).Twice()

	require.NoError(t, fx.service.Cancel(context.Background(), 9))
	require.NoError(t, fx.service.Cancel(context.Background(), 9))
}

func TestSchedulerService_Update_CancelsThenAdds(t *testing.T) {
	fx := createTestSchedulerService(t)

	alarm := &entity.Alarm{ID: 2, Enabled: true, Hour: 8, Minute: 0}
	wantFireAt := time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)

	fx.triggerSvc.EXPECT().Cancel(int64(2))
	fx.triggerSvc.EXPECT().Schedule(int64(2), wantFireAt)

	require.NoError(t, fx.service.Update(context.Background(), alarm))
}

func TestSchedulerService_Update_DisabledOnlyCancels(t *testing.T) {
	fx := createTestSchedulerService(t)

	alarm := &entity.Alarm{ID: 2, Enabled: false, Hour: 8, Minute: 0}

	fx.triggerSvc.EXPECT().Cancel(int64(2))

	require.NoError(t, fx.service.Update(context.Background(), alarm))
}

func TestSchedulerService_RestoreAll_RearmsEnabledAlarms(t *testing.T) {
	fx := createTestSchedulerService(t)

	alarms := []*entity.Alarm{
		{ID: 1, Enabled: true, Hour: 7, Minute: 0},
		{ID: 2, Enabled: true, Hour: 8, Minute: 30},
	}

	fx.alarmRepo.EXPECT().FindEnabledAlarms(mock.Anything).Return(alarms, nil)
	fx.triggerSvc.EXPECT().Cancel(int64(1))
	fx.triggerSvc.EXPECT().Schedule(int64(1), time.Date(2026, 8, 24, 7, 0, 0, 0, time.UTC))
	fx.triggerSvc.EXPECT().Cancel(int64(2))
	fx.triggerSvc.EXPECT().Schedule(int64(2), time.Date(2026, 8, 24, 8, 30, 0, 0, time.UTC))

	require.NoError(t, fx.service.RestoreAll(context.Background()))
}

func TestSchedulerService_CancelAllActive_ResolvesAsMissed(t *testing.T) {
	fx := createTestSchedulerService(t)

	active := &entity.Alarm{ID: 5, Enabled: true, Hour: 7, Minute: 0, IsActive: true, Repeat: false}
	fx.snoozeStore.Increment(5)

	fx.alarmRepo.EXPECT().FindActiveAlarms(mock.Anything).Return([]*entity.Alarm{active}, nil)
	fx.expectTransaction(t)
	fx.alarmRepo.EXPECT().
		UpdateAlarm(mock.Anything, mock.AnythingOfType("*entity.Alarm")).
		RunAndReturn(func(_ context.Context, alarm *entity.Alarm) error {
			assert.False(t, alarm.IsActive)
			assert.False(t, alarm.Enabled) // one-shot disables

			return nil
		})
	fx.statRepo.EXPECT().
		CreateStatistic(mock.Anything, mock.AnythingOfType("*entity.Statistic")).
		RunAndReturn(func(_ context.Context, stat *entity.Statistic) error {
			assert.Equal(t, entity.StatisticMissed, stat.Kind)

			return nil
		})
	fx.triggerSvc.EXPECT().Cancel(int64(5))

	require.NoError(t, fx.service.CancelAllActive(context.Background()))
	assert.Zero(t, fx.snoozeStore.Count(5))
}

func TestSchedulerService_CancelAllActive_NoActiveAlarms(t *testing.T) {
	fx := createTestSchedulerService(t)

	fx.alarmRepo.EXPECT().FindActiveAlarms(mock.Anything).Return(nil, nil)

	require.NoError(t, fx.service.CancelAllActive(context.Background()))
}

func TestSchedulerService_Upcoming_PicksSoonestRegistration(t *testing.T) {
	fx := createTestSchedulerService(t)

	alarms := []*entity.Alarm{
		{ID: 1, Enabled: true, Name: "Late", Hour: 9, Minute: 0},
		{ID: 2, Enabled: true, Name: "Early", Hour: 7, Minute: 0},
		{ID: 3, Enabled: true, Name: "Unarmed", Hour: 6, Minute: 0},
	}

	fx.alarmRepo.EXPECT().FindEnabledAlarms(mock.Anything).Return(alarms, nil)
	fx.triggerSvc.EXPECT().NextFireTime(int64(1)).Return(testNow.Add(3*time.Hour), true)
	fx.triggerSvc.EXPECT().NextFireTime(int64(2)).Return(testNow.Add(time.Hour), true)
	fx.triggerSvc.EXPECT().NextFireTime(int64(3)).Return(time.Time{}, false)

	upcoming, err := fx.service.Upcoming(context.Background())
	require.NoError(t, err)
	require.NotNil(t, upcoming)
	assert.Equal(t, int64(2), upcoming.AlarmID)
	assert.Equal(t, "Early", upcoming.Name)
	assert.Equal(t, testNow.Add(time.Hour), upcoming.FireAt)
}

func TestSchedulerService_Upcoming_NothingArmed(t *testing.T) {
	fx := createTestSchedulerService(t)

	fx.alarmRepo.EXPECT().FindEnabledAlarms(mock.Anything).Return(nil, nil)

	upcoming, err := fx.service.Upcoming(context.Background())
	require.NoError(t, err)
	assert.Nil(t, upcoming)
}
