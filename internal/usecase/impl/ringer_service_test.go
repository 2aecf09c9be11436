package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"
	"chime/internal/errors"
	"chime/internal/infra/snooze"
	mockRepo "chime/internal/mocks/repository"
	mockSvc "chime/internal/mocks/service"
	mockUsecase "chime/internal/mocks/usecase"
	"chime/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ringerServiceFixtures holds all test dependencies for ringer service tests.
type ringerServiceFixtures struct {
	service     *ringerService
	alarmRepo   *mockRepo.MockAlarmRepository
	statRepo    *mockRepo.MockStatisticRepository
	txManager   *mockRepo.MockTransactionManager
	scheduler   *mockUsecase.MockSchedulerUsecase
	snoozeStore service.SnoozeStore
	publisher   *mockSvc.MockEventPublisher
}

func createTestRingerService(t *testing.T) ringerServiceFixtures {
	alarmRepo := mockRepo.NewMockAlarmRepository(t)
	statRepo := mockRepo.NewMockStatisticRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	scheduler := mockUsecase.NewMockSchedulerUsecase(t)
	snoozeStore := snooze.NewStore()
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.DiscardHandler)

	svc := NewRingerService(alarmRepo, txManager, scheduler, snoozeStore, publisher, logger).(*ringerService)
	svc.now = func() time.Time { return testNow }

	return ringerServiceFixtures{
		service:     svc,
		alarmRepo:   alarmRepo,
		statRepo:    statRepo,
		txManager:   txManager,
		scheduler:   scheduler,
		snoozeStore: snoozeStore,
		publisher:   publisher,
	}
}

func (f ringerServiceFixtures) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAlarmRepository().Return(f.alarmRepo).Maybe()
	factory.EXPECT().NewStatisticRepository().Return(f.statRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func (f ringerServiceFixtures) expectEvent(kind string) {
	f.publisher.EXPECT().
		PublishAlarmEvent(mock.Anything, mock.MatchedBy(func(event *service.AlarmEvent) bool {
			return event.Kind == kind
		})).
		Return(nil)
}

func ringingAlarm() *entity.Alarm {
	return &entity.Alarm{
		ID:                 7,
		Enabled:            true,
		Hour:               7,
		Minute:             0,
		DayMask:            entity.DayMask(0b0111110), // weekdays
		Repeat:             true,
		Name:               "Workday",
		IsActive:           true,
		MaxSnoozeCount:     3,
		SnoozeDuration:     5,
		AutoDismissTimeout: 0,
	}
}

func TestRingerService_HandleTrigger_MarksRingingAndRearms(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.IsActive = false

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.alarmRepo.EXPECT().
		UpdateAlarm(mock.Anything, mock.AnythingOfType("*entity.Alarm")).
		RunAndReturn(func(_ context.Context, updated *entity.Alarm) error {
			assert.True(t, updated.IsActive)

			return nil
		})
	fx.scheduler.EXPECT().Add(mock.Anything, alarm).Return(nil)
	fx.expectEvent(service.EventRinging)

	require.NoError(t, fx.service.HandleTrigger(context.Background(), 7))
}

func TestRingerService_HandleTrigger_OneShotDoesNotRearm(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.IsActive = false
	alarm.Repeat = false

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.alarmRepo.EXPECT().UpdateAlarm(mock.Anything, mock.Anything).Return(nil)
	fx.expectEvent(service.EventRinging)

	require.NoError(t, fx.service.HandleTrigger(context.Background(), 7))
}

func TestRingerService_HandleTrigger_DeletedAlarmCancelsSilently(t *testing.T) {
	fx := createTestRingerService(t)

	fx.alarmRepo.EXPECT().
		FindAlarmByID(mock.Anything, int64(7)).
		Return(nil, errors.Wrap(repository.ErrAlarmNotFound, "alarm 7"))
	fx.scheduler.EXPECT().Cancel(mock.Anything, int64(7)).Return(nil)

	require.NoError(t, fx.service.HandleTrigger(context.Background(), 7))
}

func TestRingerService_HandleTrigger_DisabledAlarmCancelsSilently(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.Enabled = false
	alarm.IsActive = false

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.scheduler.EXPECT().Cancel(mock.Anything, int64(7)).Return(nil)

	require.NoError(t, fx.service.HandleTrigger(context.Background(), 7))
}

func TestRingerService_Dismiss_Success(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	fx.snoozeStore.Increment(7)

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.expectTransaction(t)
	fx.alarmRepo.EXPECT().
		UpdateAlarm(mock.Anything, mock.AnythingOfType("*entity.Alarm")).
		RunAndReturn(func(_ context.Context, updated *entity.Alarm) error {
			assert.False(t, updated.IsActive)
			assert.True(t, updated.Enabled) // repeating alarms stay enabled

			return nil
		})
	fx.statRepo.EXPECT().
		CreateStatistic(mock.Anything, mock.AnythingOfType("*entity.Statistic")).
		RunAndReturn(func(_ context.Context, stat *entity.Statistic) error {
			assert.Equal(t, entity.StatisticDismissed, stat.Kind)
			require.NotNil(t, stat.UsedNfc)
			assert.False(t, *stat.UsedNfc)

			return nil
		})
	fx.expectEvent(service.EventDismissed)

	dismissed, err := fx.service.Dismiss(context.Background(), 7, "")
	require.NoError(t, err)
	assert.False(t, dismissed.IsActive)
	assert.Zero(t, fx.snoozeStore.Count(7))
}

func TestRingerService_Dismiss_OneShotDisablesKeepingDays(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.Repeat = false

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.expectTransaction(t)
	fx.alarmRepo.EXPECT().UpdateAlarm(mock.Anything, mock.Anything).Return(nil)
	fx.statRepo.EXPECT().CreateStatistic(mock.Anything, mock.Anything).Return(nil)
	fx.expectEvent(service.EventDismissed)

	dismissed, err := fx.service.Dismiss(context.Background(), 7, "")
	require.NoError(t, err)
	assert.False(t, dismissed.Enabled)
	assert.Equal(t, entity.DayMask(0b0111110), dismissed.DayMask)
}

func TestRingerService_Dismiss_NfcMismatchLeavesRinging(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.UseNfc = true
	alarm.NfcTagID = "tag-kitchen"

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil).Twice()

	_, err := fx.service.Dismiss(context.Background(), 7, "tag-bedroom")
	require.ErrorIs(t, err, domainerrors.ErrNfcTagMismatch)
	assert.True(t, alarm.IsActive)

	// A rejected scan is retryable.
	_, err = fx.service.Dismiss(context.Background(), 7, "wrong-again")
	require.ErrorIs(t, err, domainerrors.ErrNfcTagMismatch)
}

func TestRingerService_Dismiss_NfcWithoutEnrolledTagAcceptsAny(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.UseNfc = true
	alarm.NfcTagID = ""

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.expectTransaction(t)
	fx.alarmRepo.EXPECT().UpdateAlarm(mock.Anything, mock.Anything).Return(nil)
	fx.statRepo.EXPECT().
		CreateStatistic(mock.Anything, mock.AnythingOfType("*entity.Statistic")).
		RunAndReturn(func(_ context.Context, stat *entity.Statistic) error {
			require.NotNil(t, stat.UsedNfc)
			assert.True(t, *stat.UsedNfc)

			return nil
		})
	fx.expectEvent(service.EventDismissed)

	_, err := fx.service.Dismiss(context.Background(), 7, "any-tag")
	require.NoError(t, err)
}

func TestRingerService_Dismiss_NotRinging(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.IsActive = false

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)

	_, err := fx.service.Dismiss(context.Background(), 7, "")
	require.ErrorIs(t, err, domainerrors.ErrAlarmNotRinging)
}

func TestRingerService_Dismiss_NotFound(t *testing.T) {
	fx := createTestRingerService(t)

	fx.alarmRepo.EXPECT().
		FindAlarmByID(mock.Anything, int64(404)).
		Return(nil, repository.ErrAlarmNotFound)

	_, err := fx.service.Dismiss(context.Background(), 404, "")
	require.ErrorIs(t, err, domainerrors.ErrAlarmNotFound)
}

func TestRingerService_Snooze_Success(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	wantFireAt := testNow.Add(5 * time.Minute)

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.expectTransaction(t)
	fx.alarmRepo.EXPECT().
		UpdateAlarm(mock.Anything, mock.AnythingOfType("*entity.Alarm")).
		RunAndReturn(func(_ context.Context, updated *entity.Alarm) error {
			assert.False(t, updated.IsActive)
			assert.True(t, updated.Enabled)

			return nil
		})
	fx.statRepo.EXPECT().
		CreateStatistic(mock.Anything, mock.AnythingOfType("*entity.Statistic")).
		RunAndReturn(func(_ context.Context, stat *entity.Statistic) error {
			assert.Equal(t, entity.StatisticSnoozed, stat.Kind)
			require.NotNil(t, stat.SnoozeDuration)
			assert.Equal(t, 5, *stat.SnoozeDuration)

			return nil
		})
	fx.scheduler.EXPECT().AddAt(mock.Anything, alarm, wantFireAt).Return(nil)
	fx.expectEvent(service.EventSnoozed)

	result, err := fx.service.Snooze(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &usecase.SnoozeResult{AlarmID: 7, SnoozeCount: 1, FireAt: wantFireAt}, result)
	assert.Equal(t, 1, fx.snoozeStore.Count(7))
}

func TestRingerService_Snooze_LimitExceeded(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.MaxSnoozeCount = 2
	fx.snoozeStore.Increment(7)
	fx.snoozeStore.Increment(7)

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil).Twice()

	_, err := fx.service.Snooze(context.Background(), 7)
	require.ErrorIs(t, err, domainerrors.ErrSnoozeLimitExceeded)
	assert.True(t, alarm.IsActive)
	assert.Equal(t, 2, fx.snoozeStore.Count(7))

	// The rejection is idempotent; the counter never moves past the limit.
	_, err = fx.service.Snooze(context.Background(), 7)
	require.ErrorIs(t, err, domainerrors.ErrSnoozeLimitExceeded)
	assert.Equal(t, 2, fx.snoozeStore.Count(7))
}

func TestRingerService_Snooze_UnlimitedNeverRejects(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.MaxSnoozeCount = entity.UnlimitedSnoozes
	for range 10 {
		fx.snoozeStore.Increment(7)
	}

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.expectTransaction(t)
	fx.alarmRepo.EXPECT().UpdateAlarm(mock.Anything, mock.Anything).Return(nil)
	fx.statRepo.EXPECT().CreateStatistic(mock.Anything, mock.Anything).Return(nil)
	fx.scheduler.EXPECT().AddAt(mock.Anything, alarm, mock.Anything).Return(nil)
	fx.expectEvent(service.EventSnoozed)

	result, err := fx.service.Snooze(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 11, result.SnoozeCount)
}

func TestRingerService_Snooze_FailedPersistenceKeepsAutoDismissTimer(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.AutoDismissTimeout = 30
	fx.service.startSession(alarm)

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := fx.service.Snooze(context.Background(), 7)
	require.Error(t, err)

	fx.service.mu.Lock()
	timer, armed := fx.service.sessions[7]
	fx.service.mu.Unlock()
	assert.True(t, armed, "auto-dismiss timer must survive a failed snooze")
	assert.NotNil(t, timer)
}

func TestRingerService_Dismiss_FailedPersistenceKeepsAutoDismissTimer(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.AutoDismissTimeout = 30
	fx.service.startSession(alarm)

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := fx.service.Dismiss(context.Background(), 7, "")
	require.Error(t, err)

	fx.service.mu.Lock()
	timer, armed := fx.service.sessions[7]
	fx.service.mu.Unlock()
	assert.True(t, armed, "auto-dismiss timer must survive a failed dismissal")
	assert.NotNil(t, timer)
}

func TestRingerService_Snooze_NotRinging(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.IsActive = false

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)

	_, err := fx.service.Snooze(context.Background(), 7)
	require.ErrorIs(t, err, domainerrors.ErrAlarmNotRinging)
}

func TestRingerService_AutoDismiss_ResolvesAsMissed(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.UseNfc = true
	alarm.NfcTagID = "tag-kitchen" // the timeout bypasses the NFC gate

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)
	fx.expectTransaction(t)
	fx.alarmRepo.EXPECT().UpdateAlarm(mock.Anything, mock.Anything).Return(nil)
	fx.statRepo.EXPECT().
		CreateStatistic(mock.Anything, mock.AnythingOfType("*entity.Statistic")).
		RunAndReturn(func(_ context.Context, stat *entity.Statistic) error {
			assert.Equal(t, entity.StatisticMissed, stat.Kind)

			return nil
		})
	fx.expectEvent(service.EventMissed)

	fx.service.autoDismiss(7)
	assert.False(t, alarm.IsActive)
}

func TestRingerService_AutoDismiss_AlreadyResolvedIsNoop(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.IsActive = false

	fx.alarmRepo.EXPECT().FindAlarmByID(mock.Anything, int64(7)).Return(alarm, nil)

	fx.service.autoDismiss(7)
}

func TestRingerService_StopSessions_DrainsTimers(t *testing.T) {
	fx := createTestRingerService(t)

	alarm := ringingAlarm()
	alarm.AutoDismissTimeout = 60
	fx.service.startSession(alarm)

	fx.service.StopSessions()

	fx.service.mu.Lock()
	defer fx.service.mu.Unlock()
	assert.Empty(t, fx.service.sessions)
}
