package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "chime/internal/delivery/context"
	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	"chime/internal/domain/lifecycle"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"
	"chime/internal/errors"
	"chime/internal/usecase"
)

type ringerService struct {
	alarmRepo   repository.AlarmRepository
	txManager   repository.TransactionManager
	scheduler   usecase.SchedulerUsecase
	snoozeStore service.SnoozeStore
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time

	mu       sync.Mutex
	sessions map[int64]*time.Timer // ringing alarm ID -> auto-dismiss timer
}

// NewRingerService creates a new ringer service instance
func NewRingerService(
	alarmRepo repository.AlarmRepository,
	txManager repository.TransactionManager,
	scheduler usecase.SchedulerUsecase,
	snoozeStore service.SnoozeStore,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.RingerUsecase {
	return &ringerService{
		alarmRepo:   alarmRepo,
		txManager:   txManager,
		scheduler:   scheduler,
		snoozeStore: snoozeStore,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
		sessions:    make(map[int64]*time.Timer),
	}
}

// HandleTrigger transitions the alarm into the ringing state. The next
// occurrence of a repeating alarm is armed here, before any user interaction,
// so an abandoned ring never silences the following day.
func (s *ringerService) HandleTrigger(ctx context.Context, alarmID int64) error {
	alarm, err := s.alarmRepo.FindAlarmByID(ctx, alarmID)
	if err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			s.logger.Info("trigger fired for deleted alarm", slog.Int64("alarm_id", alarmID))
			_ = s.scheduler.Cancel(ctx, alarmID)

			return nil
		}

		return errors.Wrapf(err, "failed to load triggered alarm %d", alarmID)
	}

	if !alarm.Enabled {
		s.logger.Info("trigger fired for disabled alarm", slog.Int64("alarm_id", alarmID))
		_ = s.scheduler.Cancel(ctx, alarmID)

		return nil
	}

	alarm.IsActive = true
	if err := s.alarmRepo.UpdateAlarm(ctx, alarm); err != nil {
		return errors.Wrapf(err, "failed to mark alarm %d ringing", alarmID)
	}

	if alarm.Repeat {
		if err := s.scheduler.Add(ctx, alarm); err != nil {
			s.logger.Error("failed to arm next occurrence",
				slog.Int64("alarm_id", alarmID), slog.Any("error", err))
		}
	}

	s.startSession(alarm)
	s.logger.Info("alarm ringing",
		slog.Int64("alarm_id", alarmID),
		slog.String("name", alarm.Name))

	s.publish(ctx, service.EventRinging, alarm, nil)

	return nil
}

// Dismiss resolves a ringing alarm by user action, subject to the NFC gate.
func (s *ringerService) Dismiss(ctx context.Context, alarmID int64, scannedTagID string) (*entity.Alarm, error) {
	alarm, err := s.alarmRepo.FindAlarmByID(ctx, alarmID)
	if err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			return nil, domainerrors.ErrAlarmNotFound
		}

		return nil, errors.Wrapf(err, "failed to load alarm %d", alarmID)
	}

	if !alarm.IsActive {
		return nil, domainerrors.ErrAlarmNotRinging
	}

	// A rejected scan leaves the alarm ringing and the counter untouched.
	if !alarm.CanDismissWithTag(scannedTagID) {
		s.logger.Warn("dismiss rejected, NFC tag mismatch", slog.Int64("alarm_id", alarmID))

		return nil, domainerrors.ErrNfcTagMismatch
	}

	usedNfc := alarm.UseNfc && scannedTagID != ""
	stat := entity.NewStatistic(entity.StatisticDismissed, alarm, s.now()).WithUsedNfc(usedNfc)
	if err := s.finalize(ctx, alarm, stat); err != nil {
		return nil, err
	}

	s.logger.Info("alarm dismissed",
		slog.Int64("alarm_id", alarmID),
		slog.Bool("used_nfc", usedNfc))

	event := &service.AlarmEvent{UsedNfc: usedNfc}
	s.publish(ctx, service.EventDismissed, alarm, event)

	return alarm, nil
}

// Snooze postpones a ringing alarm by its configured duration, enforcing the
// per-cycle limit. The recurring schedule is untouched; only a single
// occurrence is re-armed.
func (s *ringerService) Snooze(ctx context.Context, alarmID int64) (*usecase.SnoozeResult, error) {
	alarm, err := s.alarmRepo.FindAlarmByID(ctx, alarmID)
	if err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			return nil, domainerrors.ErrAlarmNotFound
		}

		return nil, errors.Wrapf(err, "failed to load alarm %d", alarmID)
	}

	if !alarm.IsActive {
		return nil, domainerrors.ErrAlarmNotRinging
	}

	count := s.snoozeStore.Count(alarmID)
	if !alarm.CanSnooze(count) {
		s.logger.Warn("snooze rejected, limit reached",
			slog.Int64("alarm_id", alarmID),
			slog.Int("count", count),
			slog.Int("max", alarm.MaxSnoozeCount))

		return nil, domainerrors.ErrSnoozeLimitExceeded
	}

	now := s.now()
	fireAt := now.Add(alarm.SnoozePeriod())

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		alarm.IsActive = false
		if err := repos.NewAlarmRepository().UpdateAlarm(ctx, alarm); err != nil {
			return err
		}

		stat := entity.NewStatistic(entity.StatisticSnoozed, alarm, now).
			WithSnoozeDuration(alarm.SnoozeDuration)

		return repos.NewStatisticRepository().CreateStatistic(ctx, stat)
	})
	if err != nil {
		// The alarm is still ringing; the auto-dismiss timer keeps the ring bounded.
		return nil, errors.Wrapf(err, "failed to persist snooze of alarm %d", alarmID)
	}

	s.stopSession(alarmID)
	newCount := s.snoozeStore.Increment(alarmID)

	if err := s.scheduler.AddAt(ctx, alarm, fireAt); err != nil {
		return nil, errors.Wrapf(err, "failed to re-arm snoozed alarm %d", alarmID)
	}

	s.logger.Info("alarm snoozed",
		slog.Int64("alarm_id", alarmID),
		slog.Int("count", newCount),
		slog.Time("fire_at", fireAt))

	event := &service.AlarmEvent{FireAt: fireAt, SnoozeDuration: alarm.SnoozeDuration}
	s.publish(ctx, service.EventSnoozed, alarm, event)

	return &usecase.SnoozeResult{
		AlarmID:     alarmID,
		SnoozeCount: newCount,
		FireAt:      fireAt,
	}, nil
}

// StopSessions stops every auto-dismiss timer without resolving the alarms.
// The shutdown path resolves them through the scheduler afterwards.
func (s *ringerService) StopSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.sessions {
		if timer != nil {
			timer.Stop()
		}
		delete(s.sessions, id)
	}
}

// startSession arms the auto-dismiss timer for a ringing alarm. A zero timeout
// means the alarm rings until resolved.
func (s *ringerService) startSession(alarm *entity.Alarm) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[alarm.ID]; ok && existing != nil {
		existing.Stop()
	}

	if alarm.AutoDismissTimeout <= 0 {
		s.sessions[alarm.ID] = nil

		return
	}

	id := alarm.ID
	s.sessions[id] = time.AfterFunc(alarm.AutoDismissPeriod(), func() {
		s.autoDismiss(id)
	})
}

// stopSession stops and forgets the auto-dismiss timer for the alarm.
func (s *ringerService) stopSession(alarmID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.sessions[alarmID]; ok {
		if timer != nil {
			timer.Stop()
		}
		delete(s.sessions, alarmID)
	}
}

// autoDismiss resolves an unattended ring as missed. It bypasses the NFC gate;
// the timeout, not the user, ends the ring.
func (s *ringerService) autoDismiss(alarmID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	alarm, err := s.alarmRepo.FindAlarmByID(ctx, alarmID)
	if err != nil {
		s.logger.Error("auto-dismiss failed to load alarm",
			slog.Int64("alarm_id", alarmID), slog.Any("error", err))

		return
	}
	if !alarm.IsActive {
		return
	}

	stat := entity.NewStatistic(entity.StatisticMissed, alarm, s.now())
	if err := s.finalize(ctx, alarm, stat); err != nil {
		s.logger.Error("auto-dismiss failed to resolve alarm",
			slog.Int64("alarm_id", alarmID), slog.Any("error", err))

		return
	}

	s.logger.Warn("alarm missed", slog.Int64("alarm_id", alarmID), slog.String("name", alarm.Name))
	s.publish(ctx, service.EventMissed, alarm, nil)
}

// finalize commits a terminal transition: alarm deactivated (one-shot alarms
// also disabled, day selection preserved) and statistic row appended in one
// transaction. The auto-dismiss timer and the snooze counter are cleared only
// after the commit, so a failed transaction leaves the ring time-bounded.
func (s *ringerService) finalize(ctx context.Context, alarm *entity.Alarm, stat *entity.Statistic) error {
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		alarm.IsActive = false
		if alarm.IsOneShot() {
			alarm.Enabled = false
		}
		if err := repos.NewAlarmRepository().UpdateAlarm(ctx, alarm); err != nil {
			return err
		}

		return repos.NewStatisticRepository().CreateStatistic(ctx, stat)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to finalize alarm %d", alarm.ID)
	}

	s.stopSession(alarm.ID)
	s.snoozeStore.Reset(alarm.ID)

	return nil
}

// publish sends a lifecycle event to the notification worker. Publishing is
// best effort; a failure is logged and never fails the transition.
func (s *ringerService) publish(ctx context.Context, kind string, alarm *entity.Alarm, extra *service.AlarmEvent) {
	event := &service.AlarmEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Kind:      kind,
		AlarmID:   alarm.ID,
		Name:      alarm.Name,
		Hour:      alarm.Hour,
		Minute:    alarm.Minute,
	}
	if extra != nil {
		event.FireAt = extra.FireAt
		event.UsedNfc = extra.UsedNfc
		event.SnoozeDuration = extra.SnoozeDuration
	}

	if err := s.publisher.PublishAlarmEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish alarm event",
			slog.String("kind", kind),
			slog.Int64("alarm_id", alarm.ID),
			slog.Any("error", err))
	}
}
