// Package impl contains the implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"chime/internal/domain/entity"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"
	"chime/internal/errors"
	"chime/internal/usecase"
)

type schedulerService struct {
	alarmRepo   repository.AlarmRepository
	txManager   repository.TransactionManager
	triggerSvc  service.WakeTriggerService
	snoozeStore service.SnoozeStore
	logger      *slog.Logger
	now         func() time.Time
}

// NewSchedulerService creates a new scheduler service instance
func NewSchedulerService(
	alarmRepo repository.AlarmRepository,
	txManager repository.TransactionManager,
	triggerSvc service.WakeTriggerService,
	snoozeStore service.SnoozeStore,
	logger *slog.Logger,
) usecase.SchedulerUsecase {
	return &schedulerService{
		alarmRepo:   alarmRepo,
		txManager:   txManager,
		triggerSvc:  triggerSvc,
		snoozeStore: snoozeStore,
		logger:      logger,
		now:         time.Now,
	}
}

// Add registers the wake trigger for the alarm's next occurrence.
func (s *schedulerService) Add(ctx context.Context, alarm *entity.Alarm) error {
	if alarm == nil || !alarm.Enabled {
		return nil
	}

	fireAt := alarm.NextOccurrence(s.now())
	s.triggerSvc.Schedule(alarm.ID, fireAt)
	s.logger.Info("alarm armed",
		slog.Int64("alarm_id", alarm.ID),
		slog.Time("fire_at", fireAt))

	return nil
}

// AddAt registers the wake trigger for an explicit time; snooze re-arming
// bypasses the next-occurrence computation.
func (s *schedulerService) AddAt(ctx context.Context, alarm *entity.Alarm, fireAt time.Time) error {
	if alarm == nil {
		return nil
	}

	s.triggerSvc.Schedule(alarm.ID, fireAt)
	s.logger.Info("alarm armed at explicit time",
		slog.Int64("alarm_id", alarm.ID),
		slog.Time("fire_at", fireAt))

	return nil
}

// Cancel removes the alarm's trigger registration, if any.
func (s *schedulerService) Cancel(ctx context.Context, alarmID int64) error {
	s.triggerSvc.Cancel(alarmID)

	return nil
}

// Update re-arms the alarm: cancel first so a stale registration can never
// outlive an edit, then add when the alarm is still enabled.
func (s *schedulerService) Update(ctx context.Context, alarm *entity.Alarm) error {
	if alarm == nil {
		return nil
	}

	s.triggerSvc.Cancel(alarm.ID)

	return s.Add(ctx, alarm)
}

// UpdateAll re-arms every alarm in the collection.
func (s *schedulerService) UpdateAll(ctx context.Context, alarms []*entity.Alarm) error {
	var errs []error
	for _, alarm := range alarms {
		if err := s.Update(ctx, alarm); err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to re-arm alarm %d", alarm.ID))
		}
	}

	return errors.Join(errs...)
}

// RestoreAll re-registers every enabled alarm from the store. Trigger
// registrations do not survive a restart, so this runs on every boot.
func (s *schedulerService) RestoreAll(ctx context.Context) error {
	alarms, err := s.alarmRepo.FindEnabledAlarms(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load enabled alarms")
	}

	if err := s.UpdateAll(ctx, alarms); err != nil {
		return err
	}

	s.logger.Info("scheduler restored", slog.Int("alarms", len(alarms)))

	return nil
}

// CancelAllActive force-resolves every ringing alarm as missed. Each alarm's
// state mutation and its statistic row commit in one transaction.
func (s *schedulerService) CancelAllActive(ctx context.Context) error {
	active, err := s.alarmRepo.FindActiveAlarms(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load active alarms")
	}

	var errs []error
	for _, alarm := range active {
		now := s.now()
		err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			alarm.IsActive = false
			if alarm.IsOneShot() {
				alarm.Enabled = false
			}
			if err := repos.NewAlarmRepository().UpdateAlarm(ctx, alarm); err != nil {
				return err
			}

			stat := entity.NewStatistic(entity.StatisticMissed, alarm, now)

			return repos.NewStatisticRepository().CreateStatistic(ctx, stat)
		})
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to resolve active alarm %d", alarm.ID))
			continue
		}

		s.snoozeStore.Reset(alarm.ID)
		s.triggerSvc.Cancel(alarm.ID)
		s.logger.Warn("active alarm resolved as missed on shutdown", slog.Int64("alarm_id", alarm.ID))
	}

	return errors.Join(errs...)
}

// Upcoming reports the soonest pending occurrence across all enabled alarms.
func (s *schedulerService) Upcoming(ctx context.Context) (*usecase.UpcomingAlarm, error) {
	alarms, err := s.alarmRepo.FindEnabledAlarms(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load enabled alarms")
	}

	var next *usecase.UpcomingAlarm
	for _, alarm := range alarms {
		fireAt, ok := s.triggerSvc.NextFireTime(alarm.ID)
		if !ok {
			continue
		}
		if next == nil || fireAt.Before(next.FireAt) {
			next = &usecase.UpcomingAlarm{
				AlarmID: alarm.ID,
				Name:    alarm.Name,
				FireAt:  fireAt,
			}
		}
	}

	return next, nil
}
