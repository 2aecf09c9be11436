package impl

import (
	"context"
	"log/slog"
	"time"

	"chime/config"
	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"
	"chime/internal/errors"
	"chime/internal/usecase"
)

type alarmService struct {
	cfg         *config.Config
	alarmRepo   repository.AlarmRepository
	txManager   repository.TransactionManager
	scheduler   usecase.SchedulerUsecase
	snoozeStore service.SnoozeStore
	logger      *slog.Logger
	now         func() time.Time
}

// NewAlarmService creates a new alarm service instance
func NewAlarmService(
	cfg *config.Config,
	alarmRepo repository.AlarmRepository,
	txManager repository.TransactionManager,
	scheduler usecase.SchedulerUsecase,
	snoozeStore service.SnoozeStore,
	logger *slog.Logger,
) usecase.AlarmUsecase {
	return &alarmService{
		cfg:         cfg,
		alarmRepo:   alarmRepo,
		txManager:   txManager,
		scheduler:   scheduler,
		snoozeStore: snoozeStore,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateAlarm persists a new alarm together with its Created statistic, then
// arms the scheduler when the alarm is enabled.
func (s *alarmService) CreateAlarm(ctx context.Context, input *usecase.AlarmInput) (*entity.Alarm, error) {
	alarm := &entity.Alarm{}
	s.apply(alarm, input)

	now := s.now()
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewAlarmRepository().CreateAlarm(ctx, alarm); err != nil {
			return err
		}

		stat := entity.NewStatistic(entity.StatisticCreated, alarm, now)

		return repos.NewStatisticRepository().CreateStatistic(ctx, stat)
	})
	if err != nil {
		return nil, domainerrors.ErrAlarmCreationFailed.WithDetails(err.Error())
	}

	if err := s.scheduler.Add(ctx, alarm); err != nil {
		return nil, errors.Wrapf(err, "failed to arm created alarm %d", alarm.ID)
	}

	s.logger.Info("alarm created",
		slog.Int64("alarm_id", alarm.ID),
		slog.String("name", alarm.Name),
		slog.Bool("enabled", alarm.Enabled))

	return alarm, nil
}

// GetAlarm retrieves a single alarm by ID.
func (s *alarmService) GetAlarm(ctx context.Context, id int64) (*entity.Alarm, error) {
	alarm, err := s.alarmRepo.FindAlarmByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			return nil, domainerrors.ErrAlarmNotFound
		}

		return nil, errors.Wrapf(err, "failed to load alarm %d", id)
	}

	return alarm, nil
}

// ListAlarms retrieves every alarm.
func (s *alarmService) ListAlarms(ctx context.Context) ([]*entity.Alarm, error) {
	alarms, err := s.alarmRepo.FindAllAlarms(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alarms")
	}

	return alarms, nil
}

// UpdateAlarm applies the input to an existing alarm and re-arms its trigger.
func (s *alarmService) UpdateAlarm(ctx context.Context, id int64, input *usecase.AlarmInput) (*entity.Alarm, error) {
	alarm, err := s.alarmRepo.FindAlarmByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			return nil, domainerrors.ErrAlarmNotFound
		}

		return nil, errors.Wrapf(err, "failed to load alarm %d", id)
	}

	s.apply(alarm, input)
	if err := s.alarmRepo.UpdateAlarm(ctx, alarm); err != nil {
		return nil, domainerrors.ErrAlarmUpdateFailed.WithDetails(err.Error())
	}

	// An edit invalidates any pending occurrence, snoozed ones included.
	if err := s.scheduler.Update(ctx, alarm); err != nil {
		return nil, errors.Wrapf(err, "failed to re-arm updated alarm %d", id)
	}

	s.logger.Info("alarm updated", slog.Int64("alarm_id", id))

	return alarm, nil
}

// DeleteAlarm removes the alarm and records a Deleted statistic in the same
// transaction. The statistic keeps the alarm's snapshot; the store nulls its
// back-reference when the row goes away.
func (s *alarmService) DeleteAlarm(ctx context.Context, id int64) error {
	alarm, err := s.alarmRepo.FindAlarmByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			return domainerrors.ErrAlarmNotFound
		}

		return errors.Wrapf(err, "failed to load alarm %d", id)
	}

	now := s.now()
	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		stat := entity.NewStatistic(entity.StatisticDeleted, alarm, now)
		if err := repos.NewStatisticRepository().CreateStatistic(ctx, stat); err != nil {
			return err
		}

		return repos.NewAlarmRepository().DeleteAlarm(ctx, id)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete alarm %d", id)
	}

	if err := s.scheduler.Cancel(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to cancel trigger for deleted alarm %d", id)
	}
	s.snoozeStore.Reset(id)

	s.logger.Info("alarm deleted", slog.Int64("alarm_id", id))

	return nil
}

// apply copies the input onto the alarm, substituting configured defaults for
// the optional fields.
func (s *alarmService) apply(alarm *entity.Alarm, input *usecase.AlarmInput) {
	alarm.Enabled = input.Enabled
	alarm.Hour = input.Hour
	alarm.Minute = input.Minute
	alarm.DayMask = input.DayMask
	alarm.Repeat = input.Repeat
	alarm.UseNfc = input.UseNfc
	alarm.NfcTagID = input.NfcTagID
	alarm.MediaPath = input.MediaPath
	alarm.Volume = input.Volume
	alarm.Vibrate = input.Vibrate
	alarm.Name = input.Name
	alarm.DismissEarlyWindow = input.DismissEarlyWindow

	alarm.MaxSnoozeCount = s.cfg.Alarm.MaxSnoozeCount
	if input.MaxSnoozeCount != nil {
		alarm.MaxSnoozeCount = *input.MaxSnoozeCount
	}
	alarm.SnoozeDuration = s.cfg.Alarm.SnoozeDuration
	if input.SnoozeDuration != nil {
		alarm.SnoozeDuration = *input.SnoozeDuration
	}
	alarm.AutoDismissTimeout = s.cfg.Alarm.AutoDismissTimeout
	if input.AutoDismissTimeout != nil {
		alarm.AutoDismissTimeout = *input.AutoDismissTimeout
	}
}
