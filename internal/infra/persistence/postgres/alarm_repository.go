// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	"chime/internal/domain/repository"
	"chime/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alarmRepository implements the repository.AlarmRepository interface.
type alarmRepository struct {
	db *gorm.DB
}

// NewAlarmRepository is the constructor for alarmRepository.
func NewAlarmRepository(db *gorm.DB) repository.AlarmRepository {
	return &alarmRepository{
		db: db,
	}
}

// CreateAlarm persists a new alarm and assigns its row ID.
func (repo *alarmRepository) CreateAlarm(ctx context.Context, alarm *entity.Alarm) error {
	alarmM := fromAlarmDomain(alarm)

	if err := repo.db.WithContext(ctx).Create(alarmM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrAlarmCreationFailed.WrapMessage("alarm fields out of range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAlarmCreationFailed.WrapMessage("missing required alarm information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alarm")
	}

	// Update the entity with generated values
	alarm.ID = alarmM.ID
	alarm.CreatedAt = alarmM.CreatedAt
	alarm.UpdatedAt = alarmM.UpdatedAt

	return nil
}

// FindAlarmByID retrieves an alarm by its row ID.
func (repo *alarmRepository) FindAlarmByID(ctx context.Context, id int64) (*entity.Alarm, error) {
	var alarmM model.AlarmModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alarmM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find alarm by ID")
	}

	return toAlarmDomain(&alarmM), nil
}

// FindAllAlarms retrieves every alarm ordered by hour and minute.
func (repo *alarmRepository) FindAllAlarms(ctx context.Context) ([]*entity.Alarm, error) {
	return repo.findAlarms(ctx, repo.db.WithContext(ctx).Order("hour, minute, id"))
}

// FindEnabledAlarms retrieves every enabled alarm.
func (repo *alarmRepository) FindEnabledAlarms(ctx context.Context) ([]*entity.Alarm, error) {
	return repo.findAlarms(ctx, repo.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("hour, minute, id"))
}

// FindActiveAlarms retrieves every alarm currently in the ringing state.
func (repo *alarmRepository) FindActiveAlarms(ctx context.Context) ([]*entity.Alarm, error) {
	return repo.findAlarms(ctx, repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id"))
}

func (repo *alarmRepository) findAlarms(_ context.Context, query *gorm.DB) ([]*entity.Alarm, error) {
	var alarmModels []*model.AlarmModel

	if err := query.Find(&alarmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alarms")
	}

	alarms := make([]*entity.Alarm, 0, len(alarmModels))
	for _, alarmM := range alarmModels {
		alarms = append(alarms, toAlarmDomain(alarmM))
	}

	return alarms, nil
}

// UpdateAlarm persists all mutable fields of an existing alarm.
func (repo *alarmRepository) UpdateAlarm(ctx context.Context, alarm *entity.Alarm) error {
	alarmM := fromAlarmDomain(alarm)

	result := repo.db.WithContext(ctx).
		Model(&model.AlarmModel{}).
		Where("id = ?", alarm.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(alarmM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrAlarmUpdateFailed.WrapMessage("alarm fields out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update alarm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlarmNotFound
	}

	return nil
}

// DeleteAlarm removes an alarm by its row ID. Statistic rows referencing the
// alarm are kept; the ON DELETE SET NULL constraint clears their back-reference.
func (repo *alarmRepository) DeleteAlarm(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AlarmModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete alarm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlarmNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAlarmDomain converts a GORM AlarmModel to a domain Alarm entity.
func toAlarmDomain(data *model.AlarmModel) *entity.Alarm {
	if data == nil {
		return nil
	}

	return &entity.Alarm{
		ID:                 data.ID,
		Enabled:            data.Enabled,
		Hour:               data.Hour,
		Minute:             data.Minute,
		DayMask:            entity.DayMask(data.DayMask),
		Repeat:             data.Repeat,
		UseNfc:             data.UseNfc,
		NfcTagID:           data.NfcTagID,
		MediaPath:          data.MediaPath,
		Volume:             data.Volume,
		Vibrate:            data.Vibrate,
		Name:               data.Name,
		MaxSnoozeCount:     data.MaxSnoozeCount,
		SnoozeDuration:     data.SnoozeDuration,
		AutoDismissTimeout: data.AutoDismissTimeout,
		DismissEarlyWindow: data.DismissEarlyWindow,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromAlarmDomain converts a domain Alarm entity to a GORM AlarmModel.
func fromAlarmDomain(data *entity.Alarm) *model.AlarmModel {
	if data == nil {
		return nil
	}

	return &model.AlarmModel{
		ID:                 data.ID,
		Enabled:            data.Enabled,
		Hour:               data.Hour,
		Minute:             data.Minute,
		DayMask:            uint8(data.DayMask),
		Repeat:             data.Repeat,
		UseNfc:             data.UseNfc,
		NfcTagID:           data.NfcTagID,
		MediaPath:          data.MediaPath,
		Volume:             data.Volume,
		Vibrate:            data.Vibrate,
		Name:               data.Name,
		MaxSnoozeCount:     data.MaxSnoozeCount,
		SnoozeDuration:     data.SnoozeDuration,
		AutoDismissTimeout: data.AutoDismissTimeout,
		DismissEarlyWindow: data.DismissEarlyWindow,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
