// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"chime/internal/domain/entity"
)

// ErrAlarmNotFound is returned when an alarm is not found.
var ErrAlarmNotFound = errors.New("alarm not found")

// AlarmRepository defines the interface for alarm-related database operations.
type AlarmRepository interface {
	// CreateAlarm persists a new alarm and assigns its row ID.
	CreateAlarm(ctx context.Context, alarm *entity.Alarm) error

	// FindAlarmByID retrieves an alarm by its row ID.
	FindAlarmByID(ctx context.Context, id int64) (*entity.Alarm, error)

	// FindAllAlarms retrieves every alarm ordered by hour and minute.
	FindAllAlarms(ctx context.Context) ([]*entity.Alarm, error)

	// FindEnabledAlarms retrieves every enabled alarm; used to restore
	// scheduler registrations after a restart.
	FindEnabledAlarms(ctx context.Context) ([]*entity.Alarm, error)

	// FindActiveAlarms retrieves every alarm currently in the ringing state.
	FindActiveAlarms(ctx context.Context) ([]*entity.Alarm, error)

	// UpdateAlarm persists all mutable fields of an existing alarm.
	UpdateAlarm(ctx context.Context, alarm *entity.Alarm) error

	// DeleteAlarm removes an alarm by its row ID. Statistics referencing the
	// alarm keep their rows; the store nulls their back-reference.
	DeleteAlarm(ctx context.Context, id int64) error
}
