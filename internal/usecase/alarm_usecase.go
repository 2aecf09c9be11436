// Package usecase defines the interfaces for the application's use cases.
package usecase

import (
	"context"

	"chime/internal/domain/entity"
)

// AlarmInput carries the caller-editable alarm fields. Pointer fields fall
// back to the configured defaults when nil.
type AlarmInput struct {
	Enabled            bool
	Hour               int
	Minute             int
	DayMask            entity.DayMask
	Repeat             bool
	UseNfc             bool
	NfcTagID           string
	MediaPath          string
	Volume             int
	Vibrate            bool
	Name               string
	MaxSnoozeCount     *int
	SnoozeDuration     *int
	AutoDismissTimeout *int
	DismissEarlyWindow int
}

// AlarmUsecase defines the interface for alarm management use cases.
type AlarmUsecase interface {
	// CreateAlarm persists a new alarm, records a Created statistic, and arms
	// the scheduler when the alarm is enabled.
	CreateAlarm(ctx context.Context, input *AlarmInput) (*entity.Alarm, error)

	// GetAlarm retrieves a single alarm by ID.
	GetAlarm(ctx context.Context, id int64) (*entity.Alarm, error)

	// ListAlarms retrieves every alarm.
	ListAlarms(ctx context.Context) ([]*entity.Alarm, error)

	// UpdateAlarm applies the input to an existing alarm and re-arms its
	// trigger (cancel-then-add).
	UpdateAlarm(ctx context.Context, id int64, input *AlarmInput) (*entity.Alarm, error)

	// DeleteAlarm removes the alarm, cancels its trigger, and records a
	// Deleted statistic. Historical statistics keep their rows with a nulled
	// alarm reference.
	DeleteAlarm(ctx context.Context, id int64) error
}
