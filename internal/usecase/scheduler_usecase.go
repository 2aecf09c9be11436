package usecase

import (
	"context"
	"time"

	"chime/internal/domain/entity"
)

// UpcomingAlarm previews the next pending occurrence across all enabled alarms.
type UpcomingAlarm struct {
	AlarmID int64     `json:"alarm_id"`
	Name    string    `json:"name"`
	FireAt  time.Time `json:"fire_at"`
}

// SchedulerUsecase maintains the invariant that exactly one wake trigger
// exists per enabled alarm, pointing at its next valid occurrence.
type SchedulerUsecase interface {
	// Add computes the alarm's next occurrence and registers its wake
	// trigger. No-op for nil or disabled alarms.
	Add(ctx context.Context, alarm *entity.Alarm) error

	// AddAt registers a wake trigger for a caller-supplied time instead of a
	// computed one; used for snooze re-arming.
	AddAt(ctx context.Context, alarm *entity.Alarm, fireAt time.Time) error

	// Cancel removes any trigger for the alarm ID; silently no-ops when none
	// exists.
	Cancel(ctx context.Context, alarmID int64) error

	// Update is Cancel followed by Add, the only safe way to change an armed
	// alarm's time.
	Update(ctx context.Context, alarm *entity.Alarm) error

	// UpdateAll applies Update to every alarm in the collection.
	UpdateAll(ctx context.Context, alarms []*entity.Alarm) error

	// RestoreAll re-registers every enabled alarm from the store; triggers do
	// not survive a restart.
	RestoreAll(ctx context.Context) error

	// CancelAllActive force-resolves every ringing alarm, recording a Missed
	// outcome, and cancels its trigger. Used on shutdown so a restart never
	// resumes into a phantom active state.
	CancelAllActive(ctx context.Context) error

	// Upcoming reports the soonest pending occurrence, or nil when nothing is
	// armed.
	Upcoming(ctx context.Context) (*UpcomingAlarm, error)
}
