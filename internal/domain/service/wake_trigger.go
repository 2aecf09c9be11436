// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"
	"time"
)

// TriggerHandler is invoked when a wake trigger fires, carrying the alarm's identity.
type TriggerHandler func(ctx context.Context, alarmID int64)

// WakeTriggerService is the OS-style wake-trigger collaborator: registrations
// are keyed by alarm ID, a second registration for the same ID replaces the
// first, and cancelling an unknown ID is a silent no-op. Registrations do not
// survive a process restart; the scheduler re-registers every enabled alarm on
// boot.
type WakeTriggerService interface {
	// Schedule registers (or replaces) the wake trigger for the alarm.
	Schedule(alarmID int64, fireAt time.Time)

	// Cancel removes any registration for the alarm; no-op if none exists.
	Cancel(alarmID int64)

	// NextFireTime reports the pending fire time for the alarm, if any. This
	// backs the upcoming-alarm preview the same way the parallel "show"
	// trigger previews a pending alarm.
	NextFireTime(alarmID int64) (time.Time, bool)
}
