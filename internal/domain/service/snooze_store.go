package service

// SnoozeStore tracks how many times the current ringing cycle of each alarm has
// been postponed. The counter lives outside the alarm record so the ringer and
// the delivery layer share it without a database round-trip; it is reset to
// zero on every terminal transition.
type SnoozeStore interface {
	// Count returns the snooze count for the alarm, zero if never snoozed.
	Count(alarmID int64) int

	// Increment adds one snooze and returns the new count.
	Increment(alarmID int64) int

	// Reset clears the counter for the alarm.
	Reset(alarmID int64)
}
