// Package trigger provides the in-process wake-trigger registry. It plays the
// role an OS alarm service would: identity-keyed registrations that replace
// rather than stack, silent cancellation, and no persistence across restarts.
package trigger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chime/internal/domain/service"
)

type registration struct {
	timer  *time.Timer
	fireAt time.Time
}

// Registry implements service.WakeTriggerService with one time.Timer per
// registered alarm ID. The handler is bound after construction so the
// scheduler and the ringer can be wired without a construction cycle.
type Registry struct {
	mu      sync.Mutex
	entries map[int64]*registration
	handler service.TriggerHandler
	logger  *slog.Logger
}

// NewRegistry creates an empty trigger registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		entries: make(map[int64]*registration),
		logger:  logger,
	}
}

// Bind installs the handler invoked when a trigger fires. Triggers firing
// before Bind are dropped with a warning.
func (r *Registry) Bind(handler service.TriggerHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handler = handler
}

// Schedule registers (or replaces) the wake trigger for the alarm.
func (r *Registry) Schedule(alarmID int64, fireAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[alarmID]; ok {
		existing.timer.Stop()
	}

	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	r.entries[alarmID] = &registration{
		timer:  time.AfterFunc(delay, func() { r.fire(alarmID) }),
		fireAt: fireAt,
	}

	r.logger.Debug("Wake trigger registered",
		slog.Int64("alarm_id", alarmID),
		slog.Time("fire_at", fireAt),
	)
}

// Cancel removes any registration for the alarm; no-op if none exists.
func (r *Registry) Cancel(alarmID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[alarmID]
	if !ok {
		return
	}

	existing.timer.Stop()
	delete(r.entries, alarmID)

	r.logger.Debug("Wake trigger cancelled", slog.Int64("alarm_id", alarmID))
}

// NextFireTime reports the pending fire time for the alarm, if any.
func (r *Registry) NextFireTime(alarmID int64) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[alarmID]
	if !ok {
		return time.Time{}, false
	}

	return existing.fireAt, true
}

// Shutdown stops every pending timer. Registrations are not persisted; the
// scheduler rebuilds them from the alarm store on the next boot.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.entries {
		existing.timer.Stop()
		delete(r.entries, id)
	}
}

func (r *Registry) fire(alarmID int64) {
	r.mu.Lock()
	delete(r.entries, alarmID)
	handler := r.handler
	r.mu.Unlock()

	if handler == nil {
		r.logger.Warn("Wake trigger fired with no handler bound",
			slog.Int64("alarm_id", alarmID),
		)

		return
	}

	handler(context.Background(), alarmID)
}
