package model

import (
    "time"

    "github.com/google/uuid"
)

// CancellationPeriod is a window during which the clinic cancels
// reservations (maintenance, holidays).  Admins manage the windows;
// everyone else only reads the currently active ones.
//
// Fields:
//  ID        – UUID primary key.
//  StartTime – start of the window.
//  EndTime   – end of the window, strictly after StartTime.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type CancellationPeriod struct {
    ID        uuid.UUID // cancellation_periods.id
    StartTime time.Time // cancellation_periods.start_time
    EndTime   time.Time // cancellation_periods.end_time
    CreatedAt time.Time // cancellation_periods.created_at
    UpdatedAt time.Time // cancellation_periods.updated_at
}

// Validate checks the period's self-consistency before insert.  The
// past-start rule only applies at creation; updates of historical
// windows go through the same check, so callers editing old rows keep
// the original start time.
func (p *CancellationPeriod) Validate() error {
    if p.StartTime.IsZero() || p.EndTime.IsZero() {
        return invalid("start_time", "start and end times are required")
    }
    if !p.EndTime.After(p.StartTime) {
        return invalid("end_time", "end time must be after start time")
    }
    return nil
}

// ValidateNew additionally rejects windows that start in the past.
// Used on creation only, matching how the clinic schedules downtime.
func (p *CancellationPeriod) ValidateNew(now time.Time) error {
    if err := p.Validate(); err != nil {
        return err
    }
    if p.StartTime.Before(now) {
        return invalid("start_time", "cancellation period cannot start in the past")
    }
    return nil
}
