package model

import (
    "time"

    "github.com/google/uuid"
)

// PreReservation captures a customer's treatment history from before
// the online system existed: how many sessions they already had on an
// area schedule and when the last one took place.  Admins enter these
// at the desk; customers can only read their own.
//
// Fields:
//  ID              – UUID primary key.
//  UserID          – customer the history belongs to.
//  AreaScheduleID  – area schedule the earlier sessions were booked on.
//  SessionCount    – number of completed sessions (positive).
//  LastSessionDate – date of the most recent session.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type PreReservation struct {
    ID              uuid.UUID // pre_reservations.id
    UserID          uint64    // pre_reservations.user_id
    AreaScheduleID  uuid.UUID // pre_reservations.area_schedule_id
    SessionCount    int64     // pre_reservations.session_count
    LastSessionDate time.Time // pre_reservations.last_session_date (DATE)
    CreatedAt       time.Time // pre_reservations.created_at
    UpdatedAt       time.Time // pre_reservations.updated_at
}

// Validate checks the record's self-consistency before insert or update.
func (p *PreReservation) Validate() error {
    if p.UserID == 0 {
        return invalid("user_id", "user is required")
    }
    if p.AreaScheduleID == uuid.Nil {
        return invalid("area_schedule_id", "area schedule is required")
    }
    if p.SessionCount <= 0 {
        return invalid("session_count", "session count must be positive")
    }
    if p.LastSessionDate.IsZero() {
        return invalid("last_session_date", "last session date cannot be empty")
    }
    return nil
}
