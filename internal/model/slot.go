package model

import (
    "time"

    "github.com/google/uuid"
)

// Time slots accepted by slots.time_slot.  The clinic runs two-hour
// windows around the clock with a gap between 14:00 and 15:00 and
// between 05:00 and 08:00.
const (
    Slot8To10  = "8-10"
    Slot10To12 = "10-12"
    Slot12To14 = "12-14"
    Slot15To17 = "15-17"
    Slot17To19 = "17-19"
    Slot19To21 = "19-21"
    Slot21To23 = "21-23"
    Slot23To1  = "23-1"
    Slot1To3   = "1-3"
    Slot3To5   = "3-5"
)

// ValidTimeSlot reports whether ts is one of the bookable windows.
func ValidTimeSlot(ts string) bool {
    switch ts {
    case Slot8To10, Slot10To12, Slot12To14, Slot15To17, Slot17To19,
        Slot19To21, Slot21To23, Slot23To1, Slot1To3, Slot3To5:
        return true
    default:
        return false
    }
}

// Slot is a bookable reservation window run by one operator on one
// date.  The combination (date, time slot, operator) is unique, so two
// slots for the same operator and window conflict.
//
// Fields:
//  ID         – UUID primary key.
//  OperatorID – staff member running the slot.
//  Date       – calendar date of the slot.
//  Period     – MORNING or AFTERNOON.
//  TimeSlot   – two-hour window identifier (e.g. "8-10").
//  Duration   – total reservation duration in minutes (positive).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Slot struct {
    ID         uuid.UUID // slots.id
    OperatorID uint64    // slots.operator_id
    Date       time.Time // slots.date (DATE)
    Period     string    // slots.period
    TimeSlot   string    // slots.time_slot
    Duration   int64     // slots.duration
    CreatedAt  time.Time // slots.created_at
    UpdatedAt  time.Time // slots.updated_at
}

// Validate checks the slot's self-consistency before insert or update.
func (s *Slot) Validate() error {
    if s.OperatorID == 0 {
        return invalid("operator_id", "operator is required")
    }
    if s.Date.IsZero() {
        return invalid("date", "date cannot be empty")
    }
    if !ValidPeriod(s.Period) {
        return invalid("period", "invalid day period")
    }
    if !ValidTimeSlot(s.TimeSlot) {
        return invalid("time_slot", "invalid time slot")
    }
    if s.Duration <= 0 {
        return invalid("duration", "duration must be positive")
    }
    return nil
}
