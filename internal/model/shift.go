package model

import (
    "time"

    "github.com/google/uuid"
)

// Day periods accepted by operator_shifts.period and slots.period.
const (
    PeriodMorning   = "MORNING"
    PeriodAfternoon = "AFTERNOON"
)

// ValidPeriod reports whether period is a known day period.
func ValidPeriod(period string) bool {
    return period == PeriodMorning || period == PeriodAfternoon
}

// OperatorShift assigns a staff member to a morning or afternoon shift
// on a given date.  The combination (operator, shift date, period) is
// unique; a second insert for the same triple is a conflict.  The
// display name is filled from the operator's username when blank.
//
// Fields:
//  ID           – UUID primary key.
//  OperatorID   – staff member working the shift.
//  OperatorName – display name of the operator (auto-filled when blank).
//  ShiftDate    – date of the shift.
//  Period       – MORNING or AFTERNOON.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type OperatorShift struct {
    ID           uuid.UUID // operator_shifts.id
    OperatorID   uint64    // operator_shifts.operator_id
    OperatorName string    // operator_shifts.operator_name
    ShiftDate    time.Time // operator_shifts.shift_date (DATE)
    Period       string    // operator_shifts.period
    CreatedAt    time.Time // operator_shifts.created_at
    UpdatedAt    time.Time // operator_shifts.updated_at
}

// Validate checks the shift's self-consistency before insert or update.
func (s *OperatorShift) Validate() error {
    if s.OperatorID == 0 {
        return invalid("operator_id", "operator is required")
    }
    if s.ShiftDate.IsZero() {
        return invalid("shift_date", "shift date cannot be empty")
    }
    if !ValidPeriod(s.Period) {
        return invalid("period", "invalid shift period")
    }
    return nil
}
