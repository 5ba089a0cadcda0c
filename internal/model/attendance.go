package model

import (
    "time"

    "github.com/google/uuid"
)

// StaffAttendance tracks a staff member's entry and exit times for a
// working day.  Records are keyed by UUID and cascade away with the
// owning user.
//
// Fields:
//  ID             – UUID primary key.
//  UserID         – staff member this record belongs to.
//  EntryTimestamp – when the staff member clocked in (nullable).
//  ExitTimestamp  – when the staff member clocked out (nullable).
//  HasExited      – whether the staff member has left for the day.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type StaffAttendance struct {
    ID             uuid.UUID  // staff_attendances.id
    UserID         uint64     // staff_attendances.user_id
    EntryTimestamp *time.Time // staff_attendances.entry_timestamp (nullable)
    ExitTimestamp  *time.Time // staff_attendances.exit_timestamp (nullable)
    HasExited      bool       // staff_attendances.has_exited
    CreatedAt      time.Time  // staff_attendances.created_at
    UpdatedAt      time.Time  // staff_attendances.updated_at
}

// Validate checks that exit comes after entry when both are recorded.
func (a *StaffAttendance) Validate() error {
    if a.UserID == 0 {
        return invalid("user_id", "user is required")
    }
    if a.EntryTimestamp != nil && a.ExitTimestamp != nil && !a.ExitTimestamp.After(*a.EntryTimestamp) {
        return invalid("exit_timestamp", "exit timestamp must be after entry timestamp")
    }
    return nil
}
