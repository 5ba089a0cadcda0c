package handler

import (
    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// OperatorHandler groups repositories for the staff-facing endpoints:
// attendance self-service, the reservations booked into the operator's
// slots and the operator's shift plan.  All lookups are scoped to the
// authenticated operator, so foreign rows surface as 404.
type OperatorHandler struct {
    Attendance   *repository.AttendanceRepo  // the operator's own clock-in records
    Reservations *repository.ReservationRepo // bookings into the operator's slots
    Shifts       *repository.ShiftRepo       // the operator's shift plan
}

// NewOperatorHandler constructs a new OperatorHandler with the
// provided repositories.  All dependencies must be non-nil.
func NewOperatorHandler(attendance *repository.AttendanceRepo, reservations *repository.ReservationRepo, shifts *repository.ShiftRepo) *OperatorHandler {
    if attendance == nil || reservations == nil || shifts == nil {
        panic("nil repository passed to NewOperatorHandler")
    }
    return &OperatorHandler{
        Attendance:   attendance,
        Reservations: reservations,
        Shifts:       shifts,
    }
}
