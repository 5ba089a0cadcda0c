package handler // handler defines http handlers

import (
    "github.com/iliyamo/laser-clinic-reservation/internal/config"     // config carries bcrypt cost for account creation
    "github.com/iliyamo/laser-clinic-reservation/internal/repository" // repository holds data access layer
)

// AdminHandler bundles every repository the back-office endpoints touch.
// Admins see all rows without owner scoping, so each method goes straight
// to the unscoped repository queries.
type AdminHandler struct {
    Cfg             config.Config                      // Cfg supplies the bcrypt cost when creating accounts
    Users           *repository.UserRepo               // Users provides account persistence
    Attendance      *repository.AttendanceRepo         // Attendance provides staff attendance persistence
    Profiles        *repository.CustomerProfileRepo    // Profiles provides customer profile persistence
    Comments        *repository.CommentRepo            // Comments provides comment persistence
    Areas           *repository.LaserAreaRepo          // Areas provides laser area persistence
    Schedules       *repository.AreaScheduleRepo       // Schedules provides area schedule persistence
    Shifts          *repository.ShiftRepo              // Shifts provides operator shift persistence
    Slots           *repository.SlotRepo               // Slots provides slot persistence
    Reservations    *repository.ReservationRepo        // Reservations provides reservation persistence
    PreReservations *repository.PreReservationRepo     // PreReservations provides pre-reservation persistence
    Payments        *repository.PaymentRepo            // Payments provides payment persistence
    Discounts       *repository.DiscountCodeRepo       // Discounts provides discount code persistence
    Periods         *repository.CancellationPeriodRepo // Periods provides cancellation period persistence
}

// NewAdminHandler constructs a new AdminHandler and panics if any dependency is nil
func NewAdminHandler(cfg config.Config, users *repository.UserRepo, attendance *repository.AttendanceRepo, profiles *repository.CustomerProfileRepo, comments *repository.CommentRepo, areas *repository.LaserAreaRepo, schedules *repository.AreaScheduleRepo, shifts *repository.ShiftRepo, slots *repository.SlotRepo, reservations *repository.ReservationRepo, preReservations *repository.PreReservationRepo, payments *repository.PaymentRepo, discounts *repository.DiscountCodeRepo, periods *repository.CancellationPeriodRepo) *AdminHandler { // create a new handler with its repositories
    if users == nil || attendance == nil || profiles == nil || comments == nil || areas == nil || schedules == nil || shifts == nil || slots == nil || reservations == nil || preReservations == nil || payments == nil || discounts == nil || periods == nil { // check for nil dependencies
        panic("nil repository passed to NewAdminHandler") // panic when a repository is missing
    }
    return &AdminHandler{ // return a pointer to the new handler
        Cfg:             cfg,             // assign configuration
        Users:           users,           // assign user repository
        Attendance:      attendance,      // assign attendance repository
        Profiles:        profiles,        // assign profile repository
        Comments:        comments,        // assign comment repository
        Areas:           areas,           // assign laser area repository
        Schedules:       schedules,       // assign schedule repository
        Shifts:          shifts,          // assign shift repository
        Slots:           slots,           // assign slot repository
        Reservations:    reservations,    // assign reservation repository
        PreReservations: preReservations, // assign pre-reservation repository
        Payments:        payments,        // assign payment repository
        Discounts:       discounts,       // assign discount code repository
        Periods:         periods,         // assign cancellation period repository
    }
}
