package model

import (
    "time"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"
)

// Reservation types accepted by reservations.reservation_type.
const (
    ReservationStandard = "STANDARD"
    ReservationPremium  = "PREMIUM"
)

// ValidReservationType reports whether t is a known reservation type.
func ValidReservationType(t string) bool {
    return t == ReservationStandard || t == ReservationPremium
}

// Reservation records a customer's booking of a slot for one or more
// laser treatments.  It tracks pricing before and after discounts plus
// a set of progress flags.  The linked area schedules live in the
// reservation_area_schedules join table.
//
// Fields:
//  ID                   – UUID primary key.
//  UserID               – customer who made the reservation.
//  SlotID               – reservation slot being booked.
//  LaserAreaID          – primary treatment area (nullable).
//  SessionNumber        – session number within the treatment course.
//  ReservationType      – STANDARD or PREMIUM.
//  IsOnline             – whether the booking was made online.
//  IsCharged            – whether the reservation has been charged.
//  IsPaid               – whether payment has completed.
//  IsResolved           – whether the operator marked the session done.
//  UsedDiscountCode     – whether a discount code was applied.
//  TotalPrice           – price before discounts.
//  FinalAmount          – amount after discounts (never above TotalPrice).
//  DiscountCodeID       – applied discount code, if any (nullable).
//  ReservationTimestamp – when the reservation was placed (nullable).
//  RequestTimestamp     – when the reservation was requested (nullable).
//  CreatedAt            – creation timestamp.
//  UpdatedAt            – last update timestamp.
type Reservation struct {
    ID                   uuid.UUID       // reservations.id
    UserID               uint64          // reservations.user_id
    SlotID               uuid.UUID       // reservations.slot_id
    LaserAreaID          *uint64         // reservations.laser_area_id (nullable)
    SessionNumber        int64           // reservations.session_number
    ReservationType      string          // reservations.reservation_type
    IsOnline             bool            // reservations.is_online
    IsCharged            bool            // reservations.is_charged
    IsPaid               bool            // reservations.is_paid
    IsResolved           bool            // reservations.is_resolved
    UsedDiscountCode     bool            // reservations.used_discount_code
    TotalPrice           decimal.Decimal // reservations.total_price
    FinalAmount          decimal.Decimal // reservations.final_amount
    DiscountCodeID       *uint64         // reservations.discount_code_id (nullable)
    ReservationTimestamp *time.Time      // reservations.reservation_timestamp (nullable)
    RequestTimestamp     *time.Time      // reservations.request_timestamp (nullable)
    CreatedAt            time.Time       // reservations.created_at
    UpdatedAt            time.Time       // reservations.updated_at

    // AreaScheduleIDs carries the linked area schedules when the
    // repository loads or stores them alongside the reservation row.
    // It is not a column on the reservations table itself.
    AreaScheduleIDs []uuid.UUID
}

// Validate checks the reservation's self-consistency before insert or
// update.  The pricing invariants here are the ones the payment flow
// depends on: amounts never negative and the discounted amount never
// above the undiscounted one.
func (r *Reservation) Validate() error {
    if r.UserID == 0 {
        return invalid("user_id", "user is required")
    }
    if r.SlotID == uuid.Nil {
        return invalid("slot_id", "slot is required")
    }
    if r.SessionNumber <= 0 {
        return invalid("session_number", "session number must be positive")
    }
    if !ValidReservationType(r.ReservationType) {
        return invalid("reservation_type", "invalid reservation type")
    }
    if r.TotalPrice.IsNegative() || r.FinalAmount.IsNegative() {
        return invalid("total_price", "price and amount cannot be negative")
    }
    if r.FinalAmount.GreaterThan(r.TotalPrice) {
        return invalid("final_amount", "final amount cannot exceed total price")
    }
    if r.ReservationTimestamp != nil && r.RequestTimestamp != nil && r.ReservationTimestamp.Before(*r.RequestTimestamp) {
        return invalid("reservation_timestamp", "reservation timestamp cannot be before request timestamp")
    }
    if r.UsedDiscountCode && r.DiscountCodeID == nil {
        return invalid("discount_code_id", "discount code must be provided if used_discount_code is true")
    }
    return nil
}
