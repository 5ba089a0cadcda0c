// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a customer books a reservation.
// It contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type ReservationCreatedEvent struct {
    ReservationID   string   `json:"reservation_id"`
    UserID          uint64   `json:"user_id"`
    SlotID          string   `json:"slot_id"`
    LaserAreaID     *uint64  `json:"laser_area_id,omitempty"`
    AreaScheduleIDs []string `json:"area_schedule_ids,omitempty"`
    SessionNumber   int64    `json:"session_number"`
    ReservationType string   `json:"reservation_type"`
    TotalPrice      string   `json:"total_price"`
    FinalAmount     string   `json:"final_amount"`
    CreatedAt       string   `json:"created_at"`
}

// PaymentCompletedEvent is published when a payment settles, either on
// creation with a COMPLETED status or when a discount application leaves
// the payment settled.
type PaymentCompletedEvent struct {
    PaymentID     string `json:"payment_id"`
    UserID        uint64 `json:"user_id"`
    ReservationID string `json:"reservation_id"`
    Amount        string `json:"amount"`
    PaymentType   string `json:"payment_type"`
    CompletedAt   string `json:"completed_at"`
}
