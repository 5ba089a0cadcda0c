package model

import (
    "time"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"
)

// Payment statuses accepted by payments.status.
const (
    PaymentPending   = "PENDING"
    PaymentCompleted = "COMPLETED"
    PaymentFailed    = "FAILED"
    PaymentRefunded  = "REFUNDED"
    PaymentCancelled = "CANCELLED"
)

// Payment types accepted by payments.payment_type.
const (
    PayTypePayPal       = "PAYPAL"
    PayTypeCreditCard   = "CREDIT_CARD"
    PayTypeBankTransfer = "BANK_TRANSFER"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
    switch s {
    case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded, PaymentCancelled:
        return true
    default:
        return false
    }
}

// ValidPaymentType reports whether t is a known payment method.
func ValidPaymentType(t string) bool {
    switch t {
    case PayTypePayPal, PayTypeCreditCard, PayTypeBankTransfer:
        return true
    default:
        return false
    }
}

// Payment records one payment attempt against a reservation.  PayPal
// payments additionally carry the gateway transaction id, which is
// unique across all payments when present.
//
// Fields:
//  ID                  – UUID primary key.
//  UserID              – customer who initiated the payment.
//  ReservationID       – reservation being paid for.
//  Amount              – payable amount; discounts subtract from it.
//  Status              – PENDING, COMPLETED, FAILED, REFUNDED or CANCELLED.
//  PaymentType         – PAYPAL, CREDIT_CARD or BANK_TRANSFER.
//  PayPalTransactionID – gateway transaction id (nullable, unique when set).
//  PaymentTimestamp    – when the payment was processed (nullable).
//  CreatedAt           – creation timestamp.
//  UpdatedAt           – last update timestamp.
type Payment struct {
    ID                  uuid.UUID       // payments.id
    UserID              uint64          // payments.user_id
    ReservationID       uuid.UUID       // payments.reservation_id
    Amount              decimal.Decimal // payments.amount
    Status              string          // payments.status
    PaymentType         string          // payments.payment_type
    PayPalTransactionID *string         // payments.paypal_transaction_id (nullable)
    PaymentTimestamp    *time.Time      // payments.payment_timestamp (nullable)
    CreatedAt           time.Time       // payments.created_at
    UpdatedAt           time.Time       // payments.updated_at
}

// Validate checks the payment's self-consistency before insert or update.
func (p *Payment) Validate() error {
    if p.UserID == 0 {
        return invalid("user_id", "user is required")
    }
    if p.ReservationID == uuid.Nil {
        return invalid("reservation_id", "reservation is required")
    }
    if p.Amount.IsNegative() {
        return invalid("amount", "payment amount cannot be negative")
    }
    if !ValidPaymentStatus(p.Status) {
        return invalid("status", "invalid payment status")
    }
    if !ValidPaymentType(p.PaymentType) {
        return invalid("payment_type", "invalid payment type")
    }
    if p.PaymentType == PayTypePayPal && (p.PayPalTransactionID == nil || *p.PayPalTransactionID == "") {
        return invalid("paypal_transaction_id", "paypal transaction id is required for paypal payments")
    }
    return nil
}
