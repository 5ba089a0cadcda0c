package model

import (
    "strings"
    "time"

    "github.com/shopspring/decimal"
)

// DiscountCode is a fixed-amount voucher customers apply to payments.
// Usage bookkeeping lives on the row itself: UsageCount climbs toward
// MaxUsage and IsUsed flips once the code is exhausted.  Application
// happens inside a single transaction together with the payment update
// so the two never drift apart.
//
// Fields:
//  ID         – primary key identifier.
//  Code       – unique voucher text (max 10 characters).
//  Amount     – amount subtracted from the payment.
//  IsUsed     – whether the code is exhausted.
//  ValidUntil – expiry timestamp (nullable, never in the past on write).
//  MaxUsage   – how many times the code may be applied (positive).
//  UsageCount – how many times the code has been applied.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type DiscountCode struct {
    ID         uint64          // discount_codes.id
    Code       string          // discount_codes.code
    Amount     decimal.Decimal // discount_codes.amount
    IsUsed     bool            // discount_codes.is_used
    ValidUntil *time.Time      // discount_codes.valid_until (nullable)
    MaxUsage   int64           // discount_codes.max_usage
    UsageCount int64           // discount_codes.usage_count
    CreatedAt  time.Time       // discount_codes.created_at
    UpdatedAt  time.Time       // discount_codes.updated_at
}

// Validate checks the code's self-consistency before insert or update.
func (d *DiscountCode) Validate() error {
    if strings.TrimSpace(d.Code) == "" {
        return invalid("code", "discount code cannot be empty")
    }
    if len(d.Code) > 10 {
        return invalid("code", "discount code cannot exceed 10 characters")
    }
    if d.Amount.IsNegative() {
        return invalid("amount", "discount amount cannot be negative")
    }
    if d.MaxUsage <= 0 {
        return invalid("max_usage", "maximum usage must be positive")
    }
    if d.UsageCount < 0 {
        return invalid("usage_count", "usage count cannot be negative")
    }
    if d.UsageCount > d.MaxUsage {
        return invalid("usage_count", "usage count cannot exceed maximum usage")
    }
    if d.ValidUntil != nil && d.ValidUntil.Before(time.Now().UTC()) {
        return invalid("valid_until", "discount code cannot have an expired validity date")
    }
    return nil
}

// Exhausted reports whether the code can no longer be applied.
func (d *DiscountCode) Exhausted() bool {
    return d.IsUsed || d.UsageCount >= d.MaxUsage
}

// Expired reports whether the code's validity window has passed at t.
func (d *DiscountCode) Expired(t time.Time) bool {
    return d.ValidUntil != nil && d.ValidUntil.Before(t)
}
