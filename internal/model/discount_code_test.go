package model

import (
    "testing"
    "time"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
)

func validDiscountCode() DiscountCode {
    return DiscountCode{
        ID:       3,
        Code:     "SUMMER25",
        Amount:   decimal.NewFromInt(25),
        MaxUsage: 5,
    }
}

func TestDiscountCodeValidate_Valid(t *testing.T) {
    d := validDiscountCode()
    assert.NoError(t, d.Validate())
}

func TestDiscountCodeValidate_EmptyCode(t *testing.T) {
    d := validDiscountCode()
    d.Code = "   "
    assertInvalidField(t, d.Validate(), "code")
}

func TestDiscountCodeValidate_CodeTooLong(t *testing.T) {
    d := validDiscountCode()
    d.Code = "ABCDEFGHIJK" // 11 characters
    assertInvalidField(t, d.Validate(), "code")
}

func TestDiscountCodeValidate_NegativeAmount(t *testing.T) {
    d := validDiscountCode()
    d.Amount = decimal.NewFromInt(-5)
    assertInvalidField(t, d.Validate(), "amount")
}

func TestDiscountCodeValidate_MaxUsageMustBePositive(t *testing.T) {
    d := validDiscountCode()
    d.MaxUsage = 0
    assertInvalidField(t, d.Validate(), "max_usage")
}

func TestDiscountCodeValidate_UsageCountBounds(t *testing.T) {
    d := validDiscountCode()
    d.UsageCount = -1
    assertInvalidField(t, d.Validate(), "usage_count")

    d = validDiscountCode()
    d.UsageCount = d.MaxUsage + 1
    assertInvalidField(t, d.Validate(), "usage_count")

    d = validDiscountCode()
    d.UsageCount = d.MaxUsage
    assert.NoError(t, d.Validate())
}

func TestDiscountCodeValidate_PastValidUntil(t *testing.T) {
    d := validDiscountCode()
    past := time.Now().UTC().Add(-time.Hour)
    d.ValidUntil = &past
    assertInvalidField(t, d.Validate(), "valid_until")
}

func TestDiscountCodeExhausted(t *testing.T) {
    d := validDiscountCode()
    assert.False(t, d.Exhausted())

    d.UsageCount = d.MaxUsage - 1
    assert.False(t, d.Exhausted())

    // Reaching the cap exhausts the code even before is_used flips.
    d.UsageCount = d.MaxUsage
    assert.True(t, d.Exhausted())

    d = validDiscountCode()
    d.IsUsed = true
    assert.True(t, d.Exhausted())
}

func TestDiscountCodeExpired(t *testing.T) {
    now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

    d := validDiscountCode()
    assert.False(t, d.Expired(now), "nil valid_until never expires")

    future := now.Add(time.Minute)
    d.ValidUntil = &future
    assert.False(t, d.Expired(now))

    past := now.Add(-time.Minute)
    d.ValidUntil = &past
    assert.True(t, d.Expired(now))
}
