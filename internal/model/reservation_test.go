package model

import (
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
)

func validReservation() Reservation {
    return Reservation{
        ID:              uuid.New(),
        UserID:          7,
        SlotID:          uuid.New(),
        SessionNumber:   1,
        ReservationType: ReservationStandard,
        IsOnline:        true,
        TotalPrice:      decimal.NewFromInt(150),
        FinalAmount:     decimal.NewFromInt(150),
    }
}

func TestReservationValidate_Valid(t *testing.T) {
    r := validReservation()
    assert.NoError(t, r.Validate())
}

func TestReservationValidate_MissingUser(t *testing.T) {
    r := validReservation()
    r.UserID = 0
    assertInvalidField(t, r.Validate(), "user_id")
}

func TestReservationValidate_MissingSlot(t *testing.T) {
    r := validReservation()
    r.SlotID = uuid.Nil
    assertInvalidField(t, r.Validate(), "slot_id")
}

func TestReservationValidate_SessionNumberNotPositive(t *testing.T) {
    r := validReservation()
    r.SessionNumber = 0
    assertInvalidField(t, r.Validate(), "session_number")
}

func TestReservationValidate_UnknownType(t *testing.T) {
    r := validReservation()
    r.ReservationType = "VIP"
    assertInvalidField(t, r.Validate(), "reservation_type")
}

func TestReservationValidate_NegativeAmounts(t *testing.T) {
    r := validReservation()
    r.TotalPrice = decimal.NewFromInt(-1)
    assertInvalidField(t, r.Validate(), "total_price")

    r = validReservation()
    r.FinalAmount = decimal.NewFromInt(-1)
    assertInvalidField(t, r.Validate(), "total_price")
}

func TestReservationValidate_FinalAboveTotal(t *testing.T) {
    r := validReservation()
    r.TotalPrice = decimal.NewFromInt(100)
    r.FinalAmount = decimal.NewFromInt(120)
    assertInvalidField(t, r.Validate(), "final_amount")
}

func TestReservationValidate_FinalEqualTotalAllowed(t *testing.T) {
    r := validReservation()
    r.TotalPrice = decimal.RequireFromString("99.90")
    r.FinalAmount = decimal.RequireFromString("99.90")
    assert.NoError(t, r.Validate())
}

func TestReservationValidate_TimestampOrder(t *testing.T) {
    r := validReservation()
    requested := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
    reserved := requested.Add(-time.Hour)
    r.RequestTimestamp = &requested
    r.ReservationTimestamp = &reserved
    assertInvalidField(t, r.Validate(), "reservation_timestamp")
}

func TestReservationValidate_DiscountFlagNeedsCode(t *testing.T) {
    r := validReservation()
    r.UsedDiscountCode = true
    assertInvalidField(t, r.Validate(), "discount_code_id")

    codeID := uint64(3)
    r.DiscountCodeID = &codeID
    assert.NoError(t, r.Validate())
}

func TestValidReservationType(t *testing.T) {
    assert.True(t, ValidReservationType(ReservationStandard))
    assert.True(t, ValidReservationType(ReservationPremium))
    assert.False(t, ValidReservationType("standard"))
    assert.False(t, ValidReservationType(""))
}
