package model

import (
    "testing"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
)

func validPayment() Payment {
    txn := "PAY-4X99"
    return Payment{
        ID:                  uuid.New(),
        UserID:              7,
        ReservationID:       uuid.New(),
        Amount:              decimal.NewFromInt(150),
        Status:              PaymentPending,
        PaymentType:         PayTypePayPal,
        PayPalTransactionID: &txn,
    }
}

func TestPaymentValidate_Valid(t *testing.T) {
    p := validPayment()
    assert.NoError(t, p.Validate())
}

func TestPaymentValidate_MissingReservation(t *testing.T) {
    p := validPayment()
    p.ReservationID = uuid.Nil
    assertInvalidField(t, p.Validate(), "reservation_id")
}

func TestPaymentValidate_NegativeAmount(t *testing.T) {
    p := validPayment()
    p.Amount = decimal.RequireFromString("-0.01")
    assertInvalidField(t, p.Validate(), "amount")
}

func TestPaymentValidate_ZeroAmountAllowed(t *testing.T) {
    // A fully discounted payment legitimately ends at zero.
    p := validPayment()
    p.Amount = decimal.Zero
    assert.NoError(t, p.Validate())
}

func TestPaymentValidate_UnknownStatus(t *testing.T) {
    p := validPayment()
    p.Status = "SETTLED"
    assertInvalidField(t, p.Validate(), "status")
}

func TestPaymentValidate_UnknownType(t *testing.T) {
    p := validPayment()
    p.PaymentType = "CASH"
    assertInvalidField(t, p.Validate(), "payment_type")
}

func TestPaymentValidate_PayPalNeedsTransactionID(t *testing.T) {
    p := validPayment()
    p.PayPalTransactionID = nil
    assertInvalidField(t, p.Validate(), "paypal_transaction_id")

    empty := ""
    p.PayPalTransactionID = &empty
    assertInvalidField(t, p.Validate(), "paypal_transaction_id")
}

func TestPaymentValidate_BankTransferWithoutTransactionID(t *testing.T) {
    p := validPayment()
    p.PaymentType = PayTypeBankTransfer
    p.PayPalTransactionID = nil
    assert.NoError(t, p.Validate())
}

func TestValidPaymentStatus(t *testing.T) {
    for _, s := range []string{PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded, PaymentCancelled} {
        assert.True(t, ValidPaymentStatus(s), s)
    }
    assert.False(t, ValidPaymentStatus("pending"))
    assert.False(t, ValidPaymentStatus(""))
}
