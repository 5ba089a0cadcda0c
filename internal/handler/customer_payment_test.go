package handler

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
)

var paymentColNames = []string{
    "id", "user_id", "reservation_id", "amount", "status", "payment_type",
    "paypal_transaction_id", "payment_timestamp", "created_at", "updated_at",
}

func paymentRow(id uuid.UUID, userID uint64, amount string) *sqlmock.Rows {
    now := time.Now().UTC()
    return sqlmock.NewRows(paymentColNames).
        AddRow(id.String(), userID, uuid.NewString(), amount, "PENDING", "PAYPAL", nil, nil, now, now)
}

var codeColNames = []string{
    "id", "code", "amount", "is_used", "valid_until", "max_usage", "usage_count", "created_at", "updated_at",
}

func codeRow(code, amount string, maxUsage, usageCount int64, used bool, validUntil *time.Time) *sqlmock.Rows {
    now := time.Now().UTC()
    var until any
    if validUntil != nil {
        until = *validUntil
    }
    return sqlmock.NewRows(codeColNames).
        AddRow(5, code, amount, used, until, maxUsage, usageCount, now, now)
}

func applyDiscountContext(t *testing.T, id uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
    t.Helper()
    c, rec := jsonContext(t, http.MethodPost, "/v1/payments/"+id.String()+"/apply-discount", body)
    c.SetParamNames("id")
    c.SetParamValues(id.String())
    asUser(c, 7, "CUSTOMER")
    return c, rec
}

func TestApplyDiscount_CommitsAmountAndUsageTogether(t *testing.T) {
    h, mock := newCustomerHandler(t)
    payID := uuid.New()

    mock.ExpectQuery("FROM payments WHERE id=").
        WithArgs(payID).
        WillReturnRows(paymentRow(payID, 7, "150.00"))
    mock.ExpectBegin()
    mock.ExpectQuery("FROM discount_codes WHERE code=").
        WithArgs("SUMMER25").
        WillReturnRows(codeRow("SUMMER25", "25", 5, 1, false, nil))
    mock.ExpectQuery("FROM payments WHERE id=(.+) FOR UPDATE").
        WithArgs(payID).
        WillReturnRows(paymentRow(payID, 7, "150.00"))
    mock.ExpectExec("UPDATE payments SET amount=").
        WithArgs(sqlmock.AnyArg(), payID).
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec("UPDATE discount_codes SET usage_count=").
        WithArgs(int64(2), false, uint64(5)).
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectCommit()
    mock.ExpectQuery("FROM payments WHERE id=").
        WithArgs(payID).
        WillReturnRows(paymentRow(payID, 7, "125.00"))

    c, rec := applyDiscountContext(t, payID, `{"code":"SUMMER25"}`)
    assert.NoError(t, h.ApplyDiscount(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), "125")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDiscount_ExhaustedCodeRollsBack(t *testing.T) {
    h, mock := newCustomerHandler(t)
    payID := uuid.New()

    mock.ExpectQuery("FROM payments WHERE id=").
        WithArgs(payID).
        WillReturnRows(paymentRow(payID, 7, "150.00"))
    mock.ExpectBegin()
    mock.ExpectQuery("FROM discount_codes WHERE code=").
        WithArgs("SUMMER25").
        WillReturnRows(codeRow("SUMMER25", "25", 5, 5, false, nil))
    mock.ExpectRollback()

    c, rec := applyDiscountContext(t, payID, `{"code":"SUMMER25"}`)
    assert.NoError(t, h.ApplyDiscount(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "discount code is already used or exhausted")
    assert.NoError(t, mock.ExpectationsWereMet()) // neither row was written
}

func TestApplyDiscount_ExpiredCodeRollsBack(t *testing.T) {
    h, mock := newCustomerHandler(t)
    payID := uuid.New()
    yesterday := time.Now().UTC().Add(-24 * time.Hour)

    mock.ExpectQuery("FROM payments WHERE id=").
        WithArgs(payID).
        WillReturnRows(paymentRow(payID, 7, "150.00"))
    mock.ExpectBegin()
    mock.ExpectQuery("FROM discount_codes WHERE code=").
        WithArgs("SUMMER25").
        WillReturnRows(codeRow("SUMMER25", "25", 5, 1, false, &yesterday))
    mock.ExpectRollback()

    c, rec := applyDiscountContext(t, payID, `{"code":"SUMMER25"}`)
    assert.NoError(t, h.ApplyDiscount(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "discount code has expired")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDiscount_CodeLargerThanPaymentRejected(t *testing.T) {
    h, mock := newCustomerHandler(t)
    payID := uuid.New()

    mock.ExpectQuery("FROM payments WHERE id=").
        WithArgs(payID).
        WillReturnRows(paymentRow(payID, 7, "20.00"))
    mock.ExpectBegin()
    mock.ExpectQuery("FROM discount_codes WHERE code=").
        WithArgs("SUMMER25").
        WillReturnRows(codeRow("SUMMER25", "25", 5, 1, false, nil))
    mock.ExpectQuery("FROM payments WHERE id=(.+) FOR UPDATE").
        WithArgs(payID).
        WillReturnRows(paymentRow(payID, 7, "20.00"))
    mock.ExpectRollback()

    c, rec := applyDiscountContext(t, payID, `{"code":"SUMMER25"}`)
    assert.NoError(t, h.ApplyDiscount(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "discount cannot exceed payment amount")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDiscount_ForeignPaymentForbidden(t *testing.T) {
    h, mock := newCustomerHandler(t)
    payID := uuid.New()

    // The payment exists but belongs to user 9; ownership fails before
    // the transaction even starts.
    mock.ExpectQuery("FROM payments WHERE id=").
        WithArgs(payID).
        WillReturnRows(paymentRow(payID, 9, "150.00"))

    c, rec := applyDiscountContext(t, payID, `{"code":"SUMMER25"}`)
    assert.NoError(t, h.ApplyDiscount(c))
    assert.Equal(t, http.StatusForbidden, rec.Code)
    assert.Contains(t, rec.Body.String(), "forbidden")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDiscount_BlankCodeRejected(t *testing.T) {
    h, mock := newCustomerHandler(t)
    payID := uuid.New()

    c, rec := applyDiscountContext(t, payID, `{"code":"  "}`)
    assert.NoError(t, h.ApplyDiscount(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), `"field":"code"`)
    assert.NoError(t, mock.ExpectationsWereMet())
}
