package handler

// Customer-facing payment endpoints.  Creation checks that the paid
// reservation belongs to the caller; the discount flow is the one
// place where a foreign row answers 403 instead of 404, because the
// payment is fetched unscoped and ownership is checked afterwards.

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"

    "github.com/iliyamo/laser-clinic-reservation/internal/model"
    "github.com/iliyamo/laser-clinic-reservation/internal/queue"
    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
    queue_publisher "github.com/iliyamo/laser-clinic-reservation/internal/service"
)

// publishPaymentCompleted emits the payment.completed event for a
// settled payment.  Fire and forget; the publisher logs its own
// failures.
func publishPaymentCompleted(ctx context.Context, p model.Payment) {
    completedAt := time.Now().UTC()
    if p.PaymentTimestamp != nil {
        completedAt = p.PaymentTimestamp.UTC()
    }
    _ = queue_publisher.PublishPaymentCompleted(ctx, queue.PaymentCompletedEvent{
        PaymentID:     p.ID.String(),
        UserID:        p.UserID,
        ReservationID: p.ReservationID.String(),
        Amount:        p.Amount.String(),
        PaymentType:   p.PaymentType,
        CompletedAt:   completedAt.Format(time.RFC3339),
    })
}

// CreatePayment handles POST /v1/payments.  The paying user comes from
// the access token and the reservation must belong to them; a foreign
// or absent reservation is rejected as a validation error rather than
// leaking whether the id exists.  Status defaults to PENDING and the
// payment type to PAYPAL.  When the body omits the amount it falls
// back to the reservation's final amount.  A payment created already
// COMPLETED publishes payment.completed.
func (h *CustomerHandler) CreatePayment(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        ReservationID       *uuid.UUID       `json:"reservation_id"`
        Amount              *decimal.Decimal `json:"amount"`
        Status              *string          `json:"status"`
        PaymentType         *string          `json:"payment_type"`
        PayPalTransactionID *string          `json:"paypal_transaction_id"`
        PaymentTimestamp    *time.Time       `json:"payment_timestamp"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.ReservationID == nil || *body.ReservationID == uuid.Nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "reservation is required", "field": "reservation_id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    res, err := h.Reservations.GetByIDForUser(ctx, *body.ReservationID, userID)
    if err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "reservation does not exist", "field": "reservation_id"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservation"})
    }

    p := model.Payment{
        UserID:              userID,
        ReservationID:       res.ID,
        Amount:              res.FinalAmount,
        Status:              model.PaymentPending,
        PaymentType:         model.PayTypePayPal,
        PayPalTransactionID: body.PayPalTransactionID,
        PaymentTimestamp:    body.PaymentTimestamp,
    }
    if body.Amount != nil {
        p.Amount = *body.Amount
    }
    if body.Status != nil {
        p.Status = strings.ToUpper(strings.TrimSpace(*body.Status))
    }
    if body.PaymentType != nil {
        p.PaymentType = strings.ToUpper(strings.TrimSpace(*body.PaymentType))
    }
    if err := p.Validate(); err != nil {
        return validationError(c, err)
    }

    if err := h.Payments.Create(ctx, &p); err != nil {
        if err == repository.ErrTransactionIDExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "paypal transaction id already recorded"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create payment"})
    }

    if p.Status == model.PaymentCompleted {
        publishPaymentCompleted(ctx, p)
    }
    return c.JSON(http.StatusCreated, p)
}

// GetPayment handles GET /v1/payments/:id.  The lookup is scoped to
// the paying customer, so a foreign payment responds 404.
func (h *CustomerHandler) GetPayment(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.Payments.GetByIDForUser(ctx, id, userID)
    if err != nil {
        if err == repository.ErrPaymentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch payment"})
    }
    return c.JSON(http.StatusOK, p)
}

// ListPayments handles GET /v1/payments.  It returns all payments of
// the current user, newest first.
func (h *CustomerHandler) ListPayments(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Payments.ListForUser(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payments"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// ApplyDiscount handles POST /v1/payments/:id/apply-discount.  The
// payment is fetched without owner scoping and ownership is checked on
// the row, so applying a code to someone else's payment answers 403.
// The code lookup, the usage bookkeeping and the amount change all run
// inside a single transaction with both rows locked: either the
// payment amount drops and the code's usage climbs together, or
// neither moves.  A discount larger than the remaining amount is
// rejected rather than clamped.
func (h *CustomerHandler) ApplyDiscount(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
    }
    var body struct {
        Code string `json:"code"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    body.Code = strings.TrimSpace(body.Code)
    if body.Code == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "discount code is required", "field": "code"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if _, err := h.Payments.GetByIDForOwner(ctx, id, userID); err != nil {
        switch err {
        case repository.ErrPaymentNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
        case repository.ErrForbidden:
            return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch payment"})
    }

    tx, err := h.Payments.DB().BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    code, err := h.Discounts.GetByCodeForUpdateTx(ctx, tx, body.Code)
    if err != nil {
        if err == repository.ErrCodeNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "discount code not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load discount code"})
    }
    if code.Exhausted() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "discount code is already used or exhausted"})
    }
    if code.Expired(time.Now().UTC()) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "discount code has expired"})
    }

    locked, err := h.Payments.GetForUpdateTx(ctx, tx, id)
    if err != nil {
        if err == repository.ErrPaymentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to lock payment"})
    }
    newAmount := locked.Amount.Sub(code.Amount)
    if newAmount.IsNegative() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "discount cannot exceed payment amount"})
    }

    if err := h.Payments.UpdateAmountTx(ctx, tx, id, newAmount); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update payment"})
    }
    usage := code.UsageCount + 1
    if err := h.Discounts.UpdateUsageTx(ctx, tx, code.ID, usage, usage >= code.MaxUsage); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update discount code"})
    }
    if err := tx.Commit(); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
    }
    committed = true

    updated, err := h.Payments.GetByID(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch payment"})
    }
    if updated.Status == model.PaymentCompleted {
        publishPaymentCompleted(ctx, updated)
    }
    return c.JSON(http.StatusOK, updated)
}
