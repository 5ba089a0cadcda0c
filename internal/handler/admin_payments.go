package handler

// Admin endpoints for payments.  The pending queue (GET /pending) is the
// back-office worklist of payments still waiting for settlement.

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"

    "github.com/iliyamo/laser-clinic-reservation/internal/model"
    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// ListPayments handles GET /v1/admin/payments.  The optional ?search=
// matches the customer's username or the PayPal transaction id.
func (h *AdminHandler) ListPayments(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Payments.List(ctx, strings.TrimSpace(c.QueryParam("search")))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payments"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// ListPendingPayments handles GET /v1/admin/payments/pending.
func (h *AdminHandler) ListPendingPayments(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Payments.ListPending(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payments"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetPayment handles GET /v1/admin/payments/:id.
func (h *AdminHandler) GetPayment(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.Payments.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrPaymentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, p)
}

// CreatePayment handles POST /v1/admin/payments.
func (h *AdminHandler) CreatePayment(c echo.Context) error {
    var body struct {
        UserID              uint64          `json:"user_id"`
        ReservationID       *uuid.UUID      `json:"reservation_id"`
        Amount              decimal.Decimal `json:"amount"`
        Status              string          `json:"status"`
        PaymentType         string          `json:"payment_type"`
        PayPalTransactionID *string         `json:"paypal_transaction_id"`
        PaymentTimestamp    *time.Time      `json:"payment_timestamp"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    p := model.Payment{
        UserID:              body.UserID,
        Amount:              body.Amount,
        Status:              model.PaymentPending,
        PaymentType:         model.PayTypePayPal,
        PayPalTransactionID: body.PayPalTransactionID,
        PaymentTimestamp:    body.PaymentTimestamp,
    }
    if body.ReservationID != nil {
        p.ReservationID = *body.ReservationID
    }
    if s := strings.ToUpper(strings.TrimSpace(body.Status)); s != "" {
        p.Status = s
    }
    if t := strings.ToUpper(strings.TrimSpace(body.PaymentType)); t != "" {
        p.PaymentType = t
    }
    if err := p.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Payments.Create(ctx, &p); err != nil {
        if err == repository.ErrTransactionIDExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "paypal transaction id already recorded"})
        }
        if strings.Contains(err.Error(), "1452") {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced user or reservation does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create payment"})
    }
    return c.JSON(http.StatusCreated, p)
}

// UpdatePayment handles PUT/PATCH /v1/admin/payments/:id.
func (h *AdminHandler) UpdatePayment(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        UserID              *uint64          `json:"user_id"`
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
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.Payments.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrPaymentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if body.UserID != nil {
        p.UserID = *body.UserID
    }
    if body.ReservationID != nil {
        p.ReservationID = *body.ReservationID
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
    if body.PayPalTransactionID != nil {
        p.PayPalTransactionID = body.PayPalTransactionID
    }
    if body.PaymentTimestamp != nil {
        p.PaymentTimestamp = body.PaymentTimestamp
    }
    if err := p.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.Payments.Update(ctx, &p); err != nil {
        if err == repository.ErrPaymentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
        }
        if err == repository.ErrTransactionIDExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "paypal transaction id already recorded"})
        }
        if strings.Contains(err.Error(), "1452") {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced user or reservation does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, p)
}

// DeletePayment handles DELETE /v1/admin/payments/:id.
func (h *AdminHandler) DeletePayment(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Payments.Delete(ctx, id); err != nil {
        if err == repository.ErrPaymentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
