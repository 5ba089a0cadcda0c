package handler

// Admin endpoints for reservations.  Admins see every booking, can fix
// up flags and amounts, relink area schedules and pull the unpaid queue.
// Customer-facing creation lives in customer_reservation.go; this file
// is the back-office view.

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

// ListReservations handles GET /v1/admin/reservations.  The optional
// ?search= matches the customer's username or the slot date.
func (h *AdminHandler) ListReservations(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Reservations.List(ctx, strings.TrimSpace(c.QueryParam("search")))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// ListUnpaidReservations handles GET /v1/admin/reservations/unpaid.
func (h *AdminHandler) ListUnpaidReservations(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Reservations.ListUnpaid(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetReservation handles GET /v1/admin/reservations/:id.
func (h *AdminHandler) GetReservation(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    res, err := h.Reservations.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, res)
}

// reservationBody is shared by the admin create and update endpoints.
// Every field is optional so the same shape serves PATCH; create fills
// defaults for what the body leaves out.
type reservationBody struct {
    UserID               *uint64          `json:"user_id"`
    SlotID               *uuid.UUID       `json:"slot_id"`
    LaserAreaID          *uint64          `json:"laser_area_id"`
    SessionNumber        *int64           `json:"session_number"`
    ReservationType      *string          `json:"reservation_type"`
    IsOnline             *bool            `json:"is_online"`
    IsCharged            *bool            `json:"is_charged"`
    IsPaid               *bool            `json:"is_paid"`
    IsResolved           *bool            `json:"is_resolved"`
    UsedDiscountCode     *bool            `json:"used_discount_code"`
    TotalPrice           *decimal.Decimal `json:"total_price"`
    FinalAmount          *decimal.Decimal `json:"final_amount"`
    DiscountCodeID       *uint64          `json:"discount_code_id"`
    ReservationTimestamp *time.Time       `json:"reservation_timestamp"`
    RequestTimestamp     *time.Time       `json:"request_timestamp"`
    AreaScheduleIDs      []uuid.UUID      `json:"area_schedule_ids"`
}

// apply overlays the provided fields onto res.
func (b *reservationBody) apply(res *model.Reservation) {
    if b.UserID != nil {
        res.UserID = *b.UserID
    }
    if b.SlotID != nil {
        res.SlotID = *b.SlotID
    }
    if b.LaserAreaID != nil {
        res.LaserAreaID = b.LaserAreaID
    }
    if b.SessionNumber != nil {
        res.SessionNumber = *b.SessionNumber
    }
    if b.ReservationType != nil {
        res.ReservationType = strings.ToUpper(strings.TrimSpace(*b.ReservationType))
    }
    if b.IsOnline != nil {
        res.IsOnline = *b.IsOnline
    }
    if b.IsCharged != nil {
        res.IsCharged = *b.IsCharged
    }
    if b.IsPaid != nil {
        res.IsPaid = *b.IsPaid
    }
    if b.IsResolved != nil {
        res.IsResolved = *b.IsResolved
    }
    if b.UsedDiscountCode != nil {
        res.UsedDiscountCode = *b.UsedDiscountCode
    }
    if b.TotalPrice != nil {
        res.TotalPrice = *b.TotalPrice
    }
    if b.FinalAmount != nil {
        res.FinalAmount = *b.FinalAmount
    }
    if b.DiscountCodeID != nil {
        res.DiscountCodeID = b.DiscountCodeID
    }
    if b.ReservationTimestamp != nil {
        res.ReservationTimestamp = b.ReservationTimestamp
    }
    if b.RequestTimestamp != nil {
        res.RequestTimestamp = b.RequestTimestamp
    }
    if b.AreaScheduleIDs != nil {
        res.AreaScheduleIDs = b.AreaScheduleIDs
    }
}

// CreateReservation handles POST /v1/admin/reservations, booking on
// behalf of any customer.
func (h *AdminHandler) CreateReservation(c echo.Context) error {
    var body reservationBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    now := time.Now().UTC()
    res := model.Reservation{
        SessionNumber:    1,
        ReservationType:  model.ReservationStandard,
        IsOnline:         true,
        RequestTimestamp: &now,
    }
    body.apply(&res)
    if body.FinalAmount == nil && body.TotalPrice != nil {
        // unset final amount follows the total
        res.FinalAmount = *body.TotalPrice
    }
    if err := res.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Reservations.Create(ctx, &res); err != nil {
        if strings.Contains(err.Error(), "1452") {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced user, slot, area or schedule does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
    }
    return c.JSON(http.StatusCreated, res)
}

// UpdateReservation handles PUT/PATCH /v1/admin/reservations/:id.
func (h *AdminHandler) UpdateReservation(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body reservationBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    res, err := h.Reservations.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    body.apply(&res)
    if err := res.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.Reservations.Update(ctx, &res); err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        if strings.Contains(err.Error(), "1452") {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced user, slot, area or schedule does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, res)
}

// DeleteReservation handles DELETE /v1/admin/reservations/:id.
func (h *AdminHandler) DeleteReservation(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Reservations.Delete(ctx, id); err != nil {
        switch err {
        case repository.ErrReservationNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        case repository.ErrProtected:
            return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete reservation with payments"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
        }
    }
    return c.NoContent(http.StatusNoContent)
}
