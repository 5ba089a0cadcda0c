package handler

import (
    "context"        // request-scoped deadlines for DB calls
    "net/http"       // HTTP status codes
    "strings"        // driver error inspection and trimming
    "time"           // defaults for request timestamps

    "github.com/google/uuid"       // UUID path params and body fields
    "github.com/labstack/echo/v4"  // Echo web framework
    "github.com/shopspring/decimal" // exact money amounts

    "github.com/iliyamo/laser-clinic-reservation/internal/model"      // domain entities
    "github.com/iliyamo/laser-clinic-reservation/internal/queue"      // event payloads
    "github.com/iliyamo/laser-clinic-reservation/internal/repository" // repository layer
    queue_publisher "github.com/iliyamo/laser-clinic-reservation/internal/service"
)

// CustomerHandler groups repositories required to book reservations,
// pay for them and maintain the customer's own records.  All methods
// assume that JWT authentication and role validation has already been
// performed by middleware.  Methods may return 401 Unauthorized if the
// user ID cannot be extracted from the context.  Every lookup is
// scoped to the authenticated customer, so foreign rows surface as
// 404 rather than 403.
type CustomerHandler struct {
    Reservations    *repository.ReservationRepo        // bookings plus their area-schedule links
    PreReservations *repository.PreReservationRepo     // treatment-course progress records
    Payments        *repository.PaymentRepo            // payments and the discount flow's Tx helpers
    Discounts       *repository.DiscountCodeRepo       // discount codes locked during application
    Profiles        *repository.CustomerProfileRepo    // the customer's own medical profile
    Comments        *repository.CommentRepo            // feedback left by the customer
}

// NewCustomerHandler constructs a new CustomerHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewCustomerHandler(reservations *repository.ReservationRepo, preReservations *repository.PreReservationRepo, payments *repository.PaymentRepo, discounts *repository.DiscountCodeRepo, profiles *repository.CustomerProfileRepo, comments *repository.CommentRepo) *CustomerHandler {
    if reservations == nil || preReservations == nil || payments == nil || discounts == nil || profiles == nil || comments == nil {
        panic("nil repository passed to NewCustomerHandler")
    }
    return &CustomerHandler{
        Reservations:    reservations,
        PreReservations: preReservations,
        Payments:        payments,
        Discounts:       discounts,
        Profiles:        profiles,
        Comments:        comments,
    }
}

// CreateReservation handles POST /v1/reservations.  The booking user
// always comes from the access token, never from the body.  The slot
// is required; session number, reservation type, online flag and the
// request timestamp fall back to their defaults when the body leaves
// them out, and the final amount starts equal to the total price.
// The reservation row and its area-schedule links are inserted in one
// transaction, and a reservation.created event is published on
// success.  Publish failures never fail the booking.
func (h *CustomerHandler) CreateReservation(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        SlotID               *uuid.UUID       `json:"slot_id"`
        LaserAreaID          *uint64          `json:"laser_area_id"`
        SessionNumber        *int64           `json:"session_number"`
        ReservationType      *string          `json:"reservation_type"`
        IsOnline             *bool            `json:"is_online"`
        TotalPrice           *decimal.Decimal `json:"total_price"`
        FinalAmount          *decimal.Decimal `json:"final_amount"`
        ReservationTimestamp *time.Time       `json:"reservation_timestamp"`
        AreaScheduleIDs      []uuid.UUID      `json:"area_schedule_ids"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.SlotID == nil || *body.SlotID == uuid.Nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "slot is required", "field": "slot_id"})
    }

    now := time.Now().UTC()
    res := model.Reservation{
        UserID:               userID,
        SlotID:               *body.SlotID,
        LaserAreaID:          body.LaserAreaID,
        SessionNumber:        1,
        ReservationType:      model.ReservationStandard,
        IsOnline:             true,
        ReservationTimestamp: body.ReservationTimestamp,
        RequestTimestamp:     &now,
        AreaScheduleIDs:      body.AreaScheduleIDs,
    }
    if body.SessionNumber != nil {
        res.SessionNumber = *body.SessionNumber
    }
    if body.ReservationType != nil {
        res.ReservationType = strings.ToUpper(strings.TrimSpace(*body.ReservationType))
    }
    if body.IsOnline != nil {
        res.IsOnline = *body.IsOnline
    }
    if body.TotalPrice != nil {
        res.TotalPrice = *body.TotalPrice
    }
    if body.FinalAmount != nil {
        res.FinalAmount = *body.FinalAmount
    } else {
        res.FinalAmount = res.TotalPrice
    }
    if err := res.Validate(); err != nil {
        return validationError(c, err)
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Reservations.Create(ctx, &res); err != nil {
        if strings.Contains(err.Error(), "1452") {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced slot, area or schedule does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation"})
    }

    evt := queue.ReservationCreatedEvent{
        ReservationID:   res.ID.String(),
        UserID:          res.UserID,
        SlotID:          res.SlotID.String(),
        LaserAreaID:     res.LaserAreaID,
        SessionNumber:   res.SessionNumber,
        ReservationType: res.ReservationType,
        TotalPrice:      res.TotalPrice.String(),
        FinalAmount:     res.FinalAmount.String(),
        CreatedAt:       res.CreatedAt.UTC().Format(time.RFC3339),
    }
    for _, sid := range res.AreaScheduleIDs {
        evt.AreaScheduleIDs = append(evt.AreaScheduleIDs, sid.String())
    }
    // Fire and forget; the publisher logs its own failures.
    _ = queue_publisher.PublishReservationCreated(ctx, evt)

    return c.JSON(http.StatusCreated, res)
}

// GetReservation handles GET /v1/reservations/:id.  The lookup is
// scoped to the authenticated customer, so a reservation belonging to
// someone else responds 404 exactly like one that does not exist.
func (h *CustomerHandler) GetReservation(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    res, err := h.Reservations.GetByIDForUser(ctx, id, userID)
    if err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservation"})
    }
    return c.JSON(http.StatusOK, res)
}

// ListReservations handles GET /v1/reservations.  It returns all
// reservations booked by the current user, newest first.
func (h *CustomerHandler) ListReservations(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Reservations.ListForUser(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
