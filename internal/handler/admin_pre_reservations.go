package handler

// Admin endpoints for pre-reservations: standing treatment plans that
// track how many sessions a customer has left on an area schedule and
// when the last one happened.

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/laser-clinic-reservation/internal/model"
    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// ListPreReservations handles GET /v1/admin/pre-reservations.  The
// optional ?search= matches the customer's username.
func (h *AdminHandler) ListPreReservations(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.PreReservations.List(ctx, strings.TrimSpace(c.QueryParam("search")))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load pre-reservations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetPreReservation handles GET /v1/admin/pre-reservations/:id.
func (h *AdminHandler) GetPreReservation(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.PreReservations.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrPreReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "pre-reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, p)
}

// CreatePreReservation handles POST /v1/admin/pre-reservations.
func (h *AdminHandler) CreatePreReservation(c echo.Context) error {
    var body struct {
        UserID          uint64     `json:"user_id"`
        AreaScheduleID  *uuid.UUID `json:"area_schedule_id"`
        SessionCount    int64      `json:"session_count"`
        LastSessionDate string     `json:"last_session_date"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    p := model.PreReservation{
        UserID:       body.UserID,
        SessionCount: body.SessionCount,
    }
    if body.AreaScheduleID != nil {
        p.AreaScheduleID = *body.AreaScheduleID
    }
    if strings.TrimSpace(body.LastSessionDate) != "" {
        d, err := time.Parse(dateLayout, strings.TrimSpace(body.LastSessionDate))
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid last_session_date, expected YYYY-MM-DD"})
        }
        p.LastSessionDate = d
    }
    if err := p.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.PreReservations.Create(ctx, &p); err != nil {
        if strings.Contains(err.Error(), "1452") {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced user or area schedule does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create pre-reservation"})
    }
    return c.JSON(http.StatusCreated, p)
}

// UpdatePreReservation handles PUT/PATCH /v1/admin/pre-reservations/:id.
func (h *AdminHandler) UpdatePreReservation(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        UserID          *uint64    `json:"user_id"`
        AreaScheduleID  *uuid.UUID `json:"area_schedule_id"`
        SessionCount    *int64     `json:"session_count"`
        LastSessionDate *string    `json:"last_session_date"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.PreReservations.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrPreReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "pre-reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if body.UserID != nil {
        p.UserID = *body.UserID
    }
    if body.AreaScheduleID != nil {
        p.AreaScheduleID = *body.AreaScheduleID
    }
    if body.SessionCount != nil {
        p.SessionCount = *body.SessionCount
    }
    if body.LastSessionDate != nil {
        d, err := time.Parse(dateLayout, strings.TrimSpace(*body.LastSessionDate))
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid last_session_date, expected YYYY-MM-DD"})
        }
        p.LastSessionDate = d
    }
    if err := p.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.PreReservations.Update(ctx, &p); err != nil {
        if err == repository.ErrPreReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "pre-reservation not found"})
        }
        if strings.Contains(err.Error(), "1452") {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced user or area schedule does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, p)
}

// DeletePreReservation handles DELETE /v1/admin/pre-reservations/:id.
func (h *AdminHandler) DeletePreReservation(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.PreReservations.Delete(ctx, id); err != nil {
        if err == repository.ErrPreReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "pre-reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
