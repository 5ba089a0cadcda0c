package handler

// Admin endpoints for bookable slots.  A slot is one operator's window
// on a date (period + labelled time range).  The date/time_slot/operator
// triple is unique; reservations pointing at a slot block its deletion.

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

// ListSlots handles GET /v1/admin/slots.  The optional ?search= matches
// the operator's username or the slot date.
func (h *AdminHandler) ListSlots(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Slots.List(ctx, strings.TrimSpace(c.QueryParam("search")))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load slots"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetSlot handles GET /v1/admin/slots/:id.
func (h *AdminHandler) GetSlot(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    s, err := h.Slots.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrSlotNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "slot not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, s)
}

// CreateSlot handles POST /v1/admin/slots.
func (h *AdminHandler) CreateSlot(c echo.Context) error {
    var body struct {
        OperatorID uint64 `json:"operator_id"`
        Date       string `json:"date"`
        Period     string `json:"period"`
        TimeSlot   string `json:"time_slot"`
        Duration   *int64 `json:"duration"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    s := model.Slot{
        OperatorID: body.OperatorID,
        Period:     strings.ToUpper(strings.TrimSpace(body.Period)),
        TimeSlot:   strings.TrimSpace(body.TimeSlot),
        Duration:   30,
    }
    if strings.TrimSpace(body.Date) != "" {
        d, err := time.Parse(dateLayout, strings.TrimSpace(body.Date))
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
        }
        s.Date = d
    }
    if body.Duration != nil {
        s.Duration = *body.Duration
    }
    if err := s.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Slots.Create(ctx, &s); err != nil {
        switch {
        case err == repository.ErrConflict:
            return c.JSON(http.StatusConflict, echo.Map{"error": "slot already exists for this operator, date and time"})
        case strings.Contains(err.Error(), "1452"):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "operator does not exist", "field": "operator_id"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create slot"})
        }
    }
    return c.JSON(http.StatusCreated, s)
}

// UpdateSlot handles PUT/PATCH /v1/admin/slots/:id.
func (h *AdminHandler) UpdateSlot(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        OperatorID *uint64 `json:"operator_id"`
        Date       *string `json:"date"`
        Period     *string `json:"period"`
        TimeSlot   *string `json:"time_slot"`
        Duration   *int64  `json:"duration"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    s, err := h.Slots.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrSlotNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "slot not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if body.OperatorID != nil {
        s.OperatorID = *body.OperatorID
    }
    if body.Date != nil {
        d, err := time.Parse(dateLayout, strings.TrimSpace(*body.Date))
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
        }
        s.Date = d
    }
    if body.Period != nil {
        s.Period = strings.ToUpper(strings.TrimSpace(*body.Period))
    }
    if body.TimeSlot != nil {
        s.TimeSlot = strings.TrimSpace(*body.TimeSlot)
    }
    if body.Duration != nil {
        s.Duration = *body.Duration
    }
    if err := s.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.Slots.Update(ctx, &s); err != nil {
        switch {
        case err == repository.ErrSlotNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "slot not found"})
        case err == repository.ErrConflict:
            return c.JSON(http.StatusConflict, echo.Map{"error": "slot already exists for this operator, date and time"})
        case strings.Contains(err.Error(), "1452"):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "operator does not exist", "field": "operator_id"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
        }
    }
    return c.JSON(http.StatusOK, s)
}

// DeleteSlot handles DELETE /v1/admin/slots/:id.
func (h *AdminHandler) DeleteSlot(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Slots.Delete(ctx, id); err != nil {
        switch err {
        case repository.ErrSlotNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "slot not found"})
        case repository.ErrProtected:
            return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete slot with reservations"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
        }
    }
    return c.NoContent(http.StatusNoContent)
}
