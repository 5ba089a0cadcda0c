package handler

// Admin endpoints for cancellation periods: windows during which the
// clinic is closed and bookings are suspended.  New windows cannot start
// in the past; editing a window that has already begun is allowed.

import (
    "context"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/laser-clinic-reservation/internal/model"
    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// ListCancellationPeriods handles GET /v1/admin/cancellation-periods.
func (h *AdminHandler) ListCancellationPeriods(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Periods.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cancellation periods"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetCancellationPeriod handles GET /v1/admin/cancellation-periods/:id.
func (h *AdminHandler) GetCancellationPeriod(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.Periods.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrPeriodNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "cancellation period not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, p)
}

// CreateCancellationPeriod handles POST /v1/admin/cancellation-periods.
func (h *AdminHandler) CreateCancellationPeriod(c echo.Context) error {
    var body struct {
        StartTime *time.Time `json:"start_time"`
        EndTime   *time.Time `json:"end_time"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    var p model.CancellationPeriod
    if body.StartTime != nil {
        p.StartTime = *body.StartTime
    }
    if body.EndTime != nil {
        p.EndTime = *body.EndTime
    }
    if err := p.ValidateNew(time.Now().UTC()); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Periods.Create(ctx, &p); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create cancellation period"})
    }
    return c.JSON(http.StatusCreated, p)
}

// UpdateCancellationPeriod handles PUT/PATCH /v1/admin/cancellation-periods/:id.
func (h *AdminHandler) UpdateCancellationPeriod(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        StartTime *time.Time `json:"start_time"`
        EndTime   *time.Time `json:"end_time"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.Periods.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrPeriodNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "cancellation period not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if body.StartTime != nil {
        p.StartTime = *body.StartTime
    }
    if body.EndTime != nil {
        p.EndTime = *body.EndTime
    }
    if err := p.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.Periods.Update(ctx, &p); err != nil {
        if err == repository.ErrPeriodNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "cancellation period not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, p)
}

// DeleteCancellationPeriod handles DELETE /v1/admin/cancellation-periods/:id.
func (h *AdminHandler) DeleteCancellationPeriod(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Periods.Delete(ctx, id); err != nil {
        if err == repository.ErrPeriodNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "cancellation period not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
