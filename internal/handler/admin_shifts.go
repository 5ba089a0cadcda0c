package handler

// Admin endpoints for operator shifts.  A shift books an operator for a
// morning or afternoon on a given date; the operator/date/period triple
// is unique and collisions surface as 409.

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

// ListShifts handles GET /v1/admin/shifts.  The optional ?search= matches
// the operator's username or the shift date.
func (h *AdminHandler) ListShifts(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Shifts.List(ctx, strings.TrimSpace(c.QueryParam("search")))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load shifts"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetShift handles GET /v1/admin/shifts/:id.
func (h *AdminHandler) GetShift(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    s, err := h.Shifts.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrShiftNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "shift not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, s)
}

// CreateShift handles POST /v1/admin/shifts.  A blank operator_name is
// filled from the operator's username inside the repository.
func (h *AdminHandler) CreateShift(c echo.Context) error {
    var body struct {
        OperatorID   uint64 `json:"operator_id"`
        OperatorName string `json:"operator_name"`
        ShiftDate    string `json:"shift_date"`
        Period       string `json:"period"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    s := model.OperatorShift{
        OperatorID:   body.OperatorID,
        OperatorName: strings.TrimSpace(body.OperatorName),
        Period:       strings.ToUpper(strings.TrimSpace(body.Period)),
    }
    if strings.TrimSpace(body.ShiftDate) != "" {
        d, err := time.Parse(dateLayout, strings.TrimSpace(body.ShiftDate))
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift_date, expected YYYY-MM-DD"})
        }
        s.ShiftDate = d
    }
    if err := s.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Shifts.Create(ctx, &s); err != nil {
        switch {
        case err == repository.ErrConflict:
            return c.JSON(http.StatusConflict, echo.Map{"error": "operator already has a shift for this date and period"})
        case err == repository.ErrUserNotFound || strings.Contains(err.Error(), "1452"):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "operator does not exist", "field": "operator_id"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create shift"})
        }
    }
    return c.JSON(http.StatusCreated, s)
}

// UpdateShift handles PUT/PATCH /v1/admin/shifts/:id.
func (h *AdminHandler) UpdateShift(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        OperatorID   *uint64 `json:"operator_id"`
        OperatorName *string `json:"operator_name"`
        ShiftDate    *string `json:"shift_date"`
        Period       *string `json:"period"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    s, err := h.Shifts.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrShiftNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "shift not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if body.OperatorID != nil {
        s.OperatorID = *body.OperatorID
    }
    if body.OperatorName != nil {
        s.OperatorName = strings.TrimSpace(*body.OperatorName)
    }
    if body.ShiftDate != nil {
        d, err := time.Parse(dateLayout, strings.TrimSpace(*body.ShiftDate))
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift_date, expected YYYY-MM-DD"})
        }
        s.ShiftDate = d
    }
    if body.Period != nil {
        s.Period = strings.ToUpper(strings.TrimSpace(*body.Period))
    }
    if err := s.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.Shifts.Update(ctx, &s); err != nil {
        switch {
        case err == repository.ErrShiftNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "shift not found"})
        case err == repository.ErrConflict:
            return c.JSON(http.StatusConflict, echo.Map{"error": "operator already has a shift for this date and period"})
        case strings.Contains(err.Error(), "1452"):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "operator does not exist", "field": "operator_id"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
        }
    }
    return c.JSON(http.StatusOK, s)
}

// DeleteShift handles DELETE /v1/admin/shifts/:id.
func (h *AdminHandler) DeleteShift(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Shifts.Delete(ctx, id); err != nil {
        if err == repository.ErrShiftNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "shift not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
