package handler

// Staff-facing reads over the shift plan.  Shift assignment is an
// admin operation; operators see their own schedule and the active
// slice of it starting today.

import (
    "context"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// GetShift handles GET /v1/shifts/:id.  The lookup is scoped to the
// operator, so a colleague's shift responds 404.
func (h *OperatorHandler) GetShift(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    s, err := h.Shifts.GetByIDForOperator(ctx, id, userID)
    if err != nil {
        if err == repository.ErrShiftNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "shift not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch shift"})
    }
    return c.JSON(http.StatusOK, s)
}

// ListShifts handles GET /v1/shifts.  It returns the current
// operator's shifts ordered by date and period.
func (h *OperatorHandler) ListShifts(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Shifts.ListForOperator(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load shifts"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// ListActiveShifts handles GET /v1/shifts/active.  It returns the
// operator's shifts from today on.
func (h *OperatorHandler) ListActiveShifts(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Shifts.ListActiveForOperator(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load shifts"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
