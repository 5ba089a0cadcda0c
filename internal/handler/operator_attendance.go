package handler

// Staff-facing reads over attendance records.  Writing attendance is
// an admin operation; operators can only inspect their own records.

import (
    "context"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// GetAttendance handles GET /v1/operator/staff-attendance/:id.  The
// lookup is scoped to the operator, so a colleague's record responds
// 404.
func (h *OperatorHandler) GetAttendance(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid attendance id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    a, err := h.Attendance.GetByIDForUser(ctx, id, userID)
    if err != nil {
        if err == repository.ErrAttendanceNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "attendance record not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch attendance record"})
    }
    return c.JSON(http.StatusOK, a)
}

// ListAttendance handles GET /v1/operator/staff-attendance.  It
// returns the current operator's attendance records, newest first.
func (h *OperatorHandler) ListAttendance(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Attendance.ListForUser(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load attendance records"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
