package handler

// Admin endpoints for staff attendance records.  Attendance rows mark a
// staff member's entry into the clinic and, once they leave, the exit
// timestamp plus the has_exited flag.  Admins manage the full set; staff
// members read their own rows through the operator endpoints.

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

// ListAttendance handles GET /v1/admin/staff-attendance.  The optional
// ?search= narrows results by the staff member's username.
func (h *AdminHandler) ListAttendance(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Attendance.List(ctx, strings.TrimSpace(c.QueryParam("search")))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load attendance records"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// ListActiveAttendance handles GET /v1/admin/staff-attendance/active and
// returns the staff members currently inside the clinic (has_exited=false).
func (h *AdminHandler) ListActiveAttendance(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Attendance.ListActive(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load attendance records"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetAttendance handles GET /v1/admin/staff-attendance/:id.
func (h *AdminHandler) GetAttendance(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    a, err := h.Attendance.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrAttendanceNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "attendance record not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, a)
}

// CreateAttendance handles POST /v1/admin/staff-attendance.  Creating a
// record clocks the staff member in: a missing entry_timestamp defaults
// to now, and has_exited follows the presence of exit_timestamp unless
// the body pins it explicitly.
func (h *AdminHandler) CreateAttendance(c echo.Context) error {
    var body struct {
        UserID         uint64     `json:"user_id"`
        EntryTimestamp *time.Time `json:"entry_timestamp"`
        ExitTimestamp  *time.Time `json:"exit_timestamp"`
        HasExited      *bool      `json:"has_exited"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    a := model.StaffAttendance{
        UserID:         body.UserID,
        EntryTimestamp: body.EntryTimestamp,
        ExitTimestamp:  body.ExitTimestamp,
        HasExited:      body.ExitTimestamp != nil,
    }
    if a.EntryTimestamp == nil {
        now := time.Now().UTC()
        a.EntryTimestamp = &now
    }
    if body.HasExited != nil {
        a.HasExited = *body.HasExited
    }
    if err := a.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Attendance.Create(ctx, &a); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create attendance record"})
    }
    return c.JSON(http.StatusCreated, a)
}

// UpdateAttendance handles PUT/PATCH /v1/admin/staff-attendance/:id.
func (h *AdminHandler) UpdateAttendance(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        UserID         *uint64    `json:"user_id"`
        EntryTimestamp *time.Time `json:"entry_timestamp"`
        ExitTimestamp  *time.Time `json:"exit_timestamp"`
        HasExited      *bool      `json:"has_exited"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    a, err := h.Attendance.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrAttendanceNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "attendance record not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if body.UserID != nil {
        a.UserID = *body.UserID
    }
    if body.EntryTimestamp != nil {
        a.EntryTimestamp = body.EntryTimestamp
    }
    if body.ExitTimestamp != nil {
        a.ExitTimestamp = body.ExitTimestamp
        // recording an exit flips the flag unless the body pins it below
        a.HasExited = true
    }
    if body.HasExited != nil {
        a.HasExited = *body.HasExited
    }
    if err := a.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.Attendance.Update(ctx, &a); err != nil {
        if err == repository.ErrAttendanceNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "attendance record not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, a)
}

// DeleteAttendance handles DELETE /v1/admin/staff-attendance/:id.
func (h *AdminHandler) DeleteAttendance(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Attendance.Delete(ctx, id); err != nil {
        if err == repository.ErrAttendanceNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "attendance record not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
