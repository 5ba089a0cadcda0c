package handler

// Admin endpoints for area schedules: the time/price windows attached to
// a laser area.  Deleting a schedule is blocked while reservations or
// pre-reservations still point at it.

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

// ListAreaSchedules handles GET /v1/admin/area-schedules.  The optional
// ?search= matches the owning laser area's name.
func (h *AdminHandler) ListAreaSchedules(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Schedules.List(ctx, strings.TrimSpace(c.QueryParam("search")))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load area schedules"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetAreaSchedule handles GET /v1/admin/area-schedules/:id.
func (h *AdminHandler) GetAreaSchedule(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    s, err := h.Schedules.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrScheduleNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "area schedule not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, s)
}

// CreateAreaSchedule handles POST /v1/admin/area-schedules.
func (h *AdminHandler) CreateAreaSchedule(c echo.Context) error {
    var body struct {
        LaserAreaID uint64          `json:"laser_area_id"`
        Price       decimal.Decimal `json:"price"`
        StartTime   *time.Time      `json:"start_time"`
        EndTime     *time.Time      `json:"end_time"`
        OperateTime *int64          `json:"operate_time"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    s := model.AreaSchedule{
        LaserAreaID: body.LaserAreaID,
        Price:       body.Price,
        StartTime:   body.StartTime,
        EndTime:     body.EndTime,
        OperateTime: 5,
    }
    if body.OperateTime != nil {
        s.OperateTime = *body.OperateTime
    }
    if err := s.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Schedules.Create(ctx, &s); err != nil {
        if strings.Contains(err.Error(), "1452") {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "laser area does not exist", "field": "laser_area_id"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create area schedule"})
    }
    return c.JSON(http.StatusCreated, s)
}

// UpdateAreaSchedule handles PUT/PATCH /v1/admin/area-schedules/:id.
func (h *AdminHandler) UpdateAreaSchedule(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        LaserAreaID *uint64          `json:"laser_area_id"`
        Price       *decimal.Decimal `json:"price"`
        StartTime   *time.Time       `json:"start_time"`
        EndTime     *time.Time       `json:"end_time"`
        OperateTime *int64           `json:"operate_time"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    s, err := h.Schedules.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrScheduleNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "area schedule not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if body.LaserAreaID != nil {
        s.LaserAreaID = *body.LaserAreaID
    }
    if body.Price != nil {
        s.Price = *body.Price
    }
    if body.StartTime != nil {
        s.StartTime = body.StartTime
    }
    if body.EndTime != nil {
        s.EndTime = body.EndTime
    }
    if body.OperateTime != nil {
        s.OperateTime = *body.OperateTime
    }
    if err := s.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.Schedules.Update(ctx, &s); err != nil {
        if err == repository.ErrScheduleNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "area schedule not found"})
        }
        if strings.Contains(err.Error(), "1452") {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "laser area does not exist", "field": "laser_area_id"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, s)
}

// DeleteAreaSchedule handles DELETE /v1/admin/area-schedules/:id.
func (h *AdminHandler) DeleteAreaSchedule(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Schedules.Delete(ctx, id); err != nil {
        switch err {
        case repository.ErrScheduleNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "area schedule not found"})
        case repository.ErrProtected:
            return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete area schedule with reservations"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
        }
    }
    return c.NoContent(http.StatusNoContent)
}
