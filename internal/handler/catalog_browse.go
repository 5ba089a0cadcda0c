// This file defines handlers for the authenticated catalog API. These routes
// let any signed-in role browse the bookable surface of the clinic: active
// laser areas, published schedules, slots, valid discount codes and
// cancellation windows. Operational fields (operator IDs, usage counters,
// timestamps) are filtered from responses.

package handler

import (
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"

    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// CatalogHandler aggregates the repositories needed for read-only browsing.
// It produces sanitized responses suitable for every authenticated role.
type CatalogHandler struct {
    Areas     *repository.LaserAreaRepo          // provides access to laser area data
    Schedules *repository.AreaScheduleRepo       // provides access to schedule data
    Slots     *repository.SlotRepo               // provides access to slot data
    Codes     *repository.DiscountCodeRepo       // provides access to discount code data
    Periods   *repository.CancellationPeriodRepo // provides access to cancellation windows
}

// CatalogArea represents a laser area exposed via the catalog API. It
// contains only the fields a customer needs to choose a treatment.
type CatalogArea struct {
    ID            uint64          `json:"id"`
    Name          string          `json:"name"`
    CurrentPrice  decimal.Decimal `json:"current_price"`
    DeadlineReset int64           `json:"deadline_reset"`
    OperateTime   int64           `json:"operate_time"`
}

// CatalogSchedule represents a published area schedule. Draft schedules
// (no start time yet) never reach this view.
type CatalogSchedule struct {
    ID          uuid.UUID       `json:"id"`
    LaserAreaID uint64          `json:"laser_area_id"`
    Price       decimal.Decimal `json:"price"`
    StartTime   *time.Time      `json:"start_time"`
    EndTime     *time.Time      `json:"end_time,omitempty"`
    OperateTime int64           `json:"operate_time"`
}

// CatalogSlot represents a bookable slot. The operator running the slot
// is not exposed.
type CatalogSlot struct {
    ID       uuid.UUID `json:"id"`
    Date     string    `json:"date"`
    Period   string    `json:"period"`
    TimeSlot string    `json:"time_slot"`
    Duration int64     `json:"duration"`
}

// CatalogCode represents a discount code still open for use. Usage
// bookkeeping stays internal.
type CatalogCode struct {
    ID         uint64          `json:"id"`
    Code       string          `json:"code"`
    Amount     decimal.Decimal `json:"amount"`
    ValidUntil *time.Time      `json:"valid_until,omitempty"`
}

// CatalogPeriod represents a cancellation window during which the clinic
// does not honour reservations.
type CatalogPeriod struct {
    ID        uuid.UUID `json:"id"`
    StartTime time.Time `json:"start_time"`
    EndTime   time.Time `json:"end_time"`
}

// GetLaserAreas returns the active laser areas. Response JSON contains an
// "items" array of CatalogArea.
func (h *CatalogHandler) GetLaserAreas(c echo.Context) error {
    ctx := c.Request().Context()
    areas, err := h.Areas.ListActive(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]CatalogArea, 0, len(areas))
    for _, a := range areas {
        out = append(out, CatalogArea{
            ID:            a.ID,
            Name:          a.Name,
            CurrentPrice:  a.CurrentPrice,
            DeadlineReset: a.DeadlineReset,
            OperateTime:   a.OperateTime,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetLaserAreaByName returns one active laser area looked up by its unique
// name. Inactive areas are indistinguishable from absent ones here.
func (h *CatalogHandler) GetLaserAreaByName(c echo.Context) error {
    ctx := c.Request().Context()
    name := c.Param("name")
    a, err := h.Areas.GetActiveByName(ctx, name)
    if err != nil {
        if err == repository.ErrAreaNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "laser area not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, CatalogArea{
        ID:            a.ID,
        Name:          a.Name,
        CurrentPrice:  a.CurrentPrice,
        DeadlineReset: a.DeadlineReset,
        OperateTime:   a.OperateTime,
    })
}

// GetAreaSchedules lists schedules whose start time has been set. The same
// handler backs both the base route and its /active alias.
func (h *CatalogHandler) GetAreaSchedules(c echo.Context) error {
    ctx := c.Request().Context()
    schedules, err := h.Schedules.ListActive(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]CatalogSchedule, 0, len(schedules))
    for _, s := range schedules {
        out = append(out, CatalogSchedule{
            ID:          s.ID,
            LaserAreaID: s.LaserAreaID,
            Price:       s.Price,
            StartTime:   s.StartTime,
            EndTime:     s.EndTime,
            OperateTime: s.OperateTime,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetSlots lists every slot on the calendar.
func (h *CatalogHandler) GetSlots(c echo.Context) error {
    ctx := c.Request().Context()
    slots, err := h.Slots.List(ctx, "")
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]CatalogSlot, 0, len(slots))
    for _, s := range slots {
        out = append(out, CatalogSlot{
            ID:       s.ID,
            Date:     s.Date.Format("2006-01-02"),
            Period:   s.Period,
            TimeSlot: s.TimeSlot,
            Duration: s.Duration,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetAvailableSlots lists the slots on a specific date. The date query
// parameter is mandatory and must be an ISO calendar date.
func (h *CatalogHandler) GetAvailableSlots(c echo.Context) error {
    ctx := c.Request().Context()
    date := c.QueryParam("date")
    if date == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "Date parameter is required."})
    }
    if _, err := time.Parse("2006-01-02", date); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD", "field": "date"})
    }
    slots, err := h.Slots.ListByDate(ctx, date)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]CatalogSlot, 0, len(slots))
    for _, s := range slots {
        out = append(out, CatalogSlot{
            ID:       s.ID,
            Date:     s.Date.Format("2006-01-02"),
            Period:   s.Period,
            TimeSlot: s.TimeSlot,
            Duration: s.Duration,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetDiscountCodes lists codes that can still be applied. The same handler
// backs both the base route and its /valid alias.
func (h *CatalogHandler) GetDiscountCodes(c echo.Context) error {
    ctx := c.Request().Context()
    codes, err := h.Codes.ListValid(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]CatalogCode, 0, len(codes))
    for _, d := range codes {
        out = append(out, CatalogCode{ID: d.ID, Code: d.Code, Amount: d.Amount, ValidUntil: d.ValidUntil})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetDiscountCodeByCode returns one discount code looked up by its code
// string. Exhausted and expired codes surface as not found, so this view
// only ever confirms codes that would still apply.
func (h *CatalogHandler) GetDiscountCodeByCode(c echo.Context) error {
    ctx := c.Request().Context()
    code := c.Param("code")
    d, err := h.Codes.GetByCode(ctx, code)
    if err != nil {
        if err == repository.ErrCodeNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "discount code not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if d.Exhausted() || d.Expired(time.Now().UTC()) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "discount code not found"})
    }
    return c.JSON(http.StatusOK, CatalogCode{ID: d.ID, Code: d.Code, Amount: d.Amount, ValidUntil: d.ValidUntil})
}

// GetCancellationPeriods lists every cancellation window, past and future.
func (h *CatalogHandler) GetCancellationPeriods(c echo.Context) error {
    ctx := c.Request().Context()
    periods, err := h.Periods.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]CatalogPeriod, 0, len(periods))
    for _, p := range periods {
        out = append(out, CatalogPeriod{ID: p.ID, StartTime: p.StartTime, EndTime: p.EndTime})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetActiveCancellationPeriods lists the windows that have not ended yet.
func (h *CatalogHandler) GetActiveCancellationPeriods(c echo.Context) error {
    ctx := c.Request().Context()
    periods, err := h.Periods.ListActive(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]CatalogPeriod, 0, len(periods))
    for _, p := range periods {
        out = append(out, CatalogPeriod{ID: p.ID, StartTime: p.StartTime, EndTime: p.EndTime})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}
