package handler

// Customer-facing reads over pre-reservations.  Rows are created by
// the clinic's back office; customers can only inspect their own
// treatment-course progress.

import (
    "context"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// GetPreReservation handles GET /v1/pre-reservations/:id.  The lookup
// is scoped to the owner, so a foreign row responds 404.
func (h *CustomerHandler) GetPreReservation(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pre-reservation id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.PreReservations.GetByIDForUser(ctx, id, userID)
    if err != nil {
        if err == repository.ErrPreReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "pre-reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch pre-reservation"})
    }
    return c.JSON(http.StatusOK, p)
}

// ListPreReservations handles GET /v1/pre-reservations.  It returns
// the current user's course records, most recent session first.
func (h *CustomerHandler) ListPreReservations(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.PreReservations.ListForUser(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load pre-reservations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
