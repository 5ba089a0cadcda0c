package handler

// Customer-facing access to the medical profile.  Profiles are created
// by the clinic's back office; customers can read their own profile
// and adjust the contact fields on it.

import (
    "context"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// GetCustomerProfile handles GET /v1/customer-profiles/:id.  The
// lookup is scoped to the owner, so someone else's profile responds
// 404 exactly like one that does not exist.
func (h *CustomerHandler) GetCustomerProfile(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid profile id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.Profiles.GetByIDForUser(ctx, id, userID)
    if err != nil {
        if err == repository.ErrProfileNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer profile not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch profile"})
    }
    return c.JSON(http.StatusOK, p)
}

// UpdateCustomerProfile handles PATCH /v1/customer-profiles/:id.  Only
// the contact fields are customer-editable; the medical flags and the
// national id stay under admin control.  Nil fields are left alone.
func (h *CustomerHandler) UpdateCustomerProfile(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid profile id"})
    }
    var body struct {
        Address          *string `json:"address"`
        HouseNumber      *string `json:"house_number"`
        PrimaryPhysician *string `json:"primary_physician"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.Profiles.UpdateForUser(ctx, id, userID, body.Address, body.HouseNumber, body.PrimaryPhysician)
    if err != nil {
        if err == repository.ErrProfileNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer profile not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update profile"})
    }
    return c.JSON(http.StatusOK, p)
}
