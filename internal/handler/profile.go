package handler

// Self-service account profile.  Unlike the customer-owned families,
// which scope their queries and answer 404 for foreign rows, this
// route compares the path id against the token identity up front and
// answers 403 on a mismatch, before any lookup happens.

import (
    "context"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// GetUserProfile handles GET /v1/users/profile/:id.  Any authenticated
// role may call it, but only for their own id.
func (h *AuthHandler) GetUserProfile(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
    }
    if id != userID {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    u, err := h.Users.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrUserNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch user"})
    }
    return c.JSON(http.StatusOK, toUserPart(u))
}

// UpdateUserProfile handles PATCH /v1/users/profile/:id.  The email
// and name fields are self-editable; username, role and password stay
// under their own flows.  Nil fields are left alone.
func (h *AuthHandler) UpdateUserProfile(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
    }
    if id != userID {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }
    var body struct {
        Email     *string `json:"email"`
        FirstName *string `json:"first_name"`
        LastName  *string `json:"last_name"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.Email != nil && strings.TrimSpace(*body.Email) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email cannot be empty", "field": "email"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    u, err := h.Users.UpdateSelf(ctx, id, body.Email, body.FirstName, body.LastName)
    if err != nil {
        switch err {
        case repository.ErrUserExists:
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already in use"})
        case repository.ErrUserNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update user"})
    }
    return c.JSON(http.StatusOK, toUserPart(u))
}
