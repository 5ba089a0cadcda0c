package handler

// Customer-facing feedback endpoints.  A freshly posted comment always
// starts unreviewed; flipping is_reviewed is an admin operation.

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

// CreateComment handles POST /v1/comments.  The author comes from the
// access token; the body carries only the message.
func (h *CustomerHandler) CreateComment(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        Message string `json:"message"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    cm := model.Comment{
        UserID:  userID,
        Message: strings.TrimSpace(body.Message),
    }
    if err := cm.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Comments.Create(ctx, &cm); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create comment"})
    }
    return c.JSON(http.StatusCreated, cm)
}

// GetComment handles GET /v1/comments/:id.  The lookup is scoped to
// the author, so a foreign comment responds 404.
func (h *CustomerHandler) GetComment(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid comment id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    cm, err := h.Comments.GetByIDForUser(ctx, id, userID)
    if err != nil {
        if err == repository.ErrCommentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch comment"})
    }
    return c.JSON(http.StatusOK, cm)
}

// ListComments handles GET /v1/comments.  It returns the current
// user's comments, newest first.
func (h *CustomerHandler) ListComments(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Comments.ListForUser(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load comments"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
