package handler

// Admin endpoints for customer comments.  The review queue lives here:
// GET /unreviewed lists what still needs moderation, and an update with
// is_reviewed=true clears an item off the queue.

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

// ListComments handles GET /v1/admin/comments.  The optional ?search=
// matches the comment text or the author's username.
func (h *AdminHandler) ListComments(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Comments.List(ctx, strings.TrimSpace(c.QueryParam("search")))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load comments"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// ListUnreviewedComments handles GET /v1/admin/comments/unreviewed.
func (h *AdminHandler) ListUnreviewedComments(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Comments.ListUnreviewed(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load comments"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetComment handles GET /v1/admin/comments/:id.
func (h *AdminHandler) GetComment(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    cm, err := h.Comments.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrCommentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, cm)
}

// CreateComment handles POST /v1/admin/comments, recording feedback on
// behalf of the given user.
func (h *AdminHandler) CreateComment(c echo.Context) error {
    var body struct {
        UserID     uint64 `json:"user_id"`
        Message    string `json:"message"`
        IsReviewed bool   `json:"is_reviewed"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    cm := model.Comment{
        UserID:     body.UserID,
        Message:    body.Message,
        IsReviewed: body.IsReviewed,
    }
    if err := cm.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Comments.Create(ctx, &cm); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create comment"})
    }
    return c.JSON(http.StatusCreated, cm)
}

// UpdateComment handles PUT/PATCH /v1/admin/comments/:id.
func (h *AdminHandler) UpdateComment(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        Message    *string `json:"message"`
        IsReviewed *bool   `json:"is_reviewed"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    cm, err := h.Comments.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrCommentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if body.Message != nil {
        cm.Message = *body.Message
    }
    if body.IsReviewed != nil {
        cm.IsReviewed = *body.IsReviewed
    }
    if err := cm.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.Comments.Update(ctx, &cm); err != nil {
        if err == repository.ErrCommentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, cm)
}

// DeleteComment handles DELETE /v1/admin/comments/:id.
func (h *AdminHandler) DeleteComment(c echo.Context) error {
    id, err := uuid.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Comments.Delete(ctx, id); err != nil {
        if err == repository.ErrCommentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
