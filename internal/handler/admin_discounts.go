package handler

// Admin endpoints for discount codes.  Codes are addressed by their
// unique code string, matching how they are redeemed at payment time.

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"

    "github.com/iliyamo/laser-clinic-reservation/internal/model"
    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// ListDiscountCodes handles GET /v1/admin/discount-codes.  The optional
// ?search= matches the code string.
func (h *AdminHandler) ListDiscountCodes(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Discounts.List(ctx, strings.TrimSpace(c.QueryParam("search")))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load discount codes"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetDiscountCode handles GET /v1/admin/discount-codes/:code.
func (h *AdminHandler) GetDiscountCode(c echo.Context) error {
    code := strings.TrimSpace(c.Param("code"))
    if code == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid code"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    d, err := h.Discounts.GetByCode(ctx, code)
    if err != nil {
        if err == repository.ErrCodeNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "discount code not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, d)
}

// CreateDiscountCode handles POST /v1/admin/discount-codes.
func (h *AdminHandler) CreateDiscountCode(c echo.Context) error {
    var body struct {
        Code       string          `json:"code"`
        Amount     decimal.Decimal `json:"amount"`
        IsUsed     bool            `json:"is_used"`
        ValidUntil *time.Time      `json:"valid_until"`
        MaxUsage   *int64          `json:"max_usage"`
        UsageCount int64           `json:"usage_count"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    d := model.DiscountCode{
        Code:       strings.TrimSpace(body.Code),
        Amount:     body.Amount,
        IsUsed:     body.IsUsed,
        ValidUntil: body.ValidUntil,
        MaxUsage:   1,
        UsageCount: body.UsageCount,
    }
    if body.MaxUsage != nil {
        d.MaxUsage = *body.MaxUsage
    }
    if err := d.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Discounts.Create(ctx, &d); err != nil {
        if err == repository.ErrCodeExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "discount code already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create discount code"})
    }
    return c.JSON(http.StatusCreated, d)
}

// UpdateDiscountCode handles PUT/PATCH /v1/admin/discount-codes/:code.
func (h *AdminHandler) UpdateDiscountCode(c echo.Context) error {
    code := strings.TrimSpace(c.Param("code"))
    if code == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid code"})
    }
    var body struct {
        Code       *string          `json:"code"`
        Amount     *decimal.Decimal `json:"amount"`
        IsUsed     *bool            `json:"is_used"`
        ValidUntil *time.Time       `json:"valid_until"`
        MaxUsage   *int64           `json:"max_usage"`
        UsageCount *int64           `json:"usage_count"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    d, err := h.Discounts.GetByCode(ctx, code)
    if err != nil {
        if err == repository.ErrCodeNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "discount code not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if body.Code != nil {
        d.Code = strings.TrimSpace(*body.Code)
    }
    if body.Amount != nil {
        d.Amount = *body.Amount
    }
    if body.IsUsed != nil {
        d.IsUsed = *body.IsUsed
    }
    if body.ValidUntil != nil {
        d.ValidUntil = body.ValidUntil
    }
    if body.MaxUsage != nil {
        d.MaxUsage = *body.MaxUsage
    }
    if body.UsageCount != nil {
        d.UsageCount = *body.UsageCount
    }
    if err := d.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.Discounts.Update(ctx, &d); err != nil {
        if err == repository.ErrCodeNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "discount code not found"})
        }
        if err == repository.ErrCodeExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "discount code already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, d)
}

// DeleteDiscountCode handles DELETE /v1/admin/discount-codes/:code.
// Reservations keep their rows; the discount_code_id reference nulls out
// at the database level.
func (h *AdminHandler) DeleteDiscountCode(c echo.Context) error {
    code := strings.TrimSpace(c.Param("code"))
    if code == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid code"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    d, err := h.Discounts.GetByCode(ctx, code)
    if err != nil {
        if err == repository.ErrCodeNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "discount code not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if err := h.Discounts.Delete(ctx, d.ID); err != nil {
        if err == repository.ErrCodeNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "discount code not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
