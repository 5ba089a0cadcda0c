package handler

// Admin endpoints for customer medical profiles.  A profile extends a
// CUSTOMER account with the clinic's intake data (national id, address,
// medical flags).  One profile per user; the national id is unique.

import (
    "context"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/laser-clinic-reservation/internal/model"
    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

// dateLayout is the wire format for DATE columns (last_visit_date,
// shift_date, slot date, last_session_date).
const dateLayout = "2006-01-02"

// ListCustomerProfiles handles GET /v1/admin/customer-profiles.  The
// optional ?search= matches the national id or the owner's username.
func (h *AdminHandler) ListCustomerProfiles(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    items, err := h.Profiles.List(ctx, strings.TrimSpace(c.QueryParam("search")))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load customer profiles"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetCustomerProfile handles GET /v1/admin/customer-profiles/:id.
func (h *AdminHandler) GetCustomerProfile(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.Profiles.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrProfileNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer profile not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, p)
}

// CreateCustomerProfile handles POST /v1/admin/customer-profiles.
func (h *AdminHandler) CreateCustomerProfile(c echo.Context) error {
    var body struct {
        UserID              uint64  `json:"user_id"`
        NationalID          string  `json:"national_id"`
        Address             string  `json:"address"`
        HouseNumber         string  `json:"house_number"`
        HasMedicalHistory   bool    `json:"has_medical_history"`
        HasDrugHistory      bool    `json:"has_drug_history"`
        PrimaryPhysician    string  `json:"primary_physician"`
        IsPremium           bool    `json:"is_premium"`
        OfflineAppointments int64   `json:"offline_appointments"`
        LastVisitDate       *string `json:"last_visit_date"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    p := model.CustomerProfile{
        UserID:              body.UserID,
        NationalID:          strings.TrimSpace(body.NationalID),
        Address:             body.Address,
        HouseNumber:         body.HouseNumber,
        HasMedicalHistory:   body.HasMedicalHistory,
        HasDrugHistory:      body.HasDrugHistory,
        PrimaryPhysician:    body.PrimaryPhysician,
        IsPremium:           body.IsPremium,
        OfflineAppointments: body.OfflineAppointments,
    }
    if body.LastVisitDate != nil && strings.TrimSpace(*body.LastVisitDate) != "" {
        d, err := time.Parse(dateLayout, strings.TrimSpace(*body.LastVisitDate))
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid last_visit_date, expected YYYY-MM-DD"})
        }
        p.LastVisitDate = &d
    }
    if err := p.Validate(); err != nil {
        return validationError(c, err)
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Profiles.Create(ctx, &p); err != nil {
        if err == repository.ErrNationalIDExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "national id already registered or user already has a profile"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create customer profile"})
    }
    return c.JSON(http.StatusCreated, p)
}

// UpdateCustomerProfile handles PUT/PATCH /v1/admin/customer-profiles/:id.
func (h *AdminHandler) UpdateCustomerProfile(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        UserID              *uint64 `json:"user_id"`
        NationalID          *string `json:"national_id"`
        Address             *string `json:"address"`
        HouseNumber         *string `json:"house_number"`
        HasMedicalHistory   *bool   `json:"has_medical_history"`
        HasDrugHistory      *bool   `json:"has_drug_history"`
        PrimaryPhysician    *string `json:"primary_physician"`
        IsPremium           *bool   `json:"is_premium"`
        OfflineAppointments *int64  `json:"offline_appointments"`
        LastVisitDate       *string `json:"last_visit_date"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    p, err := h.Profiles.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrProfileNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer profile not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if body.UserID != nil {
        p.UserID = *body.UserID
    }
    if body.NationalID != nil {
        p.NationalID = strings.TrimSpace(*body.NationalID)
    }
    if body.Address != nil {
        p.Address = *body.Address
    }
    if body.HouseNumber != nil {
        p.HouseNumber = *body.HouseNumber
    }
    if body.HasMedicalHistory != nil {
        p.HasMedicalHistory = *body.HasMedicalHistory
    }
    if body.HasDrugHistory != nil {
        p.HasDrugHistory = *body.HasDrugHistory
    }
    if body.PrimaryPhysician != nil {
        p.PrimaryPhysician = *body.PrimaryPhysician
    }
    if body.IsPremium != nil {
        p.IsPremium = *body.IsPremium
    }
    if body.OfflineAppointments != nil {
        p.OfflineAppointments = *body.OfflineAppointments
    }
    if body.LastVisitDate != nil {
        if strings.TrimSpace(*body.LastVisitDate) == "" {
            p.LastVisitDate = nil
        } else {
            d, err := time.Parse(dateLayout, strings.TrimSpace(*body.LastVisitDate))
            if err != nil {
                return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid last_visit_date, expected YYYY-MM-DD"})
            }
            p.LastVisitDate = &d
        }
    }
    if err := p.Validate(); err != nil {
        return validationError(c, err)
    }
    if err := h.Profiles.Update(ctx, &p); err != nil {
        if err == repository.ErrNationalIDExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "national id already registered or user already has a profile"})
        }
        if err == repository.ErrProfileNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer profile not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, p)
}

// DeleteCustomerProfile handles DELETE /v1/admin/customer-profiles/:id.
func (h *AdminHandler) DeleteCustomerProfile(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Profiles.Delete(ctx, id); err != nil {
        if err == repository.ErrProfileNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer profile not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
