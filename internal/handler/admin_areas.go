package handler // handler package contains admin laser area handlers

import (
    "context"  // context carries deadlines into repository calls
    "net/http" // http provides status code constants
    "strings"  // strings offers trimming utilities
    "time"     // time builds the per-request deadline

    "github.com/shopspring/decimal" // decimal represents money without float drift

    "github.com/iliyamo/laser-clinic-reservation/internal/model"      // model holds domain entities
    "github.com/iliyamo/laser-clinic-reservation/internal/repository" // repository holds sentinel errors
    "github.com/labstack/echo/v4"                                     // echo is the web framework used for handlers
)

// ListAreas handles GET /v1/admin/laser-areas and returns all areas, optionally filtered by ?search=
func (h *AdminHandler) ListAreas(c echo.Context) error { // begin ListAreas handler
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second) // bound the DB work
    defer cancel()                                                          // release the timer
    items, err := h.Areas.List(ctx, strings.TrimSpace(c.QueryParam("search"))) // fetch areas matching the filter
    if err != nil {                                                            // handle repository errors
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"}) // respond with internal server error
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items, "count": len(items)}) // return the list wrapped in a JSON object
}

// GetArea handles GET /v1/admin/laser-areas/:name. Areas are addressed by
// their unique name rather than the numeric id.
func (h *AdminHandler) GetArea(c echo.Context) error { // begin GetArea handler
    name := strings.TrimSpace(c.Param("name")) // read the area name from the URL
    if name == "" {                            // reject blank names
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid name"}) // invalid name error response
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second) // bound the DB work
    defer cancel()                                                          // release the timer
    area, err := h.Areas.GetByName(ctx, name)                               // load the area by its unique name
    if err != nil {                                                         // handle lookup errors
        if err == repository.ErrAreaNotFound {                              // when the area does not exist
            return c.JSON(http.StatusNotFound, map[string]string{"error": "laser area not found"}) // respond with not found
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"}) // respond with database error
    }
    return c.JSON(http.StatusOK, area) // return the area on success
}

// CreateArea handles POST /v1/admin/laser-areas and registers a new treatable area
func (h *AdminHandler) CreateArea(c echo.Context) error { // begin CreateArea handler
    var body struct { // anonymous struct to bind incoming JSON
        Name          string          `json:"name"`           // required unique area name
        CurrentPrice  decimal.Decimal `json:"current_price"`  // session price, defaults to zero
        DeadlineReset *int64          `json:"deadline_reset"` // days before the session counter resets, defaults to 30
        IsActive      *bool           `json:"is_active"`      // whether the area is offered, defaults to true
        OperateTime   *int64          `json:"operate_time"`   // minutes per operation, defaults to 5
    }
    if err := c.Bind(&body); err != nil { // attempt to bind the request body into the struct
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // return bad request when binding fails
    }
    area := model.LaserArea{ // instantiate a new area model
        Name:          strings.TrimSpace(body.Name), // assign the trimmed name
        CurrentPrice:  body.CurrentPrice,            // assign the provided price
        DeadlineReset: 30,                           // start from the default reset window
        IsActive:      true,                         // areas are offered unless disabled
        OperateTime:   5,                            // start from the default operation time
    }
    if body.DeadlineReset != nil { // apply the caller's reset window when provided
        area.DeadlineReset = *body.DeadlineReset // overwrite the default
    }
    if body.IsActive != nil { // apply the caller's active flag when provided
        area.IsActive = *body.IsActive // overwrite the default
    }
    if body.OperateTime != nil { // apply the caller's operation time when provided
        area.OperateTime = *body.OperateTime // overwrite the default
    }
    if err := area.Validate(); err != nil { // run the model's self-consistency checks
        return validationError(c, err) // reject invalid areas with the offending field
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second) // bound the DB work
    defer cancel()                                                          // release the timer
    if err := h.Areas.Create(ctx, &area); err != nil {                      // delegate creation to the repository
        if err == repository.ErrAreaNameExists { // check for duplicate area name
            return c.JSON(http.StatusConflict, map[string]string{"error": "area name already exists"}) // respond with conflict when the name is not unique
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create laser area"}) // respond with internal error for other failures
    }
    return c.JSON(http.StatusCreated, area) // return 201 and the created area on success
}

// UpdateArea handles PUT/PATCH /v1/admin/laser-areas/:name and rewrites the area settings
func (h *AdminHandler) UpdateArea(c echo.Context) error { // begin UpdateArea handler
    name := strings.TrimSpace(c.Param("name")) // read the area name from the URL
    if name == "" {                            // reject blank names
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid name"}) // invalid name error response
    }
    var body struct { // struct for binding the JSON payload
        Name          *string          `json:"name"`           // optional new name
        CurrentPrice  *decimal.Decimal `json:"current_price"`  // optional new price
        DeadlineReset *int64           `json:"deadline_reset"` // optional new reset window
        IsActive      *bool            `json:"is_active"`      // optional new active flag
        OperateTime   *int64           `json:"operate_time"`   // optional new operation time
    }
    if err := c.Bind(&body); err != nil { // attempt to bind the request body
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // return bad request when binding fails
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second) // bound the DB work
    defer cancel()                                                          // release the timer
    area, err := h.Areas.GetByName(ctx, name)                               // load the current row first
    if err != nil {                                                         // handle lookup errors
        if err == repository.ErrAreaNotFound {                              // when the area does not exist
            return c.JSON(http.StatusNotFound, map[string]string{"error": "laser area not found"}) // respond with not found
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"}) // respond with database error
    }
    if body.Name != nil { // apply the new name when provided
        area.Name = strings.TrimSpace(*body.Name) // overwrite with the trimmed value
    }
    if body.CurrentPrice != nil { // apply the new price when provided
        area.CurrentPrice = *body.CurrentPrice // overwrite the price
    }
    if body.DeadlineReset != nil { // apply the new reset window when provided
        area.DeadlineReset = *body.DeadlineReset // overwrite the reset window
    }
    if body.IsActive != nil { // apply the new active flag when provided
        area.IsActive = *body.IsActive // overwrite the active flag
    }
    if body.OperateTime != nil { // apply the new operation time when provided
        area.OperateTime = *body.OperateTime // overwrite the operation time
    }
    if err := area.Validate(); err != nil { // re-run the model's self-consistency checks
        return validationError(c, err) // reject invalid updates with the offending field
    }
    if err := h.Areas.Update(ctx, &area); err != nil { // persist the updated area
        if err == repository.ErrAreaNameExists { // duplicate name violation
            return c.JSON(http.StatusConflict, map[string]string{"error": "area name already exists"}) // respond with conflict
        }
        if err == repository.ErrAreaNotFound { // row vanished between read and write
            return c.JSON(http.StatusNotFound, map[string]string{"error": "laser area not found"}) // respond with not found
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"}) // respond with generic update failure
    }
    return c.JSON(http.StatusOK, area) // return the updated area with OK status
}

// DeleteArea handles DELETE /v1/admin/laser-areas/:name. Schedules under the
// area cascade away; reservations pointing at it block the delete with a 409.
func (h *AdminHandler) DeleteArea(c echo.Context) error { // begin DeleteArea handler
    name := strings.TrimSpace(c.Param("name")) // read the area name from the URL
    if name == "" {                            // reject blank names
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid name"}) // invalid name error response
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second) // bound the DB work
    defer cancel()                                                          // release the timer
    area, err := h.Areas.GetByName(ctx, name)                               // resolve the name to its numeric id
    if err != nil {                                                         // handle lookup errors
        if err == repository.ErrAreaNotFound {                              // when the area does not exist
            return c.JSON(http.StatusNotFound, map[string]string{"error": "laser area not found"}) // respond with not found
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"}) // respond with database error
    }
    if err := h.Areas.Delete(ctx, area.ID); err != nil { // delegate the delete to the repository
        switch err {                                     // map sentinel errors to status codes
        case repository.ErrAreaNotFound: // row vanished between read and delete
            return c.JSON(http.StatusNotFound, map[string]string{"error": "laser area not found"}) // respond with not found
        case repository.ErrProtected: // reservations still reference the area
            return c.JSON(http.StatusConflict, map[string]string{"error": "cannot delete laser area with reservations"}) // respond with conflict
        default: // any other failure
            return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"}) // respond with internal error
        }
    }
    return c.NoContent(http.StatusNoContent) // indicate success with no content
}
