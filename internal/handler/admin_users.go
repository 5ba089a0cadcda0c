package handler // handler package contains admin account handlers

import (
    "context"  // context carries deadlines into repository calls
    "net/http" // http provides status code constants
    "strconv"  // strconv parses string identifiers to numeric types
    "strings"  // strings offers trimming utilities
    "time"     // time builds the per-request deadline

    "github.com/iliyamo/laser-clinic-reservation/internal/model"      // model holds domain entities
    "github.com/iliyamo/laser-clinic-reservation/internal/repository" // repository holds sentinel errors
    "github.com/iliyamo/laser-clinic-reservation/internal/utils"      // utils provides password hashing helpers
    "github.com/labstack/echo/v4"                                     // echo is the web framework used for handlers
)

// ListUsers handles GET /v1/admin/users and returns every account, optionally filtered by ?search=
func (h *AdminHandler) ListUsers(c echo.Context) error { // begin ListUsers handler
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second) // bound the DB work
    defer cancel()                                                          // release the timer
    users, err := h.Users.List(ctx, strings.TrimSpace(c.QueryParam("search"))) // fetch accounts matching the filter
    if err != nil {                                                            // handle repository errors
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"}) // respond with internal server error
    }
    items := make([]userPart, 0, len(users)) // build the response slice
    for _, u := range users {                // iterate over fetched accounts
        items = append(items, toUserPart(u)) // map each account to its public shape
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items, "count": len(items)}) // return the list wrapped in a JSON object
}

// GetUser handles GET /v1/admin/users/:id and returns one account by id
func (h *AdminHandler) GetUser(c echo.Context) error { // begin GetUser handler
    id, err := strconv.ParseUint(c.Param("id"), 10, 64) // parse the account ID from the URL
    if err != nil || id == 0 {                          // validate that the ID is numeric
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"}) // invalid ID error response
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second) // bound the DB work
    defer cancel()                                                          // release the timer
    u, err := h.Users.GetByID(ctx, id)                                      // load the account
    if err != nil {                                                         // handle lookup errors
        if err == repository.ErrUserNotFound {                              // when the account does not exist
            return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"}) // respond with not found
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"}) // respond with database error
    }
    return c.JSON(http.StatusOK, toUserPart(u)) // return the account without its password hash
}

// CreateUser handles POST /v1/admin/users and provisions an account with any role
func (h *AdminHandler) CreateUser(c echo.Context) error { // begin CreateUser handler
    var body struct { // anonymous struct to bind incoming JSON
        Username  string `json:"username"`   // required unique login name
        Email     string `json:"email"`      // required unique email address
        Password  string `json:"password"`   // required plain password, hashed before storage
        FirstName string `json:"first_name"` // optional given name
        LastName  string `json:"last_name"`  // optional family name
        Role      string `json:"role"`       // ADMIN, STAFF or CUSTOMER; defaults to CUSTOMER
    }
    if err := c.Bind(&body); err != nil { // attempt to bind the request body into the struct
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // return bad request when binding fails
    }
    body.Username = strings.TrimSpace(body.Username)            // trim spaces around the username
    body.Email = strings.ToLower(strings.TrimSpace(body.Email)) // normalise the email address
    if body.Username == "" || body.Email == "" || body.Password == "" { // ensure required fields are present
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "username/email/password required"}) // respond with error when required fields are missing
    }
    if err := utils.ValidatePassword(body.Password); err != nil { // enforce the password policy
        return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error(), "field": "password"}) // reject weak passwords
    }
    role := strings.ToUpper(strings.TrimSpace(body.Role)) // normalise the requested role
    if role == "" {                                       // default to the customer tier
        role = model.RoleCustomer                         // assign the default role
    }
    u := model.User{ // instantiate a new account model
        Username:  body.Username,  // assign the trimmed username
        Email:     body.Email,     // assign the normalised email
        FirstName: body.FirstName, // assign the given name
        LastName:  body.LastName,  // assign the family name
        Role:      role,           // assign the resolved role
    }
    if err := u.Validate(); err != nil { // run the model's self-consistency checks
        return validationError(c, err) // reject invalid accounts with the offending field
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second) // bound the DB work
    defer cancel()                                                          // release the timer
    if err := h.Users.Create(ctx, &u, body.Password, h.Cfg.BcryptCost); err != nil { // delegate creation to the repository
        if err == repository.ErrUserExists { // check for duplicate username or email
            return c.JSON(http.StatusConflict, map[string]string{"error": "username or email already exists"}) // respond with conflict
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create user"}) // respond with internal error for other failures
    }
    return c.JSON(http.StatusCreated, toUserPart(u)) // return 201 and the created account on success
}

// UpdateUser handles PUT/PATCH /v1/admin/users/:id and rewrites the mutable account fields
func (h *AdminHandler) UpdateUser(c echo.Context) error { // begin UpdateUser handler
    id, err := strconv.ParseUint(c.Param("id"), 10, 64) // parse the account ID from the URL
    if err != nil || id == 0 {                          // validate that the ID is numeric
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"}) // invalid ID error response
    }
    var body struct { // struct for binding the JSON payload
        Username  *string `json:"username"`   // optional new login name
        Email     *string `json:"email"`      // optional new email address
        FirstName *string `json:"first_name"` // optional new given name
        LastName  *string `json:"last_name"`  // optional new family name
        Role      *string `json:"role"`       // optional new role
    }
    if err := c.Bind(&body); err != nil { // attempt to bind the request body
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // return bad request when binding fails
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second) // bound the DB work
    defer cancel()                                                          // release the timer
    u, err := h.Users.GetByID(ctx, id)                                      // load the current row first
    if err != nil {                                                         // handle lookup errors
        if err == repository.ErrUserNotFound {                              // when the account does not exist
            return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"}) // respond with not found
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"}) // respond with database error
    }
    if body.Username != nil { // apply the new username when provided
        u.Username = strings.TrimSpace(*body.Username) // overwrite with the trimmed value
    }
    if body.Email != nil { // apply the new email when provided
        u.Email = strings.ToLower(strings.TrimSpace(*body.Email)) // overwrite with the normalised value
    }
    if body.FirstName != nil { // apply the new given name when provided
        u.FirstName = *body.FirstName // overwrite the given name
    }
    if body.LastName != nil { // apply the new family name when provided
        u.LastName = *body.LastName // overwrite the family name
    }
    if body.Role != nil { // apply the new role when provided
        u.Role = strings.ToUpper(strings.TrimSpace(*body.Role)) // overwrite with the normalised role
    }
    if err := u.Validate(); err != nil { // re-run the model's self-consistency checks
        return validationError(c, err) // reject invalid updates with the offending field
    }
    if err := h.Users.Update(ctx, &u); err != nil { // persist the updated account
        if err == repository.ErrUserExists { // duplicate username or email violation
            return c.JSON(http.StatusConflict, map[string]string{"error": "username or email already exists"}) // respond with conflict
        }
        if err == repository.ErrUserNotFound { // row vanished between read and write
            return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"}) // respond with not found
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"}) // respond with generic update failure
    }
    return c.JSON(http.StatusOK, toUserPart(u)) // return the updated account with OK status
}

// DeleteUser handles DELETE /v1/admin/users/:id. Attendance, profile,
// comments and refresh tokens disappear with the account; shifts, slots,
// reservations, pre-reservations and payments keep it alive with a 409.
func (h *AdminHandler) DeleteUser(c echo.Context) error { // begin DeleteUser handler
    id, err := strconv.ParseUint(c.Param("id"), 10, 64) // parse the account ID from the URL
    if err != nil || id == 0 {                          // validate that the ID is numeric
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"}) // invalid ID error response
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second) // bound the DB work
    defer cancel()                                                          // release the timer
    if err := h.Users.Delete(ctx, id); err != nil {                         // delegate the delete to the repository
        switch err {                                                        // map sentinel errors to status codes
        case repository.ErrUserNotFound: // the account does not exist
            return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"}) // respond with not found
        case repository.ErrProtected: // live scheduling or billing rows reference the account
            return c.JSON(http.StatusConflict, map[string]string{"error": "cannot delete user with active shifts, slots, reservations or payments"}) // respond with conflict
        default: // any other failure
            return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"}) // respond with internal error
        }
    }
    return c.NoContent(http.StatusNoContent) // indicate success with no content
}
