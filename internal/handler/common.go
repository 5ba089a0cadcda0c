package handler // handler defines http handlers

import (
    "errors"  // errors provides sentinel values and errors.As
    "net/http" // http provides status code constants
    "strconv" // strconv converts strings to numeric types

    "github.com/iliyamo/laser-clinic-reservation/internal/model" // model holds validation error type
    "github.com/labstack/echo/v4"                                // echo defines request context types
)

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) { // begin getUserID helper
    v := c.Get("user_id") // fetch user_id from context
    switch t := v.(type) { // perform type switch on the value
    case uint64: // when already uint64
        return t, nil // return directly
    case int: // when stored as int
        return uint64(t), nil // convert to uint64
    case int64: // when stored as int64
        return uint64(t), nil // convert to uint64
    case float64: // when stored as float64
        return uint64(t), nil // convert to uint64
    case string: // when stored as string
        if n, err := strconv.ParseUint(t, 10, 64); err == nil { // parse string to uint64
            return n, nil // return parsed number
        }
    } // end type switch
    return 0, errors.New("invalid user_id in context") // return error if value is missing or invalid
}

// validationError renders a model.ValidationError as a 400 response with the
// offending field attached so clients can highlight the right input.  Any
// other error falls back to a plain 400 body.
func validationError(c echo.Context, err error) error {
    var ve *model.ValidationError
    if errors.As(err, &ve) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message, "field": ve.Field})
    }
    return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}
