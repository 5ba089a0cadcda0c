package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
)

// roleRequest invokes RequireRole directly with the given context role.
// A nil role simulates a request that skipped JWTAuth entirely.
func roleRequest(t *testing.T, role interface{}, allowed ...string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/p", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    if role != nil {
        c.Set("role", role)
    }
    next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
    _ = RequireRole(allowed...)(next)(c)
    return rec
}

func TestRequireRole_Allowed(t *testing.T) {
    rec := roleRequest(t, "ADMIN", "ADMIN")
    assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireRole_AllowedFromSet(t *testing.T) {
    rec := roleRequest(t, "STAFF", "ADMIN", "STAFF", "CUSTOMER")
    assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireRole_WrongRole(t *testing.T) {
    rec := roleRequest(t, "CUSTOMER", "ADMIN")
    assert.Equal(t, http.StatusForbidden, rec.Code)
    assert.Contains(t, rec.Body.String(), "forbidden")
}

func TestRequireRole_MissingRole(t *testing.T) {
    rec := roleRequest(t, nil, "ADMIN")
    assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_NonStringRole(t *testing.T) {
    rec := roleRequest(t, 42, "ADMIN")
    assert.Equal(t, http.StatusForbidden, rec.Code)
}
