package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"

    "github.com/iliyamo/laser-clinic-reservation/internal/utils"
)

const testSecret = "unit-test-secret-long-enough-for-hs256"

// authRequest runs one request through JWTAuth into a probe handler
// that echoes back what the middleware stored in the context.
func authRequest(t *testing.T, header string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    e.GET("/p", func(c echo.Context) error {
        return c.JSON(http.StatusOK, echo.Map{"user_id": c.Get("user_id"), "role": c.Get("role")})
    }, JWTAuth(testSecret))
    req := httptest.NewRequest(http.MethodGet, "/p", nil)
    if header != "" {
        req.Header.Set("Authorization", header)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func TestJWTAuth_MissingHeader(t *testing.T) {
    rec := authRequest(t, "")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "missing bearer token")
}

func TestJWTAuth_WrongScheme(t *testing.T) {
    rec := authRequest(t, "Token abc")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
    rec := authRequest(t, "Bearer not-a-jwt")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestJWTAuth_WrongSecret(t *testing.T) {
    tok, err := utils.NewAccessToken("some-entirely-different-secret", 7, "CUSTOMER", 15)
    assert.NoError(t, err)
    rec := authRequest(t, "Bearer "+tok.Token)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
    tok, err := utils.NewAccessToken(testSecret, 7, "CUSTOMER", -5)
    assert.NoError(t, err)
    rec := authRequest(t, "Bearer "+tok.Token)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
    tok, err := utils.NewAccessToken(testSecret, 7, "CUSTOMER", 15)
    assert.NoError(t, err)
    rec := authRequest(t, "Bearer "+tok.Token)
    assert.Equal(t, http.StatusOK, rec.Code)
    // Numeric claims decode as JSON numbers, so the probe sees 7.
    assert.Contains(t, rec.Body.String(), `"user_id":7`)
    assert.Contains(t, rec.Body.String(), `"role":"CUSTOMER"`)
}
