package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    miniredis "github.com/alicebob/miniredis/v2"
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"

    "github.com/iliyamo/laser-clinic-reservation/internal/config"
)

// newLimitedEcho starts a miniredis instance and an Echo app with the
// token bucket applied to a single probe route.
func newLimitedEcho(t *testing.T, cfg config.RateLimitConfig) (*echo.Echo, *miniredis.Miniredis) {
    t.Helper()
    mr, err := miniredis.Run()
    if err != nil {
        t.Fatalf("failed to start miniredis: %v", err)
    }
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    e := echo.New()
    e.Use(NewTokenBucket(cfg, rdb))
    e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
    return e, mr
}

func limitCfg(capacity int) config.RateLimitConfig {
    return config.RateLimitConfig{
        Enabled:        true,
        Capacity:       capacity,
        RefillTokens:   1,
        RefillInterval: time.Minute,
        TTL:            10 * time.Minute,
        KeyStrategy:    "ip",
        Prefix:         "rl",
    }
}

func TestTokenBucket_AllowsUnderCapacity(t *testing.T) {
    e, mr := newLimitedEcho(t, limitCfg(2))
    defer mr.Close()

    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
    assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestTokenBucket_BlocksWhenExhausted(t *testing.T) {
    e, mr := newLimitedEcho(t, limitCfg(1))
    defer mr.Close()

    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
    assert.Equal(t, http.StatusOK, rec.Code)

    rec = httptest.NewRecorder()
    e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
    assert.Equal(t, http.StatusTooManyRequests, rec.Code)
    assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
    assert.NotEmpty(t, rec.Header().Get("Retry-After"))
    assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestTokenBucket_RefillsAfterInterval(t *testing.T) {
    cfg := limitCfg(1)
    cfg.RefillInterval = 50 * time.Millisecond
    e, mr := newLimitedEcho(t, cfg)
    defer mr.Close()

    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
    assert.Equal(t, http.StatusOK, rec.Code)

    rec = httptest.NewRecorder()
    e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
    assert.Equal(t, http.StatusTooManyRequests, rec.Code)

    time.Sleep(120 * time.Millisecond)

    rec = httptest.NewRecorder()
    e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
    assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenBucket_DisabledPassesThrough(t *testing.T) {
    e := echo.New()
    e.Use(NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil))
    e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

    for i := 0; i < 10; i++ {
        rec := httptest.NewRecorder()
        e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
        assert.Equal(t, http.StatusOK, rec.Code)
        assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
    }
}

func TestTokenBucket_SeparateBucketsPerUser(t *testing.T) {
    cfg := limitCfg(1)
    cfg.KeyStrategy = "user"
    mr, err := miniredis.Run()
    if err != nil {
        t.Fatalf("failed to start miniredis: %v", err)
    }
    defer mr.Close()
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

    e := echo.New()
    // Seed the identity the way JWTAuth would before the limiter runs.
    seed := func(uid float64) echo.MiddlewareFunc {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error {
                c.Set("user_id", uid)
                return next(c)
            }
        }
    }
    e.GET("/a", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, seed(1), NewTokenBucket(cfg, rdb))
    e.GET("/b", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, seed(2), NewTokenBucket(cfg, rdb))

    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/a", nil))
    assert.Equal(t, http.StatusOK, rec.Code)

    // User 1 is out of tokens, user 2 still has a full bucket.
    rec = httptest.NewRecorder()
    e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/a", nil))
    assert.Equal(t, http.StatusTooManyRequests, rec.Code)

    rec = httptest.NewRecorder()
    e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/b", nil))
    assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBuildRateKeyStrategies(t *testing.T) {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/x", nil)
    req.RemoteAddr = "10.0.0.9:1234"
    c := e.NewContext(req, httptest.NewRecorder())
    c.SetPath("/x")
    c.Set("user_id", float64(7))

    cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}
    assert.Equal(t, "rl:ip:10.0.0.9", buildRateKey(cfg, c))

    cfg.KeyStrategy = "user"
    assert.Equal(t, "rl:user:7", buildRateKey(cfg, c))

    cfg.KeyStrategy = "ip_user_route"
    assert.Equal(t, "rl:ip:10.0.0.9:user:7:route:GET /x", buildRateKey(cfg, c))
}
