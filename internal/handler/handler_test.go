package handler

// Shared fixtures for handler tests. Every test runs against a
// sqlmock-backed *sql.DB, so the repositories execute their real SQL
// and the expectations double as a regression net for the queries.

import (
    "database/sql"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"

    "github.com/iliyamo/laser-clinic-reservation/internal/config"
    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

const testJWTSecret = "handler-test-secret-long-enough-for-hs256"

func testConfig() config.Config {
    return config.Config{
        JWTSecret:      testJWTSecret,
        AccessTTLMin:   15,
        RefreshTTLDays: 7,
        BcryptCost:     bcrypt.MinCost,
    }
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    t.Cleanup(func() { db.Close() })
    return db, mock
}

// newAdminHandler wires an AdminHandler with every repository sharing
// one mocked database.
func newAdminHandler(t *testing.T) (*AdminHandler, sqlmock.Sqlmock) {
    t.Helper()
    db, mock := newMockDB(t)
    h := NewAdminHandler(testConfig(),
        repository.NewUserRepo(db),
        repository.NewAttendanceRepo(db),
        repository.NewCustomerProfileRepo(db),
        repository.NewCommentRepo(db),
        repository.NewLaserAreaRepo(db),
        repository.NewAreaScheduleRepo(db),
        repository.NewShiftRepo(db),
        repository.NewSlotRepo(db),
        repository.NewReservationRepo(db),
        repository.NewPreReservationRepo(db),
        repository.NewPaymentRepo(db),
        repository.NewDiscountCodeRepo(db),
        repository.NewCancellationPeriodRepo(db))
    return h, mock
}

func newCustomerHandler(t *testing.T) (*CustomerHandler, sqlmock.Sqlmock) {
    t.Helper()
    db, mock := newMockDB(t)
    h := NewCustomerHandler(
        repository.NewReservationRepo(db),
        repository.NewPreReservationRepo(db),
        repository.NewPaymentRepo(db),
        repository.NewDiscountCodeRepo(db),
        repository.NewCustomerProfileRepo(db),
        repository.NewCommentRepo(db))
    return h, mock
}

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
    t.Helper()
    db, mock := newMockDB(t)
    return NewAuthHandler(testConfig(), repository.NewUserRepo(db), repository.NewTokenRepo(db)), mock
}

// jsonContext builds an echo context carrying a JSON body, plus the
// recorder to inspect the response.
func jsonContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
    t.Helper()
    e := echo.New()
    r := httptest.NewRequest(method, target, strings.NewReader(body))
    if body != "" {
        r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    }
    rec := httptest.NewRecorder()
    return e.NewContext(r, rec), rec
}

// asUser stores the identity the way JWTAuth does: the sub claim
// arrives as a float64 after JSON decoding.
func asUser(c echo.Context, id uint64, role string) {
    c.Set("user_id", float64(id))
    c.Set("role", role)
}
