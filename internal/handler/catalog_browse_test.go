package handler

import (
    "database/sql"
    "net/http"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"

    "github.com/iliyamo/laser-clinic-reservation/internal/repository"
)

func newCatalogHandler(t *testing.T) (*CatalogHandler, sqlmock.Sqlmock) {
    t.Helper()
    db, mock := newMockDB(t)
    h := &CatalogHandler{
        Areas:     repository.NewLaserAreaRepo(db),
        Schedules: repository.NewAreaScheduleRepo(db),
        Slots:     repository.NewSlotRepo(db),
        Codes:     repository.NewDiscountCodeRepo(db),
        Periods:   repository.NewCancellationPeriodRepo(db),
    }
    return h, mock
}

func TestGetAvailableSlots_MissingDateRejected(t *testing.T) {
    h, mock := newCatalogHandler(t)

    c, rec := jsonContext(t, http.MethodGet, "/v1/slots/available", "")
    assert.NoError(t, h.GetAvailableSlots(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "Date parameter is required.")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailableSlots_BadDateFormatRejected(t *testing.T) {
    h, mock := newCatalogHandler(t)

    c, rec := jsonContext(t, http.MethodGet, "/v1/slots/available?date=10-06-2025", "")
    assert.NoError(t, h.GetAvailableSlots(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "invalid date")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailableSlots_ListsSlotsWithoutOperator(t *testing.T) {
    h, mock := newCatalogHandler(t)
    id := uuid.New()
    day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
    now := time.Now().UTC()

    mock.ExpectQuery("FROM slots WHERE date = ").
        WithArgs("2025-06-10").
        WillReturnRows(sqlmock.NewRows([]string{"id", "operator_id", "date", "period", "time_slot", "duration", "created_at", "updated_at"}).
            AddRow(id.String(), 3, day, "MORNING", "8-10", 60, now, now))

    c, rec := jsonContext(t, http.MethodGet, "/v1/slots/available?date=2025-06-10", "")
    assert.NoError(t, h.GetAvailableSlots(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"8-10"`)
    assert.Contains(t, rec.Body.String(), `"2025-06-10"`)
    assert.NotContains(t, rec.Body.String(), "operator_id") // staff assignment stays internal
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLaserAreaByName_InactiveAreaHidden(t *testing.T) {
    h, mock := newCatalogHandler(t)

    // Inactive areas fall outside the active-only lookup, so the
    // browse route cannot tell them apart from missing ones.
    mock.ExpectQuery("FROM laser_areas WHERE name=(.+) AND is_active").
        WithArgs("full-leg").
        WillReturnError(sql.ErrNoRows)

    c, rec := jsonContext(t, http.MethodGet, "/v1/laser-areas/full-leg", "")
    c.SetParamNames("name")
    c.SetParamValues("full-leg")

    assert.NoError(t, h.GetLaserAreaByName(c))
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Contains(t, rec.Body.String(), "laser area not found")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDiscountCodeByCode_ExhaustedCodeHidden(t *testing.T) {
    h, mock := newCatalogHandler(t)

    mock.ExpectQuery("FROM discount_codes WHERE code=").
        WithArgs("SUMMER25").
        WillReturnRows(codeRow("SUMMER25", "25", 5, 5, false, nil))

    c, rec := jsonContext(t, http.MethodGet, "/v1/discount-codes/SUMMER25", "")
    c.SetParamNames("code")
    c.SetParamValues("SUMMER25")

    assert.NoError(t, h.GetDiscountCodeByCode(c))
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Contains(t, rec.Body.String(), "discount code not found")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDiscountCodeByCode_UsableCodeShownWithoutCounters(t *testing.T) {
    h, mock := newCatalogHandler(t)

    mock.ExpectQuery("FROM discount_codes WHERE code=").
        WithArgs("SUMMER25").
        WillReturnRows(codeRow("SUMMER25", "25", 5, 1, false, nil))

    c, rec := jsonContext(t, http.MethodGet, "/v1/discount-codes/SUMMER25", "")
    c.SetParamNames("code")
    c.SetParamValues("SUMMER25")

    assert.NoError(t, h.GetDiscountCodeByCode(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"SUMMER25"`)
    assert.NotContains(t, rec.Body.String(), "usage_count")
    assert.NotContains(t, rec.Body.String(), "max_usage")
    assert.NoError(t, mock.ExpectationsWereMet())
}
