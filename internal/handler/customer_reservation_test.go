package handler

import (
    "database/sql"
    "net/http"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
)

var reservationColNames = []string{
    "id", "user_id", "slot_id", "laser_area_id", "session_number", "reservation_type",
    "is_online", "is_charged", "is_paid", "is_resolved", "used_discount_code",
    "total_price", "final_amount", "discount_code_id", "reservation_timestamp",
    "request_timestamp", "created_at", "updated_at",
}

func reservationRow(id uuid.UUID, userID uint64) *sqlmock.Rows {
    now := time.Now().UTC()
    return sqlmock.NewRows(reservationColNames).
        AddRow(id.String(), userID, uuid.NewString(), nil, 1, "STANDARD",
            true, false, false, false, false,
            "150.00", "150.00", nil, now,
            now, now, now)
}

func TestGetReservation_ForeignRowIsNotFound(t *testing.T) {
    h, mock := newCustomerHandler(t)
    id := uuid.New()

    // The query is scoped to the caller, so someone else's reservation
    // simply matches no rows.
    mock.ExpectQuery("FROM reservations WHERE id = ").
        WithArgs(id, uint64(7)).
        WillReturnError(sql.ErrNoRows)

    c, rec := jsonContext(t, http.MethodGet, "/v1/reservations/"+id.String(), "")
    c.SetParamNames("id")
    c.SetParamValues(id.String())
    asUser(c, 7, "CUSTOMER")

    assert.NoError(t, h.GetReservation(c))
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Contains(t, rec.Body.String(), "reservation not found")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReservation_OwnRowReturnedWithScheduleLinks(t *testing.T) {
    h, mock := newCustomerHandler(t)
    id := uuid.New()
    link := uuid.New()

    mock.ExpectQuery("FROM reservations WHERE id = ").
        WithArgs(id, uint64(7)).
        WillReturnRows(reservationRow(id, 7))
    mock.ExpectQuery("FROM reservation_area_schedules WHERE reservation_id").
        WithArgs(id).
        WillReturnRows(sqlmock.NewRows([]string{"area_schedule_id"}).AddRow(link.String()))

    c, rec := jsonContext(t, http.MethodGet, "/v1/reservations/"+id.String(), "")
    c.SetParamNames("id")
    c.SetParamValues(id.String())
    asUser(c, 7, "CUSTOMER")

    assert.NoError(t, h.GetReservation(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), id.String())
    assert.Contains(t, rec.Body.String(), link.String())
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReservation_BadUUIDRejected(t *testing.T) {
    h, mock := newCustomerHandler(t)

    c, rec := jsonContext(t, http.MethodGet, "/v1/reservations/42", "")
    c.SetParamNames("id")
    c.SetParamValues("42")
    asUser(c, 7, "CUSTOMER")

    assert.NoError(t, h.GetReservation(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "invalid reservation id")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReservation_NoIdentityUnauthorized(t *testing.T) {
    h, mock := newCustomerHandler(t)
    id := uuid.New()

    c, rec := jsonContext(t, http.MethodGet, "/v1/reservations/"+id.String(), "")
    c.SetParamNames("id")
    c.SetParamValues(id.String())

    assert.NoError(t, h.GetReservation(c))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}
