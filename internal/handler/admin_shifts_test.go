package handler

import (
    "database/sql"
    "errors"
    "net/http"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
)

func TestCreateShift_DuplicateDateAndPeriodConflicts(t *testing.T) {
    h, mock := newAdminHandler(t)

    mock.ExpectExec("INSERT INTO operator_shifts").
        WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '3-2025-06-10-MORNING' for key 'uq_operator_shift'"))

    body := `{"operator_id":3,"operator_name":"mina","shift_date":"2025-06-10","period":"MORNING"}`
    c, rec := jsonContext(t, http.MethodPost, "/v1/admin/shifts", body)

    assert.NoError(t, h.CreateShift(c))
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Contains(t, rec.Body.String(), "operator already has a shift for this date and period")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShift_BlankNameFilledFromUsername(t *testing.T) {
    h, mock := newAdminHandler(t)
    now := time.Now().UTC()
    date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

    mock.ExpectQuery("SELECT username FROM users WHERE id=").
        WithArgs(uint64(3)).
        WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("mina"))
    mock.ExpectExec("INSERT INTO operator_shifts").
        WithArgs(sqlmock.AnyArg(), uint64(3), "mina", sqlmock.AnyArg(), "MORNING").
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectQuery("FROM operator_shifts WHERE id=").
        WillReturnRows(sqlmock.NewRows([]string{"id", "operator_id", "operator_name", "shift_date", "period", "created_at", "updated_at"}).
            AddRow("7b9f1c1e-5a3d-4f6b-9d2e-8a1b2c3d4e5f", 3, "mina", date, "MORNING", now, now))

    body := `{"operator_id":3,"shift_date":"2025-06-10","period":"morning"}`
    c, rec := jsonContext(t, http.MethodPost, "/v1/admin/shifts", body)

    assert.NoError(t, h.CreateShift(c))
    assert.Equal(t, http.StatusCreated, rec.Code)
    assert.Contains(t, rec.Body.String(), `"mina"`)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShift_UnknownOperatorRejected(t *testing.T) {
    h, mock := newAdminHandler(t)

    mock.ExpectQuery("SELECT username FROM users WHERE id=").
        WithArgs(uint64(99)).
        WillReturnError(sql.ErrNoRows)

    body := `{"operator_id":99,"shift_date":"2025-06-10","period":"AFTERNOON"}`
    c, rec := jsonContext(t, http.MethodPost, "/v1/admin/shifts", body)

    assert.NoError(t, h.CreateShift(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "operator does not exist")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShift_BadDateRejectedBeforeInsert(t *testing.T) {
    h, mock := newAdminHandler(t)

    body := `{"operator_id":3,"operator_name":"mina","shift_date":"10/06/2025","period":"MORNING"}`
    c, rec := jsonContext(t, http.MethodPost, "/v1/admin/shifts", body)

    assert.NoError(t, h.CreateShift(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "invalid shift_date")
    assert.NoError(t, mock.ExpectationsWereMet())
}
