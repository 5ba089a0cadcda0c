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

func TestCreateArea_EmptyNameRejectedBeforeInsert(t *testing.T) {
    h, mock := newAdminHandler(t)
    c, rec := jsonContext(t, http.MethodPost, "/v1/admin/laser-areas", `{"name":"  "}`)

    assert.NoError(t, h.CreateArea(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), `"field":"name"`)
    assert.NoError(t, mock.ExpectationsWereMet()) // nothing reached the database
}

func TestCreateArea_NegativePriceRejectedBeforeInsert(t *testing.T) {
    h, mock := newAdminHandler(t)
    c, rec := jsonContext(t, http.MethodPost, "/v1/admin/laser-areas", `{"name":"full-leg","current_price":"-10"}`)

    assert.NoError(t, h.CreateArea(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), `"field":"current_price"`)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArea_InsertsWithDefaultsAndReturnsRow(t *testing.T) {
    h, mock := newAdminHandler(t)
    now := time.Now().UTC()

    mock.ExpectExec("INSERT INTO laser_areas").
        WithArgs("full-leg", sqlmock.AnyArg(), int64(30), true, int64(5)).
        WillReturnResult(sqlmock.NewResult(12, 1))
    mock.ExpectQuery("FROM laser_areas WHERE id=").
        WithArgs(uint64(12)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "current_price", "deadline_reset", "is_active", "operate_time", "created_at", "updated_at"}).
            AddRow(12, "full-leg", "180.00", 30, true, 5, now, now))

    c, rec := jsonContext(t, http.MethodPost, "/v1/admin/laser-areas", `{"name":"full-leg","current_price":"180.00"}`)
    assert.NoError(t, h.CreateArea(c))
    assert.Equal(t, http.StatusCreated, rec.Code)
    assert.Contains(t, rec.Body.String(), `"full-leg"`)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArea_DuplicateNameConflicts(t *testing.T) {
    h, mock := newAdminHandler(t)

    mock.ExpectExec("INSERT INTO laser_areas").
        WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'full-leg' for key 'laser_areas.name'"))

    c, rec := jsonContext(t, http.MethodPost, "/v1/admin/laser-areas", `{"name":"full-leg","current_price":"180.00"}`)
    assert.NoError(t, h.CreateArea(c))
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Contains(t, rec.Body.String(), "area name already exists")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetArea_UnknownNameIsNotFound(t *testing.T) {
    h, mock := newAdminHandler(t)

    mock.ExpectQuery("FROM laser_areas WHERE name=").
        WithArgs("no-such-area").
        WillReturnError(sql.ErrNoRows)

    c, rec := jsonContext(t, http.MethodGet, "/v1/admin/laser-areas/no-such-area", "")
    c.SetParamNames("name")
    c.SetParamValues("no-such-area")

    assert.NoError(t, h.GetArea(c))
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Contains(t, rec.Body.String(), "laser area not found")
    assert.NoError(t, mock.ExpectationsWereMet())
}
