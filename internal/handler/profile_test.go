package handler

import (
    "errors"
    "net/http"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
)

func userRow(id uint64, username, email string) *sqlmock.Rows {
    now := time.Now().UTC()
    return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "first_name", "last_name", "role", "created_at", "updated_at"}).
        AddRow(id, username, email, "$2a$04$notarealhashnotarealhashnotare", "Sara", "Moradi", "CUSTOMER", now, now)
}

func TestGetUserProfile_OtherUserForbiddenWithoutQuery(t *testing.T) {
    h, mock := newAuthHandler(t)

    c, rec := jsonContext(t, http.MethodGet, "/v1/users/profile/8", "")
    c.SetParamNames("id")
    c.SetParamValues("8")
    asUser(c, 7, "CUSTOMER")

    assert.NoError(t, h.GetUserProfile(c))
    assert.Equal(t, http.StatusForbidden, rec.Code)
    assert.Contains(t, rec.Body.String(), "forbidden")
    assert.NoError(t, mock.ExpectationsWereMet()) // ownership check fires before any lookup
}

func TestGetUserProfile_OwnProfileReturned(t *testing.T) {
    h, mock := newAuthHandler(t)

    mock.ExpectQuery("FROM users WHERE id=").
        WithArgs(uint64(7)).
        WillReturnRows(userRow(7, "sara", "sara@example.com"))

    c, rec := jsonContext(t, http.MethodGet, "/v1/users/profile/7", "")
    c.SetParamNames("id")
    c.SetParamValues("7")
    asUser(c, 7, "CUSTOMER")

    assert.NoError(t, h.GetUserProfile(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"sara@example.com"`)
    assert.NotContains(t, rec.Body.String(), "password_hash")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserProfile_MissingIdentityUnauthorized(t *testing.T) {
    h, mock := newAuthHandler(t)

    c, rec := jsonContext(t, http.MethodGet, "/v1/users/profile/7", "")
    c.SetParamNames("id")
    c.SetParamValues("7")

    assert.NoError(t, h.GetUserProfile(c))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserProfile_EmptyEmailRejected(t *testing.T) {
    h, mock := newAuthHandler(t)

    c, rec := jsonContext(t, http.MethodPatch, "/v1/users/profile/7", `{"email":"   "}`)
    c.SetParamNames("id")
    c.SetParamValues("7")
    asUser(c, 7, "CUSTOMER")

    assert.NoError(t, h.UpdateUserProfile(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), `"field":"email"`)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserProfile_DuplicateEmailConflicts(t *testing.T) {
    h, mock := newAuthHandler(t)

    mock.ExpectExec("UPDATE users SET email=").
        WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'taken@example.com' for key 'users.email'"))

    c, rec := jsonContext(t, http.MethodPatch, "/v1/users/profile/7", `{"email":"taken@example.com"}`)
    c.SetParamNames("id")
    c.SetParamValues("7")
    asUser(c, 7, "CUSTOMER")

    assert.NoError(t, h.UpdateUserProfile(c))
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Contains(t, rec.Body.String(), "email already in use")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserProfile_UpdatesAndReturnsFreshRow(t *testing.T) {
    h, mock := newAuthHandler(t)

    mock.ExpectExec("UPDATE users SET first_name=").
        WithArgs("Sara", uint64(7)).
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectQuery("FROM users WHERE id=").
        WithArgs(uint64(7)).
        WillReturnRows(userRow(7, "sara", "sara@example.com"))

    c, rec := jsonContext(t, http.MethodPatch, "/v1/users/profile/7", `{"first_name":"Sara"}`)
    c.SetParamNames("id")
    c.SetParamValues("7")
    asUser(c, 7, "CUSTOMER")

    assert.NoError(t, h.UpdateUserProfile(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"Sara"`)
    assert.NoError(t, mock.ExpectationsWereMet())
}
