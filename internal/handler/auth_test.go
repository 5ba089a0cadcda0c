package handler

import (
    "database/sql"
    "errors"
    "net/http"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"

    "github.com/iliyamo/laser-clinic-reservation/internal/utils"
)

func TestSignup_CreatesCustomerAndReturnsTokenPair(t *testing.T) {
    h, mock := newAuthHandler(t)

    mock.ExpectExec("INSERT INTO users").
        WithArgs("sara", "sara@example.com", sqlmock.AnyArg(), "Sara", "Moradi", "CUSTOMER").
        WillReturnResult(sqlmock.NewResult(7, 1))
    mock.ExpectQuery("FROM users WHERE id=").
        WithArgs(uint64(7)).
        WillReturnRows(userRow(7, "sara", "sara@example.com"))
    mock.ExpectExec("INSERT INTO refresh_tokens").
        WithArgs(uint64(7), sqlmock.AnyArg(), sqlmock.AnyArg()).
        WillReturnResult(sqlmock.NewResult(1, 1))

    body := `{"username":"sara","email":" Sara@Example.com ","password":"supersecret","first_name":"Sara","last_name":"Moradi"}`
    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/signup", body)

    assert.NoError(t, h.Signup(c))
    assert.Equal(t, http.StatusCreated, rec.Code)
    assert.Contains(t, rec.Body.String(), `"access"`)
    assert.Contains(t, rec.Body.String(), `"refresh"`)
    assert.Contains(t, rec.Body.String(), `"sara"`)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignup_ShortPasswordRejectedBeforeInsert(t *testing.T) {
    h, mock := newAuthHandler(t)

    body := `{"username":"sara","email":"sara@example.com","password":"short"}`
    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/signup", body)

    assert.NoError(t, h.Signup(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), `"field":"password"`)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignup_DuplicateUsernameConflicts(t *testing.T) {
    h, mock := newAuthHandler(t)

    mock.ExpectExec("INSERT INTO users").
        WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'sara' for key 'users.username'"))

    body := `{"username":"sara","email":"sara@example.com","password":"supersecret"}`
    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/signup", body)

    assert.NoError(t, h.Signup(c))
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Contains(t, rec.Body.String(), "username or email already exists")
    assert.NoError(t, mock.ExpectationsWereMet())
}

// loginUserRow is a users row whose password_hash really matches the
// given password, so VerifyPassword behaves as in production.
func loginUserRow(t *testing.T, password string) *sqlmock.Rows {
    t.Helper()
    hash, err := utils.HashPassword(password, bcrypt.MinCost)
    require.NoError(t, err)
    now := time.Now().UTC()
    return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "first_name", "last_name", "role", "created_at", "updated_at"}).
        AddRow(7, "sara", "sara@example.com", hash, "Sara", "Moradi", "CUSTOMER", now, now)
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
    h, mock := newAuthHandler(t)

    mock.ExpectQuery("FROM users WHERE username=").
        WithArgs("sara").
        WillReturnRows(loginUserRow(t, "rightpassword"))

    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/login", `{"username":"sara","password":"wrongpassword"}`)
    assert.NoError(t, h.Login(c))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "invalid credentials")
    assert.NoError(t, mock.ExpectationsWereMet()) // no token row was written
}

func TestLogin_UnknownUserUnauthorized(t *testing.T) {
    h, mock := newAuthHandler(t)

    mock.ExpectQuery("FROM users WHERE username=").
        WithArgs("ghost").
        WillReturnError(sql.ErrNoRows)

    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/login", `{"username":"ghost","password":"whatever123"}`)
    assert.NoError(t, h.Login(c))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "invalid credentials")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_GoodPasswordReturnsTokenPair(t *testing.T) {
    h, mock := newAuthHandler(t)

    mock.ExpectQuery("FROM users WHERE username=").
        WithArgs("sara").
        WillReturnRows(loginUserRow(t, "rightpassword"))
    mock.ExpectExec("INSERT INTO refresh_tokens").
        WithArgs(uint64(7), sqlmock.AnyArg(), sqlmock.AnyArg()).
        WillReturnResult(sqlmock.NewResult(1, 1))

    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/login", `{"username":"sara","password":"rightpassword"}`)
    assert.NoError(t, h.Login(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"access"`)
    assert.Contains(t, rec.Body.String(), `"refresh"`)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func refreshTokenRow(userID uint64, expires time.Time, revoked any) *sqlmock.Rows {
    return sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
        AddRow(userID, expires, revoked)
}

func TestRefresh_RotatesTheRefreshToken(t *testing.T) {
    h, mock := newAuthHandler(t)
    raw := "raw-refresh-token-from-client"
    hash := utils.HashRefreshRaw(raw)

    mock.ExpectQuery("FROM refresh_tokens WHERE token_hash=").
        WithArgs(hash).
        WillReturnRows(refreshTokenRow(7, time.Now().UTC().Add(24*time.Hour), nil))
    mock.ExpectExec("UPDATE refresh_tokens SET revoked_at").
        WithArgs(hash).
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectQuery("FROM users WHERE id=").
        WithArgs(uint64(7)).
        WillReturnRows(userRow(7, "sara", "sara@example.com"))
    mock.ExpectExec("INSERT INTO refresh_tokens").
        WithArgs(uint64(7), sqlmock.AnyArg(), sqlmock.AnyArg()).
        WillReturnResult(sqlmock.NewResult(2, 1))

    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"`+raw+`"}`)
    assert.NoError(t, h.Refresh(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.NotContains(t, rec.Body.String(), raw) // the old token is never echoed back
    assert.Contains(t, rec.Body.String(), `"access"`)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefresh_RevokedTokenUnauthorized(t *testing.T) {
    h, mock := newAuthHandler(t)
    raw := "already-revoked-token"

    mock.ExpectQuery("FROM refresh_tokens WHERE token_hash=").
        WithArgs(utils.HashRefreshRaw(raw)).
        WillReturnRows(refreshTokenRow(7, time.Now().UTC().Add(24*time.Hour), time.Now().UTC()))

    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"`+raw+`"}`)
    assert.NoError(t, h.Refresh(c))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "invalid refresh")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefresh_UnknownTokenUnauthorized(t *testing.T) {
    h, mock := newAuthHandler(t)

    mock.ExpectQuery("FROM refresh_tokens WHERE token_hash=").
        WillReturnError(sql.ErrNoRows)

    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"nobody-knows-this"}`)
    assert.NoError(t, h.Refresh(c))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogout_WithRefreshTokenRevokesSingleSession(t *testing.T) {
    h, mock := newAuthHandler(t)
    raw := "session-to-close"
    hash := utils.HashRefreshRaw(raw)

    mock.ExpectQuery("FROM refresh_tokens WHERE token_hash=").
        WithArgs(hash).
        WillReturnRows(refreshTokenRow(7, time.Now().UTC().Add(time.Hour), nil))
    mock.ExpectExec("UPDATE refresh_tokens SET revoked_at").
        WithArgs(hash).
        WillReturnResult(sqlmock.NewResult(0, 1))

    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/logout", `{"refresh_token":"`+raw+`"}`)
    assert.NoError(t, h.Logout(c))
    assert.Equal(t, http.StatusNoContent, rec.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogout_WithBearerRevokesAllSessions(t *testing.T) {
    h, mock := newAuthHandler(t)

    tok, err := utils.NewAccessToken(testJWTSecret, 7, "CUSTOMER", 15)
    require.NoError(t, err)

    mock.ExpectExec("UPDATE refresh_tokens SET revoked_at").
        WithArgs(uint64(7)).
        WillReturnResult(sqlmock.NewResult(0, 3))

    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/logout", "")
    c.Request().Header.Set("Authorization", "Bearer "+tok.Token)

    assert.NoError(t, h.Logout(c))
    assert.Equal(t, http.StatusNoContent, rec.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogout_WithoutCredentialsRejected(t *testing.T) {
    h, mock := newAuthHandler(t)

    c, rec := jsonContext(t, http.MethodPost, "/v1/auth/logout", "")
    assert.NoError(t, h.Logout(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "provide Authorization header or refresh_token")
    assert.NoError(t, mock.ExpectationsWereMet())
}
