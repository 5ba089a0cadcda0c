package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/laser-clinic-reservation/internal/model"
	"github.com/iliyamo/laser-clinic-reservation/internal/utils"
)

// ErrUserExists is returned when an insert collides with the unique
// username or email index.
var ErrUserExists = errors.New("username or email already exists")

// ErrUserNotFound indicates that no user row matched the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepo provides access to the users table.
type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userCols = "id, username, email, password_hash, first_name, last_name, role, created_at, updated_at"

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create hashes the password and inserts the user, then re-reads the
// row so DB defaults (timestamps) are populated. The username and
// email are normalized before insert.
func (r *UserRepo) Create(ctx context.Context, u *model.User, password string, cost int) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, first_name, last_name, role) VALUES (?,?,?,?,?,?)",
		u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrUserExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	got, err := r.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}
	*u = got
	return nil
}

// GetByUsername fetches a user by its login name. ErrUserNotFound is
// returned when no row matches.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.TrimSpace(username)
	u, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE username=? LIMIT 1", username))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email=? LIMIT 1", email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// List returns all users, optionally filtered by a case-insensitive
// search over username, email and role.
func (r *UserRepo) List(ctx context.Context, search string) ([]model.User, error) {
	q := "SELECT " + userCols + " FROM users"
	args := []any{}
	if search != "" {
		q += " WHERE LOWER(username) LIKE ? OR LOWER(email) LIKE ? OR LOWER(role) LIKE ?"
		pat := "%" + strings.ToLower(search) + "%"
		args = append(args, pat, pat, pat)
	}
	q += " ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update rewrites the mutable account fields. ErrUserNotFound is
// returned when the id does not exist.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET username=?, email=?, first_name=?, last_name=?, role=?, updated_at=NOW() WHERE id=?",
		u.Username, u.Email, u.FirstName, u.LastName, u.Role, u.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrUserExists
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// RowsAffected is also 0 when nothing changed; confirm existence.
		var one int
		if err := r.db.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id=?", u.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUserNotFound
			}
			return err
		}
	}
	got, err := r.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}
	*u = got
	return nil
}

// UpdateSelf applies a partial profile update restricted to the fields
// a user may change on their own account. Nil pointers leave the
// column untouched.
func (r *UserRepo) UpdateSelf(ctx context.Context, id uint64, email, firstName, lastName *string) (model.User, error) {
	sets := []string{}
	args := []any{}
	if email != nil {
		sets = append(sets, "email=?")
		args = append(args, strings.ToLower(strings.TrimSpace(*email)))
	}
	if firstName != nil {
		sets = append(sets, "first_name=?")
		args = append(args, *firstName)
	}
	if lastName != nil {
		sets = append(sets, "last_name=?")
		args = append(args, *lastName)
	}
	if len(sets) > 0 {
		sets = append(sets, "updated_at=NOW()")
		args = append(args, id)
		_, err := r.db.ExecContext(ctx, "UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id=?", args...)
		if err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "1062") {
				return model.User{}, ErrUserExists
			}
			return model.User{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user. Attendance records, the customer profile,
// comments and refresh tokens cascade away at the database level.
// Rows that reference the user through RESTRICT relations (shifts,
// slots, reservations, pre-reservations, payments) block the delete
// and surface as ErrProtected.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	const depQ = `SELECT
        (SELECT COUNT(*) FROM operator_shifts WHERE operator_id = ?) +
        (SELECT COUNT(*) FROM slots WHERE operator_id = ?) +
        (SELECT COUNT(*) FROM reservations WHERE user_id = ?) +
        (SELECT COUNT(*) FROM pre_reservations WHERE user_id = ?) +
        (SELECT COUNT(*) FROM payments WHERE user_id = ?)`
	var deps int64
	if err := r.db.QueryRowContext(ctx, depQ, id, id, id, id, id).Scan(&deps); err != nil {
		return err
	}
	if deps > 0 {
		return ErrProtected
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
