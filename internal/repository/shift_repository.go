package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrShiftNotFound indicates that no operator shift matched the lookup.
var ErrShiftNotFound = errors.New("operator shift not found")

// ShiftRepo provides access to the operator_shifts table.
type ShiftRepo struct{ db *sql.DB }

func NewShiftRepo(db *sql.DB) *ShiftRepo { return &ShiftRepo{db: db} }

const shiftCols = "id, operator_id, operator_name, shift_date, period, created_at, updated_at"

// Create inserts a shift with a fresh UUID. A blank operator name is
// filled from the operator's username first. Colliding with the
// unique (operator, date, period) index returns ErrConflict.
func (r *ShiftRepo) Create(ctx context.Context, s *model.OperatorShift) error {
	if s.OperatorName == "" {
		if err := r.db.QueryRowContext(ctx,
			"SELECT username FROM users WHERE id=?", s.OperatorID).Scan(&s.OperatorName); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUserNotFound
			}
			return err
		}
	}
	s.ID = uuid.New()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO operator_shifts (id, operator_id, operator_name, shift_date, period) VALUES (?,?,?,?,?)",
		s.ID, s.OperatorID, s.OperatorName, s.ShiftDate, s.Period)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	got, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return err
	}
	*s = got
	return nil
}

// GetByID fetches one shift regardless of operator.
func (r *ShiftRepo) GetByID(ctx context.Context, id uuid.UUID) (model.OperatorShift, error) {
	var s model.OperatorShift
	err := r.db.QueryRowContext(ctx,
		"SELECT "+shiftCols+" FROM operator_shifts WHERE id=? LIMIT 1", id).
		Scan(&s.ID, &s.OperatorID, &s.OperatorName, &s.ShiftDate, &s.Period, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.OperatorShift{}, ErrShiftNotFound
	}
	return s, err
}

// GetByIDForOperator fetches one shift scoped to its operator. A
// foreign id surfaces as ErrShiftNotFound.
func (r *ShiftRepo) GetByIDForOperator(ctx context.Context, id uuid.UUID, operatorID uint64) (model.OperatorShift, error) {
	var s model.OperatorShift
	err := r.db.QueryRowContext(ctx,
		"SELECT "+shiftCols+" FROM operator_shifts WHERE id=? AND operator_id=? LIMIT 1", id, operatorID).
		Scan(&s.ID, &s.OperatorID, &s.OperatorName, &s.ShiftDate, &s.Period, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.OperatorShift{}, ErrShiftNotFound
	}
	return s, err
}

func (r *ShiftRepo) queryList(ctx context.Context, q string, args ...any) ([]model.OperatorShift, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.OperatorShift{}
	for rows.Next() {
		var s model.OperatorShift
		if err := rows.Scan(&s.ID, &s.OperatorID, &s.OperatorName, &s.ShiftDate, &s.Period, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// List returns all shifts, optionally filtered by operator username or
// shift date.
func (r *ShiftRepo) List(ctx context.Context, search string) ([]model.OperatorShift, error) {
	q := `SELECT s.id, s.operator_id, s.operator_name, s.shift_date, s.period, s.created_at, s.updated_at
        FROM operator_shifts s`
	args := []any{}
	if search != "" {
		q += " JOIN users u ON u.id = s.operator_id WHERE LOWER(u.username) LIKE ? OR DATE_FORMAT(s.shift_date, '%Y-%m-%d') LIKE ?"
		pat := "%" + strings.ToLower(search) + "%"
		args = append(args, pat, pat)
	}
	q += " ORDER BY s.shift_date, s.period"
	return r.queryList(ctx, q, args...)
}

// ListForOperator returns all shifts of one operator.
func (r *ShiftRepo) ListForOperator(ctx context.Context, operatorID uint64) ([]model.OperatorShift, error) {
	return r.queryList(ctx,
		"SELECT "+shiftCols+" FROM operator_shifts WHERE operator_id=? ORDER BY shift_date, period", operatorID)
}

// ListActiveForOperator returns the operator's shifts from today on.
func (r *ShiftRepo) ListActiveForOperator(ctx context.Context, operatorID uint64) ([]model.OperatorShift, error) {
	return r.queryList(ctx,
		"SELECT "+shiftCols+" FROM operator_shifts WHERE operator_id=? AND shift_date >= CURDATE() ORDER BY shift_date, period",
		operatorID)
}

// Update rewrites the mutable columns of a shift. Moving the shift
// onto an already-taken (operator, date, period) triple returns
// ErrConflict.
func (r *ShiftRepo) Update(ctx context.Context, s *model.OperatorShift) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE operator_shifts SET operator_id=?, operator_name=?, shift_date=?, period=?, updated_at=NOW() WHERE id=?",
		s.OperatorID, s.OperatorName, s.ShiftDate, s.Period, s.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	got, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return err
	}
	*s = got
	return nil
}

// Delete removes a shift.
func (r *ShiftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM operator_shifts WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrShiftNotFound
	}
	return nil
}
