package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrAttendanceNotFound indicates that no attendance row matched the lookup.
var ErrAttendanceNotFound = errors.New("attendance record not found")

// AttendanceRepo provides access to the staff_attendances table.
type AttendanceRepo struct{ db *sql.DB }

func NewAttendanceRepo(db *sql.DB) *AttendanceRepo { return &AttendanceRepo{db: db} }

const attendanceCols = "id, user_id, entry_timestamp, exit_timestamp, has_exited, created_at, updated_at"

// Create inserts the attendance record with a fresh UUID and re-reads
// the row to pick up DB defaults.
func (r *AttendanceRepo) Create(ctx context.Context, a *model.StaffAttendance) error {
	a.ID = uuid.New()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO staff_attendances (id, user_id, entry_timestamp, exit_timestamp, has_exited) VALUES (?,?,?,?,?)",
		a.ID, a.UserID, a.EntryTimestamp, a.ExitTimestamp, a.HasExited)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	*a = got
	return nil
}

// GetByID fetches one attendance record regardless of owner.
func (r *AttendanceRepo) GetByID(ctx context.Context, id uuid.UUID) (model.StaffAttendance, error) {
	var a model.StaffAttendance
	err := r.db.QueryRowContext(ctx,
		"SELECT "+attendanceCols+" FROM staff_attendances WHERE id=? LIMIT 1", id).
		Scan(&a.ID, &a.UserID, &a.EntryTimestamp, &a.ExitTimestamp, &a.HasExited, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.StaffAttendance{}, ErrAttendanceNotFound
	}
	return a, err
}

// GetByIDForUser fetches one attendance record scoped to its owner.
// A row belonging to someone else surfaces as ErrAttendanceNotFound,
// not forbidden, so record ids cannot be probed across staff.
func (r *AttendanceRepo) GetByIDForUser(ctx context.Context, id uuid.UUID, userID uint64) (model.StaffAttendance, error) {
	var a model.StaffAttendance
	err := r.db.QueryRowContext(ctx,
		"SELECT "+attendanceCols+" FROM staff_attendances WHERE id=? AND user_id=? LIMIT 1", id, userID).
		Scan(&a.ID, &a.UserID, &a.EntryTimestamp, &a.ExitTimestamp, &a.HasExited, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.StaffAttendance{}, ErrAttendanceNotFound
	}
	return a, err
}

func (r *AttendanceRepo) queryList(ctx context.Context, q string, args ...any) ([]model.StaffAttendance, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.StaffAttendance{}
	for rows.Next() {
		var a model.StaffAttendance
		if err := rows.Scan(&a.ID, &a.UserID, &a.EntryTimestamp, &a.ExitTimestamp, &a.HasExited, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// List returns all attendance records, optionally filtered by the
// staff member's username.
func (r *AttendanceRepo) List(ctx context.Context, search string) ([]model.StaffAttendance, error) {
	q := `SELECT a.id, a.user_id, a.entry_timestamp, a.exit_timestamp, a.has_exited, a.created_at, a.updated_at
        FROM staff_attendances a`
	args := []any{}
	if search != "" {
		q += " JOIN users u ON u.id = a.user_id WHERE LOWER(u.username) LIKE ?"
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	q += " ORDER BY a.created_at DESC"
	return r.queryList(ctx, q, args...)
}

// ListForUser returns all attendance records of one staff member.
func (r *AttendanceRepo) ListForUser(ctx context.Context, userID uint64) ([]model.StaffAttendance, error) {
	return r.queryList(ctx,
		"SELECT "+attendanceCols+" FROM staff_attendances WHERE user_id=? ORDER BY created_at DESC", userID)
}

// ListActive returns records of staff who have not clocked out yet.
func (r *AttendanceRepo) ListActive(ctx context.Context) ([]model.StaffAttendance, error) {
	return r.queryList(ctx,
		"SELECT "+attendanceCols+" FROM staff_attendances WHERE has_exited = FALSE ORDER BY created_at DESC")
}

// Update rewrites the mutable columns of an attendance record.
func (r *AttendanceRepo) Update(ctx context.Context, a *model.StaffAttendance) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE staff_attendances SET entry_timestamp=?, exit_timestamp=?, has_exited=?, updated_at=NOW() WHERE id=?",
		a.EntryTimestamp, a.ExitTimestamp, a.HasExited, a.ID)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	*a = got
	return nil
}

// Delete removes an attendance record.
func (r *AttendanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM staff_attendances WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}
