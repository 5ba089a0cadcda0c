package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrScheduleNotFound indicates that no area schedule matched the lookup.
var ErrScheduleNotFound = errors.New("area schedule not found")

// AreaScheduleRepo provides access to the area_schedules table.
type AreaScheduleRepo struct{ db *sql.DB }

func NewAreaScheduleRepo(db *sql.DB) *AreaScheduleRepo { return &AreaScheduleRepo{db: db} }

const schedCols = "id, laser_area_id, price, start_time, end_time, operate_time, created_at, updated_at"

// Create inserts an area schedule with a fresh UUID and re-reads the row.
func (r *AreaScheduleRepo) Create(ctx context.Context, s *model.AreaSchedule) error {
	s.ID = uuid.New()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO area_schedules (id, laser_area_id, price, start_time, end_time, operate_time) VALUES (?,?,?,?,?,?)",
		s.ID, s.LaserAreaID, s.Price, s.StartTime, s.EndTime, s.OperateTime)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return err
	}
	*s = got
	return nil
}

// GetByID fetches one schedule.
func (r *AreaScheduleRepo) GetByID(ctx context.Context, id uuid.UUID) (model.AreaSchedule, error) {
	var s model.AreaSchedule
	err := r.db.QueryRowContext(ctx,
		"SELECT "+schedCols+" FROM area_schedules WHERE id=? LIMIT 1", id).
		Scan(&s.ID, &s.LaserAreaID, &s.Price, &s.StartTime, &s.EndTime, &s.OperateTime, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AreaSchedule{}, ErrScheduleNotFound
	}
	return s, err
}

func (r *AreaScheduleRepo) queryList(ctx context.Context, q string, args ...any) ([]model.AreaSchedule, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.AreaSchedule{}
	for rows.Next() {
		var s model.AreaSchedule
		if err := rows.Scan(&s.ID, &s.LaserAreaID, &s.Price, &s.StartTime, &s.EndTime, &s.OperateTime, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// List returns all schedules, optionally filtered by the owning area's
// name.
func (r *AreaScheduleRepo) List(ctx context.Context, search string) ([]model.AreaSchedule, error) {
	q := `SELECT s.id, s.laser_area_id, s.price, s.start_time, s.end_time, s.operate_time, s.created_at, s.updated_at
        FROM area_schedules s`
	args := []any{}
	if search != "" {
		q += " JOIN laser_areas a ON a.id = s.laser_area_id WHERE LOWER(a.name) LIKE ?"
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	q += " ORDER BY s.start_time"
	return r.queryList(ctx, q, args...)
}

// ListActive returns schedules whose start time is set; drafts without
// a start time never show up in the catalog.
func (r *AreaScheduleRepo) ListActive(ctx context.Context) ([]model.AreaSchedule, error) {
	return r.queryList(ctx,
		"SELECT "+schedCols+" FROM area_schedules WHERE start_time IS NOT NULL ORDER BY start_time")
}

// Update rewrites the mutable columns of a schedule.
func (r *AreaScheduleRepo) Update(ctx context.Context, s *model.AreaSchedule) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE area_schedules SET laser_area_id=?, price=?, start_time=?, end_time=?, operate_time=?, updated_at=NOW() WHERE id=?",
		s.LaserAreaID, s.Price, s.StartTime, s.EndTime, s.OperateTime, s.ID)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return err
	}
	*s = got
	return nil
}

// Delete removes a schedule. Reservation links and pre-reservations
// referencing it block the delete with ErrProtected.
func (r *AreaScheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const depQ = `SELECT
        (SELECT COUNT(*) FROM reservation_area_schedules WHERE area_schedule_id = ?) +
        (SELECT COUNT(*) FROM pre_reservations WHERE area_schedule_id = ?)`
	var deps int64
	if err := r.db.QueryRowContext(ctx, depQ, id, id).Scan(&deps); err != nil {
		return err
	}
	if deps > 0 {
		return ErrProtected
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM area_schedules WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
