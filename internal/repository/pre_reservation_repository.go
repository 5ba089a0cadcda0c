package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrPreReservationNotFound indicates that no pre-reservation matched
// the lookup.
var ErrPreReservationNotFound = errors.New("pre-reservation not found")

// PreReservationRepo provides access to the pre_reservations table.
type PreReservationRepo struct{ db *sql.DB }

func NewPreReservationRepo(db *sql.DB) *PreReservationRepo { return &PreReservationRepo{db: db} }

const preResCols = "id, user_id, area_schedule_id, session_count, last_session_date, created_at, updated_at"

// Create inserts a pre-reservation with a fresh UUID and re-reads the row.
func (r *PreReservationRepo) Create(ctx context.Context, p *model.PreReservation) error {
	p.ID = uuid.New()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO pre_reservations (id, user_id, area_schedule_id, session_count, last_session_date) VALUES (?,?,?,?,?)",
		p.ID, p.UserID, p.AreaScheduleID, p.SessionCount, p.LastSessionDate)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = got
	return nil
}

// GetByID fetches one pre-reservation regardless of owner.
func (r *PreReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (model.PreReservation, error) {
	var p model.PreReservation
	err := r.db.QueryRowContext(ctx,
		"SELECT "+preResCols+" FROM pre_reservations WHERE id=? LIMIT 1", id).
		Scan(&p.ID, &p.UserID, &p.AreaScheduleID, &p.SessionCount, &p.LastSessionDate, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PreReservation{}, ErrPreReservationNotFound
	}
	return p, err
}

// GetByIDForUser fetches one pre-reservation scoped to its owner. A
// foreign id surfaces as ErrPreReservationNotFound.
func (r *PreReservationRepo) GetByIDForUser(ctx context.Context, id uuid.UUID, userID uint64) (model.PreReservation, error) {
	var p model.PreReservation
	err := r.db.QueryRowContext(ctx,
		"SELECT "+preResCols+" FROM pre_reservations WHERE id=? AND user_id=? LIMIT 1", id, userID).
		Scan(&p.ID, &p.UserID, &p.AreaScheduleID, &p.SessionCount, &p.LastSessionDate, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PreReservation{}, ErrPreReservationNotFound
	}
	return p, err
}

func (r *PreReservationRepo) queryList(ctx context.Context, q string, args ...any) ([]model.PreReservation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.PreReservation{}
	for rows.Next() {
		var p model.PreReservation
		if err := rows.Scan(&p.ID, &p.UserID, &p.AreaScheduleID, &p.SessionCount, &p.LastSessionDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// List returns all pre-reservations, optionally filtered by the
// owner's username.
func (r *PreReservationRepo) List(ctx context.Context, search string) ([]model.PreReservation, error) {
	q := `SELECT p.id, p.user_id, p.area_schedule_id, p.session_count, p.last_session_date, p.created_at, p.updated_at
        FROM pre_reservations p`
	args := []any{}
	if search != "" {
		q += " JOIN users u ON u.id = p.user_id WHERE LOWER(u.username) LIKE ?"
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	q += " ORDER BY p.last_session_date DESC"
	return r.queryList(ctx, q, args...)
}

// ListForUser returns all pre-reservations of one customer.
func (r *PreReservationRepo) ListForUser(ctx context.Context, userID uint64) ([]model.PreReservation, error) {
	return r.queryList(ctx,
		"SELECT "+preResCols+" FROM pre_reservations WHERE user_id=? ORDER BY last_session_date DESC", userID)
}

// Update rewrites the mutable columns of a pre-reservation.
func (r *PreReservationRepo) Update(ctx context.Context, p *model.PreReservation) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE pre_reservations SET area_schedule_id=?, session_count=?, last_session_date=?, updated_at=NOW() WHERE id=?",
		p.AreaScheduleID, p.SessionCount, p.LastSessionDate, p.ID)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = got
	return nil
}

// Delete removes a pre-reservation.
func (r *PreReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM pre_reservations WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPreReservationNotFound
	}
	return nil
}
