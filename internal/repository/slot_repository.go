package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrSlotNotFound indicates that no reservation slot matched the lookup.
var ErrSlotNotFound = errors.New("slot not found")

// SlotRepo provides access to the slots table.
type SlotRepo struct{ db *sql.DB }

func NewSlotRepo(db *sql.DB) *SlotRepo { return &SlotRepo{db: db} }

const slotCols = "id, operator_id, date, period, time_slot, duration, created_at, updated_at"

// Create inserts a slot with a fresh UUID. Colliding with the unique
// (date, time slot, operator) index returns ErrConflict.
func (r *SlotRepo) Create(ctx context.Context, s *model.Slot) error {
	s.ID = uuid.New()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO slots (id, operator_id, date, period, time_slot, duration) VALUES (?,?,?,?,?,?)",
		s.ID, s.OperatorID, s.Date, s.Period, s.TimeSlot, s.Duration)
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

// GetByID fetches one slot.
func (r *SlotRepo) GetByID(ctx context.Context, id uuid.UUID) (model.Slot, error) {
	var s model.Slot
	err := r.db.QueryRowContext(ctx,
		"SELECT "+slotCols+" FROM slots WHERE id=? LIMIT 1", id).
		Scan(&s.ID, &s.OperatorID, &s.Date, &s.Period, &s.TimeSlot, &s.Duration, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Slot{}, ErrSlotNotFound
	}
	return s, err
}

func (r *SlotRepo) queryList(ctx context.Context, q string, args ...any) ([]model.Slot, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Slot{}
	for rows.Next() {
		var s model.Slot
		if err := rows.Scan(&s.ID, &s.OperatorID, &s.Date, &s.Period, &s.TimeSlot, &s.Duration, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// List returns all slots, optionally filtered by operator username or
// date.
func (r *SlotRepo) List(ctx context.Context, search string) ([]model.Slot, error) {
	q := `SELECT s.id, s.operator_id, s.date, s.period, s.time_slot, s.duration, s.created_at, s.updated_at
        FROM slots s`
	args := []any{}
	if search != "" {
		q += " JOIN users u ON u.id = s.operator_id WHERE LOWER(u.username) LIKE ? OR DATE_FORMAT(s.date, '%Y-%m-%d') LIKE ?"
		pat := "%" + strings.ToLower(search) + "%"
		args = append(args, pat, pat)
	}
	q += " ORDER BY s.date, s.time_slot"
	return r.queryList(ctx, q, args...)
}

// ListByDate returns the bookable slots on one calendar date.
func (r *SlotRepo) ListByDate(ctx context.Context, date string) ([]model.Slot, error) {
	return r.queryList(ctx,
		"SELECT "+slotCols+" FROM slots WHERE date = ? ORDER BY time_slot", date)
}

// Update rewrites the mutable columns of a slot. Moving the slot onto
// an already-taken (date, time slot, operator) triple returns
// ErrConflict.
func (r *SlotRepo) Update(ctx context.Context, s *model.Slot) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE slots SET operator_id=?, date=?, period=?, time_slot=?, duration=?, updated_at=NOW() WHERE id=?",
		s.OperatorID, s.Date, s.Period, s.TimeSlot, s.Duration, s.ID)
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

// Delete removes a slot. Reservations booked into the slot block the
// delete with ErrProtected.
func (r *SlotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	var deps int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reservations WHERE slot_id = ?", id).Scan(&deps); err != nil {
		return err
	}
	if deps > 0 {
		return ErrProtected
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM slots WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSlotNotFound
	}
	return nil
}
