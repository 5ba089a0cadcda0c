package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrPeriodNotFound indicates that no cancellation period matched the lookup.
var ErrPeriodNotFound = errors.New("cancellation period not found")

// CancellationPeriodRepo provides access to the cancellation_periods table.
type CancellationPeriodRepo struct{ db *sql.DB }

func NewCancellationPeriodRepo(db *sql.DB) *CancellationPeriodRepo {
	return &CancellationPeriodRepo{db: db}
}

const periodCols = "id, start_time, end_time, created_at, updated_at"

// Create inserts a cancellation period with a fresh UUID and re-reads
// the row.
func (r *CancellationPeriodRepo) Create(ctx context.Context, p *model.CancellationPeriod) error {
	p.ID = uuid.New()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO cancellation_periods (id, start_time, end_time) VALUES (?,?,?)",
		p.ID, p.StartTime, p.EndTime)
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

// GetByID fetches one cancellation period.
func (r *CancellationPeriodRepo) GetByID(ctx context.Context, id uuid.UUID) (model.CancellationPeriod, error) {
	var p model.CancellationPeriod
	err := r.db.QueryRowContext(ctx,
		"SELECT "+periodCols+" FROM cancellation_periods WHERE id=? LIMIT 1", id).
		Scan(&p.ID, &p.StartTime, &p.EndTime, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CancellationPeriod{}, ErrPeriodNotFound
	}
	return p, err
}

func (r *CancellationPeriodRepo) queryList(ctx context.Context, q string, args ...any) ([]model.CancellationPeriod, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.CancellationPeriod{}
	for rows.Next() {
		var p model.CancellationPeriod
		if err := rows.Scan(&p.ID, &p.StartTime, &p.EndTime, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// List returns all cancellation periods.
func (r *CancellationPeriodRepo) List(ctx context.Context) ([]model.CancellationPeriod, error) {
	return r.queryList(ctx,
		"SELECT "+periodCols+" FROM cancellation_periods ORDER BY start_time")
}

// ListActive returns the periods that have not ended yet.
func (r *CancellationPeriodRepo) ListActive(ctx context.Context) ([]model.CancellationPeriod, error) {
	return r.queryList(ctx,
		"SELECT "+periodCols+" FROM cancellation_periods WHERE end_time >= UTC_TIMESTAMP() ORDER BY start_time")
}

// Update rewrites the window of a cancellation period.
func (r *CancellationPeriodRepo) Update(ctx context.Context, p *model.CancellationPeriod) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE cancellation_periods SET start_time=?, end_time=?, updated_at=NOW() WHERE id=?",
		p.StartTime, p.EndTime, p.ID)
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

// Delete removes a cancellation period.
func (r *CancellationPeriodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM cancellation_periods WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPeriodNotFound
	}
	return nil
}
