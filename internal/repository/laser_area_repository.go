package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrAreaNotFound indicates that no laser area matched the lookup.
var ErrAreaNotFound = errors.New("laser area not found")

// ErrAreaNameExists is returned when an insert or update collides with
// the unique area name index.
var ErrAreaNameExists = errors.New("area name already exists")

// LaserAreaRepo provides access to the laser_areas table.
type LaserAreaRepo struct{ db *sql.DB }

func NewLaserAreaRepo(db *sql.DB) *LaserAreaRepo { return &LaserAreaRepo{db: db} }

const areaCols = "id, name, current_price, deadline_reset, is_active, operate_time, created_at, updated_at"

func (r *LaserAreaRepo) scanOne(row *sql.Row) (model.LaserArea, error) {
	var a model.LaserArea
	err := row.Scan(&a.ID, &a.Name, &a.CurrentPrice, &a.DeadlineReset, &a.IsActive, &a.OperateTime, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.LaserArea{}, ErrAreaNotFound
	}
	return a, err
}

// Create inserts a laser area and re-reads the row so DB defaults
// (is_active, timestamps) are populated.
func (r *LaserAreaRepo) Create(ctx context.Context, a *model.LaserArea) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO laser_areas (name, current_price, deadline_reset, is_active, operate_time) VALUES (?,?,?,?,?)",
		a.Name, a.CurrentPrice, a.DeadlineReset, a.IsActive, a.OperateTime)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrAreaNameExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	got, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	*a = got
	return nil
}

// GetByID fetches one laser area by numeric id.
func (r *LaserAreaRepo) GetByID(ctx context.Context, id uint64) (model.LaserArea, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		"SELECT "+areaCols+" FROM laser_areas WHERE id=? LIMIT 1", id))
}

// GetByName fetches one laser area by its unique name, the natural
// lookup key of the catalog routes.
func (r *LaserAreaRepo) GetByName(ctx context.Context, name string) (model.LaserArea, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		"SELECT "+areaCols+" FROM laser_areas WHERE name=? LIMIT 1", name))
}

// GetActiveByName fetches one active laser area by name. Inactive
// areas surface as ErrAreaNotFound for non-admin callers.
func (r *LaserAreaRepo) GetActiveByName(ctx context.Context, name string) (model.LaserArea, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		"SELECT "+areaCols+" FROM laser_areas WHERE name=? AND is_active = TRUE LIMIT 1", name))
}

func (r *LaserAreaRepo) queryList(ctx context.Context, q string, args ...any) ([]model.LaserArea, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.LaserArea{}
	for rows.Next() {
		var a model.LaserArea
		if err := rows.Scan(&a.ID, &a.Name, &a.CurrentPrice, &a.DeadlineReset, &a.IsActive, &a.OperateTime, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// List returns all areas, optionally filtered by name.
func (r *LaserAreaRepo) List(ctx context.Context, search string) ([]model.LaserArea, error) {
	q := "SELECT " + areaCols + " FROM laser_areas"
	args := []any{}
	if search != "" {
		q += " WHERE LOWER(name) LIKE ?"
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	q += " ORDER BY id"
	return r.queryList(ctx, q, args...)
}

// ListActive returns the areas currently offered to customers.
func (r *LaserAreaRepo) ListActive(ctx context.Context) ([]model.LaserArea, error) {
	return r.queryList(ctx,
		"SELECT "+areaCols+" FROM laser_areas WHERE is_active = TRUE ORDER BY id")
}

// Update rewrites the mutable columns of a laser area.
func (r *LaserAreaRepo) Update(ctx context.Context, a *model.LaserArea) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE laser_areas SET name=?, current_price=?, deadline_reset=?, is_active=?, operate_time=?, updated_at=NOW() WHERE id=?",
		a.Name, a.CurrentPrice, a.DeadlineReset, a.IsActive, a.OperateTime, a.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrAreaNameExists
		}
		return err
	}
	got, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	*a = got
	return nil
}

// Delete removes a laser area. Schedules cascade away; reservations
// still pointing at the area block the delete with ErrProtected.
func (r *LaserAreaRepo) Delete(ctx context.Context, id uint64) error {
	var deps int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reservations WHERE laser_area_id = ?", id).Scan(&deps); err != nil {
		return err
	}
	if deps > 0 {
		return ErrProtected
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM laser_areas WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAreaNotFound
	}
	return nil
}
