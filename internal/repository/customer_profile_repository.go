package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrProfileNotFound indicates that no customer profile matched the lookup.
var ErrProfileNotFound = errors.New("customer profile not found")

// ErrNationalIDExists is returned when an insert or update collides
// with the unique national_id index or the one-profile-per-user rule.
var ErrNationalIDExists = errors.New("national id or profile already exists")

// CustomerProfileRepo provides access to the customer_profiles table.
type CustomerProfileRepo struct{ db *sql.DB }

func NewCustomerProfileRepo(db *sql.DB) *CustomerProfileRepo { return &CustomerProfileRepo{db: db} }

const profileCols = `id, user_id, national_id, address, house_number, has_medical_history,
        has_drug_history, primary_physician, is_premium, offline_appointments, last_visit_date,
        created_at, updated_at`

func (r *CustomerProfileRepo) scanOne(row *sql.Row) (model.CustomerProfile, error) {
	var p model.CustomerProfile
	err := row.Scan(&p.ID, &p.UserID, &p.NationalID, &p.Address, &p.HouseNumber, &p.HasMedicalHistory,
		&p.HasDrugHistory, &p.PrimaryPhysician, &p.IsPremium, &p.OfflineAppointments, &p.LastVisitDate,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CustomerProfile{}, ErrProfileNotFound
	}
	return p, err
}

// Create inserts a customer profile and re-reads the row for DB defaults.
func (r *CustomerProfileRepo) Create(ctx context.Context, p *model.CustomerProfile) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO customer_profiles
            (user_id, national_id, address, house_number, has_medical_history, has_drug_history,
             primary_physician, is_premium, offline_appointments, last_visit_date)
         VALUES (?,?,?,?,?,?,?,?,?,?)`,
		p.UserID, p.NationalID, p.Address, p.HouseNumber, p.HasMedicalHistory, p.HasDrugHistory,
		p.PrimaryPhysician, p.IsPremium, p.OfflineAppointments, p.LastVisitDate)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrNationalIDExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = got
	return nil
}

// GetByID fetches one profile regardless of owner.
func (r *CustomerProfileRepo) GetByID(ctx context.Context, id uint64) (model.CustomerProfile, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		"SELECT "+profileCols+" FROM customer_profiles WHERE id=? LIMIT 1", id))
}

// GetByIDForUser fetches one profile scoped to its owner.
func (r *CustomerProfileRepo) GetByIDForUser(ctx context.Context, id uint64, userID uint64) (model.CustomerProfile, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		"SELECT "+profileCols+" FROM customer_profiles WHERE id=? AND user_id=? LIMIT 1", id, userID))
}

// GetByUserID fetches the profile owned by the given user.
func (r *CustomerProfileRepo) GetByUserID(ctx context.Context, userID uint64) (model.CustomerProfile, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		"SELECT "+profileCols+" FROM customer_profiles WHERE user_id=? LIMIT 1", userID))
}

// List returns all profiles, optionally filtered by national id or the
// owner's username.
func (r *CustomerProfileRepo) List(ctx context.Context, search string) ([]model.CustomerProfile, error) {
	q := `SELECT p.id, p.user_id, p.national_id, p.address, p.house_number, p.has_medical_history,
            p.has_drug_history, p.primary_physician, p.is_premium, p.offline_appointments, p.last_visit_date,
            p.created_at, p.updated_at
        FROM customer_profiles p`
	args := []any{}
	if search != "" {
		q += " JOIN users u ON u.id = p.user_id WHERE LOWER(p.national_id) LIKE ? OR LOWER(u.username) LIKE ?"
		pat := "%" + strings.ToLower(search) + "%"
		args = append(args, pat, pat)
	}
	q += " ORDER BY p.id"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.CustomerProfile{}
	for rows.Next() {
		var p model.CustomerProfile
		if err := rows.Scan(&p.ID, &p.UserID, &p.NationalID, &p.Address, &p.HouseNumber, &p.HasMedicalHistory,
			&p.HasDrugHistory, &p.PrimaryPhysician, &p.IsPremium, &p.OfflineAppointments, &p.LastVisitDate,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update rewrites the mutable profile columns.
func (r *CustomerProfileRepo) Update(ctx context.Context, p *model.CustomerProfile) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE customer_profiles SET national_id=?, address=?, house_number=?, has_medical_history=?,
            has_drug_history=?, primary_physician=?, is_premium=?, offline_appointments=?, last_visit_date=?,
            updated_at=NOW()
        WHERE id=?`,
		p.NationalID, p.Address, p.HouseNumber, p.HasMedicalHistory, p.HasDrugHistory,
		p.PrimaryPhysician, p.IsPremium, p.OfflineAppointments, p.LastVisitDate, p.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrNationalIDExists
		}
		return err
	}
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = got
	return nil
}

// UpdateForUser applies a partial self-service update scoped to the
// owner. Nil pointers leave the column untouched. A foreign id surfaces
// as ErrProfileNotFound, never as forbidden.
func (r *CustomerProfileRepo) UpdateForUser(ctx context.Context, id, userID uint64, address, houseNumber, primaryPhysician *string) (model.CustomerProfile, error) {
	if _, err := r.GetByIDForUser(ctx, id, userID); err != nil {
		return model.CustomerProfile{}, err
	}
	sets := []string{}
	args := []any{}
	if address != nil {
		sets = append(sets, "address=?")
		args = append(args, *address)
	}
	if houseNumber != nil {
		sets = append(sets, "house_number=?")
		args = append(args, *houseNumber)
	}
	if primaryPhysician != nil {
		sets = append(sets, "primary_physician=?")
		args = append(args, *primaryPhysician)
	}
	if len(sets) > 0 {
		sets = append(sets, "updated_at=NOW()")
		args = append(args, id, userID)
		if _, err := r.db.ExecContext(ctx,
			"UPDATE customer_profiles SET "+strings.Join(sets, ", ")+" WHERE id=? AND user_id=?", args...); err != nil {
			return model.CustomerProfile{}, err
		}
	}
	return r.GetByIDForUser(ctx, id, userID)
}

// Delete removes a customer profile.
func (r *CustomerProfileRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM customer_profiles WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}
