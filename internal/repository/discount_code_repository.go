package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrCodeNotFound indicates that no discount code matched the lookup.
var ErrCodeNotFound = errors.New("discount code not found")

// ErrCodeExists is returned when an insert or update collides with the
// unique code index.
var ErrCodeExists = errors.New("discount code already exists")

// DiscountCodeRepo provides access to the discount_codes table.  The
// Tx variants participate in the discount application transaction
// driven by the payment handler.
type DiscountCodeRepo struct {
    db *sql.DB
}

// NewDiscountCodeRepo returns a new DiscountCodeRepo bound to the given database.
func NewDiscountCodeRepo(db *sql.DB) *DiscountCodeRepo { return &DiscountCodeRepo{db: db} }

const codeCols = "id, code, amount, is_used, valid_until, max_usage, usage_count, created_at, updated_at"

func scanCode(sc interface{ Scan(...any) error }) (model.DiscountCode, error) {
    var d model.DiscountCode
    err := sc.Scan(&d.ID, &d.Code, &d.Amount, &d.IsUsed, &d.ValidUntil, &d.MaxUsage, &d.UsageCount, &d.CreatedAt, &d.UpdatedAt)
    return d, err
}

// Create inserts a discount code and re-reads the row so DB defaults
// are populated.
func (r *DiscountCodeRepo) Create(ctx context.Context, d *model.DiscountCode) error {
    const q = `INSERT INTO discount_codes (code, amount, is_used, valid_until, max_usage, usage_count)
        VALUES (?,?,?,?,?,?)`
    res, err := r.db.ExecContext(ctx, q, d.Code, d.Amount, d.IsUsed, d.ValidUntil, d.MaxUsage, d.UsageCount)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return ErrCodeExists
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    d.ID = uint64(id)
    got, err := r.GetByID(ctx, d.ID)
    if err != nil {
        return err
    }
    *d = got
    return nil
}

// GetByID fetches one discount code by numeric id.
func (r *DiscountCodeRepo) GetByID(ctx context.Context, id uint64) (model.DiscountCode, error) {
    d, err := scanCode(r.db.QueryRowContext(ctx,
        "SELECT "+codeCols+" FROM discount_codes WHERE id=? LIMIT 1", id))
    if errors.Is(err, sql.ErrNoRows) {
        return model.DiscountCode{}, ErrCodeNotFound
    }
    return d, err
}

// GetByCode fetches one discount code by its unique voucher text, the
// natural lookup key of the catalog routes.
func (r *DiscountCodeRepo) GetByCode(ctx context.Context, code string) (model.DiscountCode, error) {
    d, err := scanCode(r.db.QueryRowContext(ctx,
        "SELECT "+codeCols+" FROM discount_codes WHERE code=? LIMIT 1", code))
    if errors.Is(err, sql.ErrNoRows) {
        return model.DiscountCode{}, ErrCodeNotFound
    }
    return d, err
}

// GetByCodeForUpdateTx reads one discount code inside the given
// transaction with a row lock, for the discount application flow.
func (r *DiscountCodeRepo) GetByCodeForUpdateTx(ctx context.Context, tx *sql.Tx, code string) (model.DiscountCode, error) {
    d, err := scanCode(tx.QueryRowContext(ctx,
        "SELECT "+codeCols+" FROM discount_codes WHERE code=? FOR UPDATE", code))
    if errors.Is(err, sql.ErrNoRows) {
        return model.DiscountCode{}, ErrCodeNotFound
    }
    return d, err
}

// UpdateUsageTx persists the usage bookkeeping inside the given
// transaction.
func (r *DiscountCodeRepo) UpdateUsageTx(ctx context.Context, tx *sql.Tx, id uint64, usageCount int64, isUsed bool) error {
    _, err := tx.ExecContext(ctx,
        "UPDATE discount_codes SET usage_count=?, is_used=?, updated_at=NOW() WHERE id=?",
        usageCount, isUsed, id)
    return err
}

func (r *DiscountCodeRepo) queryList(ctx context.Context, q string, args ...any) ([]model.DiscountCode, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := []model.DiscountCode{}
    for rows.Next() {
        d, err := scanCode(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, d)
    }
    return out, rows.Err()
}

// List returns all discount codes, optionally filtered by code text.
func (r *DiscountCodeRepo) List(ctx context.Context, search string) ([]model.DiscountCode, error) {
    q := "SELECT " + codeCols + " FROM discount_codes"
    args := []any{}
    if search != "" {
        q += " WHERE LOWER(code) LIKE ?"
        args = append(args, "%"+strings.ToLower(search)+"%")
    }
    q += " ORDER BY id"
    return r.queryList(ctx, q, args...)
}

// ListValid returns codes still applicable: not used up and with an
// unexpired validity window.
func (r *DiscountCodeRepo) ListValid(ctx context.Context) ([]model.DiscountCode, error) {
    return r.queryList(ctx,
        "SELECT "+codeCols+" FROM discount_codes WHERE is_used = FALSE AND valid_until >= UTC_TIMESTAMP() ORDER BY id")
}

// Update rewrites the mutable columns of a discount code.
func (r *DiscountCodeRepo) Update(ctx context.Context, d *model.DiscountCode) error {
    const q = `UPDATE discount_codes SET code=?, amount=?, is_used=?, valid_until=?, max_usage=?,
            usage_count=?, updated_at=NOW()
        WHERE id=?`
    _, err := r.db.ExecContext(ctx, q, d.Code, d.Amount, d.IsUsed, d.ValidUntil, d.MaxUsage, d.UsageCount, d.ID)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return ErrCodeExists
        }
        return err
    }
    got, err := r.GetByID(ctx, d.ID)
    if err != nil {
        return err
    }
    *d = got
    return nil
}

// Delete removes a discount code.  Reservations keep their history
// through the SET NULL relationship, so no dependency check is needed.
func (r *DiscountCodeRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM discount_codes WHERE id=?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrCodeNotFound
    }
    return nil
}
