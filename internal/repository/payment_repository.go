package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"

    "github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrPaymentNotFound indicates that no payment matched the lookup.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrTransactionIDExists is returned when an insert or update collides
// with the unique paypal_transaction_id index.
var ErrTransactionIDExists = errors.New("paypal transaction id already exists")

// PaymentRepo provides access to the payments table.  Discount
// application spans this repository and DiscountCodeRepo inside one
// transaction; the Tx variants below participate in it.
type PaymentRepo struct {
    db *sql.DB
}

// NewPaymentRepo returns a new PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *PaymentRepo) DB() *sql.DB {
    return r.db
}

const paymentCols = `id, user_id, reservation_id, amount, status, payment_type,
        paypal_transaction_id, payment_timestamp, created_at, updated_at`

func scanPayment(sc interface{ Scan(...any) error }) (model.Payment, error) {
    var p model.Payment
    err := sc.Scan(
        &p.ID, &p.UserID, &p.ReservationID, &p.Amount, &p.Status, &p.PaymentType,
        &p.PayPalTransactionID, &p.PaymentTimestamp, &p.CreatedAt, &p.UpdatedAt,
    )
    return p, err
}

// Create inserts a payment with a fresh UUID and re-reads the row so
// DB defaults (status, timestamps) are populated.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
    p.ID = uuid.New()
    const q = `INSERT INTO payments
            (id, user_id, reservation_id, amount, status, payment_type, paypal_transaction_id, payment_timestamp)
        VALUES (?,?,?,?,?,?,?,?)`
    _, err := r.db.ExecContext(ctx, q,
        p.ID, p.UserID, p.ReservationID, p.Amount, p.Status, p.PaymentType,
        p.PayPalTransactionID, p.PaymentTimestamp)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return ErrTransactionIDExists
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

// GetByID fetches one payment regardless of owner.
func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (model.Payment, error) {
    p, err := scanPayment(r.db.QueryRowContext(ctx,
        "SELECT "+paymentCols+" FROM payments WHERE id=? LIMIT 1", id))
    if errors.Is(err, sql.ErrNoRows) {
        return model.Payment{}, ErrPaymentNotFound
    }
    return p, err
}

// GetByIDForUser fetches one payment scoped to its owner. A foreign id
// surfaces as ErrPaymentNotFound.
func (r *PaymentRepo) GetByIDForUser(ctx context.Context, id uuid.UUID, userID uint64) (model.Payment, error) {
    p, err := scanPayment(r.db.QueryRowContext(ctx,
        "SELECT "+paymentCols+" FROM payments WHERE id=? AND user_id=? LIMIT 1", id, userID))
    if errors.Is(err, sql.ErrNoRows) {
        return model.Payment{}, ErrPaymentNotFound
    }
    return p, err
}

// GetByIDForOwner fetches one payment without owner scoping and checks
// ownership on the row.  A payment that exists but belongs to someone
// else returns ErrForbidden instead of ErrPaymentNotFound.
func (r *PaymentRepo) GetByIDForOwner(ctx context.Context, id uuid.UUID, userID uint64) (model.Payment, error) {
    p, err := r.GetByID(ctx, id)
    if err != nil {
        return model.Payment{}, err
    }
    if p.UserID != userID {
        return model.Payment{}, ErrForbidden
    }
    return p, nil
}

// GetForUpdateTx re-reads one payment inside the given transaction
// with a row lock, for the discount application flow.
func (r *PaymentRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (model.Payment, error) {
    p, err := scanPayment(tx.QueryRowContext(ctx,
        "SELECT "+paymentCols+" FROM payments WHERE id=? FOR UPDATE", id))
    if errors.Is(err, sql.ErrNoRows) {
        return model.Payment{}, ErrPaymentNotFound
    }
    return p, err
}

// UpdateAmountTx persists a new payment amount inside the given
// transaction.
func (r *PaymentRepo) UpdateAmountTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, amount decimal.Decimal) error {
    _, err := tx.ExecContext(ctx,
        "UPDATE payments SET amount=?, updated_at=NOW() WHERE id=?", amount, id)
    return err
}

func (r *PaymentRepo) queryList(ctx context.Context, q string, args ...any) ([]model.Payment, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := []model.Payment{}
    for rows.Next() {
        p, err := scanPayment(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, p)
    }
    return out, rows.Err()
}

// List returns all payments, optionally filtered by the payer's
// username or the gateway transaction id.
func (r *PaymentRepo) List(ctx context.Context, search string) ([]model.Payment, error) {
    q := `SELECT p.id, p.user_id, p.reservation_id, p.amount, p.status, p.payment_type,
            p.paypal_transaction_id, p.payment_timestamp, p.created_at, p.updated_at
        FROM payments p`
    args := []any{}
    if search != "" {
        q += ` JOIN users u ON u.id = p.user_id
            WHERE LOWER(u.username) LIKE ? OR LOWER(COALESCE(p.paypal_transaction_id, '')) LIKE ?`
        pat := "%" + strings.ToLower(search) + "%"
        args = append(args, pat, pat)
    }
    q += " ORDER BY p.created_at DESC"
    return r.queryList(ctx, q, args...)
}

// ListForUser returns all payments of one customer.
func (r *PaymentRepo) ListForUser(ctx context.Context, userID uint64) ([]model.Payment, error) {
    return r.queryList(ctx,
        "SELECT "+paymentCols+" FROM payments WHERE user_id=? ORDER BY created_at DESC", userID)
}

// ListPending returns payments still waiting to complete.
func (r *PaymentRepo) ListPending(ctx context.Context) ([]model.Payment, error) {
    return r.queryList(ctx,
        "SELECT "+paymentCols+" FROM payments WHERE status='PENDING' ORDER BY created_at DESC")
}

// Update rewrites the mutable columns of a payment (admin only).
func (r *PaymentRepo) Update(ctx context.Context, p *model.Payment) error {
    const q = `UPDATE payments SET amount=?, status=?, payment_type=?, paypal_transaction_id=?,
            payment_timestamp=?, updated_at=NOW()
        WHERE id=?`
    _, err := r.db.ExecContext(ctx, q,
        p.Amount, p.Status, p.PaymentType, p.PayPalTransactionID, p.PaymentTimestamp, p.ID)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return ErrTransactionIDExists
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

// Delete removes a payment.
func (r *PaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM payments WHERE id=?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrPaymentNotFound
    }
    return nil
}
