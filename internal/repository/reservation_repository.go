package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/google/uuid"

    "github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrReservationNotFound indicates that no reservation matched the lookup.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepo provides CRUD operations for reservations and their
// linked area schedules.  A reservation books one slot for a customer;
// the treated areas are stored as rows in the
// reservation_area_schedules join table.  All timestamp fields are
// assumed to be stored in UTC.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.  Use this method to
// obtain a *sql.DB when you need fine-grained transaction control.
func (r *ReservationRepo) DB() *sql.DB {
    return r.db
}

const reservationCols = `id, user_id, slot_id, laser_area_id, session_number, reservation_type,
        is_online, is_charged, is_paid, is_resolved, used_discount_code, total_price, final_amount,
        discount_code_id, reservation_timestamp, request_timestamp, created_at, updated_at`

// scanReservation reads one reservation row from the given scanner.
func scanReservation(sc interface{ Scan(...any) error }) (model.Reservation, error) {
    var res model.Reservation
    err := sc.Scan(
        &res.ID, &res.UserID, &res.SlotID, &res.LaserAreaID, &res.SessionNumber, &res.ReservationType,
        &res.IsOnline, &res.IsCharged, &res.IsPaid, &res.IsResolved, &res.UsedDiscountCode,
        &res.TotalPrice, &res.FinalAmount, &res.DiscountCodeID, &res.ReservationTimestamp,
        &res.RequestTimestamp, &res.CreatedAt, &res.UpdatedAt,
    )
    return res, err
}

// CreateTx inserts a new reservation within the scope of an existing
// transaction, together with its area-schedule links.  It assigns a
// fresh UUID, queries the row back so DB defaults are populated, and
// leaves commit or rollback to the caller.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
    res.ID = uuid.New()
    const q = `INSERT INTO reservations
            (id, user_id, slot_id, laser_area_id, session_number, reservation_type, is_online,
             is_charged, is_paid, is_resolved, used_discount_code, total_price, final_amount,
             discount_code_id, reservation_timestamp, request_timestamp)
        VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
    _, err := tx.ExecContext(ctx, q,
        res.ID, res.UserID, res.SlotID, res.LaserAreaID, res.SessionNumber, res.ReservationType,
        res.IsOnline, res.IsCharged, res.IsPaid, res.IsResolved, res.UsedDiscountCode,
        res.TotalPrice, res.FinalAmount, res.DiscountCodeID, res.ReservationTimestamp, res.RequestTimestamp)
    if err != nil {
        return err
    }
    if err := r.linkAreaSchedulesTx(ctx, tx, res.ID, res.AreaScheduleIDs); err != nil {
        return err
    }
    // Query back the full row to populate timestamps and defaults.
    got, err := scanReservation(tx.QueryRowContext(ctx,
        "SELECT "+reservationCols+" FROM reservations WHERE id = ?", res.ID))
    if err != nil {
        return err
    }
    got.AreaScheduleIDs = res.AreaScheduleIDs
    *res = got
    return nil
}

// Create wraps CreateTx in its own transaction.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    if err := r.CreateTx(ctx, tx, res); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

// linkAreaSchedulesTx inserts the join rows for a reservation in a
// single statement.  Passing an empty slice has no effect.
func (r *ReservationRepo) linkAreaSchedulesTx(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID, scheduleIDs []uuid.UUID) error {
    if len(scheduleIDs) == 0 {
        return nil
    }
    query := `INSERT INTO reservation_area_schedules (reservation_id, area_schedule_id) VALUES `
    args := make([]interface{}, 0, len(scheduleIDs)*2)
    for i, sid := range scheduleIDs {
        if i > 0 {
            query += ","
        }
        query += "(?, ?)"
        args = append(args, reservationID, sid)
    }
    _, err := tx.ExecContext(ctx, query, args...)
    return err
}

// loadAreaSchedules fills AreaScheduleIDs for one reservation.
func (r *ReservationRepo) loadAreaSchedules(ctx context.Context, res *model.Reservation) error {
    rows, err := r.db.QueryContext(ctx,
        "SELECT area_schedule_id FROM reservation_area_schedules WHERE reservation_id = ?", res.ID)
    if err != nil {
        return err
    }
    defer rows.Close()
    ids := []uuid.UUID{}
    for rows.Next() {
        var id uuid.UUID
        if err := rows.Scan(&id); err != nil {
            return err
        }
        ids = append(ids, id)
    }
    res.AreaScheduleIDs = ids
    return rows.Err()
}

// GetByID fetches one reservation regardless of owner, with its
// area-schedule links attached.
func (r *ReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (model.Reservation, error) {
    res, err := scanReservation(r.db.QueryRowContext(ctx,
        "SELECT "+reservationCols+" FROM reservations WHERE id = ? LIMIT 1", id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return model.Reservation{}, ErrReservationNotFound
        }
        return model.Reservation{}, err
    }
    if err := r.loadAreaSchedules(ctx, &res); err != nil {
        return model.Reservation{}, err
    }
    return res, nil
}

// GetByIDForUser fetches one reservation scoped to the booking
// customer.  A reservation belonging to someone else surfaces as
// ErrReservationNotFound rather than forbidden.
func (r *ReservationRepo) GetByIDForUser(ctx context.Context, id uuid.UUID, userID uint64) (model.Reservation, error) {
    res, err := scanReservation(r.db.QueryRowContext(ctx,
        "SELECT "+reservationCols+" FROM reservations WHERE id = ? AND user_id = ? LIMIT 1", id, userID))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return model.Reservation{}, ErrReservationNotFound
        }
        return model.Reservation{}, err
    }
    if err := r.loadAreaSchedules(ctx, &res); err != nil {
        return model.Reservation{}, err
    }
    return res, nil
}

// GetByIDForOperator fetches one reservation scoped to the operator
// running its slot.
func (r *ReservationRepo) GetByIDForOperator(ctx context.Context, id uuid.UUID, operatorID uint64) (model.Reservation, error) {
    const q = `SELECT r.id, r.user_id, r.slot_id, r.laser_area_id, r.session_number, r.reservation_type,
            r.is_online, r.is_charged, r.is_paid, r.is_resolved, r.used_discount_code, r.total_price,
            r.final_amount, r.discount_code_id, r.reservation_timestamp, r.request_timestamp,
            r.created_at, r.updated_at
        FROM reservations r
        JOIN slots s ON s.id = r.slot_id
        WHERE r.id = ? AND s.operator_id = ?
        LIMIT 1`
    res, err := scanReservation(r.db.QueryRowContext(ctx, q, id, operatorID))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return model.Reservation{}, ErrReservationNotFound
        }
        return model.Reservation{}, err
    }
    if err := r.loadAreaSchedules(ctx, &res); err != nil {
        return model.Reservation{}, err
    }
    return res, nil
}

func (r *ReservationRepo) queryList(ctx context.Context, q string, args ...any) ([]model.Reservation, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := []model.Reservation{}
    for rows.Next() {
        res, err := scanReservation(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, res)
    }
    return out, rows.Err()
}

// List returns all reservations, optionally filtered by the booking
// customer's username or the slot date.
func (r *ReservationRepo) List(ctx context.Context, search string) ([]model.Reservation, error) {
    q := `SELECT r.id, r.user_id, r.slot_id, r.laser_area_id, r.session_number, r.reservation_type,
            r.is_online, r.is_charged, r.is_paid, r.is_resolved, r.used_discount_code, r.total_price,
            r.final_amount, r.discount_code_id, r.reservation_timestamp, r.request_timestamp,
            r.created_at, r.updated_at
        FROM reservations r`
    args := []any{}
    if search != "" {
        q += ` JOIN users u ON u.id = r.user_id
            JOIN slots s ON s.id = r.slot_id
            WHERE LOWER(u.username) LIKE ? OR DATE_FORMAT(s.date, '%Y-%m-%d') LIKE ?`
        pat := "%" + strings.ToLower(search) + "%"
        args = append(args, pat, pat)
    }
    q += " ORDER BY r.created_at DESC"
    return r.queryList(ctx, q, args...)
}

// ListForUser returns all reservations booked by one customer.
func (r *ReservationRepo) ListForUser(ctx context.Context, userID uint64) ([]model.Reservation, error) {
    return r.queryList(ctx,
        "SELECT "+reservationCols+" FROM reservations WHERE user_id = ? ORDER BY created_at DESC", userID)
}

// ListForOperator returns reservations booked into slots run by one
// operator.
func (r *ReservationRepo) ListForOperator(ctx context.Context, operatorID uint64) ([]model.Reservation, error) {
    const q = `SELECT r.id, r.user_id, r.slot_id, r.laser_area_id, r.session_number, r.reservation_type,
            r.is_online, r.is_charged, r.is_paid, r.is_resolved, r.used_discount_code, r.total_price,
            r.final_amount, r.discount_code_id, r.reservation_timestamp, r.request_timestamp,
            r.created_at, r.updated_at
        FROM reservations r
        JOIN slots s ON s.id = r.slot_id
        WHERE s.operator_id = ?
        ORDER BY r.created_at DESC`
    return r.queryList(ctx, q, operatorID)
}

// ListUnpaid returns reservations whose payment has not completed.
func (r *ReservationRepo) ListUnpaid(ctx context.Context) ([]model.Reservation, error) {
    return r.queryList(ctx,
        "SELECT "+reservationCols+" FROM reservations WHERE is_paid = FALSE ORDER BY created_at DESC")
}

// Update rewrites the mutable columns of a reservation (admin only).
// Area-schedule links are replaced when the record carries any.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    const q = `UPDATE reservations SET slot_id=?, laser_area_id=?, session_number=?, reservation_type=?,
            is_online=?, is_charged=?, is_paid=?, is_resolved=?, used_discount_code=?, total_price=?,
            final_amount=?, discount_code_id=?, reservation_timestamp=?, request_timestamp=?, updated_at=NOW()
        WHERE id=?`
    if _, err := tx.ExecContext(ctx, q,
        res.SlotID, res.LaserAreaID, res.SessionNumber, res.ReservationType,
        res.IsOnline, res.IsCharged, res.IsPaid, res.IsResolved, res.UsedDiscountCode,
        res.TotalPrice, res.FinalAmount, res.DiscountCodeID, res.ReservationTimestamp,
        res.RequestTimestamp, res.ID); err != nil {
        return err
    }
    if res.AreaScheduleIDs != nil {
        if _, err := tx.ExecContext(ctx,
            "DELETE FROM reservation_area_schedules WHERE reservation_id = ?", res.ID); err != nil {
            return err
        }
        if err := r.linkAreaSchedulesTx(ctx, tx, res.ID, res.AreaScheduleIDs); err != nil {
            return err
        }
    }
    got, err := scanReservation(tx.QueryRowContext(ctx,
        "SELECT "+reservationCols+" FROM reservations WHERE id = ?", res.ID))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return ErrReservationNotFound
        }
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    got.AreaScheduleIDs = res.AreaScheduleIDs
    *res = got
    return nil
}

// MarkResolved flips is_resolved on a reservation booked into one of
// the operator's slots.  Reservations outside the operator's slots
// surface as ErrReservationNotFound.
func (r *ReservationRepo) MarkResolved(ctx context.Context, id uuid.UUID, operatorID uint64) (model.Reservation, error) {
    const q = `UPDATE reservations r
        JOIN slots s ON s.id = r.slot_id
        SET r.is_resolved = TRUE, r.updated_at = NOW()
        WHERE r.id = ? AND s.operator_id = ?`
    res, err := r.db.ExecContext(ctx, q, id, operatorID)
    if err != nil {
        return model.Reservation{}, err
    }
    if _, err := res.RowsAffected(); err != nil {
        return model.Reservation{}, err
    }
    // Zero rows means absent, out of scope, or already resolved; the
    // scoped re-read distinguishes not-found from the benign repeat.
    return r.GetByIDForOperator(ctx, id, operatorID)
}

// Delete removes a reservation together with its area-schedule links.
// Payments referencing the reservation block the delete with
// ErrProtected.
func (r *ReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
    var deps int64
    if err := r.db.QueryRowContext(ctx,
        "SELECT COUNT(*) FROM payments WHERE reservation_id = ?", id).Scan(&deps); err != nil {
        return err
    }
    if deps > 0 {
        return ErrProtected
    }
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    if _, err := tx.ExecContext(ctx,
        "DELETE FROM reservation_area_schedules WHERE reservation_id = ?", id); err != nil {
        return err
    }
    res, err := tx.ExecContext(ctx, "DELETE FROM reservations WHERE id = ?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrReservationNotFound
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}
