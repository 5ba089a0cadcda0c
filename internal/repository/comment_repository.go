package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/laser-clinic-reservation/internal/model"
)

// ErrCommentNotFound indicates that no comment matched the lookup.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepo provides access to the comments table.
type CommentRepo struct{ db *sql.DB }

func NewCommentRepo(db *sql.DB) *CommentRepo { return &CommentRepo{db: db} }

const commentCols = "id, user_id, message, is_reviewed, created_at, updated_at"

// Create inserts a comment with a fresh UUID and re-reads the row.
func (r *CommentRepo) Create(ctx context.Context, cm *model.Comment) error {
	cm.ID = uuid.New()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (id, user_id, message, is_reviewed) VALUES (?,?,?,?)",
		cm.ID, cm.UserID, cm.Message, cm.IsReviewed)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, cm.ID)
	if err != nil {
		return err
	}
	*cm = got
	return nil
}

// GetByID fetches one comment regardless of author.
func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (model.Comment, error) {
	var cm model.Comment
	err := r.db.QueryRowContext(ctx,
		"SELECT "+commentCols+" FROM comments WHERE id=? LIMIT 1", id).
		Scan(&cm.ID, &cm.UserID, &cm.Message, &cm.IsReviewed, &cm.CreatedAt, &cm.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Comment{}, ErrCommentNotFound
	}
	return cm, err
}

// GetByIDForUser fetches one comment scoped to its author. A foreign
// id surfaces as ErrCommentNotFound.
func (r *CommentRepo) GetByIDForUser(ctx context.Context, id uuid.UUID, userID uint64) (model.Comment, error) {
	var cm model.Comment
	err := r.db.QueryRowContext(ctx,
		"SELECT "+commentCols+" FROM comments WHERE id=? AND user_id=? LIMIT 1", id, userID).
		Scan(&cm.ID, &cm.UserID, &cm.Message, &cm.IsReviewed, &cm.CreatedAt, &cm.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Comment{}, ErrCommentNotFound
	}
	return cm, err
}

func (r *CommentRepo) queryList(ctx context.Context, q string, args ...any) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Comment{}
	for rows.Next() {
		var cm model.Comment
		if err := rows.Scan(&cm.ID, &cm.UserID, &cm.Message, &cm.IsReviewed, &cm.CreatedAt, &cm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, cm)
	}
	return out, rows.Err()
}

// List returns all comments, optionally filtered by message text or
// author username.
func (r *CommentRepo) List(ctx context.Context, search string) ([]model.Comment, error) {
	q := `SELECT c.id, c.user_id, c.message, c.is_reviewed, c.created_at, c.updated_at FROM comments c`
	args := []any{}
	if search != "" {
		q += " JOIN users u ON u.id = c.user_id WHERE LOWER(c.message) LIKE ? OR LOWER(u.username) LIKE ?"
		pat := "%" + strings.ToLower(search) + "%"
		args = append(args, pat, pat)
	}
	q += " ORDER BY c.created_at DESC"
	return r.queryList(ctx, q, args...)
}

// ListForUser returns all comments of one author.
func (r *CommentRepo) ListForUser(ctx context.Context, userID uint64) ([]model.Comment, error) {
	return r.queryList(ctx,
		"SELECT "+commentCols+" FROM comments WHERE user_id=? ORDER BY created_at DESC", userID)
}

// ListUnreviewed returns comments an admin has not reviewed yet.
func (r *CommentRepo) ListUnreviewed(ctx context.Context) ([]model.Comment, error) {
	return r.queryList(ctx,
		"SELECT "+commentCols+" FROM comments WHERE is_reviewed = FALSE ORDER BY created_at DESC")
}

// Update rewrites the mutable columns of a comment.
func (r *CommentRepo) Update(ctx context.Context, cm *model.Comment) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE comments SET message=?, is_reviewed=?, updated_at=NOW() WHERE id=?",
		cm.Message, cm.IsReviewed, cm.ID)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, cm.ID)
	if err != nil {
		return err
	}
	*cm = got
	return nil
}

// Delete removes a comment.
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCommentNotFound
	}
	return nil
}
