package model

import (
    "strings"
    "time"

    "github.com/google/uuid"
)

// Comment is a free-text message a customer leaves for the clinic.
// Admins review comments and flip IsReviewed once handled.
//
// Fields:
//  ID         – UUID primary key.
//  UserID     – author of the comment.
//  Message    – comment body, never empty.
//  IsReviewed – whether an admin has reviewed the comment.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Comment struct {
    ID         uuid.UUID // comments.id
    UserID     uint64    // comments.user_id
    Message    string    // comments.message
    IsReviewed bool      // comments.is_reviewed
    CreatedAt  time.Time // comments.created_at
    UpdatedAt  time.Time // comments.updated_at
}

// Validate rejects blank messages.
func (cm *Comment) Validate() error {
    if cm.UserID == 0 {
        return invalid("user_id", "user is required")
    }
    if strings.TrimSpace(cm.Message) == "" {
        return invalid("message", "comment message cannot be empty")
    }
    return nil
}
