package model

import (
    "strings"
    "time"
)

// Role values accepted by users.role.  ADMIN manages every resource,
// STAFF operates treatment rooms and CUSTOMER books treatments.
const (
    RoleAdmin    = "ADMIN"
    RoleStaff    = "STAFF"
    RoleCustomer = "CUSTOMER"
)

// ValidRole reports whether role names one of the known access tiers.
func ValidRole(role string) bool {
    switch role {
    case RoleAdmin, RoleStaff, RoleCustomer:
        return true
    default:
        return false
    }
}

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted here because these structs
// are primarily used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  FirstName    – given name (may be blank).
//  LastName     – family name (may be blank).
//  Role         – access tier of the account (ADMIN, STAFF or CUSTOMER).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Username     string    // users.username
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    FirstName    string    // users.first_name
    LastName     string    // users.last_name
    Role         string    // users.role
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// Validate checks the user's self-consistency before insert or update.
func (u *User) Validate() error {
    if strings.TrimSpace(u.Username) == "" {
        return invalid("username", "username cannot be empty")
    }
    if strings.TrimSpace(u.Email) == "" {
        return invalid("email", "email cannot be empty")
    }
    if !ValidRole(u.Role) {
        return invalid("role", "invalid user role selected")
    }
    return nil
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and contains metadata for expiry
// and revocation.  The plain token is not stored; only its
// SHA‑256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA‑256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
    ID        uint64     // refresh_tokens.id
    UserID    uint64     // refresh_tokens.user_id
    TokenHash string     // refresh_tokens.token_hash
    ExpiresAt time.Time  // refresh_tokens.expires_at
    RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
    CreatedAt time.Time  // refresh_tokens.created_at
}
