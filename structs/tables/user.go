package tables

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleWaiter = "waiter"
)

// User holds credentials plus the single mutable session slot. At most one
// live token exists per account; logging in while the slot is live is
// rejected, and only stale slots are overwritten.
type User struct {
	tableName        struct{}   `bun:"table:users,alias:u"`
	Id               uuid.UUID  `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Username         string     `json:"username" bun:"username,unique,notnull"`
	PasswordHash     string     `json:"-" bun:"password_hash,notnull"`
	Role             string     `json:"role" bun:"role,notnull,default:'waiter'"`
	SessionToken     *string    `json:"-" bun:"session_token"`
	SessionExpiresAt *time.Time `json:"-" bun:"session_expires_at"`
	LastSeenAt       *time.Time `json:"last_seen_at,omitempty" bun:"last_seen_at"`
	CreatedAt        time.Time  `json:"created_at" bun:"created_at,notnull,default:now()"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
