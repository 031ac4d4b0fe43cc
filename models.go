package users

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the stored user model. The username is the primary key, the email
// is unique. PasswordHash is written by the registration pipeline and read
// by the authentication pipeline; it never crosses the response boundary.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	Username     string     `bun:"username,pk" json:"username,omitempty"`
	Email        string     `bun:"email,notnull,unique" json:"email,omitempty"`
	Name         string     `bun:"name,notnull" json:"name,omitempty"`
	PasswordHash string     `bun:"password_hash,notnull" json:"-"`
	CreatedAt    *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt    *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	LastSignInAt *time.Time `bun:"last_sign_in_at,nullzero" json:"last_sign_in_at,omitempty"`
}

// Public is the projection of the user that responses carry.
func (u *User) Public() map[string]any {
	return map[string]any{
		"username": u.Username,
		"email":    u.Email,
		"name":     u.Name,
	}
}
