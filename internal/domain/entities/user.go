package entities

import (
	"time"
)

// User represents a CRM user account
type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session identifies the caller for every usecase operation. There is no
// multi-tenant concept yet; unauthenticated requests resolve to the
// configured default user.
type Session struct {
	UserID uint
}

// LoginResponse is returned by the login endpoint
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
