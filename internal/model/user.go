package model

import "time"

// User is the authenticated operator of the application.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Session pairs the current user with an opaque token. At most one
// session is active at a time; it is the only state that survives
// restarts.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
