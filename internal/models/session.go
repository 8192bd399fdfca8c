package models

import "time"

// Session is the server-side authentication state behind a cookie token.
// A row with an unexpired ExpiresAt is the "logged in" flag.
type Session struct {
	ID        int64     `json:"id"`
	Usuario   string    `json:"usuario"`
	TokenHash string    `json:"-"` // keyed hash, never exposed
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginRequest matches the admin login form.
type LoginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}
