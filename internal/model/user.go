package model

import "time"

// User is an authentication principal. Every item belongs to exactly one
// user and all reads and writes are scoped by user ID.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}
