package domain

import "time"

// User represents a registered account. Login is by email; username is a
// display name only.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	CreatedAt    time.Time
}
