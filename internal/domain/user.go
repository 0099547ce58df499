package domain

import "time"

// User is an admin-panel account. Passwords are stored as bcrypt hashes;
// the plaintext never leaves the login request.
type User struct {
	ID           int64
	Username     string // unique
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
	LastLogin    *time.Time
}
