// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is a registered account. It is the principal of every authenticated request.
type User struct {
	ID           int64     // Store-assigned identifier.
	Username     string    // Unique login name.
	Email        string    // Unique contact email.
	PasswordHash string    // bcrypt hash of the password. Plaintext is never stored.
	CreatedAt    time.Time // Timestamp of when this account was created.
}

// UserProfile is the public view of a user together with aggregate counts.
type UserProfile struct {
	User      *User
	PostCount int64
}
