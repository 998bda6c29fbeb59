// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and optional profile fields.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is matched exactly as stored.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This never stores plaintext and must never be serialized outward;
	// responses use an explicit view type without this field.
	Password string `gorm:"size:255;not null"`

	// FirstName and LastName are optional profile fields.
	FirstName *string `gorm:"size:255"`
	LastName  *string `gorm:"size:255"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
