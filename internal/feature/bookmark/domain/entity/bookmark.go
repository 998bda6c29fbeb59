// Package entity defines the domain entities for the bookmark feature.
package entity

import "time"

// Bookmark represents a saved link owned by exactly one user.
// Every access path must filter or verify by UserID; ownership is
// enforced in the service layer, not assumed from the store.
type Bookmark struct {
	// ID is the unique identifier for the bookmark.
	ID uint `gorm:"primaryKey"`

	// UserID is the id of the owning user.
	UserID uint `gorm:"index;not null"`

	// Title is the display title of the bookmark.
	Title string `gorm:"size:255;not null"`

	// Link is the bookmarked URL.
	Link string `gorm:"size:2048;not null"`

	// Description is optional free text.
	Description *string

	// CreatedAt is the timestamp when the bookmark was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the bookmark was last updated.
	UpdatedAt time.Time
}
