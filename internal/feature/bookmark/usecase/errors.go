// Package usecase implements the business logic for the bookmark feature.
package usecase

import "errors"

var (
	// ErrBookmarkNotFound is returned when a bookmark does not exist or
	// belongs to another user. Both cases collapse to the same error so a
	// caller can never learn whether someone else's record exists.
	ErrBookmarkNotFound = errors.New("bookmark not found")

	// ErrAccessDenied is returned by edit/delete when the freshly fetched
	// record is missing or owned by a different user.
	ErrAccessDenied = errors.New("access to resource denied")
)
