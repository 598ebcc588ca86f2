// Package service provides business logic for the application.
//
// Every operation runs the same validation chain in a fixed order:
// identifier format checks first (before any store access), then existence
// lookups, each short-circuiting on failure. Ownership mismatches are
// collapsed into the same not-found outcome as true absence so that a caller
// can never probe for another user's records.
package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invalid-argument errors: malformed identifiers and missing required fields.
var (
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidCategoryID = errors.New("invalid category id")
	ErrInvalidBlogID     = errors.New("invalid blog id")
	ErrMissingTitle      = errors.New("title is required")
	ErrMissingUsername   = errors.New("username is required")
	ErrMissingEmail      = errors.New("email is required")
)

// Not-found errors. Wrong-owner lookups report the same error as absence.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBlogNotFound     = errors.New("blog not found")
)

// parseID parses a 24-hex-character object id, returning the given
// invalid-argument sentinel when the format is wrong.
func parseID(raw string, invalid error) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, invalid
	}
	return id, nil
}
