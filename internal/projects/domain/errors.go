package domain

import "errors"

var (
	// ErrValidation is returned when a required field is missing or empty.
	ErrValidation = errors.New("project name, clone link, and authorization password are required")

	// ErrNotFound covers both a nonexistent id and an id owned by another
	// caller. The two cases are deliberately indistinguishable so record
	// existence never leaks across owners.
	ErrNotFound = errors.New("project not found or access denied")
)
