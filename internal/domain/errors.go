package domain

import "errors"

// Sentinel errors shared by services and repositories. Services wrap them with
// context (fmt.Errorf("%w: ...")); the HTTP layer maps them with errors.Is.
var (
	// ErrNotFound is returned when an event or wish does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a required field is missing.
	ErrValidation = errors.New("validation failed")
	// ErrConflict is returned when an event slug is already taken.
	ErrConflict = errors.New("conflict")
)
