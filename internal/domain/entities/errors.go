package entities

import "errors"

// Validation sentinels for the insert preconditions enforced by the entities'
// Validate methods.
var (
	ErrMissingRequiredFields = errors.New("record is missing required fields")
	ErrInvalidDate           = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidPreference     = errors.New("notification preference must be yes or no")
	ErrInvalidStatus         = errors.New("status must be pending or resolved")
)
