package repository

import (
	"fmt"
	"strings"

	usecaseErrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
)

// mapStoreError classifies driver errors into domain conditions. Authorization
// failures from the store are reported distinctly and must not be retried;
// everything else is passed through wrapped with the failing operation.
func mapStoreError(operation string, err error) error {
	if err == nil {
		return nil
	}

	errStr := strings.ToLower(err.Error())

	// Postgres insufficient_privilege is SQLSTATE 42501
	if strings.Contains(errStr, "42501") ||
		strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "insufficient privilege") {
		return fmt.Errorf("%s: %w: %v", operation, usecaseErrors.ErrStoreUnauthorized, err)
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// isUniqueViolation reports whether err is a unique-constraint violation
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "23505") || strings.Contains(errStr, "duplicate key")
}
