// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Lifecycle errors
	ErrInvalidStatus          = errors.New("invalid status")
	ErrConcurrentModification = errors.New("concurrent modification")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrOrganizationExists   = errors.New("organization name already in use")

	// Application-related errors
	ErrApplicationNotFound    = errors.New("application not found")
	ErrDataElementNotFound    = errors.New("data element not found")
	ErrInvalidClassification  = errors.New("invalid classification level")
	ErrOverrideReasonRequired = errors.New("override reason required")

	// Engagement-related errors
	ErrEngagementNotFound = errors.New("engagement not found")
	ErrActivityNotFound   = errors.New("activity not found")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
