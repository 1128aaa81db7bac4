// internal/handler/errors.go
package handler

import (
	"errors"
	"net/http"

	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/go-playground/validator/v10"
)

// handleError maps domain sentinel errors onto HTTP status codes. Anything
// unmatched is a 500 with a generic body; details stay in the server log.
func handleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidClassification),
		errors.Is(err, domain.ErrOverrideReasonRequired),
		errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrEngagementNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrDataElementNotFound),
		errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrOrganizationExists),
		errors.Is(err, domain.ErrConcurrentModification):
		respondWithError(w, http.StatusConflict, err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())

	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
