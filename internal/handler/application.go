// internal/handler/application.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dangerclosesec/redline/internal/model"
	"github.com/dangerclosesec/redline/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	service *service.ApplicationService
}

func NewApplicationHandler(service *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
	}
}

// ListByOrganization returns an organization's applications
func (h *ApplicationHandler) ListByOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	apps, err := h.service.ListByOrganization(r.Context(), orgID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, apps)
}

// Create adds an application under an organization
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var input service.CreateApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	app, err := h.service.Create(r.Context(), orgID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, app)
}

// Get returns one application with its selected data elements
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, app)
}

// Update edits an application's descriptive fields
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var input service.UpdateApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	app, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, app)
}

// Delete removes an application and its engagements
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// SetDataElementsRequest carries the replacement catalog selection
type SetDataElementsRequest struct {
	ElementIDs []uuid.UUID `json:"element_ids"`
}

// SetDataElements replaces the application's selected data elements
func (h *ApplicationHandler) SetDataElements(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req SetDataElementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	app, err := h.service.SetDataElements(r.Context(), id, req.ElementIDs)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, app)
}

// Classification returns the computed score and effective tier
func (h *ApplicationHandler) Classification(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	classification, err := h.service.Classification(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, classification)
}

// SetOverrideRequest carries a manual classification assertion
type SetOverrideRequest struct {
	Level  model.ClassificationLevel `json:"level"`
	Reason string                    `json:"reason"`
}

// SetOverride asserts a manual classification tier with a justification
func (h *ApplicationHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req SetOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	app, err := h.service.SetOverride(r.Context(), id, req.Level, req.Reason)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, app)
}

// ClearOverride removes a manual classification
func (h *ApplicationHandler) ClearOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, err := h.service.ClearOverride(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, app)
}
