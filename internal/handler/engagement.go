// internal/handler/engagement.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dangerclosesec/redline/internal/lifecycle"
	"github.com/dangerclosesec/redline/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type EngagementHandler struct {
	service *service.EngagementService
}

func NewEngagementHandler(service *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		service: service,
	}
}

// ListByApplication returns an application's engagements
func (h *EngagementHandler) ListByApplication(w http.ResponseWriter, r *http.Request) {
	appID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	engagements, err := h.service.ListByApplication(r.Context(), appID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, engagements)
}

// Create schedules an engagement against an application
func (h *EngagementHandler) Create(w http.ResponseWriter, r *http.Request) {
	appID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var input service.CreateEngagementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	engagement, err := h.service.Create(r.Context(), appID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, engagement)
}

// Get returns one engagement
func (h *EngagementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid engagement ID")
		return
	}

	engagement, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, engagement)
}

// Update edits an engagement's name and schedule
func (h *EngagementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid engagement ID")
		return
	}

	var input service.UpdateEngagementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	engagement, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, engagement)
}

// Delete removes an engagement and its activities
func (h *EngagementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid engagement ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// SetStatusRequest carries a requested lifecycle transition
type SetStatusRequest struct {
	Status lifecycle.Status `json:"status"`
}

// SetStatus applies a direct status edit to the engagement
func (h *EngagementHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid engagement ID")
		return
	}

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	engagement, err := h.service.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, engagement)
}
