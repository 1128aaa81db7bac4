// internal/handler/data_element.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/redline/internal/service"
)

type DataElementHandler struct {
	service *service.CatalogService
}

func NewDataElementHandler(service *service.CatalogService) *DataElementHandler {
	return &DataElementHandler{
		service: service,
	}
}

// List returns the full data element catalog
func (h *DataElementHandler) List(w http.ResponseWriter, r *http.Request) {
	elements, err := h.service.Elements(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, elements)
}
