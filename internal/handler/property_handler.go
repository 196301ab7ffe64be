package handler

import (
	"encoding/json"
	"net/http"

	"property-backoffice/internal/middleware"
	"property-backoffice/internal/model"
	"property-backoffice/internal/service"
	"property-backoffice/pkg/apierror"
)

type PropertyHandler struct {
	service *service.PropertyService
}

func NewPropertyHandler(service *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := listQueryFromRequest(r)

	properties, total, err := h.service.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, properties, &model.Meta{Total: total, Limit: q.Limit, Offset: q.Offset})
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	property, err := h.service.Create(r.Context(), payload, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, property, nil)
}

// Available serves the compact list used to pick a property when
// creating a lease.
func (h *PropertyHandler) Available(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.AvailableForSelect(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, options, nil)
}
