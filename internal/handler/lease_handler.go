package handler

import (
	"encoding/json"
	"net/http"

	"property-backoffice/internal/middleware"
	"property-backoffice/internal/model"
	"property-backoffice/internal/service"
	"property-backoffice/pkg/apierror"
)

type LeaseHandler struct {
	service *service.LeaseService
}

func NewLeaseHandler(service *service.LeaseService) *LeaseHandler {
	return &LeaseHandler{service: service}
}

func (h *LeaseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := listQueryFromRequest(r)

	leases, total, err := h.service.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, leases, &model.Meta{Total: total, Limit: q.Limit, Offset: q.Offset})
}

func (h *LeaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	lease, err := h.service.Create(r.Context(), payload, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, lease, nil)
}
