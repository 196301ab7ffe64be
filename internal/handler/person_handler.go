package handler

import (
	"encoding/json"
	"net/http"

	"property-backoffice/internal/middleware"
	"property-backoffice/internal/model"
	"property-backoffice/internal/service"
	"property-backoffice/pkg/apierror"
)

type PersonHandler struct {
	service *service.PersonService
}

func NewPersonHandler(service *service.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	q := listQueryFromRequest(r)

	people, total, err := h.service.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, people, &model.Meta{Total: total, Limit: q.Limit, Offset: q.Offset})
}

func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	person, err := h.service.Create(r.Context(), payload, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, person, nil)
}
