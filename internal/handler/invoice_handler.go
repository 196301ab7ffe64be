package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"property-backoffice/internal/middleware"
	"property-backoffice/internal/model"
	"property-backoffice/internal/service"
	"property-backoffice/pkg/apierror"
)

type InvoiceHandler struct {
	service *service.InvoiceService
}

func NewInvoiceHandler(service *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := listQueryFromRequest(r)

	invoices, total, err := h.service.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, invoices, &model.Meta{Total: total, Limit: q.Limit, Offset: q.Offset})
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	invoice, err := h.service.Create(r.Context(), payload, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, invoice, nil)
}

func (h *InvoiceHandler) Settle(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.SettleInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	invoice, err := h.service.Settle(r.Context(), chi.URLParam(r, "id"), payload, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, invoice, nil)
}
