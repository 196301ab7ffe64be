package handler

import (
	"net/http"

	"property-backoffice/internal/service"
)

type AuditHandler struct {
	service *service.AuditService
	limit   int
}

func NewAuditHandler(service *service.AuditService, limit int) *AuditHandler {
	return &AuditHandler{service: service, limit: limit}
}

func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListRecent(r.Context(), h.limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, entries, nil)
}
