package handler

import (
	"net/http"
	"strconv"
	"strings"

	"property-backoffice/internal/model"
)

// listQueryFromRequest reads the shared search/limit/offset query
// parameters. Out-of-range values fall back to defaults; final
// clamping happens in the service layer.
func listQueryFromRequest(r *http.Request) model.ListQuery {
	q := model.ListQuery{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Limit:  50,
		Offset: 0,
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			q.Limit = v
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			q.Offset = v
		}
	}

	return q
}
