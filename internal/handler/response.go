package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"property-backoffice/internal/model"
	"property-backoffice/pkg/apierror"
)

func writeSuccess(w http.ResponseWriter, status int, data any, meta *model.Meta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// writeError maps known errors to their HTTP shape and collapses
// everything else into a generic 500 so no internal detail leaks to
// clients. Unclassified errors are logged server-side.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid credentials"
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Authentication required"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusUnauthorized
		body.Code = "UNKNOWN_USER"
		body.Message = "User not found or inactive"
	case errors.Is(err, model.ErrPropertyNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Property not found"
	case errors.Is(err, model.ErrLeaseNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Lease not found"
	case errors.Is(err, model.ErrInvoiceNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Invoice not found"
	case errors.Is(err, model.ErrPersonNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Person not found"
	case errors.Is(err, model.ErrInvoiceAlreadySettled):
		status = http.StatusConflict
		body.Code = "CONFLICT"
		body.Message = "Invoice is already settled"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "Invalid input"
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error:   body,
	})
}
