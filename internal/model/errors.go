package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Resource related errors
	ErrPropertyNotFound = errors.New("property not found")
	ErrLeaseNotFound    = errors.New("lease not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrPersonNotFound   = errors.New("person not found")

	// Settlement related errors
	ErrInvoiceAlreadySettled = errors.New("invoice already settled")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
