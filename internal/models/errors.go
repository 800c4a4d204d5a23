package models

import "errors"

// Common errors used throughout the application
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrInsufficientTickets = errors.New("not enough tickets available")
	ErrNoSession           = errors.New("no session")
	ErrInvalidInput        = errors.New("invalid input")
)
