package models

import "errors"

// AddToCartRequest represents a request to add tickets for an event to the
// cart. Both fields are required.
type AddToCartRequest struct {
	EventID  int `json:"eventId"`
	Quantity int `json:"quantity"`
}

// Validate validates the add-to-cart request data
func (r *AddToCartRequest) Validate() error {
	if r.EventID <= 0 {
		return errors.New("eventId is required")
	}

	if r.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	return nil
}

// UpdateCartItemRequest represents a request to set the quantity of a cart
// item. Quantity is optional; zero or below removes the item.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
