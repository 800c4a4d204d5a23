package services

import (
	"fmt"

	"concert-tickets/internal/models"
	"concert-tickets/internal/repositories"
)

// CartService implements the cart business rules on top of the cart and
// event repositories.
type CartService struct {
	cartRepo  *repositories.CartRepository
	eventRepo *repositories.EventRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo *repositories.CartRepository, eventRepo *repositories.EventRepository) *CartService {
	return &CartService{
		cartRepo:  cartRepo,
		eventRepo: eventRepo,
	}
}

// AddItem adds quantity tickets for an event to the session's cart. The
// event must exist and advertise at least quantity tickets at check time.
// The availability check and the write are separate statements: two
// concurrent adds can both pass the check, so the soft limit can be exceeded
// under contention. Retried adds accumulate.
func (s *CartService) AddItem(sessionID string, eventID, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", models.ErrInvalidInput)
	}

	event, err := s.eventRepo.GetEventByID(eventID)
	if err != nil {
		return err
	}

	if !event.HasAvailability(quantity) {
		return models.ErrInsufficientTickets
	}

	return s.cartRepo.AddItem(sessionID, eventID, quantity)
}

// SetQuantity sets the quantity of a cart item owned by the session. A
// quantity of zero or below removes the item. The new quantity is not
// re-checked against event availability.
func (s *CartService) SetQuantity(sessionID string, itemID, quantity int) error {
	if quantity <= 0 {
		return s.cartRepo.DeleteItem(sessionID, itemID)
	}

	return s.cartRepo.UpdateQuantity(sessionID, itemID, quantity)
}

// RemoveItem removes a cart item owned by the session. Removing an absent or
// foreign item succeeds without effect.
func (s *CartService) RemoveItem(sessionID string, itemID int) error {
	return s.cartRepo.DeleteItem(sessionID, itemID)
}

// ClearCart removes every item in the session's cart
func (s *CartService) ClearCart(sessionID string) error {
	return s.cartRepo.Clear(sessionID)
}

// GetCart returns the session's cart joined with current event display
// fields, plus the total computed from each event's current price. A session
// with no items gets an empty cart.
func (s *CartService) GetCart(sessionID string) (*models.Cart, error) {
	lines, err := s.cartRepo.GetCartLines(sessionID)
	if err != nil {
		return nil, err
	}

	cart := &models.Cart{Items: lines}
	if cart.Items == nil {
		cart.Items = []models.CartLine{}
	}

	for _, line := range cart.Items {
		cart.Total += line.Subtotal()
	}

	return cart, nil
}

// ItemCount returns the total ticket quantity across the session's cart
func (s *CartService) ItemCount(sessionID string) (int, error) {
	return s.cartRepo.ItemCount(sessionID)
}
