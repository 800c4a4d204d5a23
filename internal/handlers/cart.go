package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"concert-tickets/internal/middleware"
	"concert-tickets/internal/models"
	"concert-tickets/internal/services"

	"github.com/go-chi/chi/v5"
)

// CartHandler handles shopping cart requests. On every cart mutation it
// recomputes the item count and re-sets the session and cart-count cookies
// with a fresh rolling expiry.
type CartHandler struct {
	cartService  *services.CartService
	cookieMaxAge int
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *services.CartService, cookieMaxAge int) *CartHandler {
	return &CartHandler{
		cartService:  cartService,
		cookieMaxAge: cookieMaxAge,
	}
}

// GetCart returns the cart contents and total for the request's session. A
// request with no session cookie gets an empty cart, not an error.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionFromContext(r.Context())
	if sessionID == "" {
		respondJSON(w, http.StatusOK, &models.Cart{Items: []models.CartLine{}, Total: 0})
		return
	}

	cart, err := h.cartService.GetCart(sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// AddItem adds tickets for an event to the cart. First-time visitors have no
// session yet, so this path mints one instead of rejecting; update and
// delete paths require an existing session.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionFromContext(r.Context())
	if sessionID == "" {
		sessionID = middleware.MintSessionID()
	}

	var req models.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.cartService.AddItem(sessionID, req.EventID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, models.ErrEventNotFound):
			respondError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, models.ErrInsufficientTickets):
			respondError(w, http.StatusBadRequest, "Not enough tickets available")
		default:
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	count, err := h.cartService.ItemCount(sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.setSessionCookie(w, sessionID)
	h.setCartCountCookie(w, count)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Added to cart",
	})
}

// UpdateItem sets the quantity of one cart item. A quantity of zero or below
// removes the item. An absent quantity field decodes to zero and removes as
// well.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "No session")
		return
	}

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	var req models.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.cartService.SetQuantity(sessionID, itemID, req.Quantity); err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.refreshCookies(w, sessionID)
}

// RemoveItem deletes one cart item. Deleting an absent or foreign item still
// reports success.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "No session")
		return
	}

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	if err := h.cartService.RemoveItem(sessionID, itemID); err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.refreshCookies(w, sessionID)
}

// ClearCart removes every item in the session's cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "No session")
		return
	}

	if err := h.cartService.ClearCart(sessionID); err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.setSessionCookie(w, sessionID)
	h.setCartCountCookie(w, 0)
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// refreshCookies recomputes the item count and re-sets both cookies before
// writing the success payload.
func (h *CartHandler) refreshCookies(w http.ResponseWriter, sessionID string) {
	count, err := h.cartService.ItemCount(sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.setSessionCookie(w, sessionID)
	h.setCartCountCookie(w, count)
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *CartHandler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   h.cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *CartHandler) setCartCountCookie(w http.ResponseWriter, count int) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CartCountCookieName,
		Value:    strconv.Itoa(count),
		Path:     "/",
		MaxAge:   h.cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
