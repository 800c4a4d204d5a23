package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"concert-tickets/internal/models"
	"concert-tickets/internal/services"

	"github.com/go-chi/chi/v5"
)

// EventHandler handles event catalog requests
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents returns all events as summaries, ordered by date
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, events)
}

// GetEvent returns the full record for one event
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		// A non-numeric id can never match an event.
		respondError(w, http.StatusNotFound, "Event not found")
		return
	}

	event, err := h.eventService.GetEventByID(id)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			respondError(w, http.StatusNotFound, "Event not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, event)
}
