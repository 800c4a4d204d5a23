package services

import (
	"concert-tickets/internal/models"
	"concert-tickets/internal/repositories"
)

// EventService provides read access to the event catalog
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// ListEvents returns all events as summaries ordered by date ascending
func (s *EventService) ListEvents() ([]*models.EventSummary, error) {
	events, err := s.eventRepo.ListEvents()
	if err != nil {
		return nil, err
	}

	// Listing an empty catalog is not an error.
	if events == nil {
		events = []*models.EventSummary{}
	}

	return events, nil
}

// GetEventByID returns the full event record, or models.ErrEventNotFound
func (s *EventService) GetEventByID(id int) (*models.Event, error) {
	return s.eventRepo.GetEventByID(id)
}
