package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"concert-tickets/internal/models"
)

// EventRepository handles event catalog data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// ListEvents retrieves all events as summaries, ordered by event date
// ascending. The catalog is assumed small; no pagination.
func (r *EventRepository) ListEvents() ([]*models.EventSummary, error) {
	query := `
		SELECT id, artist_name, venue_name, event_date, ticket_price, image_url, available_tickets
		FROM events
		ORDER BY event_date ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.EventSummary
	for rows.Next() {
		event := &models.EventSummary{}
		err := rows.Scan(
			&event.ID,
			&event.ArtistName,
			&event.VenueName,
			&event.EventDate,
			&event.TicketPrice,
			&event.ImageURL,
			&event.AvailableTickets,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

// GetEventByID retrieves a full event record by ID
func (r *EventRepository) GetEventByID(id int) (*models.Event, error) {
	query := `
		SELECT id, artist_name, venue_name, event_date, ticket_price, description, image_url, available_tickets
		FROM events
		WHERE id = ?`

	event := &models.Event{}
	err := r.db.QueryRow(query, id).Scan(
		&event.ID,
		&event.ArtistName,
		&event.VenueName,
		&event.EventDate,
		&event.TicketPrice,
		&event.Description,
		&event.ImageURL,
		&event.AvailableTickets,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// UpdateTicketPrice overwrites an event's ticket price. Cart totals are
// computed against the current price, so repricing is immediately visible on
// the next cart read.
func (r *EventRepository) UpdateTicketPrice(id int, price float64) error {
	result, err := r.db.Exec("UPDATE events SET ticket_price = ? WHERE id = ?", price, id)
	if err != nil {
		return fmt.Errorf("failed to update ticket price: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return models.ErrEventNotFound
	}

	return nil
}
