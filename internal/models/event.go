package models

// Event represents a concert event in the catalog.
//
// Events are seeded once at startup and otherwise owned externally; only
// AvailableTickets is mutable, and it is a soft display/validation limit
// rather than a reserved inventory count.
type Event struct {
	ID               int     `json:"id" db:"id"`
	ArtistName       string  `json:"artist_name" db:"artist_name"`
	VenueName        string  `json:"venue_name" db:"venue_name"`
	EventDate        string  `json:"event_date" db:"event_date"`
	TicketPrice      float64 `json:"ticket_price" db:"ticket_price"`
	Description      string  `json:"description" db:"description"`
	ImageURL         string  `json:"image_url" db:"image_url"`
	AvailableTickets int     `json:"available_tickets" db:"available_tickets"`
}

// EventSummary is the listing projection of an event. It carries everything
// the index page needs and excludes the long-form description.
type EventSummary struct {
	ID               int     `json:"id" db:"id"`
	ArtistName       string  `json:"artist_name" db:"artist_name"`
	VenueName        string  `json:"venue_name" db:"venue_name"`
	EventDate        string  `json:"event_date" db:"event_date"`
	TicketPrice      float64 `json:"ticket_price" db:"ticket_price"`
	ImageURL         string  `json:"image_url" db:"image_url"`
	AvailableTickets int     `json:"available_tickets" db:"available_tickets"`
}

// Summary returns the listing projection of the event.
func (e *Event) Summary() *EventSummary {
	return &EventSummary{
		ID:               e.ID,
		ArtistName:       e.ArtistName,
		VenueName:        e.VenueName,
		EventDate:        e.EventDate,
		TicketPrice:      e.TicketPrice,
		ImageURL:         e.ImageURL,
		AvailableTickets: e.AvailableTickets,
	}
}

// HasAvailability returns true if the event advertises at least quantity
// tickets. The count is checked, never decremented.
func (e *Event) HasAvailability(quantity int) bool {
	return quantity <= e.AvailableTickets
}
