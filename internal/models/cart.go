package models

// CartLine is one cart line item joined with the display fields of the event
// it references. Price comes from the event's current row, so totals move
// when an event is repriced.
type CartLine struct {
	CartID      int     `json:"cart_id" db:"cart_id"`
	Quantity    int     `json:"quantity" db:"quantity"`
	EventID     int     `json:"event_id" db:"event_id"`
	ArtistName  string  `json:"artist_name" db:"artist_name"`
	VenueName   string  `json:"venue_name" db:"venue_name"`
	EventDate   string  `json:"event_date" db:"event_date"`
	TicketPrice float64 `json:"ticket_price" db:"ticket_price"`
	ImageURL    string  `json:"image_url" db:"image_url"`
}

// Subtotal returns the line's contribution to the cart total.
func (l *CartLine) Subtotal() float64 {
	return l.TicketPrice * float64(l.Quantity)
}

// Cart is the joined view of a session's cart returned to clients.
type Cart struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// ItemCount returns the number of tickets across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
