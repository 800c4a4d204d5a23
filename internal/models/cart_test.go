package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartLineSubtotal(t *testing.T) {
	line := CartLine{TicketPrice: 75.00, Quantity: 2}
	assert.Equal(t, 150.00, line.Subtotal())
}

func TestCartItemCount(t *testing.T) {
	tests := []struct {
		name     string
		cart     Cart
		expected int
	}{
		{
			name:     "empty cart",
			cart:     Cart{},
			expected: 0,
		},
		{
			name: "single line",
			cart: Cart{Items: []CartLine{{Quantity: 3}}},
			expected: 3,
		},
		{
			name: "multiple lines",
			cart: Cart{Items: []CartLine{{Quantity: 2}, {Quantity: 5}}},
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cart.ItemCount())
		})
	}
}

func TestEventHasAvailability(t *testing.T) {
	event := Event{AvailableTickets: 150}

	assert.True(t, event.HasAvailability(1))
	assert.True(t, event.HasAvailability(150))
	assert.False(t, event.HasAvailability(151))
}

func TestEventSummaryProjection(t *testing.T) {
	event := Event{
		ID:               1,
		ArtistName:       "Neon Pulse",
		VenueName:        "The Electric Garden",
		EventDate:        "2026-03-15",
		TicketPrice:      75.00,
		Description:      "A long description that the listing must not carry",
		ImageURL:         "https://picsum.photos/seed/neonpulse/800/400",
		AvailableTickets: 150,
	}

	summary := event.Summary()

	assert.Equal(t, event.ID, summary.ID)
	assert.Equal(t, event.ArtistName, summary.ArtistName)
	assert.Equal(t, event.VenueName, summary.VenueName)
	assert.Equal(t, event.EventDate, summary.EventDate)
	assert.Equal(t, event.TicketPrice, summary.TicketPrice)
	assert.Equal(t, event.ImageURL, summary.ImageURL)
	assert.Equal(t, event.AvailableTickets, summary.AvailableTickets)
}
