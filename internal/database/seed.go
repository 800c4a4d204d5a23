package database

import (
	"fmt"
	"log"
)

type seedEvent struct {
	ArtistName       string
	VenueName        string
	EventDate        string
	TicketPrice      float64
	Description      string
	ImageURL         string
	AvailableTickets int
}

var sampleEvents = []seedEvent{
	{"Neon Pulse", "The Electric Garden", "2026-03-15", 75.00,
		"Experience the electrifying synth-wave sounds of Neon Pulse in an intimate garden setting. Known for their immersive light shows and pulsating beats.",
		"https://picsum.photos/seed/neonpulse/800/400", 150},
	{"Midnight Wanderers", "Starlight Arena", "2026-03-22", 95.00,
		"The indie folk sensation Midnight Wanderers bring their acoustic magic to the grand Starlight Arena. A night of storytelling through song.",
		"https://picsum.photos/seed/midnight/800/400", 500},
	{"Crystal Thunder", "The Underground", "2026-04-05", 45.00,
		"Raw energy meets technical precision. Crystal Thunder delivers a metal experience that will leave your ears ringing for days.",
		"https://picsum.photos/seed/crystal/800/400", 200},
	{"Luna Eclipse", "Riverside Amphitheater", "2026-04-12", 120.00,
		"Grammy-nominated artist Luna Eclipse performs her greatest hits under the stars. VIP packages include meet-and-greet opportunities.",
		"https://picsum.photos/seed/luna/800/400", 1000},
	{"The Velvet Frequencies", "Jazz Corner Club", "2026-04-18", 55.00,
		"Smooth jazz meets electronic experimentation. The Velvet Frequencies create soundscapes that transport you to another dimension.",
		"https://picsum.photos/seed/velvet/800/400", 80},
	{"Solar Flare", "Metro Stadium", "2026-05-01", 150.00,
		"The world tour stops here! Solar Flare brings their spectacular production with pyrotechnics, aerial performers, and non-stop hits.",
		"https://picsum.photos/seed/solar/800/400", 5000},
	{"Echo Chamber", "The Warehouse District", "2026-05-10", 35.00,
		"Underground techno collective Echo Chamber hosts an all-night rave. Multiple DJs, immersive visuals, and dancing until dawn.",
		"https://picsum.photos/seed/echo/800/400", 300},
	{"Autumn Leaves", "Heritage Hall", "2026-05-20", 85.00,
		"Classical meets contemporary as Autumn Leaves performs with a full orchestra. An evening of sophisticated musical fusion.",
		"https://picsum.photos/seed/autumn/800/400", 400},
}

// Seed populates the events table with the sample catalog if it is empty.
// The catalog is otherwise owned externally, so a non-empty table is left
// untouched.
func (db *DB) Seed() error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM events").Scan(&count); err != nil {
		return fmt.Errorf("failed to count events: %w", err)
	}

	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start seed transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO events (artist_name, venue_name, event_date, ticket_price, description, image_url, available_tickets)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, event := range sampleEvents {
		if _, err := stmt.Exec(
			event.ArtistName,
			event.VenueName,
			event.EventDate,
			event.TicketPrice,
			event.Description,
			event.ImageURL,
			event.AvailableTickets,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed event %q: %w", event.ArtistName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	log.Println("Database seeded with sample events")
	return nil
}
