package repositories

import (
	"database/sql"
	"fmt"

	"concert-tickets/internal/models"
)

// CartRepository handles cart line-item data operations. Every operation is
// scoped to a session token; a session with no rows is an empty cart.
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// AddItem upserts a line item for (session, event). A second add for the same
// event accumulates quantity on the existing row rather than inserting a
// duplicate. The statement is atomic; availability is checked by the caller
// beforehand and not re-verified here.
func (r *CartRepository) AddItem(sessionID string, eventID, quantity int) error {
	query := `
		INSERT INTO cart_items (session_id, event_id, quantity)
		VALUES (?, ?, ?)
		ON CONFLICT (session_id, event_id) DO UPDATE SET quantity = quantity + excluded.quantity`

	if _, err := r.db.Exec(query, sessionID, eventID, quantity); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

// UpdateQuantity overwrites the quantity of a line item owned by the session.
// A row owned by another session (or no row at all) matches nothing and the
// update is a silent no-op.
func (r *CartRepository) UpdateQuantity(sessionID string, itemID, quantity int) error {
	query := `UPDATE cart_items SET quantity = ? WHERE id = ? AND session_id = ?`

	if _, err := r.db.Exec(query, quantity, itemID, sessionID); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	return nil
}

// DeleteItem removes a line item owned by the session. Deleting an absent or
// foreign item is a no-op.
func (r *CartRepository) DeleteItem(sessionID string, itemID int) error {
	query := `DELETE FROM cart_items WHERE id = ? AND session_id = ?`

	if _, err := r.db.Exec(query, itemID, sessionID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	return nil
}

// Clear removes all line items owned by the session
func (r *CartRepository) Clear(sessionID string) error {
	if _, err := r.db.Exec("DELETE FROM cart_items WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// GetCartLines retrieves the session's line items joined with the current
// display fields of each referenced event.
func (r *CartRepository) GetCartLines(sessionID string) ([]models.CartLine, error) {
	query := `
		SELECT
			cart_items.id AS cart_id,
			cart_items.quantity,
			events.id AS event_id,
			events.artist_name,
			events.venue_name,
			events.event_date,
			events.ticket_price,
			events.image_url
		FROM cart_items
		JOIN events ON cart_items.event_id = events.id
		WHERE cart_items.session_id = ?
		ORDER BY cart_items.added_at ASC, cart_items.id ASC`

	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	defer rows.Close()

	var lines []models.CartLine
	for rows.Next() {
		var line models.CartLine
		err := rows.Scan(
			&line.CartID,
			&line.Quantity,
			&line.EventID,
			&line.ArtistName,
			&line.VenueName,
			&line.EventDate,
			&line.TicketPrice,
			&line.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart items: %w", err)
	}

	return lines, nil
}

// ItemCount returns the total ticket quantity across the session's line
// items, or 0 when the cart is empty.
func (r *CartRepository) ItemCount(sessionID string) (int, error) {
	var count sql.NullInt64
	query := `SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE session_id = ?`

	if err := r.db.QueryRow(query, sessionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cart items: %w", err)
	}

	return int(count.Int64), nil
}
