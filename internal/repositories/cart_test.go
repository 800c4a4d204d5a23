package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemAccumulatesQuantity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db.DB)

	require.NoError(t, repo.AddItem("s1", 1, 2))
	require.NoError(t, repo.AddItem("s1", 1, 3))

	lines, err := repo.GetCartLines("s1")
	require.NoError(t, err)
	require.Len(t, lines, 1, "repeated adds must not duplicate rows")
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddItemSeparateRowsPerEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db.DB)

	require.NoError(t, repo.AddItem("s1", 1, 1))
	require.NoError(t, repo.AddItem("s1", 2, 4))

	lines, err := repo.GetCartLines("s1")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db.DB)

	require.NoError(t, repo.AddItem("s1", 1, 2))
	lines, err := repo.GetCartLines("s1")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateQuantity("s1", lines[0].CartID, 7))

	lines, err = repo.GetCartLines("s1")
	require.NoError(t, err)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestUpdateQuantityIgnoresForeignItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db.DB)

	require.NoError(t, repo.AddItem("s1", 1, 2))
	lines, err := repo.GetCartLines("s1")
	require.NoError(t, err)

	// Another session updating this item must be a silent no-op.
	require.NoError(t, repo.UpdateQuantity("s2", lines[0].CartID, 99))

	lines, err = repo.GetCartLines("s1")
	require.NoError(t, err)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestDeleteItemOwnershipScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db.DB)

	require.NoError(t, repo.AddItem("s1", 1, 2))
	lines, err := repo.GetCartLines("s1")
	require.NoError(t, err)
	itemID := lines[0].CartID

	// Foreign delete leaves the row in place.
	require.NoError(t, repo.DeleteItem("s2", itemID))
	lines, err = repo.GetCartLines("s1")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// Owner delete removes it; repeating is a no-op.
	require.NoError(t, repo.DeleteItem("s1", itemID))
	require.NoError(t, repo.DeleteItem("s1", itemID))
	lines, err = repo.GetCartLines("s1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestClearRemovesOnlyOwnItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db.DB)

	require.NoError(t, repo.AddItem("s1", 1, 2))
	require.NoError(t, repo.AddItem("s1", 2, 1))
	require.NoError(t, repo.AddItem("s2", 1, 5))

	require.NoError(t, repo.Clear("s1"))
	require.NoError(t, repo.Clear("s1"), "clearing an empty cart is idempotent")

	lines, err := repo.GetCartLines("s1")
	require.NoError(t, err)
	assert.Empty(t, lines)

	other, err := repo.GetCartLines("s2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestGetCartLinesJoinsEventFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db.DB)

	require.NoError(t, repo.AddItem("s1", 1, 2))

	lines, err := repo.GetCartLines("s1")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	line := lines[0]
	assert.Equal(t, 1, line.EventID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "Neon Pulse", line.ArtistName)
	assert.Equal(t, "The Electric Garden", line.VenueName)
	assert.Equal(t, "2026-03-15", line.EventDate)
	assert.Equal(t, 75.00, line.TicketPrice)
	assert.Equal(t, "https://example.com/neon.jpg", line.ImageURL)
}

func TestGetCartLinesReflectCurrentPrice(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := NewCartRepository(db.DB)
	eventRepo := NewEventRepository(db.DB)

	require.NoError(t, cartRepo.AddItem("s1", 1, 2))
	require.NoError(t, eventRepo.UpdateTicketPrice(1, 80.00))

	lines, err := cartRepo.GetCartLines("s1")
	require.NoError(t, err)
	assert.Equal(t, 80.00, lines[0].TicketPrice, "cart lines price from the current event row")
}

func TestItemCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db.DB)

	count, err := repo.ItemCount("s1")
	require.NoError(t, err)
	assert.Equal(t, 0, count, "empty cart counts zero without error")

	require.NoError(t, repo.AddItem("s1", 1, 2))
	require.NoError(t, repo.AddItem("s1", 2, 3))

	count, err = repo.ItemCount("s1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
