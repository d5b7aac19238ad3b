package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/fundraiser-shop/database"
	"github.com/yeremiapane/fundraiser-shop/models"
)

func TestAddItemAssignsIDAndMerges(t *testing.T) {
	cs := NewCartService(database.NewMemoryStore(), fixedClock)

	cs.AddItem("ginger-shot", models.SevenShots, 1)
	cs.AddItem("ginger-shot", models.SevenShots, 2)
	cs.AddItem("ginger-shot", models.TwelveOunce, 1)

	cart := cs.Snapshot()
	require.NotNil(t, cart.CartID)
	assert.Equal(t, "LW-200123", *cart.CartID)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, "Ginger Lemon Immunity Shot", cart.Items[0].ProductName)
	assert.Equal(t, models.TwelveOunce, cart.Items[1].Size)
}

func TestAddItemIgnoresInvalidInput(t *testing.T) {
	cs := NewCartService(database.NewMemoryStore(), fixedClock)

	cs.AddItem("kombucha", models.SevenShots, 1)
	cs.AddItem("ginger-shot", "Gallon", 1)
	cs.AddItem("ginger-shot", models.SevenShots, 0)

	cart := cs.Snapshot()
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.CartID)
}

func TestUpdateQuantity(t *testing.T) {
	cs := NewCartService(database.NewMemoryStore(), fixedClock)
	cs.AddItem("beet-shot", models.TwelveOunce, 1)

	cs.UpdateQuantity("beet-shot", models.TwelveOunce, 5)
	assert.Equal(t, 5, cs.Snapshot().Items[0].Quantity)

	// unknown line is a no-op
	cs.UpdateQuantity("beet-shot", models.SevenShots, 2)
	assert.Len(t, cs.Snapshot().Items, 1)

	cs.UpdateQuantity("beet-shot", models.TwelveOunce, 0)
	cart := cs.Snapshot()
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.CartID)
}

func TestRemoveItemKeepsIDWhileDonationPending(t *testing.T) {
	cs := NewCartService(database.NewMemoryStore(), fixedClock)
	cs.AddItem("green-shot", models.SevenShots, 1)
	cs.SetDonation(20)

	cs.RemoveItem("green-shot", models.SevenShots)

	cart := cs.Snapshot()
	assert.Empty(t, cart.Items)
	require.NotNil(t, cart.CartID)
	assert.Equal(t, 20.0, cart.DonationAmount)
}

func TestClear(t *testing.T) {
	cs := NewCartService(database.NewMemoryStore(), fixedClock)
	cs.AddItem("green-shot", models.SevenShots, 1)
	cs.SetDonation(5)

	cs.Clear()

	cart := cs.Snapshot()
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.CartID)
	assert.Zero(t, cart.DonationAmount)
}

func TestCartSurvivesReload(t *testing.T) {
	store := database.NewMemoryStore()
	cs := NewCartService(store, fixedClock)
	cs.AddItem("turmeric-shot", models.SevenShots, 2)
	cs.SetDonation(12.5)

	reloaded := NewCartService(store, fixedClock).Snapshot()
	require.NotNil(t, reloaded.CartID)
	assert.Equal(t, "LW-200123", *reloaded.CartID)
	assert.Equal(t, 12.5, reloaded.DonationAmount)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, 2, reloaded.Items[0].Quantity)
}

func TestCartFallsBackOnCorruptState(t *testing.T) {
	store := database.NewMemoryStore()
	require.NoError(t, store.Set(database.KeyCart, []byte("{not json")))
	require.NoError(t, store.Set(database.KeyDonationAmount, []byte(`"lots"`)))

	cart := NewCartService(store, fixedClock).Snapshot()
	assert.Empty(t, cart.Items)
	assert.NotNil(t, cart.Items)
	assert.Zero(t, cart.DonationAmount)
}

func TestCartFallsBackOnMistypedState(t *testing.T) {
	store := database.NewMemoryStore()
	// well-formed JSON, but the second line has a string quantity
	require.NoError(t, store.Set(database.KeyCart, []byte(`[
		{"productId":"beet-shot","productName":"Beet Root Boost","size":"12oz Bottle","quantity":-3},
		{"productId":"beet-shot","productName":"Beet Root Boost","size":"12oz Bottle","quantity":"x"}
	]`)))

	cart := NewCartService(store, fixedClock).Snapshot()
	assert.Empty(t, cart.Items)
}

func TestCartNormalizesLoadedLines(t *testing.T) {
	store := database.NewMemoryStore()
	require.NoError(t, store.Set(database.KeyCart, []byte(`[
		{"productId":"beet-shot","productName":"Beet Root Boost","size":"12oz Bottle","quantity":-3},
		{"productId":"ginger-shot","productName":"Ginger Lemon Immunity Shot","size":"7-Pack (2oz shots)","quantity":1},
		{"productId":"ginger-shot","productName":"Ginger Lemon Immunity Shot","size":"7-Pack (2oz shots)","quantity":2},
		{"productId":"green-shot","productName":"Green Garden Shot","size":"Gallon","quantity":1}
	]`)))

	cart := NewCartService(store, fixedClock).Snapshot()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "ginger-shot", cart.Items[0].ProductID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	cs := NewCartService(database.NewMemoryStore(), fixedClock)
	cs.AddItem("beet-shot", models.SevenShots, 1)

	snap := cs.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 1, cs.Snapshot().Items[0].Quantity)
}
