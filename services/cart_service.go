package services

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/fundraiser-shop/database"
	"github.com/yeremiapane/fundraiser-shop/models"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

// CartService owns the active customer's cart. State is read from the store once,
// at construction, and written back after every mutation.
type CartService struct {
	mu    sync.Mutex
	store database.Store
	now   func() time.Time

	cartID   *string
	items    []models.LineItem
	donation float64
}

func NewCartService(store database.Store, now func() time.Time) *CartService {
	if now == nil {
		now = time.Now
	}
	cs := &CartService{
		store: store,
		now:   now,
		items: []models.LineItem{},
	}

	database.LoadJSON(store, database.KeyCart, &cs.items)
	database.LoadJSON(store, database.KeyCartID, &cs.cartID)
	database.LoadJSON(store, database.KeyDonationAmount, &cs.donation)
	cs.items = normalizeLines(cs.items)
	return cs
}

// normalizeLines restores the cart invariants on loaded state: lines with a non-positive
// quantity or an unknown size are dropped and repeated (product, size) lines are merged.
func normalizeLines(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 || !item.Size.IsValid() {
			utils.ErrorLogger.WithFields(logrus.Fields{
				"product": item.ProductID,
				"size":    item.Size,
			}).Error("dropping invalid persisted cart line")
			continue
		}
		merged := false
		for i := range out {
			if out[i].Matches(item.ProductID, item.Size) {
				out[i].Quantity += item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, item)
		}
	}
	return out
}

// Snapshot returns a copy of the current cart.
func (cs *CartService) Snapshot() models.Cart {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.snapshotLocked()
}

func (cs *CartService) snapshotLocked() models.Cart {
	cart := models.Cart{
		Items:          models.CloneItems(cs.items),
		DonationAmount: cs.donation,
	}
	if cs.cartID != nil {
		id := *cs.cartID
		cart.CartID = &id
	}
	return cart
}

// AddItem merges quantity into the (productID, size) line, or appends a new line.
// Unknown products, unknown sizes and non-positive quantities are ignored.
func (cs *CartService) AddItem(productID string, size models.OrderSize, quantity int) {
	product, ok := models.FindProduct(productID)
	if !ok || !size.IsValid() || quantity <= 0 {
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.cartID == nil {
		id := NewCartID(cs.now())
		cs.cartID = &id
		cs.persist(database.KeyCartID, cs.cartID)
	}

	merged := false
	for i := range cs.items {
		if cs.items[i].Matches(productID, size) {
			cs.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cs.items = append(cs.items, models.LineItem{
			ProductID:   productID,
			ProductName: product.Name,
			Size:        size,
			Quantity:    quantity,
		})
	}
	cs.persist(database.KeyCart, cs.items)
}

// UpdateQuantity replaces the line's quantity; quantity <= 0 removes the line.
func (cs *CartService) UpdateQuantity(productID string, size models.OrderSize, quantity int) {
	if quantity <= 0 {
		cs.RemoveItem(productID, size)
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.items {
		if cs.items[i].Matches(productID, size) {
			cs.items[i].Quantity = quantity
			cs.persist(database.KeyCart, cs.items)
			return
		}
	}
}

// RemoveItem deletes the line. An empty cart without a donation gives up its id;
// a pending donation keeps it.
func (cs *CartService) RemoveItem(productID string, size models.OrderSize) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	kept := make([]models.LineItem, 0, len(cs.items))
	for _, item := range cs.items {
		if !item.Matches(productID, size) {
			kept = append(kept, item)
		}
	}
	cs.items = kept
	cs.persist(database.KeyCart, cs.items)

	if len(cs.items) == 0 && cs.donation <= 0 && cs.cartID != nil {
		cs.cartID = nil
		cs.persist(database.KeyCartID, cs.cartID)
	}
}

// SetDonation stores the amount as given. Range checks belong to the caller.
func (cs *CartService) SetDonation(amount float64) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.donation = amount
	cs.persist(database.KeyDonationAmount, cs.donation)
}

// Clear empties the cart, resets the donation and releases the id.
func (cs *CartService) Clear() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.clearLocked()
}

// Checkout returns the cart as it was and clears it in one step.
func (cs *CartService) Checkout() models.Cart {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cart := cs.snapshotLocked()
	cs.clearLocked()
	return cart
}

func (cs *CartService) clearLocked() {
	cs.items = []models.LineItem{}
	cs.cartID = nil
	cs.donation = 0

	cs.persist(database.KeyCart, cs.items)
	cs.persist(database.KeyCartID, cs.cartID)
	cs.persist(database.KeyDonationAmount, cs.donation)
}

func (cs *CartService) persist(key string, v interface{}) {
	if err := database.SaveJSON(cs.store, key, v); err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{"key": key}).Errorf("persist cart: %v", err)
	}
}
