package models

// LineItem is one (product, size) row of a cart or order.
// ProductName is a snapshot of the catalog name taken when the row was added.
type LineItem struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Size        OrderSize `json:"size"`
	Quantity    int       `json:"quantity"`
}

// Matches reports whether the row is keyed by the given product and size.
func (i LineItem) Matches(productID string, size OrderSize) bool {
	return i.ProductID == productID && i.Size == size
}

type Cart struct {
	CartID         *string    `json:"cartId"`
	Items          []LineItem `json:"items"`
	DonationAmount float64    `json:"donationAmount"`
}

// IsEmpty is true when there is nothing to check out.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0 && c.DonationAmount <= 0
}

// CloneItems copies a line item slice so snapshots never alias live state.
func CloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
