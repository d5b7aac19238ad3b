package services

import "github.com/yeremiapane/fundraiser-shop/models"

// RecurringMultiplier is how many weekly deliveries a recurring order pays for up front.
const RecurringMultiplier = 4

// ProductSubtotal sums unitPrice(size) * quantity. Sizes missing from the price table count as 0.
func ProductSubtotal(items []models.LineItem) float64 {
	var base float64
	for _, item := range items {
		price, _ := models.UnitPrice(item.Size)
		base += price * float64(item.Quantity)
	}
	return base
}

// ComputeTotal is the single source of an order's total price. No rounding is applied here;
// display code formats to two decimals.
func ComputeTotal(items []models.LineItem, isRecurring bool, donationAmount float64) float64 {
	productTotal := ProductSubtotal(items)
	if isRecurring {
		productTotal *= RecurringMultiplier
	}
	return productTotal + donationAmount
}
