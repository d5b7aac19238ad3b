package models

import "fmt"

// OrderSize is the fulfillment unit a line item is sold in.
type OrderSize string

const (
	SevenShots  OrderSize = "7-Pack (2oz shots)"
	TwelveOunce OrderSize = "12oz Bottle"
)

// OrderSizes lists the sizes in display order.
var OrderSizes = []OrderSize{SevenShots, TwelveOunce}

// ProductPrices is the unit price per size, shared by every product.
var ProductPrices = map[OrderSize]float64{
	SevenShots:  50,
	TwelveOunce: 45,
}

// UnitPrice returns the price for one unit of the given size.
func UnitPrice(size OrderSize) (float64, bool) {
	price, ok := ProductPrices[size]
	return price, ok
}

// IsValid reports whether the size has an entry in the price table.
func (s OrderSize) IsValid() bool {
	_, ok := ProductPrices[s]
	return ok
}

// VideoSegment is the slice of the recipe tutorial that covers one product, in seconds.
type VideoSegment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Label formats the segment as "m:ss - m:ss".
func (v VideoSegment) Label() string {
	return fmt.Sprintf("%d:%02d - %d:%02d", v.Start/60, v.Start%60, v.End/60, v.End%60)
}

type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	ImageColor  string        `json:"imageColor"`
	Ingredients []string      `json:"ingredients"`
	Tutorial    *VideoSegment `json:"tutorial,omitempty"`
}

var catalog = []Product{
	{
		ID:          "ginger-shot",
		Name:        "Ginger Lemon Immunity Shot",
		Description: "A fiery cold-pressed blend of fresh ginger and lemon to wake up the immune system.",
		ImageColor:  "#E07A5F",
		Ingredients: []string{"Ginger root", "Lemon", "Raw honey", "Cayenne pepper"},
		Tutorial:    &VideoSegment{Start: 35, End: 142},
	},
	{
		ID:          "turmeric-shot",
		Name:        "Golden Turmeric Shot",
		Description: "Turmeric and orange with black pepper for better absorption. Anti-inflammatory and bright.",
		ImageColor:  "#F2CC8F",
		Ingredients: []string{"Turmeric root", "Orange", "Lemon", "Black pepper"},
		Tutorial:    &VideoSegment{Start: 150, End: 248},
	},
	{
		ID:          "beet-shot",
		Name:        "Beet Root Boost",
		Description: "Earthy beet and apple with a touch of ginger to support stamina and circulation.",
		ImageColor:  "#9B2242",
		Ingredients: []string{"Beet root", "Green apple", "Ginger root", "Lemon"},
		Tutorial:    &VideoSegment{Start: 255, End: 331},
	},
	{
		ID:          "green-shot",
		Name:        "Green Garden Shot",
		Description: "Wheatgrass, cucumber and mint. Light, grassy and full of chlorophyll.",
		ImageColor:  "#81B29A",
		Ingredients: []string{"Wheatgrass", "Cucumber", "Mint", "Lime"},
	},
}

// Products returns a copy of the catalog.
func Products() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}

// FindProduct looks a product up by id.
func FindProduct(id string) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
