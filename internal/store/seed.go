package store

import "github.com/shopspring/decimal"

// seedItems returns a fresh copy of the bundled sample inventory.
// A fresh slice per call keeps Seed free of shared mutable state.
func seedItems() []Item {
	price := func(v string) decimal.Decimal {
		return decimal.RequireFromString(v)
	}
	return []Item{
		{
			ID:          1,
			Name:        "Classic White Crew Neck T-Shirt",
			Category:    "T-Shirts",
			Price:       price("499.00"),
			Description: "Soft combed cotton tee with a regular fit",
			Sizes: []SizeQuantity{
				{Size: "S", Quantity: 25},
				{Size: "M", Quantity: 40},
				{Size: "L", Quantity: 30},
				{Size: "XL", Quantity: 15},
			},
		},
		{
			ID:          2,
			Name:        "Navy Single-Breasted Slim Fit Formal Blazer",
			Category:    "Blazers",
			Price:       price("3499.00"),
			Description: "Slim fit formal blazer with notched lapels and a single vent",
			Sizes: []SizeQuantity{
				{Size: "S", Quantity: 8},
				{Size: "M", Quantity: 12},
				{Size: "L", Quantity: 10},
				{Size: "XL", Quantity: 5},
			},
		},
		{
			ID:          3,
			Name:        "Slim Fit Dark Wash Jeans",
			Category:    "Jeans",
			Price:       price("1999.00"),
			Description: "Stretch denim with a mid rise and tapered leg",
			Sizes: []SizeQuantity{
				{Size: "S", Quantity: 18},
				{Size: "M", Quantity: 22},
				{Size: "L", Quantity: 20},
				{Size: "XL", Quantity: 9},
			},
		},
		{
			ID:          4,
			Name:        "Floral Printed A-Line Dress",
			Category:    "Dresses",
			Price:       price("1499.00"),
			Description: "Knee-length A-line dress in a floral crepe print",
			Sizes: []SizeQuantity{
				{Size: "XS", Quantity: 10},
				{Size: "S", Quantity: 16},
				{Size: "M", Quantity: 14},
				{Size: "L", Quantity: 6},
			},
		},
		{
			ID:          5,
			Name:        "Charcoal Wool Blend Overcoat",
			Category:    "Coats",
			Price:       price("5999.00"),
			Description: "Mid-length overcoat in a warm wool blend",
			Sizes: []SizeQuantity{
				{Size: "M", Quantity: 7},
				{Size: "L", Quantity: 9},
				{Size: "XL", Quantity: 4},
				{Size: "XXL", Quantity: 2},
			},
		},
		{
			ID:          6,
			Name:        "Striped Cotton Polo Shirt",
			Category:    "T-Shirts",
			Price:       price("899.00"),
			Description: "Pique knit polo with contrast tipping",
			Sizes: []SizeQuantity{
				{Size: "S", Quantity: 20},
				{Size: "M", Quantity: 25},
				{Size: "L", Quantity: 18},
			},
		},
		{
			ID:          7,
			Name:        "Black Skinny Fit Chinos",
			Category:    "Trousers",
			Price:       price("1299.00"),
			Description: "Skinny chinos in stretch twill",
			Sizes: []SizeQuantity{
				{Size: "S", Quantity: 14},
				{Size: "M", Quantity: 19},
				{Size: "L", Quantity: 16},
				{Size: "XL", Quantity: 8},
			},
		},
		{
			ID:          8,
			Name:        "Pastel Oversized Hoodie",
			Category:    "Sweatshirts",
			Price:       price("1599.00"),
			Description: "Brushed fleece hoodie with a dropped shoulder",
			Sizes: []SizeQuantity{
				{Size: "M", Quantity: 12},
				{Size: "L", Quantity: 15},
				{Size: "XL", Quantity: 11},
				{Size: "XXL", Quantity: 5},
			},
		},
	}
}
