package catalog

import "github.com/shopspring/decimal"

// fallbackProducts is the static catalog served when the platform is
// unreachable, so the register can keep selling.
func fallbackProducts() []Product {
	return []Product{
		{
			ID:       1,
			Name:     "Fresh Apples",
			Category: "Fruits",
			Price:    decimal.New(399, -2),
			Stock:    45,
			Barcode:  "123456789",
			Image:    "https://images.unsplash.com/photo-1568702846914-96b305d2aaeb?w=400&h=300&fit=crop",
			Color:    "bg-red-50 border-red-100",
		},
		{
			ID:       2,
			Name:     "Banana Bunch",
			Category: "Fruits",
			Price:    decimal.New(249, -2),
			Stock:    68,
			Barcode:  "123456790",
			Image:    "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400&h=300&fit=crop",
			Color:    "bg-yellow-50 border-yellow-100",
		},
		{
			ID:       4,
			Name:     "Organic Milk",
			Category: "Dairy",
			Price:    decimal.New(499, -2),
			Stock:    32,
			Barcode:  "123456792",
			Image:    "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400&h=300&fit=crop",
			Color:    "bg-blue-50 border-blue-100",
		},
	}
}
