package catalog

// Display carries the UI hints the register client uses for a category
// tile. The icon is a name the client resolves; colors are theme tokens.
type Display struct {
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	ActiveColor string `json:"active_color"`
	CardColor   string `json:"card_color"`
}

// categoryDisplays is the exhaustive display configuration. Unknown
// categories fall back to defaultDisplay; no category is ever unstyled.
var categoryDisplays = map[string]Display{
	"Fruits":      {Icon: "apple", Color: "bg-red-100 text-red-800 hover:bg-red-200", ActiveColor: "bg-red-600 text-white", CardColor: "bg-red-50 border-red-100"},
	"Vegetables":  {Icon: "carrot", Color: "bg-green-100 text-green-800 hover:bg-green-200", ActiveColor: "bg-green-600 text-white", CardColor: "bg-green-50 border-green-100"},
	"Dairy":       {Icon: "milk", Color: "bg-blue-100 text-blue-800 hover:bg-blue-200", ActiveColor: "bg-blue-600 text-white", CardColor: "bg-blue-50 border-blue-100"},
	"Meat":        {Icon: "beef", Color: "bg-rose-100 text-rose-800 hover:bg-rose-200", ActiveColor: "bg-rose-600 text-white", CardColor: "bg-rose-50 border-rose-100"},
	"Bakery":      {Icon: "shopping-bag", Color: "bg-amber-100 text-amber-800 hover:bg-amber-200", ActiveColor: "bg-amber-600 text-white", CardColor: "bg-amber-50 border-amber-100"},
	"Beverages":   {Icon: "coffee", Color: "bg-orange-100 text-orange-800 hover:bg-orange-200", ActiveColor: "bg-orange-600 text-white", CardColor: "bg-orange-50 border-orange-100"},
	"Pantry":      {Icon: "package", Color: "bg-yellow-100 text-yellow-800 hover:bg-yellow-200", ActiveColor: "bg-yellow-600 text-white", CardColor: "bg-yellow-50 border-yellow-100"},
	"Seafood":     {Icon: "fish", Color: "bg-pink-100 text-pink-800 hover:bg-pink-200", ActiveColor: "bg-pink-600 text-white", CardColor: "bg-pink-50 border-pink-100"},
	"Frozen":      {Icon: "snowflake", Color: "bg-purple-100 text-purple-800 hover:bg-purple-200", ActiveColor: "bg-purple-600 text-white", CardColor: "bg-purple-50 border-purple-100"},
	"Electronics": {Icon: "cpu", Color: "bg-indigo-100 text-indigo-800 hover:bg-indigo-200", ActiveColor: "bg-indigo-600 text-white", CardColor: "bg-indigo-50 border-indigo-100"},
	"Accessories": {Icon: "cable", Color: "bg-gray-100 text-gray-800 hover:bg-gray-200", ActiveColor: "bg-gray-600 text-white", CardColor: "bg-gray-50 border-gray-100"},
	"Cables":      {Icon: "cable", Color: "bg-gray-100 text-gray-800 hover:bg-gray-200", ActiveColor: "bg-gray-600 text-white", CardColor: "bg-gray-50 border-gray-100"},
	"Eggs":        {Icon: "egg", Color: "bg-yellow-100 text-yellow-800 hover:bg-yellow-200", ActiveColor: "bg-yellow-600 text-white", CardColor: "bg-yellow-50 border-yellow-100"},
	"Snacks":      {Icon: "cookie", Color: "bg-amber-100 text-amber-800 hover:bg-amber-200", ActiveColor: "bg-amber-600 text-white", CardColor: "bg-amber-50 border-amber-100"},
	"Utensils":    {Icon: "utensils", Color: "bg-gray-100 text-gray-800 hover:bg-gray-200", ActiveColor: "bg-gray-600 text-white", CardColor: "bg-gray-50 border-gray-100"},
	"General":     {Icon: "box", Color: "bg-gray-100 text-gray-800 hover:bg-gray-200", ActiveColor: "bg-gray-600 text-white", CardColor: "bg-gray-50 border-gray-100"},
}

var defaultDisplay = Display{
	Icon:        "box",
	Color:       "bg-gray-100 text-gray-800 hover:bg-gray-200",
	ActiveColor: "bg-gray-600 text-white",
	CardColor:   "bg-gray-50 border-gray-100",
}

// allDisplay styles the synthetic "All" filter tile.
var allDisplay = Display{
	Icon:        "home",
	Color:       "bg-gray-100 text-gray-800 hover:bg-gray-200",
	ActiveColor: "bg-gray-800 text-white",
	CardColor:   "bg-gray-50 border-gray-100",
}

// DisplayFor returns the display configuration for a category name.
func DisplayFor(category string) Display {
	if d, ok := categoryDisplays[category]; ok {
		return d
	}
	return defaultDisplay
}

// categoryImages maps categories to a stock image used when a product
// carries none.
var categoryImages = map[string]string{
	"Fruits":      "https://images.unsplash.com/photo-1568702846914-96b305d2aaeb?w=400&h=300&fit=crop",
	"Vegetables":  "https://images.unsplash.com/photo-1540420828642-fca2c5c18abb?w=400&h=300&fit=crop",
	"Dairy":       "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400&h=300&fit=crop",
	"Meat":        "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&h=300&fit=crop",
	"Bakery":      "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400&h=300&fit=crop",
	"Beverages":   "https://images.unsplash.com/photo-1523362628745-0c100150b504?w=400&h=300&fit=crop",
	"Pantry":      "https://images.unsplash.com/photo-1576618148400-f54bed99fcfd?w=400&h=300&fit=crop",
	"Seafood":     "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=400&h=300&fit=crop",
	"Frozen":      "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=300&fit=crop",
	"Electronics": "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400&h=300&fit=crop",
	"Accessories": "https://images.unsplash.com/photo-1581094794329-c8112a89af12?w=400&h=300&fit=crop",
	"Cables":      "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=400&h=300&fit=crop",
}

const defaultImage = "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=300&fit=crop"

// ImageFor returns the stock fallback image for a category.
func ImageFor(category string) string {
	if img, ok := categoryImages[category]; ok {
		return img
	}
	return defaultImage
}
