package entity

// CartLine is one product's accumulated quantity within the shopper's
// in-progress order. Name, price and image are snapshots taken when the
// product was first added; the invariant is at most one line per product
// identifier with quantity >= 1.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Preferences is the on-device record holding everything the shopper's
// session persists between visits: cart, favorites, dark mode and language.
type Preferences struct {
	Cart      []CartLine `json:"cart"`
	Favorites []string   `json:"favorites"`
	DarkMode  bool       `json:"darkMode"`
	Language  Language   `json:"language"`
}

// DefaultPreferences returns the record used when nothing was stored yet.
func DefaultPreferences() Preferences {
	return Preferences{Language: LanguageArabic}
}
