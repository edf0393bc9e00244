package cart

// Item is a single cart line. A cart holds at most one line per product;
// adding the same product again merges quantities.
type Item struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Summary is the advisory cart total shown before checkout.
type Summary struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// Cart is the view returned to the client.
type Cart struct {
	Items   []Item  `json:"items"`
	Summary Summary `json:"summary"`
}
