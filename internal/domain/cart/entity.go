// internal/domain/cart/entity.go
package cart

// LineItem represents one cart line. Name, Image and Price are display
// snapshots captured at add time; they are not re-fetched from the catalog.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

// Key identifies a line item uniquely within a cart
type Key struct {
	ProductID string
	Size      string
}

// Key returns the identity of this line
func (i LineItem) Key() Key {
	return Key{ProductID: i.ProductID, Size: i.Size}
}

// Totals represents derived cart totals
type Totals struct {
	ItemCount     int     `json:"item_count"`     // Number of distinct lines
	TotalQuantity int     `json:"total_quantity"` // Sum of all quantities
	Total         float64 `json:"total"`          // Sum of price * quantity
}
