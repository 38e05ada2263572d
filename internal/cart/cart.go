package cart

import "github.com/freemanindumentaria/storefront-backend/internal/catalog"

// ProductSnapshot freezes the catalog fields a cart line needs so a persisted
// cart renders without a catalog join.
type ProductSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

// Line is one cart entry for a (product, color, size) selection.
type Line struct {
	Product  ProductSnapshot `json:"product"`
	Color    catalog.Color   `json:"color"`
	Size     catalog.Size    `json:"size"`
	Quantity int             `json:"quantity"`
}

// Total returns the line price in pesos.
func (l Line) Total() int {
	return l.Product.Price * l.Quantity
}

// Cart is the ordered line sequence for one session. Order is display order;
// it carries no other meaning.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Subtotal is always derived from the current lines, never stored.
func (c Cart) Subtotal() int {
	sum := 0
	for _, line := range c.Lines {
		sum += line.Total()
	}
	return sum
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func snapshotOf(p catalog.Product) ProductSnapshot {
	return ProductSnapshot{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
}
