package cart

import (
	"encoding/json"

	"tiendia.app/api/pkg/models"
)

// Line is one cart entry: a product snapshot, the chosen size (nil when the
// product has no variant dimension) and a quantity. The snapshot is taken at
// add time and never re-synced with the catalog.
type Line struct {
	Product  models.Product `json:"product"`
	Size     *models.Size   `json:"size,omitempty"`
	Quantity int            `json:"quantity"`
}

// SizeName returns the chosen size's name, or "" for a line without one.
// Declared size names are never empty, so "" unambiguously means no size.
func (l *Line) SizeName() string {
	if l.Size != nil {
		return l.Size.Name
	}
	return ""
}

// Subtotal is the line's price contribution; an unpriced product counts as 0.
func (l *Line) Subtotal() float64 {
	if l.Product.Price == nil {
		return 0
	}
	return *l.Product.Price * float64(l.Quantity)
}

// Cart is an insertion-ordered collection of lines. A line is identified by
// the pair (product id, size name); at most one line ever exists per pair,
// and no line ever holds a quantity below 1.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) find(productID int64, sizeName string) int {
	for i := range c.lines {
		if c.lines[i].Product.ProductID == productID && c.lines[i].SizeName() == sizeName {
			return i
		}
	}
	return -1
}

// snapshot deep-copies the parts of a product reached through pointers or
// slices, so later catalog edits never leak into existing cart lines.
func snapshot(p models.Product) models.Product {
	if p.Price != nil {
		v := *p.Price
		p.Price = &v
	}
	if len(p.Sizes) > 0 {
		p.Sizes = append([]models.Size(nil), p.Sizes...)
	}
	if len(p.Images) > 0 {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}

// Add puts one unit of the product (with the given size, nil for none) into
// the cart. An existing matching line has its quantity incremented; otherwise
// a new line is appended, keeping first-add order. Add never fails: there is
// no capacity limit and declared stock is not checked.
func (c *Cart) Add(product models.Product, size *models.Size) {
	sizeName := ""
	if size != nil {
		sizeName = size.Name
	}
	if i := c.find(product.ProductID, sizeName); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	if size != nil {
		s := *size
		size = &s
	}
	c.lines = append(c.lines, Line{Product: snapshot(product), Size: size, Quantity: 1})
}

// UpdateQuantity sets the matching line's quantity to exactly quantity.
// Zero or negative removes the line. Missing lines are a no-op.
func (c *Cart) UpdateQuantity(productID int64, sizeName string, quantity int) {
	i := c.find(productID, sizeName)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = quantity
}

// Remove drops the matching line unconditionally; no-op when absent.
func (c *Cart) Remove(productID int64, sizeName string) {
	if i := c.find(productID, sizeName); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Total is the sum of price x quantity over all lines, recomputed on every
// call. Unpriced products contribute 0.
func (c *Cart) Total() float64 {
	var total float64
	for i := range c.lines {
		total += c.lines[i].Subtotal()
	}
	return total
}

// ItemCount is the sum of quantities over all lines (badge count).
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.lines {
		count += c.lines[i].Quantity
	}
	return count
}

// Lines returns the cart's lines in insertion order. The returned slice is a
// copy; mutating it does not affect the cart.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// MarshalJSON serializes the cart as its ordered line list, which is how
// session carts are stored in Redis.
func (c *Cart) MarshalJSON() ([]byte, error) {
	if c.lines == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.lines)
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.lines)
}
