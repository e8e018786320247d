package cart

import (
	"errors"

	"tiendia.app/api/pkg/models"
)

var (
	ErrNoSelectionOpen = errors.New("no size selection in progress")
	ErrUnknownSize     = errors.New("size is not declared on the product")
)

// Picker gates adding a sized product into a cart. It is either closed or
// open for exactly one product; opening it for a new product discards any
// prior context.
type Picker struct {
	product *models.Product
}

// RequestAdd routes an add request. Products without a variant dimension go
// straight into the cart; sized products open the picker and wait for a
// Select or Cancel.
func (pk *Picker) RequestAdd(c *Cart, product models.Product) {
	if !product.HasSizes() {
		c.Add(product, nil)
		return
	}
	p := product
	pk.product = &p
}

func (pk *Picker) IsOpen() bool {
	return pk.product != nil
}

// Product returns the product the picker is open for, or nil when closed.
func (pk *Picker) Product() *models.Product {
	return pk.product
}

// Select resolves sizeName against the open product's declared sizes, adds
// the product with that size to the cart and closes the picker. The picker
// stays open when the size is unknown so the caller can retry.
func (pk *Picker) Select(c *Cart, sizeName string) error {
	if pk.product == nil {
		return ErrNoSelectionOpen
	}
	size := pk.product.FindSize(sizeName)
	if size == nil {
		return ErrUnknownSize
	}
	c.Add(*pk.product, size)
	pk.product = nil
	return nil
}

// Cancel closes the picker without touching the cart.
func (pk *Picker) Cancel() {
	pk.product = nil
}
