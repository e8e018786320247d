package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Size represents one named variant of a product (e.g. "M", "42").
// Stock is informational only; the storefront never enforces it.
type Size struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name" validate:"required,min=1,max=20"`
	Stock int    `json:"stock" bson:"stock" validate:"gte=0"`
}

// Product represents a catalog item in a store. ProductID is numeric and
// unique within the owning store; Price is optional (nil means unpriced).
type Product struct {
	ID        bson.ObjectID `json:"-" bson:"_id,omitempty"`
	ProductID int64         `json:"id" bson:"product_id"`
	StoreID   bson.ObjectID `json:"-" bson:"store_id"`
	Name      string        `json:"name" bson:"name" validate:"required,min=1,max=200"`
	Price     *float64      `json:"price,omitempty" bson:"price,omitempty" validate:"omitempty,gte=0"`
	ImageURL  string        `json:"image_url,omitempty" bson:"image_url,omitempty" validate:"omitempty,url"`
	Images    []string      `json:"images,omitempty" bson:"images,omitempty" validate:"dive,url"`
	Sizes     []Size        `json:"sizes,omitempty" bson:"sizes,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

func (p *Product) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// HasSizes reports whether the product carries a variant dimension.
func (p *Product) HasSizes() bool {
	return len(p.Sizes) > 0
}

// FindSize returns the declared size with the given name, or nil.
func (p *Product) FindSize(name string) *Size {
	for i := range p.Sizes {
		if p.Sizes[i].Name == name {
			return &p.Sizes[i]
		}
	}
	return nil
}

type SizeInput struct {
	Name  string `json:"name" binding:"required,min=1,max=20"`
	Stock int    `json:"stock" binding:"gte=0"`
}

type CreateProductRequest struct {
	Name     string      `json:"name" binding:"required,min=1,max=200"`
	Price    *float64    `json:"price" binding:"omitempty,gte=0"`
	ImageURL string      `json:"image_url" binding:"omitempty,url"`
	Images   []string    `json:"images" binding:"omitempty,dive,url"`
	Sizes    []SizeInput `json:"sizes" binding:"omitempty,dive"`
}

// ToProduct builds a Product owned by storeID. Size IDs are synthetic and
// assigned here so two sizes with the same display name stay distinguishable.
func (req *CreateProductRequest) ToProduct(storeID bson.ObjectID, productID int64) *Product {
	product := &Product{
		ID:        bson.NewObjectID(),
		ProductID: productID,
		StoreID:   storeID,
		Name:      req.Name,
		Price:     req.Price,
		ImageURL:  req.ImageURL,
		Images:    req.Images,
	}
	for _, s := range req.Sizes {
		product.Sizes = append(product.Sizes, Size{
			ID:    uuid.NewString(),
			Name:  s.Name,
			Stock: s.Stock,
		})
	}
	product.SetTimestamps()
	return product
}
