package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Store represents a seller's public-facing catalog page
type Store struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string        `json:"username" bson:"username" validate:"required,min=3,max=30"`
	Name      string        `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Email     string        `json:"email" bson:"email" validate:"required,email"`
	Password  string        `json:"-" bson:"password"`
	Phone     string        `json:"phone" bson:"phone"`
	LogoURL   string        `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

func (s *Store) SetTimestamps() {
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}

// PublicProfile strips account fields down to what the storefront needs.
func (s *Store) PublicProfile() *StoreProfile {
	return &StoreProfile{
		Username: s.Username,
		Name:     s.Name,
		Phone:    s.Phone,
		LogoURL:  s.LogoURL,
	}
}

// StoreProfile is the public view of a store exposed on storefront pages.
type StoreProfile struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	LogoURL  string `json:"logo_url,omitempty"`
}

type RegisterStoreRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30,alphanum"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateStoreRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone"`
	LogoURL *string `json:"logo_url"`
}
