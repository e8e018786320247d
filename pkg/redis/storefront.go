package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tiendia.app/api/pkg/models"
)

// StorefrontPage is the cached public catalog payload for one store.
type StorefrontPage struct {
	Store    *models.StoreProfile `json:"store"`
	Products []models.Product     `json:"products"`
}

const storefrontTTL = 10 * time.Minute

func storefrontKey(username string) string {
	return fmt.Sprintf("storefront:%s", username)
}

// GetStorefrontFromCache returns the cached page for a store username, or an
// error on a cache miss.
func GetStorefrontFromCache(ctx context.Context, username string) (*StorefrontPage, error) {
	client := RedisClient()
	defer client.Close()

	pageJSON, err := client.Get(ctx, storefrontKey(username)).Result()
	if err != nil {
		return nil, err
	}

	var page StorefrontPage
	if err := json.Unmarshal([]byte(pageJSON), &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal storefront page: %w", err)
	}
	return &page, nil
}

// CacheStorefront stores the assembled page for a store username.
func CacheStorefront(ctx context.Context, username string, page *StorefrontPage) error {
	client := RedisClient()
	defer client.Close()

	pageJSON, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to marshal storefront page for %s: %w", username, err)
	}

	if err := client.Set(ctx, storefrontKey(username), pageJSON, storefrontTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache storefront page for %s: %w", username, err)
	}
	return nil
}

// InvalidateStorefront drops the cached page after any catalog mutation so
// the next public visit sees fresh data.
func InvalidateStorefront(ctx context.Context, username string) error {
	client := RedisClient()
	defer client.Close()

	if err := client.Del(ctx, storefrontKey(username)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate storefront cache for %s: %w", username, err)
	}
	return nil
}
