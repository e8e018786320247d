package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/redis/go-redis/v9"

	"tiendia.app/api/pkg/cart"
)

// Session carts live in Redis keyed by (store username, session id) and are
// serialized as the cart's ordered line list. All mutations go through the
// in-memory cart container; this package only loads and saves it.

const cartTTL = 24 * time.Hour

func cartKey(username, sessionID string) string {
	return fmt.Sprintf("cart:%s:%s", username, sessionID)
}

// LoadCart returns the session's cart, or a fresh empty cart when no session
// data exists yet.
func LoadCart(ctx context.Context, username, sessionID string) (*cart.Cart, error) {
	client := RedisClient()
	defer client.Close()

	cartJSON, err := client.Get(ctx, cartKey(username, sessionID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return cart.New(), nil
		}
		return nil, err
	}

	c := cart.New()
	if err := json.Unmarshal([]byte(cartJSON), c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session cart: %w", err)
	}
	return c, nil
}

// SaveCart persists the session's cart and refreshes its TTL. An empty cart
// is deleted instead of stored.
func SaveCart(ctx context.Context, username, sessionID string, c *cart.Cart) error {
	client := RedisClient()
	defer client.Close()

	key := cartKey(username, sessionID)
	if c.IsEmpty() {
		if err := client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to clear session cart: %w", err)
		}
		return nil
	}

	cartJSON, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal session cart: %w", err)
	}
	if err := client.Set(ctx, key, cartJSON, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session cart: %w", err)
	}
	return nil
}

// ClearCart removes the session's cart entirely.
func ClearCart(ctx context.Context, username, sessionID string) error {
	client := RedisClient()
	defer client.Close()

	return client.Del(ctx, cartKey(username, sessionID)).Err()
}
