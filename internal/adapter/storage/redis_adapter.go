package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
)

// Storage keys. They match the layout the original storefront persisted,
// so an existing cart and order log stay readable.
const (
	cartKey   = "cart"
	ordersKey = "orders"
)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) LoadCart(ctx context.Context) ([]domain.CartLine, error) {
	raw, err := r.client.Get(ctx, cartKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.CartLine{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", cartKey, err)
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		// Corrupt value: recover to an empty cart rather than failing the session.
		return []domain.CartLine{}, nil
	}
	return lines, nil
}

func (r *RedisAdapter) SaveCart(ctx context.Context, lines []domain.CartLine) error {
	raw, err := json.Marshal(normalizeLines(lines))
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.client.Set(ctx, cartKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", cartKey, err)
	}
	return nil
}

func (r *RedisAdapter) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	raw, err := r.client.Get(ctx, ordersKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", ordersKey, err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

func (r *RedisAdapter) AppendOrder(ctx context.Context, o domain.Order) error {
	orders, err := r.LoadOrders(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(append(orders, o))
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := r.client.Set(ctx, ordersKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", ordersKey, err)
	}
	return nil
}

// normalizeLines keeps the persisted encoding stable: a nil slice is
// written as [], never null.
func normalizeLines(lines []domain.CartLine) []domain.CartLine {
	if lines == nil {
		return []domain.CartLine{}
	}
	return lines
}
