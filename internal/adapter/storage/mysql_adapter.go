package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
)

// MySQLAdapter persists the same cart/orders layout as the Redis adapter,
// using a two-column key-value table for installs that already run MySQL.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// EnsureSchema creates the backing table if it does not exist.
func (m *MySQLAdapter) EnsureSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS storefront_state (
			k VARCHAR(64) PRIMARY KEY,
			v LONGTEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create storefront_state: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) get(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT v FROM storefront_state WHERE k = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return raw, nil
}

func (m *MySQLAdapter) set(ctx context.Context, key string, raw []byte) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO storefront_state (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)`, key, raw)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (m *MySQLAdapter) LoadCart(ctx context.Context) ([]domain.CartLine, error) {
	raw, err := m.get(ctx, cartKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []domain.CartLine{}, nil
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return []domain.CartLine{}, nil
	}
	return lines, nil
}

func (m *MySQLAdapter) SaveCart(ctx context.Context, lines []domain.CartLine) error {
	raw, err := json.Marshal(normalizeLines(lines))
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return m.set(ctx, cartKey, raw)
}

func (m *MySQLAdapter) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	raw, err := m.get(ctx, ordersKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []domain.Order{}, nil
	}
	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

func (m *MySQLAdapter) AppendOrder(ctx context.Context, o domain.Order) error {
	orders, err := m.LoadOrders(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(append(orders, o))
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	return m.set(ctx, ordersKey, raw)
}
