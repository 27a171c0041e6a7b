package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
)

// MemoryAdapter keeps the persisted state in process memory. It stores raw
// JSON bytes so it exercises the exact encode/decode path of the real
// adapters, including recovery from corrupt values. Used by tests and by
// STORAGE=memory when running without Redis or MySQL.
type MemoryAdapter struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{values: make(map[string][]byte)}
}

// Put sets a raw value directly, bypassing encoding. Tests use it to plant
// corrupt data.
func (m *MemoryAdapter) Put(key string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = raw
}

// Raw returns the stored bytes for a key, or nil.
func (m *MemoryAdapter) Raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

func (m *MemoryAdapter) LoadCart(ctx context.Context) ([]domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.values[cartKey]
	if !ok {
		return []domain.CartLine{}, nil
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return []domain.CartLine{}, nil
	}
	return lines, nil
}

func (m *MemoryAdapter) SaveCart(ctx context.Context, lines []domain.CartLine) error {
	raw, err := json.Marshal(normalizeLines(lines))
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[cartKey] = raw
	return nil
}

func (m *MemoryAdapter) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.values[ordersKey]
	if !ok {
		return []domain.Order{}, nil
	}
	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

func (m *MemoryAdapter) AppendOrder(ctx context.Context, o domain.Order) error {
	orders, err := m.LoadOrders(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(append(orders, o))
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[ordersKey] = raw
	return nil
}
