package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
	"github.com/bonnymkuu/Food-Order-App/internal/port"
)

// CartService owns the active cart. Every mutation persists synchronously
// before returning, so a crash can never leave the stored cart behind the
// in-memory one.
type CartService struct {
	mu       sync.Mutex
	store    port.StateRepository
	lines    []domain.CartLine
	onChange func()
}

// NewCartService builds the service and loads the persisted cart. A load
// failure degrades to an empty cart; the session keeps running.
func NewCartService(ctx context.Context, store port.StateRepository) *CartService {
	lines, err := store.LoadCart(ctx)
	if err != nil {
		slog.Warn("load cart failed, starting empty", "error", err)
		lines = []domain.CartLine{}
	}
	return &CartService{store: store, lines: lines}
}

// OnChange registers a callback fired after every successful mutation,
// used by the presentation layer to refresh itself.
func (s *CartService) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Add increments the quantity of an existing line with the same ID, or
// appends a new line with quantity 1.
func (s *CartService) Add(ctx context.Context, item domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Qty++
			found = true
			break
		}
	}
	if !found {
		item.Qty = 1
		s.lines = append(s.lines, item)
	}
	return s.persist(ctx)
}

// Remove drops the line with the given ID entirely. Removing an absent ID
// is a silent no-op.
func (s *CartService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// SetQty sets the quantity of a line, clamping non-positive input up to 1.
// A line is never removed by decrementing. No-op when the ID is absent.
func (s *CartService) SetQty(ctx context.Context, id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Qty = max(1, qty)
			return s.persist(ctx)
		}
	}
	return nil
}

// Total returns the cart total. Summation happens in integer cents so the
// result is exact for two-decimal prices.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FromCents(s.totalCents())
}

func (s *CartService) totalCents() int64 {
	var sum int64
	for _, l := range s.lines {
		sum += l.LineTotalCents()
	}
	return sum
}

// Lines returns a copy of the cart in insertion order.
func (s *CartService) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of distinct lines.
func (s *CartService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Clear empties the cart, used after checkout.
func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = s.lines[:0]
	return s.persist(ctx)
}

// persist mirrors the cart to storage and fires the change notification.
// Callers must hold the mutex.
func (s *CartService) persist(ctx context.Context) error {
	if err := s.store.SaveCart(ctx, s.lines); err != nil {
		return err
	}
	if s.onChange != nil {
		s.onChange()
	}
	return nil
}
