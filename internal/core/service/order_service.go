package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
	"github.com/bonnymkuu/Food-Order-App/internal/port"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidPayment = errors.New("invalid payment method")
)

// OrderService turns the current cart into order records and maintains the
// append-only order log.
type OrderService struct {
	store port.StateRepository
	cart  *CartService
	now   func() time.Time
}

func NewOrderService(store port.StateRepository, cart *CartService) *OrderService {
	return &OrderService{store: store, cart: cart, now: time.Now}
}

// BuildOrder snapshots the cart into an immutable order record. It has no
// side effects beyond reading cart state; Checkout owns the append+clear.
func (s *OrderService) BuildOrder(customer domain.Customer) domain.Order {
	lines := s.cart.Lines()
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{ID: l.ID, Name: l.Name, Price: l.Price, Qty: l.Qty})
	}
	return domain.Order{
		OrderNo:   newOrderNo(s.now()),
		CreatedAt: s.now().UTC(),
		Items:     items,
		Total:     s.cart.Total(),
		Customer:  customer,
		Status:    domain.OrderStatusPending,
	}
}

// Checkout validates the request, appends the built order to the log and
// clears the cart.
func (s *OrderService) Checkout(ctx context.Context, customer domain.Customer) (domain.Order, error) {
	if !customer.Payment.Valid() {
		return domain.Order{}, ErrInvalidPayment
	}
	if s.cart.Len() == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	o := s.BuildOrder(customer)
	if err := s.store.AppendOrder(ctx, o); err != nil {
		return domain.Order{}, fmt.Errorf("append order: %w", err)
	}
	if err := s.cart.Clear(ctx); err != nil {
		return domain.Order{}, fmt.Errorf("clear cart: %w", err)
	}
	return o, nil
}

// Orders returns the order log for display. A load failure degrades to an
// empty log; the record is local and the session must not fail over it.
func (s *OrderService) Orders(ctx context.Context) []domain.Order {
	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		slog.Warn("load orders failed, showing empty log", "error", err)
		return []domain.Order{}
	}
	return orders
}

// newOrderNo synthesizes an order number from the last six digits of the
// epoch-millisecond timestamp and a 3-digit random suffix. Collisions
// across rapid checkouts are a known, accepted limitation.
func newOrderNo(t time.Time) string {
	millis := t.UnixMilli() % 1_000_000
	suffix := 100 + rand.Intn(900)
	return fmt.Sprintf("ORD-%06d-%d", millis, suffix)
}
