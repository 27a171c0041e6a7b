package port

import (
	"context"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
)

type StateRepository interface {
	// LoadCart reads the persisted cart. A missing key or an undecodable
	// value yields an empty cart with a nil error; only transport failures
	// are returned, and callers degrade those to an empty cart too.
	LoadCart(ctx context.Context) ([]domain.CartLine, error)

	// SaveCart replaces the persisted cart with the given lines.
	SaveCart(ctx context.Context, lines []domain.CartLine) error

	// LoadOrders reads the persisted order log, with the same recovery
	// contract as LoadCart.
	LoadOrders(ctx context.Context) ([]domain.Order, error)

	// AppendOrder adds one order to the end of the persisted log. The
	// backing store has no native append, so implementations read the
	// full log, append, and write it back.
	AppendOrder(ctx context.Context, o domain.Order) error
}
