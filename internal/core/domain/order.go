package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// Customer holds the checkout form fields.
type Customer struct {
	Name    string        `json:"name"`
	Phone   string        `json:"phone"`
	Address string        `json:"address"`
	Notes   string        `json:"notes"`
	Payment PaymentMethod `json:"payment"`
}

// OrderItem is an immutable snapshot of a cart line at checkout time.
type OrderItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Order is a completed checkout record. Immutable once created; appended
// to the order log under the "orders" storage key.
type Order struct {
	OrderNo   string      `json:"orderNo"`
	CreatedAt time.Time   `json:"createdAt"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Customer  Customer    `json:"customer"`
	Status    OrderStatus `json:"status"`
}
