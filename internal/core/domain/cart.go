package domain

// CartLine is one distinct catalog item and its quantity in the cart.
// JSON keys match the layout persisted under the "cart" storage key.
type CartLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Img   string  `json:"img"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// LineTotalCents returns price*qty for the line in integer cents.
func (l CartLine) LineTotalCents() int64 {
	return Cents(l.Price) * int64(l.Qty)
}
