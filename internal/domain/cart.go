package domain

import "time"

// CartLine is one row in a guest's cart: a distinct (product, size) selection
// with the quantity chosen and the unit price captured at add time. The price
// is a snapshot, not a live reference to the catalog.
type CartLine struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"productId"`
	Name           string    `json:"name"`
	Size           string    `json:"size"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	AddedAt        time.Time `json:"addedAt"`
}

// TotalCents is the line subtotal.
func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}
