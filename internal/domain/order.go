package domain

import "time"

// Order is a submitted checkout: customer contact details, the shipping
// address, and the priced totals including the shipping fee.
type Order struct {
	ID               string          `json:"id"`
	GuestID          string          `json:"guestId"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	ProductSummary   string          `json:"productSummary"`
	SubtotalCents    int64           `json:"subtotalCents"`
	ShippingFeeCents int64           `json:"shippingFeeCents"`
	TotalCents       int64           `json:"totalCents"`
	PaymentStatus    string          `json:"paymentStatus"`
	DeliveryStatus   string          `json:"deliveryStatus"`
	ShippingAddress  ShippingAddress `json:"shippingAddress"`
	CreatedAt        time.Time       `json:"createdAt"`
	Items            []OrderItem     `json:"items,omitempty"`
}

type ShippingAddress struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	Province     string `json:"province"`
	ZipCode      string `json:"zipCode"`
}

// OrderItem is derived 1:1 from a cart line at submission time.
type OrderItem struct {
	ID          string `json:"id"`
	OrderID     string `json:"orderId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	PriceCents  int64  `json:"priceCents"`
}
