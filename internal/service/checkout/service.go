package checkout

import (
	"context"
	"io"
	"log"
	"strings"

	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/domain"
	orderrepo "apparel-storefront/internal/repository/order"
	"apparel-storefront/internal/shipping"
)

// Service prices a cart for a destination and turns it into a persisted
// order. The cart is cleared only after the order write is confirmed.
type Service struct {
	orders       orderrepo.Repository
	itemWeightKg float64
	logger       *log.Logger
}

func New(orders orderrepo.Repository, itemWeightKg float64, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if itemWeightKg <= 0 {
		itemWeightKg = shipping.DefaultItemWeightKg
	}
	return &Service{orders: orders, itemWeightKg: itemWeightKg, logger: logger}
}

// Quote is a priced view of the cart for a destination. A zero fee with a
// blank destination means "enter an address", not free shipping.
type Quote struct {
	Region           shipping.Region `json:"region,omitempty"`
	WeightKg         float64         `json:"weightKg"`
	ItemCount        int             `json:"itemCount"`
	SubtotalCents    int64           `json:"subtotalCents"`
	ShippingFeeCents int64           `json:"shippingFeeCents"`
	TotalCents       int64           `json:"totalCents"`
}

func (s *Service) Quote(store *cart.Store, city, province string) Quote {
	count := store.ItemCount()
	quote := Quote{
		ItemCount:     count,
		WeightKg:      shipping.OrderWeightKg(count, s.itemWeightKg),
		SubtotalCents: store.Total(),
	}
	if strings.TrimSpace(city) == "" && strings.TrimSpace(province) == "" {
		quote.TotalCents = quote.SubtotalCents
		return quote
	}
	quote.Region = shipping.ClassifyAddress(city, province)
	quote.ShippingFeeCents = shipping.FeeForRegion(quote.Region, quote.WeightKg)
	quote.TotalCents = quote.SubtotalCents + quote.ShippingFeeCents
	return quote
}

type SubmitInput struct {
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	Province     string `json:"province"`
	ZipCode      string `json:"zipCode"`
}

// ValidationError marks caller mistakes so the transport layer can map them
// to 4xx responses.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

func (in SubmitInput) validate() error {
	switch {
	case strings.TrimSpace(in.Email) == "":
		return ValidationError("email required")
	case strings.TrimSpace(in.FullName) == "":
		return ValidationError("fullName required")
	case strings.TrimSpace(in.AddressLine1) == "":
		return ValidationError("addressLine1 required")
	case strings.TrimSpace(in.City) == "":
		return ValidationError("city required")
	case strings.TrimSpace(in.Province) == "":
		return ValidationError("province required")
	}
	return nil
}

// Submit validates the input, prices the cart, persists the order with its
// items, and clears the cart. A failed write leaves the cart untouched so
// the shopper can retry.
func (s *Service) Submit(ctx context.Context, guestID string, store *cart.Store, in SubmitInput) (*domain.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	lines := store.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	quote := s.Quote(store, in.City, in.Province)

	names := make([]string, 0, len(lines))
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		names = append(names, line.Name)
		items = append(items, domain.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Size:        line.Size,
			Quantity:    line.Quantity,
			PriceCents:  line.UnitPriceCents,
		})
	}

	order := domain.Order{
		GuestID:          guestID,
		CustomerName:     in.FullName,
		CustomerEmail:    in.Email,
		ProductSummary:   strings.Join(names, ", "),
		SubtotalCents:    quote.SubtotalCents,
		ShippingFeeCents: quote.ShippingFeeCents,
		TotalCents:       quote.TotalCents,
		PaymentStatus:    "Pending",
		DeliveryStatus:   "Pending",
		ShippingAddress: domain.ShippingAddress{
			FullName:     in.FullName,
			AddressLine1: in.AddressLine1,
			City:         in.City,
			Province:     in.Province,
			ZipCode:      in.ZipCode,
		},
	}

	created, err := s.orders.Create(ctx, order, items)
	if err != nil {
		return nil, err
	}

	// Clear only after the confirmed write.
	store.Clear(ctx)
	s.logger.Printf("checkout: order %s for guest %s, region=%s total_cents=%d", created.ID, guestID, quote.Region, created.TotalCents)
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}
