package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/domain"
	"apparel-storefront/internal/service/checkout"
	"apparel-storefront/internal/service/guest"
)

type stubCatalog struct {
	products map[string]*domain.Product
	listErr  error
}

func (s *stubCatalog) List(_ context.Context, collection string) ([]domain.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []domain.Product
	for _, p := range s.products {
		if collection == "" || p.Collection == collection {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubCatalog) Get(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

type stubOrderRepo struct {
	createErr error
	lastOrder domain.Order
	lastItems []domain.OrderItem
}

func (s *stubOrderRepo) Create(_ context.Context, in domain.Order, items []domain.OrderItem) (*domain.Order, error) {
	s.lastOrder = in
	s.lastItems = items
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := in
	out.ID = "order-1"
	out.Items = items
	return &out, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	if id == "order-1" {
		return &domain.Order{ID: "order-1"}, nil
	}
	return nil, domain.ErrNotFound
}

func testRouter(t *testing.T, orders *stubOrderRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)

	catalog := &stubCatalog{products: map[string]*domain.Product{
		"p1": {ID: "p1", Collection: "aware", Name: "AWARE Shirt White", PriceCents: 70000, Currency: "PHP", Sizes: []string{"S", "M", "L"}},
		"p2": {ID: "p2", Collection: "aware", Name: "AWARE Hoodie White", PriceCents: 160000, Currency: "PHP", Sizes: []string{"M", "L"}},
	}}

	dir := t.TempDir()
	carts := cart.NewManager(func(guestID string) cart.Storage {
		return cart.NewFileStorage(dir, guestID)
	}, logger)

	deps := Deps{
		Catalog:  catalog,
		Checkout: checkout.New(orders, 0.5, logger),
		Guests:   guest.New(),
		Carts:    carts,
	}
	return buildRouter(logger, nil, deps, []string{"*"})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, guestID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if guestID != "" {
		req.Header.Set(guestHeader, guestID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode cart response: %v", err)
	}
	return resp
}

func TestHealthz(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})
	rec := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestIssueGuest(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})
	rec := doJSON(t, router, http.MethodPost, "/guests", "", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp struct {
		GuestID string `json:"guestId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !guest.New().Valid(resp.GuestID) {
		t.Fatalf("expected a well-formed guest id, got %q", resp.GuestID)
	}
}

func TestCartRequiresGuestHeader(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})
	if rec := doJSON(t, router, http.MethodGet, "/cart", "", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing header: expected 400, got %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodGet, "/cart", "not-a-uuid", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid header: expected 400, got %d", rec.Code)
	}
}

func TestAddCartItemValidation(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})
	guestID := guest.New().Issue()

	cases := []struct {
		body addItemRequest
		code int
	}{
		{addItemRequest{ProductID: "", Size: "M", Quantity: 1}, http.StatusBadRequest},
		{addItemRequest{ProductID: "p1", Size: "", Quantity: 1}, http.StatusBadRequest},
		{addItemRequest{ProductID: "p1", Size: "M", Quantity: 0}, http.StatusBadRequest},
		{addItemRequest{ProductID: "missing", Size: "M", Quantity: 1}, http.StatusNotFound},
		{addItemRequest{ProductID: "p1", Size: "XS", Quantity: 1}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := doJSON(t, router, http.MethodPost, "/cart/items", guestID, tc.body)
		if rec.Code != tc.code {
			t.Fatalf("body %+v: expected %d, got %d (%s)", tc.body, tc.code, rec.Code, rec.Body.String())
		}
	}
}

func TestCartFlow(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})
	guestID := guest.New().Issue()

	rec := doJSON(t, router, http.MethodPost, "/cart/items", guestID, addItemRequest{ProductID: "p1", Size: "M", Quantity: 2})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	resp := decodeCart(t, rec)
	if len(resp.LineItems) != 1 || resp.ItemCount != 2 || resp.SubtotalCents != 140000 {
		t.Fatalf("unexpected cart after add: %+v", resp)
	}
	if resp.LineItems[0].Name != "AWARE Shirt White" || resp.LineItems[0].UnitPriceCents != 70000 {
		t.Fatalf("expected product snapshot on line: %+v", resp.LineItems[0])
	}

	// Adding the same product and size merges rather than appending.
	rec = doJSON(t, router, http.MethodPost, "/cart/items", guestID, addItemRequest{ProductID: "p1", Size: "M", Quantity: 1})
	resp = decodeCart(t, rec)
	if len(resp.LineItems) != 1 || resp.LineItems[0].Quantity != 3 {
		t.Fatalf("expected merged line with quantity 3: %+v", resp)
	}
	lineID := resp.LineItems[0].ID

	// Quantity below one clamps to one.
	rec = doJSON(t, router, http.MethodPatch, "/cart/items/"+lineID, guestID, updateItemRequest{Quantity: 0})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", rec.Code)
	}
	resp = decodeCart(t, rec)
	if resp.LineItems[0].Quantity != 1 || resp.SubtotalCents != 70000 {
		t.Fatalf("expected clamp to 1: %+v", resp)
	}

	// Removing an unknown line is idempotent.
	rec = doJSON(t, router, http.MethodDelete, "/cart/items/unknown", guestID, nil)
	resp = decodeCart(t, rec)
	if len(resp.LineItems) != 1 {
		t.Fatalf("unknown remove should not change cart: %+v", resp)
	}

	rec = doJSON(t, router, http.MethodDelete, "/cart/items/"+lineID, guestID, nil)
	resp = decodeCart(t, rec)
	if len(resp.LineItems) != 0 || resp.ItemCount != 0 || resp.SubtotalCents != 0 {
		t.Fatalf("expected empty cart: %+v", resp)
	}

	doJSON(t, router, http.MethodPost, "/cart/items", guestID, addItemRequest{ProductID: "p2", Size: "L", Quantity: 1})
	if rec := doJSON(t, router, http.MethodDelete, "/cart", guestID, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("clear: expected 204, got %d", rec.Code)
	}
	resp = decodeCart(t, doJSON(t, router, http.MethodGet, "/cart", guestID, nil))
	if len(resp.LineItems) != 0 {
		t.Fatalf("expected cleared cart: %+v", resp)
	}
}

func TestCheckoutQuoteAndSubmit(t *testing.T) {
	orders := &stubOrderRepo{}
	router := testRouter(t, orders)
	guestID := guest.New().Issue()

	doJSON(t, router, http.MethodPost, "/cart/items", guestID, addItemRequest{ProductID: "p1", Size: "M", Quantity: 2})
	doJSON(t, router, http.MethodPost, "/cart/items", guestID, addItemRequest{ProductID: "p2", Size: "L", Quantity: 1})

	rec := doJSON(t, router, http.MethodPost, "/checkout/quote", guestID, quoteRequest{City: "Quezon City", Province: "Metro Manila"})
	if rec.Code != http.StatusOK {
		t.Fatalf("quote: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var quote checkout.Quote
	if err := json.Unmarshal(rec.Body.Bytes(), &quote); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	if quote.SubtotalCents != 300000 || quote.ShippingFeeCents == 0 {
		t.Fatalf("unexpected quote: %+v", quote)
	}

	submit := checkout.SubmitInput{
		Email:        "shopper@example.com",
		FullName:     "Juan dela Cruz",
		AddressLine1: "123 Mabini St",
		City:         "Quezon City",
		Province:     "Metro Manila",
		ZipCode:      "1100",
	}
	rec = doJSON(t, router, http.MethodPost, "/checkout", guestID, submit)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var order domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.ID != "order-1" || order.TotalCents != quote.TotalCents {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(orders.lastItems) != 2 {
		t.Fatalf("expected two order items, got %d", len(orders.lastItems))
	}

	// The cart is cleared after a confirmed order.
	resp := decodeCart(t, doJSON(t, router, http.MethodGet, "/cart", guestID, nil))
	if resp.ItemCount != 0 {
		t.Fatalf("expected cleared cart after checkout: %+v", resp)
	}
}

func TestCheckoutSubmitEmptyCart(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})
	guestID := guest.New().Issue()

	submit := checkout.SubmitInput{
		Email:        "shopper@example.com",
		FullName:     "Juan dela Cruz",
		AddressLine1: "123 Mabini St",
		City:         "Quezon City",
		Province:     "Metro Manila",
	}
	rec := doJSON(t, router, http.MethodPost, "/checkout", guestID, submit)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", rec.Code)
	}
}

func TestGetProduct(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})

	rec := doJSON(t, router, http.MethodGet, "/products/p1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/products/missing", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetOrder(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})

	rec := doJSON(t, router, http.MethodGet, "/orders/order-1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/orders/missing", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
