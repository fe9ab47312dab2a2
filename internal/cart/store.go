package cart

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"apparel-storefront/internal/domain"
)

// lineKey identifies the cart line an add call merges into. It is a composite
// key rather than a joined string so product IDs containing the separator
// character can never collide.
type lineKey struct {
	productID string
	size      string
}

// Store holds the authoritative in-memory cart for one guest and mirrors
// every mutation to its Storage. Persistence failures are logged and
// swallowed: the cart degrades to session-only behavior instead of blocking
// the shopper.
type Store struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	storage Storage
	logger  *log.Logger
	now     func() time.Time
}

// New loads the previously persisted line list from storage. Missing or
// corrupt data is a recoverable condition: the store starts empty and logs
// a warning.
func New(ctx context.Context, storage Storage, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{storage: storage, logger: logger, now: time.Now}
	lines, err := storage.Load(ctx)
	if err != nil {
		logger.Printf("cart: load failed, starting empty: %v", err)
		return s
	}
	s.lines = lines
	return s
}

type AddInput struct {
	ProductID      string
	Name           string
	Size           string
	Quantity       int
	UnitPriceCents int64
}

// Add merges into the existing (product, size) line, or appends a new line
// with a fresh ID. A merged line keeps its original name and price snapshot;
// only the quantity grows. Quantity validation is the caller's job.
func (s *Store) Add(ctx context.Context, in AddInput) domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := lineKey{productID: in.ProductID, size: in.Size}
	for i := range s.lines {
		if (lineKey{s.lines[i].ProductID, s.lines[i].Size}) == key {
			s.lines[i].Quantity += in.Quantity
			s.persist(ctx)
			return s.lines[i]
		}
	}

	line := domain.CartLine{
		ID:             uuid.NewString(),
		ProductID:      in.ProductID,
		Name:           in.Name,
		Size:           in.Size,
		Quantity:       in.Quantity,
		UnitPriceCents: in.UnitPriceCents,
		AddedAt:        s.now().UTC(),
	}
	s.lines = append(s.lines, line)
	s.persist(ctx)
	return line
}

// Remove drops the line with the given ID. Removing an unknown ID is a no-op,
// not an error.
func (s *Store) Remove(ctx context.Context, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to max(1, quantity): values below
// one clamp instead of erroring. Unknown line IDs are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist(ctx)
}

// Total is the sum of unit price times quantity over all lines, computed
// fresh on every call.
func (s *Store) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, line := range s.lines {
		total += line.TotalCents()
	}
	return total
}

// ItemCount is the sum of quantities across lines, not the line count.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the current line list.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.CartLine(nil), s.lines...)
}

// persist resaves the full line list. Callers hold s.mu. A failed save keeps
// the in-memory state authoritative for the rest of the session.
func (s *Store) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, append([]domain.CartLine(nil), s.lines...)); err != nil {
		s.logger.Printf("cart: save failed, keeping in-memory state: %v", err)
	}
}
