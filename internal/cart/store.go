// Package cart holds the customer's pending stamps on the client side.
//
// The cart is an ordered list of priced stamp configurations. It is loaded
// once when the Store is opened and written back after every mutation.
package cart

import (
	"context"
	"log/slog"
	"sync"

	"stampshop/internal/domain/entity"
	"stampshop/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrItemNotFound is returned when removing an id that is not in the cart.
var ErrItemNotFound = errors.New("cart item not found")

// Persister loads and saves the cart contents.
type Persister interface {
	Load(ctx context.Context) ([]entity.CartItem, error)
	Save(ctx context.Context, items []entity.CartItem) error
}

// Store is the in-memory cart backed by a Persister.
type Store struct {
	mu        sync.Mutex
	items     []entity.CartItem
	persister Persister
	logger    *slog.Logger
	newID     func() uuid.UUID
}

// Open loads the saved cart. A cart that cannot be read starts empty.
func Open(ctx context.Context, persister Persister, logger *slog.Logger) *Store {
	s := &Store{
		persister: persister,
		logger:    logger,
		newID:     uuid.New,
	}

	items, err := persister.Load(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load cart, starting empty", slog.Any("error", err))

		return s
	}
	s.items = items

	return s
}

// Add prices the configuration and appends it to the cart.
func (s *Store) Add(ctx context.Context, cfg entity.StampConfiguration) (entity.CartItem, error) {
	item := entity.CartItem{
		ID:            s.newID(),
		Configuration: cfg,
		Price:         pricing.Calculate(cfg.HasLogo).TotalPrice,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(s.snapshot(), item)
	if err := s.commit(ctx, next); err != nil {
		return entity.CartItem{}, err
	}

	return item, nil
}

// Remove drops the item with the given id.
func (s *Store) Remove(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entity.CartItem, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if len(next) == len(s.items) {
		return ErrItemNotFound
	}

	return s.commit(ctx, next)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, []entity.CartItem{})
}

// Items returns a copy of the cart in insertion order.
func (s *Store) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Total is the sum of all item prices.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Price)
	}

	return total
}

// Len is the number of items in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

func (s *Store) snapshot() []entity.CartItem {
	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)

	return out
}

// commit persists first so a failed save leaves the in-memory cart untouched.
func (s *Store) commit(ctx context.Context, next []entity.CartItem) error {
	if err := s.persister.Save(ctx, next); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}
	s.items = next

	return nil
}
