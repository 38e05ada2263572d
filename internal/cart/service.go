package cart

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/freemanindumentaria/storefront-backend/internal/catalog"
	pkgerrors "github.com/freemanindumentaria/storefront-backend/pkg/errors"
)

// Observer is notified after every successful cart mutation. Observers run
// synchronously on the mutating flow, mirroring how the storefront UI reacts
// to cart changes.
type Observer func(ctx context.Context, sessionID, operation string, cart Cart)

// Service exposes the per-session cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (Cart, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (Cart, error)
	Clear(ctx context.Context, sessionID string) (Cart, error)
	Subscribe(obs Observer)
}

// AddItemInput captures one add-to-cart action. The caller has already
// checked color/size against the catalog; the store trusts its input.
type AddItemInput struct {
	Product  catalog.Product
	Color    catalog.Color
	Size     catalog.Size
	Quantity int
}

type service struct {
	store     Store
	locks     sync.Map // sessionID -> *sync.Mutex
	observers []Observer
}

// NewService builds a cart service over the given store.
func NewService(store Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &service{store: store}, nil
}

// Subscribe registers a mutation observer. Meant to be called during wiring,
// before the service starts handling requests.
func (s *service) Subscribe(obs Observer) {
	if obs != nil {
		s.observers = append(s.observers, obs)
	}
}

func (s *service) Get(ctx context.Context, sessionID string) (Cart, error) {
	if err := validSession(sessionID); err != nil {
		return Cart{}, err
	}
	unlock := s.lock(sessionID)
	defer unlock()
	return s.store.Load(ctx, sessionID), nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (Cart, error) {
	if err := validSession(sessionID); err != nil {
		return Cart{}, err
	}
	if input.Quantity < 1 {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if input.Product.ID == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "product is required")
	}

	unlock := s.lock(sessionID)
	defer unlock()

	cart := s.store.Load(ctx, sessionID)

	merged := false
	for i, line := range cart.Lines {
		if line.Product.ID == input.Product.ID && line.Color == input.Color && line.Size == input.Size {
			cart.Lines[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, Line{
			Product:  snapshotOf(input.Product),
			Color:    input.Color,
			Size:     input.Size,
			Quantity: input.Quantity,
		})
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return Cart{}, err
	}
	s.notify(ctx, sessionID, "add", cart)
	return cart, nil
}

// RemoveItem deletes the line at the given display position. An out-of-range
// index leaves the cart untouched.
func (s *service) RemoveItem(ctx context.Context, sessionID string, index int) (Cart, error) {
	if err := validSession(sessionID); err != nil {
		return Cart{}, err
	}

	unlock := s.lock(sessionID)
	defer unlock()
	return s.removeLocked(ctx, sessionID, index)
}

// UpdateQuantity sets the line's quantity to exactly the given value. A value
// of zero or less removes the line instead.
func (s *service) UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (Cart, error) {
	if err := validSession(sessionID); err != nil {
		return Cart{}, err
	}

	unlock := s.lock(sessionID)
	defer unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, sessionID, index)
	}

	cart := s.store.Load(ctx, sessionID)
	if index < 0 || index >= len(cart.Lines) {
		return cart, nil
	}
	cart.Lines[index].Quantity = quantity

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return Cart{}, err
	}
	s.notify(ctx, sessionID, "update", cart)
	return cart, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) (Cart, error) {
	if err := validSession(sessionID); err != nil {
		return Cart{}, err
	}

	unlock := s.lock(sessionID)
	defer unlock()

	// Dropping the key entirely keeps the store free of empty-cart entries.
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return Cart{}, err
	}
	cart := Cart{}
	s.notify(ctx, sessionID, "clear", cart)
	return cart, nil
}

func (s *service) removeLocked(ctx context.Context, sessionID string, index int) (Cart, error) {
	cart := s.store.Load(ctx, sessionID)
	if index < 0 || index >= len(cart.Lines) {
		return cart, nil
	}
	cart.Lines = append(cart.Lines[:index], cart.Lines[index+1:]...)

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return Cart{}, err
	}
	s.notify(ctx, sessionID, "remove", cart)
	return cart, nil
}

func (s *service) notify(ctx context.Context, sessionID, operation string, cart Cart) {
	for _, obs := range s.observers {
		obs(ctx, sessionID, operation, cart)
	}
}

func (s *service) lock(sessionID string) func() {
	mu, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func validSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return nil
}
