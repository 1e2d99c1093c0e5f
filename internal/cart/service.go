package cart

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/pricing"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/db/models"
	pkgerrors "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/errors"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/logger"
)

type productLoader interface {
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

// Snapshot is the read-only view handed to consumers after any operation.
// DeliveryFee and FreeDeliveryRemaining follow the cart-summary threshold
// policy, which is independent of checkout coupons.
type Snapshot struct {
	Entries               []Entry `json:"entries"`
	Count                 int     `json:"count"`
	Subtotal              int     `json:"subtotal"`
	DeliveryFee           int     `json:"delivery_fee"`
	FreeDeliveryRemaining int     `json:"free_delivery_remaining"`
}

// Service exposes cart operations keyed by cart id.
type Service interface {
	Get(ctx context.Context, cartID string) (*Snapshot, error)
	AddItem(ctx context.Context, cartID string, productID, qty int) (*Snapshot, *Event, error)
	UpdateItem(ctx context.Context, cartID string, productID, qty int) (*Snapshot, *Event, error)
	RemoveItem(ctx context.Context, cartID string, productID int) (*Snapshot, *Event, error)
	Clear(ctx context.Context, cartID string) (*Snapshot, *Event, error)
}

type service struct {
	storages StorageFactory
	products productLoader
	logg     *logger.Logger
}

// NewService builds a cart service backed by the provided stack.
func NewService(storages StorageFactory, products productLoader, logg *logger.Logger) (Service, error) {
	if storages == nil {
		return nil, fmt.Errorf("cart storage factory required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{storages: storages, products: products, logg: logg}, nil
}

// Get loads the cart snapshot without mutating it.
func (s *service) Get(ctx context.Context, cartID string) (*Snapshot, error) {
	store, err := s.loadStore(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return snapshotOf(store), nil
}

// AddItem resolves the product and merges qty units into the cart.
func (s *service) AddItem(ctx context.Context, cartID string, productID, qty int) (*Snapshot, *Event, error) {
	if qty <= 0 {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}

	store, err := s.loadStore(ctx, cartID)
	if err != nil {
		return nil, nil, err
	}

	event := store.Add(ctx, *product, qty)
	s.logEvent(ctx, cartID, event)
	return snapshotOf(store), &event, nil
}

// UpdateItem sets the entry's quantity to exactly qty; qty <= 0 removes the
// entry. An absent entry is a silent no-op.
func (s *service) UpdateItem(ctx context.Context, cartID string, productID, qty int) (*Snapshot, *Event, error) {
	store, err := s.loadStore(ctx, cartID)
	if err != nil {
		return nil, nil, err
	}

	event, changed := store.SetQuantity(ctx, productID, qty)
	if changed {
		s.logEvent(ctx, cartID, event)
		return snapshotOf(store), &event, nil
	}
	return snapshotOf(store), nil, nil
}

// RemoveItem drops the entry if present; absent is a silent no-op.
func (s *service) RemoveItem(ctx context.Context, cartID string, productID int) (*Snapshot, *Event, error) {
	store, err := s.loadStore(ctx, cartID)
	if err != nil {
		return nil, nil, err
	}

	event, changed := store.Remove(ctx, productID)
	if changed {
		s.logEvent(ctx, cartID, event)
		return snapshotOf(store), &event, nil
	}
	return snapshotOf(store), nil, nil
}

// Clear empties the cart.
func (s *service) Clear(ctx context.Context, cartID string) (*Snapshot, *Event, error) {
	store, err := s.loadStore(ctx, cartID)
	if err != nil {
		return nil, nil, err
	}

	event := store.Clear(ctx)
	s.logEvent(ctx, cartID, event)
	return snapshotOf(store), &event, nil
}

func (s *service) loadStore(ctx context.Context, cartID string) (*Store, error) {
	if cartID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	return NewStore(ctx, s.storages.StorageFor(cartID), s.logg)
}

func (s *service) loadProduct(ctx context.Context, productID int) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		if typed := pkgerrors.As(err); typed != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is not available")
	}
	return product, nil
}

func (s *service) logEvent(ctx context.Context, cartID string, event Event) {
	if s.logg == nil {
		return
	}
	fields := map[string]any{"cart_id": cartID, "event": event.Type.String()}
	if event.Product != nil {
		fields["product_id"] = event.Product.ID
	}
	s.logg.Info(s.logg.WithFields(ctx, fields), "cart.mutation")
}

func snapshotOf(store *Store) *Snapshot {
	subtotal := store.Subtotal()
	return &Snapshot{
		Entries:               store.Entries(),
		Count:                 store.Count(),
		Subtotal:              subtotal,
		DeliveryFee:           pricing.CartSummaryPolicy.DeliveryFee(subtotal),
		FreeDeliveryRemaining: pricing.CartSummaryPolicy.Remaining(subtotal),
	}
}
