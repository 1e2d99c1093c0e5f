package cart

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/db/models"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/enums"
	pkgerrors "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/errors"
)

type memStorageFactory struct {
	byCart map[string]*memStorage
}

func newMemStorageFactory() *memStorageFactory {
	return &memStorageFactory{byCart: make(map[string]*memStorage)}
}

func (f *memStorageFactory) StorageFor(cartID string) Storage {
	if s, ok := f.byCart[cartID]; ok {
		return s
	}
	s := &memStorage{}
	f.byCart[cartID] = s
	return s
}

type stubProducts struct {
	byID map[int]models.Product
}

func (s *stubProducts) GetByID(_ context.Context, id int) (*models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func newTestService(t *testing.T, products ...models.Product) Service {
	t.Helper()
	loader := &stubProducts{byID: make(map[int]models.Product)}
	for _, p := range products {
		loader.byID[p.ID] = p
	}
	svc, err := NewService(newMemStorageFactory(), loader, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestServiceAddItem(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, tomato())
	ctx := context.Background()

	snapshot, event, err := svc.AddItem(ctx, "cart-a", 1, 2)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if event == nil || event.Type != enums.CartEventAdded {
		t.Fatalf("expected added event, got %+v", event)
	}
	if snapshot.Count != 2 || snapshot.Subtotal != 60 {
		t.Fatalf("unexpected snapshot: count=%d subtotal=%d", snapshot.Count, snapshot.Subtotal)
	}
	if snapshot.DeliveryFee != 30 {
		t.Fatalf("subtotal 60 should carry a delivery fee, got %d", snapshot.DeliveryFee)
	}
	if snapshot.FreeDeliveryRemaining != 140 {
		t.Fatalf("expected 140 remaining to free delivery, got %d", snapshot.FreeDeliveryRemaining)
	}
}

func TestServiceAddItemMergesAcrossCalls(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, tomato())
	ctx := context.Background()

	if _, _, err := svc.AddItem(ctx, "cart-a", 1, 2); err != nil {
		t.Fatalf("first AddItem: %v", err)
	}
	snapshot, event, err := svc.AddItem(ctx, "cart-a", 1, 3)
	if err != nil {
		t.Fatalf("second AddItem: %v", err)
	}
	if event.Type != enums.CartEventQuantityUpdated {
		t.Fatalf("expected quantity_updated, got %s", event.Type)
	}
	if len(snapshot.Entries) != 1 || snapshot.Entries[0].Quantity != 5 {
		t.Fatalf("expected single merged entry of 5, got %+v", snapshot.Entries)
	}
}

func TestServiceCartsAreIsolated(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, tomato())
	ctx := context.Background()

	if _, _, err := svc.AddItem(ctx, "cart-a", 1, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	snapshot, err := svc.Get(ctx, "cart-b")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snapshot.Count != 0 {
		t.Fatalf("cart-b should be empty, got count %d", snapshot.Count)
	}
}

func TestServiceAddItemRejectsBadQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, tomato())

	_, _, err := svc.AddItem(context.Background(), "cart-a", 1, 0)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceAddItemUnknownProduct(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, _, err := svc.AddItem(context.Background(), "cart-a", 42, 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestServiceAddItemInactiveProduct(t *testing.T) {
	t.Parallel()

	inactive := tomato()
	inactive.IsActive = false
	svc := newTestService(t, inactive)

	_, _, err := svc.AddItem(context.Background(), "cart-a", 1, 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for inactive product, got %v", err)
	}
}

func TestServiceUpdateItemAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, tomato())

	snapshot, event, err := svc.UpdateItem(context.Background(), "cart-a", 1, 3)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if event != nil {
		t.Fatalf("no-op update should not emit an event, got %+v", event)
	}
	if snapshot.Count != 0 {
		t.Fatalf("expected empty snapshot, got count %d", snapshot.Count)
	}
}

func TestServiceUpdateItemZeroRemoves(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, tomato())
	ctx := context.Background()

	if _, _, err := svc.AddItem(ctx, "cart-a", 1, 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	snapshot, event, err := svc.UpdateItem(ctx, "cart-a", 1, 0)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if event == nil || event.Type != enums.CartEventRemoved {
		t.Fatalf("expected removed event, got %+v", event)
	}
	if snapshot.Count != 0 {
		t.Fatalf("expected empty cart, got count %d", snapshot.Count)
	}
}

func TestServiceRemoveAndClear(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, tomato(), spinach())
	ctx := context.Background()

	if _, _, err := svc.AddItem(ctx, "cart-a", 1, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, _, err := svc.AddItem(ctx, "cart-a", 4, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	snapshot, event, err := svc.RemoveItem(ctx, "cart-a", 1)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if event == nil || event.Type != enums.CartEventRemoved {
		t.Fatalf("expected removed event, got %+v", event)
	}
	if snapshot.Count != 2 {
		t.Fatalf("expected count 2 after removal, got %d", snapshot.Count)
	}

	snapshot, event, err = svc.Clear(ctx, "cart-a")
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if event == nil || event.Type != enums.CartEventCleared {
		t.Fatalf("expected cleared event, got %+v", event)
	}
	if snapshot.Count != 0 || snapshot.Subtotal != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snapshot)
	}
}

func TestServiceRequiresCartID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, tomato())

	_, err := svc.Get(context.Background(), "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for blank cart id, got %v", err)
	}
}

func TestSnapshotFreeDeliveryAtThreshold(t *testing.T) {
	t.Parallel()

	pricey := models.Product{ID: 9, Name: "Exotic Basket", Price: 200, Unit: enums.ProductUnitPack, Category: enums.ProductCategoryExotic, IsActive: true}
	svc := newTestService(t, pricey)

	snapshot, _, err := svc.AddItem(context.Background(), "cart-a", 9, 1)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if snapshot.DeliveryFee != 0 {
		t.Fatalf("subtotal 200 qualifies for free delivery, fee=%d", snapshot.DeliveryFee)
	}
	if snapshot.FreeDeliveryRemaining != 0 {
		t.Fatalf("expected zero remaining at threshold, got %d", snapshot.FreeDeliveryRemaining)
	}
}
