package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	cartsvc "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/cart"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/catalog"
	checkoutsvc "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/checkout"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/config"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/db/models"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubCatalog struct{}

func (stubCatalog) ListProducts(context.Context, catalog.ListProductsInput) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (stubCatalog) GetProduct(context.Context, int) (*models.Product, error) {
	return &models.Product{ID: 1, Name: "Tomato (Desi)", Price: 30, IsActive: true}, nil
}

func (stubCatalog) GetByID(context.Context, int) (*models.Product, error) {
	return &models.Product{ID: 1, Name: "Tomato (Desi)", Price: 30, IsActive: true}, nil
}

type stubCart struct{}

func (stubCart) Get(context.Context, string) (*cartsvc.Snapshot, error) {
	return &cartsvc.Snapshot{Entries: []cartsvc.Entry{}}, nil
}

func (stubCart) AddItem(context.Context, string, int, int) (*cartsvc.Snapshot, *cartsvc.Event, error) {
	return &cartsvc.Snapshot{Entries: []cartsvc.Entry{}}, nil, nil
}

func (stubCart) UpdateItem(context.Context, string, int, int) (*cartsvc.Snapshot, *cartsvc.Event, error) {
	return &cartsvc.Snapshot{Entries: []cartsvc.Entry{}}, nil, nil
}

func (stubCart) RemoveItem(context.Context, string, int) (*cartsvc.Snapshot, *cartsvc.Event, error) {
	return &cartsvc.Snapshot{Entries: []cartsvc.Entry{}}, nil, nil
}

func (stubCart) Clear(context.Context, string) (*cartsvc.Snapshot, *cartsvc.Event, error) {
	return &cartsvc.Snapshot{Entries: []cartsvc.Entry{}}, nil, nil
}

type stubCheckout struct{}

func (stubCheckout) GetQuote(context.Context, string, checkoutsvc.QuoteInput) (*checkoutsvc.Quote, error) {
	return &checkoutsvc.Quote{}, nil
}

func (stubCheckout) ApplyCoupon(context.Context, string, string) (*checkoutsvc.Quote, error) {
	return &checkoutsvc.Quote{}, nil
}

func (stubCheckout) RemoveCoupon(context.Context, string) (*checkoutsvc.Quote, error) {
	return &checkoutsvc.Quote{}, nil
}

func (stubCheckout) PlaceOrder(context.Context, string) (*checkoutsvc.Order, error) {
	return &checkoutsvc.Order{ID: "order-1"}, nil
}

func (stubCheckout) GetOrder(context.Context, string) (*checkoutsvc.Order, error) {
	return &checkoutsvc.Order{ID: "order-1"}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"

	tokens, err := cartsvc.NewTokenManager(config.CartTokenConfig{
		Secret:     "router-test-secret",
		Issuer:     "freshmandi",
		TTLMinutes: 60,
	})
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	registry := prometheus.NewRegistry()
	return NewRouter(
		cfg,
		nil,
		stubPinger{},
		stubPinger{},
		registry,
		metrics.NewHTTPMetrics(registry),
		tokens,
		stubCatalog{},
		stubCart{},
		stubCheckout{},
	)
}

func TestRouterHealthAndMetrics(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestRouterServesCatalog(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterMintsCartToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if resp.Header().Get("X-Cart-Token") == "" {
		t.Fatal("expected a minted cart token for anonymous requests")
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
