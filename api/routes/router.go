package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/api/controllers"
	cartcontrollers "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/api/controllers/cart"
	checkoutcontrollers "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/api/controllers/checkout"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/api/middleware"
	cartsvc "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/cart"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/catalog"
	checkoutsvc "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/checkout"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/config"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/db"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/logger"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/metrics"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	cartTokens *cartsvc.TokenManager,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(catalogService, logg))
			r.Get("/{productId}", controllers.ProductDetail(catalogService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartToken(cartTokens, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.Fetch(cartService, logg))
				r.Delete("/", cartcontrollers.Clear(cartService, logg))
				r.Route("/items", func(r chi.Router) {
					r.Post("/", cartcontrollers.AddItem(cartService, logg))
					r.Patch("/{productId}", cartcontrollers.UpdateItem(cartService, logg))
					r.Delete("/{productId}", cartcontrollers.RemoveItem(cartService, logg))
				})
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/quote", checkoutcontrollers.Quote(checkoutService, logg))
				r.Post("/coupon", checkoutcontrollers.ApplyCoupon(checkoutService, logg))
				r.Delete("/coupon", checkoutcontrollers.RemoveCoupon(checkoutService, logg))
				r.Post("/place-order", checkoutcontrollers.PlaceOrder(checkoutService, logg))
				r.Get("/orders/{orderId}", checkoutcontrollers.Order(checkoutService, logg))
			})
		})
	})

	return r
}
