package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/freemanindumentaria/storefront-backend/api/controllers"
	"github.com/freemanindumentaria/storefront-backend/api/middleware"
	cartsvc "github.com/freemanindumentaria/storefront-backend/internal/cart"
	"github.com/freemanindumentaria/storefront-backend/internal/delivery"
	"github.com/freemanindumentaria/storefront-backend/pkg/config"
	"github.com/freemanindumentaria/storefront-backend/pkg/logger"
	"github.com/freemanindumentaria/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient redis.Pinger,
	cartService cartsvc.Service,
	deliveryService delivery.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogProducts())
			r.Get("/size-chart", controllers.CatalogSizeChart())
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Delete("/items/{index}", controllers.CartRemoveItem(cartService, logg))
			r.Patch("/items/{index}", controllers.CartUpdateQuantity(cartService, logg))
		})

		r.Post("/sizing/recommend", controllers.SizingRecommend(logg))
		r.Post("/delivery/quote", controllers.DeliveryQuote(deliveryService, logg))
		r.Post("/checkout/whatsapp", controllers.CheckoutWhatsApp(cartService, cfg.WhatsApp.Phone, logg))
	})

	return r
}
