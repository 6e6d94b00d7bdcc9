package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/luxecuffs/storefront/internal/storefront/httpx/middlewares"
)

// NewRouter mounts the storefront API.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.EchoRequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", handler.ListProducts)
		r.Get("/products/featured", handler.FeaturedProducts)
		r.Get("/products/{id}", handler.GetProduct)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", handler.AdminLogin)
			r.Post("/products", handler.CreateProduct)
			r.Put("/products/{id}", handler.UpdateProduct)
			r.Delete("/products/{id}", handler.DeleteProduct)
			r.Get("/orders", handler.ListOrders)
			r.Get("/orders/{id}", handler.GetOrderDetail)
		})

		r.Post("/create-payment-intent", handler.CreatePaymentIntent)
		r.Post("/orders", handler.CreateOrder)
		r.Post("/payment-success", handler.PaymentSuccess)
	})

	return r
}
