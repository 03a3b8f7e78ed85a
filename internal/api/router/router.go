package router

import (
	"github.com/RoyceAzure/lab/storefront/internal/api"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", server.CartHandler.GetCart)
			r.Delete("/", server.CartHandler.ClearCart)
			r.Post("/items", server.CartHandler.AddItem)
			r.Delete("/items/{productID}", server.CartHandler.RemoveItem)
		})

		r.Post("/checkout", server.OrderHandler.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", server.OrderHandler.ListOrders)
			r.Get("/{id}", server.OrderHandler.GetOrder)
			r.Post("/{id}/confirm", server.OrderHandler.ConfirmOrder)
			r.Post("/{id}/ship", server.OrderHandler.ShipOrder)
			r.Delete("/{id}", server.OrderHandler.CancelOrder)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Get("/{id}", server.ProductHandler.GetProduct)
			r.Post("/", server.ProductHandler.CreateProduct)
			r.Put("/{id}", server.ProductHandler.UpdateProduct)
			r.Delete("/{id}", server.ProductHandler.DeleteProduct)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", server.UserHandler.ListUsers)
			r.Get("/{id}", server.UserHandler.GetUser)
			r.Post("/", server.UserHandler.CreateUser)
		})

		r.Get("/summary", server.SummaryHandler.GetSummary)
	})

	return r
}
