package api

import "net/http"

// Server collect所有handler，router只認得Server
type Server struct {
	CartHandler    CartRoutes
	OrderHandler   OrderRoutes
	ProductHandler ProductRoutes
	UserHandler    UserRoutes
	SummaryHandler SummaryRoutes
}

type CartRoutes interface {
	GetCart(w http.ResponseWriter, r *http.Request)
	AddItem(w http.ResponseWriter, r *http.Request)
	RemoveItem(w http.ResponseWriter, r *http.Request)
	ClearCart(w http.ResponseWriter, r *http.Request)
}

type OrderRoutes interface {
	Checkout(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	ConfirmOrder(w http.ResponseWriter, r *http.Request)
	ShipOrder(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
}

type ProductRoutes interface {
	ListProducts(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
}

type UserRoutes interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
}

type SummaryRoutes interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
}

func NewServer(
	cartHandler CartRoutes,
	orderHandler OrderRoutes,
	productHandler ProductRoutes,
	userHandler UserRoutes,
	summaryHandler SummaryRoutes,
) *Server {
	return &Server{
		CartHandler:    cartHandler,
		OrderHandler:   orderHandler,
		ProductHandler: productHandler,
		UserHandler:    userHandler,
		SummaryHandler: summaryHandler,
	}
}
