package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
)

type IOrderGateway interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*model.Order, error)
	CreateOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID int64) error
}

type OrderGateway struct {
	client
}

func NewOrderGateway(baseURL string, timeout time.Duration) *OrderGateway {
	return &OrderGateway{client: newClient(baseURL, timeout)}
}

func (g *OrderGateway) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := g.do(ctx, http.MethodGet, "", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *OrderGateway) GetOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	var order model.Order
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/%d", orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *OrderGateway) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error) {
	var order model.Order
	if err := g.do(ctx, http.MethodPost, "", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus 更新後回傳的order不可信任為最新，呼叫端仍需re-fetch
func (g *OrderGateway) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	var order model.Order
	body := map[string]model.OrderStatus{"status": status}
	if err := g.do(ctx, http.MethodPut, fmt.Sprintf("/%d/status", orderID), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *OrderGateway) CancelOrder(ctx context.Context, orderID int64) error {
	return g.do(ctx, http.MethodDelete, fmt.Sprintf("/%d", orderID), nil, nil)
}

var _ IOrderGateway = (*OrderGateway)(nil)
