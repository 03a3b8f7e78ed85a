package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
)

type IProductGateway interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, productID int64) (*model.Product, error)
	CreateProduct(ctx context.Context, payload model.ProductPayload) (*model.Product, error)
	UpdateProduct(ctx context.Context, productID int64, payload model.ProductPayload) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

type ProductGateway struct {
	client
}

func NewProductGateway(baseURL string, timeout time.Duration) *ProductGateway {
	return &ProductGateway{client: newClient(baseURL, timeout)}
}

func (g *ProductGateway) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := g.do(ctx, http.MethodGet, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *ProductGateway) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	var product model.Product
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/%d", productID), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *ProductGateway) CreateProduct(ctx context.Context, payload model.ProductPayload) (*model.Product, error) {
	var product model.Product
	if err := g.do(ctx, http.MethodPost, "", payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *ProductGateway) UpdateProduct(ctx context.Context, productID int64, payload model.ProductPayload) (*model.Product, error) {
	var product model.Product
	if err := g.do(ctx, http.MethodPut, fmt.Sprintf("/%d", productID), payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *ProductGateway) DeleteProduct(ctx context.Context, productID int64) error {
	return g.do(ctx, http.MethodDelete, fmt.Sprintf("/%d", productID), nil, nil)
}

var _ IProductGateway = (*ProductGateway)(nil)
