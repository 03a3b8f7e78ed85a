package service

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/infra/gateway"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"golang.org/x/sync/errgroup"
)

// StorefrontSummary 首頁用的彙總數字
type StorefrontSummary struct {
	UserCount    int `json:"userCount"`
	ProductCount int `json:"productCount"`
	OrderCount   int `json:"orderCount"`
}

type ISummaryService interface {
	GetSummary(ctx context.Context) (*StorefrontSummary, error)
}

type SummaryService struct {
	users    gateway.IUserGateway
	products gateway.IProductGateway
	orders   gateway.IOrderGateway
}

func NewSummaryService(users gateway.IUserGateway, products gateway.IProductGateway, orders gateway.IOrderGateway) *SummaryService {
	if users == nil {
		panic("users gateway cannot be nil")
	}
	if products == nil {
		panic("products gateway cannot be nil")
	}
	if orders == nil {
		panic("orders gateway cannot be nil")
	}
	return &SummaryService{users: users, products: products, orders: orders}
}

// GetSummary 三個remote並行撈，任一失敗整個失敗
func (s *SummaryService) GetSummary(ctx context.Context) (*StorefrontSummary, error) {
	var (
		users    []model.User
		products []model.Product
		orders   []model.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.ListUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.products.ListProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.orders.ListOrders(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &StorefrontSummary{
		UserCount:    len(users),
		ProductCount: len(products),
		OrderCount:   len(orders),
	}, nil
}

var _ ISummaryService = (*SummaryService)(nil)
