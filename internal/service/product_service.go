package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/infra/gateway"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/validation"
	"github.com/rs/zerolog"
)

const (
	msgCreateProductFault = "product creation failed"
	msgUpdateProductFault = "product update failed"
	msgDeleteProductFault = "product deletion failed"
)

type IProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, productID int64) (*model.Product, error)
	CreateProduct(ctx context.Context, payload model.ProductPayload) (*model.Product, apperr.FieldErrorMap)
	UpdateProduct(ctx context.Context, productID int64, payload model.ProductPayload) (*model.Product, apperr.FieldErrorMap)
	DeleteProduct(ctx context.Context, productID int64) apperr.FieldErrorMap
}

// ProductService 先client端驗證再打catalog，後端錯誤統一normalize
// cache可為nil(未設定redis時)，所有cache操作都是best effort
type ProductService struct {
	products gateway.IProductGateway
	cache    *redis_repo.ProductCache
	logger   *zerolog.Logger
}

func NewProductService(products gateway.IProductGateway, cache *redis_repo.ProductCache, logger *zerolog.Logger) *ProductService {
	if products == nil {
		panic("products gateway cannot be nil")
	}
	return &ProductService{products: products, cache: cache, logger: logger}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productID)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil && s.logger != nil {
			s.logger.Warn().Err(err).Int64("product_id", productID).Msg("product cache read failed")
		}
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, *product); err != nil && s.logger != nil {
			s.logger.Warn().Err(err).Int64("product_id", productID).Msg("product cache write failed")
		}
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, payload model.ProductPayload) (*model.Product, apperr.FieldErrorMap) {
	if errs := validation.ValidateProductPayload(payload); errs.HasErrors() {
		return nil, errs
	}

	product, err := s.products.CreateProduct(ctx, trimPayload(payload))
	if err != nil {
		return nil, apperr.Normalize(err, msgCreateProductFault)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID int64, payload model.ProductPayload) (*model.Product, apperr.FieldErrorMap) {
	if errs := validation.ValidateProductPayload(payload); errs.HasErrors() {
		return nil, errs
	}

	product, err := s.products.UpdateProduct(ctx, productID, trimPayload(payload))
	if err != nil {
		return nil, apperr.Normalize(err, msgUpdateProductFault)
	}

	s.invalidateCache(ctx, productID)
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID int64) apperr.FieldErrorMap {
	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return apperr.Normalize(err, msgDeleteProductFault)
	}

	s.invalidateCache(ctx, productID)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context, productID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, productID); err != nil && s.logger != nil {
		s.logger.Warn().Err(err).Int64("product_id", productID).Msg("product cache invalidate failed")
	}
}

// 跟表單一樣，送出前trim文字欄位
func trimPayload(p model.ProductPayload) model.ProductPayload {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageUrl = strings.TrimSpace(p.ImageUrl)
	return p
}

var _ IProductService = (*ProductService)(nil)
