package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	mock_gateway "github.com/RoyceAzure/lab/storefront/internal/infra/gateway/mock"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validProductPayload() model.ProductPayload {
	price := decimal.RequireFromString("49.90")
	stock := 10
	return model.ProductPayload{
		Name:        "  Clavier mécanique  ",
		Description: "Clavier mécanique rétroéclairé AZERTY",
		Price:       &price,
		Stock:       &stock,
		Category:    "ELECTRONICS",
		Active:      true,
	}
}

func TestProductService_CreateProduct_ValidationShortCircuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	productMock := mock_gateway.NewMockIProductGateway(ctrl)
	svc := NewProductService(productMock, nil, nil)

	payload := validProductPayload()
	payload.Name = "ab"

	// 驗證失敗就不會打catalog，mock不設EXPECT
	product, errs := svc.CreateProduct(context.Background(), payload)

	require.Nil(t, product)
	require.Contains(t, errs, "name")
}

func TestProductService_CreateProduct_TrimsBeforeSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	productMock := mock_gateway.NewMockIProductGateway(ctrl)
	svc := NewProductService(productMock, nil, nil)

	var sent model.ProductPayload
	productMock.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p model.ProductPayload) (*model.Product, error) {
			sent = p
			return &model.Product{ProductID: 1, Name: p.Name}, nil
		})

	product, errs := svc.CreateProduct(context.Background(), validProductPayload())

	require.Nil(t, errs)
	require.Equal(t, "Clavier mécanique", sent.Name)
	require.Equal(t, int64(1), product.ProductID)
}

func TestProductService_CreateProduct_BackendErrorsNormalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	productMock := mock_gateway.NewMockIProductGateway(ctrl)
	svc := NewProductService(productMock, nil, nil)

	productMock.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		Return(nil, &apperr.APIError{
			StatusCode: 400,
			Body:       []byte(`{"errors": {"name": "already exists"}}`),
		})

	product, errs := svc.CreateProduct(context.Background(), validProductPayload())

	require.Nil(t, product)
	require.Equal(t, apperr.FieldErrorMap{"name": "already exists"}, errs)
}

func TestProductService_DeleteProduct_OpaqueFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	productMock := mock_gateway.NewMockIProductGateway(ctrl)
	svc := NewProductService(productMock, nil, nil)

	productMock.EXPECT().
		DeleteProduct(gomock.Any(), int64(1)).
		Return(&apperr.APIError{StatusCode: 502, Body: []byte(`<html>bad gateway</html>`)})

	errs := svc.DeleteProduct(context.Background(), 1)

	require.Equal(t, "product deletion failed", errs.Global())
}

func TestProductService_GetProduct_NoCacheConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	productMock := mock_gateway.NewMockIProductGateway(ctrl)
	svc := NewProductService(productMock, nil, nil)

	productMock.EXPECT().
		GetProduct(gomock.Any(), int64(5)).
		Return(&model.Product{ProductID: 5, Name: "Roman"}, nil)

	product, err := svc.GetProduct(context.Background(), 5)

	require.NoError(t, err)
	require.Equal(t, "Roman", product.Name)
}
