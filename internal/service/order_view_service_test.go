package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	mock_gateway "github.com/RoyceAzure/lab/storefront/internal/infra/gateway/mock"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/orderstatus"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrderViewServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	orderMock *mock_gateway.MockIOrderGateway
	svc       *OrderViewService
}

func (s *OrderViewServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orderMock = mock_gateway.NewMockIOrderGateway(s.ctrl)
	s.svc = NewOrderViewService(s.orderMock, nil)
}

func (s *OrderViewServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func orderWithStatus(id int64, status model.OrderStatus) *model.Order {
	return &model.Order{OrderID: id, UserID: 7, Status: status}
}

func (s *OrderViewServiceTestSuite) TestGetOrder_ActionsComputedFromStatus() {
	s.orderMock.EXPECT().GetOrder(gomock.Any(), int64(42)).
		Return(orderWithStatus(42, model.OrderStatusShipped), nil)

	view, errs := s.svc.GetOrder(context.Background(), 42)

	require.Nil(s.T(), errs)
	require.Equal(s.T(), []orderstatus.Action{orderstatus.ActionShip, orderstatus.ActionCancel}, view.Actions)
	require.Equal(s.T(), "EXPÉDIÉE", view.Badge.Label)
}

func (s *OrderViewServiceTestSuite) TestGetOrder_LowercaseStatusNormalized() {
	s.orderMock.EXPECT().GetOrder(gomock.Any(), int64(42)).
		Return(&model.Order{OrderID: 42, Status: "pending"}, nil)

	view, errs := s.svc.GetOrder(context.Background(), 42)

	require.Nil(s.T(), errs)
	require.Equal(s.T(), model.OrderStatusPending, view.Order.Status)
	require.Len(s.T(), view.Actions, 3)
}

func (s *OrderViewServiceTestSuite) TestConfirm_StaleStatusIsSilentNoOp() {
	// SHIPPED不允許confirm：不打mutation，回傳新鮮狀態讓view重算按鈕
	s.orderMock.EXPECT().GetOrder(gomock.Any(), int64(42)).
		Return(orderWithStatus(42, model.OrderStatusShipped), nil)

	view, errs := s.svc.Confirm(context.Background(), 42)

	require.Nil(s.T(), errs)
	require.Equal(s.T(), model.OrderStatusShipped, view.Order.Status)
	require.Equal(s.T(), []orderstatus.Action{orderstatus.ActionShip, orderstatus.ActionCancel}, view.Actions)
}

func (s *OrderViewServiceTestSuite) TestTerminalStatus_NoActionsNoMutation() {
	for _, status := range []model.OrderStatus{model.OrderStatusDelivered, model.OrderStatusCancelled} {
		s.orderMock.EXPECT().GetOrder(gomock.Any(), int64(42)).
			Return(orderWithStatus(42, status), nil).Times(3)

		for _, mutate := range []func(context.Context, int64) (*OrderView, apperr.FieldErrorMap){
			s.svc.Confirm, s.svc.Ship, s.svc.Cancel,
		} {
			view, errs := mutate(context.Background(), 42)
			require.Nil(s.T(), errs)
			require.Empty(s.T(), view.Actions)
		}
	}
}

func (s *OrderViewServiceTestSuite) TestShip_MutatesThenRefetches() {
	gomock.InOrder(
		s.orderMock.EXPECT().GetOrder(gomock.Any(), int64(42)).
			Return(orderWithStatus(42, model.OrderStatusConfirmed), nil),
		s.orderMock.EXPECT().UpdateOrderStatus(gomock.Any(), int64(42), model.OrderStatusShipped).
			Return(orderWithStatus(42, model.OrderStatusShipped), nil),
		s.orderMock.EXPECT().GetOrder(gomock.Any(), int64(42)).
			Return(orderWithStatus(42, model.OrderStatusShipped), nil),
	)

	view, errs := s.svc.Ship(context.Background(), 42)

	require.Nil(s.T(), errs)
	require.Equal(s.T(), model.OrderStatusShipped, view.Order.Status)
}

func (s *OrderViewServiceTestSuite) TestCancel_UsesCancelEndpoint() {
	gomock.InOrder(
		s.orderMock.EXPECT().GetOrder(gomock.Any(), int64(42)).
			Return(orderWithStatus(42, model.OrderStatusPending), nil),
		s.orderMock.EXPECT().CancelOrder(gomock.Any(), int64(42)).
			Return(nil),
		s.orderMock.EXPECT().GetOrder(gomock.Any(), int64(42)).
			Return(orderWithStatus(42, model.OrderStatusCancelled), nil),
	)

	view, errs := s.svc.Cancel(context.Background(), 42)

	require.Nil(s.T(), errs)
	require.Equal(s.T(), model.OrderStatusCancelled, view.Order.Status)
	require.Empty(s.T(), view.Actions)
}

func (s *OrderViewServiceTestSuite) TestMutationFailure_KeepsLastFetchedState() {
	gomock.InOrder(
		s.orderMock.EXPECT().GetOrder(gomock.Any(), int64(42)).
			Return(orderWithStatus(42, model.OrderStatusPending), nil),
		s.orderMock.EXPECT().UpdateOrderStatus(gomock.Any(), int64(42), model.OrderStatusConfirmed).
			Return(nil, &apperr.APIError{StatusCode: 409, Body: []byte(`{"message": "order already processed"}`)}),
	)

	view, errs := s.svc.Confirm(context.Background(), 42)

	// 失敗時狀態停在最後一次fetch的樣子，錯誤已normalize
	require.Equal(s.T(), "order already processed", errs.Global())
	require.Equal(s.T(), model.OrderStatusPending, view.Order.Status)
}

func (s *OrderViewServiceTestSuite) TestLoadFailure_NormalizedError() {
	s.orderMock.EXPECT().GetOrder(gomock.Any(), int64(42)).
		Return(nil, &apperr.APIError{StatusCode: 404, Body: []byte(`{"message": "order not found"}`)})

	view, errs := s.svc.GetOrder(context.Background(), 42)

	require.Nil(s.T(), view)
	require.Equal(s.T(), "order not found", errs.Global())
}

func TestOrderViewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderViewServiceTestSuite))
}
