package service

import (
	"context"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/infra/gateway"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/orderstatus"
	"github.com/rs/zerolog"
)

const (
	msgLoadOrderFault    = "failed to load order"
	msgUpdateStatusFault = "status update failed"
	msgCancelOrderFault  = "cancellation failed"
)

// OrderView 訂單明細view需要的一切：訂單本體、當前合法操作、顯示badge
type OrderView struct {
	Order   model.Order          `json:"order"`
	Actions []orderstatus.Action `json:"actions"`
	Badge   orderstatus.Badge    `json:"badge"`
}

type IOrderViewService interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*OrderView, apperr.FieldErrorMap)
	Confirm(ctx context.Context, orderID int64) (*OrderView, apperr.FieldErrorMap)
	Ship(ctx context.Context, orderID int64) (*OrderView, apperr.FieldErrorMap)
	Cancel(ctx context.Context, orderID int64) (*OrderView, apperr.FieldErrorMap)
}

// OrderViewService 狀態異動一律「打mutation→重新fetch」
// 本地狀態永遠不樂觀前進，只信任re-fetch回來的status
type OrderViewService struct {
	orders gateway.IOrderGateway
	logger *zerolog.Logger

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewOrderViewService(orders gateway.IOrderGateway, logger *zerolog.Logger) *OrderViewService {
	if orders == nil {
		panic("orders gateway cannot be nil")
	}
	return &OrderViewService{
		orders: orders,
		logger: logger,
		locks:  make(map[int64]*sync.Mutex),
	}
}

// 同一張訂單的mutation要序列化，跨訂單彼此不影響
func (s *OrderViewService) lockFor(orderID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[orderID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[orderID] = lock
	}
	return lock
}

func newOrderView(order model.Order) *OrderView {
	status := model.NormalizeOrderStatus(string(order.Status))
	order.Status = status
	return &OrderView{
		Order:   order,
		Actions: orderstatus.AllowedActions(status),
		Badge:   orderstatus.BadgeFor(status),
	}
}

func (s *OrderViewService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *OrderViewService) GetOrder(ctx context.Context, orderID int64) (*OrderView, apperr.FieldErrorMap) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, apperr.Normalize(err, msgLoadOrderFault)
	}
	return newOrderView(*order), nil
}

func (s *OrderViewService) Confirm(ctx context.Context, orderID int64) (*OrderView, apperr.FieldErrorMap) {
	return s.mutate(ctx, orderID, orderstatus.ActionConfirm)
}

func (s *OrderViewService) Ship(ctx context.Context, orderID int64) (*OrderView, apperr.FieldErrorMap) {
	return s.mutate(ctx, orderID, orderstatus.ActionShip)
}

func (s *OrderViewService) Cancel(ctx context.Context, orderID int64) (*OrderView, apperr.FieldErrorMap) {
	return s.mutate(ctx, orderID, orderstatus.ActionCancel)
}

func (s *OrderViewService) mutate(ctx context.Context, orderID int64, action orderstatus.Action) (*OrderView, apperr.FieldErrorMap) {
	lock := s.lockFor(orderID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, apperr.Normalize(err, msgLoadOrderFault)
	}
	currentView := newOrderView(*current)

	// 狀態已不允許該操作時是silent no-op
	// 回傳新鮮狀態讓view重算可用操作，不報錯也不重試
	if !orderstatus.Can(currentView.Order.Status, action) {
		if s.logger != nil {
			s.logger.Debug().
				Int64("order_id", orderID).
				Str("status", string(currentView.Order.Status)).
				Str("action", string(action)).
				Msg("stale action ignored")
		}
		return currentView, nil
	}

	fallback := msgUpdateStatusFault
	if action == orderstatus.ActionCancel {
		fallback = msgCancelOrderFault
		err = s.orders.CancelOrder(ctx, orderID)
	} else {
		_, err = s.orders.UpdateOrderStatus(ctx, orderID, orderstatus.Target(action))
	}
	if err != nil {
		// mutation失敗，狀態維持最後一次fetch的樣子
		return currentView, apperr.Normalize(err, fallback)
	}

	refreshed, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return currentView, apperr.Normalize(err, msgLoadOrderFault)
	}
	return newOrderView(*refreshed), nil
}

var _ IOrderViewService = (*OrderViewService)(nil)
