package service

import (
	"context"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/cart"
	"github.com/RoyceAzure/lab/storefront/internal/infra/gateway"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/validation"
	"github.com/rs/zerolog"
)

// 提交流程的階段
// Idle → Validating → (Invalid | Submitting) → (Succeeded | Failed)
type CheckoutPhase string

const (
	CheckoutPhaseIdle       CheckoutPhase = "IDLE"
	CheckoutPhaseValidating CheckoutPhase = "VALIDATING"
	CheckoutPhaseInvalid    CheckoutPhase = "INVALID"
	CheckoutPhaseSubmitting CheckoutPhase = "SUBMITTING"
	CheckoutPhaseSucceeded  CheckoutPhase = "SUCCEEDED"
	CheckoutPhaseFailed     CheckoutPhase = "FAILED"
)

const (
	msgNoUserSelected   = "no user selected"
	msgCartIsEmpty      = "cart is empty"
	msgSubmitInFlight   = "a submission is already in progress"
	msgCreateOrderFault = "order creation failed"
)

type ICheckoutService interface {
	// Submit 成功回傳order(取id導頁用)且errs為nil
	// 失敗回傳非空FieldErrorMap，購物車保持原樣
	Submit(ctx context.Context, userID int64, shippingAddress string) (*model.Order, apperr.FieldErrorMap)
	Phase() CheckoutPhase
	LastErrors() apperr.FieldErrorMap
}

type CheckoutService struct {
	cartStore *cart.Store
	orders    gateway.IOrderGateway
	logger    *zerolog.Logger

	mu       sync.Mutex
	phase    CheckoutPhase
	lastErrs apperr.FieldErrorMap
	inFlight bool
}

func NewCheckoutService(cartStore *cart.Store, orders gateway.IOrderGateway, logger *zerolog.Logger) *CheckoutService {
	if cartStore == nil {
		panic("cartStore cannot be nil")
	}
	if orders == nil {
		panic("orders gateway cannot be nil")
	}
	return &CheckoutService{
		cartStore: cartStore,
		orders:    orders,
		logger:    logger,
		phase:     CheckoutPhaseIdle,
	}
}

func (s *CheckoutService) Phase() CheckoutPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *CheckoutService) LastErrors() apperr.FieldErrorMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErrs
}

func (s *CheckoutService) setPhase(phase CheckoutPhase, errs apperr.FieldErrorMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
	s.lastErrs = errs
}

func (s *CheckoutService) Submit(ctx context.Context, userID int64, shippingAddress string) (*model.Order, apperr.FieldErrorMap) {
	// 同一個instance同時只允許一筆提交，重複呼叫直接拒絕不排隊
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, apperr.Global(msgSubmitInFlight)
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	// 前置條件，不走validation就先擋掉
	if userID <= 0 {
		errs := apperr.Global(msgNoUserSelected)
		s.setPhase(CheckoutPhaseInvalid, errs)
		return nil, errs
	}

	snapshot := s.cartStore.Snapshot()
	if snapshot.IsEmpty() {
		errs := apperr.Global(msgCartIsEmpty)
		s.setPhase(CheckoutPhaseInvalid, errs)
		return nil, errs
	}

	s.setPhase(CheckoutPhaseValidating, nil)
	trimmedAddress, errs := validation.ValidateShippingAddress(shippingAddress)
	if errs.HasErrors() {
		s.setPhase(CheckoutPhaseInvalid, errs)
		return nil, errs
	}

	// 從snapshot組request，組完即不再改動
	req := model.OrderRequest{
		UserID:          userID,
		ShippingAddress: trimmedAddress,
		Items:           make([]model.OrderRequestItem, 0, len(snapshot.Lines)),
	}
	for _, line := range snapshot.Lines {
		req.Items = append(req.Items, model.OrderRequestItem{
			ProductID: line.Product.ProductID,
			Quantity:  line.Quantity,
		})
	}

	s.setPhase(CheckoutPhaseSubmitting, nil)
	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		// 送單失敗購物車不動，讓使用者直接重試
		normalized := apperr.Normalize(err, msgCreateOrderFault)
		s.setPhase(CheckoutPhaseFailed, normalized)
		if s.logger != nil {
			s.logger.Warn().Err(err).Int64("user_id", userID).Msg("create order failed")
		}
		return nil, normalized
	}

	// 只有server確認成功才清空購物車，絕不樂觀清除
	s.cartStore.Clear()
	s.setPhase(CheckoutPhaseSucceeded, nil)
	if s.logger != nil {
		s.logger.Info().Int64("order_id", order.OrderID).Int64("user_id", userID).Msg("order created")
	}
	return order, nil
}

var _ ICheckoutService = (*CheckoutService)(nil)
