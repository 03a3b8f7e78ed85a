package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	checkoutService  service.ICheckoutService
	orderViewService service.IOrderViewService
}

func NewOrderHandler(checkoutService service.ICheckoutService, orderViewService service.IOrderViewService) *OrderHandler {
	if checkoutService == nil {
		panic("checkoutService cannot be nil")
	}
	if orderViewService == nil {
		panic("orderViewService cannot be nil")
	}
	return &OrderHandler{checkoutService: checkoutService, orderViewService: orderViewService}
}

func orderIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid request body"))
		return
	}

	order, errs := h.checkoutService.Submit(r.Context(), req.UserID, req.ShippingAddress)
	if errs.HasErrors() {
		// FAILED是remote端出錯，其餘(前置條件/驗證/in-flight)是client端問題
		status := http.StatusBadRequest
		if h.checkoutService.Phase() == service.CheckoutPhaseFailed {
			status = http.StatusBadGateway
		}
		api.ErrorJSON(w, status, errs)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, dto.CheckoutResponse{OrderID: order.OrderID})
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderViewService.ListOrders(r.Context())
	if err != nil {
		api.ErrorJSON(w, http.StatusBadGateway, apperr.Normalize(err, "failed to load orders"))
		return
	}
	api.SuccessJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderIDFromURL(r)
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid order id"))
		return
	}

	view, errs := h.orderViewService.GetOrder(r.Context(), id)
	if errs.HasErrors() {
		api.ErrorJSON(w, http.StatusBadGateway, errs)
		return
	}
	api.SuccessJSON(w, http.StatusOK, view)
}

func (h *OrderHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.orderViewService.Confirm)
}

func (h *OrderHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.orderViewService.Ship)
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.orderViewService.Cancel)
}

type mutateFunc func(ctx context.Context, orderID int64) (*service.OrderView, apperr.FieldErrorMap)

func (h *OrderHandler) mutate(w http.ResponseWriter, r *http.Request, fn mutateFunc) {
	id, ok := orderIDFromURL(r)
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid order id"))
		return
	}

	view, errs := fn(r.Context(), id)
	if errs.HasErrors() {
		// view為nil表示連訂單都載不到(remote fault)
		// 有view則是mutation被遠端拒絕，狀態停在最後一次fetch
		if view == nil {
			api.ErrorJSON(w, http.StatusBadGateway, errs)
			return
		}
		api.ErrorJSON(w, http.StatusConflict, errs)
		return
	}
	api.SuccessJSON(w, http.StatusOK, view)
}
