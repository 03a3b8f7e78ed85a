package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/cart"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartStore      *cart.Store
	productService service.IProductService
}

func NewCartHandler(cartStore *cart.Store, productService service.IProductService) *CartHandler {
	if cartStore == nil {
		panic("cartStore cannot be nil")
	}
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &CartHandler{cartStore: cartStore, productService: productService}
}

func (h *CartHandler) cartResponse() dto.CartResponse {
	snapshot := h.cartStore.Snapshot()
	return dto.CartResponse{
		Lines: snapshot.Lines,
		Total: cart.Total(snapshot).String(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	api.SuccessJSON(w, http.StatusOK, h.cartResponse())
}

// AddItem 以productId加入購物車，先跟catalog要完整商品資料
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid request body"))
		return
	}

	product, err := h.productService.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadGateway, apperr.Normalize(err, "failed to load product"))
		return
	}

	h.cartStore.Add(*product)
	api.SuccessJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid product id"))
		return
	}

	// 不在購物車內也回成功，remove是冪等操作
	h.cartStore.Remove(productID)
	api.SuccessJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cartStore.Clear()
	api.SuccessJSON(w, http.StatusOK, h.cartResponse())
}
