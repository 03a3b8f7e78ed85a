package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{productService: productService}
}

func productIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		api.ErrorJSON(w, http.StatusBadGateway, apperr.Normalize(err, "failed to load products"))
		return
	}
	api.SuccessJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromURL(r)
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid product id"))
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadGateway, apperr.Normalize(err, "failed to load product"))
		return
	}
	api.SuccessJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload model.ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid request body"))
		return
	}

	product, errs := h.productService.CreateProduct(r.Context(), payload)
	if errs.HasErrors() {
		api.ErrorJSON(w, http.StatusBadRequest, errs)
		return
	}
	api.SuccessJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromURL(r)
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid product id"))
		return
	}

	var payload model.ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid request body"))
		return
	}

	product, errs := h.productService.UpdateProduct(r.Context(), id, payload)
	if errs.HasErrors() {
		api.ErrorJSON(w, http.StatusBadRequest, errs)
		return
	}
	api.SuccessJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromURL(r)
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid product id"))
		return
	}

	if errs := h.productService.DeleteProduct(r.Context(), id); errs.HasErrors() {
		api.ErrorJSON(w, http.StatusBadGateway, errs)
		return
	}
	api.SuccessJSON(w, http.StatusNoContent, nil)
}
