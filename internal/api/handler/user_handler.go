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

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		api.ErrorJSON(w, http.StatusBadGateway, apperr.Normalize(err, "failed to load users"))
		return
	}
	api.SuccessJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid user id"))
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadGateway, apperr.Normalize(err, "failed to load user"))
		return
	}
	api.SuccessJSON(w, http.StatusOK, user)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.Global("invalid request body"))
		return
	}

	user, errs := h.userService.CreateUser(r.Context(), req)
	if errs.HasErrors() {
		api.ErrorJSON(w, http.StatusBadRequest, errs)
		return
	}
	api.SuccessJSON(w, http.StatusCreated, user)
}
