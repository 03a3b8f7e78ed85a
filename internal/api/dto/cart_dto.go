package dto

import "github.com/RoyceAzure/lab/storefront/internal/model"

type AddToCartRequest struct {
	ProductID int64 `json:"productId"`
}

type CartResponse struct {
	Lines []model.CartLine `json:"lines"`
	Total string           `json:"total"`
}
