package dto

type CheckoutRequest struct {
	UserID          int64  `json:"userId"`
	ShippingAddress string `json:"shippingAddress"`
}

type CheckoutResponse struct {
	OrderID int64 `json:"orderId"`
}
