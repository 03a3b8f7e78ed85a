package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // 待處理
	OrderStatusConfirmed OrderStatus = "CONFIRMED" // 已確認
	OrderStatusShipped   OrderStatus = "SHIPPED"   // 已出貨
	OrderStatusDelivered OrderStatus = "DELIVERED" // 已送達
	OrderStatusCancelled OrderStatus = "CANCELLED" // 已取消
)

// 後端status大小寫不一定一致，統一轉大寫再比對
func NormalizeOrderStatus(s string) OrderStatus {
	return OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
}

// 訂單由order service持有，storefront每次都要重新fetch，不可信任本地副本
type Order struct {
	OrderID         int64           `json:"id"`
	UserID          int64           `json:"userId"`
	ShippingAddress string          `json:"shippingAddress"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	OrderDate       time.Time       `json:"orderDate"`
	Status          OrderStatus     `json:"status"`
}

type OrderItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// 下單請求，送出前由購物車快照一次性組成，之後不再修改
type OrderRequest struct {
	UserID          int64              `json:"userId"`
	ShippingAddress string             `json:"shippingAddress"`
	Items           []OrderRequestItem `json:"items"`
}

type OrderRequestItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}
