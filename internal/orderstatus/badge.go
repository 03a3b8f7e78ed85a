package orderstatus

import "github.com/RoyceAzure/lab/storefront/internal/model"

// 狀態顯示資訊，給presentation layer畫badge用
type Badge struct {
	Label string `json:"label"`
	Css   string `json:"css"`
}

var statusBadges = map[model.OrderStatus]Badge{
	model.OrderStatusPending:   {Label: "EN ATTENTE", Css: "badge badge-yellow"},
	model.OrderStatusConfirmed: {Label: "CONFIRMÉE", Css: "badge badge-blue"},
	model.OrderStatusShipped:   {Label: "EXPÉDIÉE", Css: "badge badge-purple"},
	model.OrderStatusDelivered: {Label: "LIVRÉE", Css: "badge badge-green"},
	model.OrderStatusCancelled: {Label: "ANNULÉE", Css: "badge badge-red"},
}

// BadgeFor 未知狀態照原字串顯示，不報錯
func BadgeFor(status model.OrderStatus) Badge {
	if status == "" {
		return Badge{Label: "UNKNOWN", Css: "badge"}
	}
	if badge, ok := statusBadges[status]; ok {
		return badge
	}
	return Badge{Label: string(status), Css: "badge"}
}
