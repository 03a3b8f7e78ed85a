package orderstatus

import "github.com/RoyceAzure/lab/storefront/internal/model"

// 訂單狀態的合法操作表
// 散在各view重算gating booleans容易彼此不同步，集中到這一張表
// DELIVERED / CANCELLED為終態，不提供任何操作

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionShip    Action = "ship"
	ActionCancel  Action = "cancel"
)

// actions依固定順序列出，view直接照這個順序render按鈕
var actionOrder = []Action{ActionConfirm, ActionShip, ActionCancel}

// 每個action允許的當前狀態
// confirm: 已確認再確認視為冪等，允許
// ship: 已出貨再出貨視為no-op，允許
// 後端是否真的當成no-op尚待跟order service確認
var allowedFrom = map[Action]map[model.OrderStatus]struct{}{
	ActionConfirm: {
		model.OrderStatusPending:   {},
		model.OrderStatusConfirmed: {},
	},
	ActionShip: {
		model.OrderStatusPending:   {},
		model.OrderStatusConfirmed: {},
		model.OrderStatusShipped:   {},
	},
	ActionCancel: {
		model.OrderStatusPending:   {},
		model.OrderStatusConfirmed: {},
		model.OrderStatusShipped:   {},
	},
}

// action執行成功後的目標狀態
var targetStatus = map[Action]model.OrderStatus{
	ActionConfirm: model.OrderStatusConfirmed,
	ActionShip:    model.OrderStatusShipped,
	ActionCancel:  model.OrderStatusCancelled,
}

// Can 未知的status或action一律不允許
func Can(status model.OrderStatus, action Action) bool {
	from, ok := allowedFrom[action]
	if !ok {
		return false
	}
	_, ok = from[status]
	return ok
}

// AllowedActions 終態回傳空slice
func AllowedActions(status model.OrderStatus) []Action {
	actions := make([]Action, 0, len(actionOrder))
	for _, action := range actionOrder {
		if Can(status, action) {
			actions = append(actions, action)
		}
	}
	return actions
}

func IsTerminal(status model.OrderStatus) bool {
	return status == model.OrderStatusDelivered || status == model.OrderStatusCancelled
}

// Target 回傳action成功後的狀態，未知action回傳空字串
func Target(action Action) model.OrderStatus {
	return targetStatus[action]
}
