package cart

import (
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
)

// 純轉換函式，不動輸入的cart，回傳新的cart
// 方便單獨測試，Store只是包一層lock

// Add 同商品已存在就數量+1，否則附加一行數量1
// 不檢查stock/active，這是presentation layer的責任
func Add(c model.Cart, p model.Product) model.Cart {
	lines := make([]model.CartLine, len(c.Lines))
	copy(lines, c.Lines)

	for i, line := range lines {
		if line.Product.ProductID == p.ProductID {
			lines[i].Quantity++
			return model.Cart{Lines: lines}
		}
	}

	lines = append(lines, model.CartLine{Product: p, Quantity: 1})
	return model.Cart{Lines: lines}
}

// Remove 商品不存在時不是錯誤，回傳等值的cart
func Remove(c model.Cart, productID int64) model.Cart {
	lines := make([]model.CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.Product.ProductID != productID {
			lines = append(lines, line)
		}
	}
	return model.Cart{Lines: lines}
}

// Total 每次讀取重算，不快取，才不會跟內容脫鉤
func Total(c model.Cart) decimal.Decimal {
	total := decimal.NewFromInt(0)
	for _, line := range c.Lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
