package model

import "github.com/shopspring/decimal"

type ProductCategory string

const (
	CategoryElectronics ProductCategory = "ELECTRONICS"
	CategoryBooks       ProductCategory = "BOOKS"
	CategoryFood        ProductCategory = "FOOD"
	CategoryOther       ProductCategory = "OTHER"
)

var productCategories = map[ProductCategory]struct{}{
	CategoryElectronics: {},
	CategoryBooks:       {},
	CategoryFood:        {},
	CategoryOther:       {},
}

func (c ProductCategory) IsValid() bool {
	_, ok := productCategories[c]
	return ok
}

// 商品由product service管理，storefront只讀取不修改
type Product struct {
	ProductID   int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    ProductCategory `json:"category"`
	ImageUrl    string          `json:"imageUrl,omitempty"`
	Active      bool            `json:"active"`
}

// 建立/修改商品用的payload
// Price與Stock用指標區分「未填」與「填0」
type ProductPayload struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    string           `json:"category"`
	ImageUrl    string           `json:"imageUrl,omitempty"`
	Active      bool             `json:"active"`
}
