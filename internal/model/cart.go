package model

// 購物車明細，一個商品一行
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// 購物車只存在於process記憶體內，不落地
// Lines維持加入順序
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
