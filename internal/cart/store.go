package cart

import (
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
)

// Store 全process唯一的購物車
// 每個操作以當下snapshot同步套用，後寫覆蓋先寫
type Store struct {
	mu   sync.RWMutex
	cart model.Cart
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = Add(s.cart, p)
}

func (s *Store) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = Remove(s.cart, productID)
}

// Clear 只在訂單成功建立後或使用者明確要求時呼叫
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = model.Cart{}
}

// Snapshot 回傳複本，呼叫端拿到的cart不會再被Store改動
func (s *Store) Snapshot() model.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := make([]model.CartLine, len(s.cart.Lines))
	copy(lines, s.cart.Lines)
	return model.Cart{Lines: lines}
}

func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Total(s.cart)
}

func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.IsEmpty()
}
