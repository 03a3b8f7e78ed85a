package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/redis/go-redis/v9"
)

// ProductCache 商品目錄的read-through快取
// 只快取remote catalog的讀取，購物車本身不落redis
type ProductCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewProductCache(rdb *redis.Client, prefix string, ttl time.Duration) *ProductCache {
	return &ProductCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *ProductCache) key(productID int64) string {
	return fmt.Sprintf("%s:product:%d", c.prefix, productID)
}

// Get 快取miss回傳(nil, nil)，不是錯誤
func (c *ProductCache) Get(ctx context.Context, productID int64) (*model.Product, error) {
	raw, err := c.rdb.Get(ctx, c.key(productID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("獲取商品快取失敗: %w", err)
	}

	var product model.Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		return nil, fmt.Errorf("反序列化商品快取失敗: %w", err)
	}
	return &product, nil
}

func (c *ProductCache) Set(ctx context.Context, product model.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("序列化商品失敗: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key(product.ProductID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("保存商品快取失敗: %w", err)
	}
	return nil
}

// Invalidate 商品修改/刪除後呼叫，key不存在也視為成功
func (c *ProductCache) Invalidate(ctx context.Context, productID int64) error {
	if err := c.rdb.Del(ctx, c.key(productID)).Err(); err != nil {
		return fmt.Errorf("刪除商品快取失敗: %w", err)
	}
	return nil
}
