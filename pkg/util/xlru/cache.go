package xlru

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// maxSize 缓存最大条目数上限
const maxSize = 1 << 24

// Stats 缓存统计快照
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// Cache 泛型 LRU 缓存，所有方法并发安全。必须通过 [New] 创建。
type Cache[K comparable, V any] struct {
	lru    *lru.Cache[K, V]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New 创建容量为 size 的缓存
func New[K comparable, V any](size int) (*Cache[K, V], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if size > maxSize {
		return nil, ErrSizeExceedsMax
	}
	l, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{lru: l}, nil
}

// Get 获取缓存值并计入命中统计
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set 写入缓存，返回是否淘汰了旧条目
func (c *Cache[K, V]) Set(key K, value V) bool {
	return c.lru.Add(key, value)
}

// GetOrCompute 命中时返回缓存值，否则调用 fn 计算并写入。
// 并发未命中时 fn 可能被调用多次，结果以最后一次写入为准。
func (c *Cache[K, V]) GetOrCompute(key K, fn func(K) V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := fn(key)
	c.lru.Add(key, v)
	return v
}

// Purge 清空所有条目，不重置统计
func (c *Cache[K, V]) Purge() { c.lru.Purge() }

// Len 返回当前条目数
func (c *Cache[K, V]) Len() int { return c.lru.Len() }

// Stats 返回统计快照
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.lru.Len(),
	}
}
