// Package xlru 提供并发安全的泛型 LRU 缓存，基于 github.com/hashicorp/golang-lru/v2。
//
// 与底层库相比增加了命中/未命中计数，便于上层暴露缓存指标：
//
//	c, err := xlru.New[string, string](4096)
//	if err != nil {
//	    return err
//	}
//	c.Set("00:21:9b:07:20:74", "Dell-07:20:74")
//	v, ok := c.Get("00:21:9b:07:20:74")
//	s := c.Stats() // s.Hits == 1
//
// 缓存大小是条目数，不是字节数。
package xlru
