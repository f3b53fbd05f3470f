// Package xresolver 在 xoui 注册表之上提供可热更新的解析器。
//
// [Resolver] 持有当前注册表的原子指针，读操作无锁；[Resolver.Swap] 或
// [Resolver.ReloadFile] 替换注册表时，旧实例不受影响，正在进行的查询继续使用旧数据。
// FormatOrPassthrough 的结果缓存在 LRU 中，替换注册表时清空。
//
// 指标（OpenTelemetry）：
//   - ouikit.lookup.total{result=direct|masked|miss}
//   - ouikit.registry.reload.total{status=ok|error|unchanged}
//   - ouikit.registry.entries
//   - ouikit.format.cache.requests{result=hit|miss}
//
// [Watch] 监听注册表文件所在目录，文件变化时防抖后重新加载：
//
//	res, err := xresolver.New(reg, xresolver.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer res.Close()
//
//	w, err := xresolver.Watch(res, "/var/lib/ouikit/oui.dat")
//	if err != nil {
//	    return err
//	}
//	w.StartAsync()
//	defer w.Stop()
package xresolver
