package xresolver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/omeyang/ouikit/pkg/observability/xlog"
	"github.com/omeyang/ouikit/pkg/registry/xoui"
	"github.com/omeyang/ouikit/pkg/util/xlru"
	"github.com/omeyang/ouikit/pkg/util/xmac"
)

// state 当前注册表及其代数，代数随每次替换递增
type state struct {
	reg *xoui.Registry
	gen uint64
}

// cacheKey 带代数的缓存键，替换注册表后旧结果不会再被命中
type cacheKey struct {
	gen  uint64
	text string
}

// Resolver 可原子替换注册表的解析器，所有方法并发安全
type Resolver struct {
	state   atomic.Pointer[state]
	swapMu  sync.Mutex
	cache   *xlru.Cache[cacheKey, string]
	logger  xlog.Logger
	metrics *metrics
}

// New 以 reg 为初始注册表创建解析器。使用完毕后调用 Close 注销指标回调。
func New(reg *xoui.Registry, opts ...Option) (*Resolver, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	r := &Resolver{logger: o.logger.With(xlog.Component("xresolver"))}
	r.state.Store(&state{reg: reg})

	if o.cacheSize > 0 {
		cache, err := xlru.New[cacheKey, string](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("xresolver: create cache: %w", err)
		}
		r.cache = cache
	}

	m, err := newMetrics(o.meterProvider, r)
	if err != nil {
		return nil, err
	}
	r.metrics = m
	return r, nil
}

// Current 返回当前注册表
func (r *Resolver) Current() *xoui.Registry {
	return r.state.Load().reg
}

// Swap 替换当前注册表并清空格式化缓存，返回被替换的注册表
func (r *Resolver) Swap(reg *xoui.Registry) (*xoui.Registry, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	r.swapMu.Lock()
	old := r.state.Load()
	r.state.Store(&state{reg: reg, gen: old.gen + 1})
	r.swapMu.Unlock()

	if r.cache != nil {
		r.cache.Purge()
	}
	r.logger.Info(context.Background(), "oui registry swapped",
		xlog.Count(reg.Size()),
		slog.Int("previous_count", old.reg.Size()),
		slog.Time("last_modified", reg.LastModified()),
	)
	return old.reg, nil
}

// ReloadFile 从 path 加载注册表，内容摘要与当前一致时不替换。
// 返回是否发生了替换；加载失败时保留当前注册表。
func (r *Resolver) ReloadFile(ctx context.Context, path string) (bool, error) {
	reg, err := xoui.LoadFile(path, xoui.WithLogger(r.logger))
	if err != nil {
		r.metrics.reload(ctx, statusError)
		r.logger.Warn(ctx, "oui registry reload failed", xlog.Path(path), xlog.Err(err))
		return false, err
	}
	if reg.Digest() == r.Current().Digest() {
		r.metrics.reload(ctx, statusUnchanged)
		r.logger.Debug(ctx, "oui registry unchanged", xlog.Path(path))
		return false, nil
	}
	if _, err := r.Swap(reg); err != nil {
		return false, err
	}
	r.metrics.reload(ctx, statusOK)
	return true, nil
}

// Resolve 查找地址所属厂商并返回命中方式，见 [xoui.Registry.Resolve]
func (r *Resolver) Resolve(ctx context.Context, addr xmac.Addr) (xoui.Entry, xoui.Match) {
	e, m := r.Current().Resolve(addr)
	r.metrics.lookup(ctx, m)
	return e, m
}

// Lookup 查找地址所属厂商，见 [xoui.Registry.Lookup]
func (r *Resolver) Lookup(ctx context.Context, addr xmac.Addr) (xoui.Entry, bool) {
	e, m := r.Resolve(ctx, addr)
	return e, m != xoui.MatchNone
}

// Format 见 [xoui.Registry.Format]
func (r *Resolver) Format(_ context.Context, addr xmac.Addr) string {
	return r.Current().Format(addr)
}

// FormatOrPassthrough 见 [xoui.Registry.FormatOrPassthrough]，结果按输入文本缓存
func (r *Resolver) FormatOrPassthrough(_ context.Context, s string) string {
	st := r.state.Load()
	if r.cache == nil {
		return st.reg.FormatOrPassthrough(s)
	}
	return r.cache.GetOrCompute(cacheKey{gen: st.gen, text: s}, func(k cacheKey) string {
		return st.reg.FormatOrPassthrough(k.text)
	})
}

// Close 注销指标回调，可重复调用
func (r *Resolver) Close() error {
	return r.metrics.close()
}
