package xresolver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/singleflight"

	"github.com/omeyang/ouikit/pkg/observability/xlog"
	"github.com/omeyang/ouikit/pkg/registry/xoui"
)

// DefaultDebounce 默认防抖时间
const DefaultDebounce = 100 * time.Millisecond

// WatchCallback 注册表被替换或重载失败时调用。
// 失败时 reg 为仍在使用的旧注册表。回调中不得调用 [Watcher.Stop]。
type WatchCallback func(reg *xoui.Registry, err error)

// WatchOption 配置 [Watcher]
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
	callback WatchCallback
}

// WithDebounce 设置防抖时间，窗口内的多次变更只触发一次重载。非正值忽略。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithCallback 设置重载回调
func WithCallback(fn WatchCallback) WatchOption {
	return func(o *watchOptions) {
		o.callback = fn
	}
}

// Watcher 监听注册表文件并在变化时重新加载
type Watcher struct {
	res      *Resolver
	path     string
	watcher  *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration
	logger   xlog.Logger
	group    singleflight.Group

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	running  bool
	stopped  bool
	timer    *time.Timer
	inflight sync.WaitGroup
}

// Watch 创建监听 path 的 Watcher，需调用 Start 或 StartAsync 开始监听。
//
// 监听的是文件所在目录而不是文件本身，原子替换（写临时文件后 rename）同样会被感知。
func Watch(res *Resolver, path string, opts ...WatchOption) (*Watcher, error) {
	if res == nil {
		return nil, ErrNilResolver
	}
	if path == "" {
		return nil, ErrEmptyPath
	}
	o := &watchOptions{debounce: DefaultDebounce}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("xresolver: resolve path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xresolver: create watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fsWatcher.Add(dir); err != nil {
		return nil, errors.Join(
			fmt.Errorf("xresolver: watch directory %s: %w", dir, err),
			fsWatcher.Close(),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		res:      res,
		path:     abs,
		watcher:  fsWatcher,
		callback: o.callback,
		debounce: o.debounce,
		logger:   res.logger.With(xlog.Path(abs)),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}, nil
}

// Start 开始监听，阻塞直到 Stop
func (w *Watcher) Start() {
	if !w.markRunning() {
		return
	}
	w.run()
}

// StartAsync 在后台 goroutine 中监听，立即返回
func (w *Watcher) StartAsync() {
	if !w.markRunning() {
		return
	}
	go w.run()
}

func (w *Watcher) markRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.stopped {
		return false
	}
	w.running = true
	return true
}

// Stop 停止监听并等待后台 goroutine 与进行中的重载退出，可重复调用
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	running := w.running
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	w.cancel()
	err := w.watcher.Close()
	if running {
		<-w.done
	}
	w.inflight.Wait()
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	w.logger.Info(w.ctx, "watching oui registry")

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(w.ctx, "fsnotify error", xlog.Err(err))
			w.notify(fmt.Errorf("xresolver: watch: %w", err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Write: 原地修改；Create: 新建或 rename 到目标路径
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.inflight.Add(1)
	w.mu.Unlock()
	defer w.inflight.Done()

	w.Reload()
}

// Reload 立即重新加载，与防抖触发的重载共享 singleflight，
// 并发调用只会执行一次加载。
func (w *Watcher) Reload() {
	v, err, _ := w.group.Do(w.path, func() (any, error) {
		return w.res.ReloadFile(w.ctx, w.path)
	})
	if err != nil {
		w.notify(err)
		return
	}
	if changed, _ := v.(bool); changed {
		w.notify(nil)
	}
}

func (w *Watcher) notify(err error) {
	if w.callback != nil {
		w.callback(w.res.Current(), err)
	}
}
