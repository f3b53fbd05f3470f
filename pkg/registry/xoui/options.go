package xoui

import "github.com/omeyang/ouikit/pkg/observability/xlog"

// LoadOption 配置 [Load] 的行为
type LoadOption func(*loadOptions)

type loadOptions struct {
	logger xlog.Logger
}

func defaultLoadOptions() *loadOptions {
	return &loadOptions{logger: xlog.Discard()}
}

// WithLogger 设置加载过程的日志，nil 时忽略
func WithLogger(logger xlog.Logger) LoadOption {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
