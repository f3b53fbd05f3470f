package xresolver

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/ouikit/pkg/observability/xlog"
)

// DefaultCacheSize FormatOrPassthrough 缓存的默认条目数
const DefaultCacheSize = 4096

const instrumentationName = "github.com/omeyang/ouikit/pkg/registry/xresolver"

// Option 配置 [Resolver]
type Option func(*options)

type options struct {
	logger        xlog.Logger
	meterProvider metric.MeterProvider
	cacheSize     int
}

func defaultOptions() *options {
	return &options{
		logger:        xlog.Discard(),
		meterProvider: otel.GetMeterProvider(),
		cacheSize:     DefaultCacheSize,
	}
}

// WithLogger 设置日志，nil 时忽略
func WithLogger(logger xlog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMeterProvider 设置 MeterProvider，默认使用全局 provider
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		if provider != nil {
			o.meterProvider = provider
		}
	}
}

// WithCacheSize 设置格式化缓存条目数，0 关闭缓存，负值忽略
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.cacheSize = n
		}
	}
}
