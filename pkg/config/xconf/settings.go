package xconf

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/omeyang/ouikit/pkg/observability/xlog"
)

// Settings ouictl 的完整配置
type Settings struct {
	Registry RegistrySettings `koanf:"registry"`
	Log      LogSettings      `koanf:"log"`
	Cache    CacheSettings    `koanf:"cache"`
}

// RegistrySettings 注册表来源与热更新
type RegistrySettings struct {
	// Path 二进制注册表文件，为空时使用内置注册表
	Path string `koanf:"path"`
	// Watch 是否监听 Path 的变化
	Watch bool `koanf:"watch"`
	// Debounce 热更新防抖时间
	Debounce time.Duration `koanf:"debounce"`
}

// LogSettings 日志输出
type LogSettings struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// CacheSettings 格式化缓存
type CacheSettings struct {
	Size int `koanf:"size"`
}

// Defaults 返回默认配置
func Defaults() *Settings {
	return &Settings{
		Registry: RegistrySettings{
			Debounce: 100 * time.Millisecond,
		},
		Log: LogSettings{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  xlog.DefaultMaxSizeMB,
			MaxBackups: xlog.DefaultMaxBackups,
			MaxAgeDays: xlog.DefaultMaxAgeDays,
		},
		Cache: CacheSettings{
			Size: 4096,
		},
	}
}

// Validate 检查配置取值，返回所有问题的合并错误
func (s *Settings) Validate() error {
	var errs []error
	if s.Registry.Watch && strings.TrimSpace(s.Registry.Path) == "" {
		errs = append(errs, errors.New("registry.watch requires registry.path"))
	}
	if s.Registry.Debounce <= 0 {
		errs = append(errs, fmt.Errorf("registry.debounce must be positive, got %s", s.Registry.Debounce))
	}
	if _, err := xlog.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(s.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", s.Log.Format))
	}
	if s.Log.MaxSizeMB < 0 || s.Log.MaxBackups < 0 || s.Log.MaxAgeDays < 0 {
		errs = append(errs, errors.New("log rotation limits must not be negative"))
	}
	if s.Cache.Size < 0 {
		errs = append(errs, fmt.Errorf("cache.size must not be negative, got %d", s.Cache.Size))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
}

// Rotation 返回日志文件轮转配置，未配置文件时 ok 为 false
func (l LogSettings) Rotation() (xlog.Rotation, bool) {
	if l.File == "" {
		return xlog.Rotation{}, false
	}
	return xlog.Rotation{
		Filename:   l.File,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}, true
}
