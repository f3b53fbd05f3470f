// Package xconf 加载 ouictl 的配置文件，基于 github.com/knadh/koanf/v2。
//
// 支持 YAML（.yaml/.yml）和 JSON（.json），格式按扩展名判断。
// 文件中缺省的键使用 [Defaults] 中的值：
//
//	registry:
//	  path: /var/lib/ouikit/oui.dat   # 为空时使用内置注册表
//	  watch: true
//	  debounce: 250ms
//	log:
//	  level: info                     # debug/info/warn/error
//	  format: text                    # text/json
//	  file: /var/log/ouictl.log       # 为空时输出到 stderr
//	  max_size_mb: 100
//	cache:
//	  size: 4096                      # 0 关闭格式化缓存
//
// 命令行参数优先于配置文件，由调用方在 Load 之后覆盖。
package xconf
