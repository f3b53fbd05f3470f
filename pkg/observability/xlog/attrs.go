package xlog

import (
	"log/slog"
	"time"
)

// 标准属性键
const (
	KeyError     = "error"
	KeyCount     = "count"
	KeyPath      = "path"
	KeyOUI       = "oui"
	KeyAddress   = "address"
	KeyDuration  = "duration"
	KeyComponent = "component"
)

// Err 错误属性，nil 时值为空字符串
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }

func Path(p string) slog.Attr { return slog.String(KeyPath, p) }

// OUI 以 xx-xx-xx 形式记录三字节前缀
func OUI(id [3]byte) slog.Attr {
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 0, 8)
	for i, b := range id {
		if i > 0 {
			buf = append(buf, '-')
		}
		buf = append(buf, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return slog.String(KeyOUI, string(buf))
}

func Address(s string) slog.Attr { return slog.String(KeyAddress, s) }

func Duration(d time.Duration) slog.Attr { return slog.Duration(KeyDuration, d) }

func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }
