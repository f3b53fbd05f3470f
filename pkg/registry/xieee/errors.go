package xieee

import "errors"

var (
	// ErrInvalidTimestamp 最后修改时间不是 ISO-8601/RFC 3339 时刻
	ErrInvalidTimestamp = errors.New("xieee: invalid timestamp")

	// ErrInvalidLine 行可被识别但无法转换为记录
	ErrInvalidLine = errors.New("xieee: invalid line")
)
