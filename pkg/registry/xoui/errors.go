package xoui

import "errors"

var (
	// ErrInvalidLength 标识符不是 3 字节
	ErrInvalidLength = errors.New("xoui: invalid length")

	// ErrInvalidArgument 厂商名为空或 UTF-8 编码超过 65535 字节
	ErrInvalidArgument = errors.New("xoui: invalid argument")

	// ErrTruncatedInput 流在头部或记录中途结束
	ErrTruncatedInput = errors.New("xoui: truncated input")

	// ErrMalformedEncoding 记录中的厂商名不是合法 UTF-8 或为空
	ErrMalformedEncoding = errors.New("xoui: malformed encoding")
)
