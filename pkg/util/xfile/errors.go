package xfile

import "errors"

var (
	// ErrEmptyPath 路径为空
	ErrEmptyPath = errors.New("xfile: path is required")

	// ErrInvalidPath 路径格式无效，例如以分隔符结尾
	ErrInvalidPath = errors.New("xfile: invalid path")

	// ErrNullByte 路径中包含空字节
	ErrNullByte = errors.New("xfile: path contains null byte")
)
