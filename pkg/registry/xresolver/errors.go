package xresolver

import "errors"

var (
	// ErrNilRegistry 传入的注册表为 nil
	ErrNilRegistry = errors.New("xresolver: nil registry")

	// ErrNilResolver Watch 传入的解析器为 nil
	ErrNilResolver = errors.New("xresolver: nil resolver")

	// ErrEmptyPath Watch 传入的文件路径为空
	ErrEmptyPath = errors.New("xresolver: empty path")
)
