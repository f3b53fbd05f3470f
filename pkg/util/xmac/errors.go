package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidFormat 表示文本不符合 MAC 地址语法。
	ErrInvalidFormat = errors.New("xmac: invalid format")

	// ErrInvalidLength 表示字节长度不正确（期望 6 字节）。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrNilReceiver 表示在 nil *Addr 上调用了反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)
