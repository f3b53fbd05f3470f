package xmac

import (
	"fmt"
	"strings"
)

// asciiSpace 是语法中的空白字符集合（与 POSIX \s 一致，不含 Unicode 空白）。
const asciiSpace = " \t\n\v\f\r"

// 去除首尾空白后的两种合法长度。
const (
	bareLen = Len * 2         // aabbccddeeff
	sepLen  = Len*2 + Len - 1 // aa?bb?cc?dd?ee?ff
)

// Parse 解析 MAC 地址文本。
//
// 语法：可选的首尾空白，之后是 6 组两位十六进制数（大小写不敏感）。
// 组间分隔符可以是单个空白字符、"-"、":"、"."、"_" 或不使用分隔符，
// 但第一个间隔的选择必须在其余间隔中原样重复。
//
// 不符合语法时返回包装了 [ErrInvalidFormat] 的错误。
func Parse(s string) (Addr, error) {
	t := strings.Trim(s, asciiSpace)

	var (
		a   Addr
		err error
	)
	switch len(t) {
	case bareLen:
		err = parseBare(t, &a)
	case sepLen:
		err = parseSeparated(t, &a)
	default:
		err = fmt.Errorf("expected %d or %d characters, got %d", bareLen, sepLen, len(t))
	}
	if err != nil {
		return Addr{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}
	return a, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// parseBare 解析无分隔符格式（12 个十六进制字符）。
func parseBare(t string, a *Addr) error {
	for i := range Len {
		b, ok := parseHexByte(t[i*2], t[i*2+1])
		if !ok {
			return fmt.Errorf("invalid hex at position %d", i*2)
		}
		a.bytes[i] = b
	}
	return nil
}

// parseSeparated 解析带分隔符格式（17 个字符）。
// 分隔符取自索引 2，其余间隔（索引 5, 8, 11, 14）必须与之完全相同。
func parseSeparated(t string, a *Addr) error {
	sep := t[2]
	if !isSeparator(sep) {
		return fmt.Errorf("invalid separator %q", sep)
	}
	for i := range Len {
		off := i * 3
		b, ok := parseHexByte(t[off], t[off+1])
		if !ok {
			return fmt.Errorf("invalid hex at position %d", off)
		}
		a.bytes[i] = b
		if i < Len-1 && t[off+2] != sep {
			return fmt.Errorf("inconsistent separator at position %d", off+2)
		}
	}
	return nil
}

// isSeparator 报告 c 是否可作为组间分隔符。
func isSeparator(c byte) bool {
	switch c {
	case '-', ':', '.', '_':
		return true
	default:
		return strings.IndexByte(asciiSpace, c) >= 0
	}
}

// parseHexByte 解析两个十六进制字符为一个字节。
func parseHexByte(high, low byte) (byte, bool) {
	h, l := hexValue(high), hexValue(low)
	if h < 0 || l < 0 {
		return 0, false
	}
	return byte(h<<4 | l), true
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
