package xmac

// Format 定义 MAC 地址的文本风格。
type Format uint8

const (
	// FormatColon 冒号分隔，小写：aa:bb:cc:dd:ee:ff（默认）
	FormatColon Format = iota
	// FormatDash 短线分隔，小写：aa-bb-cc-dd-ee-ff
	FormatDash
	// FormatDot 点分隔（Cisco 风格），小写：aabb.ccdd.eeff
	// 仅用于展示，[Parse] 不接受此风格。
	FormatDot
	// FormatBare 无分隔符，小写：aabbccddeeff
	FormatBare
	// FormatColonUpper 冒号分隔，大写：AA:BB:CC:DD:EE:FF
	FormatColonUpper
	// FormatDashUpper 短线分隔，大写：AA-BB-CC-DD-EE-FF
	FormatDashUpper
)

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// String 返回小写冒号分隔的文本，例如 "00:21:9b:07:20:74"。
// 结果总能被 [Parse] 还原为同一地址。
func (a Addr) String() string {
	return string(appendSep(make([]byte, 0, sepLen), a.bytes[:], ':', hexLower))
}

// FormatString 按指定风格返回文本。未知风格按 [FormatColon] 处理。
func (a Addr) FormatString(f Format) string {
	switch f {
	case FormatDash:
		return string(appendSep(make([]byte, 0, sepLen), a.bytes[:], '-', hexLower))
	case FormatDot:
		return formatDot(a.bytes)
	case FormatBare:
		return string(appendSep(make([]byte, 0, bareLen), a.bytes[:], 0, hexLower))
	case FormatColonUpper:
		return string(appendSep(make([]byte, 0, sepLen), a.bytes[:], ':', hexUpper))
	case FormatDashUpper:
		return string(appendSep(make([]byte, 0, sepLen), a.bytes[:], '-', hexUpper))
	default:
		return a.String()
	}
}

// AppendHex 将 b 中每个字节以两位小写十六进制追加到 dst，字节间插入 sep。
// sep 为 0 表示不使用分隔符。
//
// 导出供注册表格式化主机部分（xx:yy:zz）与 OUI 部分（aa-bb-cc）复用。
func AppendHex(dst, b []byte, sep byte) []byte {
	return appendSep(dst, b, sep, hexLower)
}

func appendSep(dst, b []byte, sep byte, hex string) []byte {
	for i, c := range b {
		if i > 0 && sep != 0 {
			dst = append(dst, sep)
		}
		dst = append(dst, hex[c>>4], hex[c&0x0f])
	}
	return dst
}

// formatDot 格式化为 xxxx.xxxx.xxxx。
func formatDot(b [Len]byte) string {
	buf := make([]byte, 0, 14)
	for i := 0; i < Len; i += 2 {
		if i > 0 {
			buf = append(buf, '.')
		}
		buf = appendSep(buf, b[i:i+2], 0, hexLower)
	}
	return string(buf)
}
