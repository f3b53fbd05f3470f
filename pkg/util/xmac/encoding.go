package xmac

import (
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出小写冒号格式。
func (a Addr) MarshalText() ([]byte, error) {
	return appendSep(make([]byte, 0, sepLen), a.bytes[:], ':', hexLower), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，接受 [Parse] 的全部语法。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的小写冒号格式。
//
// 输出只含 [0-9a-f:]，无需转义，直接拼接引号避免反射开销。
func (a Addr) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, sepLen+2)
	buf = append(buf, '"')
	buf = appendSep(buf, a.bytes[:], ':', hexLower)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 输入必须是 JSON 字符串；null 保持接收者不变（与标准库约定一致）。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]，输出 6 个原始字节。
func (a Addr) MarshalBinary() ([]byte, error) {
	return a.Bytes(), nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
// 输入必须恰好 6 字节，否则返回 [ErrInvalidLength]。
func (a *Addr) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := FromRaw(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
