package xjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMarshal JSON 序列化失败
var ErrMarshal = errors.New("xjson: marshal failed")

// PrettyE 将任意值序列化为两空格缩进的 JSON 字符串
func PrettyE(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	// Encoder 总会追加换行
	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

// Pretty 同 [PrettyE]，序列化失败时返回 "<marshal error: ...>"
func Pretty(v any) string {
	s, err := PrettyE(v)
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return s
}

// WriteLine 将 v 编码为单行 JSON 写入 w，以换行结尾
func WriteLine(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
