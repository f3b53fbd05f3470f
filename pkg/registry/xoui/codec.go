package xoui

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"
)

const (
	// HeaderLen 文件头长度：int64 大端毫秒时间戳
	HeaderLen = 8

	recordPrefixLen = IDLen + 2
)

// DecodeEntry 从 r 读取一条记录：3 字节前缀、uint16 大端长度 N、N 字节 UTF-8 厂商名。
//
// 流恰好在记录边界结束时返回未包装的 [io.EOF]；记录不完整返回 [ErrTruncatedInput]；
// 厂商名为空或不是合法 UTF-8 返回 [ErrMalformedEncoding]。
func DecodeEntry(r io.Reader) (Entry, error) {
	var prefix [recordPrefixLen]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Entry{}, io.EOF
		}
		return Entry{}, truncated("record prefix", err)
	}

	n := binary.BigEndian.Uint16(prefix[IDLen:])
	if n == 0 {
		return Entry{}, fmt.Errorf("%w: empty manufacturer for %s", ErrMalformedEncoding, unknownName([IDLen]byte(prefix[:IDLen])))
	}
	name := make([]byte, n)
	if _, err := io.ReadFull(r, name); err != nil {
		return Entry{}, truncated("manufacturer", err)
	}
	if !utf8.Valid(name) {
		return Entry{}, fmt.Errorf("%w: manufacturer for %s is not valid UTF-8", ErrMalformedEncoding, unknownName([IDLen]byte(prefix[:IDLen])))
	}
	return newEntry([IDLen]byte(prefix[:IDLen]), string(name)), nil
}

// Encode 写出 [DecodeEntry] 可读回的记录
func (e Entry) Encode(w io.Writer) error {
	if e.manufacturer == "" {
		return fmt.Errorf("%w: empty manufacturer", ErrInvalidArgument)
	}
	buf := make([]byte, 0, recordPrefixLen+len(e.manufacturer))
	buf = append(buf, e.id[:]...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(e.manufacturer)))
	buf = append(buf, e.manufacturer...)
	_, err := w.Write(buf)
	return err
}

// EncodeHeader 写出 8 字节文件头
func EncodeHeader(w io.Writer, lastModified time.Time) error {
	var hdr [HeaderLen]byte
	binary.BigEndian.PutUint64(hdr[:], uint64(lastModified.UnixMilli()))
	_, err := w.Write(hdr[:])
	return err
}

func decodeHeader(r io.Reader) (time.Time, error) {
	var hdr [HeaderLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return time.Time{}, truncated("header", err)
	}
	ms := int64(binary.BigEndian.Uint64(hdr[:]))
	return time.UnixMilli(ms).UTC(), nil
}

// truncated 将 EOF 类错误映射为 ErrTruncatedInput，其余 I/O 错误原样包装
func truncated(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: incomplete %s", ErrTruncatedInput, what)
	}
	return fmt.Errorf("xoui: read %s: %w", what, err)
}
