package xoui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/omeyang/ouikit/pkg/util/xmac"
)

const (
	// IDLen OUI 标识符长度
	IDLen = 3

	// MaxNameLen 厂商名 UTF-8 编码的最大字节数（uint16 长度前缀）
	MaxNameLen = 0xFFFF
)

// Entry 一条 OUI 注册记录：3 字节前缀 + 厂商全名
//
// Entry 是不可变值类型，零值无意义，只能通过 [NewEntry] 或 [DecodeEntry] 获得。
type Entry struct {
	id           [IDLen]byte
	manufacturer string
	shortName    string
}

// NewEntry 创建 Entry，id 必须恰好 3 字节，厂商名须为非空的合法 UTF-8 且不超过 [MaxNameLen] 字节。
func NewEntry(id []byte, manufacturer string) (Entry, error) {
	if len(id) != IDLen {
		return Entry{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, IDLen, len(id))
	}
	if manufacturer == "" {
		return Entry{}, fmt.Errorf("%w: empty manufacturer", ErrInvalidArgument)
	}
	if len(manufacturer) > MaxNameLen {
		return Entry{}, fmt.Errorf("%w: manufacturer is %d bytes, max %d", ErrInvalidArgument, len(manufacturer), MaxNameLen)
	}
	if !utf8.ValidString(manufacturer) {
		return Entry{}, fmt.Errorf("%w: manufacturer is not valid UTF-8", ErrInvalidArgument)
	}
	return newEntry([IDLen]byte(id), manufacturer), nil
}

func newEntry(id [IDLen]byte, manufacturer string) Entry {
	return Entry{
		id:           id,
		manufacturer: manufacturer,
		shortName:    shortName(id, manufacturer),
	}
}

// PackedKey 将 3 字节前缀打包为 b0<<16 | b1<<8 | b2
func PackedKey(id [IDLen]byte) uint32 {
	return uint32(id[0])<<16 | uint32(id[1])<<8 | uint32(id[2])
}

// ID 返回 3 字节前缀
func (e Entry) ID() [IDLen]byte { return e.id }

// Bytes 返回前缀的副本
func (e Entry) Bytes() []byte {
	b := e.id
	return b[:]
}

// Key 返回 [PackedKey]
func (e Entry) Key() uint32 { return PackedKey(e.id) }

// Manufacturer 返回厂商全名
func (e Entry) Manufacturer() string { return e.manufacturer }

// ShortName 返回厂商简称，例如 "Dell Inc" → "Dell"
func (e Entry) ShortName() string { return e.shortName }

// Equal 仅比较前缀，与厂商名无关
func (e Entry) Equal(other Entry) bool { return e.id == other.id }

// String 返回 "00-21-9b: [Dell] Dell Inc" 形式
func (e Entry) String() string {
	var sb strings.Builder
	sb.Grow(len(e.manufacturer) + len(e.shortName) + 16)
	sb.Write(xmac.AppendHex(nil, e.id[:], '-'))
	sb.WriteString(": [")
	sb.WriteString(e.shortName)
	sb.WriteString("] ")
	sb.WriteString(e.manufacturer)
	return sb.String()
}

// shortName 取第一个词（跳过开头的 "The"），去掉尾部非 ASCII 字母，再去掉所有 '.'。
// 结果为空时返回 Unknown-xx-xx-xx。
func shortName(id [IDLen]byte, manufacturer string) string {
	words := strings.FieldsFunc(manufacturer, unicode.IsSpace)
	i := 0
	if len(words) > 0 && strings.EqualFold(words[0], "The") {
		i = 1
	}
	var name string
	if i < len(words) {
		word := strings.TrimRightFunc(words[i], func(r rune) bool { return !isASCIILetter(r) })
		name = strings.ReplaceAll(word, ".", "")
	}
	if name == "" {
		return unknownName(id)
	}
	return name
}

func unknownName(id [IDLen]byte) string {
	return string(xmac.AppendHex([]byte("Unknown-"), id[:], '-'))
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
