package xoui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/ouikit/pkg/observability/xlog"
	"github.com/omeyang/ouikit/pkg/util/xmac"
)

// Match 描述 [Registry.Resolve] 的命中方式
type Match uint8

const (
	// MatchNone 未命中
	MatchNone Match = iota
	// MatchDirect 按地址原始前缀命中
	MatchDirect
	// MatchMasked 清除组播/本地位后命中
	MatchMasked
)

// String 返回 none/direct/masked
func (m Match) String() string {
	switch m {
	case MatchDirect:
		return "direct"
	case MatchMasked:
		return "masked"
	default:
		return "none"
	}
}

// Registry 不可变的 OUI → 厂商映射
//
// Load 返回后不再修改，可被任意数量的 goroutine 并发读取。
type Registry struct {
	lastModified time.Time
	entries      map[uint32]Entry
	digest       uint64
	duplicates   int
}

// Load 从 r 读取完整的注册表二进制流。
//
// 任何错误都返回 nil 注册表。r 会被读到末尾，但不会被关闭。
// 重复前缀以后出现的记录为准，并计入 [Registry.Duplicates]。
func Load(r io.Reader, opts ...LoadOption) (*Registry, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	h := xxhash.New()
	br := bufio.NewReader(io.TeeReader(r, h))

	lastModified, err := decodeHeader(br)
	if err != nil {
		return nil, err
	}

	reg := &Registry{
		lastModified: lastModified,
		entries:      make(map[uint32]Entry),
	}
	ctx := context.Background()
	for {
		e, err := DecodeEntry(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w (after %d entries)", err, len(reg.entries)+reg.duplicates)
		}
		key := e.Key()
		if prev, ok := reg.entries[key]; ok {
			reg.duplicates++
			o.logger.Debug(ctx, "duplicate oui, later record wins",
				xlog.OUI(e.id),
				slog.String("previous", prev.manufacturer),
				slog.String("current", e.manufacturer),
			)
		}
		reg.entries[key] = e
	}
	reg.digest = h.Sum64()

	o.logger.Info(ctx, "oui registry loaded",
		xlog.Count(len(reg.entries)),
		slog.Int("duplicates", reg.duplicates),
		slog.Time("last_modified", reg.lastModified),
	)
	return reg, nil
}

// LoadFile 打开 path 并调用 [Load]，文件总会被关闭
func LoadFile(path string, opts ...LoadOption) (reg *Registry, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xoui: open registry: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			reg = nil
			err = errors.Join(err, fmt.Errorf("xoui: close registry: %w", cerr))
		}
	}()
	return Load(f, opts...)
}

// LastModified 返回数据快照时间（UTC）
func (r *Registry) LastModified() time.Time { return r.lastModified }

// Size 返回不同前缀的数量
func (r *Registry) Size() int { return len(r.entries) }

// Digest 返回加载时整个输入流的 xxhash64
func (r *Registry) Digest() uint64 { return r.digest }

// Duplicates 返回加载时被覆盖的重复记录数
func (r *Registry) Duplicates() int { return r.duplicates }

// LookupOUI 按前缀直接查找
func (r *Registry) LookupOUI(id [IDLen]byte) (Entry, bool) {
	e, ok := r.entries[PackedKey(id)]
	return e, ok
}

// Lookup 查找地址所属厂商。
//
// 原始前缀未命中且地址为组播或本地管理时，清除这两个标志位后再查一次。
func (r *Registry) Lookup(addr xmac.Addr) (Entry, bool) {
	e, m := r.Resolve(addr)
	return e, m != MatchNone
}

// Resolve 与 [Registry.Lookup] 相同，额外返回命中方式
func (r *Registry) Resolve(addr xmac.Addr) (Entry, Match) {
	if e, ok := r.LookupOUI(addr.OUI()); ok {
		return e, MatchDirect
	}
	if addr.IsMulticast() || addr.IsLocal() {
		if e, ok := r.LookupOUI(addr.WithoutFlags().OUI()); ok {
			return e, MatchMasked
		}
	}
	return Entry{}, MatchNone
}

// Format 用厂商简称替换前缀，例如 "Dell-07:20:74"。
//
// 只做直接查找，不清除组播/本地位；未知前缀输出 "Unknown-aa-bb-cc-xx:yy:zz"。
func (r *Registry) Format(addr xmac.Addr) string {
	id := addr.OUI()
	nic := addr.NIC()

	var prefix string
	if e, ok := r.LookupOUI(id); ok {
		prefix = e.shortName
	} else {
		prefix = unknownName(id)
	}
	buf := make([]byte, 0, len(prefix)+1+8)
	buf = append(buf, prefix...)
	buf = append(buf, '-')
	buf = xmac.AppendHex(buf, nic[:], ':')
	return string(buf)
}

// FormatOrPassthrough 解析 s 并调用 [Registry.Format]，解析失败时原样返回 s
func (r *Registry) FormatOrPassthrough(s string) string {
	addr, err := xmac.Parse(s)
	if err != nil {
		return s
	}
	return r.Format(addr)
}

// Entries 按前缀升序遍历所有记录
func (r *Registry) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, key := range slices.Sorted(maps.Keys(r.entries)) {
			if !yield(r.entries[key]) {
				return
			}
		}
	}
}
