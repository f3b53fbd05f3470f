package xieee

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/omeyang/ouikit/pkg/registry/xoui"
)

// Convert 读取 r 中的 oui.txt，向 w 写出带 lastModified 头部的二进制注册表。
//
// 每行之间检查 ctx，取消时返回 ctx.Err()，此时 w 中可能已有部分输出。
func Convert(ctx context.Context, r io.Reader, w io.Writer, lastModified time.Time) (Stats, error) {
	bw := bufio.NewWriter(w)
	if err := xoui.EncodeHeader(bw, lastModified); err != nil {
		return Stats{}, fmt.Errorf("xieee: write header: %w", err)
	}

	sc := NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return sc.Stats(), err
		}
		if !sc.Scan() {
			break
		}
		if err := sc.Entry().Encode(bw); err != nil {
			return sc.Stats(), fmt.Errorf("xieee: write entry: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return sc.Stats(), err
	}
	if err := bw.Flush(); err != nil {
		return sc.Stats(), fmt.Errorf("xieee: flush: %w", err)
	}
	return sc.Stats(), nil
}

// ParseLastModified 解析 ISO-8601 时刻，例如 `date -Iseconds` 的输出，结果为 UTC
func ParseLastModified(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, s, err)
	}
	return t.UTC(), nil
}
