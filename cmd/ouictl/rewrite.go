package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/ouikit/pkg/observability/xlog"
	"github.com/omeyang/ouikit/pkg/registry/xoui"
	"github.com/omeyang/ouikit/pkg/registry/xresolver"
)

// macToken 文本中疑似 MAC 地址的片段，分隔符是否一致交给解析器判断
var macToken = regexp.MustCompile(`\b(?:[0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}\b`)

// maxRewriteLine rewrite 接受的最长行
const maxRewriteLine = 1 << 20

// cmdRewrite 逐行读取标准输入，把其中的 MAC 地址替换为格式化结果。
// watch 为 true 时同时监听注册表文件，替换后的注册表对之后的行生效。
func (a *app) cmdRewrite(ctx context.Context, watch bool) error {
	res, err := a.open(ctx)
	if err != nil {
		return err
	}
	if !watch {
		return rewriteStream(ctx, res, a.stdin, a.stdout)
	}
	if a.source == "" {
		return &usageError{msg: "--watch 需要通过 --registry 或配置文件指定注册表文件"}
	}

	var debounce time.Duration
	if a.settings != nil {
		debounce = a.settings.Registry.Debounce
	}
	w, err := xresolver.Watch(res, a.source,
		xresolver.WithDebounce(debounce),
		xresolver.WithCallback(func(reg *xoui.Registry, err error) {
			if err != nil {
				a.logger.Warn(context.Background(), "registry reload failed", xlog.Path(a.source), xlog.Err(err))
				return
			}
			a.logger.Info(context.Background(), "registry reloaded", xlog.Path(a.source), xlog.Count(reg.Size()))
		}),
	)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w.Start()
		return nil
	})
	g.Go(func() error {
		err := rewriteStream(gctx, res, a.stdin, a.stdout)
		return errors.Join(err, w.Stop())
	})
	return g.Wait()
}

// rewriteStream 逐行替换 r 中的 MAC 地址写入 w，每行写完即刷新
func rewriteStream(ctx context.Context, res *xresolver.Resolver, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRewriteLine)
	bw := bufio.NewWriter(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := rewriteLine(ctx, res, scanner.Text())
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("读取输入错误: %w", err)
	}
	return nil
}

func rewriteLine(ctx context.Context, res *xresolver.Resolver, line string) string {
	return macToken.ReplaceAllStringFunc(line, func(tok string) string {
		return res.FormatOrPassthrough(ctx, tok)
	})
}
