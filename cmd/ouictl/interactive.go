package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/omeyang/ouikit/pkg/registry/xresolver"
	"github.com/omeyang/ouikit/pkg/util/xmac"
)

const prompt = "oui> "

// cmdInteractive 交互模式（REPL）。
func (a *app) cmdInteractive(ctx context.Context) error {
	res, err := a.open(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "已加载 %d 条 OUI 记录\n", res.Current().Size())
	fmt.Fprintln(a.stdout, "每行输入一个 MAC 地址，'quit' 或 'exit' 退出")
	fmt.Fprintln(a.stdout)

	return a.runREPL(ctx, res)
}

// startInputReader 启动输入读取 goroutine。
// inputCh 无缓冲，发送端用 select 保护，context 取消后 goroutine 不会阻塞在发送上。
func startInputReader(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	inputCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case inputCh <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errCh <- err
			return
		}
		close(inputCh)
	}()

	return inputCh, errCh
}

// runREPL 运行 REPL 循环，Ctrl+C 立即退出
func (a *app) runREPL(ctx context.Context, res *xresolver.Resolver) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	inputCh, errCh := startInputReader(ctx, a.stdin)

	for {
		fmt.Fprint(a.stdout, prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(a.stdout, "\n再见!")
			return nil
		case err := <-errCh:
			return fmt.Errorf("读取输入错误: %w", err)
		case line, ok := <-inputCh:
			if !ok {
				fmt.Fprintln(a.stdout)
				return nil
			}
			if a.processLine(ctx, res, strings.TrimSpace(line)) {
				return nil
			}
		}
	}
}

// processLine 处理单行输入，返回 true 表示应该退出。
func (a *app) processLine(ctx context.Context, res *xresolver.Resolver, line string) bool {
	switch line {
	case "":
		return false
	case "quit", "exit":
		fmt.Fprintln(a.stdout, "再见!")
		return true
	}

	addr, err := xmac.Parse(line)
	if err != nil {
		fmt.Fprintf(a.stderr, "错误: %v\n", err)
		return false
	}
	if err := writeLookupBlock(a.stdout, resolveAddr(ctx, res, addr)); err != nil {
		fmt.Fprintf(a.stderr, "错误: %v\n", err)
	}
	return false
}
