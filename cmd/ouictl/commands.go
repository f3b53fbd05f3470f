package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ouikit/pkg/observability/xlog"
	"github.com/omeyang/ouikit/pkg/registry/xieee"
	"github.com/omeyang/ouikit/pkg/registry/xoui"
	"github.com/omeyang/ouikit/pkg/registry/xresolver"
	"github.com/omeyang/ouikit/pkg/util/xfile"
	"github.com/omeyang/ouikit/pkg/util/xjson"
	"github.com/omeyang/ouikit/pkg/util/xmac"
)

// stdio convert 中表示标准输入/输出的路径
const stdio = "-"

// 创建所有子命令。
func (a *app) createCommands() []*cli.Command {
	return []*cli.Command{
		a.createInfoCommand(),
		a.createLookupCommand(),
		a.createFormatCommand(),
		a.createDumpCommand(),
		a.createConvertCommand(),
		a.createInteractiveCommand(),
		a.createRewriteCommand(),
	}
}

// jsonFlag 每个命令各自持有一份，flag 实例会保存解析状态
func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "以 JSON 输出",
	}
}

func (a *app) createInfoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "查看注册表概况",
		Flags: []cli.Flag{jsonFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.cmdInfo(ctx, cmd.Bool("json"))
		},
	}
}

func (a *app) createLookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Aliases:   []string{"l"},
		Usage:     "查询地址所属厂商",
		ArgsUsage: "<mac> [mac...]",
		Flags:     []cli.Flag{jsonFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.cmdLookup(ctx, cmd.Args().Slice(), cmd.Bool("json"))
		},
	}
}

func (a *app) createFormatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Aliases:   []string{"f"},
		Usage:     "将地址格式化为 \"简称-xx:yy:zz\"，无法解析的文本原样输出",
		ArgsUsage: "<text> [text...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.cmdFormat(ctx, cmd.Args().Slice())
		},
	}
}

func (a *app) createDumpCommand() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "按前缀升序输出全部记录",
		Flags: []cli.Flag{jsonFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.cmdDump(ctx, cmd.Bool("json"))
		},
	}
}

func (a *app) createConvertCommand() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "将 IEEE oui.txt 转换为二进制注册表",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "in",
				Aliases: []string{"i"},
				Usage:   "IEEE oui.txt 路径，\"-\" 表示标准输入",
				Value:   stdio,
			},
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "输出文件路径，\"-\" 表示标准输出",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "last-modified",
				Usage: "写入文件头的时间（RFC 3339），默认当前时间",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.cmdConvert(ctx, cmd.String("in"), cmd.String("out"), cmd.String("last-modified"))
		},
	}
}

func (a *app) createInteractiveCommand() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"i", "repl"},
		Usage:   "交互模式（每行一个 MAC 地址）",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return a.cmdInteractive(ctx)
		},
	}
}

func (a *app) createRewriteCommand() *cli.Command {
	return &cli.Command{
		Name:  "rewrite",
		Usage: "逐行替换标准输入中的 MAC 地址",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "注册表文件变化时热更新",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			watch := cmd.Bool("watch") || (a.settings != nil && a.settings.Registry.Watch)
			return a.cmdRewrite(ctx, watch)
		},
	}
}

// registryInfo info 命令的输出
type registryInfo struct {
	Source       string    `json:"source"`
	Entries      int       `json:"entries"`
	Duplicates   int       `json:"duplicates"`
	LastModified time.Time `json:"last_modified"`
	Digest       string    `json:"digest"`
}

func (a *app) cmdInfo(ctx context.Context, asJSON bool) error {
	res, err := a.open(ctx)
	if err != nil {
		return err
	}
	reg := res.Current()
	info := registryInfo{
		Source:       a.source,
		Entries:      reg.Size(),
		Duplicates:   reg.Duplicates(),
		LastModified: reg.LastModified(),
		Digest:       fmt.Sprintf("%016x", reg.Digest()),
	}
	if info.Source == "" {
		info.Source = "embedded"
	}
	if asJSON {
		s, err := xjson.PrettyE(info)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.stdout, s)
		return err
	}

	_, err = fmt.Fprintf(a.stdout,
		"source:         %s\nentries:        %d\nduplicates:     %d\nlast modified:  %s\ndigest:         %s\n",
		info.Source, info.Entries, info.Duplicates,
		info.LastModified.Format(time.RFC3339Nano), info.Digest)
	return err
}

// lookupResult lookup 命令单个地址的结果
type lookupResult struct {
	Address      xmac.Addr `json:"address"`
	Multicast    bool      `json:"multicast"`
	Local        bool      `json:"local"`
	Match        string    `json:"match"`
	OUI          string    `json:"oui,omitempty"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	ShortName    string    `json:"short_name,omitempty"`
	Formatted    string    `json:"formatted"`
}

func resolveAddr(ctx context.Context, res *xresolver.Resolver, addr xmac.Addr) lookupResult {
	e, m := res.Resolve(ctx, addr)
	r := lookupResult{
		Address:   addr,
		Multicast: addr.IsMulticast(),
		Local:     addr.IsLocal(),
		Match:     m.String(),
		Formatted: res.Format(ctx, addr),
	}
	if m != xoui.MatchNone {
		id := e.ID()
		r.OUI = string(xmac.AppendHex(nil, id[:], '-'))
		r.Manufacturer = e.Manufacturer()
		r.ShortName = e.ShortName()
	}
	return r
}

func writeLookupBlock(w io.Writer, r lookupResult) error {
	manufacturer := r.Manufacturer
	if manufacturer == "" {
		manufacturer = "Unknown"
	}
	_, err := fmt.Fprintf(w,
		"     address:  %s\n   multicast:  %t\n       local:  %t\nmanufacturer:  %s\n       match:  %s\n   formatted:  %s\n\n",
		r.Address, r.Multicast, r.Local, manufacturer, r.Match, r.Formatted)
	return err
}

// cmdLookup 逐个查询地址。无法解析的地址报告到 stderr，最终以退出码 1 结束。
func (a *app) cmdLookup(ctx context.Context, args []string, asJSON bool) error {
	if len(args) == 0 {
		return &usageError{msg: "lookup 需要至少一个 MAC 地址"}
	}
	res, err := a.open(ctx)
	if err != nil {
		return err
	}

	failed := 0
	for _, arg := range args {
		addr, err := xmac.Parse(arg)
		if err != nil {
			fmt.Fprintf(a.stderr, "错误: %v\n", err)
			failed++
			continue
		}
		r := resolveAddr(ctx, res, addr)
		if asJSON {
			err = xjson.WriteLine(a.stdout, r)
		} else {
			err = writeLookupBlock(a.stdout, r)
		}
		if err != nil {
			return err
		}
	}
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}

func (a *app) cmdFormat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "format 需要至少一个参数"}
	}
	res, err := a.open(ctx)
	if err != nil {
		return err
	}
	for _, arg := range args {
		if _, err := fmt.Fprintln(a.stdout, res.FormatOrPassthrough(ctx, arg)); err != nil {
			return err
		}
	}
	return nil
}

// dumpRecord dump --json 的单条记录
type dumpRecord struct {
	OUI          string `json:"oui"`
	ShortName    string `json:"short_name"`
	Manufacturer string `json:"manufacturer"`
}

func (a *app) cmdDump(ctx context.Context, asJSON bool) error {
	res, err := a.open(ctx)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(a.stdout)
	for e := range res.Current().Entries() {
		id := e.ID()
		oui := string(xmac.AppendHex(nil, id[:], '-'))
		if asJSON {
			err = xjson.WriteLine(bw, dumpRecord{OUI: oui, ShortName: e.ShortName(), Manufacturer: e.Manufacturer()})
		} else {
			_, err = fmt.Fprintf(bw, "%s\t%s\t%s\n", oui, e.ShortName(), e.Manufacturer())
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// cmdConvert 转换 IEEE 文本。输出到文件时整体原子替换，监听该文件的进程只会看到完整内容。
func (a *app) cmdConvert(ctx context.Context, in, out, lastModified string) error {
	ts := time.Now()
	if lastModified != "" {
		parsed, err := xieee.ParseLastModified(lastModified)
		if err != nil {
			return &usageError{msg: err.Error()}
		}
		ts = parsed
	}

	var r io.Reader = a.stdin
	if in != stdio {
		f, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("打开输入文件失败: %w", err)
		}
		defer f.Close()
		r = f
	}

	var stats xieee.Stats
	convert := func(w io.Writer) error {
		var err error
		stats, err = xieee.Convert(ctx, r, w, ts)
		return err
	}

	start := time.Now()
	if out == stdio {
		bw := bufio.NewWriter(a.stdout)
		if err := convert(bw); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
	} else if err := xfile.WriteAtomic(out, convert); err != nil {
		return err
	}

	a.logger.Info(ctx, "oui registry converted",
		xlog.Path(out),
		xlog.Count(stats.Entries),
		xlog.Duration(time.Since(start)),
	)
	if out != stdio {
		_, err := fmt.Fprintf(a.stdout, "已写入 %d 条记录到 %s（重复 %d，空名称 %d，Latin-1 行 %d）\n",
			stats.Entries, out, stats.Duplicates, stats.EmptyNames, stats.Latin1Lines)
		return err
	}
	return nil
}

// setupSignalHandler 第一次信号取消 context，第二次信号以 130 强制退出
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
