package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ouikit/pkg/config/xconf"
	"github.com/omeyang/ouikit/pkg/observability/xlog"
	"github.com/omeyang/ouikit/pkg/registry/xoui"
	"github.com/omeyang/ouikit/pkg/registry/xresolver"
)

// app 一次命令执行的运行环境
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	settings   *xconf.Settings
	logger     xlog.LoggerWithLevel
	logCleanup func() error
	resolver   *xresolver.Resolver
	// source 注册表来源，内置注册表为空
	source string
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: xlog.Discard(),
	}
}

// createApp 创建 CLI 应用。
func (a *app) createApp() *cli.Command {
	return &cli.Command{
		Name:      "ouictl",
		Usage:     "MAC 地址厂商（OUI）注册表工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    a.stdin,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "registry",
				Aliases: []string{"r"},
				Usage:   "二进制注册表文件，为空时使用内置注册表",
				Sources: cli.EnvVars("OUICTL_REGISTRY"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML/JSON 配置文件",
				Sources: cli.EnvVars("OUICTL_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
			},
		},
		Commands:       a.createCommands(),
		DefaultCommand: "help",
		Before:         a.before,
		After:          a.after,
		// 由 run() 统一映射退出码，这里只输出 ExitCoder 的消息
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(a.stderr, err)
			}
		},
	}
}

// run 执行命令并返回退出码
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stdin, stdout, stderr)
	if err := a.createApp().Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// before 加载配置并构建日志
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	settings, err := xconf.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if cmd.IsSet("registry") {
		settings.Registry.Path = cmd.String("registry")
	}
	if cmd.IsSet("log-level") {
		settings.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		settings.Log.Format = cmd.String("log-format")
	}
	if err := settings.Validate(); err != nil {
		return ctx, &usageError{msg: err.Error()}
	}
	a.settings = settings

	builder := xlog.New().
		SetOutput(a.stderr).
		SetLevelString(settings.Log.Level).
		SetFormat(settings.Log.Format)
	if rotation, ok := settings.Log.Rotation(); ok {
		builder.SetRotation(rotation)
	}
	logger, cleanup, err := builder.Build()
	if err != nil {
		return ctx, err
	}
	a.logger = logger
	a.logCleanup = cleanup
	return ctx, nil
}

// after 释放解析器与日志文件
func (a *app) after(context.Context, *cli.Command) error {
	var errs []error
	if a.resolver != nil {
		errs = append(errs, a.resolver.Close())
		a.resolver = nil
	}
	if a.logCleanup != nil {
		errs = append(errs, a.logCleanup())
		a.logCleanup = nil
	}
	return errors.Join(errs...)
}

// open 按配置加载注册表并创建解析器，重复调用返回同一个解析器
func (a *app) open(ctx context.Context) (*xresolver.Resolver, error) {
	if a.resolver != nil {
		return a.resolver, nil
	}
	path := ""
	if a.settings != nil {
		path = a.settings.Registry.Path
	}

	var (
		reg *xoui.Registry
		err error
	)
	if path == "" {
		reg, err = xoui.Default()
	} else {
		reg, err = xoui.LoadFile(path, xoui.WithLogger(a.logger))
	}
	if err != nil {
		return nil, err
	}

	opts := []xresolver.Option{xresolver.WithLogger(a.logger)}
	if a.settings != nil {
		opts = append(opts, xresolver.WithCacheSize(a.settings.Cache.Size))
	}
	res, err := xresolver.New(reg, opts...)
	if err != nil {
		return nil, err
	}
	a.resolver = res
	a.source = path
	a.logger.Debug(ctx, "registry opened", xlog.Path(path), xlog.Count(reg.Size()))
	return res, nil
}

// usageError 参数错误，退出码 2
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// exitError 命令已完成输出，只需设置非零退出码
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// cliUsagePrefixes urfave/cli 参数解析错误的消息前缀
var cliUsagePrefixes = []string{
	"flag provided but not defined",
	"flag needs an argument",
	"invalid value",
	"Required flag",
	"Required flags",
	"No help topic for",
}

// isCLIUsageError 判断错误是否来自 CLI 框架的参数解析
func isCLIUsageError(err error) bool {
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		return true
	}
	msg := err.Error()
	for _, prefix := range cliUsagePrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
