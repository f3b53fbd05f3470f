// ouictl 是 OUI 注册表的命令行工具。
//
// 用法:
//
//	ouictl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-r, --registry   二进制注册表文件（默认: 内置注册表）
//	-c, --config     YAML/JSON 配置文件
//	    --log-level  日志级别 debug|info|warn|error
//	    --log-format 日志格式 text|json
//
// 命令:
//
//	info           查看注册表概况
//	lookup <mac>   查询地址所属厂商
//	format <text>  将地址格式化为 "简称-xx:yy:zz"，无法解析的文本原样输出
//	dump           按前缀升序输出全部记录
//	convert        将 IEEE oui.txt 转换为二进制注册表
//	interactive    交互模式（每行一个 MAC 地址）
//	rewrite        逐行替换标准输入中的 MAC 地址
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（包括无法解析的地址）
//	2: 参数错误
//
// 示例:
//
//	ouictl lookup 00:21:9b:07:20:74
//	ouictl -r /var/lib/ouikit/oui.dat format 02-21-9b-07-20-74 eth0
//	ouictl convert --in oui.txt --out oui.dat --last-modified 2024-05-01T00:00:00Z
//	tcpdump -e -l | ouictl -r oui.dat rewrite --watch
package main

import (
	"context"
	"os"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
