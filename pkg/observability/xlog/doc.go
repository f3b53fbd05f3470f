// Package xlog 提供基于 [log/slog] 的结构化日志。
//
// 设计要点：
//   - 所有方法强制 context 传递，方法签名只接受 [slog.Attr]
//   - 动态级别控制（[Leveler]），派生 logger 共享级别
//   - 可选的文件轮转（基于 lumberjack），Build 返回 cleanup 函数
//   - 库代码默认使用 [Discard]，由调用方通过选项注入 Logger
//
// 快速开始：
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
//	logger.Info(ctx, "registry loaded",
//	    xlog.Count(reg.Size()),
//	    xlog.Path("/usr/share/ouikit/oui.dat"),
//	)
package xlog
