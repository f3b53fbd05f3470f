// Package xmac 提供 MAC 地址（EUI-48）的解析、格式化与标志位判断。
//
// # 解析规则
//
// [Parse] 接受 6 组两位十六进制数（大小写不敏感），首尾空白会被忽略。
// 第 1、2 组之间可以使用以下任一分隔符，也可以不使用分隔符：
//
//   - 单个空白字符（空格、制表符等）
//   - "-"、":"、"."、"_"
//
// 第一个间隔选定的分隔符（或"无分隔符"）必须在其余所有间隔中原样重复，
// 混用或部分缺失都会被拒绝：
//
//	xmac.Parse("11:22:33:44:55:66") // ok
//	xmac.Parse("1a-2b-3c-4d-5e-6f") // ok
//	xmac.Parse("FFFFFFFFFFFF")      // ok
//	xmac.Parse("AA BB CC 11 22 33") // ok
//	xmac.Parse("11:22-33:44-55:66") // ErrInvalidFormat
//	xmac.Parse("1a2b3c 4d5e6f")     // ErrInvalidFormat
//
// # 值语义
//
// [Addr] 以 [6]byte 存储，长度不变式由类型保证。Addr 可直接比较（==）、
// 可作为 map key，并发读取无需加锁。全零地址 00:00:00:00:00:00 是合法地址
// （OUI 00:00:00 已分配给 XEROX），不代表"未初始化"。
//
// # 标志位
//
// 第一字节 bit 0 为多播位（[Addr.IsMulticast]），bit 1 为本地管理位
// （[Addr.IsLocal]）。IEEE 注册表登记的 OUI 两位均为 0，
// [Addr.WithoutFlags] 返回清除这两位后的地址，用于注册表回退查询。
//
// # 错误处理
//
//	addr, err := xmac.Parse(s)
//	if errors.Is(err, xmac.ErrInvalidFormat) {
//	    // 文本不符合语法
//	}
//	addr, err = xmac.FromRaw(b)
//	if errors.Is(err, xmac.ErrInvalidLength) {
//	    // 字节数不是 6
//	}
package xmac
