// Package xoui 提供 IEEE OUI（组织唯一标识符）注册表：
// 从紧凑的二进制快照加载 MAC 地址前缀到厂商名的映射，并支持查找与格式化。
//
// # 二进制格式
//
// 文件由 8 字节头部和若干记录组成，所有整数均为大端：
//
//	[8]  int64  最后修改时间（Unix 毫秒）
//	[3]  byte   OUI 前缀         ┐
//	[2]  uint16 厂商名长度 N      │ 重复至流结束
//	[N]  byte   UTF-8 厂商名      ┘
//
// 流必须恰好在记录边界结束，否则 [Load] 返回 [ErrTruncatedInput]。
// 同一前缀出现多次时以后出现的记录为准。
//
// # 查找
//
// [Registry.Lookup] 先按原始前缀查找；未命中且地址为组播或本地管理时，
// 清除首字节低两位后再查一次。[Registry.Format] 只做直接查找：
//
//	reg, err := xoui.Default()
//	if err != nil {
//	    return err
//	}
//	addr := xmac.MustParse("00:21:9b:07:20:74")
//	e, ok := reg.Lookup(addr)     // e.Manufacturer() == "Dell Inc"
//	s := reg.Format(addr)         // "Dell-07:20:74"
//
// # 并发安全
//
// [Registry] 和 [Entry] 加载后不可变，可被多个 goroutine 并发读取。
// 需要热更新时使用 xresolver 包。
package xoui
