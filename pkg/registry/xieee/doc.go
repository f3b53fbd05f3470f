// Package xieee 将 IEEE 发布的 oui.txt 文本转换为 xoui 的二进制注册表格式。
//
// 只识别形如下面的 "(base 16)" 行，其余行全部忽略：
//
//	00219B     (base 16)		Dell Inc
//
// 不是合法 UTF-8 的行按 ISO-8859-1 解码，厂商名做 NFC 规范化并去掉尾部空白。
// 转换保留源文件中的记录顺序与重复项，重复前缀由 [xoui.Load] 以后者为准。
//
// 用法：
//
//	ts, err := xieee.ParseLastModified("2024-05-01T00:00:00Z")
//	stats, err := xieee.Convert(ctx, in, out, ts)
package xieee
