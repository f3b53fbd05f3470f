// Package xjson 提供命令行输出用的 JSON 序列化工具。
//
//   - [PrettyE]: 缩进格式，失败时返回 [ErrMarshal] 包装的错误。
//   - [Pretty]: 便捷版本，失败时返回 "<marshal error: ...>" 标记字符串。
//   - [WriteLine]: 单行 JSON 加换行（JSON Lines），供管道逐行消费。
//
// 与 [encoding/json] 默认行为不同，本包不转义 HTML 特殊字符，
// 厂商名中的 "&" 原样输出。
package xjson
