// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 文件落盘工具，父目录创建、原子替换写入
//   - xjson: JSON 序列化工具，Pretty 格式化输出与 JSON Lines
//   - xlru: 泛型 LRU 缓存，带命中统计与 GetOrCompute
//   - xmac: MAC 地址值类型，多格式解析、格式化、序列化
package util
