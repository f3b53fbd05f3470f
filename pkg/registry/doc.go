// Package registry 提供 OUI 厂商注册表相关的子包。
//
// 子包列表：
//   - xoui: 二进制注册表格式、加载与查询
//   - xieee: IEEE oui.txt 文本解析与二进制转换
//   - xresolver: 可热替换的解析器，带格式化缓存、指标与文件监听
package registry
