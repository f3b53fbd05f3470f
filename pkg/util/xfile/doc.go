// Package xfile 提供文件落盘相关的小工具。
//
// [WriteAtomic] 先写同目录下的临时文件，fsync 后 rename 到目标路径，
// 读方（包括 fsnotify 监听者）只会看到旧文件或完整的新文件。
package xfile
