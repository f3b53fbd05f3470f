package xfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirPerm 默认目录权限
const DefaultDirPerm = 0o750

// DefaultFilePerm WriteAtomic 创建文件的默认权限
const DefaultFilePerm = 0o644

// CheckPath 校验文件路径格式：非空、不含空字节、不以分隔符结尾。返回规范化后的路径。
func CheckPath(filename string) (string, error) {
	if filename == "" {
		return "", ErrEmptyPath
	}
	if strings.ContainsRune(filename, 0) {
		return "", ErrNullByte
	}
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidPath, filename)
	}
	return filepath.Clean(filename), nil
}

// EnsureDir 确保文件的父目录存在
func EnsureDir(filename string) error {
	clean, err := CheckPath(filename)
	if err != nil {
		return err
	}
	dir := filepath.Dir(clean)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, DefaultDirPerm); err != nil {
		return fmt.Errorf("xfile: create directory %s: %w", dir, err)
	}
	return nil
}
