package xfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic 调用 write 生成内容并原子替换 filename。
//
// write 返回错误时目标文件保持不变，临时文件被删除。
func WriteAtomic(filename string, write func(w io.Writer) error) (err error) {
	clean, err := CheckPath(filename)
	if err != nil {
		return err
	}
	if err := EnsureDir(clean); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(clean), "."+filepath.Base(clean)+".*.tmp")
	if err != nil {
		return fmt.Errorf("xfile: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, ignoreNotExist(os.Remove(tmp.Name())))
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		return errors.Join(err, tmp.Close())
	}
	if err := bw.Flush(); err != nil {
		return errors.Join(fmt.Errorf("xfile: flush: %w", err), tmp.Close())
	}
	if err := tmp.Chmod(DefaultFilePerm); err != nil {
		return errors.Join(fmt.Errorf("xfile: chmod: %w", err), tmp.Close())
	}
	if err := tmp.Sync(); err != nil {
		return errors.Join(fmt.Errorf("xfile: sync: %w", err), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("xfile: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), clean); err != nil {
		return fmt.Errorf("xfile: rename: %w", err)
	}
	return nil
}

func ignoreNotExist(err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
