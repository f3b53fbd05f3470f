package ouitest

import (
	"io"
	"os"

	"github.com/omeyang/ouikit/pkg/util/xfile"
)

// Replace 原子地替换 path 的内容，模拟部署新快照
func Replace(path string, data []byte) error {
	return xfile.WriteAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}
